package domain

import "errors"

// Ошибки, которые могут возвращаться из use case-ов и контроллеров.
var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("entity not found")

	ErrPageOutOfRange = errors.New("requested page is out of range")

	ErrCategoryNotSelected = errors.New("category is not selected")
	ErrDealTypeNotAllowed  = errors.New("deal type is not allowed for selected category")

	// Лимиты изображений. Несовпадение 8/4 унаследовано от исходной
	// формы и сохранено сознательно, см. internal/constants.
	ErrTooManyImagesStaged = errors.New("staged images exceed the staging limit")
	ErrTooManyImagesSubmit = errors.New("too many images attached for submission")
	ErrImageIndexOutOfRange = errors.New("image index is out of range")

	ErrValidationFailed = errors.New("form validation failed")
)
