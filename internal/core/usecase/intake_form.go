package usecase

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"admin-console-service/internal/assets"
	"admin-console-service/internal/constants"
	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port"
	"admin-console-service/internal/core/port/usecases_port"
)

// Пин-код проверяется на каждом вводе, частичный ввод допустим
var pinCodeRe = regexp.MustCompile(`^[1-9][0-9]{0,5}$`)

var phoneRe = regexp.MustCompile(`^\d{10}$`)

// StagedImage - файл в стейджинге формы с токеном предпросмотра.
type StagedImage struct {
	Token string
	File  domain.ImageFile
}

// IntakeFormController - машина состояний формы подачи объявления.
// Два упорядоченных выбора (категория, затем тип сделки) определяют
// набор полей через таблицу domain.FieldSetFor. Невалидный ввод
// числовых пар и пин-кода отбрасывается молча с сохранением прежнего
// значения, как вела себя исходная форма.
type IntakeFormController struct {
	mu sync.Mutex

	api          port.PlatformAPIPort
	session      port.SessionStorePort
	propertyList *PropertyListController

	// Справочники, загружаются один раз при инициализации формы
	enums     *domain.PropertyEnums
	amenities []domain.Amenity

	category domain.Category
	dealType domain.DealType

	propertyName  string
	apartmentType string
	bhkType       string
	floor         int
	totalFloors   int
	builtUpArea   float64
	carpetArea    float64

	area    string
	state   string
	pinCode string

	buildingType string
	floorType    string
	propertyAge  string

	plotArea     float64
	length       float64
	width        float64
	boundaryWall string

	expectedPrice      float64
	deposit            float64
	monthlyMaintenance float64
	availableFrom      time.Time
	preferredTenants   string
	furnishedType      string
	description        string

	selectedAmenities map[int64]bool

	ownerName  string
	phone      string
	posterRole domain.PosterRole

	staged []StagedImage

	// Ненулевой в режиме редактирования
	editingID int64
}

func NewIntakeFormController(api port.PlatformAPIPort, session port.SessionStorePort, propertyList *PropertyListController) *IntakeFormController {
	return &IntakeFormController{
		api:               api,
		session:           session,
		propertyList:      propertyList,
		selectedAmenities: make(map[int64]bool),
	}
}

// LoadReferenceData загружает справочник перечислений и первую
// страницу удобств. Вызывается один раз при открытии формы.
func (f *IntakeFormController) LoadReferenceData(ctx context.Context) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "IntakeForm.LoadReferenceData"})
	ucLogger.Info("Use case started", nil)

	enums, err := f.api.GetPropertyEnums(ctx)
	if err != nil {
		ucLogger.Error("Failed to load property enums", err, nil)
		return err
	}

	amenityPage, err := f.api.ListAmenities(ctx, 0, 100)
	if err != nil {
		ucLogger.Error("Failed to load amenities", err, nil)
		return err
	}

	f.mu.Lock()
	f.enums = enums
	f.amenities = amenityPage.Content
	f.mu.Unlock()

	ucLogger.Info("Use case finished", port.Fields{"amenities_count": len(amenityPage.Content)})
	return nil
}

// Enums возвращает загруженный справочник (nil до LoadReferenceData).
func (f *IntakeFormController) Enums() *domain.PropertyEnums {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.enums
}

// Amenities возвращает доступные удобства.
func (f *IntakeFormController) Amenities() []domain.Amenity {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Amenity, len(f.amenities))
	copy(out, f.amenities)
	return out
}

// SelectCategory выбирает категорию. Выбор сбрасывает тип сделки и все
// специфичные для категории поля, уже введенные пользователем.
func (f *IntakeFormController) SelectCategory(c domain.Category) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.category = c
	f.dealType = ""

	f.apartmentType = ""
	f.bhkType = ""
	f.floor = 0
	f.totalFloors = 0
	f.builtUpArea = 0
	f.carpetArea = 0
	f.buildingType = ""
	f.floorType = ""
	f.propertyAge = ""
	f.plotArea = 0
	f.length = 0
	f.width = 0
	f.boundaryWall = ""
	f.preferredTenants = ""
	f.furnishedType = ""
}

// SelectDealType выбирает тип сделки из подмножества, допустимого для
// выбранной категории.
func (f *IntakeFormController) SelectDealType(d domain.DealType) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.category == "" {
		return domain.ErrCategoryNotSelected
	}
	if !domain.DealTypeAllowed(f.category, d) {
		return domain.ErrDealTypeNotAllowed
	}

	f.dealType = d
	return nil
}

// Category возвращает выбранную категорию (пустая строка до выбора).
func (f *IntakeFormController) Category() domain.Category {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.category
}

// DealType возвращает выбранный тип сделки.
func (f *IntakeFormController) DealType() domain.DealType {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dealType
}

// FieldSet возвращает активный набор полей формы.
// false, пока оба выбора не сделаны.
func (f *IntakeFormController) FieldSet() (domain.FieldSet, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.category == "" || f.dealType == "" {
		return domain.FieldSet{}, false
	}
	return domain.FieldSetFor(f.category, f.dealType)
}

func (f *IntakeFormController) SetPropertyName(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.propertyName = v
}

func (f *IntakeFormController) SetApartmentType(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.apartmentType = v
}

func (f *IntakeFormController) SetBHKType(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bhkType = v
}

func (f *IntakeFormController) SetTotalFloors(v int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v < 0 {
		return
	}
	f.totalFloors = v
}

// SetFloor молча отбрасывает этаж выше общего числа этажей,
// прежнее значение остается.
func (f *IntakeFormController) SetFloor(v int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v < 0 {
		return
	}
	if f.totalFloors > 0 && v > f.totalFloors {
		return
	}
	f.floor = v
}

func (f *IntakeFormController) SetBuiltUpArea(v float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v < 0 {
		return
	}
	f.builtUpArea = v
}

// SetCarpetArea молча отбрасывает жилую площадь, не меньшую общей.
func (f *IntakeFormController) SetCarpetArea(v float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v < 0 {
		return
	}
	if f.builtUpArea > 0 && v >= f.builtUpArea {
		return
	}
	f.carpetArea = v
}

func (f *IntakeFormController) SetArea(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.area = v
}

func (f *IntakeFormController) SetState(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = v
}

// SetPinCode принимает либо пустую строку, либо значение, проходящее
// проверку на каждом вводе. Остальное отбрасывается.
func (f *IntakeFormController) SetPinCode(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v != "" && !pinCodeRe.MatchString(v) {
		return
	}
	f.pinCode = v
}

func (f *IntakeFormController) PinCode() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pinCode
}

func (f *IntakeFormController) Floor() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.floor
}

func (f *IntakeFormController) CarpetArea() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.carpetArea
}

func (f *IntakeFormController) SetBuildingType(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buildingType = v
}

func (f *IntakeFormController) SetFloorType(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.floorType = v
}

func (f *IntakeFormController) SetPropertyAge(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.propertyAge = v
}

func (f *IntakeFormController) SetPlotArea(v float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v < 0 {
		return
	}
	f.plotArea = v
}

func (f *IntakeFormController) SetLength(v float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v < 0 {
		return
	}
	f.length = v
}

func (f *IntakeFormController) SetWidth(v float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v < 0 {
		return
	}
	f.width = v
}

func (f *IntakeFormController) SetBoundaryWall(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.boundaryWall = v
}

func (f *IntakeFormController) SetExpectedPrice(v float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v < 0 {
		return
	}
	f.expectedPrice = v
}

func (f *IntakeFormController) SetDeposit(v float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v < 0 {
		return
	}
	f.deposit = v
}

func (f *IntakeFormController) SetMonthlyMaintenance(v float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v < 0 {
		return
	}
	f.monthlyMaintenance = v
}

// SetAvailableFrom отбрасывает даты раньше сегодняшней.
func (f *IntakeFormController) SetAvailableFrom(v time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	today := time.Now().Truncate(24 * time.Hour)
	if v.Before(today) {
		return
	}
	f.availableFrom = v
}

func (f *IntakeFormController) SetPreferredTenants(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.preferredTenants = v
}

func (f *IntakeFormController) SetFurnishedType(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.furnishedType = v
}

func (f *IntakeFormController) SetDescription(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.description = v
}

func (f *IntakeFormController) SetOwnerName(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ownerName = v
}

func (f *IntakeFormController) SetPhone(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.phone = v
}

func (f *IntakeFormController) SetPosterRole(v domain.PosterRole) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posterRole = v
}

// ToggleAmenity переключает членство удобства в выбранном наборе.
func (f *IntakeFormController) ToggleAmenity(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.selectedAmenities[id] {
		delete(f.selectedAmenities, id)
	} else {
		f.selectedAmenities[id] = true
	}
}

// SelectedAmenities возвращает выбранные удобства.
func (f *IntakeFormController) SelectedAmenities() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selectedAmenityIDsLocked()
}

func (f *IntakeFormController) selectedAmenityIDsLocked() []int64 {
	out := make([]int64, 0, len(f.selectedAmenities))
	for _, a := range f.amenities {
		if f.selectedAmenities[a.ID] {
			out = append(out, a.ID)
		}
	}
	// Выбранные вручную id вне загруженного справочника тоже уходят
	for id := range f.selectedAmenities {
		known := false
		for _, a := range f.amenities {
			if a.ID == id {
				known = true
				break
			}
		}
		if !known {
			out = append(out, id)
		}
	}
	return out
}

// AddFiles добавляет файлы в стейджинг. Если суммарное число превысило
// бы лимит, отвергается вся партия целиком, частичного приема нет.
func (f *IntakeFormController) AddFiles(files []domain.ImageFile) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.staged)+len(files) > constants.MaxStagedImages {
		return domain.ErrTooManyImagesStaged
	}

	for _, file := range files {
		f.staged = append(f.staged, StagedImage{
			Token: uuid.New().String(),
			File:  file,
		})
	}
	return nil
}

// RemoveFile убирает один файл из стейджинга вместе с токеном
// предпросмотра.
func (f *IntakeFormController) RemoveFile(index int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if index < 0 || index >= len(f.staged) {
		return domain.ErrImageIndexOutOfRange
	}

	f.staged = append(f.staged[:index], f.staged[index+1:]...)
	return nil
}

// StagedImages возвращает текущий стейджинг.
func (f *IntakeFormController) StagedImages() []StagedImage {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]StagedImage, len(f.staged))
	copy(out, f.staged)
	return out
}

// LoadForEdit переводит форму в режим редактирования, заполняя поля
// данными объекта с платформы.
func (f *IntakeFormController) LoadForEdit(ctx context.Context, id int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "IntakeForm.LoadForEdit",
		"property_id": id,
	})
	ucLogger.Info("Use case started", nil)

	property, err := f.api.GetProperty(ctx, id)
	if err != nil {
		ucLogger.Error("Failed to load property for edit", err, nil)
		return err
	}

	f.mu.Lock()
	f.editingID = id
	f.category = property.Category
	f.dealType = property.PropertyFor
	f.propertyName = property.PropertyName
	f.apartmentType = property.ApartmentType
	f.bhkType = property.BHKType
	f.floor = property.Floor
	f.totalFloors = property.TotalFloors
	f.builtUpArea = property.BuiltUpArea
	f.carpetArea = property.CarpetArea
	f.area = property.Address.Area
	f.state = property.Address.State
	f.pinCode = property.Address.PinCode
	f.buildingType = property.BuildingType
	f.floorType = property.FloorType
	f.propertyAge = property.PropertyAge
	f.plotArea = property.PlotArea
	f.length = property.Length
	f.width = property.Width
	f.boundaryWall = property.BoundaryWall
	f.expectedPrice = property.ExpectedPrice
	f.deposit = property.Deposit
	f.monthlyMaintenance = property.MonthlyMaintenance
	f.availableFrom = property.AvailableFrom
	f.preferredTenants = property.PreferredTenants
	f.furnishedType = property.FurnishedType
	f.description = property.Description
	f.ownerName = property.OwnerName
	f.phone = property.UserPhoneNumber
	f.posterRole = property.PosterRole
	f.selectedAmenities = make(map[int64]bool)
	for _, amenityID := range property.AmenityIDs {
		f.selectedAmenities[amenityID] = true
	}
	f.mu.Unlock()

	ucLogger.Info("Use case finished", nil)
	return nil
}

// Submit собирает объект, проверяет его и отправляет на платформу
// одним multipart-запросом. При успехе форма сбрасывается и список
// объектов перезагружается; при ошибке все состояние остается для
// повторной попытки.
func (f *IntakeFormController) Submit(ctx context.Context) (*domain.Property, usecases_port.FieldErrors, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "IntakeForm.Submit"})
	ucLogger.Info("Use case started", nil)

	f.mu.Lock()

	fieldErrs := f.validateLocked()
	if len(fieldErrs) > 0 {
		f.mu.Unlock()
		ucLogger.Info("Submit blocked by validation", port.Fields{"errors_count": len(fieldErrs)})
		return nil, fieldErrs, domain.ErrValidationFailed
	}

	// Лимит при отправке жестче лимита стейджинга, см. internal/constants
	if len(f.staged) > constants.MaxSubmitImages {
		f.mu.Unlock()
		return nil, nil, domain.ErrTooManyImagesSubmit
	}

	images := make([]domain.ImageFile, 0, len(f.staged))
	for _, s := range f.staged {
		images = append(images, s.File)
	}
	if len(images) == 0 {
		// Без фотографий подставляется встроенная заглушка
		ucLogger.Info("No images staged, attaching default image", nil)
		images = append(images, domain.ImageFile{
			Name:        "default.png",
			ContentType: "image/png",
			Data:        assets.DefaultPropertyImage,
		})
	}

	property := f.composeLocked()
	f.mu.Unlock()

	created, err := f.api.AddProperty(ctx, property, images)
	if err != nil {
		ucLogger.Error("Failed to submit property", err, nil)
		return nil, nil, err
	}

	f.reset()
	if f.propertyList != nil {
		// Перезагрузка подтянет свежий счетчик на дашборд
		if err := f.propertyList.LoadPage(ctx); err != nil {
			ucLogger.Error("Failed to reload property list after submit", err, nil)
		}
	}

	ucLogger.Info("Use case finished", port.Fields{"property_id": created.ID})
	return created, nil, nil
}

func (f *IntakeFormController) validateLocked() usecases_port.FieldErrors {
	errs := usecases_port.FieldErrors{}

	if f.category == "" {
		errs["category"] = "Please select a category"
	}
	if f.dealType == "" {
		errs["propertyFor"] = "Please select a transaction type"
	}
	if !phoneRe.MatchString(strings.TrimSpace(f.phone)) {
		errs["userPhoneNumber"] = "Please enter a valid phone number"
	}
	if strings.TrimSpace(f.ownerName) == "" {
		errs["ownerName"] = "Please enter the owner name"
	}
	if f.posterRole != domain.RoleOwner && f.posterRole != domain.RoleAgent {
		errs["role"] = "Please select a role"
	}

	return errs
}

// composeLocked собирает доменный объект с теми же подстановками по
// умолчанию, какие делала исходная форма.
func (f *IntakeFormController) composeLocked() domain.Property {
	postedBy := int64(1)
	if user := f.session.CurrentUser(); user != nil {
		postedBy = user.ID
	}

	availableFrom := f.availableFrom
	if availableFrom.IsZero() {
		availableFrom = time.Now()
	}

	return domain.Property{
		ID:             f.editingID,
		PostedByUserID: postedBy,
		Category:       fallbackCategory(f.category),
		PropertyFor:    fallbackDealType(f.dealType),
		ApartmentType:  fallback(f.apartmentType, "FLAT"),
		PropertyName:   fallback(f.propertyName, "test"),
		BHKType:        fallback(f.bhkType, "BHK_6"),
		Floor:          fallbackInt(f.floor, 1),
		TotalFloors:    fallbackInt(f.totalFloors, 1),
		BuiltUpArea:    fallbackFloat(f.builtUpArea, 1),
		CarpetArea:     fallbackFloat(f.carpetArea, 1),
		Address: domain.Address{
			Area:    fallback(f.area, "test"),
			City:    constants.FixedCity,
			State:   fallback(f.state, "test"),
			PinCode: fallback(f.pinCode, "1"),
		},
		BuildingType:       f.buildingType,
		FloorType:          f.floorType,
		PropertyAge:        f.propertyAge,
		PlotArea:           f.plotArea,
		Length:             f.length,
		Width:              f.width,
		BoundaryWall:       f.boundaryWall,
		ExpectedPrice:      f.expectedPrice,
		Deposit:            fallbackFloat(f.deposit, 1),
		MonthlyMaintenance: fallbackFloat(f.monthlyMaintenance, 1),
		AvailableFrom:      availableFrom,
		PreferredTenants:   fallback(f.preferredTenants, "Anyone"),
		FurnishedType:      fallback(f.furnishedType, "UNFURNISHED"),
		Description:        fallback(f.description, "test"),
		AmenityIDs:         f.selectedAmenityIDsLocked(),
		OwnerName:          f.ownerName,
		UserPhoneNumber:    strings.TrimSpace(f.phone),
		PosterRole:         f.posterRole,
	}
}

// reset очищает все пользовательские поля, справочники остаются.
func (f *IntakeFormController) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.category = ""
	f.dealType = ""
	f.propertyName = ""
	f.apartmentType = ""
	f.bhkType = ""
	f.floor = 0
	f.totalFloors = 0
	f.builtUpArea = 0
	f.carpetArea = 0
	f.area = ""
	f.state = ""
	f.pinCode = ""
	f.buildingType = ""
	f.floorType = ""
	f.propertyAge = ""
	f.plotArea = 0
	f.length = 0
	f.width = 0
	f.boundaryWall = ""
	f.expectedPrice = 0
	f.deposit = 0
	f.monthlyMaintenance = 0
	f.availableFrom = time.Time{}
	f.preferredTenants = ""
	f.furnishedType = ""
	f.description = ""
	f.selectedAmenities = make(map[int64]bool)
	f.ownerName = ""
	f.phone = ""
	f.posterRole = ""
	f.staged = nil
	f.editingID = 0
}

func fallback(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func fallbackInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func fallbackFloat(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func fallbackCategory(c domain.Category) domain.Category {
	if c == "" {
		return domain.CategoryResidential
	}
	return c
}

func fallbackDealType(d domain.DealType) domain.DealType {
	if d == "" {
		return domain.DealRent
	}
	return d
}
