package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port"
	"admin-console-service/internal/core/usecase"
)

// Лимит памяти на разбор multipart с изображениями
const maxImageUploadBytes = 32 << 20

type PropertyFormHandlers struct {
	form *usecase.IntakeFormController
}

func NewPropertyFormHandlers(form *usecase.IntakeFormController) *PropertyFormHandlers {
	return &PropertyFormHandlers{form: form}
}

// HandleInit - обработчик для POST /api/v1/property-form/init.
// Загружает справочники и отдает их форме.
func (h *PropertyFormHandlers) HandleInit(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandlePropertyFormInit"})

	if err := h.form.LoadReferenceData(r.Context()); err != nil {
		logger.Error("Failed to load reference data", err, nil)
		WriteJSONError(w, http.StatusBadGateway, "Failed to load reference data")
		return
	}

	enums := h.form.Enums()
	amenities := h.form.Amenities()
	amenityDTOs := make([]amenityDTO, len(amenities))
	for i, a := range amenities {
		amenityDTOs[i] = toAmenityDTO(a)
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"enums": propertyEnumsDTO{
			PropertyCategory: enums.PropertyCategory,
			FurnishedType:    enums.FurnishedType,
			BHKType:          enums.BHKType,
			PropertyFor:      enums.PropertyFor,
			ApartmentType:    enums.ApartmentType,
		},
		"amenities": amenityDTOs,
	})
}

// HandleSelectCategory - обработчик для POST /api/v1/property-form/category
func (h *PropertyFormHandlers) HandleSelectCategory(w http.ResponseWriter, r *http.Request) {
	var reqDTO struct {
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil || reqDTO.Category == "" {
		WriteJSONError(w, http.StatusBadRequest, "Field 'category' is required")
		return
	}

	h.form.SelectCategory(domain.Category(reqDTO.Category))

	// После смены категории допустимые типы сделок меняются
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"category":         reqDTO.Category,
		"allowedDealTypes": domain.AllowedDealTypes(domain.Category(reqDTO.Category)),
	})
}

// HandleSelectDealType - обработчик для POST /api/v1/property-form/deal-type
func (h *PropertyFormHandlers) HandleSelectDealType(w http.ResponseWriter, r *http.Request) {
	var reqDTO struct {
		PropertyFor string `json:"propertyFor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil || reqDTO.PropertyFor == "" {
		WriteJSONError(w, http.StatusBadRequest, "Field 'propertyFor' is required")
		return
	}

	if err := h.form.SelectDealType(domain.DealType(reqDTO.PropertyFor)); err != nil {
		if errors.Is(err, domain.ErrCategoryNotSelected) {
			WriteJSONError(w, http.StatusConflict, "Select a category first")
			return
		}
		WriteJSONError(w, http.StatusBadRequest, "Transaction type is not allowed for the selected category")
		return
	}

	h.writeFieldSet(w)
}

// HandleFieldSet - обработчик для GET /api/v1/property-form/field-set
func (h *PropertyFormHandlers) HandleFieldSet(w http.ResponseWriter, r *http.Request) {
	h.writeFieldSet(w)
}

func (h *PropertyFormHandlers) writeFieldSet(w http.ResponseWriter) {
	fs, ok := h.form.FieldSet()
	if !ok {
		RespondWithJSON(w, http.StatusOK, map[string]interface{}{"selected": false})
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"selected": true,
		"name":     fs.Name,
		"visible":  fs.Visible,
		"required": fs.Required,
	})
}

// HandleSetFields - обработчик для PUT /api/v1/property-form/fields.
// Принимает частичное обновление: отсутствующие поля не трогаются,
// невалидные значения (этаж, площадь, пин-код) молча отбрасываются.
func (h *PropertyFormHandlers) HandleSetFields(w http.ResponseWriter, r *http.Request) {
	var reqDTO propertyFormFieldsDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if reqDTO.PropertyName != nil {
		h.form.SetPropertyName(*reqDTO.PropertyName)
	}
	if reqDTO.ApartmentType != nil {
		h.form.SetApartmentType(*reqDTO.ApartmentType)
	}
	if reqDTO.BHKType != nil {
		h.form.SetBHKType(*reqDTO.BHKType)
	}
	if reqDTO.TotalFloors != nil {
		h.form.SetTotalFloors(*reqDTO.TotalFloors)
	}
	if reqDTO.Floor != nil {
		h.form.SetFloor(*reqDTO.Floor)
	}
	if reqDTO.BuiltUpArea != nil {
		h.form.SetBuiltUpArea(*reqDTO.BuiltUpArea)
	}
	if reqDTO.CarpetArea != nil {
		h.form.SetCarpetArea(*reqDTO.CarpetArea)
	}
	if reqDTO.Area != nil {
		h.form.SetArea(*reqDTO.Area)
	}
	if reqDTO.State != nil {
		h.form.SetState(*reqDTO.State)
	}
	if reqDTO.PinCode != nil {
		h.form.SetPinCode(*reqDTO.PinCode)
	}
	if reqDTO.BuildingType != nil {
		h.form.SetBuildingType(*reqDTO.BuildingType)
	}
	if reqDTO.FloorType != nil {
		h.form.SetFloorType(*reqDTO.FloorType)
	}
	if reqDTO.PropertyAge != nil {
		h.form.SetPropertyAge(*reqDTO.PropertyAge)
	}
	if reqDTO.PlotArea != nil {
		h.form.SetPlotArea(*reqDTO.PlotArea)
	}
	if reqDTO.Length != nil {
		h.form.SetLength(*reqDTO.Length)
	}
	if reqDTO.Width != nil {
		h.form.SetWidth(*reqDTO.Width)
	}
	if reqDTO.BoundaryWall != nil {
		h.form.SetBoundaryWall(*reqDTO.BoundaryWall)
	}
	if reqDTO.ExpectedPrice != nil {
		h.form.SetExpectedPrice(*reqDTO.ExpectedPrice)
	}
	if reqDTO.Deposit != nil {
		h.form.SetDeposit(*reqDTO.Deposit)
	}
	if reqDTO.MonthlyMaintenance != nil {
		h.form.SetMonthlyMaintenance(*reqDTO.MonthlyMaintenance)
	}
	if reqDTO.AvailableFrom != nil {
		if parsed, err := time.Parse("2006-01-02", *reqDTO.AvailableFrom); err == nil {
			h.form.SetAvailableFrom(parsed)
		}
	}
	if reqDTO.PreferredTenants != nil {
		h.form.SetPreferredTenants(*reqDTO.PreferredTenants)
	}
	if reqDTO.FurnishedType != nil {
		h.form.SetFurnishedType(*reqDTO.FurnishedType)
	}
	if reqDTO.Description != nil {
		h.form.SetDescription(*reqDTO.Description)
	}
	if reqDTO.OwnerName != nil {
		h.form.SetOwnerName(*reqDTO.OwnerName)
	}
	if reqDTO.UserPhoneNumber != nil {
		h.form.SetPhone(*reqDTO.UserPhoneNumber)
	}
	if reqDTO.Role != nil {
		h.form.SetPosterRole(domain.PosterRole(*reqDTO.Role))
	}

	// Текущие значения молчаливо проверяемых полей возвращаются,
	// чтобы UI видел, что именно принято
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"floor":      h.form.Floor(),
		"carpetArea": h.form.CarpetArea(),
		"pinCode":    h.form.PinCode(),
	})
}

// HandleToggleAmenity - обработчик для POST /api/v1/property-form/amenities/{id}/toggle
func (h *PropertyFormHandlers) HandleToggleAmenity(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		WriteJSONError(w, http.StatusBadRequest, "Invalid amenity id")
		return
	}

	h.form.ToggleAmenity(id)
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"selected": h.form.SelectedAmenities()})
}

// HandleAddImages - обработчик для POST /api/v1/property-form/images.
// Партия файлов либо принимается целиком, либо целиком отвергается.
func (h *PropertyFormHandlers) HandleAddImages(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleAddImages"})

	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid multipart body")
		return
	}

	fileHeaders := r.MultipartForm.File["images"]
	if len(fileHeaders) == 0 {
		WriteJSONError(w, http.StatusBadRequest, "No images attached")
		return
	}

	files := make([]domain.ImageFile, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		file, err := header.Open()
		if err != nil {
			logger.Error("Failed to open uploaded file", err, nil)
			WriteJSONError(w, http.StatusBadRequest, "Failed to read uploaded file")
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			logger.Error("Failed to read uploaded file", err, nil)
			WriteJSONError(w, http.StatusBadRequest, "Failed to read uploaded file")
			return
		}
		files = append(files, domain.ImageFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	if err := h.form.AddFiles(files); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "You can upload a maximum of 8 images")
		return
	}

	h.writeStagedImages(w)
}

// HandleListImages - обработчик для GET /api/v1/property-form/images
func (h *PropertyFormHandlers) HandleListImages(w http.ResponseWriter, r *http.Request) {
	h.writeStagedImages(w)
}

// HandleRemoveImage - обработчик для DELETE /api/v1/property-form/images/{index}
func (h *PropertyFormHandlers) HandleRemoveImage(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid image index")
		return
	}

	if err := h.form.RemoveFile(index); err != nil {
		WriteJSONError(w, http.StatusNotFound, "Image index is out of range")
		return
	}

	h.writeStagedImages(w)
}

func (h *PropertyFormHandlers) writeStagedImages(w http.ResponseWriter) {
	staged := h.form.StagedImages()
	dtos := make([]stagedImageDTO, len(staged))
	for i, s := range staged {
		dtos[i] = stagedImageDTO{Token: s.Token, Name: s.File.Name, Size: len(s.File.Data)}
	}
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"images": dtos})
}

// HandleLoadForEdit - обработчик для POST /api/v1/property-form/load/{id}
func (h *PropertyFormHandlers) HandleLoadForEdit(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandlePropertyFormLoad"})

	id, ok := parseIDParam(r, "id")
	if !ok {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	if err := h.form.LoadForEdit(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		logger.Error("Failed to load property into form", err, nil)
		WriteJSONError(w, http.StatusBadGateway, "Failed to load property")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleSubmit - обработчик для POST /api/v1/property-form/submit
func (h *PropertyFormHandlers) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandlePropertyFormSubmit"})

	created, fieldErrs, err := h.form.Submit(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrValidationFailed) {
			RespondWithJSON(w, http.StatusBadRequest, map[string]interface{}{"fieldErrors": fieldErrs})
			return
		}
		if errors.Is(err, domain.ErrTooManyImagesSubmit) {
			WriteJSONError(w, http.StatusBadRequest, "You can upload a maximum of 4 images")
			return
		}
		logger.Error("Failed to submit property", err, nil)
		// Состояние формы не тронуто, можно повторить
		WriteJSONError(w, http.StatusBadGateway, "Error posting property. Please try again.")
		return
	}

	RespondWithJSON(w, http.StatusCreated, toPropertyDTO(*created))
}
