package usecase

import (
	"context"
	"strings"
	"sync"

	"admin-console-service/internal/constants"
	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port"
	"admin-console-service/internal/core/port/usecases_port"
)

// RequirementEditController - форма редактирования заявки.
// Ошибки считаются по полям на blur и пересчитываются на отправке;
// заявка не уходит, пока хоть одно обязательное поле невалидно.
// Поле additionalRequirements не проверяется.
type RequirementEditController struct {
	mu  sync.Mutex
	api port.PlatformAPIPort

	id int64

	lookingFor             string
	propertyType           string
	bhkConfig              string
	minBudget              float64
	maxBudget              float64
	preferredLocations     []string
	additionalRequirements string
	phoneNumber            string
	userName               string

	touched map[string]bool
	errors  usecases_port.FieldErrors
}

func NewRequirementEditController(api port.PlatformAPIPort) *RequirementEditController {
	return &RequirementEditController{
		api:                api,
		preferredLocations: make([]string, constants.RequirementLocationSlots),
		touched:            make(map[string]bool),
		errors:             usecases_port.FieldErrors{},
	}
}

// Load подтягивает заявку с платформы и заполняет поля формы.
func (c *RequirementEditController) Load(ctx context.Context, id int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":       "RequirementEdit.Load",
		"requirement_id": id,
	})
	ucLogger.Info("Use case started", nil)

	requirement, err := c.api.GetRequirement(ctx, id)
	if err != nil {
		ucLogger.Error("Failed to load requirement", err, nil)
		return err
	}

	c.mu.Lock()
	c.id = id
	c.lookingFor = requirement.LookingFor
	c.propertyType = requirement.PropertyType
	c.bhkConfig = requirement.BHKConfig
	c.minBudget = requirement.MinBudget
	c.maxBudget = requirement.MaxBudget
	c.preferredLocations = make([]string, constants.RequirementLocationSlots)
	copy(c.preferredLocations, requirement.PreferredLocations)
	c.additionalRequirements = requirement.AdditionalRequirements
	c.phoneNumber = requirement.PhoneNumber
	c.userName = requirement.UserName
	c.touched = make(map[string]bool)
	c.errors = usecases_port.FieldErrors{}
	c.mu.Unlock()

	ucLogger.Info("Use case finished", nil)
	return nil
}

func (c *RequirementEditController) SetLookingFor(v string) {
	c.setField("lookingFor", func() { c.lookingFor = v })
}

func (c *RequirementEditController) SetPropertyType(v string) {
	c.setField("propertyType", func() { c.propertyType = v })
}

func (c *RequirementEditController) SetBHKConfig(v string) {
	c.setField("bhkConfig", func() { c.bhkConfig = v })
}

func (c *RequirementEditController) SetMinBudget(v float64) {
	c.setField("minBudget", func() { c.minBudget = v })
}

func (c *RequirementEditController) SetMaxBudget(v float64) {
	c.setField("maxBudget", func() { c.maxBudget = v })
}

func (c *RequirementEditController) SetLocation(index int, v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.preferredLocations) {
		return
	}
	c.preferredLocations[index] = v
	delete(c.errors, "preferredLocations")
}

func (c *RequirementEditController) SetAdditionalRequirements(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.additionalRequirements = v
}

func (c *RequirementEditController) SetPhoneNumber(v string) {
	c.setField("phoneNumber", func() { c.phoneNumber = v })
}

func (c *RequirementEditController) SetUserName(v string) {
	c.setField("userName", func() { c.userName = v })
}

// setField меняет значение и снимает прежнюю ошибку поля: она будет
// пересчитана на следующем blur или на отправке.
func (c *RequirementEditController) setField(name string, apply func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	apply()
	delete(c.errors, name)
}

// Blur помечает поле тронутым и проверяет его.
func (c *RequirementEditController) Blur(field string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.touched[field] = true
	if message := c.validateFieldLocked(field); message != "" {
		c.errors[field] = message
	} else {
		delete(c.errors, field)
	}
}

// Errors возвращает текущие ошибки по полям.
func (c *RequirementEditController) Errors() usecases_port.FieldErrors {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := usecases_port.FieldErrors{}
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

// Submit пересчитывает все поля и при чистой форме отправляет PUT.
func (c *RequirementEditController) Submit(ctx context.Context) (usecases_port.FieldErrors, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":       "RequirementEdit.Submit",
		"requirement_id": c.id,
	})
	ucLogger.Info("Use case started", nil)

	c.mu.Lock()
	fields := []string{
		"lookingFor", "propertyType", "bhkConfig", "minBudget", "maxBudget",
		"preferredLocations", "phoneNumber", "userName",
	}
	errs := usecases_port.FieldErrors{}
	for _, field := range fields {
		if message := c.validateFieldLocked(field); message != "" {
			errs[field] = message
		}
	}
	c.errors = errs

	if len(errs) > 0 {
		c.mu.Unlock()
		ucLogger.Info("Submit blocked by validation", port.Fields{"errors_count": len(errs)})
		return errs, domain.ErrValidationFailed
	}

	requirement := domain.Requirement{
		ID:                     c.id,
		LookingFor:             c.lookingFor,
		PropertyType:           c.propertyType,
		BHKConfig:              c.bhkConfig,
		MinBudget:              c.minBudget,
		MaxBudget:              c.maxBudget,
		PreferredLocations:     append([]string(nil), c.preferredLocations...),
		AdditionalRequirements: c.additionalRequirements,
		PhoneNumber:            strings.TrimSpace(c.phoneNumber),
		UserName:               c.userName,
	}
	id := c.id
	c.mu.Unlock()

	if err := c.api.UpdateRequirement(ctx, id, requirement); err != nil {
		ucLogger.Error("Failed to update requirement", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished", nil)
	return nil, nil
}

func (c *RequirementEditController) validateFieldLocked(field string) string {
	switch field {
	case "lookingFor":
		return validateShortText(c.lookingFor, "Please specify what you are looking for")
	case "propertyType":
		return validateShortText(c.propertyType, "Please specify the property type")
	case "bhkConfig":
		if strings.TrimSpace(c.bhkConfig) == "" {
			return "Please specify BHK configuration"
		}
		return ""
	case "minBudget":
		if c.minBudget <= 0 {
			return "Please enter a valid amount"
		}
		if c.minBudget < 1000 {
			return "Minimum budget should be 1,000"
		}
		return ""
	case "maxBudget":
		if c.maxBudget <= 0 {
			return "Please enter a valid amount"
		}
		if c.maxBudget < 5000 {
			return "Maximum budget should be 5,000"
		}
		if c.minBudget > 0 && c.maxBudget <= c.minBudget {
			return "Maximum budget should be greater than starting budget"
		}
		return ""
	case "preferredLocations":
		for _, loc := range c.preferredLocations {
			if strings.TrimSpace(loc) != "" {
				return ""
			}
		}
		return "Please enter at least one location"
	case "phoneNumber":
		if strings.TrimSpace(c.phoneNumber) == "" {
			return "Please enter your phone number"
		}
		if !phoneRe.MatchString(strings.TrimSpace(c.phoneNumber)) {
			return "Please enter a valid phone number"
		}
		return ""
	case "userName":
		return validateShortText(c.userName, "Please enter your name")
	default:
		return ""
	}
}

func validateShortText(v, requiredMessage string) string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return requiredMessage
	}
	if len(trimmed) < 2 {
		return "Please enter at least 2 characters"
	}
	return ""
}
