package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/usecase"
)

func loadedRequirementForm(t *testing.T, api *fakePlatformAPI) *usecase.RequirementEditController {
	t.Helper()
	if api.getRequirement == nil {
		api.getRequirement = func(ctx context.Context, id int64) (*domain.Requirement, error) {
			return &domain.Requirement{
				ID:                 id,
				LookingFor:         "Rent",
				PropertyType:       "Apartment",
				BHKConfig:          "2 BHK",
				MinBudget:          10000,
				MaxBudget:          20000,
				PreferredLocations: []string{"Baner"},
				PhoneNumber:        "9876543210",
				UserName:           "Priya",
			}, nil
		}
	}
	c := usecase.NewRequirementEditController(api)
	require.NoError(t, c.Load(context.Background(), 5))
	return c
}

func TestRequirementEditBudgetRules(t *testing.T) {
	c := loadedRequirementForm(t, &fakePlatformAPI{})

	c.SetMinBudget(0)
	c.Blur("minBudget")
	assert.Equal(t, "Please enter a valid amount", c.Errors()["minBudget"])

	c.SetMinBudget(500)
	c.Blur("minBudget")
	assert.Equal(t, "Minimum budget should be 1,000", c.Errors()["minBudget"])

	c.SetMinBudget(2000)
	c.Blur("minBudget")
	assert.NotContains(t, c.Errors(), "minBudget")

	c.SetMaxBudget(4000)
	c.Blur("maxBudget")
	assert.Equal(t, "Maximum budget should be 5,000", c.Errors()["maxBudget"])

	// Максимум обязан превышать минимум
	c.SetMinBudget(10000)
	c.SetMaxBudget(8000)
	c.Blur("maxBudget")
	assert.Equal(t, "Maximum budget should be greater than starting budget", c.Errors()["maxBudget"])

	c.SetMaxBudget(15000)
	c.Blur("maxBudget")
	assert.NotContains(t, c.Errors(), "maxBudget")
}

func TestRequirementEditFieldErrorsClearedOnChange(t *testing.T) {
	c := loadedRequirementForm(t, &fakePlatformAPI{})

	c.SetUserName("")
	c.Blur("userName")
	require.Contains(t, c.Errors(), "userName")

	// Любая правка поля снимает его ошибку до следующей проверки
	c.SetUserName("P")
	assert.NotContains(t, c.Errors(), "userName")

	c.Blur("userName")
	assert.Equal(t, "Please enter at least 2 characters", c.Errors()["userName"])
}

func TestRequirementEditLocations(t *testing.T) {
	api := &fakePlatformAPI{
		getRequirement: func(ctx context.Context, id int64) (*domain.Requirement, error) {
			return &domain.Requirement{ID: id}, nil
		},
	}
	c := usecase.NewRequirementEditController(api)
	require.NoError(t, c.Load(context.Background(), 5))

	c.Blur("preferredLocations")
	assert.Equal(t, "Please enter at least one location", c.Errors()["preferredLocations"])

	// Индекс за пределами трех слотов игнорируется
	c.SetLocation(3, "Kothrud")
	c.Blur("preferredLocations")
	assert.Contains(t, c.Errors(), "preferredLocations")

	c.SetLocation(1, "Kothrud")
	c.Blur("preferredLocations")
	assert.NotContains(t, c.Errors(), "preferredLocations")
}

func TestRequirementEditPhoneRules(t *testing.T) {
	c := loadedRequirementForm(t, &fakePlatformAPI{})

	c.SetPhoneNumber("  ")
	c.Blur("phoneNumber")
	assert.Equal(t, "Please enter your phone number", c.Errors()["phoneNumber"])

	c.SetPhoneNumber("12345")
	c.Blur("phoneNumber")
	assert.Equal(t, "Please enter a valid phone number", c.Errors()["phoneNumber"])

	c.SetPhoneNumber(" 9876543210 ")
	c.Blur("phoneNumber")
	assert.NotContains(t, c.Errors(), "phoneNumber")
}

func TestRequirementEditSubmitBlockedUntilValid(t *testing.T) {
	updates := 0
	api := &fakePlatformAPI{
		getRequirement: func(ctx context.Context, id int64) (*domain.Requirement, error) {
			return &domain.Requirement{ID: id}, nil
		},
		updateRequirement: func(ctx context.Context, id int64, requirement domain.Requirement) error {
			updates++
			return nil
		},
	}
	c := usecase.NewRequirementEditController(api)
	require.NoError(t, c.Load(context.Background(), 5))

	fieldErrs, err := c.Submit(context.Background())
	require.ErrorIs(t, err, domain.ErrValidationFailed)
	assert.Equal(t, 0, updates)
	// additionalRequirements не проверяется
	assert.NotContains(t, fieldErrs, "additionalRequirements")
	assert.Contains(t, fieldErrs, "lookingFor")
	assert.Contains(t, fieldErrs, "preferredLocations")
}

func TestRequirementEditSubmitSendsTrimmedPhone(t *testing.T) {
	var sent domain.Requirement
	var sentID int64
	api := &fakePlatformAPI{
		updateRequirement: func(ctx context.Context, id int64, requirement domain.Requirement) error {
			sentID = id
			sent = requirement
			return nil
		},
	}
	c := loadedRequirementForm(t, api)

	c.SetPhoneNumber(" 9876543210 ")
	c.SetAdditionalRequirements("near metro")

	fieldErrs, err := c.Submit(context.Background())
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	assert.Equal(t, int64(5), sentID)
	assert.Equal(t, "9876543210", sent.PhoneNumber)
	assert.Equal(t, "near metro", sent.AdditionalRequirements)
	assert.Len(t, sent.PreferredLocations, 3)
	assert.Equal(t, "Baner", sent.PreferredLocations[0])
}
