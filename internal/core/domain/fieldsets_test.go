package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin-console-service/internal/core/domain"
)

func TestAllowedDealTypes(t *testing.T) {
	assert.Equal(t,
		[]domain.DealType{domain.DealRent, domain.DealSell, domain.DealPG, domain.DealHostel},
		domain.AllowedDealTypes(domain.CategoryResidential))
	assert.Equal(t,
		[]domain.DealType{domain.DealRent, domain.DealSell},
		domain.AllowedDealTypes(domain.CategoryCommercial))
	assert.Equal(t,
		[]domain.DealType{domain.DealSell, domain.DealResell},
		domain.AllowedDealTypes(domain.CategoryPlot))

	assert.False(t, domain.DealTypeAllowed(domain.CategoryPlot, domain.DealRent))
	assert.False(t, domain.DealTypeAllowed(domain.CategoryCommercial, domain.DealPG))
	assert.True(t, domain.DealTypeAllowed(domain.CategoryResidential, domain.DealHostel))
}

func TestFieldSetForEveryAllowedPair(t *testing.T) {
	// Каждая допустимая пара имеет набор полей, недопустимая не имеет
	for _, category := range []domain.Category{domain.CategoryResidential, domain.CategoryCommercial, domain.CategoryPlot} {
		for _, deal := range []domain.DealType{domain.DealRent, domain.DealSell, domain.DealPG, domain.DealHostel, domain.DealResell} {
			fs, ok := domain.FieldSetFor(category, deal)
			if domain.DealTypeAllowed(category, deal) {
				assert.True(t, ok, "%s/%s must have a field set", category, deal)
				assert.NotEmpty(t, fs.Visible, "%s/%s", category, deal)
				assert.NotEmpty(t, fs.Required, "%s/%s", category, deal)
			} else {
				assert.False(t, ok, "%s/%s must not have a field set", category, deal)
			}
		}
	}
}

func TestResidentialRentFields(t *testing.T) {
	fs, ok := domain.FieldSetFor(domain.CategoryResidential, domain.DealRent)
	require.True(t, ok)

	assert.Equal(t, "residential_rent", fs.Name)
	assert.True(t, fs.FieldVisible(domain.FieldBHKType))
	assert.True(t, fs.FieldVisible(domain.FieldDeposit))
	assert.True(t, fs.FieldVisible(domain.FieldPreferredTenants))
	assert.False(t, fs.FieldVisible(domain.FieldPlotArea))
	assert.False(t, fs.FieldVisible(domain.FieldBuildingType))

	assert.True(t, fs.FieldRequired(domain.FieldPropertyName))
	assert.True(t, fs.FieldRequired(domain.FieldExpectedPrice))
	assert.False(t, fs.FieldRequired(domain.FieldDeposit))
}

func TestResidentialSellDropsTenantFields(t *testing.T) {
	fs, ok := domain.FieldSetFor(domain.CategoryResidential, domain.DealSell)
	require.True(t, ok)

	// При продаже нет депозита и предпочитаемых жильцов
	assert.False(t, fs.FieldVisible(domain.FieldDeposit))
	assert.False(t, fs.FieldVisible(domain.FieldPreferredTenants))
	assert.True(t, fs.FieldVisible(domain.FieldExpectedPrice))
}

func TestCommercialFields(t *testing.T) {
	fs, ok := domain.FieldSetFor(domain.CategoryCommercial, domain.DealRent)
	require.True(t, ok)

	assert.True(t, fs.FieldVisible(domain.FieldBuildingType))
	assert.True(t, fs.FieldVisible(domain.FieldFloorType))
	assert.True(t, fs.FieldVisible(domain.FieldPropertyAge))
	assert.False(t, fs.FieldVisible(domain.FieldBHKType))
	assert.True(t, fs.FieldRequired(domain.FieldBuildingType))
}

func TestPlotFieldsHideResidentialOnes(t *testing.T) {
	for _, deal := range []domain.DealType{domain.DealSell, domain.DealResell} {
		fs, ok := domain.FieldSetFor(domain.CategoryPlot, deal)
		require.True(t, ok)

		assert.True(t, fs.FieldVisible(domain.FieldPlotArea))
		assert.True(t, fs.FieldVisible(domain.FieldLength))
		assert.True(t, fs.FieldVisible(domain.FieldWidth))
		assert.True(t, fs.FieldVisible(domain.FieldBoundaryWall))

		assert.False(t, fs.FieldVisible(domain.FieldBHKType))
		assert.False(t, fs.FieldVisible(domain.FieldFloor))
		assert.False(t, fs.FieldVisible(domain.FieldFurnishing))

		assert.True(t, fs.FieldRequired(domain.FieldPlotArea))
	}
}

func TestDashboardAggregateApply(t *testing.T) {
	agg := domain.DashboardAggregate{}

	agg.Apply(domain.CounterDelta{
		domain.CounterProperties: 12,
		domain.CounterAmenities:  7,
	})
	assert.Equal(t, int64(12), agg.PropertyCount)
	assert.Equal(t, int64(7), agg.AmenityCount)
	assert.Equal(t, int64(0), agg.PackageCount)

	// По каждому ключу побеждает последний писатель
	agg.Apply(domain.CounterDelta{domain.CounterProperties: 0})
	assert.Equal(t, int64(0), agg.PropertyCount)
	assert.Equal(t, int64(7), agg.AmenityCount)
}
