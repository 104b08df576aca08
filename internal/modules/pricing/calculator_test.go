package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelgoals/internal/domain"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func parisTour() *domain.Package {
	return &domain.Package{
		Name:         "Paris Romance Tour",
		MaxTravelers: 10,
		PriceTable: domain.PriceTable{
			AdultPrice:         dec("1200"),
			ChildPrice:         dec("900"),
			InfantPrice:        dec("300"),
			EconomyAdultPrice:  decPtr("1200"),
			EconomyChildPrice:  decPtr("900"),
			EconomyInfantPrice: decPtr("300"),
		},
	}
}

func TestCalculate_EconomyWeightedSum(t *testing.T) {
	q, err := Calculate(parisTour(), domain.FareEconomy, domain.PassengerCounts{Adults: 2, Children: 1})

	require.NoError(t, err)
	assert.True(t, q.Total.Equal(dec("3300.00")), "expected 3300.00, got %s", q.Total)
}

func TestCalculate_TierFallbackToBasePrice(t *testing.T) {
	pkg := parisTour()
	pkg.EconomyChildPrice = nil // child tier price unset: base child price applies

	q, err := Calculate(pkg, domain.FareEconomy, domain.PassengerCounts{Adults: 1, Children: 2, Infants: 1})

	require.NoError(t, err)
	assert.True(t, q.ChildRate.Equal(dec("900")))
	assert.True(t, q.Total.Equal(dec("3300.00")))
}

func TestCalculate_BusinessClass(t *testing.T) {
	pkg := parisTour()
	pkg.BusinessAdultPrice = decPtr("2500")
	pkg.BusinessChildPrice = decPtr("1800")

	q, err := Calculate(pkg, domain.FareBusiness, domain.PassengerCounts{Adults: 2, Children: 1, Infants: 1})

	require.NoError(t, err)
	// infant falls back to the base infant price
	assert.True(t, q.InfantRate.Equal(dec("300")))
	assert.True(t, q.Total.Equal(dec("7100.00")))
}

func TestCalculate_BusinessNotOffered(t *testing.T) {
	_, err := Calculate(parisTour(), domain.FareBusiness, domain.PassengerCounts{Adults: 1})

	assert.ErrorIs(t, err, ErrFareClassNotOffered)
}

func TestCalculate_RequiresAdult(t *testing.T) {
	_, err := Calculate(parisTour(), domain.FareEconomy, domain.PassengerCounts{Children: 2})
	assert.ErrorIs(t, err, ErrNoAdults)

	_, err = Calculate(parisTour(), domain.FareEconomy, domain.PassengerCounts{})
	assert.ErrorIs(t, err, ErrNoAdults)
}

func TestCalculate_RejectsNegativeCounts(t *testing.T) {
	_, err := Calculate(parisTour(), domain.FareEconomy, domain.PassengerCounts{Adults: 1, Infants: -1})

	assert.ErrorIs(t, err, ErrNegativeCount)
}

func TestCalculate_CapacityLimit(t *testing.T) {
	pkg := parisTour()
	pkg.MaxTravelers = 3

	_, err := Calculate(pkg, domain.FareEconomy, domain.PassengerCounts{Adults: 2, Children: 2})
	assert.ErrorIs(t, err, ErrOverCapacity)

	// zero max_travelers means unlimited
	pkg.MaxTravelers = 0
	_, err = Calculate(pkg, domain.FareEconomy, domain.PassengerCounts{Adults: 20})
	assert.NoError(t, err)
}

func TestCalculate_DecimalPrecision(t *testing.T) {
	pkg := parisTour()
	pkg.EconomyAdultPrice = decPtr("1199.99")

	q, err := Calculate(pkg, domain.FareEconomy, domain.PassengerCounts{Adults: 3})

	require.NoError(t, err)
	assert.True(t, q.Total.Equal(dec("3599.97")))
}
