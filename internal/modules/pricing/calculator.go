// Package pricing derives a booking's total price from a package's price
// table, the selected fare class and the passenger counts.
package pricing

import (
	"github.com/shopspring/decimal"

	"travelgoals/internal/domain"
)

// Quote is the result of a price calculation. Per-type prices are the
// effective prices after tier fallback, so callers can itemize.
type Quote struct {
	FareClass  domain.FareClass `json:"fare_class"`
	AdultRate  decimal.Decimal  `json:"adult_rate"`
	ChildRate  decimal.Decimal  `json:"child_rate"`
	InfantRate decimal.Decimal  `json:"infant_rate"`
	Total      decimal.Decimal  `json:"total"`
}

// Calculate prices a booking: total = adults×adult + children×child +
// infants×infant, using the selected fare class's tier prices and falling
// back to the base price for any passenger type whose tier price is unset.
func Calculate(pkg *domain.Package, class domain.FareClass, pax domain.PassengerCounts) (*Quote, error) {
	if pax.Adults < 0 || pax.Children < 0 || pax.Infants < 0 {
		return nil, ErrNegativeCount
	}
	if pax.Adults < 1 {
		return nil, ErrNoAdults
	}
	if pkg.MaxTravelers > 0 && pax.Total() > pkg.MaxTravelers {
		return nil, ErrOverCapacity
	}

	var adult, child, infant decimal.Decimal
	switch class {
	case domain.FareEconomy:
		adult = fallback(pkg.EconomyAdultPrice, pkg.AdultPrice)
		child = fallback(pkg.EconomyChildPrice, pkg.ChildPrice)
		infant = fallback(pkg.EconomyInfantPrice, pkg.InfantPrice)
	case domain.FareBusiness:
		// nil across all business fields means the class isn't sold
		if pkg.BusinessAdultPrice == nil && pkg.BusinessChildPrice == nil && pkg.BusinessInfantPrice == nil {
			return nil, ErrFareClassNotOffered
		}
		adult = fallback(pkg.BusinessAdultPrice, pkg.AdultPrice)
		child = fallback(pkg.BusinessChildPrice, pkg.ChildPrice)
		infant = fallback(pkg.BusinessInfantPrice, pkg.InfantPrice)
	default:
		return nil, ErrFareClassUnknown
	}

	total := adult.Mul(decimal.NewFromInt(int64(pax.Adults))).
		Add(child.Mul(decimal.NewFromInt(int64(pax.Children)))).
		Add(infant.Mul(decimal.NewFromInt(int64(pax.Infants))))

	return &Quote{
		FareClass:  class,
		AdultRate:  adult,
		ChildRate:  child,
		InfantRate: infant,
		Total:      total.Round(2),
	}, nil
}

func fallback(tier *decimal.Decimal, base decimal.Decimal) decimal.Decimal {
	if tier != nil {
		return *tier
	}
	return base
}
