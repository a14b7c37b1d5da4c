package balance

import (
	"github.com/shopspring/decimal"

	"github.com/insama/insama/internal/models"
)

// Monthly normalization factors: weekly bills recur 52 times a year.
var (
	weeksPerYear   = decimal.NewFromInt(52)
	monthsPerYear  = decimal.NewFromInt(12)
	monthsQuarter  = decimal.NewFromInt(3)
	hundred        = decimal.NewFromInt(100)
	defaultPercent = decimal.NewFromInt(50)
)

// Totals holds monthly bill amounts attributed per partner. Decimal
// arithmetic keeps the cent-level figures exact; values are rounded to
// two places.
type Totals struct {
	Partner1   decimal.Decimal `json:"partner1"`
	Partner2   decimal.Decimal `json:"partner2"`
	Shared     decimal.Decimal `json:"shared"`
	Unassigned decimal.Decimal `json:"unassigned"`
	Total      decimal.Decimal `json:"total"`
}

// MonthlyAmount normalizes a bill's amount to a monthly figure:
// weekly x 52/12, quarterly / 3, annual / 12.
func MonthlyAmount(b models.Bill) decimal.Decimal {
	amount := decimal.NewFromFloat(b.Amount)
	switch b.Frequency {
	case models.BillFrequencyWeekly:
		return amount.Mul(weeksPerYear).Div(monthsPerYear).Round(2)
	case models.BillFrequencyQuarterly:
		return amount.Div(monthsQuarter).Round(2)
	case models.BillFrequencyAnnually:
		return amount.Div(monthsPerYear).Round(2)
	default:
		return amount.Round(2)
	}
}

// MonthlyTotals sums the active bills' monthly amounts into per-partner
// buckets. A shared bill is split by its split-percentage record,
// defaulting to an even 50/50; each partner's share lands in their bucket
// and the Shared bucket carries the combined figure.
func MonthlyTotals(bills []models.Bill) Totals {
	var t Totals
	for _, b := range bills {
		if !b.Active {
			continue
		}
		monthly := MonthlyAmount(b)
		t.Total = t.Total.Add(monthly)

		switch b.Responsibility() {
		case models.PartnerTag1:
			t.Partner1 = t.Partner1.Add(monthly)
		case models.PartnerTag2:
			t.Partner2 = t.Partner2.Add(monthly)
		case models.SharedTag:
			p1 := defaultPercent
			if b.Split != nil {
				p1 = decimal.NewFromInt(int64(b.Split.Partner1))
			}
			share1 := monthly.Mul(p1).Div(hundred).Round(2)
			t.Partner1 = t.Partner1.Add(share1)
			t.Partner2 = t.Partner2.Add(monthly.Sub(share1))
			t.Shared = t.Shared.Add(monthly)
		default:
			t.Unassigned = t.Unassigned.Add(monthly)
		}
	}
	return t
}
