// Package balance computes workload and finance analytics for a couple:
// how household time splits between partners, who carries the think/plan/
// do phases, and what the bills cost per month.
package balance

import (
	"github.com/insama/insama/internal/models"
)

// Thresholds on the percentage-point gap between the partners' time
// shares.
const (
	balancedGap     = 15
	veryBalancedGap = 5
)

// PhaseCounts tallies the think/plan/do slots one partner owns.
type PhaseCounts struct {
	Think int `json:"think"`
	Plan  int `json:"plan"`
	Do    int `json:"do"`
}

// Analysis summarizes how household work splits between the partners.
type Analysis struct {
	// Partner1Minutes and Partner2Minutes sum the time estimates of the
	// cards each partner holds.
	Partner1Minutes int `json:"partner1Minutes"`
	Partner2Minutes int `json:"partner2Minutes"`

	// Partner1Percent and Partner2Percent are rounded shares of the
	// total held time.
	Partner1Percent int `json:"partner1Percent"`
	Partner2Percent int `json:"partner2Percent"`

	// BalanceScore is 100 for a perfect split, dropping two points per
	// percentage point of gap, floored at zero.
	BalanceScore int `json:"balanceScore"`

	Balanced     bool `json:"isBalanced"`
	VeryBalanced bool `json:"isVeryBalanced"`

	Partner1Phases PhaseCounts `json:"partner1Phases"`
	Partner2Phases PhaseCounts `json:"partner2Phases"`

	// UnheldCards counts applicable cards nobody holds yet.
	UnheldCards        int `json:"unheldCards"`
	NotApplicableCards int `json:"notApplicableCards"`

	TotalCheckIns int `json:"totalCheckIns"`
}

// Analyze computes the workload analysis over the couple's card deck and
// check-in history. Cards marked not applicable are excluded from every
// figure except their own count.
func Analyze(cards []models.Card, checkIns []models.CheckInSession) Analysis {
	a := Analysis{TotalCheckIns: len(checkIns)}

	for _, c := range cards {
		if c.NotApplicable {
			a.NotApplicableCards++
			continue
		}

		switch c.Holder {
		case models.PartnerTag1:
			a.Partner1Minutes += c.TimeEstimate
		case models.PartnerTag2:
			a.Partner2Minutes += c.TimeEstimate
		default:
			a.UnheldCards++
		}

		countPhases(&a.Partner1Phases, c.Ownership, models.PartnerTag1)
		countPhases(&a.Partner2Phases, c.Ownership, models.PartnerTag2)
	}

	total := a.Partner1Minutes + a.Partner2Minutes
	if total > 0 {
		a.Partner1Percent = roundPercent(a.Partner1Minutes, total)
		a.Partner2Percent = roundPercent(a.Partner2Minutes, total)
	}

	gap := a.Partner1Percent - a.Partner2Percent
	if gap < 0 {
		gap = -gap
	}
	a.Balanced = gap <= balancedGap
	a.VeryBalanced = gap <= veryBalancedGap
	a.BalanceScore = 100 - 2*gap
	if a.BalanceScore < 0 {
		a.BalanceScore = 0
	}

	return a
}

func countPhases(pc *PhaseCounts, o models.Ownership, tag string) {
	if o.Think == tag {
		pc.Think++
	}
	if o.Plan == tag {
		pc.Plan++
	}
	if o.Do == tag {
		pc.Do++
	}
}

func roundPercent(part, total int) int {
	return int((float64(part)/float64(total))*100 + 0.5)
}
