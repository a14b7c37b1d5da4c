package balance

import (
	"testing"

	"github.com/insama/insama/internal/models"
)

func heldCard(holder string, minutes int, own models.Ownership) models.Card {
	return models.Card{
		ID:           "card-" + holder,
		Title:        "Card",
		TimeEstimate: minutes,
		Holder:       holder,
		Ownership:    own,
	}
}

func TestAnalyze(t *testing.T) {
	t.Run("empty deck", func(t *testing.T) {
		a := Analyze(nil, nil)
		if a.Partner1Percent != 0 || a.Partner2Percent != 0 {
			t.Errorf("Expected zero percents, got %d/%d", a.Partner1Percent, a.Partner2Percent)
		}
		if a.BalanceScore != 100 {
			t.Errorf("Expected score 100 for no gap, got %d", a.BalanceScore)
		}
		if !a.Balanced || !a.VeryBalanced {
			t.Error("Expected empty deck to read balanced")
		}
	})

	t.Run("even split", func(t *testing.T) {
		cards := []models.Card{
			heldCard(models.PartnerTag1, 60, models.Ownership{}),
			heldCard(models.PartnerTag2, 60, models.Ownership{}),
		}
		a := Analyze(cards, nil)
		if a.Partner1Minutes != 60 || a.Partner2Minutes != 60 {
			t.Errorf("Expected 60/60 minutes, got %d/%d", a.Partner1Minutes, a.Partner2Minutes)
		}
		if a.Partner1Percent != 50 || a.Partner2Percent != 50 {
			t.Errorf("Expected 50/50, got %d/%d", a.Partner1Percent, a.Partner2Percent)
		}
		if a.BalanceScore != 100 {
			t.Errorf("Expected score 100, got %d", a.BalanceScore)
		}
	})

	t.Run("lopsided split drops the score", func(t *testing.T) {
		cards := []models.Card{
			heldCard(models.PartnerTag1, 90, models.Ownership{}),
			heldCard(models.PartnerTag2, 10, models.Ownership{}),
		}
		a := Analyze(cards, nil)
		if a.Partner1Percent != 90 || a.Partner2Percent != 10 {
			t.Errorf("Expected 90/10, got %d/%d", a.Partner1Percent, a.Partner2Percent)
		}
		// Gap of 80 points costs 160, floored at zero.
		if a.BalanceScore != 0 {
			t.Errorf("Expected score 0, got %d", a.BalanceScore)
		}
		if a.Balanced || a.VeryBalanced {
			t.Error("Expected lopsided split to read unbalanced")
		}
	})

	t.Run("boundary gaps", func(t *testing.T) {
		tests := []struct {
			name         string
			p1, p2       int
			balanced     bool
			veryBalanced bool
		}{
			{"five point gap is very balanced", 105, 95, true, true},
			{"fifteen point gap is balanced", 115, 85, true, false},
			{"sixteen point gap is not", 116, 84, false, false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				cards := []models.Card{
					heldCard(models.PartnerTag1, tt.p1, models.Ownership{}),
					heldCard(models.PartnerTag2, tt.p2, models.Ownership{}),
				}
				a := Analyze(cards, nil)
				if a.Balanced != tt.balanced {
					t.Errorf("Balanced: expected %v, got %v (%d/%d)", tt.balanced, a.Balanced, a.Partner1Percent, a.Partner2Percent)
				}
				if a.VeryBalanced != tt.veryBalanced {
					t.Errorf("VeryBalanced: expected %v, got %v", tt.veryBalanced, a.VeryBalanced)
				}
			})
		}
	})

	t.Run("not applicable cards are excluded", func(t *testing.T) {
		na := heldCard(models.PartnerTag1, 500, models.Ownership{Think: models.PartnerTag1})
		na.NotApplicable = true
		cards := []models.Card{
			na,
			heldCard(models.PartnerTag2, 30, models.Ownership{}),
			{ID: "card-unheld", TimeEstimate: 20},
		}
		a := Analyze(cards, nil)
		if a.NotApplicableCards != 1 {
			t.Errorf("Expected 1 not applicable, got %d", a.NotApplicableCards)
		}
		if a.Partner1Minutes != 0 {
			t.Errorf("Expected not-applicable minutes excluded, got %d", a.Partner1Minutes)
		}
		if a.Partner1Phases.Think != 0 {
			t.Error("Expected not-applicable phases excluded")
		}
		if a.UnheldCards != 1 {
			t.Errorf("Expected 1 unheld card, got %d", a.UnheldCards)
		}
	})

	t.Run("phase counts follow ownership slots", func(t *testing.T) {
		cards := []models.Card{
			heldCard(models.PartnerTag1, 10, models.Ownership{Think: models.PartnerTag1, Plan: models.PartnerTag2, Do: models.SharedTag}),
			heldCard(models.PartnerTag2, 10, models.Ownership{Think: models.PartnerTag1, Plan: models.PartnerTag1, Do: models.PartnerTag2}),
		}
		a := Analyze(cards, nil)
		if a.Partner1Phases != (PhaseCounts{Think: 2, Plan: 1, Do: 0}) {
			t.Errorf("Unexpected partner1 phases: %+v", a.Partner1Phases)
		}
		if a.Partner2Phases != (PhaseCounts{Think: 0, Plan: 1, Do: 1}) {
			t.Errorf("Unexpected partner2 phases: %+v", a.Partner2Phases)
		}
	})

	t.Run("check-ins are counted", func(t *testing.T) {
		checkIns := []models.CheckInSession{{ID: "ci-1"}, {ID: "ci-2"}}
		a := Analyze(nil, checkIns)
		if a.TotalCheckIns != 2 {
			t.Errorf("Expected 2 check-ins, got %d", a.TotalCheckIns)
		}
	})
}
