package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/insama/insama/internal/balance"
	"github.com/insama/insama/internal/catalog"
	"github.com/insama/insama/internal/models"
	"github.com/insama/insama/internal/storage"
)

// handleCatalogCards hands out a freshly instantiated card deck. Each call
// mints new ids, matching how a couple starts from the templates.
func (s *Server) handleCatalogCards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"cards": catalog.NewCards(time.Now())})
}

// handleCatalogBills hands out a freshly instantiated bill list.
func (s *Server) handleCatalogBills(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"bills": catalog.NewBills(time.Now())})
}

type balanceResponse struct {
	Workload balance.Analysis `json:"workload"`
	Finances balance.Totals   `json:"finances"`
}

// handleRecordBalance computes the balance summary over a stored couple
// document: workload split across the card deck and monthly bill totals.
func (s *Server) handleRecordBalance(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	rec, err := s.store.GetRecord(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	var couple models.Couple
	if err := json.Unmarshal(rec.Data, &couple); err != nil {
		writeError(w, fmt.Errorf("%w: record %s: %v", storage.ErrParse, id, err))
		return
	}

	writeJSON(w, http.StatusOK, balanceResponse{
		Workload: balance.Analyze(couple.Cards, couple.CheckIns),
		Finances: balance.MonthlyTotals(couple.Bills),
	})
}
