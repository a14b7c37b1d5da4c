package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/insama/insama/internal/models"
	"github.com/insama/insama/internal/session"
	"github.com/insama/insama/internal/storage"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps domain and storage errors to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, storage.ErrVersionConflict),
		errors.Is(err, session.ErrSessionMerged),
		errors.Is(err, session.ErrResponsesMissing):
		status = http.StatusConflict
	case errors.Is(err, storage.ErrParse),
		errors.Is(err, session.ErrUnknownPartner):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

// --- Generic session records ---

type saveRecordRequest struct {
	SessionID string          `json:"sessionId"`
	Data      json.RawMessage `json:"data"`
}

func (s *Server) handleSaveRecord(w http.ResponseWriter, r *http.Request) {
	var req saveRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.SessionID == "" || len(req.Data) == 0 {
		badRequest(w, "sessionId and data required")
		return
	}

	if _, err := s.store.PutRecord(r.Context(), req.SessionID, req.Data); err != nil {
		slog.Error("SaveRecord failed", "session_id", req.SessionID, "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "sessionId": req.SessionID})
}

func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.GetRecord(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

type updateRecordRequest struct {
	Data json.RawMessage `json:"data"`
}

// handleUpdateRecord shallow-merges the update into the stored document.
// Only top-level keys are replaced; nested objects are swapped wholesale.
func (s *Server) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req updateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	existing, err := s.store.GetRecord(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	merged, err := mergeJSON(existing.Data, req.Data)
	if err != nil {
		badRequest(w, fmt.Sprintf("cannot merge update: %v", err))
		return
	}

	if _, err := s.store.PutRecord(r.Context(), id, merged); err != nil {
		slog.Error("UpdateRecord failed", "session_id", id, "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// mergeJSON overlays the top-level keys of update onto base.
func mergeJSON(base, update json.RawMessage) (json.RawMessage, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(base, &doc); err != nil {
		return nil, fmt.Errorf("stored document is not an object: %w", err)
	}
	var patch map[string]json.RawMessage
	if err := json.Unmarshal(update, &patch); err != nil {
		return nil, fmt.Errorf("update is not an object: %w", err)
	}
	for k, v := range patch {
		doc[k] = v
	}
	return json.Marshal(doc)
}

func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteRecord(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	count, err := s.store.CountRecords(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "OK", "sessions": count})
}

// --- Collaborative sessions ---

type createSessionRequest struct {
	Partner1 models.Partner `json:"partner1"`
	Partner2 models.Partner `json:"partner2"`
}

type sessionResponse struct {
	Session *models.CollaborativeSession `json:"session"`
	Links   *partnerLinks                `json:"links,omitempty"`
}

type partnerLinks struct {
	Partner1 string `json:"partner1"`
	Partner2 string `json:"partner2"`
}

func (s *Server) links(sessionID string) *partnerLinks {
	l1, err1 := session.PartnerLink(s.baseURL, sessionID, models.PartnerTag1)
	l2, err2 := session.PartnerLink(s.baseURL, sessionID, models.PartnerTag2)
	if err1 != nil || err2 != nil {
		return nil
	}
	return &partnerLinks{Partner1: l1, Partner2: l2}
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.Partner1.Name == "" || req.Partner2.Name == "" {
		badRequest(w, "both partner names required")
		return
	}

	sess, err := s.sessions.Create(r.Context(), req.Partner1, req.Partner2)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{Session: sess, Links: s.links(sess.ID)})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Session: sess, Links: s.links(sess.ID)})
}

func (s *Server) handleSubmitResponse(w http.ResponseWriter, r *http.Request) {
	var resp models.PartnerResponse
	if err := json.NewDecoder(r.Body).Decode(&resp); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if !models.ValidPartnerTag(resp.PartnerID) {
		badRequest(w, "partnerId must be partner1 or partner2")
		return
	}

	sess, err := s.sessions.Submit(r.Context(), r.PathValue("id"), resp)
	if err != nil {
		writeError(w, err)
		return
	}
	if sess.Status == models.SessionCompleted {
		sessionsCompleted.Inc()
	}
	writeJSON(w, http.StatusOK, sessionResponse{Session: sess})
}

type resolveRequest struct {
	Kind       models.ResolutionKind `json:"kind"`
	Custom     *models.CustomValue   `json:"custom,omitempty"`
	ResolvedBy string                `json:"resolvedBy"`
}

func (s *Server) handleResolveConflict(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	switch req.Kind {
	case models.ResolvePartner1, models.ResolvePartner2, models.ResolveShared, models.ResolveCustom:
	default:
		badRequest(w, "kind must be partner1, partner2, shared, or custom")
		return
	}
	if !models.ValidPartnerTag(req.ResolvedBy) {
		badRequest(w, "resolvedBy must be partner1 or partner2")
		return
	}

	sess, err := s.sessions.ResolveConflict(r.Context(),
		r.PathValue("id"), r.PathValue("conflictID"), req.Kind, req.Custom, req.ResolvedBy)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Session: sess})
}

func (s *Server) handleFinalize(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Finalize(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	sessionsMerged.Inc()
	writeJSON(w, http.StatusOK, sessionResponse{Session: sess})
}
