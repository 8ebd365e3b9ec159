package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/invitetrackhq/invite-tracker-api/config"
	"github.com/invitetrackhq/invite-tracker-api/tracker"
)

// Reconcile exported for testing purposes
type Reconcile struct {
	Reconciler *tracker.Reconciler
}

type startSessionRequest struct {
	ActorID string `json:"actorId"`
}

type resolveMemberRequest struct {
	MemberID   string `json:"memberId"`
	ReferrerID string `json:"referrerId"`
}

// StartSessionHandler scans a space and opens a reconciliation session
func (h Reconcile) StartSessionHandler(w http.ResponseWriter, r *http.Request) {
	spaceID := mux.Vars(r)["space_id"]

	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	session, err := h.Reconciler.Start(r.Context(), spaceID, req.ActorID)
	if err != nil {
		config.ErrorStatus("failed to start reconciliation session", http.StatusInternalServerError, w, err)
		return
	}

	writeSession(w, http.StatusCreated, session)
}

// GetSessionHandler returns the current state of a session
func (h Reconcile) GetSessionHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	session, err := h.Reconciler.Get(sessionID)
	if err != nil {
		config.ErrorStatus("failed to get reconciliation session", sessionStatus(err), w, err)
		return
	}

	writeSession(w, http.StatusOK, session)
}

// ResolveMemberHandler submits the operator's attribution for the pending member
func (h Reconcile) ResolveMemberHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	var req resolveMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	session, err := h.Reconciler.Resolve(r.Context(), sessionID, req.MemberID, req.ReferrerID)
	if err != nil {
		config.ErrorStatus("failed to resolve member", sessionStatus(err), w, err)
		return
	}

	writeSession(w, http.StatusOK, session)
}

// CancelSessionHandler abandons a session, keeping resolutions already applied
func (h Reconcile) CancelSessionHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	session, err := h.Reconciler.Cancel(sessionID)
	if err != nil {
		config.ErrorStatus("failed to cancel reconciliation session", sessionStatus(err), w, err)
		return
	}

	writeSession(w, http.StatusOK, session)
}

func sessionStatus(err error) int {
	switch {
	case errors.Is(err, tracker.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, tracker.ErrSessionExpired):
		return http.StatusGone
	case errors.Is(err, tracker.ErrMemberMismatch), errors.Is(err, tracker.ErrSessionClosed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeSession(w http.ResponseWriter, status int, session tracker.Session) {
	b, err := json.Marshal(session)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(status)
	w.Write(b)
}
