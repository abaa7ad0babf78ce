package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Aman24100/Voice-Operated-OTC-Trading-Bot/internal/dialogue"
)

type handlers struct {
	engine *dialogue.Engine
}

type webhookRequest struct {
	CallID     string `json:"call_id"`
	Transcript string `json:"transcript"`
	Timestamp  string `json:"timestamp"`
}

type endCallRequest struct {
	CallID string `json:"call_id"`
}

func (h *handlers) startCall(w http.ResponseWriter, r *http.Request) {
	result := h.engine.StartSession()
	writeJSON(w, http.StatusOK, map[string]any{
		"call_id":         result.SessionID,
		"initial_message": result.Greeting,
	})
}

func (h *handlers) webhook(w http.ResponseWriter, r *http.Request) {
	var req webhookRequest
	// A malformed body is treated the same as an empty one; validation below
	// rejects the missing call id.
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.CallID == "" {
		slog.Warn("webhook with missing call_id")
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid or missing call_id"})
		return
	}

	var timestamp time.Time
	if req.Timestamp != "" {
		if ts, err := time.Parse(time.RFC3339, req.Timestamp); err == nil {
			timestamp = ts
		}
	}

	response, err := h.engine.HandleUtterance(r.Context(), req.CallID, req.Transcript, timestamp)
	if err != nil {
		switch {
		case errors.Is(err, dialogue.ErrInvalidSession):
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid or missing call_id"})
		case errors.Is(err, dialogue.ErrSessionEnded):
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Session has ended"})
		default:
			slog.Error("webhook turn failed", "call_id", req.CallID, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Internal error"})
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"response": response})
}

func (h *handlers) pollMessages(w http.ResponseWriter, r *http.Request) {
	callID := r.PathValue("call_id")
	history, err := h.engine.History(callID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":    "Session not found",
			"messages": []dialogue.Message{},
			"ended":    true,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"messages": history.Messages,
		"ended":    history.Ended,
	})
}

func (h *handlers) endCall(w http.ResponseWriter, r *http.Request) {
	var req endCallRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if err := h.engine.EndSession(req.CallID); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "Session not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "Session ended"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
