package dialogue

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Aman24100/Voice-Operated-OTC-Trading-Bot/internal/nlu"
	"github.com/Aman24100/Voice-Operated-OTC-Trading-Bot/internal/pricing"
	"github.com/google/uuid"
)

// Engine drives the per-turn conversation state machine over the store.
type Engine struct {
	store  *Store
	prices pricing.Lookup
	now    func() time.Time
}

func NewEngine(store *Store, prices pricing.Lookup) *Engine {
	return &Engine{store: store, prices: prices, now: time.Now}
}

type StartResult struct {
	SessionID string
	Greeting  string
}

type HistoryResult struct {
	Messages []Message
	Ended    bool
}

// StartSession allocates a new session collecting the exchange first, with
// the greeting as the first bot history entry.
func (e *Engine) StartSession() StartResult {
	now := e.now()
	sess := &Session{
		ID: uuid.NewString(),
		Messages: []Message{
			{Sender: SenderBot, Text: greetingMessage, Timestamp: now},
		},
		CreatedAt:   now,
		CurrentStep: StepExchange,
	}
	e.store.Upsert(sess)
	slog.Info("started new session", "session_id", sess.ID)
	return StartResult{SessionID: sess.ID, Greeting: greetingMessage}
}

// HandleUtterance processes one turn: extract candidates, resolve slots,
// then either prompt for the next missing parameter or finalize the order
// against the live market price. The whole turn runs inside the store's
// critical section.
func (e *Engine) HandleUtterance(ctx context.Context, sessionID, transcript string, timestamp time.Time) (string, error) {
	transcript = strings.TrimSpace(transcript)
	var response string

	err := e.store.Update(sessionID, func(sess *Session) error {
		if sess.Ended {
			return ErrSessionEnded
		}
		if timestamp.IsZero() {
			timestamp = e.now()
		}
		sess.Messages = append(sess.Messages, Message{Sender: SenderUser, Text: transcript, Timestamp: timestamp})

		isCorrection := nlu.IsCorrection(transcript)
		cand := nlu.ExtractCandidates(transcript, sess.Quantity != nil)
		updated := resolveSlots(sess, cand, isCorrection)
		slog.Info("utterance processed",
			"session_id", sessionID, "correction", isCorrection, "updated_slots", updated)

		if missing := sess.missingSteps(); len(missing) > 0 {
			sess.CurrentStep = missing[0]
			if len(updated) == 0 {
				sess.RetryCount++
			}
			response = e.collectingResponse(sess, updated)
		} else {
			response = e.finalize(ctx, sess)
		}

		sess.Messages = append(sess.Messages, Message{Sender: SenderBot, Text: response, Timestamp: e.now()})
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrInvalidSession
		}
		return "", err
	}
	slog.Info("bot response", "session_id", sessionID, "response", response)
	return response, nil
}

// finalize is the one-shot transition to completed. A failed price lookup
// still confirms the order, with a warning fragment in place of the market
// price.
func (e *Engine) finalize(ctx context.Context, sess *Session) string {
	marketPrice, err := e.prices.LastPrice(ctx, sess.Exchange, sess.TradingPair)
	if err != nil {
		slog.Error("price lookup failed at finalization",
			"session_id", sess.ID, "exchange", sess.Exchange, "pair", sess.TradingPair, "error", err)
	}
	sess.Ended = true
	sess.RetryCount = 0
	return confirmationMessage(sess, marketPrice, err != nil)
}

func (e *Engine) collectingResponse(sess *Session, updated []string) string {
	ack := acknowledgment(updated)
	idx := min(sess.RetryCount, 2)
	if ack == "" && idx == 0 {
		// Without an acknowledgment the first scripted prompt is withheld in
		// favour of the generic fallback.
		return fallbackMessage
	}
	prompt := promptFor(sess.CurrentStep, sess.TradingPair, sess.RetryCount)
	if ack == "" {
		return prompt
	}
	return ack + " " + prompt
}

// History returns the transcript snapshot, sweeping expired sessions first.
func (e *Engine) History(sessionID string) (HistoryResult, error) {
	if removed := e.store.SweepExpired(); removed > 0 {
		slog.Info("swept expired sessions", "count", removed)
	}
	sess, err := e.store.Get(sessionID)
	if err != nil {
		return HistoryResult{}, err
	}
	return HistoryResult{Messages: sess.Messages, Ended: sess.Ended}, nil
}

// EndSession forces Ended without finalizing the collected parameters.
func (e *Engine) EndSession(sessionID string) error {
	err := e.store.Update(sessionID, func(sess *Session) error {
		sess.Ended = true
		return nil
	})
	if err == nil {
		slog.Info("session ended by caller", "session_id", sessionID)
	}
	return err
}
