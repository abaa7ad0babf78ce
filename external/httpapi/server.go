package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Aman24100/Voice-Operated-OTC-Trading-Bot/internal/config"
	"github.com/Aman24100/Voice-Operated-OTC-Trading-Bot/internal/dialogue"
)

const readHeaderTimeout = 10 * time.Second

// Server is the inbound HTTP boundary around the conversation engine.
type Server struct {
	httpServer *http.Server
}

func NewServer(cfg *config.Config, engine *dialogue.Engine) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewHandler(engine),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// NewHandler builds the route mux; split out so tests can drive it through
// httptest without binding a port.
func NewHandler(engine *dialogue.Engine) http.Handler {
	h := &handlers{engine: engine}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /start-call", h.startCall)
	mux.HandleFunc("POST /webhook", h.webhook)
	mux.HandleFunc("GET /poll-messages/{call_id}", h.pollMessages)
	mux.HandleFunc("POST /end-call", h.endCall)
	return mux
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}
