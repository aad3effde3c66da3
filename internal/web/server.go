// Package web serves one game session over HTTP for rendering clients and
// pushes every committed change to websocket subscribers.
package web

import (
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chesscore-go/internal/game"
	"github.com/lgbarn/chesscore-go/internal/output"
)

// Server hosts a single game session. Every handler holds mu for its
// whole call, so the session sees one request at a time.
type Server struct {
	mu      sync.Mutex
	session *game.Session

	hub    *Hub
	router *mux.Router
	logger zerolog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithHub sets the websocket hub. Without one, /ws is not served and
// changes are not pushed.
func WithHub(hub *Hub) Option {
	return func(s *Server) {
		s.hub = hub
	}
}

// NewServer creates a server for session.
func NewServer(session *game.Session, opts ...Option) *Server {
	s := &Server{
		session: session,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/position", byMethod(s.handlePosition, s.handleLoad))
	api.HandleFunc("/squares/{square}", s.handleSquare).Methods(http.MethodGet)
	api.HandleFunc("/moves", byMethod(s.handleLegalMoves, s.handleSubmit))
	api.HandleFunc("/moves/{square}", s.handleTargets).Methods(http.MethodGet)
	api.HandleFunc("/undo", s.handleUndo).Methods(http.MethodPost)

	if s.hub != nil {
		r.HandleFunc("/ws", s.handleWebSocket).Methods(http.MethodGet)
	}
	return r
}

// byMethod serves GET and POST on one route and answers 405 to anything
// else. mux reports a method mismatch as 404 when a path is registered
// once per method, so such paths are registered once and split here.
func byMethod(get, post http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			get(w, r)
		case http.MethodPost:
			post(w, r)
		default:
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodPost)
			writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed", Code: CodeMethodNotAllowed})
		}
	}
}

// positionView builds the current view. Callers hold mu.
func (s *Server) positionView() (*output.PositionView, error) {
	return output.NewPositionView(s.session)
}

// publish pushes view to websocket clients. Callers hold mu, so updates
// are queued in commit order.
func (s *Server) publish(view *output.PositionView) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(Update{Type: "position", Data: view})
}
