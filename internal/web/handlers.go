package web

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/output"
)

// MoveRequest is the body of POST /api/moves.
type MoveRequest struct {
	Move string `json:"move"`
}

// LoadRequest is the body of POST /api/position.
type LoadRequest struct {
	FEN string `json:"fen"`
}

// MovesResponse is the body of GET /api/moves.
type MovesResponse struct {
	Moves []string `json:"moves"`
}

// TargetsResponse is the body of GET /api/moves/{square}.
type TargetsResponse struct {
	From    string              `json:"from"`
	Targets []output.TargetView `json:"targets"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePosition(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	view, err := s.positionView()
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleSquare(w http.ResponseWriter, r *http.Request) {
	sq, ok := chess.ParseSquare(mux.Vars(r)["square"])
	if !ok {
		writeNotFound(w, "no such square")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, output.NewSquareView(s.session, sq))
}

func (s *Server) handleLegalMoves(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	moves, err := s.session.LegalMoves()
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MovesResponse{Moves: output.MoveTexts(moves)})
}

func (s *Server) handleTargets(w http.ResponseWriter, r *http.Request) {
	sq, ok := chess.ParseSquare(mux.Vars(r)["square"])
	if !ok {
		writeNotFound(w, "no such square")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	targets, err := s.session.Targets(sq)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TargetsResponse{From: sq.String(), Targets: output.NewTargetViews(targets)})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.session.Submit(req.Move); err != nil {
		s.writeError(w, err)
		return
	}
	s.respondChanged(w)
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.Undo(); err != nil {
		s.writeError(w, err)
		return
	}
	s.respondChanged(w)
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	var req LoadRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.Load(req.FEN); err != nil {
		s.writeError(w, err)
		return
	}
	s.respondChanged(w)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	view, err := s.positionView()
	if err != nil {
		s.writeError(w, err)
		return
	}
	// No move can commit until the client is registered, so every later
	// change reaches it.
	s.hub.serveWS(w, r, Update{Type: "position", Data: view})
}

// respondChanged writes the new position and publishes it. Callers hold mu.
func (s *Server) respondChanged(w http.ResponseWriter) {
	view, err := s.positionView()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.publish(view)
	writeJSON(w, http.StatusOK, view)
}

// decodeJSON decodes a request body. Failures wrap errors.ErrMalformedInput.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrapf(errors.ErrMalformedInput, "request body: %v", err)
	}
	return nil
}
