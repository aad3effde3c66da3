package web

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Error codes.
const (
	CodeMalformedInput   = "malformed_input"
	CodeMalformedFEN     = "malformed_fen"
	CodeIllegalMove      = "illegal_move"
	CodeNotFound         = "not_found"
	CodeMethodNotAllowed = "method_not_allowed"
	CodeInternal         = "internal"
)

// classify maps an error to its HTTP status and code.
func classify(err error) (int, string) {
	switch {
	case stderrors.Is(err, errors.ErrMalformedFEN):
		return http.StatusBadRequest, CodeMalformedFEN
	case stderrors.Is(err, errors.ErrMalformedInput):
		return http.StatusBadRequest, CodeMalformedInput
	case stderrors.Is(err, errors.ErrIllegalMove):
		return http.StatusUnprocessableEntity, CodeIllegalMove
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	if status == http.StatusInternalServerError {
		s.logger.Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error(), Code: code})
}

func writeNotFound(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{Error: msg, Code: CodeNotFound})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
