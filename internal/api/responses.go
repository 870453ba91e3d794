package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/moneysaver/offset-calculator/internal/logging"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Code      int    `json:"code"`
	Text      string `json:"text"`
	RequestID string `json:"request_id,omitempty"`
}

func setJSONResponseType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
}

func (s *Server) sendJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		s.serverErrorResponse(w, r, fmt.Errorf("encode response: %w", err))
		return
	}
	setJSONResponseType(w)
	w.WriteHeader(status)
	if _, err := w.Write(append(data, '\n')); err != nil {
		logging.LogError(s.logger, "failed to write response", err,
			slog.String("path", r.URL.Path),
			slog.String("request_id", RequestIDFromContext(r.Context())))
	}
}

func (s *Server) sendError(w http.ResponseWriter, r *http.Request, status int, text string) {
	s.sendJSON(w, r, status, ErrorResponse{
		Code:      status,
		Text:      text,
		RequestID: RequestIDFromContext(r.Context()),
	})
}

func (s *Server) badRequestResponse(w http.ResponseWriter, r *http.Request, text string) {
	s.sendError(w, r, http.StatusBadRequest, text)
}

func (s *Server) unprocessableResponse(w http.ResponseWriter, r *http.Request, err error) {
	s.sendError(w, r, http.StatusUnprocessableEntity, err.Error())
}

func (s *Server) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(s.logger, "internal server error", err,
		slog.String("path", r.URL.Path),
		slog.String("request_id", RequestIDFromContext(r.Context())))
	s.sendError(w, r, http.StatusInternalServerError, "internal server error")
}

func (s *Server) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	s.sendError(w, r, http.StatusNotFound, "resource not found")
}

func (s *Server) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	s.sendError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}
