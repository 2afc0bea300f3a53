package handlers

import (
	"log/slog"
	"net/http"

	"xcelliti-backend/internal/auth"
	"xcelliti-backend/internal/config"
	"xcelliti-backend/internal/middleware"
	"xcelliti-backend/internal/validation"
)

type Server struct {
	Cfg  *config.Config
	Val  *validation.Validator
	Log  *slog.Logger
	Auth *auth.Service
	JWT  *auth.Manager
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}
