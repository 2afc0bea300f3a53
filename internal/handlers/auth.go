package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"xcelliti-backend/internal/auth"
	"xcelliti-backend/internal/httpx"
	"xcelliti-backend/internal/middleware"
	"xcelliti-backend/internal/transport"
)

const refreshCookieName = "xcelliti_refresh"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SessionResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req LoginRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("login: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("login: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(s.Val.ValidationErrors(err)))
		return
	}

	if s.JWT == nil {
		log.Warn("login: not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := s.Auth.Authorize(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			// Same message for unknown email and wrong password.
			log.Warn("login: invalid credentials")
			transport.WriteError(w, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		log.Error("login: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	accessToken, err := s.JWT.NewAccessToken(user.ID, user.Email)
	if err != nil {
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}
	refreshToken, err := s.JWT.NewRefreshToken(user.ID, user.Email)
	if err != nil {
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}

	setAuthCookies(w, accessToken, refreshToken, s.JWT.AccessTTL, s.JWT.RefreshTTL, s.Cfg.CookieSecure)
	log.Info("login: ok", slog.String("user_id", user.ID))
	transport.WriteJSON(w, http.StatusOK, SessionResponse{ID: user.ID, Email: user.Email})
}

func (s *Server) Refresh(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	if s.JWT == nil {
		log.Warn("refresh: not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
		return
	}

	cookie, err := r.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		log.Warn("refresh: missing refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}

	claims, err := s.JWT.Parse(cookie.Value)
	if err != nil || claims.Role != auth.RoleAdmin {
		log.Warn("refresh: invalid refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}

	accessToken, err := s.JWT.NewAccessToken(claims.UserID, claims.Email)
	if err != nil {
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}
	refreshToken, err := s.JWT.NewRefreshToken(claims.UserID, claims.Email)
	if err != nil {
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}

	setAuthCookies(w, accessToken, refreshToken, s.JWT.AccessTTL, s.JWT.RefreshTTL, s.Cfg.CookieSecure)
	log.Info("refresh: ok")
	transport.WriteJSON(w, http.StatusOK, SessionResponse{ID: claims.UserID, Email: claims.Email})
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	clearAuthCookies(w, s.Cfg.CookieSecure)
	log.Info("logout: ok")
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Session reports the authenticated identity; AdminAuth has already verified it.
func (s *Server) Session(w http.ResponseWriter, r *http.Request) {
	claims := middleware.SessionFromContext(r.Context())
	if claims == nil {
		transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, SessionResponse{ID: claims.UserID, Email: claims.Email})
}

func setAuthCookies(w http.ResponseWriter, access, refresh string, accessTTL, refreshTTL time.Duration, secure bool) {
	accessCookie := &http.Cookie{
		Name:     middleware.AccessCookieName,
		Value:    access,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(accessTTL.Seconds()),
	}
	refreshCookie := &http.Cookie{
		Name:     refreshCookieName,
		Value:    refresh,
		Path:     "/api/auth",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(refreshTTL.Seconds()),
	}
	http.SetCookie(w, accessCookie)
	http.SetCookie(w, refreshCookie)
}

func clearAuthCookies(w http.ResponseWriter, secure bool) {
	expire := time.Now().Add(-1 * time.Hour)
	accessCookie := &http.Cookie{
		Name:     middleware.AccessCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expire,
		MaxAge:   -1,
	}
	refreshCookie := &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/api/auth",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expire,
		MaxAge:   -1,
	}
	http.SetCookie(w, accessCookie)
	http.SetCookie(w, refreshCookie)
}
