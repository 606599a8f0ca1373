package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/salgadostudio/booking-site/internal/auth"
	"github.com/salgadostudio/booking-site/internal/service"
)

type AuthHandler struct {
	svc        *service.AuthService
	sessionTTL time.Duration
	production bool
}

func NewAuthHandler(svc *service.AuthService, sessionTTL time.Duration, production bool) *AuthHandler {
	return &AuthHandler{svc: svc, sessionTTL: sessionTTL, production: production}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Login(req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	http.SetCookie(w, h.sessionCookie(result.Token, int(h.sessionTTL.Seconds())))
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		if sessionID, err := auth.ValidateToken(h.svc.Secret(), cookie.Value); err == nil {
			h.svc.Logout(sessionID)
		}
	}
	http.SetCookie(w, h.sessionCookie("", -1))
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     auth.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.production,
	}
}
