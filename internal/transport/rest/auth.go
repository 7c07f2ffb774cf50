package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/topiclog/internal/adapter/provider/google"
	"github.com/heartmarshall/topiclog/internal/domain"
	"github.com/heartmarshall/topiclog/internal/service/auth"
	"github.com/heartmarshall/topiclog/internal/service/user"
	"github.com/heartmarshall/topiclog/pkg/ctxutil"
)

// authService defines the sign-in operations needed by AuthHandler.
type authService interface {
	Register(ctx context.Context, input user.RegisterInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input user.AuthenticateInput) (*auth.AuthResult, error)
	LoginWithOAuth(ctx context.Context, input auth.OAuthInput) (*auth.AuthResult, error)
}

type profileService interface {
	Profile(ctx context.Context, userID int64) (*domain.User, error)
}

// AuthHandler serves account endpoints.
type AuthHandler struct {
	svc      authService
	profiles profileService
	log      *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, profiles profileService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, profiles: profiles, log: logger.With("handler", "auth")}
}

type registerRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type oauthRequest struct {
	Provider string `json:"provider"`
	Code     string `json:"code"`
}

type authResponse struct {
	AccessToken string       `json:"accessToken"`
	User        userResponse `json:"user"`
}

type userResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Federated   bool   `json:"federated"`
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Register(r.Context(), user.RegisterInput{
		Username:    req.Username,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAuthResponse(result))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Login(r.Context(), user.AuthenticateInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// OAuth handles POST /auth/oauth.
func (h *AuthHandler) OAuth(w http.ResponseWriter, r *http.Request) {
	var req oauthRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.LoginWithOAuth(r.Context(), auth.OAuthInput{
		Provider: req.Provider,
		Code:     req.Code,
	})
	if errors.Is(err, google.ErrUnavailable) {
		h.log.WarnContext(r.Context(), "identity provider unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "identity provider unavailable")
		return
	}
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Me handles GET /me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	u, err := h.profiles.Profile(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		AccessToken: result.AccessToken,
		User:        toUserResponse(result.User),
	}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Federated:   u.IsFederated(),
	}
}
