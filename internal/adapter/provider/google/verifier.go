package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/topiclog/internal/auth"
	"github.com/heartmarshall/topiclog/internal/config"
	"github.com/heartmarshall/topiclog/internal/domain"
)

// Provider is the provider name accounts created through this verifier carry.
const Provider = "google"

// ErrUnavailable is returned when Google cannot be reached or answers with a fault.
var ErrUnavailable = errors.New("oauth: google unavailable")

const (
	maxBodyBytes  = 1 << 20
	retryBackoff  = 500 * time.Millisecond
	clientTimeout = 10 * time.Second
)

// Verifier exchanges Google OAuth authorization codes for user identity.
type Verifier struct {
	clientID     string
	clientSecret string
	redirectURI  string
	tokenURL     string
	userinfoURL  string
	httpClient   *http.Client
	log          *slog.Logger
}

// NewVerifier creates a Google OAuth verifier from the auth config.
func NewVerifier(cfg config.AuthConfig, logger *slog.Logger) *Verifier {
	return &Verifier{
		clientID:     cfg.GoogleClientID,
		clientSecret: cfg.GoogleClientSecret,
		redirectURI:  cfg.GoogleRedirectURI,
		tokenURL:     cfg.GoogleTokenURL,
		userinfoURL:  cfg.GoogleUserinfoURL,
		httpClient:   &http.Client{Timeout: clientTimeout},
		log:          logger.With("adapter", "google_oauth"),
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type userinfoResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

// VerifyCode exchanges an authorization code for the identity behind it.
// Rejected codes and unverified emails wrap domain.ErrUnauthorized.
func (v *Verifier) VerifyCode(ctx context.Context, code string) (*auth.FederatedIdentity, error) {
	accessToken, err := v.exchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	info, err := v.fetchUserinfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	if !info.VerifiedEmail {
		return nil, fmt.Errorf("oauth: email not verified: %w", domain.ErrUnauthorized)
	}

	v.log.DebugContext(ctx, "google oauth success", slog.String("subject", info.ID))

	return &auth.FederatedIdentity{
		Provider: Provider,
		Subject:  info.ID,
		Name:     info.Name,
		Email:    info.Email,
	}, nil
}

// exchangeCode trades the authorization code for an access token.
// Codes are single-use, so the exchange is never retried.
func (v *Verifier) exchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", v.clientID)
	form.Set("client_secret", v.clientSecret)
	form.Set("redirect_uri", v.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		v.log.ErrorContext(ctx, "google oauth token exchange failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("%w: read token response: %w", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		_ = json.Unmarshal(body, &errResp)
		v.log.ErrorContext(ctx, "google oauth token exchange failed",
			slog.Int("status", resp.StatusCode),
			slog.String("error", errResp.Error))

		if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
			return "", fmt.Errorf("oauth: invalid or expired code: %w", domain.ErrUnauthorized)
		}
		return "", fmt.Errorf("%w: token status %d", ErrUnavailable, resp.StatusCode)
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil || tokenResp.AccessToken == "" {
		v.log.ErrorContext(ctx, "google oauth token exchange failed", slog.String("error", "invalid token response"))
		return "", fmt.Errorf("%w: invalid token response", ErrUnavailable)
	}

	return tokenResp.AccessToken, nil
}

func (v *Verifier) fetchUserinfo(ctx context.Context, accessToken string) (*userinfoResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.userinfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := v.doWithRetry(ctx, req)
	if err != nil {
		v.log.ErrorContext(ctx, "google oauth userinfo failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.log.ErrorContext(ctx, "google oauth userinfo failed", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: userinfo status %d", ErrUnavailable, resp.StatusCode)
	}

	var info userinfoResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: invalid userinfo response", ErrUnavailable)
	}
	if info.ID == "" {
		return nil, fmt.Errorf("%w: userinfo without id", ErrUnavailable)
	}

	return &info, nil
}

// doWithRetry retries a bodiless request once on a network error or 5xx.
func (v *Verifier) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := v.httpClient.Do(req)
	if err == nil && resp.StatusCode < http.StatusInternalServerError {
		return resp, nil
	}
	if resp != nil {
		resp.Body.Close()
	}

	select {
	case <-time.After(retryBackoff):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return v.httpClient.Do(req)
}
