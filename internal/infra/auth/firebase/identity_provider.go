// Package firebase implements the identity provider boundary on the
// Firebase Identity Toolkit REST API.
package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"motion/config"
	"motion/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const defaultEndpoint = "https://identitytoolkit.googleapis.com/v1"

// identityProvider talks to the Identity Toolkit accounts API and holds the
// current session in memory. Sign-out clears the held session; ID tokens are
// bearer credentials the provider cannot revoke remotely.
type identityProvider struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger

	mu      sync.RWMutex
	session *sessionState
}

type sessionState struct {
	userID    string
	email     string
	idToken   string
	expiresAt time.Time
}

// NewIdentityProvider creates the Identity Toolkit-backed provider.
func NewIdentityProvider(cfg *config.Config, logger *slog.Logger) (service.IdentityProvider, error) {
	if cfg.Firebase == nil || cfg.Firebase.WebAPIKey == "" {
		return nil, errors.New("firebase web API key is required")
	}

	endpoint := cfg.Firebase.AuthEndpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &identityProvider{
		apiKey:   cfg.Firebase.WebAPIKey,
		endpoint: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}, nil
}

// credentialsRequest is the accounts:signInWithPassword / accounts:signUp body.
type credentialsRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

// authResponse is the subset of the Identity Toolkit response the provider uses.
type authResponse struct {
	IDToken   string `json:"idToken"`
	Email     string `json:"email"`
	LocalID   string `json:"localId"`
	ExpiresIn string `json:"expiresIn"`
}

// errorResponse is the Identity Toolkit error envelope.
type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn authenticates an existing account with email and password.
func (p *identityProvider) SignIn(ctx context.Context, email, password string) (*service.ProviderSession, error) {
	return p.authenticate(ctx, "accounts:signInWithPassword", email, password)
}

// SignUp creates a new account and signs it in.
func (p *identityProvider) SignUp(ctx context.Context, email, password string) (*service.ProviderSession, error) {
	return p.authenticate(ctx, "accounts:signUp", email, password)
}

func (p *identityProvider) authenticate(ctx context.Context, action, email, password string) (*service.ProviderSession, error) {
	body, err := json.Marshal(credentialsRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	url := p.endpoint + "/" + action + "?key=" + p.apiKey

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "identity toolkit request failed")
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read identity toolkit response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseProviderError(payload, resp.StatusCode)
	}

	var auth authResponse
	if err := json.Unmarshal(payload, &auth); err != nil {
		return nil, errors.Wrap(err, "failed to decode identity toolkit response")
	}

	state := buildSessionState(&auth)

	p.mu.Lock()
	p.session = state
	p.mu.Unlock()

	p.logger.Debug("Provider session established", slog.String("userID", state.userID))

	return &service.ProviderSession{
		UserID: state.userID,
		Email:  state.email,
	}, nil
}

// buildSessionState derives the session from the auth response, preferring
// the ID-token claims for uid, email and expiry. The token arrived directly
// from the provider over TLS; claim decoding needs no re-verification here.
func buildSessionState(auth *authResponse) *sessionState {
	state := &sessionState{
		userID:    auth.LocalID,
		email:     auth.Email,
		idToken:   auth.IDToken,
		expiresAt: time.Now().Add(time.Hour),
	}

	token, _, err := jwt.NewParser().ParseUnverified(auth.IDToken, jwt.MapClaims{})
	if err != nil {
		return state
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return state
	}

	if uid, ok := claims["user_id"].(string); ok && uid != "" {
		state.userID = uid
	}
	if email, ok := claims["email"].(string); ok && email != "" {
		state.email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		state.expiresAt = exp.Time
	}

	return state
}

// parseProviderError maps an Identity Toolkit error envelope to a
// ProviderError carrying the raw code. Messages arrive either bare
// ("EMAIL_EXISTS") or annotated ("INVALID_PASSWORD : ..."); the leading
// token is the code.
func parseProviderError(payload []byte, statusCode int) error {
	var envelope errorResponse
	if err := json.Unmarshal(payload, &envelope); err != nil || envelope.Error.Message == "" {
		return &service.ProviderError{
			Code: "HTTP_" + http.StatusText(statusCode),
			Err:  errors.Errorf("identity toolkit returned status %d", statusCode),
		}
	}

	code := envelope.Error.Message
	if idx := strings.IndexAny(code, " :"); idx > 0 {
		code = code[:idx]
	}

	return &service.ProviderError{
		Code: code,
		Err:  errors.Errorf("identity toolkit rejected request: %s", envelope.Error.Message),
	}
}

// SignOut drops the held session. There is nothing to revoke remotely; the
// ID token simply stops being used, matching client-SDK sign-out semantics.
func (p *identityProvider) SignOut(_ context.Context) error {
	p.mu.Lock()
	p.session = nil
	p.mu.Unlock()

	return nil
}

// CurrentSession returns the active session, or nil when signed out or the
// held token has expired.
func (p *identityProvider) CurrentSession(_ context.Context) (*service.ProviderSession, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.session == nil || time.Now().After(p.session.expiresAt) {
		return nil, nil
	}

	return &service.ProviderSession{
		UserID: p.session.userID,
		Email:  p.session.email,
	}, nil
}
