package firebase

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"motion/config"
	domainservice "motion/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, endpoint string) domainservice.IdentityProvider {
	t.Helper()

	provider, err := NewIdentityProvider(&config.Config{
		Firebase: &config.FirebaseConfig{
			WebAPIKey:    "test-key",
			AuthEndpoint: endpoint,
		},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return provider
}

func signTestToken(t *testing.T, uid, email string, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uid,
		"email":   email,
		"exp":     expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return signed
}

func TestIdentityProvider_SignIn_EstablishesSessionFromTokenClaims(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts:signInWithPassword", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req credentialsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "user@example.com", req.Email)
		assert.True(t, req.ReturnSecureToken)

		json.NewEncoder(w).Encode(authResponse{
			IDToken:   signTestToken(t, "uid-from-claims", "user@example.com", expiresAt),
			Email:     "user@example.com",
			LocalID:   "uid-local",
			ExpiresIn: "3600",
		})
	}))
	defer server.Close()

	provider := newTestProvider(t, server.URL)

	session, err := provider.SignIn(context.Background(), "user@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "uid-from-claims", session.UserID)
	assert.Equal(t, "user@example.com", session.Email)

	current, err := provider.CurrentSession(context.Background())
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "uid-from-claims", current.UserID)
}

func TestIdentityProvider_SignUp_HitsSignUpAction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts:signUp", r.URL.Path)

		json.NewEncoder(w).Encode(authResponse{
			IDToken: signTestToken(t, "uid-new", "new@example.com", time.Now().Add(time.Hour)),
			Email:   "new@example.com",
			LocalID: "uid-new",
		})
	}))
	defer server.Close()

	provider := newTestProvider(t, server.URL)

	session, err := provider.SignUp(context.Background(), "new@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "uid-new", session.UserID)
}

func TestIdentityProvider_SignIn_SurfacesProviderCode(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		wantCode string
	}{
		{name: "bare code", message: "EMAIL_NOT_FOUND", wantCode: "EMAIL_NOT_FOUND"},
		{name: "annotated code", message: "INVALID_PASSWORD : The password is invalid.", wantCode: "INVALID_PASSWORD"},
		{name: "colon separated", message: "TOO_MANY_ATTEMPTS_TRY_LATER: try again later", wantCode: "TOO_MANY_ATTEMPTS_TRY_LATER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				var envelope errorResponse
				envelope.Error.Code = http.StatusBadRequest
				envelope.Error.Message = tt.message
				json.NewEncoder(w).Encode(envelope)
			}))
			defer server.Close()

			provider := newTestProvider(t, server.URL)

			_, err := provider.SignIn(context.Background(), "user@example.com", "wrong")

			require.Error(t, err)
			var provErr *domainservice.ProviderError
			require.ErrorAs(t, err, &provErr)
			assert.Equal(t, tt.wantCode, provErr.Code)
		})
	}
}

func TestIdentityProvider_SignOut_ClearsHeldSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(authResponse{
			IDToken: signTestToken(t, "uid-1", "user@example.com", time.Now().Add(time.Hour)),
			Email:   "user@example.com",
			LocalID: "uid-1",
		})
	}))
	defer server.Close()

	provider := newTestProvider(t, server.URL)

	_, err := provider.SignIn(context.Background(), "user@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, provider.SignOut(context.Background()))

	current, err := provider.CurrentSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestIdentityProvider_CurrentSession_NilWhenExpired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(authResponse{
			IDToken: signTestToken(t, "uid-1", "user@example.com", time.Now().Add(-time.Minute)),
			Email:   "user@example.com",
			LocalID: "uid-1",
		})
	}))
	defer server.Close()

	provider := newTestProvider(t, server.URL)

	_, err := provider.SignIn(context.Background(), "user@example.com", "secret123")
	require.NoError(t, err)

	current, err := provider.CurrentSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestIdentityProvider_New_RequiresWebAPIKey(t *testing.T) {
	_, err := NewIdentityProvider(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.Error(t, err)
}
