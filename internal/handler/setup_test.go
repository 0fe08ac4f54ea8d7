package handler_test

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xxxsen/common/webapi"
	"golang.org/x/crypto/bcrypt"

	"journal/internal/handler"
	"journal/internal/middleware"
	"journal/internal/repo"
	"journal/internal/service"
	"journal/internal/testutil"
)

func setupRouter(t *testing.T) (http.Handler, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, cleanup := testutil.OpenTestDB(t)
	userRepo := repo.NewUserRepo(db)
	entryRepo := repo.NewEntryRepo(db)

	jwtSecret := []byte("test-secret")
	authService := service.NewAuthService(userRepo, jwtSecret, time.Hour, bcrypt.MinCost)
	entryService := service.NewEntryService(entryRepo)

	deps := handler.RouterDeps{
		Auth:      handler.NewAuthHandler(authService),
		Entries:   handler.NewEntryHandler(entryService),
		JWTSecret: jwtSecret,
	}

	engine, err := webapi.NewEngine(
		"/api",
		"",
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(nil),
		),
	)
	require.NoError(t, err)

	return engine, cleanup
}

func newUsername(t *testing.T) string {
	t.Helper()
	buf := make([]byte, 8)
	_, err := rand.Read(buf)
	require.NoError(t, err)
	return "user-" + hex.EncodeToString(buf)
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func signUp(t *testing.T, router http.Handler, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	return doJSON(t, router, http.MethodPost, "/api/auth/sign-up", "", map[string]string{
		"username": username,
		"password": password,
	})
}

func signIn(t *testing.T, router http.Handler, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	return doJSON(t, router, http.MethodPost, "/api/auth/sign-in", "", map[string]string{
		"username": username,
		"password": password,
	})
}

// signInToken registers a fresh user and returns a valid bearer token.
func signInToken(t *testing.T, router http.Handler) (string, string) {
	t.Helper()
	username := newUsername(t)
	resp := signUp(t, router, username, "pw123")
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = signIn(t, router, username, "pw123")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	return username, body.Token
}
