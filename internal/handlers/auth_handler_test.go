package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"invoice-service-backend/internal/middleware"
	"invoice-service-backend/internal/models"
	"invoice-service-backend/internal/repository"
	"invoice-service-backend/internal/services/accounts"
	"invoice-service-backend/internal/utils"
)

type fakeUserStore struct {
	mu        sync.Mutex
	byEmail   map[string]models.User
	insertErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]models.User)}
}

func (s *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (s *fakeUserStore) Insert(user *models.User) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	s.byEmail[user.Email] = *user
	return nil
}

const testSecret = "test-secret"

func setupAuthRouter(store *fakeUserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	service := accounts.NewService(store, zap.NewNop(), testSecret, 15)
	handler := NewAuthHandler(service)

	r := gin.New()
	r.POST("/api/auth/signup", handler.Signup)
	r.POST("/api/auth/login", handler.Login)
	r.GET("/api/me", middleware.AuthRequired(testSecret), handler.Me)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestSignupEndpointSuccess(t *testing.T) {
	r := setupAuthRouter(newFakeUserStore())

	rr := postJSON(t, r, "/api/auth/signup", gin.H{"email": "a@example.com", "password": "secret1"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true}`, rr.Body.String())
}

func TestSignupEndpointShortPassword(t *testing.T) {
	store := newFakeUserStore()
	r := setupAuthRouter(store)

	rr := postJSON(t, r, "/api/auth/signup", gin.H{"email": "a@example.com", "password": "abcde"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid input"}`, rr.Body.String())
	assert.Empty(t, store.byEmail)
}

func TestSignupEndpointDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	r := setupAuthRouter(store)

	rr := postJSON(t, r, "/api/auth/signup", gin.H{"email": "a@example.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = postJSON(t, r, "/api/auth/signup", gin.H{"email": "a@example.com", "password": "different8"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Email already in use"}`, rr.Body.String())
	assert.Len(t, store.byEmail, 1)
}

func TestSignupEndpointStoreFailure(t *testing.T) {
	store := newFakeUserStore()
	store.insertErr = assert.AnError
	r := setupAuthRouter(store)

	rr := postJSON(t, r, "/api/auth/signup", gin.H{"email": "a@example.com", "password": "secret1"})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Server error"}`, rr.Body.String())
}

func TestSignupEndpointMalformedBody(t *testing.T) {
	r := setupAuthRouter(newFakeUserStore())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid input"}`, rr.Body.String())
}

func TestLoginThenMe(t *testing.T) {
	r := setupAuthRouter(newFakeUserStore())

	rr := postJSON(t, r, "/api/auth/signup", gin.H{"email": "a@example.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = postJSON(t, r, "/api/auth/login", gin.H{"email": "a@example.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, rr.Code)

	var loginBody struct {
		AccessToken string `json:"accessToken"`
		User        struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &loginBody))
	require.NotEmpty(t, loginBody.AccessToken)
	assert.Equal(t, "a@example.com", loginBody.User.Email)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+loginBody.AccessToken)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "a@example.com")
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupAuthRouter(newFakeUserStore())

	rr := postJSON(t, r, "/api/auth/signup", gin.H{"email": "a@example.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = postJSON(t, r, "/api/auth/login", gin.H{"email": "a@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMeRejectsUnexpectedSigningMethod(t *testing.T) {
	r := setupAuthRouter(newFakeUserStore())

	// same secret, different HMAC variant: only HS256 is accepted
	claims := utils.AccessClaims{
		Email: "a@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "some-id",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMeWithoutToken(t *testing.T) {
	r := setupAuthRouter(newFakeUserStore())

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
