package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/picbay/config"
	userapp "github.com/oksasatya/picbay/internal/application"
	"github.com/oksasatya/picbay/internal/domain/entity"
	"github.com/oksasatya/picbay/internal/domain/repository"
	"github.com/oksasatya/picbay/internal/interface/middleware"
	"github.com/oksasatya/picbay/pkg/helpers"
	"github.com/oksasatya/picbay/pkg/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	m.Run()
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]entity.User
	seq   int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return repository.ErrDuplicate
		}
	}
	r.seq++
	u.ID = fmt.Sprintf("user-%d", r.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

func (r *memUserRepo) tokenFor(email string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u.TokenValidation
		}
	}
	return ""
}

type apiEnvelope struct {
	Code    int               `json:"code"`
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    map[string]any    `json:"data"`
	Error   map[string]string `json:"error"`
}

func newTestRouter(repo repository.UserRepository) (*gin.Engine, *helpers.JWTManager) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	cfg := &config.Config{
		CompanyName:    "Picbay",
		VerifyEmailURL: "http://localhost:8080/api/user/settings/validate",
		// Keep registration side-effect free in handler tests.
		MailSendEnabled: false,
	}
	svc := userapp.NewUserService(repo, jwt, nil, nil, cfg)
	h := NewUserHandler(svc, nil)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/user", h.Register)
	api.POST("/user/auth", h.Login)
	api.GET("/user/settings/validate", h.Validate)

	auth := api.Group("/")
	auth.Use(middleware.Auth(jwt))
	auth.GET("/me", h.Me)
	return r, jwt
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, apiEnvelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

const validRegisterBody = `{"email":"a@b.com","username":"abcde","password":"password1","name":"A"}`

func TestRegisterValidationAggregatesAllFields(t *testing.T) {
	repo := newMemUserRepo()
	r, _ := newTestRouter(repo)

	w, env := doJSON(t, r, http.MethodPost, "/api/user",
		`{"email":"not-an-email","username":"abc","password":"short"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, env.Success)
	// Every invalid field is reported, not just the first one.
	require.Contains(t, env.Error, "email")
	require.Contains(t, env.Error, "username")
	require.Contains(t, env.Error, "password")
	require.Contains(t, env.Error, "name")
	// No record may be created on validation failure.
	require.Zero(t, repo.count())
}

func TestRegisterSuccessReturnsRecordSubset(t *testing.T) {
	repo := newMemUserRepo()
	r, _ := newTestRouter(repo)

	w, env := doJSON(t, r, http.MethodPost, "/api/user", validRegisterBody)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "open your email and verify", env.Message)
	require.NotEmpty(t, env.Data["id"])
	require.Equal(t, "abcde", env.Data["username"])
	require.Equal(t, "a@b.com", env.Data["email"])
	require.Equal(t, "A", env.Data["name"])
	// Hash and validation token stay server-side.
	require.NotContains(t, env.Data, "password")
	require.NotContains(t, env.Data, "token_validation")

	require.Equal(t, 1, repo.count())
	require.NotEmpty(t, repo.tokenFor("a@b.com"))
}

func TestRegisterConflict(t *testing.T) {
	repo := newMemUserRepo()
	r, _ := newTestRouter(repo)

	w, _ := doJSON(t, r, http.MethodPost, "/api/user", validRegisterBody)
	require.Equal(t, http.StatusOK, w.Code)

	w, env := doJSON(t, r, http.MethodPost, "/api/user", validRegisterBody)
	require.Equal(t, http.StatusConflict, w.Code)
	require.False(t, env.Success)
	require.Equal(t, 1, repo.count())
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newMemUserRepo()
	r, _ := newTestRouter(repo)
	doJSON(t, r, http.MethodPost, "/api/user", validRegisterBody)

	wWrongPwd, envWrongPwd := doJSON(t, r, http.MethodPost, "/api/user/auth",
		`{"email":"a@b.com","password":"wrong"}`)
	wUnknown, envUnknown := doJSON(t, r, http.MethodPost, "/api/user/auth",
		`{"email":"ghost@b.com","password":"password1"}`)

	require.Equal(t, http.StatusUnauthorized, wWrongPwd.Code)
	require.Equal(t, http.StatusUnauthorized, wUnknown.Code)
	// Same status and message whether the email or the password was wrong.
	require.Equal(t, envWrongPwd.Message, envUnknown.Message)
}

func TestLoginValidatesPresence(t *testing.T) {
	repo := newMemUserRepo()
	r, _ := newTestRouter(repo)

	w, env := doJSON(t, r, http.MethodPost, "/api/user/auth", `{}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, env.Error, "email")
	require.Contains(t, env.Error, "password")
}

func TestLoginReturnsToken(t *testing.T) {
	repo := newMemUserRepo()
	r, jwt := newTestRouter(repo)
	doJSON(t, r, http.MethodPost, "/api/user", validRegisterBody)

	w, env := doJSON(t, r, http.MethodPost, "/api/user/auth",
		`{"email":"a@b.com","password":"password1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Enjoy your token!", env.Message)
	token, _ := env.Data["token"].(string)
	require.NotEmpty(t, token)

	claims, err := jwt.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "abcde", claims.Username)
	require.Equal(t, "a@b.com", claims.Email)
	require.False(t, claims.IsValidated)
}

func TestValidateLinkLifecycle(t *testing.T) {
	repo := newMemUserRepo()
	r, _ := newTestRouter(repo)
	doJSON(t, r, http.MethodPost, "/api/user", validRegisterBody)

	token := repo.tokenFor("a@b.com")
	require.NotEmpty(t, token)
	link := "/api/user/settings/validate?token=" + token + "&email=a@b.com"

	w, env := doJSON(t, r, http.MethodGet, link, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "your email has been verified!", env.Message)
	require.Empty(t, repo.tokenFor("a@b.com"))

	// The link is single-use.
	w, env = doJSON(t, r, http.MethodGet, link, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "your validation link is not valid!", env.Message)
}

func TestValidateFailuresShareOneMessage(t *testing.T) {
	repo := newMemUserRepo()
	r, _ := newTestRouter(repo)
	doJSON(t, r, http.MethodPost, "/api/user", validRegisterBody)

	links := []string{
		"/api/user/settings/validate?token=bogus&email=a@b.com",
		"/api/user/settings/validate?token=bogus&email=ghost@b.com",
		"/api/user/settings/validate?email=a@b.com",
	}
	for _, link := range links {
		w, env := doJSON(t, r, http.MethodGet, link, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, "your validation link is not valid!", env.Message)
	}
}

func TestMeRequiresValidToken(t *testing.T) {
	repo := newMemUserRepo()
	r, _ := newTestRouter(repo)
	doJSON(t, r, http.MethodPost, "/api/user", validRegisterBody)

	w, _ := doJSON(t, r, http.MethodGet, "/api/me", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	_, loginEnv := doJSON(t, r, http.MethodPost, "/api/user/auth",
		`{"email":"a@b.com","password":"password1"}`)
	token, _ := loginEnv.Data["token"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "abcde", env.Data["username"])
	require.Equal(t, "a@b.com", env.Data["email"])
}
