package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"

	"github.com/tetteam4/swimming-project/config"
	"github.com/tetteam4/swimming-project/internal/api/v1/auth"
	"github.com/tetteam4/swimming-project/internal/database"
	"github.com/tetteam4/swimming-project/internal/mailer"
	"github.com/tetteam4/swimming-project/internal/models"
	"github.com/tetteam4/swimming-project/internal/services"
	"github.com/tetteam4/swimming-project/internal/utils"
	"github.com/tetteam4/swimming-project/pkg/logger"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test_secret")
	logger.Log = zap.NewNop()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupTest(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Profile{}, &models.Pool{}, &models.Shop{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	database.DB = db

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	database.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	original := mailer.DialAndSend
	mailer.DialAndSend = func(cfg *config.Config, m *gomail.Message) error { return nil }
	t.Cleanup(func() { mailer.DialAndSend = original })

	r := gin.New()
	auth.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	r := setupTest(t)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			body:           `{"email":"jane@example.com","first_name":"Jane","last_name":"Doe","password1":"secret123","password2":"secret123"}`,
			expectedStatus: http.StatusCreated,
			expectedBody:   "Check your email to activate the account",
		},
		{
			name:           "Password Mismatch",
			body:           `{"email":"other@example.com","first_name":"Jane","last_name":"Doe","password1":"secret123","password2":"different1"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Passwords must match.",
		},
		{
			name:           "Duplicate Email",
			body:           `{"email":"jane@example.com","first_name":"Jane","last_name":"Doe","password1":"secret123","password2":"secret123"}`,
			expectedStatus: http.StatusConflict,
			expectedBody:   "already exists",
		},
		{
			name:           "Missing Email",
			body:           `{"first_name":"Jane","last_name":"Doe","password1":"secret123","password2":"secret123"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Short Password",
			body:           `{"email":"short@example.com","first_name":"Jane","last_name":"Doe","password1":"short","password2":"short"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/api/v1/auth/register/", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}

	// Registration leaves the account inactive.
	var user models.User
	assert.NoError(t, database.DB.Where("email = ?", "jane@example.com").First(&user).Error)
	assert.False(t, user.IsActive)
}

func TestTokenEndpoint(t *testing.T) {
	r := setupTest(t)

	w := postJSON(r, "/api/v1/auth/register/",
		`{"email":"login@example.com","first_name":"Jane","last_name":"Doe","password1":"secret123","password2":"secret123"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Inactive accounts are told apart from bad credentials.
	w = postJSON(r, "/api/v1/auth/token/", `{"email":"login@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "User account is disabled")

	w = postJSON(r, "/api/v1/auth/token/", `{"email":"login@example.com","password":"wrongpass1"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")

	assert.NoError(t, database.DB.Model(&models.User{}).
		Where("email = ?", "login@example.com").Update("is_active", true).Error)

	w = postJSON(r, "/api/v1/auth/token/", `{"email":"login@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data auth.TokenResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Access)
	assert.NotEmpty(t, resp.Data.Refresh)
	assert.Equal(t, "login@example.com", resp.Data.User.Email)

	// The refresh token is accepted on the refresh endpoint.
	w = postJSON(r, "/api/v1/auth/refresh/", `{"refresh":"`+resp.Data.Refresh+`"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(r, "/api/v1/auth/refresh/", `{"refresh":"`+resp.Data.Access+`"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPasswordResetEndpoints(t *testing.T) {
	r := setupTest(t)

	w := postJSON(r, "/api/v1/auth/register/",
		`{"email":"reset@example.com","first_name":"Jane","last_name":"Doe","password1":"secret123","password2":"secret123"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Known and unknown emails get the same generic response.
	for _, email := range []string{"reset@example.com", "ghost@example.com"} {
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/auth/user/password-reset/"+email+"/", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "If an account with that email exists")
	}

	var user models.User
	assert.NoError(t, database.DB.Where("email = ?", "reset@example.com").First(&user).Error)
	assert.Len(t, user.OTP, 7)

	uidb64 := utils.EncodeUID(user.UUID)

	w = postJSON(r, "/api/v1/auth/user/password-change/",
		`{"otp":"0000000","uuidb64":"`+uidb64+`","password":"newsecret1"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User does not exist or invalid OTP")

	w = postJSON(r, "/api/v1/auth/user/password-change/",
		`{"otp":"`+user.OTP+`","uuidb64":"`+uidb64+`","password":"newsecret1"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Password changed successfully")
}

func TestActivateEndpoint(t *testing.T) {
	r := setupTest(t)

	user, err := services.RegisterUser("act@example.com", "Jane", "Doe", "", "secret123", "secret123")
	assert.NoError(t, err)

	token, err := utils.MakeActivationToken(user)
	assert.NoError(t, err)
	uidb64 := utils.EncodeUID(user.UUID)

	// A tampered link renders the failure page and mutates nothing.
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/auth/activate/"+uidb64+"/"+token+"x/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid activation link")

	req, _ = http.NewRequest(http.MethodGet, "/api/v1/auth/activate/"+uidb64+"/"+token+"/", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Account activated")

	var stored models.User
	assert.NoError(t, database.DB.First(&stored, user.ID).Error)
	assert.True(t, stored.IsActive)
}
