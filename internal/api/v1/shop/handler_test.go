package shop_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tetteam4/swimming-project/internal/api/v1/shop"
	"github.com/tetteam4/swimming-project/internal/database"
	"github.com/tetteam4/swimming-project/internal/models"
	"github.com/tetteam4/swimming-project/internal/services"
	"github.com/tetteam4/swimming-project/pkg/logger"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test_secret")
	logger.Log = zap.NewNop()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newRouter serves the shop routes as the given user, bypassing JWT auth.
func newRouter(user models.User) *gin.Engine {
	r := gin.New()
	group := r.Group("/api/v1")
	group.Use(func(c *gin.Context) {
		c.Set("user", user)
		c.Next()
	})
	shop.RegisterRoutes(group)
	return r
}

func setupTest(t *testing.T) (models.User, models.User, *models.Pool) {
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

	owner := seedUser(t, "owner@example.com")
	other := seedUser(t, "other@example.com")

	pool, err := services.CreatePool(owner.ID, services.PoolCreateInput{
		Name:     "Pool",
		TotalPay: decimal.RequireFromString("100.00"),
	})
	if err != nil {
		t.Fatalf("failed to seed pool: %v", err)
	}

	return owner, other, pool
}

func seedUser(t *testing.T, email string) models.User {
	t.Helper()

	user, err := models.NewUser(email, "Test", "User", "")
	if err != nil {
		t.Fatalf("failed to build user: %v", err)
	}
	user.Password = "hashed"
	user.IsActive = true
	if err := database.DB.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return *user
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req, _ := http.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestShopCreateEndpoint(t *testing.T) {
	owner, _, pool := setupTest(t)
	r := newRouter(owner)

	w := doJSON(r, http.MethodPost, "/api/v1/shops/",
		fmt.Sprintf(`{"pool_customer":%d,"list":{"a":"10.50","b":"4.49"}}`, pool.ID))
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data shop.ShopResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "14.99", resp.Data.Total)
	assert.Equal(t, pool.ID, resp.Data.PoolCustomer)

	// Invalid prices are a client error.
	w = doJSON(r, http.MethodPost, "/api/v1/shops/",
		fmt.Sprintf(`{"pool_customer":%d,"list":{"a":"oops"}}`, pool.ID))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown pools are a not-found, never a forbidden.
	w = doJSON(r, http.MethodPost, "/api/v1/shops/", `{"pool_customer":9999,"list":{"a":"1.00"}}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShopOwnershipOverHTTP(t *testing.T) {
	owner, other, pool := setupTest(t)

	created, err := services.CreateShop(owner.ID, pool.ID, models.StringMap{"a": "5.00"}, false)
	assert.NoError(t, err)

	ownerRouter := newRouter(owner)
	otherRouter := newRouter(other)
	path := fmt.Sprintf("/api/v1/shops/%d/", created.ID)

	// A foreign caller sees 404 on every verb, including PATCH.
	assert.Equal(t, http.StatusNotFound, doJSON(otherRouter, http.MethodGet, path, "").Code)
	assert.Equal(t, http.StatusNotFound, doJSON(otherRouter, http.MethodPatch, path, `{"is_calculated":true}`).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(otherRouter, http.MethodDelete, path, "").Code)

	// The owner's listing is unaffected by the foreign attempts.
	w := doJSON(ownerRouter, http.MethodGet, "/api/v1/shops/", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Data shop.ShopListResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Equal(t, int64(1), listResp.Data.Total)

	// And the other user's listing is empty rather than an error.
	w = doJSON(otherRouter, http.MethodGet, "/api/v1/shops/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Equal(t, int64(0), listResp.Data.Total)
}

func TestShopUpdateEndpoint(t *testing.T) {
	owner, _, pool := setupTest(t)
	r := newRouter(owner)

	created, err := services.CreateShop(owner.ID, pool.ID, models.StringMap{"a": "5.00"}, false)
	assert.NoError(t, err)
	path := fmt.Sprintf("/api/v1/shops/%d/", created.ID)

	w := doJSON(r, http.MethodPatch, path, `{"list":{"a":"5.00","b":"2.25"}}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data shop.ShopResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "7.25", resp.Data.Total)

	// A bad id segment is a 400, not a routing miss.
	w = doJSON(r, http.MethodPatch, "/api/v1/shops/abc/", `{"is_calculated":true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
