package services_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tetteam4/swimming-project/internal/database"
	"github.com/tetteam4/swimming-project/internal/models"
	"github.com/tetteam4/swimming-project/internal/services"
)

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name     string
		items    models.StringMap
		expected string
		wantErr  bool
	}{
		{
			name:     "Empty List",
			items:    models.StringMap{},
			expected: "0.00",
		},
		{
			name:     "Nil List",
			items:    nil,
			expected: "0.00",
		},
		{
			name:     "Two Items",
			items:    models.StringMap{"a": "10.50", "b": "4.49"},
			expected: "14.99",
		},
		{
			name:     "Integer Strings",
			items:    models.StringMap{"ball": "3", "rope": "7"},
			expected: "10.00",
		},
		{
			name:     "Negative Value",
			items:    models.StringMap{"refund": "-2.50", "item": "10.00"},
			expected: "7.50",
		},
		{
			name:    "Non Numeric Value",
			items:   models.StringMap{"a": "10.50", "b": "abc"},
			wantErr: true,
		},
		{
			name:    "Empty String Value",
			items:   models.StringMap{"a": ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := services.ComputeTotal(tt.items)
			if tt.wantErr {
				var priceErr *services.InvalidPriceError
				assert.Error(t, err)
				assert.True(t, errors.As(err, &priceErr))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, total.StringFixed(2))
		})
	}
}

func TestCreateShopOwnership(t *testing.T) {
	setupTestDB(t)
	setupMockRedis(t)

	owner := seedUser(t, "owner@example.com", true)
	other := seedUser(t, "other@example.com", true)

	pool, err := services.CreatePool(owner.ID, services.PoolCreateInput{
		Name:     "Morning Pool",
		TotalPay: decimal.RequireFromString("100.00"),
	})
	assert.NoError(t, err)

	// A pool owned by someone else is invisible, not forbidden.
	_, err = services.CreateShop(other.ID, pool.ID, models.StringMap{"a": "1.00"}, false)
	assert.ErrorIs(t, err, services.ErrPoolNotFound)

	shop, err := services.CreateShop(owner.ID, pool.ID, models.StringMap{"a": "10.50", "b": "4.49"}, false)
	assert.NoError(t, err)
	assert.Equal(t, "14.99", shop.Total.StringFixed(2))

	// Invalid prices are rejected before anything is written.
	_, err = services.CreateShop(owner.ID, pool.ID, models.StringMap{"a": "oops"}, false)
	var priceErr *services.InvalidPriceError
	assert.True(t, errors.As(err, &priceErr))

	var count int64
	assert.NoError(t, database.DB.Model(&models.Shop{}).Where("user_id = ?", owner.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateShopRecomputesTotal(t *testing.T) {
	setupTestDB(t)
	setupMockRedis(t)

	owner := seedUser(t, "owner@example.com", true)
	pool, err := services.CreatePool(owner.ID, services.PoolCreateInput{Name: "Pool"})
	assert.NoError(t, err)

	shop, err := services.CreateShop(owner.ID, pool.ID, models.StringMap{"a": "5.00"}, false)
	assert.NoError(t, err)

	newList := models.StringMap{"a": "5.00", "b": "2.25"}
	updated, err := services.UpdateShop(owner.ID, shop.ID, services.ShopUpdateInput{List: &newList})
	assert.NoError(t, err)
	assert.Equal(t, "7.25", updated.Total.StringFixed(2))

	// Updating an unrelated field still recomputes from the stored list.
	calculated := true
	updated, err = services.UpdateShop(owner.ID, shop.ID, services.ShopUpdateInput{IsCalculated: &calculated})
	assert.NoError(t, err)
	assert.Equal(t, "7.25", updated.Total.StringFixed(2))
	assert.True(t, updated.IsCalculated)
}

func TestShopScopingAndDelete(t *testing.T) {
	setupTestDB(t)
	setupMockRedis(t)

	owner := seedUser(t, "owner@example.com", true)
	other := seedUser(t, "other@example.com", true)

	pool, err := services.CreatePool(owner.ID, services.PoolCreateInput{Name: "Pool"})
	assert.NoError(t, err)
	shop, err := services.CreateShop(owner.ID, pool.ID, models.StringMap{"a": "1.00"}, false)
	assert.NoError(t, err)

	// Foreign ids resolve to not-found across all shop operations.
	_, err = services.GetShopByID(other.ID, shop.ID)
	assert.ErrorIs(t, err, services.ErrShopNotFound)

	list := models.StringMap{"a": "2.00"}
	_, err = services.UpdateShop(other.ID, shop.ID, services.ShopUpdateInput{List: &list})
	assert.ErrorIs(t, err, services.ErrShopNotFound)

	err = services.DeleteShop(other.ID, shop.ID)
	assert.ErrorIs(t, err, services.ErrShopNotFound)

	// The owner still sees the untouched record.
	got, err := services.GetShopByID(owner.ID, shop.ID)
	assert.NoError(t, err)
	assert.Equal(t, "1.00", got.Total.StringFixed(2))

	assert.NoError(t, services.DeleteShop(owner.ID, shop.ID))
	_, err = services.GetShopByID(owner.ID, shop.ID)
	assert.ErrorIs(t, err, services.ErrShopNotFound)
}

func TestFindShopsFilters(t *testing.T) {
	setupTestDB(t)
	setupMockRedis(t)

	owner := seedUser(t, "owner@example.com", true)
	poolA, _ := services.CreatePool(owner.ID, services.PoolCreateInput{Name: "A"})
	poolB, _ := services.CreatePool(owner.ID, services.PoolCreateInput{Name: "B"})

	_, err := services.CreateShop(owner.ID, poolA.ID, models.StringMap{"x": "1.00"}, true)
	assert.NoError(t, err)
	_, err = services.CreateShop(owner.ID, poolA.ID, models.StringMap{"y": "2.00"}, false)
	assert.NoError(t, err)
	_, err = services.CreateShop(owner.ID, poolB.ID, models.StringMap{"z": "3.00"}, false)
	assert.NoError(t, err)

	shops, total, err := services.FindShops(owner.ID, services.ShopFilter{Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, shops, 3)

	shops, total, err = services.FindShops(owner.ID, services.ShopFilter{
		PoolCustomerID: &poolA.ID, Page: 1, Limit: 10,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, shops, 2)

	calculated := true
	_, total, err = services.FindShops(owner.ID, services.ShopFilter{
		IsCalculated: &calculated, Page: 1, Limit: 10,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
}
