package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tetteam4/swimming-project/internal/database"
	"github.com/tetteam4/swimming-project/internal/models"
)

var (
	ErrShopNotFound = errors.New("shop not found")
	ErrPoolNotFound = errors.New("pool not found")
)

// InvalidPriceError reports a shop list value that failed strict decimal
// parsing.
type InvalidPriceError struct {
	Label string
	Value string
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price %q for item %q", e.Value, e.Label)
}

// ComputeTotal derives a shop's total from its item mapping. Every value
// must parse as a decimal; an empty mapping yields 0.00. This is the single
// derivation point for Shop.Total, called by every write path.
func ComputeTotal(items models.StringMap) (decimal.Decimal, error) {
	total := decimal.Zero
	for label, value := range items {
		price, err := decimal.NewFromString(value)
		if err != nil {
			return decimal.Zero, &InvalidPriceError{Label: label, Value: value}
		}
		total = total.Add(price)
	}
	return total, nil
}

// ShopFilter defines criteria for filtering a user's shops. The JSON list
// column is not filterable.
type ShopFilter struct {
	PoolCustomerID *uint
	IsCalculated   *bool
	Page           int
	Limit          int
}

// FindShops retrieves a paginated list of the user's shops.
func FindShops(userID uint, filter ShopFilter) ([]models.Shop, int64, error) {
	var shops []models.Shop
	var total int64

	query := database.DB.Model(&models.Shop{}).Where("user_id = ?", userID)

	if filter.PoolCustomerID != nil {
		query = query.Where("pool_customer_id = ?", *filter.PoolCustomerID)
	}
	if filter.IsCalculated != nil {
		query = query.Where("is_calculated = ?", *filter.IsCalculated)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("created_at desc").Limit(filter.Limit).Offset(offset).Find(&shops).Error; err != nil {
		return nil, 0, err
	}

	return shops, total, nil
}

// GetShopByID fetches one shop scoped to its owner. A foreign id resolves
// to not-found, never forbidden.
func GetShopByID(userID, id uint) (models.Shop, error) {
	var shop models.Shop
	err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&shop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shop, ErrShopNotFound
		}
		return shop, err
	}
	return shop, nil
}

// CreateShop creates a purchase record under one of the caller's pools.
func CreateShop(userID, poolID uint, list models.StringMap, isCalculated bool) (*models.Shop, error) {
	if _, err := GetPoolByID(userID, poolID); err != nil {
		return nil, err
	}

	if list == nil {
		list = models.StringMap{}
	}
	total, err := ComputeTotal(list)
	if err != nil {
		return nil, err
	}

	shop := &models.Shop{
		UserID:         userID,
		PoolCustomerID: poolID,
		List:           list,
		Total:          total,
		IsCalculated:   isCalculated,
	}
	if err := database.DB.Create(shop).Error; err != nil {
		return nil, err
	}
	return shop, nil
}

// ShopUpdateInput carries partial-update fields for a shop.
type ShopUpdateInput struct {
	PoolCustomerID *uint
	List           *models.StringMap
	IsCalculated   *bool
}

// UpdateShop applies a partial update. The total is recomputed from the
// effective list on every save, so callers can never set it directly.
func UpdateShop(userID, id uint, input ShopUpdateInput) (*models.Shop, error) {
	shop, err := GetShopByID(userID, id)
	if err != nil {
		return nil, err
	}

	if input.PoolCustomerID != nil {
		if _, err := GetPoolByID(userID, *input.PoolCustomerID); err != nil {
			return nil, err
		}
		shop.PoolCustomerID = *input.PoolCustomerID
	}
	if input.List != nil {
		shop.List = *input.List
	}
	if input.IsCalculated != nil {
		shop.IsCalculated = *input.IsCalculated
	}

	shop.Total, err = ComputeTotal(shop.List)
	if err != nil {
		return nil, err
	}

	if err := database.DB.Save(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// DeleteShop removes one of the caller's shops.
func DeleteShop(userID, id uint) error {
	result := database.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Shop{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrShopNotFound
	}
	return nil
}
