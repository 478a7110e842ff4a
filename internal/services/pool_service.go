package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tetteam4/swimming-project/internal/database"
	"github.com/tetteam4/swimming-project/internal/models"
)

// PoolFilter defines criteria for filtering a user's pools. The rent and
// tools JSON columns are not filterable.
type PoolFilter struct {
	Name          *string
	NumPeople     *uint64
	CabinetNumber *uint16
	IsCalculated  *bool
	Page          int
	Limit         int
}

// FindPools retrieves a paginated list of the user's pools with their shop
// items preloaded for the totals projection.
func FindPools(userID uint, filter PoolFilter) ([]models.Pool, int64, error) {
	var pools []models.Pool
	var total int64

	query := database.DB.Model(&models.Pool{}).Where("user_id = ?", userID)

	if filter.Name != nil {
		query = query.Where("name = ?", *filter.Name)
	}
	if filter.NumPeople != nil {
		query = query.Where("num_people = ?", *filter.NumPeople)
	}
	if filter.CabinetNumber != nil {
		query = query.Where("cabinet_number = ?", *filter.CabinetNumber)
	}
	if filter.IsCalculated != nil {
		query = query.Where("is_calculated = ?", *filter.IsCalculated)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := query.Preload("ShopItems").Order("created_at desc").Limit(filter.Limit).Offset(offset).Find(&pools).Error
	if err != nil {
		return nil, 0, err
	}

	return pools, total, nil
}

// GetPoolByID fetches one pool scoped to its owner, shop items included.
// A foreign id resolves to not-found, never forbidden.
func GetPoolByID(userID, id uint) (models.Pool, error) {
	var pool models.Pool
	err := database.DB.Preload("ShopItems").Where("id = ? AND user_id = ?", id, userID).First(&pool).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pool, ErrPoolNotFound
		}
		return pool, err
	}
	return pool, nil
}

// PoolCreateInput carries the client-settable pool fields.
type PoolCreateInput struct {
	Name          string
	NumPeople     uint64
	CabinetNumber uint16
	TotalPay      decimal.Decimal
	IsCalculated  bool
	Rent          models.StringMap
	Tools         []string
}

// CreatePool creates a pool owned by the caller.
func CreatePool(userID uint, input PoolCreateInput) (*models.Pool, error) {
	rent := input.Rent
	if rent == nil {
		rent = models.StringMap{}
	}

	pool := &models.Pool{
		UserID:        userID,
		Name:          input.Name,
		NumPeople:     input.NumPeople,
		CabinetNumber: input.CabinetNumber,
		TotalPay:      input.TotalPay.Round(2),
		IsCalculated:  input.IsCalculated,
		Rent:          rent,
		Tools:         input.Tools,
	}
	if err := database.DB.Create(pool).Error; err != nil {
		return nil, err
	}
	return pool, nil
}

// PoolUpdateInput carries partial-update fields for a pool.
type PoolUpdateInput struct {
	Name          *string
	NumPeople     *uint64
	CabinetNumber *uint16
	TotalPay      *decimal.Decimal
	IsCalculated  *bool
	Rent          *models.StringMap
	Tools         *[]string
}

// UpdatePool applies a partial update to one of the caller's pools.
func UpdatePool(userID, id uint, input PoolUpdateInput) (*models.Pool, error) {
	pool, err := GetPoolByID(userID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		pool.Name = *input.Name
	}
	if input.NumPeople != nil {
		pool.NumPeople = *input.NumPeople
	}
	if input.CabinetNumber != nil {
		pool.CabinetNumber = *input.CabinetNumber
	}
	if input.TotalPay != nil {
		pool.TotalPay = input.TotalPay.Round(2)
	}
	if input.IsCalculated != nil {
		pool.IsCalculated = *input.IsCalculated
	}
	if input.Rent != nil {
		pool.Rent = *input.Rent
	}
	if input.Tools != nil {
		pool.Tools = *input.Tools
	}

	if err := database.DB.Save(&pool).Error; err != nil {
		return nil, err
	}
	return &pool, nil
}

// DeletePool removes one of the caller's pools. Pools still referenced by
// shops are protected by the RESTRICT constraint.
func DeletePool(userID, id uint) error {
	result := database.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Pool{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPoolNotFound
	}
	return nil
}

// TotalShop sums the totals of all shop records linked to the pool.
func TotalShop(pool *models.Pool) decimal.Decimal {
	total := decimal.Zero
	for _, shop := range pool.ShopItems {
		total = total.Add(shop.Total)
	}
	return total
}

// GrandTotal is the read-time projection combining the pool's own pay
// amount, its shops' totals and the rent entries. Rent values that fail to
// parse are skipped silently, unlike the strict shop list parsing.
func GrandTotal(pool *models.Pool) decimal.Decimal {
	total := pool.TotalPay.Add(TotalShop(pool))
	for _, value := range pool.Rent {
		rent, err := decimal.NewFromString(value)
		if err != nil {
			continue
		}
		total = total.Add(rent)
	}
	return total
}
