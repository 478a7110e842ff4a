package shop

import (
	"time"

	"github.com/tetteam4/swimming-project/internal/models"
)

type CreateShopInput struct {
	PoolCustomer uint             `json:"pool_customer" binding:"required"`
	List         models.StringMap `json:"list"`
	IsCalculated bool             `json:"is_calculated"`
}

type UpdateShopInput struct {
	PoolCustomer *uint             `json:"pool_customer"`
	List         *models.StringMap `json:"list"`
	IsCalculated *bool             `json:"is_calculated"`
}

// ShopResponse renders a shop with its derived total at two fixed decimal
// places.
type ShopResponse struct {
	ID           uint             `json:"id"`
	PoolCustomer uint             `json:"pool_customer"`
	List         models.StringMap `json:"list"`
	IsCalculated bool             `json:"is_calculated"`
	Total        string           `json:"total"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type ShopListResponse struct {
	Total int64          `json:"total"`
	Items []ShopResponse `json:"items"`
}

func NewShopResponse(s *models.Shop) ShopResponse {
	list := s.List
	if list == nil {
		list = models.StringMap{}
	}
	return ShopResponse{
		ID:           s.ID,
		PoolCustomer: s.PoolCustomerID,
		List:         list,
		IsCalculated: s.IsCalculated,
		Total:        s.Total.StringFixed(2),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
