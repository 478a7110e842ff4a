package pool

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tetteam4/swimming-project/internal/api/v1/shop"
	"github.com/tetteam4/swimming-project/internal/models"
	"github.com/tetteam4/swimming-project/internal/services"
)

type CreatePoolInput struct {
	Name          string           `json:"name" binding:"required"`
	NumPeople     uint64           `json:"num_people"`
	CabinetNumber uint16           `json:"cabinet_number"`
	TotalPay      decimal.Decimal  `json:"total_pay"`
	IsCalculated  bool             `json:"is_calculated"`
	Rent          models.StringMap `json:"rent"`
	Tools         []string         `json:"tools"`
}

type UpdatePoolInput struct {
	Name          *string           `json:"name"`
	NumPeople     *uint64           `json:"num_people"`
	CabinetNumber *uint16           `json:"cabinet_number"`
	TotalPay      *decimal.Decimal  `json:"total_pay"`
	IsCalculated  *bool             `json:"is_calculated"`
	Rent          *models.StringMap `json:"rent"`
	Tools         *[]string         `json:"tools"`
}

// PoolResponse renders a pool together with its shop records and the
// derived totals, all money fields fixed at two decimal places.
type PoolResponse struct {
	ID            uint                `json:"id"`
	Name          string              `json:"name"`
	NumPeople     uint64              `json:"num_people"`
	CabinetNumber uint16              `json:"cabinet_number"`
	TotalPay      string              `json:"total_pay"`
	IsCalculated  bool                `json:"is_calculated"`
	Rent          models.StringMap    `json:"rent"`
	Tools         []string            `json:"tools"`
	ShopItems     []shop.ShopResponse `json:"shop_items"`
	TotalShop     string              `json:"total_shop"`
	Totals        string              `json:"totals"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

type PoolListResponse struct {
	Total int64          `json:"total"`
	Items []PoolResponse `json:"items"`
}

func NewPoolResponse(p *models.Pool) PoolResponse {
	rent := p.Rent
	if rent == nil {
		rent = models.StringMap{}
	}
	tools := p.Tools
	if tools == nil {
		tools = []string{}
	}

	items := make([]shop.ShopResponse, 0, len(p.ShopItems))
	for i := range p.ShopItems {
		items = append(items, shop.NewShopResponse(&p.ShopItems[i]))
	}

	return PoolResponse{
		ID:            p.ID,
		Name:          p.Name,
		NumPeople:     p.NumPeople,
		CabinetNumber: p.CabinetNumber,
		TotalPay:      p.TotalPay.StringFixed(2),
		IsCalculated:  p.IsCalculated,
		Rent:          rent,
		Tools:         tools,
		ShopItems:     items,
		TotalShop:     services.TotalShop(p).StringFixed(2),
		Totals:        services.GrandTotal(p).StringFixed(2),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
