package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Pool is a user-owned fund with a target payment amount. The owning user
// cannot be deleted while pools reference it.
type Pool struct {
	ID            uint   `gorm:"primarykey"`
	UserID        uint   `gorm:"index;not null"`
	User          *User  `gorm:"constraint:OnDelete:RESTRICT"`
	Name          string `gorm:"size:300;not null"`
	NumPeople     uint64
	CabinetNumber uint16
	TotalPay      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	IsCalculated  bool            `gorm:"default:false"`

	// Rent holds label -> numeric-string entries summed leniently into the
	// grand total; non-numeric values are skipped, never rejected.
	Rent  StringMap                   `gorm:"type:jsonb;default:'{}'"`
	Tools datatypes.JSONSlice[string] `gorm:"type:jsonb"`

	ShopItems []Shop `gorm:"foreignKey:PoolCustomerID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Pool) TableName() string {
	return "pools"
}

// Shop is a purchase record linked to a pool. List maps item labels to
// decimal-string prices; Total is always derived from List by the write
// path (services.ComputeTotal) and is never client-settable.
type Shop struct {
	ID             uint  `gorm:"primarykey"`
	UserID         uint  `gorm:"index;not null"`
	User           *User `gorm:"constraint:OnDelete:RESTRICT"`
	PoolCustomerID uint  `gorm:"index;not null"`
	PoolCustomer   *Pool `gorm:"foreignKey:PoolCustomerID;constraint:OnDelete:RESTRICT"`

	List         StringMap       `gorm:"type:jsonb;default:'{}'"`
	Total        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	IsCalculated bool            `gorm:"default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Shop) TableName() string {
	return "shops"
}
