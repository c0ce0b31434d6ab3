package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDone      = "done"
	OrderStatusCancelled = "cancelled"
)

const (
	VoucherKindPercent = "percent"
	VoucherKindFixed   = "fixed"
)

// CartItem stores the serialized engine cart line in Design; UnitPrice is the
// server-revalidated price at add-to-cart time.
type CartItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	ProductID uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Product   *Product       `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProductID;references:ID" json:"product,omitempty"`
	Quantity  int            `gorm:"column:quantity;not null;default:1" json:"quantity"`
	Design    datatypes.JSON `gorm:"column:design;type:jsonb" json:"design,omitempty"`
	UnitPrice float64        `gorm:"column:unit_price;not null;default:0" json:"unit_price"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (CartItem) TableName() string { return "cart_item" }

type Order struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User            *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Status          string         `gorm:"column:status;not null;default:pending;index" json:"status"`
	Subtotal        float64        `gorm:"column:subtotal;not null;default:0" json:"subtotal"`
	Discount        float64        `gorm:"column:discount;not null;default:0" json:"discount"`
	Total           float64        `gorm:"column:total;not null;default:0" json:"total"`
	VoucherCode     string         `gorm:"column:voucher_code" json:"voucher_code,omitempty"`
	ShippingName    string         `gorm:"column:shipping_name" json:"shipping_name"`
	ShippingPhone   string         `gorm:"column:shipping_phone" json:"shipping_phone"`
	ShippingAddress string         `gorm:"column:shipping_address" json:"shipping_address"`
	Items           []OrderItem    `gorm:"foreignKey:OrderID;references:ID" json:"items,omitempty"`
	CreatedAt       time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Order) TableName() string { return "order" }

type OrderItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OrderID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Product   *Product       `gorm:"constraint:OnDelete:SET NULL;foreignKey:ProductID;references:ID" json:"product,omitempty"`
	Quantity  int            `gorm:"column:quantity;not null;default:1" json:"quantity"`
	Design    datatypes.JSON `gorm:"column:design;type:jsonb" json:"design,omitempty"`
	UnitPrice float64        `gorm:"column:unit_price;not null;default:0" json:"unit_price"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (OrderItem) TableName() string { return "order_item" }

type Voucher struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Code       string         `gorm:"column:code;uniqueIndex;not null" json:"code"`
	Kind       string         `gorm:"column:kind;not null;default:percent" json:"kind"`
	Amount     float64        `gorm:"column:amount;not null;default:0" json:"amount"`
	MinOrder   float64        `gorm:"column:min_order;not null;default:0" json:"min_order"`
	ExpiresAt  *time.Time     `gorm:"column:expires_at" json:"expires_at,omitempty"`
	UsageLimit int            `gorm:"column:usage_limit;not null;default:0" json:"usage_limit"`
	UsedCount  int            `gorm:"column:used_count;not null;default:0" json:"used_count"`
	Active     bool           `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Voucher) TableName() string { return "voucher" }

type SavedDesign struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	ProductID uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Product   *Product       `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProductID;references:ID" json:"product,omitempty"`
	Name      string         `gorm:"column:name" json:"name"`
	Design    datatypes.JSON `gorm:"column:design;type:jsonb;not null" json:"design"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (SavedDesign) TableName() string { return "saved_design" }
