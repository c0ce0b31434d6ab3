package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string         `gorm:"column:name;not null" json:"name"`
	Slug      string         `gorm:"column:slug;uniqueIndex;not null" json:"slug"`
	Position  int            `gorm:"column:position;not null;default:0" json:"position"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Category) TableName() string { return "category" }

type Product struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CategoryID   *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category     *Category      `gorm:"constraint:OnDelete:SET NULL;foreignKey:CategoryID;references:ID" json:"category,omitempty"`
	Name         string         `gorm:"column:name;not null" json:"name"`
	Slug         string         `gorm:"column:slug;uniqueIndex;not null" json:"slug"`
	Description  string         `gorm:"column:description" json:"description"`
	BasePrice    float64        `gorm:"column:base_price;not null;default:0" json:"base_price"`
	Customizable bool           `gorm:"column:customizable;not null;default:false" json:"customizable"`
	ImageKey     string         `gorm:"column:image_key" json:"image_key,omitempty"`
	Spec         datatypes.JSON `gorm:"column:spec;type:jsonb" json:"spec,omitempty"`
	Active       bool           `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt    time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Product) TableName() string { return "product" }

// Template is a named starting style for a customizable product: default colors,
// its own base price and a recommended charm list. The string Key is the business
// identifier the customization engine works with ("galaxy", "cute", ...).
type Template struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Key         string         `gorm:"column:key;uniqueIndex;not null" json:"key"`
	ProductID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Product     *Product       `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProductID;references:ID" json:"product,omitempty"`
	Name        string         `gorm:"column:name;not null" json:"name"`
	BasePrice   float64        `gorm:"column:base_price;not null;default:0" json:"base_price"`
	BandColor   string         `gorm:"column:band_color" json:"band_color"`
	FaceColor   string         `gorm:"column:face_color" json:"face_color"`
	RimColor    string         `gorm:"column:rim_color" json:"rim_color"`
	Recommended datatypes.JSON `gorm:"column:recommended;type:jsonb" json:"recommended,omitempty"`
	PreviewKey  string         `gorm:"column:preview_key" json:"preview_key"`
	Active      bool           `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Template) TableName() string { return "template" }

// Accessory is a charm that can be attached to a design. Key is the business
// identifier referenced from design documents and template recommendations.
type Accessory struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Key         string         `gorm:"column:key;uniqueIndex;not null" json:"key"`
	DisplayName string         `gorm:"column:display_name;not null" json:"display_name"`
	VisualKey   string         `gorm:"column:visual_key;not null" json:"visual_key"`
	UnitPrice   float64        `gorm:"column:unit_price;not null;default:0" json:"unit_price"`
	Active      bool           `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Accessory) TableName() string { return "accessory" }
