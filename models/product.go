package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryList is a jsonb-backed list of free-text category labels.
// A product may belong to several categories at once (e.g. "Szobanövény"
// and "Pozsgás").
type CategoryList []string

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID          uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string       `json:"name" gorm:"not null;index"`
	Description string       `json:"description" gorm:"not null"`
	Price       int          `json:"price" gorm:"not null;check:price >= 0"`
	Category    CategoryList `json:"category" gorm:"type:jsonb;not null;default:'[]'"`
	ImgURL      string       `json:"imgUrl" gorm:"column:img_url"`
	Sales       bool         `json:"sales" gorm:"not null;default:false;index"`
	Featured    bool         `json:"featured" gorm:"not null;default:false;index"`
	Slug        string       `json:"slug" gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt   time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Name        string   `json:"name" binding:"required" example:"Aloe Vera"`
	Description string   `json:"description" binding:"required" example:"Hardy succulent for bright rooms"`
	Price       int      `json:"price" binding:"min=0" example:"3490"`
	Category    []string `json:"category" binding:"required" example:"['Szobanövény', 'Pozsgás']"`
	ImgURL      string   `json:"imgUrl" binding:"required"`
	Sales       bool     `json:"sales"`
	Featured    bool     `json:"featured"`
	Slug        string   `json:"slug" binding:"required" example:"aloe-vera"`
}

type UpdateProductRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *int      `json:"price" binding:"omitempty,min=0"`
	Category    *[]string `json:"category"`
	ImgURL      *string   `json:"imgUrl"`
	Sales       *bool     `json:"sales"`
	Featured    *bool     `json:"featured"`
	Slug        *string   `json:"slug"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// StorefrontProductResponse is the thin product card used by catalog listings.
type StorefrontProductResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Category []string `json:"category"`
	ImgURL   string   `json:"imgUrl"`
	Sales    bool     `json:"sales"`
	Featured bool     `json:"featured"`
	Slug     string   `json:"slug"`
}

func (p *Product) ToStorefrontResponse() StorefrontProductResponse {
	return StorefrontProductResponse{
		ID:       p.ID.String(),
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
		ImgURL:   p.ImgURL,
		Sales:    p.Sales,
		Featured: p.Featured,
		Slug:     p.Slug,
	}
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM
// ═══════════════════════════════════════════════════════════

func (c *CategoryList) Scan(value interface{}) error {
	if value == nil {
		*c = make(CategoryList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan CategoryList")
	}
	return json.Unmarshal(bytes, c)
}

func (c CategoryList) Value() (driver.Value, error) {
	if c == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(c)
}
