package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tip is a gardening advice / blog entry, listed newest first.
type Tip struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null"`
	AuthorID  uuid.UUID `json:"authorId" gorm:"type:uuid;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime;index:idx_tips_created_at,sort:desc"`
}

func (t *Tip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Tip) TableName() string {
	return "tips"
}

type TipRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}
