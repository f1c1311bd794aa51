package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Faq struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Question string    `json:"question" gorm:"not null"`
	Answer   string    `json:"answer" gorm:"not null"`
}

func (f *Faq) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Faq) TableName() string {
	return "faqs"
}

type FaqRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}
