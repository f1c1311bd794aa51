package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating is one user's star rating of one product. At most one row per
// (user, product) pair; re-submission updates the existing row.
type Rating struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID `json:"productId" gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_product,priority:2"`
	UserID     uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_product,priority:1"`
	Stars      int       `json:"stars" gorm:"not null;check:stars BETWEEN 1 AND 5"`
	ReviewText *string   `json:"reviewText,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Rating) TableName() string {
	return "ratings"
}

type RatingRequest struct {
	Stars      int     `json:"stars" binding:"required,min=1,max=5"`
	ReviewText *string `json:"reviewText"`
}

// RatingSummary is the client-computed aggregate: average and count over
// the full per-product rating set.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Summarize computes the aggregate the way the storefront does: over the
// complete rating list, no SQL aggregation.
func Summarize(ratings []Rating) RatingSummary {
	if len(ratings) == 0 {
		return RatingSummary{}
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Stars
	}
	return RatingSummary{
		Average: float64(sum) / float64(len(ratings)),
		Count:   len(ratings),
	}
}
