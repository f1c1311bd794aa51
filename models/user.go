package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email         string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash  string    `json:"-" gorm:"column:password_hash;type:varchar(255)"`
	Firstname     string    `json:"firstname" gorm:"type:varchar(255)"`
	Lastname      string    `json:"lastname" gorm:"type:varchar(255)"`
	Phone         *string   `json:"phone,omitempty" gorm:"type:varchar(50)"`
	Address       *string   `json:"address,omitempty" gorm:"type:text"`
	AvatarURL     *string   `json:"avatarUrl,omitempty" gorm:"column:avatar_url;type:text"`
	Admin         bool      `json:"admin" gorm:"not null;default:false"`
	GoogleID      string    `json:"googleId,omitempty" gorm:"column:google_id;type:varchar(255);index"`
	Provider      string    `json:"provider" gorm:"type:varchar(50);default:'password'"`
	EmailVerified bool      `json:"emailVerified" gorm:"column:email_verified;default:false"`
	CreatedAt     time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// Name joins first and last name for display and JWT claims.
func (u *User) Name() string {
	switch {
	case u.Firstname != "" && u.Lastname != "":
		return u.Firstname + " " + u.Lastname
	case u.Firstname != "":
		return u.Firstname
	default:
		return u.Lastname
	}
}

// UserResponse is the public-facing user data
type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Firstname     string    `json:"firstname"`
	Lastname      string    `json:"lastname"`
	Phone         *string   `json:"phone,omitempty"`
	Address       *string   `json:"address,omitempty"`
	AvatarURL     *string   `json:"avatarUrl,omitempty"`
	Admin         bool      `json:"admin"`
	Provider      string    `json:"provider"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Firstname:     u.Firstname,
		Lastname:      u.Lastname,
		Phone:         u.Phone,
		Address:       u.Address,
		AvatarURL:     u.AvatarURL,
		Admin:         u.Admin,
		Provider:      u.Provider,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Firstname string `json:"firstname" binding:"required"`
	Lastname  string `json:"lastname" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

// GoogleUserInfo represents data from Google OAuth
type GoogleUserInfo struct {
	Sub           string `json:"sub"` // Google user ID
	ID            string `json:"id"`  // Alternative field name
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}
