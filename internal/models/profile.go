package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile é a conta de acesso (admin ou vendedor) e seus dados cadastrais.
type Profile struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`

	DisplayName  string  `gorm:"size:120;not null" json:"display_name"`
	Username     *string `gorm:"size:60;uniqueIndex" json:"username"`
	Email        string  `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"size:255;not null" json:"-"`
	Role         string  `gorm:"size:20;not null;default:'vendedor'" json:"role"`

	Phone          *string `gorm:"size:20" json:"phone"`
	Address        *string `gorm:"size:255" json:"address"`
	City           *string `gorm:"size:100" json:"city"`
	State          *string `gorm:"size:2" json:"state"`
	PostalCode     *string `gorm:"size:9" json:"postal_code"`
	DocumentNumber *string `gorm:"size:14" json:"document_number"`
	AvatarURL      *string `gorm:"size:512" json:"avatar_url"`

	Preferences datatypes.JSON `gorm:"type:jsonb" json:"preferences"`
	Active      bool           `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
