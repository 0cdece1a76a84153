package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Cliente da carteira de um vendedor, sem login
type Client struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	Name  string  `gorm:"size:150;not null" json:"name"`
	Email *string `gorm:"size:120" json:"email"`
	Phone *string `gorm:"size:20" json:"phone"`

	Address    *string `gorm:"size:255" json:"address"`
	City       *string `gorm:"size:100" json:"city"`
	State      *string `gorm:"size:2" json:"state"`
	PostalCode *string `gorm:"size:9" json:"postal_code"`

	DocumentNumber *string         `gorm:"size:11" json:"document_number"`
	BirthDate      *datatypes.Date `json:"birth_date"`
	Notes          *string         `gorm:"type:text" json:"notes"`

	SellerID *uuid.UUID `gorm:"type:uuid;index" json:"seller_id"`
	Seller   *Profile   `gorm:"foreignKey:SellerID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
