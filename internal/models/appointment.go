package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	ClientID *uuid.UUID `gorm:"type:uuid;index" json:"client_id"`
	Client   *Client    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	SellerID *uuid.UUID `gorm:"type:uuid;index" json:"seller_id"`
	Seller   *Profile   `gorm:"foreignKey:SellerID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	AppointmentDate time.Time `gorm:"not null;index" json:"appointment_date"`

	// tipo, endereço e observações concatenados (ver domain/appointment.ComposeNotes)
	Notes *string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
