package models

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	BasketID *uuid.UUID `gorm:"type:uuid;index" json:"basket_id"`
	Basket   *Basket    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"basket,omitempty"`

	// dono da venda; replica clients.seller_id para filtrar sem join
	SellerID *uuid.UUID `gorm:"type:uuid;index" json:"seller_id"`

	Amount      float64 `gorm:"type:numeric(12,2);not null" json:"amount"`
	Status      string  `gorm:"size:20;not null;default:'pendente';index" json:"status"`
	PaymentPlan string  `gorm:"size:20" json:"payment_plan"`

	PaymentRef  *string    `gorm:"size:120" json:"payment_ref"`
	CheckoutURL *string    `gorm:"size:512" json:"checkout_url"`
	PaidAt      *time.Time `json:"paid_at"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
