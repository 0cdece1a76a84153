// Package access resolve o que cada usuário enxerga: vendedores ficam restritos
// às próprias linhas, administradores veem tudo.
package access

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/profile"
)

type Actor struct {
	UserID uuid.UUID
	Role   profile.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == profile.RoleAdmin
}

// Owns indica se a linha com o seller_id informado está no escopo do ator.
func (a Actor) Owns(sellerID *uuid.UUID) bool {
	if a.IsAdmin() {
		return true
	}
	return sellerID != nil && *sellerID == a.UserID
}

// Scope aplica o filtro de vendedor na coluna informada (ex.: "clients.seller_id").
// Toda consulta de clientes, agenda e pedidos passa por aqui.
func Scope(db *gorm.DB, a Actor, column string) *gorm.DB {
	if a.IsAdmin() {
		return db
	}
	return db.Where(column+" = ?", a.UserID)
}

// SellerFor decide o dono de um novo registro. Só admin pode atribuir a outro vendedor.
func SellerFor(a Actor, requested *uuid.UUID) uuid.UUID {
	if a.IsAdmin() && requested != nil && *requested != uuid.Nil {
		return *requested
	}
	return a.UserID
}
