package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
)

var (
	ErrNotFound         = httperr.ErrBusiness("profile_not_found")
	ErrUsernameNotFound = httperr.ErrBusiness("username_not_found")
	ErrEmailTaken       = httperr.ErrBusiness("email_already_registered")
	ErrUsernameTaken    = httperr.ErrBusiness("username_already_exists")
	ErrSellerNotFound   = httperr.ErrBusiness("seller_not_found")
)

// Finder é a consulta por id usada fora do cadastro de perfis.
type Finder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

// ResolveSeller confere o vendedor escolhido por um admin como dono de um registro:
// precisa existir, ser vendedor e estar ativo.
func ResolveSeller(ctx context.Context, profiles Finder, id uuid.UUID) (*models.Profile, error) {
	p, err := profiles.FindByID(ctx, id)
	if err != nil {
		if httperr.IsBusiness(err, "profile_not_found") {
			return nil, ErrSellerNotFound
		}
		return nil, err
	}
	if Role(p.Role) != RoleVendedor || !p.Active {
		return nil, ErrSellerNotFound
	}
	return p, nil
}

type SellerFilter struct {
	Query  string
	Active *bool
}

// SellerSummary é a linha da tela de Vendedores.
type SellerSummary struct {
	models.Profile
	TotalClients int64   `json:"total_clients"`
	TotalSales   float64 `json:"total_sales"`
}

type Repository interface {
	// -------- lookup --------
	EmailByUsername(ctx context.Context, username string) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.Profile, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)

	// -------- write --------
	Create(ctx context.Context, p *models.Profile) error
	Update(ctx context.Context, p *models.Profile) error

	// -------- listing --------
	ListSellers(ctx context.Context, f SellerFilter) ([]SellerSummary, error)
}
