package profile

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/cesta-amigo/internal/audit"
	domain "github.com/BruksfildServices01/cesta-amigo/internal/domain/profile"
	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
	"github.com/BruksfildServices01/cesta-amigo/internal/validators"
)

// UpdateInput é a aba Perfil + Preferências das Configurações.
type UpdateInput struct {
	DisplayName    string
	Phone          string
	Address        string
	City           string
	State          string
	PostalCode     string
	DocumentNumber string
	// nil mantém as preferências atuais
	Preferences *domain.Preferences
}

type UpdateMe struct {
	profiles domain.Repository
	audit    *audit.Dispatcher
}

func NewUpdateMe(profiles domain.Repository, audit *audit.Dispatcher) *UpdateMe {
	return &UpdateMe{profiles: profiles, audit: audit}
}

func (uc *UpdateMe) Execute(
	ctx context.Context,
	userID uuid.UUID,
	in UpdateInput,
) (*models.Profile, error) {

	p, err := uc.profiles.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.DisplayName)
	if name == "" {
		return nil, httperr.ErrBusiness("name_required")
	}

	state := strings.ToUpper(strings.TrimSpace(in.State))
	if state != "" && !validators.IsValidUF(state) {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	doc := strings.TrimSpace(in.DocumentNumber)
	if doc != "" {
		if !validators.IsValidCPF(doc) {
			return nil, httperr.ErrBusiness("invalid_document")
		}
		doc = validators.OnlyDigits(doc)
	}

	if in.Preferences != nil {
		if err := in.Preferences.Validate(); err != nil {
			return nil, err
		}
		raw, err := domain.EncodePreferences(*in.Preferences)
		if err != nil {
			return nil, err
		}
		p.Preferences = datatypes.JSON(raw)
	}

	p.DisplayName = name
	p.Phone = nullable(in.Phone)
	p.Address = nullable(in.Address)
	p.City = nullable(in.City)
	p.State = nullable(state)
	p.PostalCode = nullable(in.PostalCode)
	p.DocumentNumber = nullable(doc)

	if err := uc.profiles.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &userID,
		Action:   "profile_updated",
		Entity:   "profile",
		EntityID: &userID,
	})

	return p, nil
}

func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
