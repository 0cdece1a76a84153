package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/cesta-amigo/internal/audit"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/profile"
	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
	"github.com/BruksfildServices01/cesta-amigo/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

// UserData são os dados cadastrais enviados junto com e-mail e senha.
type UserData struct {
	DisplayName    string
	Role           string
	Username       string
	Phone          string
	Address        string
	City           string
	State          string
	PostalCode     string
	DocumentNumber string
}

type SignUpInput struct {
	Email    string
	Password string
	UserData UserData
}

// DomainChecker confirma que o domínio do e-mail recebe mensagens.
type DomainChecker func(email string) bool

// ======================================================
// USE CASE
// ======================================================

// SignUp é o cadastro público: sempre cria vendedor.
type SignUp struct {
	profiles  profile.Repository
	passwords Passwords
	domains   DomainChecker
	audit     *audit.Dispatcher
}

func NewSignUp(
	profiles profile.Repository,
	passwords Passwords,
	domains DomainChecker,
	audit *audit.Dispatcher,
) *SignUp {
	if domains == nil {
		domains = validators.IsEmailDomainValid
	}
	return &SignUp{
		profiles:  profiles,
		passwords: passwords,
		domains:   domains,
		audit:     audit,
	}
}

func (uc *SignUp) Execute(
	ctx context.Context,
	in SignUpInput,
) (*models.Profile, error) {

	p, err := buildProfile(in, profile.RoleVendedor, uc.passwords, uc.domains)
	if err != nil {
		return nil, err
	}

	if err := uc.profiles.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &p.UserID,
		Action:   "profile_registered",
		Entity:   "profile",
		EntityID: &p.UserID,
	})

	return p, nil
}

// ======================================================
// SHARED
// ======================================================

func buildProfile(
	in SignUpInput,
	role profile.Role,
	passwords Passwords,
	domains DomainChecker,
) (*models.Profile, error) {

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !validators.IsEmailSyntaxValid(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}

	name := strings.TrimSpace(in.UserData.DisplayName)
	if name == "" {
		return nil, httperr.ErrBusiness("name_required")
	}

	state := strings.ToUpper(strings.TrimSpace(in.UserData.State))
	if state != "" && !validators.IsValidUF(state) {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	doc := strings.TrimSpace(in.UserData.DocumentNumber)
	if doc != "" {
		if !validators.IsValidCPF(doc) {
			return nil, httperr.ErrBusiness("invalid_document")
		}
		doc = validators.OnlyDigits(doc)
	}

	hash, err := passwords.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	if !domains(email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	prefs, _ := profile.EncodePreferences(profile.DefaultPreferences())

	return &models.Profile{
		UserID:         uuid.New(),
		DisplayName:    name,
		Username:       nullable(strings.ToLower(in.UserData.Username)),
		Email:          email,
		PasswordHash:   hash,
		Role:           string(role),
		Phone:          nullable(in.UserData.Phone),
		Address:        nullable(in.UserData.Address),
		City:           nullable(in.UserData.City),
		State:          nullable(state),
		PostalCode:     nullable(in.UserData.PostalCode),
		DocumentNumber: nullable(doc),
		Preferences:    datatypes.JSON(prefs),
		Active:         true,
	}, nil
}

func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func actorID(a access.Actor) *uuid.UUID {
	id := a.UserID
	return &id
}
