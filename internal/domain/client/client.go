package client

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
	"github.com/BruksfildServices01/cesta-amigo/internal/timezone"
	"github.com/BruksfildServices01/cesta-amigo/internal/validators"
)

var ErrNotFound = httperr.ErrBusiness("client_not_found")

type Filter struct {
	Query string
}

type Repository interface {
	Create(ctx context.Context, c *models.Client) error
	List(ctx context.Context, actor access.Actor, f Filter) ([]models.Client, error)
	Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*models.Client, error)
	Update(ctx context.Context, c *models.Client) error
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error
}

// Input espelha o formulário de cadastro. Campos vazios viram NULL.
type Input struct {
	Name           string
	Email          string
	Phone          string
	Address        string
	City           string
	State          string
	PostalCode     string
	DocumentNumber string
	BirthDate      string
	Notes          string
}

// Apply valida o formulário e grava os campos no cliente.
func (in Input) Apply(c *models.Client) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return httperr.ErrBusiness("name_required")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email != "" && !validators.IsEmailSyntaxValid(email) {
		return httperr.ErrBusiness("invalid_email")
	}

	state := strings.ToUpper(strings.TrimSpace(in.State))
	if state != "" && !validators.IsValidUF(state) {
		return httperr.ErrBusiness("invalid_state")
	}

	doc := strings.TrimSpace(in.DocumentNumber)
	if doc != "" {
		if !validators.IsValidCPF(doc) {
			return httperr.ErrBusiness("invalid_document")
		}
		doc = validators.OnlyDigits(doc)
	}

	var birth *datatypes.Date
	if b := strings.TrimSpace(in.BirthDate); b != "" {
		t, err := timezone.ParseDate(b)
		if err != nil || t.After(timezone.Now()) {
			return httperr.ErrBusiness("invalid_birth_date")
		}
		d := datatypes.Date(t)
		birth = &d
	}

	c.Name = name
	c.Email = nullable(email)
	c.Phone = nullable(in.Phone)
	c.Address = nullable(in.Address)
	c.City = nullable(in.City)
	c.State = nullable(state)
	c.PostalCode = nullable(in.PostalCode)
	c.DocumentNumber = nullable(doc)
	c.BirthDate = birth
	c.Notes = nullable(in.Notes)

	return nil
}

// NormalizeQuery prepara o termo de busca (minúsculo, sem espaços nas pontas).
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Matches replica em memória o filtro do repositório: nome, e-mail ou telefone
// contendo o termo, sem diferenciar maiúsculas.
func Matches(c models.Client, query string) bool {
	q := NormalizeQuery(query)
	if q == "" {
		return true
	}

	if strings.Contains(strings.ToLower(c.Name), q) {
		return true
	}
	if c.Email != nil && strings.Contains(strings.ToLower(*c.Email), q) {
		return true
	}
	if c.Phone != nil && strings.Contains(strings.ToLower(*c.Phone), q) {
		return true
	}
	return false
}

// BirthDateString devolve YYYY-MM-DD ou vazio.
func BirthDateString(c models.Client) string {
	if c.BirthDate == nil {
		return ""
	}
	return time.Time(*c.BirthDate).Format("2006-01-02")
}

func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
