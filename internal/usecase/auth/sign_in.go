package auth

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/profile"
	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
	"github.com/BruksfildServices01/cesta-amigo/internal/token"
)

type SignInInput struct {
	Username string
	Password string
}

type Session struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Profile   *models.Profile `json:"profile"`
}

type SignIn struct {
	profiles  profile.Repository
	tokens    *token.Issuer
	passwords Passwords
}

func NewSignIn(
	profiles profile.Repository,
	tokens *token.Issuer,
	passwords Passwords,
) *SignIn {
	return &SignIn{
		profiles:  profiles,
		tokens:    tokens,
		passwords: passwords,
	}
}

// Execute faz o login por nome de usuário: resolve o e-mail e confere a senha.
func (uc *SignIn) Execute(
	ctx context.Context,
	in SignInInput,
) (*Session, error) {

	username := strings.ToLower(strings.TrimSpace(in.Username))
	if username == "" || in.Password == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	email, err := uc.profiles.EmailByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	p, err := uc.profiles.FindByEmail(ctx, email)
	if err != nil {
		if httperr.IsBusiness(err, "profile_not_found") {
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, err
	}

	if !uc.passwords.Matches(p.PasswordHash, in.Password) {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	if !p.Active {
		return nil, httperr.ErrBusiness("account_disabled")
	}

	signed, claims, err := uc.tokens.Issue(p.UserID, profile.Role(p.Role))
	if err != nil {
		return nil, err
	}

	return &Session{
		Token:     signed,
		ExpiresAt: claims.ExpiresAt.Time,
		Profile:   p,
	}, nil
}
