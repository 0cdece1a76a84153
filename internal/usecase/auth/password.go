package auth

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
)

const minPasswordLen = 6

// Passwords encapsula o bcrypt; o custo é configurável para os testes.
type Passwords struct {
	Cost int
}

func DefaultPasswords() Passwords {
	return Passwords{Cost: bcrypt.DefaultCost}
}

func (p Passwords) Hash(plain string) (string, error) {
	if len(plain) < minPasswordLen {
		return "", httperr.ErrBusiness("weak_password")
	}

	cost := p.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", errors.Wrap(err, "auth: hash password")
	}
	return string(b), nil
}

func (p Passwords) Matches(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
