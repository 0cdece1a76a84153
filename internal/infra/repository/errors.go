package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notFoundOr troca gorm.ErrRecordNotFound pelo erro de negócio da entidade
// e embrulha o resto com a operação que falhou.
func notFoundOr(err error, notFound error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return errors.Wrap(err, op)
}

func likePattern(q string) string {
	return "%" + q + "%"
}
