package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-marketplace/internal/domain"
)

// notFound maps gorm's sentinel to the domain one.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

func duplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicate
	}
	return err
}

func deleted(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside a LIKE pattern using
// ESCAPE '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
