package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	wrap := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code}, "insert")
	}

	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(wrap("23505")))
	assert.False(t, isUniqueConstraintViolation(wrap("23503")))

	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(wrap("23503")))

	assert.True(t, isNotNullConstraintViolation(wrap("23502")))
	assert.False(t, isNotNullConstraintViolation(errors.New("null value in column")))

	assert.True(t, isCheckConstraintViolation(wrap("23514")))
	assert.False(t, isCheckConstraintViolation(gorm.ErrRecordNotFound))
}
