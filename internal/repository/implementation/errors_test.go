package implementation

import (
	"errors"
	"fmt"
	"testing"

	"noteful-be/internal/repository/contract"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name    string
		in      error
		wantDup bool
	}{
		{"nil", nil, false},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, true},
		{"pg unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "idx_folders_name"}, true},
		{"wrapped pg unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation}), true},
		{"pg other code", &pgconn.PgError{Code: pgerrcode.NotNullViolation}, false},
		{"other", other, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.in)
			assert.Equal(t, tt.wantDup, errors.Is(got, contract.ErrDuplicateKey))
			if tt.in == nil {
				assert.NoError(t, got)
			}
		})
	}

	assert.Same(t, other, translateError(other))
}
