package partner

import (
	"errors"
	"strings"

	partnererrors "github.com/archit-sahay/Aibo-Meikan/internal/partner/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return partnererrors.ErrPartnerNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_partners_unique_code" {
			return partnererrors.ErrUniqueCodeConflict
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_partners_unique_code") {
		return partnererrors.ErrUniqueCodeConflict
	}

	return err
}
