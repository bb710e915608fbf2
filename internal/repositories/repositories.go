// Package repositories provides gorm-backed data access over the in-memory
// database, one repository per entity.
package repositories

import (
	"errors"

	"gorm.io/gorm"

	"coldmart/internal/common"
)

// translate maps gorm errors to the service-level error taxonomy.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.ErrNotFound
	}
	return err
}
