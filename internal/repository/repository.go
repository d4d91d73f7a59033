// Package repository provides the GORM-backed implementations of the
// storage interfaces declared in internal/services.
package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vitalcare-server/internal/services"
)

// translate maps GORM errors onto the service error taxonomy.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", services.ErrNotFound, err)
	}
	return fmt.Errorf("%w: %v", services.ErrUnavailable, err)
}
