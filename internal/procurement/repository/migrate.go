package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
)

// Migrate creates or updates the procurement tables. It is idempotent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Supplier{}, &domain.PurchaseOrder{}); err != nil {
		return fmt.Errorf("failed to migrate procurement schema: %w", err)
	}
	return nil
}
