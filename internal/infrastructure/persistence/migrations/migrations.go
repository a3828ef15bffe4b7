package migrations

import (
	"gorm.io/gorm"

	"faultdesk/internal/infrastructure/persistence/models"
)

func MigrateTicketTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.TicketModel{},
		&models.CommentModel{},
		&models.SequenceModel{},
	)
}

func MigrateUserTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
	)
}

func MigrateOrgUnitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.CommandModel{},
		&models.UnitModel{},
	)
}

// MigrateAll runs every table migration in dependency order.
func MigrateAll(db *gorm.DB) error {
	migrators := []func(*gorm.DB) error{
		MigrateOrgUnitTables,
		MigrateUserTables,
		MigrateTicketTables,
	}
	for _, migrate := range migrators {
		if err := migrate(db); err != nil {
			return err
		}
	}
	return nil
}
