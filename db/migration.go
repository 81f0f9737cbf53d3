package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "itsm-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Employee")
	}
	if err := DB.AutoMigrate(&dbmodels.Asset{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Asset")
	}
	if err := DB.AutoMigrate(&dbmodels.AssetAssignment{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AssetAssignment")
	}
	if err := DB.AutoMigrate(&dbmodels.Ticket{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Ticket")
	}
	if err := DB.AutoMigrate(&dbmodels.PurchaseOrder{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры PurchaseOrder")
	}
	if err := DB.AutoMigrate(&dbmodels.ApprovalRequest{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApprovalRequest")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Notification")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
