package notificationstore

import (
	"gorm.io/gorm"

	dbmodels "itsm-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notification) error
	List(companyID, employeeID string) ([]dbmodels.Notification, error)
	MarkRead(companyID string, ids []string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) error {
	return i.db.
		Save(&rec).
		Error
}

func (i impl) List(companyID, employeeID string) (list []dbmodels.Notification, err error) {
	err = i.db.
		Model(dbmodels.Notification{}).
		Where("company_id = ?", companyID).
		Where("employee_id = ?", employeeID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkRead(companyID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("company_id = ?", companyID).
		Where("id IN ?", ids).
		Update("is_read", true).
		Error
}
