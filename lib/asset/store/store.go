package assetstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"itsm-backend/db"
	dbmodels "itsm-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Asset) (id string, err error)
	GetByID(companyID, id string) (rec *dbmodels.Asset, err error)
	GetByIDForUpdate(companyID, id string) (rec *dbmodels.Asset, err error)
	Update(companyID, id string, updMap map[string]interface{}) error
	List(companyID string) (list []dbmodels.Asset, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Asset) (id string, err error) {
	err = i.db.
		Omit("AssignedToEmployee").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(companyID, id string) (*dbmodels.Asset, error) {
	return i.getByID(i.db, companyID, id)
}

// GetByIDForUpdate читает запись с row-level блокировкой.
// Используется перед изменением статуса, чтобы конкурирующие назначения
// на одно оборудование сериализовались на уровне БД.
func (i impl) GetByIDForUpdate(companyID, id string) (*dbmodels.Asset, error) {
	return i.getByID(db.ForUpdate(i.db), companyID, id)
}

func (i impl) getByID(tx *gorm.DB, companyID, id string) (*dbmodels.Asset, error) {
	rec := dbmodels.Asset{}
	err := tx.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(companyID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.Asset{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List(companyID string) (list []dbmodels.Asset, err error) {
	list = []dbmodels.Asset{}
	err = i.db.
		Where("company_id = ?", companyID).
		Order("created_at ASC").
		Preload("AssignedToEmployee").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
