package assignmentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"itsm-backend/db"
	dbmodels "itsm-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AssetAssignment) (id string, err error)
	GetCurrent(companyID, assetID string) (rec *dbmodels.AssetAssignment, err error)
	GetCurrentForUpdate(companyID, assetID string) (rec *dbmodels.AssetAssignment, err error)
	Update(companyID, id string, updMap map[string]interface{}) error
	ListByAsset(companyID, assetID string) (list []dbmodels.AssetAssignment, err error)
	CountCurrent(companyID, assetID string) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AssetAssignment) (id string, err error) {
	err = i.db.
		Omit("Asset").
		Omit("Employee").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetCurrent(companyID, assetID string) (*dbmodels.AssetAssignment, error) {
	return i.getCurrent(i.db, companyID, assetID)
}

func (i impl) GetCurrentForUpdate(companyID, assetID string) (*dbmodels.AssetAssignment, error) {
	return i.getCurrent(db.ForUpdate(i.db), companyID, assetID)
}

func (i impl) getCurrent(tx *gorm.DB, companyID, assetID string) (*dbmodels.AssetAssignment, error) {
	rec := dbmodels.AssetAssignment{}
	err := tx.
		Where("company_id = ?", companyID).
		Where("asset_id = ?", assetID).
		Where("is_current = ?", true).
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
		Model(&dbmodels.AssetAssignment{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListByAsset(companyID, assetID string) (list []dbmodels.AssetAssignment, err error) {
	list = []dbmodels.AssetAssignment{}
	err = i.db.
		Where("company_id = ?", companyID).
		Where("asset_id = ?", assetID).
		Order("created_at ASC").
		Preload("Employee").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountCurrent(companyID, assetID string) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.AssetAssignment{}).
		Where("company_id = ?", companyID).
		Where("asset_id = ?", assetID).
		Where("is_current = ?", true).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
