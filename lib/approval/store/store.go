package approvalstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"itsm-backend/db"
	"itsm-backend/models"
	dbmodels "itsm-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ApprovalRequest) (id string, err error)
	GetByID(companyID, id string) (rec *dbmodels.ApprovalRequest, err error)
	GetByIDForUpdate(companyID, id string) (rec *dbmodels.ApprovalRequest, err error)
	Update(companyID, id string, updMap map[string]interface{}) error
	List(companyID string, pending bool, refType models.ApprovalReferenceType, page, limit int) (list []dbmodels.ApprovalRequest, err error)
	ListCount(companyID string, pending bool, refType models.ApprovalReferenceType) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApprovalRequest) (id string, err error) {
	err = i.db.
		Omit("Requester").
		Omit("AssignedToEmployee").
		Omit("ActionBy").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(companyID, id string) (*dbmodels.ApprovalRequest, error) {
	rec := dbmodels.ApprovalRequest{}
	err := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Preload("Requester").
		Preload("AssignedToEmployee").
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

// GetByIDForUpdate читает запись под блокировкой.
// Без неё проверка "status = PENDING" перед переводом статуса -
// классическая гонка check-then-act при двух согласующих.
func (i impl) GetByIDForUpdate(companyID, id string) (*dbmodels.ApprovalRequest, error) {
	rec := dbmodels.ApprovalRequest{}
	err := db.ForUpdate(i.db).
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
		Model(&dbmodels.ApprovalRequest{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List(companyID string, pending bool, refType models.ApprovalReferenceType, page, limit int) (list []dbmodels.ApprovalRequest, err error) {
	list = []dbmodels.ApprovalRequest{}
	offset := (page - 1) * limit
	tx := i.listQuery(companyID, pending, refType).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Preload("Requester").
		Preload("AssignedToEmployee").
		Preload("ActionBy")
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(companyID string, pending bool, refType models.ApprovalReferenceType) (count int64, err error) {
	err = i.listQuery(companyID, pending, refType).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) listQuery(companyID string, pending bool, refType models.ApprovalReferenceType) *gorm.DB {
	tx := i.db.
		Model(&dbmodels.ApprovalRequest{}).
		Where("company_id = ?", companyID)
	if pending {
		tx = tx.Where("status = ?", models.ApprovalStatusPending)
	} else {
		tx = tx.Where("status <> ?", models.ApprovalStatusPending)
	}
	if refType != "" {
		tx = tx.Where("reference_type = ?", refType)
	}
	return tx
}
