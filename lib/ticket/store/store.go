package ticketstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "itsm-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Ticket) (id string, err error)
	GetByID(companyID, id string) (rec *dbmodels.Ticket, err error)
	Update(companyID, id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Ticket) (id string, err error) {
	err = i.db.
		Omit("Reporter").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(companyID, id string) (*dbmodels.Ticket, error) {
	rec := dbmodels.Ticket{}
	err := i.db.
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
		Model(&dbmodels.Ticket{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}
