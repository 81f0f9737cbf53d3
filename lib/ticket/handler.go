package tickethandler

import (
	"gorm.io/gorm"

	"itsm-backend/db"
	ticketstore "itsm-backend/lib/ticket/store"
	"itsm-backend/models"
	dbmodels "itsm-backend/models/db"
)

type Provider interface {
	GetByID(companyID, id string) (*dbmodels.Ticket, error)
	SetStatus(companyID, id string, status models.TicketStatus) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: ticketstore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store: ticketstore.NewInstance(tx),
	}
}

type impl struct {
	store ticketstore.Provider
}

func (i impl) GetByID(companyID, id string) (*dbmodels.Ticket, error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("заявка", id)
	}
	return rec, nil
}

func (i impl) SetStatus(companyID, id string, status models.TicketStatus) error {
	rec, err := i.GetByID(companyID, id)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"status": status,
	}
	return i.store.Update(companyID, rec.ID, updMap)
}
