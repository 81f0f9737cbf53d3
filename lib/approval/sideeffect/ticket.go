package sideeffect

import (
	"gorm.io/gorm"

	tickethandler "itsm-backend/lib/ticket"
	"itsm-backend/models"
	dbmodels "itsm-backend/models/db"
)

type ticketHandler struct{}

func (h ticketHandler) Apply(tx *gorm.DB, rec dbmodels.ApprovalRequest, actionByUserID string) error {
	return tickethandler.NewHandlerWithTx(tx).SetStatus(rec.CompanyID, rec.ReferenceID, models.TicketStatusInProgress)
}

// Compensate: заявка при отклонении не получала ресурсов, компенсация не нужна.
func (h ticketHandler) Compensate(tx *gorm.DB, rec dbmodels.ApprovalRequest) error {
	return nil
}
