package sideeffect

import (
	"gorm.io/gorm"

	purchaseorderhandler "itsm-backend/lib/purchase-order"
	"itsm-backend/models"
	dbmodels "itsm-backend/models/db"
)

type purchaseOrderHandler struct{}

func (h purchaseOrderHandler) Apply(tx *gorm.DB, rec dbmodels.ApprovalRequest, actionByUserID string) error {
	return purchaseorderhandler.NewHandlerWithTx(tx).SetStatus(rec.CompanyID, rec.ReferenceID, models.POStatusApproved)
}

func (h purchaseOrderHandler) Compensate(tx *gorm.DB, rec dbmodels.ApprovalRequest) error {
	return purchaseorderhandler.NewHandlerWithTx(tx).SetStatus(rec.CompanyID, rec.ReferenceID, models.POStatusRejected)
}
