package sideeffect

import (
	"gorm.io/gorm"

	assethandler "itsm-backend/lib/asset"
	dbmodels "itsm-backend/models/db"
)

type assetAllocationHandler struct{}

func (h assetAllocationHandler) Apply(tx *gorm.DB, rec dbmodels.ApprovalRequest, actionByUserID string) error {
	employeeID := rec.RequesterID
	if rec.AssignedToEmployeeID != nil && *rec.AssignedToEmployeeID != "" {
		employeeID = *rec.AssignedToEmployeeID
	}
	return assethandler.NewHandlerWithTx(tx).Assign(rec.CompanyID, rec.ReferenceID, employeeID, actionByUserID, rec.Description)
}

// Compensate возвращает оборудование в "Свободно", если инициирующий поток
// успел пометить его как выданное.
func (h assetAllocationHandler) Compensate(tx *gorm.DB, rec dbmodels.ApprovalRequest) error {
	return assethandler.NewHandlerWithTx(tx).Release(rec.CompanyID, rec.ReferenceID, rec.Remarks)
}
