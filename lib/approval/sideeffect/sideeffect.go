package sideeffect

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"itsm-backend/models"
	dbmodels "itsm-backend/models/db"
)

// Handler - типовой побочный эффект решения по запросу.
// Apply выполняется при согласовании, Compensate - при отклонении.
// Обе операции пишут в транзакцию оркестратора: статус запроса и эффект
// фиксируются или откатываются вместе.
type Handler interface {
	Apply(tx *gorm.DB, rec dbmodels.ApprovalRequest, actionByUserID string) error
	Compensate(tx *gorm.DB, rec dbmodels.ApprovalRequest) error
}

type Registry map[models.ApprovalReferenceType]Handler

func NewRegistry() Registry {
	return Registry{
		models.ApprovalRefTicket:            ticketHandler{},
		models.ApprovalRefAssetAllocation:   assetAllocationHandler{},
		models.ApprovalRefPurchaseOrder:     purchaseOrderHandler{},
		models.ApprovalRefLicenseAllocation: licenseAllocationHandler{},
	}
}

// Get возвращает обработчик по типу запроса.
// Отсутствие обработчика - ошибка конфигурации, а не пользовательская:
// молча пропустить побочный эффект нельзя.
func (r Registry) Get(refType models.ApprovalReferenceType) (Handler, error) {
	handler, ok := r[refType]
	if !ok {
		return nil, errors.Errorf("не зарегистрирован обработчик для типа запроса %v", refType)
	}
	return handler, nil
}
