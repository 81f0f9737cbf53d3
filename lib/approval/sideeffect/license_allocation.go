package sideeffect

import (
	"gorm.io/gorm"

	dbmodels "itsm-backend/models/db"
)

// Выдача лицензии пока не меняет состояния других сущностей: решение
// фиксируется только в самой записи запроса. Обработчик зарегистрирован
// явно, чтобы тип не попадал под ошибку "нет обработчика".
type licenseAllocationHandler struct{}

func (h licenseAllocationHandler) Apply(tx *gorm.DB, rec dbmodels.ApprovalRequest, actionByUserID string) error {
	return nil
}

func (h licenseAllocationHandler) Compensate(tx *gorm.DB, rec dbmodels.ApprovalRequest) error {
	return nil
}
