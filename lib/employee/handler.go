package employeehandler

import (
	"gorm.io/gorm"

	"itsm-backend/db"
	employeestore "itsm-backend/lib/employee/store"
	"itsm-backend/models"
	dbmodels "itsm-backend/models/db"
)

type Provider interface {
	GetByID(companyID, id string) (*dbmodels.Employee, error)
	ResolveApprover(companyID, requesterID string, assignedToEmployeeID *string) (*ApproverInfo, error)
}

// ApproverInfo - согласующий руководитель, которому уходит уведомление.
type ApproverInfo struct {
	EmployeeID string
	Email      string
	Name       string
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: employeestore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store: employeestore.NewInstance(tx),
	}
}

type impl struct {
	store employeestore.Provider
}

func (i impl) GetByID(companyID, id string) (*dbmodels.Employee, error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("сотрудник", id)
	}
	return rec, nil
}

// ResolveApprover определяет единственного получателя уведомления о новом
// запросе: руководитель сотрудника-получателя, иначе руководитель инициатора.
// Цепочка только читает данные; любой разрыв (нет сотрудника, нет
// руководителя, у руководителя нет почты) даёт nil без ошибки -
// создание запроса не должно блокироваться отсутствием руководителя.
func (i impl) ResolveApprover(companyID, requesterID string, assignedToEmployeeID *string) (*ApproverInfo, error) {
	subjectID := requesterID
	if assignedToEmployeeID != nil && *assignedToEmployeeID != "" {
		subjectID = *assignedToEmployeeID
	}
	subject, err := i.store.GetByID(companyID, subjectID)
	if err != nil {
		return nil, err
	}
	if subject == nil || subject.ManagerID == nil || *subject.ManagerID == "" {
		return nil, nil
	}
	manager, err := i.store.GetByID(companyID, *subject.ManagerID)
	if err != nil {
		return nil, err
	}
	if manager == nil || manager.Email == "" {
		return nil, nil
	}
	return &ApproverInfo{
		EmployeeID: manager.ID,
		Email:      manager.Email,
		Name:       manager.GetFullName(),
	}, nil
}
