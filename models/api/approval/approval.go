package approvalapimodels

import (
	"time"

	"github.com/pkg/errors"

	"itsm-backend/models"
	dbmodels "itsm-backend/models/db"
)

type ApprovalCreateData struct {
	ReferenceType        models.ApprovalReferenceType `json:"reference_type"`
	ReferenceID          string                       `json:"reference_id"`
	Description          string                       `json:"description"`
	AssignedToEmployeeID string                       `json:"assigned_to_employee_id,omitempty"`
	ManagerEmail         string                       `json:"manager_email,omitempty"`
}

func (r ApprovalCreateData) Validate() error {
	if !r.ReferenceType.IsValid() {
		return errors.Errorf("неизвестный тип запроса: %v", r.ReferenceType)
	}
	if r.ReferenceID == "" {
		return errors.New("не указан идентификатор объекта согласования")
	}
	if r.Description == "" {
		return errors.New("не указано описание запроса")
	}
	return nil
}

type ApprovalDecisionData struct {
	Remarks string `json:"remarks,omitempty"`
}

type MarkReadData struct {
	IDs []string `json:"ids"`
}

type ApprovalFilter struct {
	Pagination struct {
		Limit int `json:"limit"`
		Page  int `json:"page"`
	} `json:"pagination"`
	ReferenceType models.ApprovalReferenceType `json:"reference_type,omitempty"`
}

func (r ApprovalFilter) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Pagination.Page > 0 {
		page = r.Pagination.Page
	}
	if r.Pagination.Limit > 0 {
		limit = r.Pagination.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// ApprovalView - денормализованное представление запроса для списков:
// поля записи плюс отображаемые имена сотрудников.
type ApprovalView struct {
	ID                 string     `json:"id"`
	ReferenceType      string     `json:"reference_type"`
	ReferenceTypeName  string     `json:"reference_type_name"`
	ReferenceID        string     `json:"reference_id"`
	Status             string     `json:"status"`
	StatusName         string     `json:"status_name"`
	Description        string     `json:"description"`
	RequesterID        string     `json:"requester_id"`
	RequesterName      string     `json:"requester_name,omitempty"`
	AssignedToID       string     `json:"assigned_to_id,omitempty"`
	AssignedToName     string     `json:"assigned_to_name,omitempty"`
	ActionByName       string     `json:"action_by_name,omitempty"`
	ActionAt           *time.Time `json:"action_at,omitempty"`
	Remarks            string     `json:"remarks,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func ApprovalConvert(rec dbmodels.ApprovalRequest) ApprovalView {
	view := ApprovalView{
		ID:                rec.ID,
		ReferenceType:     string(rec.ReferenceType),
		ReferenceTypeName: rec.ReferenceType.ToHuman(),
		ReferenceID:       rec.ReferenceID,
		Status:            string(rec.Status),
		StatusName:        rec.Status.ToHuman(),
		Description:       rec.Description,
		RequesterID:       rec.RequesterID,
		ActionAt:          rec.ActionAt,
		Remarks:           rec.Remarks,
		CreatedAt:         rec.CreatedAt,
	}
	if rec.Requester != nil {
		view.RequesterName = rec.Requester.GetFullName()
	}
	if rec.AssignedToEmployeeID != nil {
		view.AssignedToID = *rec.AssignedToEmployeeID
	}
	if rec.AssignedToEmployee != nil {
		view.AssignedToName = rec.AssignedToEmployee.GetFullName()
	}
	if rec.ActionBy != nil {
		view.ActionByName = rec.ActionBy.GetFullName()
	}
	return view
}
