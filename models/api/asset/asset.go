package assetapimodels

import (
	"time"

	"github.com/pkg/errors"

	dbmodels "itsm-backend/models/db"
)

type AssetAssignData struct {
	EmployeeID string `json:"employee_id"`
	Remarks    string `json:"remarks,omitempty"`
}

func (r AssetAssignData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	return nil
}

type AssetReleaseData struct {
	Remarks string `json:"remarks,omitempty"`
}

type AssetView struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	InventoryNumber  string     `json:"inventory_number"`
	Status           string     `json:"status"`
	StatusName       string     `json:"status_name"`
	AssignedToID     string     `json:"assigned_to_id,omitempty"`
	AssignedToName   string     `json:"assigned_to_name,omitempty"`
	UserAssignedDate *time.Time `json:"user_assigned_date,omitempty"`
	LastReturnDate   *time.Time `json:"last_return_date,omitempty"`
}

func AssetConvert(rec dbmodels.Asset) AssetView {
	view := AssetView{
		ID:               rec.ID,
		Name:             rec.Name,
		InventoryNumber:  rec.InventoryNumber,
		Status:           string(rec.Status),
		StatusName:       rec.Status.ToHuman(),
		UserAssignedDate: rec.UserAssignedDate,
		LastReturnDate:   rec.LastReturnDate,
	}
	if rec.AssignedToEmployeeID != nil {
		view.AssignedToID = *rec.AssignedToEmployeeID
	}
	if rec.AssignedToEmployee != nil {
		view.AssignedToName = rec.AssignedToEmployee.GetFullName()
	}
	return view
}
