package dbmodels

import (
	"itsm-backend/models"
	"time"
)

// ApprovalRequest - запись аудита решения о согласовании.
// Записи никогда не удаляются, статус меняется ровно один раз.
type ApprovalRequest struct {
	BaseCompanyModel
	ReferenceType        models.ApprovalReferenceType `gorm:"type:varchar(50);index"`
	ReferenceID          string                       `gorm:"type:varchar(36);index"`
	Status               models.ApprovalStatus        `gorm:"type:varchar(20);index"`
	RequesterID          string                       `gorm:"type:varchar(36)"`
	Requester            *Employee                    `gorm:"foreignKey:RequesterID"`
	AssignedToEmployeeID *string                      `gorm:"type:varchar(36)"`
	AssignedToEmployee   *Employee                    `gorm:"foreignKey:AssignedToEmployeeID"`
	Description          string
	ActionByUserID       *string   `gorm:"type:varchar(36)"`
	ActionBy             *Employee `gorm:"foreignKey:ActionByUserID"`
	ActionAt             *time.Time
	Remarks              string
}
