package dbmodels

import (
	"itsm-backend/models"
	"time"
)

type Asset struct {
	BaseCompanyModel
	Name                 string             `gorm:"type:varchar(255)"`
	InventoryNumber      string             `gorm:"type:varchar(100);index"`
	Category             string             `gorm:"type:varchar(100)"`
	Status               models.AssetStatus `gorm:"type:varchar(20);index"`
	AssignedToEmployeeID *string            `gorm:"type:varchar(36)"`
	AssignedToEmployee   *Employee          `gorm:"foreignKey:AssignedToEmployeeID"`
	UserAssignedDate     *time.Time
	LastReturnDate       *time.Time
}
