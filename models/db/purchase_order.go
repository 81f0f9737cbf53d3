package dbmodels

import "itsm-backend/models"

type PurchaseOrder struct {
	BaseCompanyModel
	OrderNumber string `gorm:"type:varchar(100);index"`
	Vendor      string `gorm:"type:varchar(255)"`
	Description string
	Amount      float64
	Currency    string                     `gorm:"type:varchar(3)"`
	Status      models.PurchaseOrderStatus `gorm:"type:varchar(20);index"`
	RequesterID string                     `gorm:"type:varchar(36)"`
}
