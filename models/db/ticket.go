package dbmodels

import "itsm-backend/models"

type Ticket struct {
	BaseCompanyModel
	Subject     string `gorm:"type:varchar(255)"`
	Description string
	Status      models.TicketStatus   `gorm:"type:varchar(20);index"`
	Priority    models.TicketPriority `gorm:"type:varchar(20)"`
	ReporterID  string                `gorm:"type:varchar(36)"`
	Reporter    *Employee             `gorm:"foreignKey:ReporterID"`
	AssigneeID  *string               `gorm:"type:varchar(36)"`
}
