package dbmodels

import "fmt"

type Employee struct {
	BaseCompanyModel
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	Email       string `gorm:"type:varchar(255)"`
	PhoneNumber string `gorm:"type:varchar(15)"`
	JobTitle    string `gorm:"type:varchar(255)"`
	IsActive    bool
	ManagerID   *string `gorm:"type:varchar(36)"`
	Manager     *Employee
}

func (r Employee) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
