package dbmodels

import "time"

// AssetAssignment - журнал выдачи оборудования.
// Инвариант: на одно оборудование не больше одной записи с is_current=true.
// Записи закрываются (is_current=false, return_date), но не удаляются.
type AssetAssignment struct {
	BaseCompanyModel
	AssetID      string    `gorm:"type:varchar(36);index:idx_asset_current"`
	Asset        *Asset    `gorm:"foreignKey:AssetID"`
	EmployeeID   string    `gorm:"type:varchar(36);index"`
	Employee     *Employee `gorm:"foreignKey:EmployeeID"`
	AssignedByID string    `gorm:"type:varchar(36)"`
	AssignedDate time.Time
	ReturnDate   *time.Time
	IsCurrent    bool `gorm:"index:idx_asset_current"`
	Remarks      string
}
