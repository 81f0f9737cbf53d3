package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"itsm-backend/models"
)

type Notification struct {
	BaseCompanyModel
	EmployeeID string                  `gorm:"type:varchar(36);index:idx_notify_employee"`
	Code       models.NotificationCode `gorm:"type:varchar(255);index:idx_notify_code"`
	Title      string
	Msg        string
	Metadata   NotificationMetadata `gorm:"type:jsonb"`
	IsRead     bool
}

type NotificationMetadata struct {
	ReferenceType string `json:"reference_type,omitempty"`
	ReferenceID   string `json:"reference_id,omitempty"`
	RequestID     string `json:"request_id,omitempty"`
}

func (j NotificationMetadata) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *NotificationMetadata) Scan(value any) error {
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return nil
	}
	return json.Unmarshal(raw, &j)
}
