package notificationhandler

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"itsm-backend/db"
	notificationstore "itsm-backend/lib/notification/store"
	"itsm-backend/lib/smtp"
	"itsm-backend/models"
	dbmodels "itsm-backend/models/db"
)

// Боковой канал уведомлений. Все методы best-effort: ошибки пишутся в лог
// и не возвращаются, чтобы сбой канала не трогал основную транзакцию.
type Provider interface {
	Notify(companyID, employeeID string, data models.NotificationData, meta dbmodels.NotificationMetadata)
	SendApprovalEmail(toEmail, companyID, requesterName, description string)
	List(companyID, employeeID string) ([]dbmodels.Notification, error)
	MarkRead(companyID string, ids []string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         notificationstore.NewInstance(db.DB),
		emailProvider: smtp.Instance,
	}
}

// NewHandlerWithEmail используется в тестах для подмены почтового клиента.
func NewHandlerWithEmail(emailProvider smtp.Provider) Provider {
	return impl{
		store:         notificationstore.NewInstance(db.DB),
		emailProvider: emailProvider,
	}
}

type impl struct {
	store         notificationstore.Provider
	emailProvider smtp.Provider
}

func (i impl) getLogger(employeeID, code string) *log.Entry {
	logger := log.
		WithField("employee_id", employeeID).
		WithField("event_code", code)
	return logger
}

func (i impl) Notify(companyID, employeeID string, data models.NotificationData, meta dbmodels.NotificationMetadata) {
	logger := i.getLogger(employeeID, string(data.Code))
	if employeeID == "" {
		return
	}
	rec := dbmodels.Notification{
		BaseCompanyModel: dbmodels.BaseCompanyModel{
			CompanyID: companyID,
		},
		EmployeeID: employeeID,
		Code:       data.Code,
		Title:      data.Title,
		Msg:        data.Msg,
		Metadata:   meta,
	}
	err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения уведомления")
		return
	}
	logger.Info("уведомление отправлено")
}

func (i impl) SendApprovalEmail(toEmail, companyID, requesterName, description string) {
	logger := log.
		WithField("company_id", companyID).
		WithField("recipient", toEmail)
	if toEmail == "" || i.emailProvider == nil {
		return
	}
	message := fmt.Sprintf("Поступил запрос на согласование: «%v».\r\nИнициатор: %v.", description, requesterName)
	err := i.emailProvider.SendEMail(toEmail, message, "Требуется согласование")
	if err != nil {
		logger.WithError(err).Error("ошибка отправки письма о согласовании")
	}
}

func (i impl) List(companyID, employeeID string) ([]dbmodels.Notification, error) {
	return i.store.List(companyID, employeeID)
}

func (i impl) MarkRead(companyID string, ids []string) error {
	return i.store.MarkRead(companyID, ids)
}
