package approvalhandler

import (
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"itsm-backend/db"
	"itsm-backend/lib/approval/sideeffect"
	approvalstore "itsm-backend/lib/approval/store"
	employeehandler "itsm-backend/lib/employee"
	notificationhandler "itsm-backend/lib/notification"
	"itsm-backend/models"
	approvalapimodels "itsm-backend/models/api/approval"
	dbmodels "itsm-backend/models/db"
)

type Provider interface {
	Initiate(companyID, userID string, data approvalapimodels.ApprovalCreateData) (id string, err error)
	Approve(companyID, id, userID string, data approvalapimodels.ApprovalDecisionData) error
	Reject(companyID, id, userID string, data approvalapimodels.ApprovalDecisionData) error
	GetByID(companyID, id string) (approvalapimodels.ApprovalView, error)
	ListPending(companyID string, filter approvalapimodels.ApprovalFilter) (list []approvalapimodels.ApprovalView, rowCount int64, err error)
	History(companyID string, filter approvalapimodels.ApprovalFilter) (list []approvalapimodels.ApprovalView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:                approvalstore.NewInstance(db.DB),
		employeeProvider:     employeehandler.Instance,
		notificationProvider: notificationhandler.Instance,
		registry:             sideeffect.NewRegistry(),
	}
}

type impl struct {
	store                approvalstore.Provider
	employeeProvider     employeehandler.Provider
	notificationProvider notificationhandler.Provider
	registry             sideeffect.Registry
}

func (i impl) getLogger(companyID, recID string) *log.Entry {
	logger := log.
		WithField("company_id", companyID).
		WithField("approval_request_id", recID)
	return logger
}

// Initiate создаёт запрос в статусе PENDING.
// Бизнес-правила конкретного типа здесь не проверяются - за них отвечает
// вызывающий поток. Уведомление руководителю уходит только после фиксации
// записи; его сбой или отсутствие руководителя запись не блокируют.
func (i impl) Initiate(companyID, userID string, data approvalapimodels.ApprovalCreateData) (id string, err error) {
	logger := i.getLogger(companyID, "").
		WithField("reference_type", data.ReferenceType).
		WithField("reference_id", data.ReferenceID)
	rec := dbmodels.ApprovalRequest{
		BaseCompanyModel: dbmodels.BaseCompanyModel{
			CompanyID: companyID,
		},
		ReferenceType: data.ReferenceType,
		ReferenceID:   data.ReferenceID,
		Status:        models.ApprovalStatusPending,
		RequesterID:   userID,
		Description:   data.Description,
	}
	if data.AssignedToEmployeeID != "" {
		rec.AssignedToEmployeeID = &data.AssignedToEmployeeID
	}

	err = db.InTx(func(tx *gorm.DB) error {
		store := approvalstore.NewInstance(tx)
		id, err = store.Create(rec)
		return err
	})
	if err != nil {
		logger.WithError(err).Error("ошибка создания запроса на согласование")
		return "", err
	}
	logger.WithField("rec_id", id).Info("создан запрос на согласование")

	i.notifyApprover(companyID, id, userID, rec, data.ManagerEmail)
	return id, nil
}

// notifyApprover - best-effort канал: любая ошибка логируется и гасится.
func (i impl) notifyApprover(companyID, recID, userID string, rec dbmodels.ApprovalRequest, managerEmail string) {
	logger := i.getLogger(companyID, recID)

	requesterName := userID
	requester, err := i.employeeProvider.GetByID(companyID, userID)
	if err == nil && requester != nil {
		requesterName = requester.GetFullName()
	}

	meta := dbmodels.NotificationMetadata{
		ReferenceType: string(rec.ReferenceType),
		ReferenceID:   rec.ReferenceID,
		RequestID:     recID,
	}
	if managerEmail != "" {
		i.notificationProvider.SendApprovalEmail(managerEmail, companyID, requesterName, rec.Description)
		return
	}
	approver, err := i.employeeProvider.ResolveApprover(companyID, userID, rec.AssignedToEmployeeID)
	if err != nil {
		logger.WithError(err).Error("ошибка определения согласующего")
		return
	}
	if approver == nil {
		logger.Info("согласующий не определён, уведомление не отправлено")
		return
	}
	i.notificationProvider.Notify(companyID, approver.EmployeeID, models.GetNotifyApprovalRequested(rec.Description, requesterName), meta)
	i.notificationProvider.SendApprovalEmail(approver.Email, companyID, requesterName, rec.Description)
}

// Approve переводит запрос PENDING -> APPROVED и применяет побочный эффект
// по типу запроса. Смена статуса и эффект идут в одной транзакции: если
// обработчик вернул ошибку, запрос остаётся PENDING.
func (i impl) Approve(companyID, id, userID string, data approvalapimodels.ApprovalDecisionData) error {
	logger := i.getLogger(companyID, id).
		WithField("user_id", userID)
	var rec dbmodels.ApprovalRequest
	err := db.InTx(func(tx *gorm.DB) error {
		store := approvalstore.NewInstance(tx)
		found, err := store.GetByIDForUpdate(companyID, id)
		if err != nil {
			return err
		}
		if found == nil {
			return models.NewNotFoundError("запрос на согласование", id)
		}
		rec = *found
		if rec.Status != models.ApprovalStatusPending {
			return models.NewInvalidStateError("запрос уже обработан, статус: %v", rec.Status.ToHuman())
		}

		handler, err := i.registry.Get(rec.ReferenceType)
		if err != nil {
			return err
		}
		if err = handler.Apply(tx, rec, userID); err != nil {
			return err
		}

		now := time.Now()
		updMap := map[string]interface{}{
			"status":            models.ApprovalStatusApproved,
			"action_by_user_id": userID,
			"action_at":         &now,
			"remarks":           data.Remarks,
		}
		return store.Update(companyID, id, updMap)
	})
	if err != nil {
		logger.WithError(err).Error("ошибка согласования запроса")
		return err
	}
	logger.Info("запрос согласован")

	meta := dbmodels.NotificationMetadata{
		ReferenceType: string(rec.ReferenceType),
		ReferenceID:   rec.ReferenceID,
		RequestID:     rec.ID,
	}
	i.notificationProvider.Notify(companyID, rec.RequesterID, models.GetNotifyApprovalApproved(rec.Description), meta)
	return nil
}

// Reject переводит запрос PENDING -> REJECTED и выполняет компенсирующее
// действие для типов, захвативших ресурс при инициации.
func (i impl) Reject(companyID, id, userID string, data approvalapimodels.ApprovalDecisionData) error {
	logger := i.getLogger(companyID, id).
		WithField("user_id", userID)
	var rec dbmodels.ApprovalRequest
	err := db.InTx(func(tx *gorm.DB) error {
		store := approvalstore.NewInstance(tx)
		found, err := store.GetByIDForUpdate(companyID, id)
		if err != nil {
			return err
		}
		if found == nil {
			return models.NewNotFoundError("запрос на согласование", id)
		}
		rec = *found
		if rec.Status != models.ApprovalStatusPending {
			return models.NewInvalidStateError("запрос уже обработан, статус: %v", rec.Status.ToHuman())
		}

		handler, err := i.registry.Get(rec.ReferenceType)
		if err != nil {
			return err
		}
		rec.Remarks = data.Remarks
		if err = handler.Compensate(tx, rec); err != nil {
			return err
		}

		now := time.Now()
		updMap := map[string]interface{}{
			"status":            models.ApprovalStatusRejected,
			"action_by_user_id": userID,
			"action_at":         &now,
			"remarks":           data.Remarks,
		}
		return store.Update(companyID, id, updMap)
	})
	if err != nil {
		logger.WithError(err).Error("ошибка отклонения запроса")
		return err
	}
	logger.Info("запрос отклонён")

	meta := dbmodels.NotificationMetadata{
		ReferenceType: string(rec.ReferenceType),
		ReferenceID:   rec.ReferenceID,
		RequestID:     rec.ID,
	}
	i.notificationProvider.Notify(companyID, rec.RequesterID, models.GetNotifyApprovalRejected(rec.Description, data.Remarks), meta)
	return nil
}

func (i impl) GetByID(companyID, id string) (approvalapimodels.ApprovalView, error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return approvalapimodels.ApprovalView{}, err
	}
	if rec == nil {
		return approvalapimodels.ApprovalView{}, models.NewNotFoundError("запрос на согласование", id)
	}
	return approvalapimodels.ApprovalConvert(*rec), nil
}

func (i impl) ListPending(companyID string, filter approvalapimodels.ApprovalFilter) ([]approvalapimodels.ApprovalView, int64, error) {
	return i.list(companyID, true, filter)
}

func (i impl) History(companyID string, filter approvalapimodels.ApprovalFilter) ([]approvalapimodels.ApprovalView, int64, error) {
	return i.list(companyID, false, filter)
}

func (i impl) list(companyID string, pending bool, filter approvalapimodels.ApprovalFilter) ([]approvalapimodels.ApprovalView, int64, error) {
	logger := i.getLogger(companyID, "")
	rowCount, err := i.store.ListCount(companyID, pending, filter.ReferenceType)
	if err != nil {
		return nil, 0, err
	}

	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []approvalapimodels.ApprovalView{}, rowCount, nil
	}

	recList, err := i.store.List(companyID, pending, filter.ReferenceType, page, limit)
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка запросов на согласование")
		return nil, 0, err
	}
	result := make([]approvalapimodels.ApprovalView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, approvalapimodels.ApprovalConvert(rec))
	}
	return result, rowCount, nil
}
