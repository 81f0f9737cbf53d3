package assethandler

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"itsm-backend/db"
	assignmentstore "itsm-backend/lib/asset/assignment-store"
	assetstore "itsm-backend/lib/asset/store"
	"itsm-backend/models"
	assetapimodels "itsm-backend/models/api/asset"
	dbmodels "itsm-backend/models/db"
)

type Provider interface {
	GetByID(companyID, id string) (assetapimodels.AssetView, error)
	List(companyID string) ([]assetapimodels.AssetView, error)
	Assign(companyID, assetID, employeeID, actingUserID, remarks string) error
	Release(companyID, assetID, remarks string) error
	AssignmentHistory(companyID, assetID string) ([]dbmodels.AssetAssignment, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:           assetstore.NewInstance(db.DB),
		assignmentStore: assignmentstore.NewInstance(db.DB),
		inTx:            db.InTx,
	}
}

// NewHandlerWithTx возвращает обработчик, выполняющий записи в уже
// открытой транзакции вызывающего (side-effect путь оркестратора).
func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store:           assetstore.NewInstance(tx),
		assignmentStore: assignmentstore.NewInstance(tx),
		inTx: func(fn func(tx *gorm.DB) error) error {
			return fn(tx)
		},
	}
}

type impl struct {
	store           assetstore.Provider
	assignmentStore assignmentstore.Provider
	inTx            func(fn func(tx *gorm.DB) error) error
}

func (i impl) getLogger(companyID, assetID string) *log.Entry {
	logger := log.
		WithField("company_id", companyID).
		WithField("asset_id", assetID)
	return logger
}

func (i impl) GetByID(companyID, id string) (assetapimodels.AssetView, error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return assetapimodels.AssetView{}, err
	}
	if rec == nil {
		return assetapimodels.AssetView{}, models.NewNotFoundError("оборудование", id)
	}
	return assetapimodels.AssetConvert(*rec), nil
}

func (i impl) List(companyID string) ([]assetapimodels.AssetView, error) {
	recList, err := i.store.List(companyID)
	if err != nil {
		return nil, err
	}
	result := make([]assetapimodels.AssetView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, assetapimodels.AssetConvert(rec))
	}
	return result, nil
}

// Assign выдаёт оборудование сотруднику.
// Все шаги идут в одной транзакции: закрытие текущей записи журнала при
// перевыдаче, смена статуса оборудования и открытие новой записи.
// Инвариант: на одно оборудование не больше одной текущей записи журнала.
func (i impl) Assign(companyID, assetID, employeeID, actingUserID, remarks string) error {
	logger := i.getLogger(companyID, assetID).
		WithField("employee_id", employeeID)
	err := i.inTx(func(tx *gorm.DB) error {
		store := assetstore.NewInstance(tx)
		assignments := assignmentstore.NewInstance(tx)

		rec, err := store.GetByIDForUpdate(companyID, assetID)
		if err != nil {
			return err
		}
		if rec == nil {
			return models.NewNotFoundError("оборудование", assetID)
		}

		isReassignment := rec.Status == models.AssetStatusInUse && rec.AssignedToEmployeeID != nil
		if !isReassignment && rec.Status != models.AssetStatusAvailable {
			return models.NewInvalidStateError("оборудование недоступно для выдачи, статус: %v", rec.Status.ToHuman())
		}

		now := time.Now()
		if isReassignment {
			current, err := assignments.GetCurrentForUpdate(companyID, assetID)
			if err != nil {
				return err
			}
			if current != nil {
				updMap := map[string]interface{}{
					"is_current":  false,
					"return_date": &now,
					"remarks":     fmt.Sprintf("%v; перевыдано сотруднику %v", current.Remarks, employeeID),
				}
				if err = assignments.Update(companyID, current.ID, updMap); err != nil {
					return err
				}
			}
		}

		updMap := map[string]interface{}{
			"status":                  models.AssetStatusInUse,
			"assigned_to_employee_id": employeeID,
			"user_assigned_date":      &now,
		}
		if err = store.Update(companyID, assetID, updMap); err != nil {
			return err
		}

		assignment := dbmodels.AssetAssignment{
			BaseCompanyModel: dbmodels.BaseCompanyModel{
				CompanyID: companyID,
			},
			AssetID:      assetID,
			EmployeeID:   employeeID,
			AssignedByID: actingUserID,
			AssignedDate: now,
			IsCurrent:    true,
			Remarks:      remarks,
		}
		_, err = assignments.Create(assignment)
		return err
	})
	if err != nil {
		return err
	}
	logger.Info("оборудование выдано сотруднику")
	return nil
}

// Release - компенсирующее действие: возврат оборудования в статус
// "Свободно" и закрытие текущей записи журнала, если она есть.
func (i impl) Release(companyID, assetID, remarks string) error {
	logger := i.getLogger(companyID, assetID)
	err := i.inTx(func(tx *gorm.DB) error {
		store := assetstore.NewInstance(tx)
		assignments := assignmentstore.NewInstance(tx)

		rec, err := store.GetByIDForUpdate(companyID, assetID)
		if err != nil {
			return err
		}
		if rec == nil {
			return models.NewNotFoundError("оборудование", assetID)
		}

		now := time.Now()
		current, err := assignments.GetCurrentForUpdate(companyID, assetID)
		if err != nil {
			return err
		}
		if current != nil {
			updMap := map[string]interface{}{
				"is_current":  false,
				"return_date": &now,
			}
			if remarks != "" {
				updMap["remarks"] = fmt.Sprintf("%v; %v", current.Remarks, remarks)
			}
			if err = assignments.Update(companyID, current.ID, updMap); err != nil {
				return err
			}
		}

		updMap := map[string]interface{}{
			"status":                  models.AssetStatusAvailable,
			"assigned_to_employee_id": nil,
			"last_return_date":        &now,
		}
		return store.Update(companyID, assetID, updMap)
	})
	if err != nil {
		return err
	}
	logger.Info("оборудование возвращено")
	return nil
}

func (i impl) AssignmentHistory(companyID, assetID string) ([]dbmodels.AssetAssignment, error) {
	return i.assignmentStore.ListByAsset(companyID, assetID)
}
