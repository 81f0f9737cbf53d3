package purchaseorderhandler

import (
	"gorm.io/gorm"

	"itsm-backend/db"
	purchaseorderstore "itsm-backend/lib/purchase-order/store"
	"itsm-backend/models"
	dbmodels "itsm-backend/models/db"
)

type Provider interface {
	GetByID(companyID, id string) (*dbmodels.PurchaseOrder, error)
	SetStatus(companyID, id string, status models.PurchaseOrderStatus) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: purchaseorderstore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store: purchaseorderstore.NewInstance(tx),
	}
}

type impl struct {
	store purchaseorderstore.Provider
}

func (i impl) GetByID(companyID, id string) (*dbmodels.PurchaseOrder, error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("заказ на закупку", id)
	}
	return rec, nil
}

func (i impl) SetStatus(companyID, id string, status models.PurchaseOrderStatus) error {
	rec, err := i.GetByID(companyID, id)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"status": status,
	}
	return i.store.Update(companyID, rec.ID, updMap)
}
