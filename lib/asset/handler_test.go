package assethandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	assignmentstore "itsm-backend/lib/asset/assignment-store"
	assetstore "itsm-backend/lib/asset/store"
	"itsm-backend/models"
	dbmodels "itsm-backend/models/db"
)

const testCompanyID = "company-1"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%v?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.Nil(t, err)
	require.Nil(t, conn.AutoMigrate(&dbmodels.Employee{}, &dbmodels.Asset{}, &dbmodels.AssetAssignment{}))
	return conn
}

func createAsset(t *testing.T, conn *gorm.DB, status models.AssetStatus) string {
	t.Helper()
	store := assetstore.NewInstance(conn)
	id, err := store.Create(dbmodels.Asset{
		BaseCompanyModel: dbmodels.BaseCompanyModel{
			CompanyID: testCompanyID,
		},
		Name:            "Ноутбук ThinkPad T14",
		InventoryNumber: "INV-001",
		Category:        "Ноутбуки",
		Status:          status,
	})
	require.Nil(t, err)
	return id
}

func createEmployee(t *testing.T, conn *gorm.DB, firstName, lastName string) string {
	t.Helper()
	rec := dbmodels.Employee{
		BaseCompanyModel: dbmodels.BaseCompanyModel{
			CompanyID: testCompanyID,
		},
		FirstName: firstName,
		LastName:  lastName,
		IsActive:  true,
	}
	require.Nil(t, conn.Save(&rec).Error)
	return rec.ID
}

func TestAssign(t *testing.T) {
	t.Run(`выдача свободного оборудования`, func(t *testing.T) {
		conn := newTestDB(t)
		assetID := createAsset(t, conn, models.AssetStatusAvailable)
		employeeID := createEmployee(t, conn, "Иван", "Петров")

		handler := NewHandlerWithTx(conn)
		require.Nil(t, handler.Assign(testCompanyID, assetID, employeeID, "admin-1", "выдано по заявке"))

		rec, err := assetstore.NewInstance(conn).GetByID(testCompanyID, assetID)
		require.Nil(t, err)
		require.Equal(t, models.AssetStatusInUse, rec.Status)
		require.NotNil(t, rec.AssignedToEmployeeID)
		require.Equal(t, employeeID, *rec.AssignedToEmployeeID)
		require.NotNil(t, rec.UserAssignedDate)

		current, err := assignmentstore.NewInstance(conn).GetCurrent(testCompanyID, assetID)
		require.Nil(t, err)
		require.NotNil(t, current)
		require.Equal(t, employeeID, current.EmployeeID)
		require.Equal(t, "admin-1", current.AssignedByID)
		require.Nil(t, current.ReturnDate)
	})

	t.Run(`перевыдача закрывает текущую запись журнала`, func(t *testing.T) {
		conn := newTestDB(t)
		assetID := createAsset(t, conn, models.AssetStatusAvailable)
		firstEmployeeID := createEmployee(t, conn, "Иван", "Петров")
		secondEmployeeID := createEmployee(t, conn, "Олег", "Новиков")

		handler := NewHandlerWithTx(conn)
		require.Nil(t, handler.Assign(testCompanyID, assetID, firstEmployeeID, "admin-1", ""))
		require.Nil(t, handler.Assign(testCompanyID, assetID, secondEmployeeID, "admin-1", ""))

		rec, err := assetstore.NewInstance(conn).GetByID(testCompanyID, assetID)
		require.Nil(t, err)
		require.Equal(t, models.AssetStatusInUse, rec.Status)
		require.Equal(t, secondEmployeeID, *rec.AssignedToEmployeeID)

		assignments := assignmentstore.NewInstance(conn)
		current, err := assignments.GetCurrent(testCompanyID, assetID)
		require.Nil(t, err)
		require.NotNil(t, current)
		require.Equal(t, secondEmployeeID, current.EmployeeID)

		history, err := assignments.ListByAsset(testCompanyID, assetID)
		require.Nil(t, err)
		require.Equal(t, 2, len(history))
		require.Equal(t, false, history[0].IsCurrent)
		require.NotNil(t, history[0].ReturnDate)
	})

	t.Run(`не больше одной текущей записи после серии выдач`, func(t *testing.T) {
		conn := newTestDB(t)
		assetID := createAsset(t, conn, models.AssetStatusAvailable)
		firstEmployeeID := createEmployee(t, conn, "Иван", "Петров")
		secondEmployeeID := createEmployee(t, conn, "Олег", "Новиков")

		handler := NewHandlerWithTx(conn)
		require.Nil(t, handler.Assign(testCompanyID, assetID, firstEmployeeID, "admin-1", ""))
		require.Nil(t, handler.Assign(testCompanyID, assetID, secondEmployeeID, "admin-1", ""))
		require.Nil(t, handler.Release(testCompanyID, assetID, ""))
		require.Nil(t, handler.Assign(testCompanyID, assetID, firstEmployeeID, "admin-1", ""))

		count, err := assignmentstore.NewInstance(conn).CountCurrent(testCompanyID, assetID)
		require.Nil(t, err)
		require.Equal(t, int64(1), count)
	})

	t.Run(`оборудование в ремонте выдать нельзя`, func(t *testing.T) {
		conn := newTestDB(t)
		assetID := createAsset(t, conn, models.AssetStatusMaintenance)
		employeeID := createEmployee(t, conn, "Иван", "Петров")

		handler := NewHandlerWithTx(conn)
		err := handler.Assign(testCompanyID, assetID, employeeID, "admin-1", "")
		require.NotNil(t, err)
		require.Equal(t, true, models.IsInvalidState(err))
	})

	t.Run(`оборудование не найдено`, func(t *testing.T) {
		conn := newTestDB(t)
		employeeID := createEmployee(t, conn, "Иван", "Петров")

		handler := NewHandlerWithTx(conn)
		err := handler.Assign(testCompanyID, "missing", employeeID, "admin-1", "")
		require.NotNil(t, err)
		require.Equal(t, true, models.IsNotFound(err))
	})
}

func TestRelease(t *testing.T) {
	t.Run(`возврат выданного оборудования`, func(t *testing.T) {
		conn := newTestDB(t)
		assetID := createAsset(t, conn, models.AssetStatusAvailable)
		employeeID := createEmployee(t, conn, "Иван", "Петров")

		handler := NewHandlerWithTx(conn)
		require.Nil(t, handler.Assign(testCompanyID, assetID, employeeID, "admin-1", ""))
		require.Nil(t, handler.Release(testCompanyID, assetID, "возврат при увольнении"))

		rec, err := assetstore.NewInstance(conn).GetByID(testCompanyID, assetID)
		require.Nil(t, err)
		require.Equal(t, models.AssetStatusAvailable, rec.Status)
		require.Nil(t, rec.AssignedToEmployeeID)
		require.NotNil(t, rec.LastReturnDate)

		count, err := assignmentstore.NewInstance(conn).CountCurrent(testCompanyID, assetID)
		require.Nil(t, err)
		require.Equal(t, int64(0), count)
	})

	t.Run(`возврат свободного оборудования без записи журнала`, func(t *testing.T) {
		conn := newTestDB(t)
		assetID := createAsset(t, conn, models.AssetStatusAvailable)

		handler := NewHandlerWithTx(conn)
		require.Nil(t, handler.Release(testCompanyID, assetID, ""))

		rec, err := assetstore.NewInstance(conn).GetByID(testCompanyID, assetID)
		require.Nil(t, err)
		require.Equal(t, models.AssetStatusAvailable, rec.Status)
	})

	t.Run(`оборудование не найдено`, func(t *testing.T) {
		conn := newTestDB(t)

		handler := NewHandlerWithTx(conn)
		err := handler.Release(testCompanyID, "missing", "")
		require.NotNil(t, err)
		require.Equal(t, true, models.IsNotFound(err))
	})
}
