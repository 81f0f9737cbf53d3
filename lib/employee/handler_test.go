package employeehandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	employeestore "itsm-backend/lib/employee/store"
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
	require.Nil(t, conn.AutoMigrate(&dbmodels.Employee{}))
	return conn
}

func createEmployee(t *testing.T, conn *gorm.DB, firstName, lastName, email string, managerID *string) string {
	t.Helper()
	store := employeestore.NewInstance(conn)
	id, err := store.Create(dbmodels.Employee{
		BaseCompanyModel: dbmodels.BaseCompanyModel{
			CompanyID: testCompanyID,
		},
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		IsActive:  true,
		ManagerID: managerID,
	})
	require.Nil(t, err)
	return id
}

func TestResolveApprover(t *testing.T) {
	t.Run(`руководитель инициатора`, func(t *testing.T) {
		conn := newTestDB(t)
		managerID := createEmployee(t, conn, "Анна", "Смирнова", "a.smirnova@example.com", nil)
		requesterID := createEmployee(t, conn, "Иван", "Петров", "i.petrov@example.com", &managerID)

		handler := NewHandlerWithTx(conn)
		approver, err := handler.ResolveApprover(testCompanyID, requesterID, nil)
		require.Nil(t, err)
		require.NotNil(t, approver)
		require.Equal(t, managerID, approver.EmployeeID)
		require.Equal(t, "a.smirnova@example.com", approver.Email)
		require.Equal(t, "Анна Смирнова", approver.Name)
	})

	t.Run(`приоритет у получателя, а не инициатора`, func(t *testing.T) {
		conn := newTestDB(t)
		requesterManagerID := createEmployee(t, conn, "Пётр", "Иванов", "p.ivanov@example.com", nil)
		requesterID := createEmployee(t, conn, "Иван", "Петров", "i.petrov@example.com", &requesterManagerID)
		assigneeManagerID := createEmployee(t, conn, "Анна", "Смирнова", "a.smirnova@example.com", nil)
		assigneeID := createEmployee(t, conn, "Олег", "Новиков", "o.novikov@example.com", &assigneeManagerID)

		handler := NewHandlerWithTx(conn)
		approver, err := handler.ResolveApprover(testCompanyID, requesterID, &assigneeID)
		require.Nil(t, err)
		require.NotNil(t, approver)
		require.Equal(t, assigneeManagerID, approver.EmployeeID)
	})

	t.Run(`нет руководителя - nil без ошибки`, func(t *testing.T) {
		conn := newTestDB(t)
		requesterID := createEmployee(t, conn, "Иван", "Петров", "i.petrov@example.com", nil)

		handler := NewHandlerWithTx(conn)
		approver, err := handler.ResolveApprover(testCompanyID, requesterID, nil)
		require.Nil(t, err)
		require.Nil(t, approver)
	})

	t.Run(`нет сотрудника - nil без ошибки`, func(t *testing.T) {
		conn := newTestDB(t)

		handler := NewHandlerWithTx(conn)
		approver, err := handler.ResolveApprover(testCompanyID, "missing", nil)
		require.Nil(t, err)
		require.Nil(t, approver)
	})

	t.Run(`у руководителя нет почты - nil без ошибки`, func(t *testing.T) {
		conn := newTestDB(t)
		managerID := createEmployee(t, conn, "Анна", "Смирнова", "", nil)
		requesterID := createEmployee(t, conn, "Иван", "Петров", "i.petrov@example.com", &managerID)

		handler := NewHandlerWithTx(conn)
		approver, err := handler.ResolveApprover(testCompanyID, requesterID, nil)
		require.Nil(t, err)
		require.Nil(t, approver)
	})
}

func TestGetByID(t *testing.T) {
	conn := newTestDB(t)
	handler := NewHandlerWithTx(conn)

	_, err := handler.GetByID(testCompanyID, "missing")
	require.NotNil(t, err)
	require.Equal(t, true, models.IsNotFound(err))
}
