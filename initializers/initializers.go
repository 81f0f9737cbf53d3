package initializers

import (
	"context"

	"itsm-backend/config"
	"itsm-backend/fiberlog"
	approvalhandler "itsm-backend/lib/approval"
	assethandler "itsm-backend/lib/asset"
	employeehandler "itsm-backend/lib/employee"
	notificationhandler "itsm-backend/lib/notification"
	purchaseorderhandler "itsm-backend/lib/purchase-order"
	tickethandler "itsm-backend/lib/ticket"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitSmtp()
	employeehandler.NewHandler()
	tickethandler.NewHandler()
	purchaseorderhandler.NewHandler()
	assethandler.NewHandler()
	notificationhandler.NewHandler()
	// оркестратор последним: собирает Instance остальных обработчиков
	approvalhandler.NewHandler()
}
