package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"itsm-backend/controllers"
	assethandler "itsm-backend/lib/asset"
	"itsm-backend/middleware"
	apimodels "itsm-backend/models/api"
	assetapimodels "itsm-backend/models/api/asset"
)

type assetApiController struct {
	controllers.BaseAPIController
}

func InitAssetApiRouters(app *fiber.App) {
	controller := assetApiController{}
	app.Route("asset", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Get("history", controller.history)
			// прямая выдача минуя согласование, через общий обработчик
			idRoute.Put("assign", controller.assign)
			idRoute.Put("release", controller.release)
		})
	})
}

// @Summary Список оборудования
// @Tags Оборудование
// @Description Список оборудования компании
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]assetapimodels.AssetView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/asset [get]
func (c *assetApiController) list(ctx *fiber.Ctx) error {
	companyID := middleware.GetUserCompany(ctx)
	result, err := assethandler.Instance.List(companyID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка оборудования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Карточка оборудования
// @Tags Оборудование
// @Description Карточка оборудования
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=assetapimodels.AssetView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/asset/{id} [get]
func (c *assetApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	companyID := middleware.GetUserCompany(ctx)
	result, err := assethandler.Instance.GetByID(companyID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения оборудования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary История выдачи
// @Tags Оборудование
// @Description Журнал выдачи оборудования
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/asset/{id}/history [get]
func (c *assetApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	companyID := middleware.GetUserCompany(ctx)
	result, err := assethandler.Instance.AssignmentHistory(companyID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения журнала выдачи")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Выдать оборудование
// @Tags Оборудование
// @Description Выдача оборудования сотруднику
// @Param   Authorization		header	string								true	"Authorization token"
// @Param	body 				body	assetapimodels.AssetAssignData		true	"request body"
// @Param   id          		path    string  							true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/asset/{id}/assign [put]
func (c *assetApiController) assign(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload assetapimodels.AssetAssignData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	userID := middleware.GetUserID(ctx)
	err = assethandler.Instance.Assign(companyID, id, payload.EmployeeID, userID, payload.Remarks)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выдачи оборудования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Вернуть оборудование
// @Tags Оборудование
// @Description Возврат оборудования на склад
// @Param   Authorization		header	string								true	"Authorization token"
// @Param	body 				body	assetapimodels.AssetReleaseData		true	"request body"
// @Param   id          		path    string  							true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/asset/{id}/release [put]
func (c *assetApiController) release(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload assetapimodels.AssetReleaseData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	companyID := middleware.GetUserCompany(ctx)
	err = assethandler.Instance.Release(companyID, id, payload.Remarks)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка возврата оборудования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
