package dict

import (
	"github.com/gofiber/fiber/v2"

	"fairhire-backend/controllers"
	jobpositionprovider "fairhire-backend/lib/dicts/job-position"
	"fairhire-backend/middleware"
	"fairhire-backend/models"
	apimodels "fairhire-backend/models/api"
	dictapimodels "fairhire-backend/models/api/dict"
)

type jobPositionDictApiController struct {
	controllers.BaseAPIController
}

func InitJobPositionDictApiRouters(app *fiber.App) {
	controller := jobPositionDictApiController{}
	app.Route("job_position", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Route("", func(adminRoute fiber.Router) {
			adminRoute.Use(middleware.RoleRequired(models.UserRoleAdmin))
			adminRoute.Post("", controller.create)
			adminRoute.Put(":id", controller.update)
			adminRoute.Delete(":id", controller.delete)
		})
	})
}

// @Summary Job position list
// @Tags Dictionaries
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search	query	string	false	"name filter"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.JobPositionView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/job_position [get]
func (c *jobPositionDictApiController) list(ctx *fiber.Ctx) error {
	list, err := jobpositionprovider.Instance.List(ctx.Query("search"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Job position list error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Job position card
// @Tags Dictionaries
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.JobPositionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/job_position/{id} [get]
func (c *jobPositionDictApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := jobpositionprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Job position read error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Create job position
// @Tags Dictionaries
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.JobPositionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/job_position [post]
func (c *jobPositionDictApiController) create(ctx *fiber.Ctx) error {
	var payload dictapimodels.JobPositionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := jobpositionprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Job position create error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update job position
// @Tags Dictionaries
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body body	 dictapimodels.JobPositionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/job_position/{id} [put]
func (c *jobPositionDictApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.JobPositionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = jobpositionprovider.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Job position update error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete job position
// @Tags Dictionaries
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/job_position/{id} [delete]
func (c *jobPositionDictApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = jobpositionprovider.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Job position delete error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
