package dict

import (
	"github.com/gofiber/fiber/v2"

	"fairhire-backend/controllers"
	skillprovider "fairhire-backend/lib/dicts/skill"
	"fairhire-backend/middleware"
	"fairhire-backend/models"
	apimodels "fairhire-backend/models/api"
	dictapimodels "fairhire-backend/models/api/dict"
)

type skillDictApiController struct {
	controllers.BaseAPIController
}

func InitSkillDictApiRouters(app *fiber.App) {
	controller := skillDictApiController{}
	app.Route("skill", func(router fiber.Router) {
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

// @Summary Skill list
// @Tags Dictionaries
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search	query	string	false	"name filter"
// @Param   category	query	string	false	"category filter"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.SkillView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/skill [get]
func (c *skillDictApiController) list(ctx *fiber.Ctx) error {
	search := ctx.Query("search")
	category := models.SkillCategory(ctx.Query("category"))
	list, err := skillprovider.Instance.List(search, category)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Skill list error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Skill card
// @Tags Dictionaries
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.SkillView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/skill/{id} [get]
func (c *skillDictApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := skillprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Skill read error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Create skill
// @Tags Dictionaries
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.SkillData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/skill [post]
func (c *skillDictApiController) create(ctx *fiber.Ctx) error {
	var payload dictapimodels.SkillData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := skillprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Skill create error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update skill
// @Tags Dictionaries
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body body	 dictapimodels.SkillData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/skill/{id} [put]
func (c *skillDictApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.SkillData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = skillprovider.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Skill update error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete skill
// @Tags Dictionaries
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/skill/{id} [delete]
func (c *skillDictApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = skillprovider.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Skill delete error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
