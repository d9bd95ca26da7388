package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"fairhire-backend/controllers"
	offerhandler "fairhire-backend/lib/offer"
	"fairhire-backend/middleware"
	"fairhire-backend/models"
	apimodels "fairhire-backend/models/api"
	offerapimodels "fairhire-backend/models/api/offer"
)

type offerApiController struct {
	controllers.BaseAPIController
}

// InitPublicOfferApiRouters exposes the active-offer catalog without a token.
func InitPublicOfferApiRouters(app *fiber.App) {
	controller := offerApiController{}
	app.Route("offer", func(router fiber.Router) {
		router.Post("list", controller.publicList)
		router.Get(":id", controller.get)
	})
}

func InitOfferApiRouters(app *fiber.App) {
	controller := offerApiController{}
	app.Route("offer", func(router fiber.Router) {
		router.Use(middleware.RoleRequired(models.UserRoleRecruiter, models.UserRoleAdmin))

		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Post("generate_description", controller.generateDescription)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Put("", controller.update)
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.delete)
		})
	})
}

type offerListRequest struct {
	apimodels.Pagination
}

// @Summary Active offers
// @Tags Offer
// @Description Public catalog of active job offers
// @Param	body body	 offerListRequest	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]offerapimodels.OfferView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/offer/list [post]
func (c *offerApiController) publicList(ctx *fiber.Ctx) error {
	var payload offerListRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	page, limit := payload.GetPage()
	list, rowCount, err := offerhandler.Instance.List(true, page, limit)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Offer list error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Offer list
// @Tags Offer
// @Description Full offer list for recruiters, including inactive offers
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 offerListRequest	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]offerapimodels.OfferView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offer/list [post]
func (c *offerApiController) list(ctx *fiber.Ctx) error {
	var payload offerListRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	page, limit := payload.GetPage()
	list, rowCount, err := offerhandler.Instance.List(false, page, limit)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Offer list error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Create offer
// @Tags Offer
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 offerapimodels.OfferData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offer [post]
func (c *offerApiController) create(ctx *fiber.Ctx) error {
	var payload offerapimodels.OfferData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := offerhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Offer create error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update offer
// @Tags Offer
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body body	 offerapimodels.OfferData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offer/{id} [put]
func (c *offerApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload offerapimodels.OfferData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = offerhandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Offer update error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Offer card
// @Tags Offer
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=offerapimodels.OfferView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/offer/{id} [get]
func (c *offerApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := offerhandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Offer read error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Delete offer
// @Tags Offer
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offer/{id} [delete]
func (c *offerApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = offerhandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Offer delete error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

type generateDescriptionRequest struct {
	Title    string `json:"title"`
	Position string `json:"position"`
}

// @Summary Generate offer description
// @Tags Offer
// @Description Generates a draft offer description text
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 generateDescriptionRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offer/generate_description [post]
func (c *offerApiController) generateDescription(ctx *fiber.Ctx) error {
	var payload generateDescriptionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	description, err := offerhandler.Instance.GenerateDescription(ctx.UserContext(), payload.Title, payload.Position)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Description generation error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(description))
}
