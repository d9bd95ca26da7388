package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"fairhire-backend/controllers"
	applicationhandler "fairhire-backend/lib/application"
	"fairhire-backend/middleware"
	"fairhire-backend/models"
	apimodels "fairhire-backend/models/api"
	applicationapimodels "fairhire-backend/models/api/application"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("application", func(router fiber.Router) {
		router.Route("my", func(myRoute fiber.Router) {
			myRoute.Use(middleware.CandidateProfileRequired())
			myRoute.Post("", controller.apply)
			myRoute.Get("", controller.myApplications)
		})

		router.Route("", func(staffRoute fiber.Router) {
			staffRoute.Use(middleware.RoleRequired(models.UserRoleRecruiter, models.UserRoleAdmin))
			staffRoute.Get("offer/:offer_id", controller.listByOffer)
			staffRoute.Route(":id", func(idRoute fiber.Router) {
				idRoute.Get("", controller.get)
				idRoute.Put("interview_status", controller.updateInterviewStatus)
			})
		})
	})
}

// @Summary Apply to an offer
// @Tags Application
// @Description Files an application and freezes the candidate profile snapshot
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.ApplicationData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/my [post]
func (c *applicationApiController) apply(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplicationData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := middleware.GetCandidateID(ctx)
	id, err := applicationhandler.Instance.Create(candidateID, payload)
	if err != nil {
		if err == applicationhandler.ErrDuplicateApplication {
			return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Application create error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary My applications
// @Tags Application
// @Description Lists the authenticated candidate's applications with offer and latest analysis
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/my [get]
func (c *applicationApiController) myApplications(ctx *fiber.Ctx) error {
	candidateID := middleware.GetCandidateID(ctx)
	list, err := applicationhandler.Instance.ListByCandidate(candidateID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Application list error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Applications by offer
// @Tags Application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   offer_id          	path    string  true         "offer ID"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/offer/{offer_id} [get]
func (c *applicationApiController) listByOffer(ctx *fiber.Ctx) error {
	offerID, err := c.GetPathParam(ctx, "offer_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := applicationhandler.Instance.ListByOffer(offerID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Application list error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Application card
// @Tags Application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id} [get]
func (c *applicationApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := applicationhandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Application read error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Update interview status
// @Tags Application
// @Description Moves the recruiter-driven interview outcome and refreshes accuracy metrics
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body body	 applicationapimodels.InterviewStatusData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/interview_status [put]
func (c *applicationApiController) updateInterviewStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.InterviewStatusData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = applicationhandler.Instance.UpdateInterviewStatus(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Interview status update error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
