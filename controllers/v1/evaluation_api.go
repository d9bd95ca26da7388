package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"fairhire-backend/controllers"
	evaluationhandler "fairhire-backend/lib/evaluation"
	"fairhire-backend/middleware"
	"fairhire-backend/models"
	apimodels "fairhire-backend/models/api"
)

type evaluationApiController struct {
	controllers.BaseAPIController
}

func InitEvaluationApiRouters(app *fiber.App) {
	controller := evaluationApiController{}
	app.Route("evaluation", func(router fiber.Router) {
		router.Use(middleware.RoleRequired(models.UserRoleRecruiter, models.UserRoleAdmin))

		router.Route("offer/:offer_id", func(offerRoute fiber.Router) {
			offerRoute.Post("run", controller.run)
			offerRoute.Get("summary", controller.summaries)
		})
	})
}

// @Summary Evaluate offer
// @Tags Evaluation
// @Description Sends all offer applications to the external scorer and persists the results
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   offer_id          	path    string  true         "offer ID"
// @Success 200 {object} apimodels.Response{data=evaluationapimodels.RunView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/evaluation/offer/{offer_id}/run [post]
func (c *evaluationApiController) run(ctx *fiber.Ctx) error {
	offerID, err := c.GetPathParam(ctx, "offer_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	run, err := evaluationhandler.Instance.EvaluateOffer(ctx.UserContext(), offerID)
	if err != nil {
		if err == evaluationhandler.ErrRunInProgress {
			return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
		}
		c.GetLogger(ctx).WithError(err).Error("Evaluation run error")
		resp := apimodels.NewError("Evaluation run error")
		// per-candidate exclusions explain why the run could not proceed
		if len(run.Errors) > 0 {
			resp.Data = run.Errors
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(resp)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(run))
}

// @Summary Fairness summary
// @Tags Evaluation
// @Description Fairness summary rows of the offer's last evaluation run
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   offer_id          	path    string  true         "offer ID"
// @Success 200 {object} apimodels.Response{data=[]reportapimodels.SummaryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/evaluation/offer/{offer_id}/summary [get]
func (c *evaluationApiController) summaries(ctx *fiber.Ctx) error {
	offerID, err := c.GetPathParam(ctx, "offer_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := evaluationhandler.Instance.ListSummaries(offerID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Summary read error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
