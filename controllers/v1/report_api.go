package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"fairhire-backend/controllers"
	"fairhire-backend/lib/accuracy"
	evaluationhandler "fairhire-backend/lib/evaluation"
	xlsexport "fairhire-backend/lib/export/xls"
	"fairhire-backend/middleware"
	"fairhire-backend/models"
	apimodels "fairhire-backend/models/api"
)

type reportApiController struct {
	controllers.BaseAPIController
}

func InitReportApiRouters(app *fiber.App) {
	controller := reportApiController{}
	app.Route("report", func(router fiber.Router) {
		router.Use(middleware.RoleRequired(models.UserRoleRecruiter, models.UserRoleAdmin))

		router.Get("accuracy", controller.accuracy)
		router.Get("accuracy/xlsx", controller.accuracyXlsx)
		router.Get("summary/xlsx", controller.summaryXlsx)
	})
}

// @Summary Accuracy report
// @Tags Report
// @Description Per-date selection accuracy metrics with the computed average score
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]reportapimodels.AccuracyView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/accuracy [get]
func (c *reportApiController) accuracy(ctx *fiber.Ctx) error {
	list, err := accuracy.Instance.ListReport()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Accuracy report error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Accuracy report (XLSX)
// @Tags Report
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {file} file
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/accuracy/xlsx [get]
func (c *reportApiController) accuracyXlsx(ctx *fiber.Ctx) error {
	list, err := accuracy.Instance.ListReport()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Accuracy report error")
	}
	buf, err := xlsexport.Instance.ExportAccuracyReport(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Accuracy export error")
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="accuracy_report.xlsx"`)
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Fairness summary (XLSX)
// @Tags Report
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {file} file
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/summary/xlsx [get]
func (c *reportApiController) summaryXlsx(ctx *fiber.Ctx) error {
	list, err := evaluationhandler.Instance.ListAllSummaries()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Summary report error")
	}
	buf, err := xlsexport.Instance.ExportSummaryReport(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Summary export error")
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="fairness_summary.xlsx"`)
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
