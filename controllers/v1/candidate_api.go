package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"fairhire-backend/controllers"
	candidatehandler "fairhire-backend/lib/candidate"
	"fairhire-backend/middleware"
	"fairhire-backend/models"
	apimodels "fairhire-backend/models/api"
	candidateapimodels "fairhire-backend/models/api/candidate"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route("candidate", func(router fiber.Router) {
		router.Route("profile", func(profileRoute fiber.Router) {
			profileRoute.Use(middleware.CandidateProfileRequired())

			profileRoute.Get("", controller.getProfile)
			profileRoute.Put("", controller.updateProfile)
			profileRoute.Post("cv", controller.uploadCV)
			profileRoute.Post("photo", controller.uploadPhoto)

			profileRoute.Post("skill", controller.addSkill)
			profileRoute.Put("skill/:id", controller.updateSkill)
			profileRoute.Delete("skill/:id", controller.deleteSkill)

			profileRoute.Post("experience", controller.addExperience)
			profileRoute.Put("experience/:id", controller.updateExperience)
			profileRoute.Delete("experience/:id", controller.deleteExperience)

			profileRoute.Post("education", controller.addEducation)
			profileRoute.Put("education/:id", controller.updateEducation)
			profileRoute.Delete("education/:id", controller.deleteEducation)

			profileRoute.Post("certificate", controller.addCertificate)
			profileRoute.Put("certificate/:id", controller.updateCertificate)
			profileRoute.Delete("certificate/:id", controller.deleteCertificate)
			profileRoute.Post("certificate/:id/file", controller.uploadCertificateFile)
		})

		router.Route("", func(staffRoute fiber.Router) {
			staffRoute.Use(middleware.RoleRequired(models.UserRoleRecruiter, models.UserRoleAdmin))
			staffRoute.Post("list", controller.list)
			staffRoute.Get(":id", controller.get)
		})
	})
}

// @Summary Own profile
// @Tags Candidate
// @Description Returns the authenticated candidate's profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/profile [get]
func (c *candidateApiController) getProfile(ctx *fiber.Ctx) error {
	candidateID := middleware.GetCandidateID(ctx)
	item, err := candidatehandler.Instance.Get(candidateID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Profile read error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Update own profile
// @Tags Candidate
// @Description Updates the authenticated candidate's profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.CandidateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/profile [put]
func (c *candidateApiController) updateProfile(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := middleware.GetCandidateID(ctx)
	err := candidatehandler.Instance.Update(candidateID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Profile update error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Upload CV
// @Tags Candidate
// @Description Stores the candidate's CV document (PDF)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file	formData	file	true	"CV file"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/profile/cv [post]
func (c *candidateApiController) uploadCV(ctx *fiber.Ctx) error {
	fileName, data, err := c.readFormFile(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := middleware.GetCandidateID(ctx)
	err = candidatehandler.Instance.UploadCV(ctx.UserContext(), candidateID, data, fileName)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "CV upload error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Upload photo
// @Tags Candidate
// @Description Stores the candidate's photo
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file	formData	file	true	"photo file"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/profile/photo [post]
func (c *candidateApiController) uploadPhoto(ctx *fiber.Ctx) error {
	fileName, data, err := c.readFormFile(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := middleware.GetCandidateID(ctx)
	err = candidatehandler.Instance.UploadPhoto(ctx.UserContext(), candidateID, data, fileName)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Photo upload error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Add skill
// @Tags Candidate
// @Description Adds a skill to the candidate's profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.SkillData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/profile/skill [post]
func (c *candidateApiController) addSkill(ctx *fiber.Ctx) error {
	var payload candidateapimodels.SkillData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := middleware.GetCandidateID(ctx)
	id, err := candidatehandler.Instance.AddSkill(candidateID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Skill add error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update skill
// @Tags Candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body body	 candidateapimodels.SkillData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/profile/skill/{id} [put]
func (c *candidateApiController) updateSkill(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.SkillData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := middleware.GetCandidateID(ctx)
	err = candidatehandler.Instance.UpdateSkill(candidateID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Skill update error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete skill
// @Tags Candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/profile/skill/{id} [delete]
func (c *candidateApiController) deleteSkill(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := middleware.GetCandidateID(ctx)
	err = candidatehandler.Instance.DeleteSkill(candidateID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Skill delete error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Add experience
// @Tags Candidate
// @Description Adds a work experience entry and recomputes experience years
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.ExperienceData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/profile/experience [post]
func (c *candidateApiController) addExperience(ctx *fiber.Ctx) error {
	var payload candidateapimodels.ExperienceData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := middleware.GetCandidateID(ctx)
	id, err := candidatehandler.Instance.AddExperience(candidateID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Experience add error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update experience
// @Tags Candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body body	 candidateapimodels.ExperienceData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/profile/experience/{id} [put]
func (c *candidateApiController) updateExperience(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.ExperienceData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := middleware.GetCandidateID(ctx)
	err = candidatehandler.Instance.UpdateExperience(candidateID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Experience update error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete experience
// @Tags Candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/profile/experience/{id} [delete]
func (c *candidateApiController) deleteExperience(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := middleware.GetCandidateID(ctx)
	err = candidatehandler.Instance.DeleteExperience(candidateID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Experience delete error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Add education
// @Tags Candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.EducationData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/profile/education [post]
func (c *candidateApiController) addEducation(ctx *fiber.Ctx) error {
	var payload candidateapimodels.EducationData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := middleware.GetCandidateID(ctx)
	id, err := candidatehandler.Instance.AddEducation(candidateID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Education add error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update education
// @Tags Candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body body	 candidateapimodels.EducationData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/profile/education/{id} [put]
func (c *candidateApiController) updateEducation(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.EducationData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := middleware.GetCandidateID(ctx)
	err = candidatehandler.Instance.UpdateEducation(candidateID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Education update error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete education
// @Tags Candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/profile/education/{id} [delete]
func (c *candidateApiController) deleteEducation(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := middleware.GetCandidateID(ctx)
	err = candidatehandler.Instance.DeleteEducation(candidateID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Education delete error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Add certificate
// @Tags Candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.CertificateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/profile/certificate [post]
func (c *candidateApiController) addCertificate(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CertificateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := middleware.GetCandidateID(ctx)
	id, err := candidatehandler.Instance.AddCertificate(candidateID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Certificate add error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update certificate
// @Tags Candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body body	 candidateapimodels.CertificateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/profile/certificate/{id} [put]
func (c *candidateApiController) updateCertificate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.CertificateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := middleware.GetCandidateID(ctx)
	err = candidatehandler.Instance.UpdateCertificate(candidateID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Certificate update error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete certificate
// @Tags Candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/profile/certificate/{id} [delete]
func (c *candidateApiController) deleteCertificate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := middleware.GetCandidateID(ctx)
	err = candidatehandler.Instance.DeleteCertificate(candidateID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Certificate delete error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Upload certificate file
// @Tags Candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param   file	formData	file	true	"certificate file"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/profile/certificate/{id}/file [post]
func (c *candidateApiController) uploadCertificateFile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, data, err := c.readFormFile(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := middleware.GetCandidateID(ctx)
	err = candidatehandler.Instance.UploadCertificateFile(ctx.UserContext(), candidateID, id, data, fileName)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Certificate file upload error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Candidate list
// @Tags Candidate
// @Description Paginated candidate list for recruiters
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/list [post]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	page, limit := payload.GetPage()
	list, rowCount, err := candidatehandler.Instance.List(page, limit)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Candidate list error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Candidate card
// @Tags Candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := candidatehandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Candidate read error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

func (c *candidateApiController) readFormFile(ctx *fiber.Ctx) (fileName string, data []byte, err error) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return "", nil, err
	}
	file, err := fileHeader.Open()
	if err != nil {
		return "", nil, err
	}
	defer file.Close()
	data, err = io.ReadAll(file)
	if err != nil {
		return "", nil, err
	}
	return fileHeader.Filename, data, nil
}
