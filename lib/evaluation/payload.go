package evaluation

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"fairhire-backend/lib/candidate"
	"fairhire-backend/lib/utils/helpers"
	"fairhire-backend/models"
	evaluationapimodels "fairhire-backend/models/api/evaluation"
	dbmodels "fairhire-backend/models/db"
)

type fileGetter func(ctx context.Context, key string) ([]byte, error)

// buildPayload assembles the scorer request for one offer. A candidate that
// cannot be serialized (missing link, unreadable CV) goes into the error list
// and is excluded; the remaining candidates are unaffected.
func buildPayload(ctx context.Context, offer dbmodels.JobOffer,
	apps []dbmodels.JobApplication, getFile fileGetter, now time.Time,
) (evaluationapimodels.EvaluationPayload, []evaluationapimodels.CandidateError) {
	payload := evaluationapimodels.EvaluationPayload{
		JobTitle:       offer.Title,
		JobDescription: offer.Description,
		Location:       offer.Location,
		StartDate:      helpers.FormatDatePtr(offer.StartDate),
		EndDate:        helpers.FormatDatePtr(offer.EndDate),
		IsActive:       offer.IsActive,
		EmploymentType: string(offer.EmploymentType),
		SalaryMin:      offer.SalaryMin,
		SalaryMax:      offer.SalaryMax,
		Mode:           string(offer.Mode),
		IsUrgent:       offer.IsUrgent,
		Candidates:     []evaluationapimodels.CandidatePayload{},
	}
	if offer.JobPosition != nil {
		payload.JobPosition = &offer.JobPosition.Name
		payload.JobPositionDescription = &offer.JobPosition.Description
	}
	if offer.Company != nil {
		payload.Company = &offer.Company.Name
	}

	errList := []evaluationapimodels.CandidateError{}
	for _, app := range apps {
		entry, err := buildCandidateEntry(ctx, app, getFile, now)
		if err != nil {
			name := ""
			if app.Candidate != nil {
				name = app.Candidate.Name
			}
			errList = append(errList, evaluationapimodels.CandidateError{
				ApplicationID: app.ID,
				CandidateName: name,
				Error:         err.Error(),
			})
			continue
		}
		payload.Candidates = append(payload.Candidates, entry)
	}
	return payload, errList
}

func buildCandidateEntry(ctx context.Context, app dbmodels.JobApplication,
	getFile fileGetter, now time.Time,
) (evaluationapimodels.CandidatePayload, error) {
	c := app.Candidate
	if c == nil {
		return evaluationapimodels.CandidatePayload{}, errors.New("candidate is not linked to the application")
	}

	experiences := make([]string, 0, len(c.Experiences))
	for _, exp := range c.Experiences {
		text := exp.Description
		if text == "" {
			// Fallback text is part of the scorer contract, keep the wording.
			text = fmt.Sprintf("%s en %s", exp.Position, exp.CompanyName)
		}
		experiences = append(experiences, text)
	}

	skills := []evaluationapimodels.SkillDetail{}
	languages := []evaluationapimodels.SkillDetail{}
	ofimatic := []evaluationapimodels.SkillDetail{}
	for _, cs := range c.Skills {
		if cs.Skill == nil {
			continue
		}
		detail := evaluationapimodels.SkillDetail{
			Name:  cs.Skill.Name,
			Level: models.ProficiencyLabel(cs.ProficiencyLevel),
		}
		switch cs.Skill.Category {
		case models.SkillCategoryTechnical, models.SkillCategorySoft:
			detail.Category = string(cs.Skill.Category)
			skills = append(skills, detail)
		case models.SkillCategoryLanguage:
			languages = append(languages, detail)
		case models.SkillCategoryOffice:
			ofimatic = append(ofimatic, detail)
		}
	}

	var cvBase64 *string
	if c.CVKey != "" {
		data, err := getFile(ctx, c.CVKey)
		if err != nil {
			return evaluationapimodels.CandidatePayload{}, errors.Wrap(err, "CV file read error")
		}
		encoded := base64.StdEncoding.EncodeToString(data)
		cvBase64 = &encoded
	}

	var universityName *string
	if len(c.Educations) > 0 {
		universityName = &c.Educations[0].Institution
	}

	createdAt := app.CreatedAt.Format(time.RFC3339)

	return evaluationapimodels.CandidatePayload{
		ID:                  c.ID,
		Name:                c.Name,
		ShortBio:            c.ShortBio,
		Experience:          experiences,
		EducationLevel:      string(c.EducationLevel),
		Skills:              skills,
		ExperienceYears:     candidate.CalcExperienceYears(c.Experiences, now),
		CertificationsCount: len(c.Certificates),
		Languages:           languages,
		Ofimatic:            ofimatic,
		CvPdfBase64:         cvBase64,
		UniversityName:      universityName,
		Age:                 c.Age(now),
		Availability:        string(c.Availability),
		CreatedAt:           &createdAt,
	}, nil
}
