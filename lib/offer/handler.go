package offer

import (
	"context"

	"github.com/pkg/errors"

	"fairhire-backend/db"
	"fairhire-backend/lib/gpt"
	"fairhire-backend/lib/utils/helpers"
	initchecker "fairhire-backend/lib/utils/init-checker"
	offerapimodels "fairhire-backend/models/api/offer"
	dbmodels "fairhire-backend/models/db"

	store "fairhire-backend/lib/offer/store"
)

type Provider interface {
	Create(data offerapimodels.OfferData) (id string, err error)
	Update(id string, data offerapimodels.OfferData) error
	Delete(id string) error
	Get(id string) (item offerapimodels.OfferView, err error)
	List(activeOnly bool, page, limit int) (list []offerapimodels.OfferView, rowCount int64, err error)
	GenerateDescription(ctx context.Context, title, position string) (string, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
		gpt:   gpt.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"gpt", instance.gpt,
	)
	Instance = instance
}

type impl struct {
	store store.Provider
	gpt   gpt.Provider
}

func (i impl) Create(data offerapimodels.OfferData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	startDate, _ := helpers.ParseDatePtr(data.StartDate)
	endDate, _ := helpers.ParseDatePtr(data.EndDate)
	rec := dbmodels.JobOffer{
		Title:          data.Title,
		Description:    data.Description,
		JobPositionID:  data.JobPositionID,
		CompanyID:      data.CompanyID,
		Location:       data.Location,
		StartDate:      startDate,
		EndDate:        endDate,
		IsActive:       data.IsActive,
		EmploymentType: data.EmploymentType,
		SalaryMin:      data.SalaryMin,
		SalaryMax:      data.SalaryMax,
		Mode:           data.Mode,
		IsUrgent:       data.IsUrgent,
	}
	for _, skillID := range data.SkillIDs {
		rec.Skills = append(rec.Skills, dbmodels.JobSkill{SkillID: skillID})
	}
	for _, req := range data.Requirements {
		rec.Requirements = append(rec.Requirements, dbmodels.JobRequirement{Description: req})
	}
	for _, benefit := range data.Benefits {
		rec.Benefits = append(rec.Benefits, dbmodels.JobBenefit{Description: benefit})
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, data offerapimodels.OfferData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	startDate, _ := helpers.ParseDatePtr(data.StartDate)
	endDate, _ := helpers.ParseDatePtr(data.EndDate)
	updMap := map[string]interface{}{
		"title":           data.Title,
		"description":     data.Description,
		"job_position_id": data.JobPositionID,
		"company_id":      data.CompanyID,
		"location":        data.Location,
		"start_date":      startDate,
		"end_date":        endDate,
		"is_active":       data.IsActive,
		"employment_type": data.EmploymentType,
		"salary_min":      data.SalaryMin,
		"salary_max":      data.SalaryMax,
		"mode":            data.Mode,
		"is_urgent":       data.IsUrgent,
	}
	skills := make([]dbmodels.JobSkill, 0, len(data.SkillIDs))
	for _, skillID := range data.SkillIDs {
		skills = append(skills, dbmodels.JobSkill{JobOfferID: id, SkillID: skillID})
	}
	requirements := make([]dbmodels.JobRequirement, 0, len(data.Requirements))
	for _, req := range data.Requirements {
		requirements = append(requirements, dbmodels.JobRequirement{JobOfferID: id, Description: req})
	}
	benefits := make([]dbmodels.JobBenefit, 0, len(data.Benefits))
	for _, benefit := range data.Benefits {
		benefits = append(benefits, dbmodels.JobBenefit{JobOfferID: id, Description: benefit})
	}
	return i.store.Update(id, updMap, skills, requirements, benefits)
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) Get(id string) (offerapimodels.OfferView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return offerapimodels.OfferView{}, err
	}
	if rec == nil {
		return offerapimodels.OfferView{}, errors.New("job offer not found")
	}
	return offerapimodels.OfferConvert(*rec), nil
}

func (i impl) List(activeOnly bool, page, limit int) ([]offerapimodels.OfferView, int64, error) {
	recList, rowCount, err := i.store.List(activeOnly, page, limit)
	if err != nil {
		return nil, 0, err
	}
	result := make([]offerapimodels.OfferView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, offerapimodels.OfferConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) GenerateDescription(ctx context.Context, title, position string) (string, error) {
	if title == "" {
		return "", errors.New("offer title is not specified")
	}
	return i.gpt.GenerateOfferDescription(ctx, title, position)
}
