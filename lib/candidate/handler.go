package candidate

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"fairhire-backend/db"
	filestorage "fairhire-backend/lib/file-storage"
	initchecker "fairhire-backend/lib/utils/init-checker"
	candidateapimodels "fairhire-backend/models/api/candidate"
	dbmodels "fairhire-backend/models/db"

	store "fairhire-backend/lib/candidate/store"
	"fairhire-backend/lib/utils/helpers"
)

type Provider interface {
	Create(userID *string, data candidateapimodels.CandidateData) (id string, err error)
	Update(id string, data candidateapimodels.CandidateData) error
	Get(id string) (item candidateapimodels.CandidateView, err error)
	GetByUserID(userID string) (item *candidateapimodels.CandidateView, err error)
	List(page, limit int) (list []candidateapimodels.CandidateView, rowCount int64, err error)

	AddSkill(candidateID string, data candidateapimodels.SkillData) (id string, err error)
	UpdateSkill(candidateID, id string, data candidateapimodels.SkillData) error
	DeleteSkill(candidateID, id string) error

	AddExperience(candidateID string, data candidateapimodels.ExperienceData) (id string, err error)
	UpdateExperience(candidateID, id string, data candidateapimodels.ExperienceData) error
	DeleteExperience(candidateID, id string) error

	AddEducation(candidateID string, data candidateapimodels.EducationData) (id string, err error)
	UpdateEducation(candidateID, id string, data candidateapimodels.EducationData) error
	DeleteEducation(candidateID, id string) error

	AddCertificate(candidateID string, data candidateapimodels.CertificateData) (id string, err error)
	UpdateCertificate(candidateID, id string, data candidateapimodels.CertificateData) error
	DeleteCertificate(candidateID, id string) error

	UploadCV(ctx context.Context, candidateID string, file []byte, fileName string) error
	UploadPhoto(ctx context.Context, candidateID string, file []byte, fileName string) error
	UploadCertificateFile(ctx context.Context, candidateID, certificateID string, file []byte, fileName string) error

	RecalcExperience(candidateID string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:       store.NewInstance(db.DB),
		filestorage: filestorage.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"filestorage", instance.filestorage,
	)
	Instance = instance
}

type impl struct {
	store       store.Provider
	filestorage filestorage.Provider
}

func (i impl) Create(userID *string, data candidateapimodels.CandidateData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	birthDate, err := helpers.ParseDatePtr(data.BirthDate)
	if err != nil {
		return "", err
	}
	rec := dbmodels.Candidate{
		UserID:            userID,
		Name:              data.Name,
		DocumentType:      data.DocumentType,
		DocumentNumber:    data.DocumentNumber,
		Country:           data.Country,
		Gender:            data.Gender,
		BirthDate:         birthDate,
		EducationLevel:    data.EducationLevel,
		Location:          data.Location,
		ShortBio:          data.ShortBio,
		LinkedinURL:       data.LinkedinURL,
		PortfolioURL:      data.PortfolioURL,
		HasRecommendation: data.HasRecommendation,
		Availability:      data.Availability,
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, data candidateapimodels.CandidateData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	birthDate, err := helpers.ParseDatePtr(data.BirthDate)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name":               data.Name,
		"document_type":      data.DocumentType,
		"document_number":    data.DocumentNumber,
		"country":            data.Country,
		"gender":             data.Gender,
		"birth_date":         birthDate,
		"education_level":    data.EducationLevel,
		"location":           data.Location,
		"short_bio":          data.ShortBio,
		"linkedin_url":       data.LinkedinURL,
		"portfolio_url":      data.PortfolioURL,
		"has_recommendation": data.HasRecommendation,
		"availability":       data.Availability,
	}
	return i.store.Update(id, updMap)
}

func (i impl) Get(id string) (candidateapimodels.CandidateView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	if rec == nil {
		return candidateapimodels.CandidateView{}, errors.New("candidate not found")
	}
	return candidateapimodels.CandidateConvert(*rec), nil
}

func (i impl) GetByUserID(userID string) (*candidateapimodels.CandidateView, error) {
	rec, err := i.store.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := candidateapimodels.CandidateConvert(*rec)
	return &view, nil
}

func (i impl) List(page, limit int) ([]candidateapimodels.CandidateView, int64, error) {
	recList, rowCount, err := i.store.List(page, limit)
	if err != nil {
		return nil, 0, err
	}
	result := make([]candidateapimodels.CandidateView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, candidateapimodels.CandidateConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) AddSkill(candidateID string, data candidateapimodels.SkillData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	rec := dbmodels.CandidateSkill{
		CandidateID:      candidateID,
		SkillID:          data.SkillID,
		ProficiencyLevel: data.ProficiencyLevel,
	}
	return i.store.AddSkill(rec)
}

func (i impl) UpdateSkill(candidateID, id string, data candidateapimodels.SkillData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"skill_id":          data.SkillID,
		"proficiency_level": data.ProficiencyLevel,
	}
	return i.store.UpdateSkill(candidateID, id, updMap)
}

func (i impl) DeleteSkill(candidateID, id string) error {
	return i.store.DeleteSkill(candidateID, id)
}

func (i impl) AddExperience(candidateID string, data candidateapimodels.ExperienceData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	startDate, _ := helpers.ParseDatePtr(data.StartDate)
	endDate, _ := helpers.ParseDatePtr(data.EndDate)
	rec := dbmodels.Experience{
		CandidateID: candidateID,
		CompanyName: data.CompanyName,
		Position:    data.Position,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: data.Description,
	}
	id, err := i.store.AddExperience(rec)
	if err != nil {
		return "", err
	}
	return id, i.RecalcExperience(candidateID)
}

func (i impl) UpdateExperience(candidateID, id string, data candidateapimodels.ExperienceData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	startDate, _ := helpers.ParseDatePtr(data.StartDate)
	endDate, _ := helpers.ParseDatePtr(data.EndDate)
	updMap := map[string]interface{}{
		"company_name": data.CompanyName,
		"position":     data.Position,
		"start_date":   startDate,
		"end_date":     endDate,
		"description":  data.Description,
	}
	err := i.store.UpdateExperience(candidateID, id, updMap)
	if err != nil {
		return err
	}
	return i.RecalcExperience(candidateID)
}

func (i impl) DeleteExperience(candidateID, id string) error {
	err := i.store.DeleteExperience(candidateID, id)
	if err != nil {
		return err
	}
	return i.RecalcExperience(candidateID)
}

func (i impl) AddEducation(candidateID string, data candidateapimodels.EducationData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	startDate, _ := helpers.ParseDatePtr(data.StartDate)
	endDate, _ := helpers.ParseDatePtr(data.EndDate)
	rec := dbmodels.Education{
		CandidateID:  candidateID,
		Institution:  data.Institution,
		Degree:       data.Degree,
		FieldOfStudy: data.FieldOfStudy,
		StartDate:    startDate,
		EndDate:      endDate,
		IsStudying:   data.IsStudying,
		Description:  data.Description,
	}
	return i.store.AddEducation(rec)
}

func (i impl) UpdateEducation(candidateID, id string, data candidateapimodels.EducationData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	startDate, _ := helpers.ParseDatePtr(data.StartDate)
	endDate, _ := helpers.ParseDatePtr(data.EndDate)
	updMap := map[string]interface{}{
		"institution":    data.Institution,
		"degree":         data.Degree,
		"field_of_study": data.FieldOfStudy,
		"start_date":     startDate,
		"end_date":       endDate,
		"is_studying":    data.IsStudying,
		"description":    data.Description,
	}
	return i.store.UpdateEducation(candidateID, id, updMap)
}

func (i impl) DeleteEducation(candidateID, id string) error {
	return i.store.DeleteEducation(candidateID, id)
}

func (i impl) AddCertificate(candidateID string, data candidateapimodels.CertificateData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	dateObtained, _ := helpers.ParseDatePtr(data.DateObtained)
	expirationDate, _ := helpers.ParseDatePtr(data.ExpirationDate)
	rec := dbmodels.Certificate{
		CandidateID:    candidateID,
		Name:           data.Name,
		Code:           data.Code,
		Institution:    data.Institution,
		DateObtained:   dateObtained,
		ExpirationDate: expirationDate,
	}
	return i.store.AddCertificate(rec)
}

func (i impl) UpdateCertificate(candidateID, id string, data candidateapimodels.CertificateData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	dateObtained, _ := helpers.ParseDatePtr(data.DateObtained)
	expirationDate, _ := helpers.ParseDatePtr(data.ExpirationDate)
	updMap := map[string]interface{}{
		"name":            data.Name,
		"code":            data.Code,
		"institution":     data.Institution,
		"date_obtained":   dateObtained,
		"expiration_date": expirationDate,
	}
	return i.store.UpdateCertificate(candidateID, id, updMap)
}

func (i impl) DeleteCertificate(candidateID, id string) error {
	return i.store.DeleteCertificate(candidateID, id)
}

func (i impl) UploadCV(ctx context.Context, candidateID string, file []byte, fileName string) error {
	key, err := i.filestorage.UploadCV(ctx, candidateID, file, fileName)
	if err != nil {
		return err
	}
	return i.store.Update(candidateID, map[string]interface{}{"cv_key": key})
}

func (i impl) UploadPhoto(ctx context.Context, candidateID string, file []byte, fileName string) error {
	key, err := i.filestorage.UploadPhoto(ctx, candidateID, file, fileName)
	if err != nil {
		return err
	}
	return i.store.Update(candidateID, map[string]interface{}{"photo_key": key})
}

func (i impl) UploadCertificateFile(ctx context.Context, candidateID, certificateID string, file []byte, fileName string) error {
	key, err := i.filestorage.UploadCertificate(ctx, candidateID, file, fileName)
	if err != nil {
		return err
	}
	return i.store.UpdateCertificate(candidateID, certificateID, map[string]interface{}{"file_key": key})
}

// RecalcExperience rebuilds the cached experience_years aggregate from the
// candidate's current experience entries.
func (i impl) RecalcExperience(candidateID string) error {
	entries, err := i.store.ListExperiences(candidateID)
	if err != nil {
		return err
	}
	years := CalcExperienceYears(entries, time.Now())
	return i.store.Update(candidateID, map[string]interface{}{"experience_years": years})
}
