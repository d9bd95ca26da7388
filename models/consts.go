package models

// ApplicationStatus is the coarse lifecycle state of a job application.
// After an evaluation run it carries the decision outcome.
type ApplicationStatus string

const (
	ApplicationStatusSent         ApplicationStatus = "Sent"
	ApplicationStatusInEvaluation ApplicationStatus = "In evaluation"
	ApplicationStatusProcessed    ApplicationStatus = "Processed"
	ApplicationStatusApproved     ApplicationStatus = "Approved"
	ApplicationStatusRejected     ApplicationStatus = "Rejected"
)

// InterviewStatus is the recruiter-driven interview outcome.
type InterviewStatus string

const (
	InterviewStatusPending   InterviewStatus = "Pending"
	InterviewStatusScheduled InterviewStatus = "Interview scheduled"
	InterviewStatusPassed    InterviewStatus = "Passed interview"
	InterviewStatusFailed    InterviewStatus = "Failed interview"
	InterviewStatusHired     InterviewStatus = "Hired"
)

type AnalysisStatus string

const (
	AnalysisStatusUnknown      AnalysisStatus = "Unknown"
	AnalysisStatusInEvaluation AnalysisStatus = "In evaluation"
	AnalysisStatusEvaluated    AnalysisStatus = "Evaluated"
	AnalysisStatusApproved     AnalysisStatus = "Approved"
	AnalysisStatusRejected     AnalysisStatus = "Rejected"
	AnalysisStatusHired        AnalysisStatus = "Hired"
	AnalysisStatusNotHired     AnalysisStatus = "Not hired"
)

type SkillCategory string

const (
	SkillCategoryTechnical SkillCategory = "Technical"
	SkillCategorySoft      SkillCategory = "Soft"
	SkillCategoryLanguage  SkillCategory = "Language"
	SkillCategoryOffice    SkillCategory = "Office"
)

// Proficiency is a 3-point ordinal scale for candidate skills.
type Proficiency int

const (
	ProficiencyBasic        Proficiency = 1
	ProficiencyIntermediate Proficiency = 2
	ProficiencyAdvanced     Proficiency = 3
)

var proficiencyLabels = map[Proficiency]string{
	ProficiencyBasic:        "Basic",
	ProficiencyIntermediate: "Intermediate",
	ProficiencyAdvanced:     "Advanced",
}

// ProficiencyLabel returns nil for levels outside the scale.
func ProficiencyLabel(level Proficiency) *string {
	label, ok := proficiencyLabels[level]
	if !ok {
		return nil
	}
	return &label
}

type EmploymentType string

const (
	EmploymentTypeFullTime EmploymentType = "Full-Time"
	EmploymentTypePartTime EmploymentType = "Part-Time"
)

type WorkMode string

const (
	WorkModeRemote WorkMode = "Remote"
	WorkModeOnSite WorkMode = "On-site"
	WorkModeHybrid WorkMode = "Hybrid"
)

type EducationLevel string

const (
	EducationLevelSecondary EducationLevel = "Secondary"
	EducationLevelTechnical EducationLevel = "Technical"
	EducationLevelBachelor  EducationLevel = "Bachelor"
	EducationLevelMaster    EducationLevel = "Master"
	EducationLevelDoctorate EducationLevel = "Doctorate"
)

type DocumentType string

const (
	DocumentTypeDNI             DocumentType = "Dni"
	DocumentTypeForeignerCard   DocumentType = "Foreigner card"
	DocumentTypePassport        DocumentType = "Passport"
)

type CompanySize string

const (
	CompanySizeSmall  CompanySize = "Small"
	CompanySizeMedium CompanySize = "Medium"
	CompanySizeBig    CompanySize = "Big"
)

type UserRole string

const (
	UserRoleCandidate UserRole = "candidate"
	UserRoleRecruiter UserRole = "recruiter"
	UserRoleAdmin     UserRole = "admin"
)
