package dictapimodels

import (
	"github.com/pkg/errors"

	"fairhire-backend/models"
	dbmodels "fairhire-backend/models/db"
)

type CompanyData struct {
	Name      string             `json:"name"`
	LegalName string             `json:"legal_name"`
	TaxID     string             `json:"tax_id"`
	Industry  string             `json:"industry"`
	Address   string             `json:"address"`
	Phone     string             `json:"phone"`
	Email     string             `json:"email"`
	Size      models.CompanySize `json:"size"`
}

func (d CompanyData) Validate() error {
	if d.Name == "" {
		return errors.New("company name is not specified")
	}
	return nil
}

type CompanyView struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	LegalName string             `json:"legal_name,omitempty"`
	TaxID     string             `json:"tax_id,omitempty"`
	Industry  string             `json:"industry,omitempty"`
	Address   string             `json:"address,omitempty"`
	Phone     string             `json:"phone,omitempty"`
	Email     string             `json:"email,omitempty"`
	Size      models.CompanySize `json:"size,omitempty"`
}

func CompanyConvert(rec dbmodels.Company) CompanyView {
	return CompanyView{
		ID:        rec.ID,
		Name:      rec.Name,
		LegalName: rec.LegalName,
		TaxID:     rec.TaxID,
		Industry:  rec.Industry,
		Address:   rec.Address,
		Phone:     rec.Phone,
		Email:     rec.Email,
		Size:      rec.Size,
	}
}
