package companyprovider

import (
	"github.com/pkg/errors"

	"fairhire-backend/db"
	store "fairhire-backend/lib/dicts/company/store"
	initchecker "fairhire-backend/lib/utils/init-checker"
	dictapimodels "fairhire-backend/models/api/dict"
	dbmodels "fairhire-backend/models/db"
)

type Provider interface {
	Create(data dictapimodels.CompanyData) (id string, err error)
	Update(id string, data dictapimodels.CompanyData) error
	Delete(id string) error
	Get(id string) (item dictapimodels.CompanyView, err error)
	List(search string) (list []dictapimodels.CompanyView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store store.Provider
}

func (i impl) Create(data dictapimodels.CompanyData) (string, error) {
	rec := dbmodels.Company{
		Name:      data.Name,
		LegalName: data.LegalName,
		TaxID:     data.TaxID,
		Industry:  data.Industry,
		Address:   data.Address,
		Phone:     data.Phone,
		Email:     data.Email,
		Size:      data.Size,
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, data dictapimodels.CompanyData) error {
	updMap := map[string]interface{}{
		"name":       data.Name,
		"legal_name": data.LegalName,
		"tax_id":     data.TaxID,
		"industry":   data.Industry,
		"address":    data.Address,
		"phone":      data.Phone,
		"email":      data.Email,
		"size":       data.Size,
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) Get(id string) (dictapimodels.CompanyView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.CompanyView{}, err
	}
	if rec == nil {
		return dictapimodels.CompanyView{}, errors.New("company not found")
	}
	return dictapimodels.CompanyConvert(*rec), nil
}

func (i impl) List(search string) ([]dictapimodels.CompanyView, error) {
	recList, err := i.store.List(search)
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.CompanyView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.CompanyConvert(rec))
	}
	return result, nil
}
