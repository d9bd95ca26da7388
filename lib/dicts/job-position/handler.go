package jobpositionprovider

import (
	"github.com/pkg/errors"

	"fairhire-backend/db"
	store "fairhire-backend/lib/dicts/job-position/store"
	initchecker "fairhire-backend/lib/utils/init-checker"
	dictapimodels "fairhire-backend/models/api/dict"
	dbmodels "fairhire-backend/models/db"
)

type Provider interface {
	Create(data dictapimodels.JobPositionData) (id string, err error)
	Update(id string, data dictapimodels.JobPositionData) error
	Delete(id string) error
	Get(id string) (item dictapimodels.JobPositionView, err error)
	List(search string) (list []dictapimodels.JobPositionView, err error)
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

func (i impl) Create(data dictapimodels.JobPositionData) (string, error) {
	rec := dbmodels.JobPosition{
		Name:        data.Name,
		Description: data.Description,
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, data dictapimodels.JobPositionData) error {
	updMap := map[string]interface{}{
		"name":        data.Name,
		"description": data.Description,
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) Get(id string) (dictapimodels.JobPositionView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.JobPositionView{}, err
	}
	if rec == nil {
		return dictapimodels.JobPositionView{}, errors.New("job position not found")
	}
	return dictapimodels.JobPositionConvert(*rec), nil
}

func (i impl) List(search string) ([]dictapimodels.JobPositionView, error) {
	recList, err := i.store.List(search)
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.JobPositionView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.JobPositionConvert(rec))
	}
	return result, nil
}
