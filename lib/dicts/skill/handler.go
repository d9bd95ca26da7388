package skillprovider

import (
	"github.com/pkg/errors"

	"fairhire-backend/db"
	store "fairhire-backend/lib/dicts/skill/store"
	initchecker "fairhire-backend/lib/utils/init-checker"
	"fairhire-backend/models"
	dictapimodels "fairhire-backend/models/api/dict"
	dbmodels "fairhire-backend/models/db"
)

type Provider interface {
	Create(data dictapimodels.SkillData) (id string, err error)
	Update(id string, data dictapimodels.SkillData) error
	Delete(id string) error
	Get(id string) (item dictapimodels.SkillView, err error)
	List(search string, category models.SkillCategory) (list []dictapimodels.SkillView, err error)
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

func (i impl) Create(data dictapimodels.SkillData) (string, error) {
	rec := dbmodels.Skill{
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, data dictapimodels.SkillData) error {
	updMap := map[string]interface{}{
		"name":        data.Name,
		"description": data.Description,
		"category":    data.Category,
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) Get(id string) (dictapimodels.SkillView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.SkillView{}, err
	}
	if rec == nil {
		return dictapimodels.SkillView{}, errors.New("skill not found")
	}
	return dictapimodels.SkillConvert(*rec), nil
}

func (i impl) List(search string, category models.SkillCategory) ([]dictapimodels.SkillView, error) {
	recList, err := i.store.List(search, category)
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.SkillView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.SkillConvert(rec))
	}
	return result, nil
}
