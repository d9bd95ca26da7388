package dictapimodels

import (
	"github.com/pkg/errors"

	dbmodels "fairhire-backend/models/db"
)

type JobPositionData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (d JobPositionData) Validate() error {
	if d.Name == "" {
		return errors.New("position name is not specified")
	}
	return nil
}

type JobPositionView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func JobPositionConvert(rec dbmodels.JobPosition) JobPositionView {
	return JobPositionView{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
	}
}
