package db

import (
	"encoding/csv"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	skillstore "fairhire-backend/lib/dicts/skill/store"
	"fairhire-backend/models"
	dbmodels "fairhire-backend/models/db"
)

func InitPreload() {
	fillSkills()
}

// fillSkills preloads the skill dictionary on an empty database.
func fillSkills() {
	store := skillstore.NewInstance(DB)
	list, err := store.List("", "")
	if err != nil {
		log.WithError(err).Error("skill dictionary preload failed")
		return
	}
	if len(list) > 0 {
		return
	}

	lines, err := readCsvFile("./static_preload/skills.csv", ';')
	if err != nil {
		log.WithError(err).Error("failed to load the skill dictionary file")
		return
	}
	for k, line := range lines {
		if len(line) < 3 {
			log.Errorf("failed to load the skill dictionary file, line %v", k)
			return
		}
		rec := dbmodels.Skill{
			Name:        line[0],
			Category:    models.SkillCategory(line[1]),
			Description: line[2],
		}
		if _, err = store.Create(rec); err != nil {
			log.
				WithError(err).
				WithField("name", rec.Name).
				Error("failed to add a dictionary skill")
			return
		}
	}

	log.Info("skill dictionary preloaded")
}

func readCsvFile(filePath string, comma rune) ([][]string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "file open error")
	}
	defer f.Close()

	csvReader := csv.NewReader(f)
	csvReader.Comma = comma
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "file parse error")
	}

	return records, nil
}
