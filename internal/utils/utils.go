package utils

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/liftcalc/internal/models"
)

func ParseScenariosFromTOML(path string) (*models.ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file models.ScenarioFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	return &file, nil
}
