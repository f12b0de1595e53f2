package config

import (
	"fmt"
	"os"

	"concept-visualizer/internal/models"

	"gopkg.in/yaml.v3"
)

// CatalogFile is the on-disk form of a replacement catalog:
//
//	simulations:
//	  - name: "Physics — Projectile Motion"
//	    url: https://phet.colorado.edu/...
//	    assessment:
//	      hint: "..."
//	      expected: 45
//	      tolerance: 2
//	      unit: "°"
type CatalogFile struct {
	Simulations []CatalogEntry `yaml:"simulations"`
}

type CatalogEntry struct {
	models.Simulation `yaml:",inline"`
	Assessment        *models.Assessment `yaml:"assessment,omitempty"`
}

// LoadCatalog returns the catalog and assessment table to run with. An
// empty path selects the built-in PhET catalog.
func LoadCatalog(path string) (*models.Catalog, *models.AssessmentTable, error) {
	if path == "" {
		return models.NewDefaultCatalog(), models.NewDefaultAssessmentTable(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*models.Catalog, *models.AssessmentTable, error) {
	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(file.Simulations) == 0 {
		return nil, nil, fmt.Errorf("catalog has no simulations")
	}

	sims := make([]models.Simulation, 0, len(file.Simulations))
	assessments := make(map[string]models.Assessment)
	for _, entry := range file.Simulations {
		sims = append(sims, entry.Simulation)
		if entry.Assessment != nil {
			// also rejects .nan
			if !(entry.Assessment.Tolerance >= 0) {
				return nil, nil, fmt.Errorf("%s: tolerance must not be negative, got %v",
					entry.Name, entry.Assessment.Tolerance)
			}
			assessments[entry.Name] = *entry.Assessment
		}
	}

	catalog, err := models.NewCatalog(sims)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return catalog, models.NewAssessmentTable(assessments), nil
}
