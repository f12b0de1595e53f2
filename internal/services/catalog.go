package services

import (
	"fmt"

	"concept-visualizer/internal/models"
)

// SimulationDetails is what the central panel and footer show for one entry.
type SimulationDetails struct {
	Name        string
	Category    string
	URL         string
	Title       string
	Description string
	Hint        string
	Question    string
}

// CatalogService answers read-only questions about the simulation catalog.
type CatalogService struct {
	catalog     *models.Catalog
	assessments *models.AssessmentTable
}

func NewCatalogService(catalog *models.Catalog, assessments *models.AssessmentTable) *CatalogService {
	return &CatalogService{
		catalog:     catalog,
		assessments: assessments,
	}
}

func (cs *CatalogService) Names() []string {
	return cs.catalog.Names()
}

func (cs *CatalogService) Simulations() []models.Simulation {
	return cs.catalog.Simulations()
}

// First returns the entry selected at startup.
func (cs *CatalogService) First() (string, bool) {
	return cs.catalog.First()
}

// Describe builds the display texts for name.
func (cs *CatalogService) Describe(name string) (SimulationDetails, error) {
	sim, ok := cs.catalog.Get(name)
	if !ok {
		return SimulationDetails{}, fmt.Errorf("%w: %s", models.ErrUnknownSimulation, name)
	}

	return SimulationDetails{
		Name:     sim.Name,
		Category: sim.Category,
		URL:      sim.URL,
		Title:    sim.Name,
		Description: fmt.Sprintf(
			"Official PhET simulation will open in your browser when you click 'Launch Simulation'.\n\nURL: %s",
			sim.URL,
		),
		Hint:     "Hint: " + cs.assessments.Hint(sim.Name),
		Question: cs.assessments.Question(sim.Name),
	}, nil
}
