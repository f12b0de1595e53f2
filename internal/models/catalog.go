package models

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
)

var (
	ErrUnknownSimulation   = errors.New("unknown simulation")
	ErrDuplicateSimulation = errors.New("duplicate simulation")
	ErrInvalidURL          = errors.New("invalid simulation URL")
)

// categorySeparator splits "Physics — Projectile Motion" into category and topic.
const categorySeparator = " — "

// Simulation is a third-party interactive web page identified by name and URL.
type Simulation struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category,omitempty"`
	URL      string `yaml:"url"`
}

// Catalog is an ordered, name-indexed set of simulations.
type Catalog struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]Simulation
}

// DefaultSimulations returns the built-in PhET catalog in display order.
func DefaultSimulations() []Simulation {
	return []Simulation{
		{
			Name: "Physics — Projectile Motion",
			URL:  "https://phet.colorado.edu/sims/html/projectile-motion/latest/projectile-motion_en.html",
		},
		{
			Name: "Math — Probability",
			URL:  "https://phet.colorado.edu/sims/html/probability/latest/probability_en.html",
		},
		{
			Name: "Biology — Diffusion & Osmosis",
			URL:  "https://phet.colorado.edu/sims/html/diffusion-and-osmosis/latest/diffusion-and-osmosis_en.html",
		},
	}
}

// NewCatalog builds a catalog, validating every entry.
func NewCatalog(sims []Simulation) (*Catalog, error) {
	c := &Catalog{
		order:   make([]string, 0, len(sims)),
		entries: make(map[string]Simulation, len(sims)),
	}
	for _, sim := range sims {
		if err := c.Add(sim); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// NewDefaultCatalog returns the built-in catalog.
func NewDefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultSimulations())
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// Add appends a simulation to the end of the catalog.
func (c *Catalog) Add(sim Simulation) error {
	sim.Name = strings.TrimSpace(sim.Name)
	sim.URL = strings.TrimSpace(sim.URL)
	if sim.Name == "" {
		return fmt.Errorf("simulation name is empty")
	}
	if err := validateURL(sim.URL); err != nil {
		return fmt.Errorf("%s: %w", sim.Name, err)
	}
	if sim.Category == "" {
		sim.Category = CategoryOf(sim.Name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[sim.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSimulation, sim.Name)
	}
	c.entries[sim.Name] = sim
	c.order = append(c.order, sim.Name)
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return nil
}

// CategoryOf returns the part of a name before " — ", or "General".
func CategoryOf(name string) string {
	if idx := strings.Index(name, categorySeparator); idx > 0 {
		return strings.TrimSpace(name[:idx])
	}
	return "General"
}

// Names returns simulation names in display order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// Simulations returns all entries in display order.
func (c *Catalog) Simulations() []Simulation {
	c.mu.RLock()
	defer c.mu.RUnlock()

	sims := make([]Simulation, 0, len(c.order))
	for _, name := range c.order {
		sims = append(sims, c.entries[name])
	}
	return sims
}

func (c *Catalog) Get(name string) (Simulation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	sim, ok := c.entries[name]
	return sim, ok
}

// URL returns the literal URL registered for name.
func (c *Catalog) URL(name string) (string, error) {
	sim, ok := c.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownSimulation, name)
	}
	return sim.URL, nil
}

// First returns the first simulation name, or false for an empty catalog.
func (c *Catalog) First() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.order) == 0 {
		return "", false
	}
	return c.order[0], true
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}
