package models

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
)

const (
	DefaultHint = "Try interacting with the simulation and make a prediction."

	MsgEmptyPrediction   = "Enter a number to check."
	MsgInvalidPrediction = "Please enter a valid number."
	MsgNoAssessment      = "No prediction check is available for this simulation."
)

// Assessment is the hint and expected answer attached to one simulation.
type Assessment struct {
	Hint      string   `yaml:"hint"`
	Question  string   `yaml:"question,omitempty"`
	Expected  *float64 `yaml:"expected,omitempty"`
	Tolerance float64  `yaml:"tolerance,omitempty"`
	Unit      string   `yaml:"unit,omitempty"`
}

// Outcome classifies a prediction check.
type Outcome int

const (
	OutcomeEmpty Outcome = iota
	OutcomeInvalid
	OutcomeUnavailable
	OutcomeCorrect
	OutcomeIncorrect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEmpty:
		return "empty"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeUnavailable:
		return "unavailable"
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// CheckResult is what the prediction label shows.
type CheckResult struct {
	OK      bool
	Outcome Outcome
	Message string
}

// EmptyPredictionResult is reported for blank input without consulting any table.
func EmptyPredictionResult() CheckResult {
	return CheckResult{Outcome: OutcomeEmpty, Message: MsgEmptyPrediction}
}

// AssessmentTable maps simulation names to assessments.
type AssessmentTable struct {
	mu      sync.RWMutex
	entries map[string]Assessment
}

func expect(v float64) *float64 { return &v }

// DefaultAssessments returns hints and answers for the built-in catalog.
func DefaultAssessments() map[string]Assessment {
	return map[string]Assessment{
		"Physics — Projectile Motion": {
			Hint:      "Ignoring air resistance, which launch angle gives the longest range on level ground? Predict it in degrees.",
			Question:  "Launch angle for maximum range",
			Expected:  expect(45),
			Tolerance: 2,
			Unit:      "°",
		},
		"Math — Probability": {
			Hint:      "Flip a fair coin many times. What percentage of flips do you expect to land heads?",
			Question:  "Percentage of heads",
			Expected:  expect(50),
			Tolerance: 2,
			Unit:      "%",
		},
		"Biology — Diffusion & Osmosis": {
			Hint:      "With a permeable membrane and equal volumes, what percentage of the particles ends up on the left side at equilibrium?",
			Question:  "Particles on the left at equilibrium",
			Expected:  expect(50),
			Tolerance: 5,
			Unit:      "%",
		},
	}
}

func NewAssessmentTable(entries map[string]Assessment) *AssessmentTable {
	t := &AssessmentTable{entries: make(map[string]Assessment, len(entries))}
	for name, a := range entries {
		t.entries[name] = a
	}
	return t
}

func NewDefaultAssessmentTable() *AssessmentTable {
	return NewAssessmentTable(DefaultAssessments())
}

func (t *AssessmentTable) Get(name string) (Assessment, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	a, ok := t.entries[name]
	return a, ok
}

// Hint returns the assessment hint for name, or DefaultHint.
func (t *AssessmentTable) Hint(name string) string {
	if a, ok := t.Get(name); ok && strings.TrimSpace(a.Hint) != "" {
		return a.Hint
	}
	return DefaultHint
}

// Question returns what the prediction for name should answer, if the
// table says.
func (t *AssessmentTable) Question(name string) string {
	a, _ := t.Get(name)
	return strings.TrimSpace(a.Question)
}

// Validate reports assessment keys that do not name a catalog entry.
func (t *AssessmentTable) Validate(catalog *Catalog) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var orphans []string
	for name := range t.entries {
		if _, ok := catalog.Get(name); !ok {
			orphans = append(orphans, name)
		}
	}
	if len(orphans) == 0 {
		return nil
	}
	sort.Strings(orphans)
	return fmt.Errorf("%w: assessments without simulation: %s", ErrUnknownSimulation, strings.Join(orphans, ", "))
}

// CheckPrediction compares the typed prediction with the expected answer for name.
func (t *AssessmentTable) CheckPrediction(name, text string) CheckResult {
	text = strings.TrimSpace(text)
	if text == "" {
		return EmptyPredictionResult()
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return CheckResult{Outcome: OutcomeInvalid, Message: MsgInvalidPrediction}
	}

	a, ok := t.Get(name)
	if !ok || a.Expected == nil {
		return CheckResult{Outcome: OutcomeUnavailable, Message: MsgNoAssessment}
	}

	delta := math.Abs(value - *a.Expected)
	if delta <= a.Tolerance+1e-9 {
		return CheckResult{
			OK:      true,
			Outcome: OutcomeCorrect,
			Message: fmt.Sprintf("Correct! Expected about %s%s.", formatNumber(*a.Expected), a.Unit),
		}
	}
	return CheckResult{
		Outcome: OutcomeIncorrect,
		Message: fmt.Sprintf("Not quite. Your prediction %s is off by %s%s; try again.",
			formatNumber(value), formatNumber(delta), a.Unit),
	}
}

// formatNumber prints at most four decimals; magnitudes from 1e12 up use
// exponent notation so the label stays short.
func formatNumber(v float64) string {
	if math.Abs(v) < 1e12 {
		return strconv.FormatFloat(math.Round(v*1e4)/1e4, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
