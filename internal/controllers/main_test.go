package controllers

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"concept-visualizer/internal/logger"
	"concept-visualizer/internal/models"
	"concept-visualizer/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeView struct {
	simulations []string
	details     *services.SimulationDetails
	result      *models.CheckResult
	prediction  string
	status      string
	errs        []error

	onSelect func(string)
	onLaunch func()
	onCheck  func(string)
}

func (f *fakeView) SetSimulations(names []string) { f.simulations = names }

func (f *fakeView) ShowSimulation(d services.SimulationDetails) { f.details = &d }

func (f *fakeView) ClearPrediction() { f.prediction = "" }

func (f *fakeView) ShowResult(r models.CheckResult) { f.result = &r }

func (f *fakeView) ClearResult() { f.result = nil }

func (f *fakeView) UpdateStatus(status string) { f.status = status }

func (f *fakeView) ShowError(err error) { f.errs = append(f.errs, err) }

func (f *fakeView) SetSelectHandler(h func(string)) { f.onSelect = h }

func (f *fakeView) SetLaunchHandler(h func()) { f.onLaunch = h }

func (f *fakeView) SetCheckHandler(h func(string)) { f.onCheck = h }

type countingAssessor struct {
	calls int
	inner Assessor
}

func (c *countingAssessor) Check(name, text string) models.CheckResult {
	c.calls++
	return c.inner.Check(name, text)
}

type recordingOpener struct {
	opened []string
	err    error
}

func (r *recordingOpener) OpenURL(u *url.URL) error {
	r.opened = append(r.opened, u.String())
	return r.err
}

type fixture struct {
	controller *MainController
	view       *fakeView
	opener     *recordingOpener
	assessor   *countingAssessor
	catalog    *models.Catalog
	table      *models.AssessmentTable
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	catalog := models.NewDefaultCatalog()
	table := models.NewDefaultAssessmentTable()
	opener := &recordingOpener{}
	assessor := &countingAssessor{inner: services.NewAssessmentService(table, logger.Nop())}

	controller := NewMainController(
		services.NewCatalogService(catalog, table),
		services.NewLaunchService(catalog, opener, logger.Nop()),
		assessor,
		models.NewSelectionState(),
		logger.Nop(),
	)
	view := &fakeView{}
	controller.SetMainView(view)

	return &fixture{
		controller: controller,
		view:       view,
		opener:     opener,
		assessor:   assessor,
		catalog:    catalog,
		table:      table,
	}
}

func TestSetMainViewWiresHandlers(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, f.catalog.Names(), f.view.simulations)
	require.NotNil(t, f.view.onSelect)
	require.NotNil(t, f.view.onLaunch)
	require.NotNil(t, f.view.onCheck)
}

func TestStartSelectsFirstSimulation(t *testing.T) {
	f := newFixture(t)
	f.controller.Start()

	require.NotNil(t, f.view.details)
	assert.Equal(t, "Physics — Projectile Motion", f.view.details.Title)
}

func TestSelectUpdatesEveryField(t *testing.T) {
	f := newFixture(t)

	for _, sim := range f.catalog.Simulations() {
		t.Run(sim.Name, func(t *testing.T) {
			f.view.result = &models.CheckResult{Message: "stale"}
			f.view.prediction = "12"

			f.view.onSelect(sim.Name)

			require.NotNil(t, f.view.details)
			assert.Equal(t, sim.Name, f.view.details.Title)
			assert.Contains(t, f.view.details.Description, "URL: "+sim.URL)
			assert.Equal(t, "Hint: "+f.table.Hint(sim.Name), f.view.details.Hint)
			assert.Nil(t, f.view.result)
			assert.Empty(t, f.view.prediction)
		})
	}
}

func TestSelectUnknownKeepsCurrent(t *testing.T) {
	f := newFixture(t)
	f.controller.SelectSimulation("Math — Probability")
	f.controller.SelectSimulation("Chemistry — Nope")

	assert.Equal(t, "Math — Probability", f.view.details.Title)
	assert.Contains(t, f.view.status, "Selection failed")

	f.controller.LaunchCurrent()
	require.Len(t, f.opener.opened, 1)
	assert.Equal(t, "https://phet.colorado.edu/sims/html/probability/latest/probability_en.html", f.opener.opened[0])
}

func TestLaunchWithoutSelectionIsNoop(t *testing.T) {
	f := newFixture(t)
	f.view.onLaunch()
	assert.Empty(t, f.opener.opened)
}

func TestLaunchOpensCurrentURL(t *testing.T) {
	f := newFixture(t)

	for _, sim := range f.catalog.Simulations() {
		f.view.onSelect(sim.Name)
		f.view.onLaunch()
		assert.Equal(t, sim.URL, f.opener.opened[len(f.opener.opened)-1])
	}
	assert.Len(t, f.opener.opened, f.catalog.Len())
}

func TestLaunchFailureIsReported(t *testing.T) {
	f := newFixture(t)
	f.opener.err = errors.New("no browser")

	f.controller.Start()
	f.controller.LaunchCurrent()

	assert.Contains(t, f.view.status, "Launch failed")
	assert.Contains(t, f.view.status, "no browser")
	require.Len(t, f.view.errs, 1)
	assert.ErrorContains(t, f.view.errs[0], "Physics — Projectile Motion")
	assert.ErrorContains(t, f.view.errs[0], "no browser")
}

func TestEmptyPredictionSkipsAssessor(t *testing.T) {
	f := newFixture(t)
	f.controller.Start()

	for _, input := range []string{"", "   ", "\t\n"} {
		f.view.onCheck(input)
		require.NotNil(t, f.view.result)
		assert.Equal(t, "Enter a number to check.", f.view.result.Message)
		assert.False(t, f.view.result.OK)
	}
	assert.Zero(t, f.assessor.calls)
}

func TestCheckPredictionUsesCurrentSimulation(t *testing.T) {
	f := newFixture(t)
	f.controller.SelectSimulation("Math — Probability")

	f.view.onCheck("50")
	require.NotNil(t, f.view.result)
	assert.True(t, f.view.result.OK)
	assert.Equal(t, 1, f.assessor.calls)

	f.view.onCheck("abc")
	assert.Equal(t, models.MsgInvalidPrediction, f.view.result.Message)
	assert.False(t, f.view.result.OK)
}

func TestShutdownCancelsLaunches(t *testing.T) {
	f := newFixture(t)
	f.controller.Start()
	f.controller.Shutdown()

	f.controller.LaunchCurrent()
	assert.Empty(t, f.opener.opened)
	assert.Contains(t, f.view.status, context.Canceled.Error())
	assert.Empty(t, f.view.errs)
}
