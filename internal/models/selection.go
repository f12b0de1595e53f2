package models

import "sync"

// SelectionState tracks the simulation the user is looking at.
type SelectionState struct {
	mu         sync.RWMutex
	current    string
	lastResult *CheckResult
	launches   int
}

func NewSelectionState() *SelectionState {
	return &SelectionState{}
}

// Select makes name current and forgets the previous check result.
func (s *SelectionState) Select(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = name
	s.lastResult = nil
}

// Current returns the selected name and whether anything is selected.
func (s *SelectionState) Current() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.current != ""
}

func (s *SelectionState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = ""
	s.lastResult = nil
}

func (s *SelectionState) SetLastResult(result CheckResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastResult = &result
}

func (s *SelectionState) LastResult() (CheckResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lastResult == nil {
		return CheckResult{}, false
	}
	return *s.lastResult, true
}

// RecordLaunch counts a browser launch for the session summary.
func (s *SelectionState) RecordLaunch() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.launches++
	return s.launches
}

func (s *SelectionState) Launches() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.launches
}
