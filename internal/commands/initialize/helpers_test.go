package initialize

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/indaco/poet/internal/search"
)

var errScriptExhausted = errors.New("mock prompter: no scripted answer left")

// MockPrompter replays scripted answers in order, one queue per prompt kind.
// Input answers rejected by the prompt's validator are recorded and skipped,
// the way a real prompt re-asks until the value is valid.
type MockPrompter struct {
	Confirms []bool
	Inputs   []string
	Suggests []string
	Selects  []string

	ConfirmErr error

	ConfirmTitles    []string
	InputTitles      []string
	InputDefaults    []string
	SelectOptions    [][]huh.Option[string]
	ValidationErrors []error
}

func (m *MockPrompter) Confirm(title string, defaultYes bool) (bool, error) {
	m.ConfirmTitles = append(m.ConfirmTitles, title)
	if m.ConfirmErr != nil {
		return false, m.ConfirmErr
	}
	if len(m.Confirms) == 0 {
		return false, errScriptExhausted
	}
	v := m.Confirms[0]
	m.Confirms = m.Confirms[1:]
	return v, nil
}

func (m *MockPrompter) Input(title, description, defaultValue string, validate func(string) error) (string, error) {
	m.InputTitles = append(m.InputTitles, title)
	m.InputDefaults = append(m.InputDefaults, defaultValue)
	for len(m.Inputs) > 0 {
		v := m.Inputs[0]
		m.Inputs = m.Inputs[1:]
		if validate != nil {
			if err := validate(v); err != nil {
				m.ValidationErrors = append(m.ValidationErrors, err)
				continue
			}
		}
		return v, nil
	}
	return "", errScriptExhausted
}

func (m *MockPrompter) Suggest(title, description string, suggestions []string) (string, error) {
	if len(m.Suggests) == 0 {
		return "", errScriptExhausted
	}
	v := m.Suggests[0]
	m.Suggests = m.Suggests[1:]
	return v, nil
}

func (m *MockPrompter) Select(title string, options []huh.Option[string]) (string, error) {
	m.SelectOptions = append(m.SelectOptions, options)
	if len(m.Selects) == 0 {
		return "", errScriptExhausted
	}
	v := m.Selects[0]
	m.Selects = m.Selects[1:]
	return v, nil
}

// stubSearcher returns canned candidates per query.
type stubSearcher struct {
	results map[string]*search.Candidates
	queries []string
}

func (s *stubSearcher) Search(_ context.Context, query string) *search.Candidates {
	s.queries = append(s.queries, query)
	if c, ok := s.results[query]; ok {
		return c
	}
	return search.NewCandidates()
}

func candidates(pairs ...string) *search.Candidates {
	c := search.NewCandidates()
	for i := 0; i+1 < len(pairs); i += 2 {
		c.Set(pairs[i], pairs[i+1])
	}
	return c
}

func numberedCandidates(n int) *search.Candidates {
	c := search.NewCandidates()
	for i := range n {
		c.Set(fmt.Sprintf("pkg%02d", i), fmt.Sprintf("1.%d.0", i))
	}
	return c
}

func optionValues(options []huh.Option[string]) []string {
	values := make([]string, len(options))
	for i, o := range options {
		values[i] = o.Value
	}
	return values
}
