package initialize

import (
	"bytes"
	"context"
	"errors"
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/indaco/poet/internal/manifest"
	"github.com/indaco/poet/internal/printer"
	"github.com/indaco/poet/internal/search"
)

func runLoop(t *testing.T, p *MockPrompter, s *stubSearcher, reserved ...string) (manifest.Dependencies, string, error) {
	t.Helper()
	var buf bytes.Buffer
	deps, err := NewDependencyLoop(p, s, printer.New(&buf), "main", reserved...).Run(context.Background())
	return deps, buf.String(), err
}

func TestDependencyLoop_Run(t *testing.T) {
	tests := []struct {
		name     string
		confirms []bool
		inputs   []string
		selects  []string
		results  map[string]*search.Candidates
		reserved []string
		want     manifest.Dependencies
		wantOut  []string
	}{
		{
			name:     "single package with latest version",
			confirms: []bool{true, false},
			inputs:   []string{"reque", ""},
			selects:  []string{"requests"},
			results:  map[string]*search.Candidates{"reque": candidates("requests", "2.31.0", "requests-oauthlib", "1.3.1")},
			want:     manifest.Dependencies{"requests": "^2.31.0"},
			wantOut:  []string{"Found 2 packages matching reque", "Using version ^2.31.0 for requests"},
		},
		{
			name:     "declined immediately",
			confirms: []bool{false},
			want:     manifest.Dependencies{},
		},
		{
			name:     "blank query ends the loop",
			confirms: []bool{true},
			inputs:   []string{""},
			want:     manifest.Dependencies{},
		},
		{
			name:     "whitespace query ends the loop",
			confirms: []bool{true},
			inputs:   []string{"   "},
			want:     manifest.Dependencies{},
		},
		{
			name:     "no results returns to the question",
			confirms: []bool{true, false},
			inputs:   []string{"zzzz"},
			want:     manifest.Dependencies{},
			wantOut:  []string{"Found 0 packages matching zzzz"},
		},
		{
			name:     "literal override is kept verbatim",
			confirms: []bool{true, false},
			inputs:   []string{"flask", ">=2.0,<3.0"},
			selects:  []string{"flask"},
			results:  map[string]*search.Candidates{"flask": candidates("flask", "3.0.0")},
			want:     manifest.Dependencies{"flask": ">=2.0,<3.0"},
			wantOut:  []string{"Using version >=2.0,<3.0 for flask"},
		},
		{
			name:     "missing version resolves to any",
			confirms: []bool{true, false},
			inputs:   []string{"odd", ""},
			selects:  []string{"oddpkg"},
			results:  map[string]*search.Candidates{"odd": candidates("oddpkg", "")},
			want:     manifest.Dependencies{"oddpkg": "*"},
		},
		{
			name:     "same package twice keeps the last constraint",
			confirms: []bool{true, true, false},
			inputs:   []string{"flask", "", "flask", "~2.3"},
			selects:  []string{"flask", "flask"},
			results:  map[string]*search.Candidates{"flask": candidates("flask", "3.0.0")},
			want:     manifest.Dependencies{"flask": "~2.3"},
		},
		{
			name:     "multiple packages",
			confirms: []bool{true, true, false},
			inputs:   []string{"flask", "", "pytest", ""},
			selects:  []string{"flask", "pytest"},
			results: map[string]*search.Candidates{
				"flask":  candidates("flask", "3.0.0"),
				"pytest": candidates("pytest", "8.0.0"),
			},
			want: manifest.Dependencies{"flask": "^3.0.0", "pytest": "^8.0.0"},
		},
		{
			name:     "reserved name is refused",
			confirms: []bool{true, false},
			inputs:   []string{"python"},
			selects:  []string{"python"},
			results:  map[string]*search.Candidates{"python": candidates("python", "0.0.1")},
			reserved: []string{manifest.PythonKey},
			want:     manifest.Dependencies{},
			wantOut:  []string{`"python" is reserved`},
		},
		{
			name:     "selection past the display window resolves against all results",
			confirms: []bool{true, false},
			inputs:   []string{"pkg", ""},
			selects:  []string{"pkg12"},
			results:  map[string]*search.Candidates{"pkg": numberedCandidates(15)},
			want:     manifest.Dependencies{"pkg12": "^1.12.0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &MockPrompter{Confirms: tt.confirms, Inputs: tt.inputs, Selects: tt.selects}
			s := &stubSearcher{results: tt.results}

			got, out, err := runLoop(t, p, s, tt.reserved...)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if !maps.Equal(got, tt.want) {
				t.Errorf("Run() = %v, want %v", got, tt.want)
			}
			for _, want := range tt.wantOut {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q, got:\n%s", want, out)
				}
			}
			if len(p.Confirms) != 0 {
				t.Errorf("unused confirm answers: %v", p.Confirms)
			}
		})
	}
}

func TestDependencyLoop_TruncatesToTenOptions(t *testing.T) {
	p := &MockPrompter{
		Confirms: []bool{true, false},
		Inputs:   []string{"pkg", ""},
		Selects:  []string{"pkg03"},
	}
	s := &stubSearcher{results: map[string]*search.Candidates{"pkg": numberedCandidates(15)}}

	_, out, err := runLoop(t, p, s)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.Contains(out, "Found 15 packages matching pkg") {
		t.Errorf("output missing match count, got:\n%s", out)
	}
	if !strings.Contains(out, "Showing the first 10 matches") {
		t.Errorf("output missing truncation notice, got:\n%s", out)
	}

	if len(p.SelectOptions) != 1 {
		t.Fatalf("expected one select prompt, got %d", len(p.SelectOptions))
	}
	want := numberedCandidates(15).Limit(search.MaxDisplayed).Names()
	if got := optionValues(p.SelectOptions[0]); !slices.Equal(got, want) {
		t.Errorf("options = %v, want %v", got, want)
	}
}

func TestDependencyLoop_NoTruncationNoticeAtTen(t *testing.T) {
	p := &MockPrompter{
		Confirms: []bool{true, false},
		Inputs:   []string{"pkg", ""},
		Selects:  []string{"pkg00"},
	}
	s := &stubSearcher{results: map[string]*search.Candidates{"pkg": numberedCandidates(10)}}

	_, out, err := runLoop(t, p, s)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if strings.Contains(out, "Showing the first") {
		t.Errorf("unexpected truncation notice, got:\n%s", out)
	}
	if got := len(p.SelectOptions[0]); got != 10 {
		t.Errorf("expected 10 options, got %d", got)
	}
}

func TestDependencyLoop_SkipsUnnamedCandidates(t *testing.T) {
	p := &MockPrompter{
		Confirms: []bool{true, false},
		Inputs:   []string{"x", ""},
		Selects:  []string{"xpkg"},
	}
	s := &stubSearcher{results: map[string]*search.Candidates{"x": candidates("", "1.0", "xpkg", "2.0")}}

	if _, _, err := runLoop(t, p, s); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := optionValues(p.SelectOptions[0])
	if !slices.Equal(got, []string{"xpkg"}) {
		t.Errorf("options = %v, want [xpkg]", got)
	}
	if label := p.SelectOptions[0][0].Key; label != "xpkg (2.0)" {
		t.Errorf("label = %q, want %q", label, "xpkg (2.0)")
	}
}

func TestDependencyLoop_Titles(t *testing.T) {
	p := &MockPrompter{
		Confirms: []bool{true, false},
		Inputs:   []string{"flask", ""},
		Selects:  []string{"flask"},
	}
	s := &stubSearcher{results: map[string]*search.Candidates{"flask": candidates("flask", "3.0.0")}}

	var buf bytes.Buffer
	if _, err := NewDependencyLoop(p, s, printer.New(&buf), "development").Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{
		"Would you like to define your development dependencies interactively?",
		"Would you like to add another development dependency?",
	}
	if !slices.Equal(p.ConfirmTitles, want) {
		t.Errorf("confirm titles = %v, want %v", p.ConfirmTitles, want)
	}
	if !slices.Equal(s.queries, []string{"flask"}) {
		t.Errorf("queries = %v, want [flask]", s.queries)
	}
}

func TestDependencyLoop_PromptErrors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("confirm", func(t *testing.T) {
		p := &MockPrompter{ConfirmErr: boom}
		if _, _, err := runLoop(t, p, &stubSearcher{}); !errors.Is(err, boom) {
			t.Errorf("expected boom, got %v", err)
		}
	})

	t.Run("query input", func(t *testing.T) {
		p := &MockPrompter{Confirms: []bool{true}}
		if _, _, err := runLoop(t, p, &stubSearcher{}); !errors.Is(err, errScriptExhausted) {
			t.Errorf("expected exhausted script error, got %v", err)
		}
	})

	t.Run("select", func(t *testing.T) {
		p := &MockPrompter{Confirms: []bool{true}, Inputs: []string{"flask"}}
		s := &stubSearcher{results: map[string]*search.Candidates{"flask": candidates("flask", "3.0.0")}}
		if _, _, err := runLoop(t, p, s); !errors.Is(err, errScriptExhausted) {
			t.Errorf("expected exhausted script error, got %v", err)
		}
	})

	t.Run("version input", func(t *testing.T) {
		p := &MockPrompter{Confirms: []bool{true}, Inputs: []string{"flask"}, Selects: []string{"flask"}}
		s := &stubSearcher{results: map[string]*search.Candidates{"flask": candidates("flask", "3.0.0")}}
		if _, _, err := runLoop(t, p, s); !errors.Is(err, errScriptExhausted) {
			t.Errorf("expected exhausted script error, got %v", err)
		}
	})
}

func TestFormatConstraint(t *testing.T) {
	all := candidates("flask", "3.0.0", "bare", "")

	tests := []struct {
		name     string
		pkg      string
		override string
		want     string
	}{
		{"latest", "flask", "", "^3.0.0"},
		{"whitespace override", "flask", "   ", "^3.0.0"},
		{"override", "flask", "==2.0.1", "==2.0.1"},
		{"override keeps spacing", "flask", " >=2 ", " >=2 "},
		{"no version", "bare", "", "*"},
		{"unknown package", "nope", "", "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatConstraint(all, tt.pkg, tt.override); got != tt.want {
				t.Errorf("formatConstraint() = %q, want %q", got, tt.want)
			}
		})
	}
}
