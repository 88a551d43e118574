package evals

import (
	"errors"
	"strings"
	"testing"
)

// mapSelector returns canned selections keyed by input. Inputs without an
// entry produce an error, like a selector that refused to answer.
type mapSelector struct {
	selections map[string]selection
}

type selection struct {
	tool string
	args map[string]any
}

func (s *mapSelector) SelectTool(input string) (string, map[string]any, error) {
	sel, ok := s.selections[input]
	if !ok {
		return "", nil, errors.New("no selection for input")
	}
	return sel.tool, sel.args, nil
}

func perfectSelector(suite *Suite) *mapSelector {
	selections := make(map[string]selection)
	for _, c := range suite.Cases {
		selections[c.Input] = selection{tool: c.ExpectedTool, args: c.ExpectedArgs}
	}
	return &mapSelector{selections: selections}
}

func TestDefaultSuiteValid(t *testing.T) {
	suite := DefaultSuite()

	if len(suite.Cases) == 0 {
		t.Fatal("Default suite should not be empty")
	}
	if err := suite.Validate(); err != nil {
		t.Errorf("Default suite failed validation: %v", err)
	}
}

func TestValidate_UnknownTool(t *testing.T) {
	tests := []struct {
		name    string
		suite   Suite
		wantErr string
	}{
		{
			name: "unknown expected tool",
			suite: Suite{
				Name: "bad",
				Cases: []SelectionCase{
					{ID: "c1", Input: "x", ExpectedTool: "wiki_rename_page"},
				},
			},
			wantErr: "unknown expected tool",
		},
		{
			name: "unknown excluded tool",
			suite: Suite{
				Name: "bad",
				Cases: []SelectionCase{
					{ID: "c1", Input: "x", ExpectedTool: "wiki_search", NotTools: []string{"wiki_purge"}},
				},
			},
			wantErr: "unknown excluded tool",
		},
		{
			name: "empty case ID",
			suite: Suite{
				Name: "bad",
				Cases: []SelectionCase{
					{Input: "x", ExpectedTool: "wiki_search"},
				},
			},
			wantErr: "empty ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.suite.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestEvaluate_PerfectSelector(t *testing.T) {
	suite := DefaultSuite()
	metrics, results := Evaluate(suite, perfectSelector(suite))

	if metrics.Total != len(suite.Cases) {
		t.Errorf("Total = %d, want %d", metrics.Total, len(suite.Cases))
	}
	if metrics.Failed != 0 {
		t.Errorf("Failed = %d, want 0; details: %v", metrics.Failed, metrics.FailedDetails)
	}
	if metrics.Accuracy != 1.0 {
		t.Errorf("Accuracy = %f, want 1.0", metrics.Accuracy)
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("Case %s failed: %v", r.CaseID, r.Errors)
		}
	}
}

func TestEvaluate_ConfusedSelector(t *testing.T) {
	suite := &Suite{
		Name: "confusion",
		Cases: []SelectionCase{
			{
				ID:           "search-pages",
				Input:        "find pages about cats",
				ExpectedTool: "wiki_search",
				NotTools:     []string{"wikibase_search_entities"},
			},
		},
	}

	selector := &mapSelector{selections: map[string]selection{
		"find pages about cats": {tool: "wikibase_search_entities"},
	}}

	metrics, results := Evaluate(suite, selector)

	if metrics.Failed != 1 {
		t.Fatalf("Failed = %d, want 1", metrics.Failed)
	}
	result := results[0]
	if result.Passed {
		t.Error("Expected case to fail")
	}
	// Both the wrong-tool and confusable-tool checks should fire.
	if len(result.Errors) != 2 {
		t.Errorf("Errors = %v, want wrong-tool and confusable-tool entries", result.Errors)
	}
	if metrics.ByTool["wiki_search"].FalseNegatives != 1 {
		t.Error("Expected a false negative recorded for wiki_search")
	}
	if metrics.ByTool["wikibase_search_entities"].FalsePositives != 1 {
		t.Error("Expected a false positive recorded for wikibase_search_entities")
	}
}

func TestEvaluate_ArgumentMismatch(t *testing.T) {
	suite := &Suite{
		Name: "arguments",
		Cases: []SelectionCase{
			{
				ID:           "get-entity",
				Input:        "fetch entity Q42",
				ExpectedTool: "wikibase_get_entity",
				ExpectedArgs: map[string]any{"id": "Q42"},
			},
			{
				ID:           "search-limit",
				Input:        "find 5 pages about cats",
				ExpectedTool: "wiki_search",
				ExpectedArgs: map[string]any{"query": "cats", "limit": 5},
			},
		},
	}

	selector := &mapSelector{selections: map[string]selection{
		"fetch entity Q42": {tool: "wikibase_get_entity", args: map[string]any{"id": "Q13"}},
		// Limit arrives as float64, as it would after JSON decoding.
		"find 5 pages about cats": {tool: "wiki_search", args: map[string]any{"query": "cats", "limit": float64(5)}},
	}}

	metrics, results := Evaluate(suite, selector)

	if metrics.Passed != 1 || metrics.Failed != 1 {
		t.Fatalf("Passed/Failed = %d/%d, want 1/1", metrics.Passed, metrics.Failed)
	}
	for _, r := range results {
		switch r.CaseID {
		case "get-entity":
			if r.Passed {
				t.Error("get-entity should fail on wrong id")
			}
		case "search-limit":
			if !r.Passed {
				t.Errorf("search-limit should pass with float64 limit: %v", r.Errors)
			}
		}
	}
}

func TestEvaluate_SelectorError(t *testing.T) {
	suite := &Suite{
		Name: "errors",
		Cases: []SelectionCase{
			{ID: "c1", Input: "unanswerable", ExpectedTool: "wiki_get_page"},
		},
	}

	metrics, results := Evaluate(suite, &mapSelector{selections: map[string]selection{}})

	if metrics.Failed != 1 {
		t.Errorf("Failed = %d, want 1", metrics.Failed)
	}
	if len(results[0].Errors) == 0 || !strings.Contains(results[0].Errors[0], "selector error") {
		t.Errorf("Expected selector error in %v", results[0].Errors)
	}
}

func TestCompareValues(t *testing.T) {
	tests := []struct {
		name     string
		expected any
		actual   any
		want     bool
	}{
		{"equal strings", "Q42", "Q42", true},
		{"different strings", "Q42", "Q13", false},
		{"int vs json float64", 10, float64(10), true},
		{"int vs wrong float64", 10, float64(11), false},
		{"float vs float64", 0.5, float64(0.5), true},
		{"both nil", nil, nil, true},
		{"expected nil only", nil, "x", false},
		{"actual nil only", "x", nil, false},
		{"equal bools", true, true, true},
		{"equal slices", []any{"a", "b"}, []any{"a", "b"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compareValues(tt.expected, tt.actual); got != tt.want {
				t.Errorf("compareValues(%v, %v) = %v, want %v", tt.expected, tt.actual, got, tt.want)
			}
		})
	}
}

func TestFormatMetrics(t *testing.T) {
	metrics := &Metrics{
		Total:    4,
		Passed:   3,
		Failed:   1,
		Accuracy: 0.75,
		FailedDetails: []string{
			"[c2] find cats: wrong tool: expected wiki_search, got wikibase_search_entities",
		},
	}

	out := FormatMetrics(metrics, "tool selection")

	for _, want := range []string{
		"=== tool selection ===",
		"Total: 4 cases",
		"Passed: 3 (75.0%)",
		"Failed: 1",
		"Failed Cases:",
		"wrong tool",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatMetrics_NoFailures(t *testing.T) {
	metrics := &Metrics{Total: 2, Passed: 2, Accuracy: 1.0}

	out := FormatMetrics(metrics, "clean run")

	if strings.Contains(out, "Failed Cases:") {
		t.Error("Clean run should not print a failed cases section")
	}
}
