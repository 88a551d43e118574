// Package evals provides an evaluation harness for MCP tool selection
// accuracy. It scores how reliably a selector (an LLM, or a mock in tests)
// maps natural language requests onto the server's wiki and wikibase tools,
// with special attention to commonly confused pairs like full-text page
// search versus entity search.
package evals

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/olgasafonova/wikibase-mcp-server/tools"
)

// SelectionCase is a single tool selection evaluation case.
type SelectionCase struct {
	ID           string
	Input        string
	ExpectedTool string
	ExpectedArgs map[string]any
	// NotTools lists tools that a confused selector is likely to pick for
	// this input; selecting any of them is an explicit failure.
	NotTools []string
}

// Suite groups selection cases under a name.
type Suite struct {
	Name  string
	Cases []SelectionCase
}

// Selector maps a natural language input to a tool name and arguments.
// An LLM client or a deterministic mock can implement it.
type Selector interface {
	SelectTool(input string) (toolName string, args map[string]any, err error)
}

// Result is the outcome of evaluating one case.
type Result struct {
	CaseID       string
	Input        string
	ExpectedTool string
	ActualTool   string
	Passed       bool
	Errors       []string
}

// Metrics aggregates a suite run.
type Metrics struct {
	Total         int
	Passed        int
	Failed        int
	Accuracy      float64
	ByTool        map[string]*ToolMetrics
	FailedDetails []string
}

// ToolMetrics tracks per-tool selection quality.
type ToolMetrics struct {
	ExpectedCount  int
	CorrectCount   int
	FalsePositives int
	FalseNegatives int
}

// Validate checks a suite against the server's declared tool catalog so
// cases cannot silently reference tools that do not exist.
func (s *Suite) Validate() error {
	known := map[string]bool{}
	for _, spec := range tools.AllTools {
		known[spec.Name] = true
	}

	for _, c := range s.Cases {
		if c.ID == "" {
			return fmt.Errorf("suite %s: case with empty ID", s.Name)
		}
		if !known[c.ExpectedTool] {
			return fmt.Errorf("suite %s case %s: unknown expected tool %q", s.Name, c.ID, c.ExpectedTool)
		}
		for _, nt := range c.NotTools {
			if !known[nt] {
				return fmt.Errorf("suite %s case %s: unknown excluded tool %q", s.Name, c.ID, nt)
			}
		}
	}
	return nil
}

// Evaluate runs every case in the suite against the selector.
func Evaluate(suite *Suite, selector Selector) (*Metrics, []Result) {
	metrics := &Metrics{
		ByTool: make(map[string]*ToolMetrics),
	}
	var results []Result

	for _, c := range suite.Cases {
		metrics.Total++
		metrics.toolMetrics(c.ExpectedTool).ExpectedCount++

		actualTool, actualArgs, err := selector.SelectTool(c.Input)

		result := Result{
			CaseID:       c.ID,
			Input:        c.Input,
			ExpectedTool: c.ExpectedTool,
			ActualTool:   actualTool,
			Passed:       true,
		}

		if err != nil {
			result.Passed = false
			result.Errors = append(result.Errors, fmt.Sprintf("selector error: %v", err))
		}

		if actualTool != c.ExpectedTool {
			result.Passed = false
			result.Errors = append(result.Errors,
				fmt.Sprintf("wrong tool: expected %s, got %s", c.ExpectedTool, actualTool))
			metrics.toolMetrics(c.ExpectedTool).FalseNegatives++
			metrics.toolMetrics(actualTool).FalsePositives++
		} else {
			metrics.toolMetrics(c.ExpectedTool).CorrectCount++
		}

		for _, forbidden := range c.NotTools {
			if actualTool == forbidden {
				result.Passed = false
				result.Errors = append(result.Errors,
					fmt.Sprintf("selected confusable tool: %s", forbidden))
			}
		}

		for key, expected := range c.ExpectedArgs {
			actual, exists := actualArgs[key]
			if !exists {
				result.Passed = false
				result.Errors = append(result.Errors,
					fmt.Sprintf("missing arg %s (expected %v)", key, expected))
			} else if !compareValues(expected, actual) {
				result.Passed = false
				result.Errors = append(result.Errors,
					fmt.Sprintf("wrong arg %s: expected %v, got %v", key, expected, actual))
			}
		}

		if result.Passed {
			metrics.Passed++
		} else {
			metrics.Failed++
			metrics.FailedDetails = append(metrics.FailedDetails,
				fmt.Sprintf("[%s] %s: %s", c.ID, c.Input, strings.Join(result.Errors, "; ")))
		}

		results = append(results, result)
	}

	if metrics.Total > 0 {
		metrics.Accuracy = float64(metrics.Passed) / float64(metrics.Total)
	}

	return metrics, results
}

func (m *Metrics) toolMetrics(tool string) *ToolMetrics {
	if m.ByTool[tool] == nil {
		m.ByTool[tool] = &ToolMetrics{}
	}
	return m.ByTool[tool]
}

// compareValues compares expected and actual values, tolerating the numeric
// widening JSON decoding introduces (everything arrives as float64).
func compareValues(expected, actual any) bool {
	if expected == nil && actual == nil {
		return true
	}
	if expected == nil || actual == nil {
		return false
	}

	ev := reflect.ValueOf(expected)
	av := reflect.ValueOf(actual)

	switch ev.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if av.Kind() == reflect.Float64 {
			return float64(ev.Int()) == av.Float()
		}
	case reflect.Float32, reflect.Float64:
		if av.Kind() == reflect.Float64 {
			return ev.Float() == av.Float()
		}
	}

	return reflect.DeepEqual(expected, actual)
}

// FormatMetrics returns a human-readable summary of an evaluation run.
func FormatMetrics(metrics *Metrics, suiteName string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("\n=== %s ===\n", suiteName))
	b.WriteString(fmt.Sprintf("Total: %d cases\n", metrics.Total))
	b.WriteString(fmt.Sprintf("Passed: %d (%.1f%%)\n", metrics.Passed, metrics.Accuracy*100))
	b.WriteString(fmt.Sprintf("Failed: %d\n", metrics.Failed))

	if len(metrics.FailedDetails) > 0 {
		b.WriteString("\nFailed Cases:\n")
		for _, detail := range metrics.FailedDetails {
			b.WriteString(fmt.Sprintf("  - %s\n", detail))
		}
	}

	return b.String()
}

// DefaultSuite covers the tool pairs most likely to be confused: page search
// versus entity search, edit versus create, and whole-entity edits versus
// single statements.
func DefaultSuite() *Suite {
	return &Suite{
		Name: "tool selection",
		Cases: []SelectionCase{
			{
				ID:           "search-pages",
				Input:        "find wiki pages about the French Revolution",
				ExpectedTool: "wiki_search",
				ExpectedArgs: map[string]any{"query": "French Revolution"},
				NotTools:     []string{"wikibase_search_entities"},
			},
			{
				ID:           "search-entities",
				Input:        "what is the Wikidata item for Douglas Adams",
				ExpectedTool: "wikibase_search_entities",
				ExpectedArgs: map[string]any{"query": "Douglas Adams"},
				NotTools:     []string{"wiki_search"},
			},
			{
				ID:           "read-page",
				Input:        "show me the Main Page",
				ExpectedTool: "wiki_get_page",
				ExpectedArgs: map[string]any{"title": "Main Page"},
				NotTools:     []string{"wiki_get_page_info"},
			},
			{
				ID:           "page-metadata",
				Input:        "when was the Main Page last edited and by whom",
				ExpectedTool: "wiki_get_page_info",
				ExpectedArgs: map[string]any{"title": "Main Page"},
				NotTools:     []string{"wiki_get_page"},
			},
			{
				ID:           "edit-existing",
				Input:        "update the Sandbox page to say hello",
				ExpectedTool: "wiki_edit_page",
				NotTools:     []string{"wiki_create_page"},
			},
			{
				ID:           "create-new",
				Input:        "create a brand new page called Draft:Example",
				ExpectedTool: "wiki_create_page",
				NotTools:     []string{"wiki_edit_page"},
			},
			{
				ID:           "get-entity-by-id",
				Input:        "fetch entity Q42",
				ExpectedTool: "wikibase_get_entity",
				ExpectedArgs: map[string]any{"id": "Q42"},
				NotTools:     []string{"wikibase_search_entities"},
			},
			{
				ID:           "add-single-statement",
				Input:        "state that Q42 is an instance of Q5",
				ExpectedTool: "wikibase_add_statement",
				ExpectedArgs: map[string]any{"entity_id": "Q42", "property": "P31"},
				NotTools:     []string{"wikibase_edit_entity"},
			},
			{
				ID:           "bulk-entity-edit",
				Input:        "set the English label and description of Q42 in one edit",
				ExpectedTool: "wikibase_edit_entity",
				NotTools:     []string{"wikibase_add_statement"},
			},
			{
				ID:           "delete-page",
				Input:        "delete the page Old Draft, it is obsolete",
				ExpectedTool: "wiki_delete_page",
				NotTools:     []string{"wiki_edit_page"},
			},
		},
	}
}
