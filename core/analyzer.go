package core

import (
	"strings"
)

type Diagnostic struct {
	Line   int
	Source string
	Err    error
}

func (d Diagnostic) String() string {
	return "Error: " + d.Err.Error()
}

type Report struct {
	Diagnostics []Diagnostic
}

func (r Report) OK() bool {
	return len(r.Diagnostics) == 0
}

// Analyzer runs statements against one variable store. It is not safe for
// concurrent use.
type Analyzer struct {
	Variables *Store
	config    Config

	// called with the classified tokens of every evaluated expression
	TraceTokens func(name string, tokens []string)
}

func NewAnalyzer(config Config) *Analyzer {
	return &Analyzer{
		Variables: NewStore(),
		config:    config,
	}
}

func (a *Analyzer) Lookup(name string) (int64, bool) {
	return a.Variables.Lookup(name)
}

// Analyze processes every statement in source. A failing statement is
// recorded and skipped; the store is never written for it.
func (a *Analyzer) Analyze(source string) Report {
	report := Report{Diagnostics: []Diagnostic{}}

	for i, raw := range strings.Split(source, "\n") {
		line := strings.TrimSpace(raw)
		if !isStatement(line) {
			continue
		}

		if _, err := a.analyzeLine(line); err != nil {
			report.Diagnostics = append(report.Diagnostics, Diagnostic{
				Line:   i + 1,
				Source: line,
				Err:    err,
			})
		}
	}

	return report
}

// AnalyzeStatement processes a single line. Blank and comment lines yield a
// zero Binding and no error.
func (a *Analyzer) AnalyzeStatement(line string) (Binding, error) {
	line = strings.TrimSpace(line)
	if !isStatement(line) {
		return Binding{}, nil
	}

	return a.analyzeLine(line)
}

func (a *Analyzer) analyzeLine(line string) (Binding, error) {
	stmt, err := parseStatement(line)
	if err != nil {
		return Binding{}, err
	}

	tokenizer := NewTokenizer(stmt.expression)
	tokens := tokenizer.Tokenize()

	if a.TraceTokens != nil {
		classified := make([]string, len(tokens))
		for i, tok := range tokens {
			classified[i] = Classify(tok).String()
		}
		a.TraceTokens(stmt.name, classified)
	}

	value, err := Evaluate(a, tokens, a.config)
	if err != nil {
		return Binding{}, err
	}

	a.Variables.Set(stmt.name, value)
	return Binding{Name: stmt.name, Value: value}, nil
}

// Result is a snapshot of all successful assignments in assignment order.
func (a *Analyzer) Result() []Binding {
	return a.Variables.Snapshot()
}
