package core

func Tokenize(expression string) []token {
	tokenizer := NewTokenizer(expression)
	return tokenizer.Tokenize()
}

func EvaluateExpression(scope Scope, expression string, config Config) (int64, error) {
	return Evaluate(scope, Tokenize(expression), config)
}

// Analyze runs source in a fresh session with the default config.
func Analyze(source string) ([]Binding, Report) {
	analyzer := NewAnalyzer(Config{})
	report := analyzer.Analyze(source)

	return analyzer.Result(), report
}
