package core

import (
	"fmt"
	"strings"
)

type statement struct {
	name       string
	expression string
}

func (s statement) String() string {
	return fmt.Sprintf("%s = %s", s.name, s.expression)
}

// parseStatement splits a trimmed line on `=`. Exactly one `=` is allowed;
// the name itself is not validated.
func parseStatement(line string) (statement, error) {
	parts := strings.Split(line, "=")
	if len(parts) != 2 {
		return statement{}, &Error{Kind: InvalidStatementShape, Subject: line}
	}

	return statement{
		name:       strings.TrimSpace(parts[0]),
		expression: strings.TrimSpace(parts[1]),
	}, nil
}

// isStatement reports whether a trimmed line carries a statement at all.
func isStatement(line string) bool {
	return line != "" && !strings.HasPrefix(line, "#")
}
