package core

import (
	"testing"
)

type mapScope map[string]int64

func (m mapScope) Lookup(name string) (int64, bool) {
	v, ok := m[name]
	return v, ok
}

func TestEvaluate(t *testing.T) {
	scope := mapScope{"x": 10, "y": 5, "a": 2, "b": 7, "été": 3}

	tests := []struct {
		name     string
		expr     string
		want     int64
		wantKind ErrorKind
	}{
		// operands
		{name: "literal", expr: "42", want: 42},
		{name: "zero", expr: "0", want: 0},
		{name: "variable", expr: "x", want: 10},
		{name: "unicode variable", expr: "été", want: 3},
		{name: "undefined variable", expr: "z", wantKind: UndefinedVariable},

		// immediate-apply operators
		{name: "postfix add", expr: "10 5 +", want: 15},
		{name: "postfix subtract", expr: "10 5 -", want: 5},
		{name: "postfix multiply", expr: "10 5 *", want: 50},
		{name: "postfix divide", expr: "7 2 /", want: 3},
		{name: "postfix modulo", expr: "7 2 %", want: 1},
		{name: "variables", expr: "x y +", want: 15},
		{name: "chained", expr: "x y + 3 *", want: 45},
		{name: "negative intermediate", expr: "a b -", want: -5},
		{name: "division truncates toward zero", expr: "a b - 2 /", want: -2},
		{name: "remainder keeps dividend sign", expr: "a b - 2 %", want: -1},
		{name: "divide by zero", expr: "10 0 /", wantKind: DivisionByZero},
		{name: "modulo by zero", expr: "10 0 %", wantKind: DivisionByZero},
		{name: "lone operator", expr: "+", wantKind: InvalidExpression},
		{name: "one operand", expr: "x +", wantKind: InvalidExpression},
		{name: "infix fails at operator", expr: "x + y", wantKind: InvalidExpression},
		{name: "leftover values", expr: "1 2", wantKind: InvalidExpression},
		{name: "empty", expr: "", wantKind: InvalidExpression},

		// grouping
		{name: "group of one", expr: "( 5 )", want: 5},
		{name: "reduced group", expr: "( 10 5 + )", want: 15},
		{name: "nested groups", expr: "( ( 4 ) ) 2 *", want: 8},
		{name: "group then operator", expr: "( x ) ( y ) -", want: 5},
		{name: "empty group", expr: "( )", wantKind: InvalidExpression},
		{name: "group with two values", expr: "( 5 3 )", wantKind: InvalidExpression},
		{name: "unmatched close", expr: "5 )", wantKind: InvalidExpression},
		{name: "unclosed group", expr: "( 5", wantKind: InvalidExpression},
		{name: "bare open", expr: "(", wantKind: InvalidExpression},
		{name: "operator against marker", expr: "( x + y )", wantKind: InvalidExpression},

		// token shapes
		{name: "glued paren", expr: "(x + y) / z", wantKind: InvalidToken},
		{name: "alphanumeric", expr: "x1", wantKind: InvalidToken},
		{name: "negative literal", expr: "-5", wantKind: InvalidToken},
		{name: "overflowing literal", expr: "99999999999999999999", wantKind: InvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluateExpression(scope, tt.expr, Config{})

			if tt.wantKind != NoError {
				if err == nil {
					t.Fatalf("expected %v, got value %d", tt.wantKind, got)
				}
				if kind := KindOf(err); kind != tt.wantKind {
					t.Fatalf("expected %v, got %v (%v)", tt.wantKind, kind, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("EvaluateExpression(%q) = %d, want %d", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEvaluateErrorMessages(t *testing.T) {
	tests := []struct {
		expr string
		want string
		col  int
	}{
		{expr: "(x + y) / z", want: "Invalid token: (x", col: 1},
		{expr: "10 missing", want: "Undefined variable: missing", col: 4},
		{expr: "x + y", want: "Invalid expression", col: 3},
		{expr: "1 0 %", want: "Division by zero", col: 5},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := EvaluateExpression(mapScope{"x": 1, "y": 2}, tt.expr, Config{})
			if err == nil {
				t.Fatal("expected an error")
			}
			if err.Error() != tt.want {
				t.Errorf("got %q, want %q", err.Error(), tt.want)
			}
			if e := err.(*Error); e.Column() != tt.col {
				t.Errorf("got column %d, want %d", e.Column(), tt.col)
			}
		})
	}
}

func TestEvaluateStopsAtFirstFailure(t *testing.T) {
	// the undefined variable comes after the failing operator and is never looked up
	_, err := EvaluateExpression(mapScope{"x": 1}, "x + nope", Config{})
	if KindOf(err) != InvalidExpression {
		t.Fatalf("expected InvalidExpression, got %v", err)
	}
}

func TestEvaluateMaxDepth(t *testing.T) {
	config := Config{MaxDepth: 2}

	got, err := EvaluateExpression(mapScope{}, "( ( 1 ) )", config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Errorf("got %d, want 1", got)
	}

	_, err = EvaluateExpression(mapScope{}, "( ( ( 1 ) ) )", config)
	if KindOf(err) != NestingTooDeep {
		t.Fatalf("expected NestingTooDeep, got %v", err)
	}
	if err.Error() != "Nesting too deep: exceeds 2" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestEvaluateDefaultDepth(t *testing.T) {
	open := ""
	for i := 0; i < DefaultMaxDepth+1; i++ {
		open += "( "
	}

	_, err := EvaluateExpression(mapScope{}, open+"1", Config{})
	if KindOf(err) != NestingTooDeep {
		t.Fatalf("expected NestingTooDeep, got %v", err)
	}
}

func TestApplyOperator(t *testing.T) {
	tests := []struct {
		kind tokenKind
		a, b int64
		want int64
	}{
		{PLUS, 3, 4, 7},
		{MINUS, 3, 4, -1},
		{TIMES, -3, 4, -12},
		{DIVIDE, -7, 2, -3},
		{DIVIDE, 7, -2, -3},
		{MODULUS, -7, 2, -1},
		{MODULUS, 7, -2, 1},
	}

	for _, tt := range tests {
		got, err := applyOperator(token{Kind: tt.kind}, tt.a, tt.b)
		if err != nil {
			t.Fatalf("%v(%d, %d): unexpected error %v", tt.kind, tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Errorf("%v(%d, %d) = %d, want %d", tt.kind, tt.a, tt.b, got, tt.want)
		}
	}
}
