package core

import (
	"github.com/edwingeng/deque"
)

// Scope is the read-only view of the variable store the evaluator needs.
type Scope interface {
	Lookup(name string) (int64, bool)
}

// cell is one evaluation stack slot: a value or an open-group marker.
type cell struct {
	value int64
	open  bool
}

type machine struct {
	scope    Scope
	maxDepth int
	depth    int

	stack  deque.Deque
	groups int // open-group markers currently on the stack

	last token
}

func newMachine(scope Scope, maxDepth int, depth int) *machine {
	return &machine{
		scope:    scope,
		maxDepth: maxDepth,
		depth:    depth,
		stack:    deque.NewDeque(),
	}
}

// Evaluate classifies tokens and reduces them to a single value. Operators
// are applied as soon as they are reached, against the two topmost cells,
// so `x + y` fails at the `+`.
func Evaluate(scope Scope, tokens []token, config Config) (int64, error) {
	items := make([]token, len(tokens))
	for i, tok := range tokens {
		items[i] = Classify(tok)
	}

	return reduce(scope, items, config.maxDepth(), 0, token{})
}

func reduce(scope Scope, items []token, maxDepth int, depth int, at token) (int64, error) {
	if depth > maxDepth {
		return 0, &Error{Kind: NestingTooDeep, Limit: maxDepth, position: at.Pos}
	}

	vm := newMachine(scope, maxDepth, depth)
	vm.last = at

	for _, item := range items {
		if item.Kind != VALUE {
			vm.last = item
		}
		if err := vm.step(item); err != nil {
			return 0, err
		}
	}

	return vm.result()
}

func (vm *machine) push(c cell) {
	vm.stack.PushBack(c)
}

func (vm *machine) pop() cell {
	return vm.stack.PopBack().(cell)
}

func (vm *machine) peek() cell {
	return vm.stack.Back().(cell)
}

func (vm *machine) step(tok token) error {
	switch tok.Kind {
	case NUMBER_LITERAL, VALUE:
		vm.push(cell{value: tok.value})
	case IDENTIFIER:
		value, ok := vm.scope.Lookup(tok.Payload)
		if !ok {
			return &Error{Kind: UndefinedVariable, Subject: tok.Payload, position: tok.Pos}
		}
		vm.push(cell{value: value})
	case PLUS, MINUS, TIMES, DIVIDE, MODULUS:
		return vm.executeBinary(tok)
	case LEFT_PAREN:
		if vm.groups >= vm.maxDepth {
			return &Error{Kind: NestingTooDeep, Limit: vm.maxDepth, position: tok.Pos}
		}
		vm.groups++
		vm.push(cell{open: true})
	case RIGHT_PAREN:
		return vm.closeGroup(tok)
	default:
		return &Error{Kind: InvalidToken, Subject: tok.Payload, position: tok.Pos}
	}

	return nil
}

func (vm *machine) executeBinary(op token) error {
	if vm.stack.Len() < 2 {
		return invalidExpression(op)
	}

	b := vm.pop()
	a := vm.pop()

	if a.open || b.open {
		return invalidExpression(op)
	}

	result, err := applyOperator(op, a.value, b.value)
	if err != nil {
		return err
	}

	vm.push(cell{value: result})
	return nil
}

// applyOperator uses Go integer semantics: quotients truncate toward zero,
// remainders take the sign of the dividend, overflow wraps.
func applyOperator(op token, a int64, b int64) (int64, error) {
	switch op.Kind {
	case PLUS:
		return a + b, nil
	case MINUS:
		return a - b, nil
	case TIMES:
		return a * b, nil
	case DIVIDE:
		if b == 0 {
			return 0, &Error{Kind: DivisionByZero, position: op.Pos}
		}
		return a / b, nil
	case MODULUS:
		if b == 0 {
			return 0, &Error{Kind: DivisionByZero, position: op.Pos}
		}
		return a % b, nil
	}

	return 0, invalidExpression(op)
}

// closeGroup folds everything above the nearest open-group marker back
// into a single value.
func (vm *machine) closeGroup(closing token) error {
	collected := []token{}
	for !vm.stack.Empty() && !vm.peek().open {
		collected = append(collected, valueToken(vm.pop().value))
	}

	if vm.stack.Empty() {
		return invalidExpression(closing)
	}

	vm.pop()
	vm.groups--

	for i, j := 0, len(collected)-1; i < j; i, j = i+1, j-1 {
		collected[i], collected[j] = collected[j], collected[i]
	}

	value, err := reduce(vm.scope, collected, vm.maxDepth, vm.depth+1, closing)
	if err != nil {
		return err
	}

	vm.push(cell{value: value})
	return nil
}

func (vm *machine) result() (int64, error) {
	if vm.stack.Len() != 1 {
		return 0, invalidExpression(vm.last)
	}

	c := vm.pop()
	if c.open {
		return 0, invalidExpression(vm.last)
	}

	return c.value, nil
}
