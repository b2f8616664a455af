package core

import (
	"fmt"
)

type Binding struct {
	Name  string
	Value int64
}

func (b Binding) String() string {
	return fmt.Sprintf("%s = %d", b.Name, b.Value)
}

// Store maps variable names to values. Snapshots list names in the order
// they were first assigned; reassignment keeps the original slot.
type Store struct {
	names  []string
	values map[string]int64
}

func NewStore() *Store {
	return &Store{
		names:  []string{},
		values: make(map[string]int64),
	}
}

func (s *Store) Lookup(name string) (int64, bool) {
	value, ok := s.values[name]
	return value, ok
}

func (s *Store) Set(name string, value int64) {
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}
	s.values[name] = value
}

func (s *Store) Len() int {
	return len(s.names)
}

func (s *Store) Snapshot() []Binding {
	bindings := make([]Binding, len(s.names))
	for i, name := range s.names {
		bindings[i] = Binding{Name: name, Value: s.values[name]}
	}
	return bindings
}

// Map returns a copy of the store as a plain map.
func (s *Store) Map() map[string]int64 {
	out := make(map[string]int64, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}
