package eda

import (
	"fmt"
	"sort"
)

// -------------------------------------------------------------------------
// Float Set

// FloatSet is a set of float64 values, e.g. the levels of a field.
type FloatSet map[float64]struct{}

func NewFloatSet() FloatSet {
	return make(FloatSet)
}

func (s FloatSet) String() string {
	return fmt.Sprintf("%v", s.Elements())
}

// Add adds x to s.
func (s FloatSet) Add(x float64) {
	s[x] = struct{}{}
}

// Contains reports membership of x in s.
func (s FloatSet) Contains(x float64) bool {
	_, ok := s[x]
	return ok
}

// Join adds all elements of t to s.
func (s FloatSet) Join(t FloatSet) {
	for x := range t {
		s[x] = struct{}{}
	}
}

// Equals compares s to a slice t.
func (s FloatSet) Equals(t []float64) bool {
	if len(s) != len(t) {
		return false
	}
	for _, x := range t {
		if _, ok := s[x]; !ok {
			return false
		}
	}
	return true
}

// Elements returns the members of s in ascending numerical order.
func (s FloatSet) Elements() []float64 {
	elems := make([]float64, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Float64s(elems)
	return elems
}
