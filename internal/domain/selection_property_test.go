//go:build property
// +build property

package domain

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func numbered(n int) *Selection {
	s := NewSelection()
	for i := 0; i < n; i++ {
		s.Append(&ComponentDefinition{ID: fmt.Sprintf("c%d", i)})
	}
	return s
}

// TestSelectionProperties checks the list operations against their contracts
func TestSelectionProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("append grows by one and keeps the prefix", prop.ForAll(
		func(n int) bool {
			s := numbered(n)
			before := s.IDs()
			s.Append(&ComponentDefinition{ID: "new"})
			after := s.IDs()
			if len(after) != n+1 || after[n] != "new" {
				return false
			}
			for i := range before {
				if before[i] != after[i] {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 20),
	))

	properties.Property("removeAt in range shrinks by one, out of range is a no-op", prop.ForAll(
		func(n, index int) bool {
			s := numbered(n)
			removed := s.RemoveAt(index)
			if index >= 0 && index < n {
				return removed && s.Len() == n-1
			}
			return !removed && s.Len() == n
		},
		gen.IntRange(0, 20),
		gen.IntRange(-5, 25),
	))

	properties.Property("moveTo is a permutation", prop.ForAll(
		func(n, from, to int) bool {
			s := numbered(n)
			s.MoveTo(from, to)
			if s.Len() != n {
				return false
			}
			seen := map[string]int{}
			for _, id := range s.IDs() {
				seen[id]++
			}
			for i := 0; i < n; i++ {
				if seen[fmt.Sprintf("c%d", i)] != 1 {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 20),
		gen.IntRange(-5, 25),
		gen.IntRange(-5, 25),
	))

	properties.Property("moveTo places the moved entry at the target", prop.ForAll(
		func(n, from, to int) bool {
			s := numbered(n)
			if from >= n {
				return true
			}
			moved := s.At(from).ID
			s.MoveTo(from, to)
			want := to
			if want > n-1 {
				want = n - 1
			}
			return s.At(want).ID == moved
		},
		gen.IntRange(1, 20),
		gen.IntRange(0, 19),
		gen.IntRange(0, 25),
	))

	properties.TestingRun(t)
}
