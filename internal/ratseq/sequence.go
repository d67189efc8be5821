// Package ratseq provides Sequence, an ordered append-only container whose
// elements are all rational.Rational values.
//
// Every insertion goes through rational coercion, so plain integers are
// stored as n/1 and values with no rational interpretation are rejected with
// a rational.InvalidOperandError. The backing slice is never exposed.
//
// A Sequence is not safe for concurrent mutation. Guard it with a mutex when
// appending from several goroutines.
package ratseq

import (
	"fmt"
	"iter"
	"strings"

	"github.com/agbru/ratcalc/internal/rational"
)

const msgInvalidAppend = "can only append rational numbers or numbers convertible to rational"

// Sequence is an ordered list of rational values. The zero value is an empty
// sequence ready to use. A nil *Sequence reads as empty, but the mutating
// methods (Append, Extend, CombineInPlace) need a non-nil receiver.
type Sequence struct {
	items []rational.Rational
}

// New returns a sequence holding items in order. It fails like Extend, in
// which case no sequence is returned.
func New(items ...any) (*Sequence, error) {
	s := &Sequence{}
	if err := s.Extend(items...); err != nil {
		return nil, err
	}
	return s, nil
}

// Append coerces item to a Rational and adds it to the end of the sequence.
// On failure the sequence is left unchanged.
//
// Parameters:
//   - item: A Rational or any value accepted by rational.Coerce.
//
// Returns:
//   - error: A rational.InvalidOperandError if item cannot be coerced.
func (s *Sequence) Append(item any) error {
	r, err := rational.CoerceFor("append", msgInvalidAppend, item)
	if err != nil {
		return err
	}
	s.items = append(s.items, r)
	return nil
}

// Extend appends items one by one in order and stops at the first item that
// cannot be coerced. Items appended before the failure stay in the sequence.
//
// Returns:
//   - error: The Append error for the failing item, wrapped so its text is
//     prefixed with the item index ("item 1: can only append ..."). Use
//     errors.As to reach the rational.InvalidOperandError.
func (s *Sequence) Extend(items ...any) error {
	for i, item := range items {
		if err := s.Append(item); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

// Combine returns a new sequence holding the receiver's elements followed by
// other. The receiver is not modified.
func (s *Sequence) Combine(other any) (*Sequence, error) {
	src := s.view()
	c := &Sequence{items: make([]rational.Rational, len(src), len(src)+1)}
	copy(c.items, src)
	if err := c.Append(other); err != nil {
		return nil, err
	}
	return c, nil
}

// CombineInPlace appends other to the receiver and returns the receiver so
// calls can be chained.
func (s *Sequence) CombineInPlace(other any) (*Sequence, error) {
	if err := s.Append(other); err != nil {
		return s, err
	}
	return s, nil
}

// view returns the backing slice, treating a nil receiver as empty.
func (s *Sequence) view() []rational.Rational {
	if s == nil {
		return nil
	}
	return s.items
}

// Len returns the number of elements.
func (s *Sequence) Len() int { return len(s.view()) }

// At returns the element at index i. It panics if i is out of range.
func (s *Sequence) At(i int) rational.Rational { return s.view()[i] }

// All iterates over the elements with their indices.
func (s *Sequence) All() iter.Seq2[int, rational.Rational] {
	return func(yield func(int, rational.Rational) bool) {
		for i, r := range s.view() {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Values returns a copy of the elements.
func (s *Sequence) Values() []rational.Rational {
	out := make([]rational.Rational, s.Len())
	copy(out, s.view())
	return out
}

// Strings returns the textual form of every element, in order.
func (s *Sequence) Strings() []string {
	src := s.view()
	out := make([]string, len(src))
	for i, r := range src {
		out[i] = r.String()
	}
	return out
}

// String renders the sequence as "[1/2 2/1]".
func (s *Sequence) String() string {
	return "[" + strings.Join(s.Strings(), " ") + "]"
}
