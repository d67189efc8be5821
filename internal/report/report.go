// Package report produces the demonstration report: a short text document
// that exercises the rational and ratseq packages, showing both their error
// kinds and a few correct computations.
//
// # Naming Conventions
//
//   - Build returns the report as data without performing I/O.
//   - Render writes sections to an [io.Writer].
//   - WriteFile writes the report to the filesystem.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/agbru/ratcalc/internal/errors"
	"github.com/agbru/ratcalc/internal/rational"
	"github.com/agbru/ratcalc/internal/ratseq"
)

// Section is one numbered part of the report.
type Section struct {
	Title string
	Lines []string
}

// Build runs every demonstration and returns the report sections. It fails
// if a demonstration does not behave as documented, e.g. a zero denominator
// is accepted.
func Build() ([]Section, error) {
	steps := []func() (Section, error){
		zeroDenominator,
		invalidAddition,
		invalidAppend,
		correctUsage,
	}

	sections := make([]Section, 0, len(steps))
	for _, step := range steps {
		s, err := step()
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, nil
}

func zeroDenominator() (Section, error) {
	s := Section{Title: "Zero denominator", Lines: []string{"Trying Rational(1, 0):"}}
	_, err := rational.New(1, 0)
	if !errors.Is(err, rational.ErrDivisionByZero) {
		return s, fmt.Errorf("zero denominator demo: expected division by zero, got %v", err)
	}
	s.Lines = append(s.Lines, "Error: "+err.Error())
	return s, nil
}

func invalidAddition() (Section, error) {
	s := Section{Title: "Invalid operand in addition", Lines: []string{`Trying Rational(1, 2) + "abc":`}}
	_, err := rational.MustNew(1, 2).Add("abc")
	if !errors.Is(err, rational.ErrInvalidOperand) {
		return s, fmt.Errorf(`invalid addition demo: expected invalid operand, got %v`, err)
	}
	s.Lines = append(s.Lines, "Error: "+err.Error())
	return s, nil
}

func invalidAppend() (Section, error) {
	s := Section{Title: "Invalid operand in a sequence", Lines: []string{`Trying to append "xyz" to a sequence:`}}
	var seq ratseq.Sequence
	err := seq.Append("xyz")
	if !errors.Is(err, rational.ErrInvalidOperand) {
		return s, fmt.Errorf(`invalid append demo: expected invalid operand, got %v`, err)
	}
	s.Lines = append(s.Lines, "Error: "+err.Error(), fmt.Sprintf("Sequence length after the failed append: %d", seq.Len()))
	return s, nil
}

// describe renders r, noting when the value is zero or a whole number.
func describe(r rational.Rational) string {
	switch {
	case r.IsZero():
		return r.String() + " (zero)"
	case r.IsInt():
		return r.String() + " (integer)"
	}
	return r.String()
}

func correctUsage() (Section, error) {
	s := Section{Title: "Correct usage"}
	r1, r2 := rational.MustNew(1, 2), rational.MustNew(3, 4)

	sum, err := r1.Add(r2)
	if err != nil {
		return s, err
	}
	s.Lines = append(s.Lines, fmt.Sprintf("  - %s + %s = %s", r1, r2, describe(sum)))

	prod, err := rational.MustNew(2, 3).Mul(r2)
	if err != nil {
		return s, err
	}
	s.Lines = append(s.Lines, fmt.Sprintf("  - %s * %s = %s", rational.MustNew(2, 3), r2, describe(prod)))

	whole, err := r2.Add(rational.MustNew(1, 4))
	if err != nil {
		return s, err
	}
	s.Lines = append(s.Lines, fmt.Sprintf("  - %s + %s = %s", r2, rational.MustNew(1, 4), describe(whole)))

	zero, err := r1.Mul(0)
	if err != nil {
		return s, err
	}
	s.Lines = append(s.Lines, fmt.Sprintf("  - %s * 0 = %s", r1, describe(zero)))

	seq, err := ratseq.New(r1, 2)
	if err != nil {
		return s, err
	}
	s.Lines = append(s.Lines, "  - Sequence of rationals: "+seq.String())
	return s, nil
}

// Render writes the sections to w, numbered from 1.
//
// Parameters:
//   - w: The destination writer.
//   - sections: The sections to render.
//
// Returns:
//   - error: The first write error, if any.
func Render(w io.Writer, sections []Section) error {
	var sb strings.Builder
	for i, s := range sections {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d. %s:\n", i+1, s.Title)
		for _, line := range s.Lines {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Write builds the report and renders it to w.
func Write(w io.Writer) error {
	sections, err := Build()
	if err != nil {
		return err
	}
	return Render(w, sections)
}

// WriteFile writes the report to path, creating parent directories as
// needed. An existing file is truncated.
func WriteFile(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.WrapError(err, "failed to create directory %s", dir)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.WrapError(err, "failed to create output file")
	}
	if err := Write(file); err != nil {
		file.Close()
		return apperrors.WrapError(err, "failed to write report")
	}
	return file.Close()
}
