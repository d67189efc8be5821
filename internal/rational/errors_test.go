package rational

import (
	"errors"
	"fmt"
	"testing"
)

func TestDivisionByZeroError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expectedMsg string
	}{
		{"default message", NewDivisionByZeroError(""), DefaultDivisionByZeroMessage},
		{"custom message", NewDivisionByZeroError("no zero please"), "no zero please"},
		{"zero value", DivisionByZeroError{}, DefaultDivisionByZeroMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, tt.err.Error())
			}
			if !errors.Is(tt.err, ErrDivisionByZero) {
				t.Error("should match ErrDivisionByZero")
			}
			if errors.Is(tt.err, ErrInvalidOperand) {
				t.Error("should not match ErrInvalidOperand")
			}
		})
	}
}

func TestInvalidOperandError(t *testing.T) {
	t.Parallel()

	t.Run("message", func(t *testing.T) {
		t.Parallel()
		err := NewInvalidOperandError("add", "abc", "can only add rational numbers or integers", nil)
		if err.Error() != "can only add rational numbers or integers" {
			t.Errorf("unexpected message %q", err.Error())
		}
		if !errors.Is(err, ErrInvalidOperand) {
			t.Error("should match ErrInvalidOperand")
		}
	})

	t.Run("fallback message", func(t *testing.T) {
		t.Parallel()
		err := InvalidOperandError{Op: "multiply", Operand: "x"}
		if err.Error() != `invalid operand x for multiply` {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("unwraps cause", func(t *testing.T) {
		t.Parallel()
		err := NewInvalidOperandError("append", 1, "bad", NewDivisionByZeroError(""))
		if !errors.Is(err, ErrDivisionByZero) {
			t.Error("cause should be reachable through errors.Is")
		}
		if !errors.Is(err, ErrInvalidOperand) {
			t.Error("should still match ErrInvalidOperand")
		}
	})

	t.Run("survives wrapping", func(t *testing.T) {
		t.Parallel()
		wrapped := fmt.Errorf("step 2: %w", NewInvalidOperandError("add", 1.5, "bad", nil))
		var ioe InvalidOperandError
		if !errors.As(wrapped, &ioe) || ioe.Operand != 1.5 {
			t.Errorf("errors.As through wrapping failed: %v", wrapped)
		}
	})
}
