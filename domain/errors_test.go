package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestFinanceErrorMessageIsVerbatim(t *testing.T) {
	err := &FinanceError{
		Op:    "validator.positive_number",
		Kind:  KindOutOfRange,
		Field: "Loan amount",
		Msg:   "Loan amount must be positive",
	}

	if err.Error() != "Loan amount must be positive" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestFinanceErrorWithoutMessage(t *testing.T) {
	root := errors.New("root")
	err := &FinanceError{Op: "calculator.savings_goal_time", Kind: KindInvalidDomain, Field: "Target amount", Err: root}

	want := "calculator.savings_goal_time: invalid_domain (field=Target amount): root"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}
}

func TestFinanceErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &FinanceError{Kind: KindInvalidFormat, Msg: "X must be a valid integer"})

	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected errors.Is to match ErrInvalidFormat")
	}
	if errors.Is(err, ErrOutOfRange) {
		t.Fatalf("did not expect ErrOutOfRange")
	}
	if !IsKind(err, KindInvalidFormat) {
		t.Fatalf("expected IsKind to match")
	}
}

func TestKindOfPlainError(t *testing.T) {
	if k := KindOf(errors.New("boom")); k != "" {
		t.Fatalf("expected empty kind, got %q", k)
	}
}
