package domain

import (
	"time"

	"github.com/google/uuid"
)

type Operation string

const (
	OpLoanPayment Operation = "loan_payment"
	OpSavingsPlan Operation = "savings_plan"
	OpInterest    Operation = "interest_plan"
)

// CalculationRecord is a history entry for a successful plan.
type CalculationRecord struct {
	ID        uuid.UUID          `json:"id"`
	Operation Operation          `json:"operation"`
	Inputs    map[string]string  `json:"inputs"`
	Outputs   map[string]float64 `json:"outputs"`
	CreatedAt time.Time          `json:"created_at"`
}
