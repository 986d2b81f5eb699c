package repository

import "finance-calculator/domain"

// CalculationRepository keeps the history of successful plans.
type CalculationRepository interface {
	Save(record domain.CalculationRecord) error
	List() ([]domain.CalculationRecord, error)
}
