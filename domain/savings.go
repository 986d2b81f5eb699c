package domain

// SavingsInput is the request shape for a savings plan.
type SavingsInput struct {
	Target       Raw `json:"target"`
	Contribution Raw `json:"contribution"`
	Rate         Raw `json:"rate"`
}

// SavingsPlan is the result of a savings plan.
type SavingsPlan struct {
	Envelope
	YearsToGoal        float64 `json:"years_to_goal"`
	MonthsToGoal       float64 `json:"months_to_goal"`
	TotalContributions float64 `json:"total_contributions"`
}

func (p SavingsPlan) MarshalJSON() ([]byte, error) {
	type plain SavingsPlan
	return marshalPlan(p.Envelope, plain(p))
}

func (p SavingsPlan) Fields() map[string]float64 {
	return map[string]float64{
		"years_to_goal":       p.YearsToGoal,
		"months_to_goal":      p.MonthsToGoal,
		"total_contributions": p.TotalContributions,
	}
}
