package domain

// LoanInput is the request shape for a loan payment plan.
type LoanInput struct {
	Amount Raw `json:"amount"`
	Rate   Raw `json:"rate"`
	Years  Raw `json:"years"`
}

// LoanPlan is the result of a loan payment plan.
type LoanPlan struct {
	Envelope
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
}

func (p LoanPlan) MarshalJSON() ([]byte, error) {
	type plain LoanPlan
	return marshalPlan(p.Envelope, plain(p))
}

func (p LoanPlan) Fields() map[string]float64 {
	return map[string]float64{
		"monthly_payment": p.MonthlyPayment,
		"total_payment":   p.TotalPayment,
		"total_interest":  p.TotalInterest,
	}
}
