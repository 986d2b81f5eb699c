package domain

type InterestType string

const (
	InterestSimple   InterestType = "simple"
	InterestCompound InterestType = "compound"
)

// InterestInput is the request shape for an interest plan. Frequency is only
// read when Compound is set; an empty Frequency means once a year.
type InterestInput struct {
	Principal Raw  `json:"principal"`
	Rate      Raw  `json:"rate"`
	Time      Raw  `json:"time"`
	Compound  bool `json:"compound"`
	Frequency Raw  `json:"frequency"`
}

func (in InterestInput) FrequencyOrDefault() Raw {
	if in.Frequency.IsEmpty() {
		return Int(1)
	}
	return in.Frequency
}

// InterestPlan is the result of an interest plan.
type InterestPlan struct {
	Envelope
	Type           InterestType `json:"type"`
	FinalAmount    float64      `json:"final_amount"`
	InterestEarned float64      `json:"interest_earned"`
}

func (p InterestPlan) MarshalJSON() ([]byte, error) {
	type plain InterestPlan
	return marshalPlan(p.Envelope, plain(p))
}

func (p InterestPlan) Fields() map[string]float64 {
	return map[string]float64{
		"final_amount":    p.FinalAmount,
		"interest_earned": p.InterestEarned,
	}
}
