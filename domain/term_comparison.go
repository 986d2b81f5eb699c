package domain

type Preference string

const (
	PreferMinimizeInterest Preference = "minimize_interest"
	PreferMinimizePayment  Preference = "minimize_payment"
	PreferBalanced         Preference = "balanced"
)

func (p Preference) Valid() bool {
	switch p {
	case PreferMinimizeInterest, PreferMinimizePayment, PreferBalanced:
		return true
	}
	return false
}

type TermComparisonInput struct {
	Amount            Raw        `json:"amount"`
	Rate              Raw        `json:"rate"`
	MinYears          int        `json:"min_years"`
	MaxYears          int        `json:"max_years"`
	MaxMonthlyPayment float64    `json:"max_monthly_payment"`
	Preference        Preference `json:"preference"`
}

type TermOption struct {
	Years          int     `json:"years"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
	Score          float64 `json:"score"`
	Reason         string  `json:"reason"`
}

type TermComparisonResult struct {
	RecommendedYears int          `json:"recommended_years"`
	Options          []TermOption `json:"options"`
}
