package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"finance-calculator/domain"
)

func loanCmd(st *state) *cobra.Command {
	var amount, rate, years string
	var asJSON bool

	c := &cobra.Command{
		Use:   "loan",
		Short: "Monthly payment and totals for an amortizing loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan := st.app.finance.LoanPaymentPlan(cmd.Context(), domain.Str(amount), domain.Str(rate), domain.Str(years))
			out := cmd.OutOrStdout()

			if asJSON {
				if err := printJSON(out, plan); err != nil {
					return err
				}
			} else if plan.Success {
				fmt.Fprintf(out, "Monthly Payment: %s\n", formatCurrency(plan.MonthlyPayment))
				fmt.Fprintf(out, "Total Payment: %s\n", formatCurrency(plan.TotalPayment))
				fmt.Fprintf(out, "Total Interest: %s\n", formatCurrency(plan.TotalInterest))
			}
			return planError(plan.Envelope)
		},
	}

	c.Flags().StringVar(&amount, "amount", "", "loan amount (required)")
	c.Flags().StringVar(&rate, "rate", "", "annual interest rate in percent (required)")
	c.Flags().StringVar(&years, "years", "", "loan term in whole years (required)")
	c.Flags().BoolVar(&asJSON, "json", false, "print the result envelope as JSON")

	_ = c.MarkFlagRequired("amount")
	_ = c.MarkFlagRequired("rate")
	_ = c.MarkFlagRequired("years")
	return c
}

func savingsCmd(st *state) *cobra.Command {
	var target, contribution, rate string
	var asJSON bool

	c := &cobra.Command{
		Use:   "savings",
		Short: "Time to reach a savings goal with fixed monthly contributions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan := st.app.finance.SavingsPlan(cmd.Context(), domain.Str(target), domain.Str(contribution), domain.Str(rate))
			out := cmd.OutOrStdout()

			if asJSON {
				if err := printJSON(out, plan); err != nil {
					return err
				}
			} else if plan.Success {
				fmt.Fprintf(out, "Time to reach goal: %s years (%s months)\n",
					formatFixed(plan.YearsToGoal, 2), formatFixed(plan.MonthsToGoal, 1))
				fmt.Fprintf(out, "Total contributions: %s\n", formatCurrency(plan.TotalContributions))
			}
			return planError(plan.Envelope)
		},
	}

	c.Flags().StringVar(&target, "target", "", "target amount (required)")
	c.Flags().StringVar(&contribution, "contribution", "", "monthly contribution (required)")
	c.Flags().StringVar(&rate, "rate", "0", "annual interest rate in percent")
	c.Flags().BoolVar(&asJSON, "json", false, "print the result envelope as JSON")

	_ = c.MarkFlagRequired("target")
	_ = c.MarkFlagRequired("contribution")
	return c
}

func interestCmd(st *state) *cobra.Command {
	var principal, rate, years, frequency string
	var compound, asJSON bool

	c := &cobra.Command{
		Use:   "interest",
		Short: "Simple or compound interest on a principal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan := st.app.finance.InterestPlan(cmd.Context(),
				domain.Str(principal), domain.Str(rate), domain.Str(years), compound, domain.Str(frequency))
			out := cmd.OutOrStdout()

			if asJSON {
				if err := printJSON(out, plan); err != nil {
					return err
				}
			} else if plan.Success {
				fmt.Fprintf(out, "Type: %s\n", plan.Type)
				fmt.Fprintf(out, "Final amount: %s\n", formatCurrency(plan.FinalAmount))
				fmt.Fprintf(out, "Interest earned: %s\n", formatCurrency(plan.InterestEarned))
			}
			return planError(plan.Envelope)
		},
	}

	c.Flags().StringVar(&principal, "principal", "", "principal amount (required)")
	c.Flags().StringVar(&rate, "rate", "", "annual interest rate in percent (required)")
	c.Flags().StringVar(&years, "time", "", "time period in years (required)")
	c.Flags().BoolVar(&compound, "compound", false, "compound instead of simple interest")
	c.Flags().StringVar(&frequency, "frequency", "1", "compounding periods per year")
	c.Flags().BoolVar(&asJSON, "json", false, "print the result envelope as JSON")

	_ = c.MarkFlagRequired("principal")
	_ = c.MarkFlagRequired("rate")
	_ = c.MarkFlagRequired("time")
	return c
}

func compareTermsCmd(st *state) *cobra.Command {
	var amount, rate, preference string
	var minYears, maxYears int
	var maxPayment float64
	var asJSON bool

	c := &cobra.Command{
		Use:   "compare-terms",
		Short: "Rank loan terms whose monthly payment fits a ceiling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := st.app.terms.CompareTerms(domain.TermComparisonInput{
				Amount:            domain.Str(amount),
				Rate:              domain.Str(rate),
				MinYears:          minYears,
				MaxYears:          maxYears,
				MaxMonthlyPayment: maxPayment,
				Preference:        domain.Preference(preference),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, result)
			}

			fmt.Fprintf(out, "Recommended term: %d years\n\n", result.RecommendedYears)
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "YEARS\tMONTHLY\tTOTAL INTEREST\tSCORE")
			for _, o := range result.Options {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
					o.Years, formatCurrency(o.MonthlyPayment), formatCurrency(o.TotalInterest), formatFixed(o.Score, 2))
			}
			return tw.Flush()
		},
	}

	c.Flags().StringVar(&amount, "amount", "", "loan amount (required)")
	c.Flags().StringVar(&rate, "rate", "", "annual interest rate in percent (required)")
	c.Flags().IntVar(&minYears, "min-years", 1, "shortest term to consider")
	c.Flags().IntVar(&maxYears, "max-years", 10, "longest term to consider")
	c.Flags().Float64Var(&maxPayment, "max-payment", 0, "highest acceptable monthly payment (required)")
	c.Flags().StringVar(&preference, "preference", string(domain.PreferBalanced), "minimize_interest, minimize_payment or balanced")
	c.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	_ = c.MarkFlagRequired("amount")
	_ = c.MarkFlagRequired("rate")
	_ = c.MarkFlagRequired("max-payment")
	return c
}

func planError(env domain.Envelope) error {
	if env.Success {
		return nil
	}
	return errors.New(env.Error)
}
