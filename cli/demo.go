package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"finance-calculator/domain"
)

func demoCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print sample loan, savings and interest calculations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.Context(), cmd.OutOrStdout(), st.app)
		},
	}
}

// runDemo prints three fixed example calculations. Failed plans are printed
// and do not stop the demo.
func runDemo(ctx context.Context, w io.Writer, a *app) error {
	fmt.Fprintln(w, "=== Personal Finance Calculator ===")
	fmt.Fprintln(w, "Simple demonstration of financial calculations")

	fmt.Fprintln(w, "\n1. Loan Payment Calculation:")
	loan := a.finance.LoanPaymentPlan(ctx, domain.Num(10000), domain.Num(5.5), domain.Int(3))
	if loan.Success {
		fmt.Fprintf(w, "Monthly Payment: %s\n", formatCurrency(loan.MonthlyPayment))
		fmt.Fprintf(w, "Total Interest: %s\n", formatCurrency(loan.TotalInterest))
	} else {
		fmt.Fprintf(w, "Error: %s\n", loan.Error)
	}

	fmt.Fprintln(w, "\n2. Savings Goal Calculation:")
	savings := a.finance.SavingsPlan(ctx, domain.Num(5000), domain.Num(200), domain.Num(3.0))
	if savings.Success {
		fmt.Fprintf(w, "Time to reach goal: %s years\n", formatFixed(savings.YearsToGoal, 1))
		fmt.Fprintf(w, "Total contributions: %s\n", formatCurrency(savings.TotalContributions))
	} else {
		fmt.Fprintf(w, "Error: %s\n", savings.Error)
	}

	fmt.Fprintln(w, "\n3. Interest Calculation:")
	interest := a.finance.InterestPlan(ctx, domain.Num(1000), domain.Num(4.0), domain.Int(2), true, domain.Int(12))
	if interest.Success {
		fmt.Fprintf(w, "Final amount: %s\n", formatCurrency(interest.FinalAmount))
		fmt.Fprintf(w, "Interest earned: %s\n", formatCurrency(interest.InterestEarned))
	} else {
		fmt.Fprintf(w, "Error: %s\n", interest.Error)
	}

	return nil
}
