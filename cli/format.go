package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func formatCurrency(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}

func formatFixed(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
