// Package cli defines the fincalc command line.
//
// Commands
//
//   - demo           Print the sample loan, savings and interest calculations (default)
//   - loan           Monthly payment and totals for a loan
//   - savings        Time to reach a savings goal
//   - interest       Simple or compound interest
//   - compare-terms  Rank loan terms against a payment ceiling
//   - serve          Run the JSON HTTP API
//   - version        Print build information
//
// The root command loads configuration and builds the logger and services
// before any subcommand runs.
package cli
