package buildinfo

import "fmt"

// Set at link time with -ldflags "-X finance-calculator/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("fincalc %s (commit=%s, date=%s)", Version, Commit, Date)
}
