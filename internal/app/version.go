package app

import "fmt"

// Build metadata, stamped with
// -ldflags "-X github.com/heartmarshall/groupbuy-backend/internal/app.Version=1.2.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is logged once by every binary on startup.
func BuildVersion() string {
	return fmt.Sprintf("%s+%s (%s)", Version, Commit, BuildTime)
}
