// Package version carries build identification injected at link time.
package version

// Set via -ldflags "-X github.com/twquant/warroom/internal/version.Version=...".
var (
	Version = "main"
	Commit  = "unknown"
)

// String returns the version with the short commit when one is known.
func String() string {
	if Commit == "unknown" {
		return Version
	}

	return Version + " (" + Commit + ")"
}
