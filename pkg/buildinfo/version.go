// Package buildinfo holds the version stamped into the tetrus binary.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/matzehuels/tetrus/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/tetrus/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/tetrus/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/tetrus
package buildinfo

import "fmt"

var (
	// Version is the semantic version. "dev" for local builds.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Fields returns the build info as logger key/value pairs.
func Fields() []any {
	return []any{"version", Version, "commit", Commit, "built", Date}
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
