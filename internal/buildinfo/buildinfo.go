// Package buildinfo exposes the version data stamped at link time.
package buildinfo

import (
	"fmt"
	"io"
)

// Set with -ldflags "-X github.com/dentinhoapp/dentinho/internal/buildinfo.Version=..."
// and friends; "N/A" when the binary was built without stamping.
var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// PrintBuildData writes the stamped build data to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", Date)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
}
