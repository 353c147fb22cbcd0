// Package buildinfo holds version metadata injected at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/tripjournal/internal/buildinfo.Version=v1.2.0"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// UserAgent is sent with every API request.
func UserAgent() string {
	return "tripjournal/" + Version
}

func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", Date)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
}
