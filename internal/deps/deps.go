// Package deps reports the availability of the external tools
// smartsubs drives.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external dependency smartsubs relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Requirement
	Available bool
	Detail    string
}

// Default returns the requirement set for the configured binaries.
func Default(downloaderBinary, transcriberBinary string) []Requirement {
	return []Requirement{
		{
			Name:        "downloader",
			Command:     downloaderBinary,
			Description: "lists, downloads, and converts subtitle tracks; fetches audio",
		},
		{
			Name:        "transcriber",
			Command:     transcriberBinary,
			Description: "generates SRT subtitles from downloaded audio",
		},
		{
			Name:        "node",
			Command:     "node",
			Description: "JS runtime the downloader uses for some extractors",
			Optional:    true,
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		req.Command = strings.TrimSpace(req.Command)
		status := Status{Requirement: req}
		switch {
		case req.Command == "":
			status.Detail = "command not configured"
		default:
			if _, err := exec.LookPath(req.Command); err != nil {
				status.Detail = fmt.Sprintf("binary %q not found", req.Command)
			} else {
				status.Available = true
			}
		}
		results = append(results, status)
	}
	return results
}
