// Package version provides version information for the bms CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// cueModulePath is the module whose evaluator backs manifest decoding.
const cueModulePath = "cuelang.org/go"

// Info contains version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`

	// CUESDKVersion is the linked CUE module version, "unknown" when build
	// info is unavailable (e.g. in tests).
	CUESDKVersion string `json:"cueSDKVersion"`
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:       Version,
		GitCommit:     GitCommit,
		BuildDate:     BuildDate,
		GoVersion:     runtime.Version(),
		CUESDKVersion: dependencyVersion(cueModulePath),
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("bms:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s\n\nCUE:\n  SDK Version: %s",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion, i.CUESDKVersion)
}

func dependencyVersion(path string) string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range bi.Deps {
		if dep.Path == path {
			if dep.Replace != nil {
				return dep.Replace.Version
			}
			return dep.Version
		}
	}
	return "unknown"
}
