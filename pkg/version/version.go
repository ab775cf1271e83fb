package version

import (
	"fmt"
	"runtime"
)

var (
	// gitVersion is the semantic version (set by ldflags during build)
	gitVersion = "v0.0.0-dev"
	// gitCommit is the git commit hash (set by ldflags during build)
	gitCommit = "unknown"
	// buildDate is the build date (set by ldflags during build)
	buildDate = "unknown"
)

// Info contains complete version information
type Info struct {
	GitVersion string `json:"gitVersion"`
	GitCommit  string `json:"gitCommit"`
	BuildDate  string `json:"buildDate"`
	GoVersion  string `json:"goVersion"`
	Platform   string `json:"platform"`
}

// Get returns the version information of the running binary.
func Get() Info {
	return Info{
		GitVersion: gitVersion,
		GitCommit:  gitCommit,
		BuildDate:  buildDate,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a formatted version string
func (i Info) String() string {
	commitShort := i.GitCommit
	if len(commitShort) > 8 {
		commitShort = commitShort[:8]
	}
	return fmt.Sprintf("%s (%s) built %s with %s for %s",
		i.GitVersion, commitShort, i.BuildDate, i.GoVersion, i.Platform)
}
