// Package version exposes build-time version information. The variables
// are overridden at link time via -ldflags.
package version

var (
	gitVersion = "v0.0.0-unknown"
	gitCommit  = ""
)

// Info holds the version details of this build.
type Info struct {
	GitVersion string `json:"gitVersion"`
	GitCommit  string `json:"gitCommit"`
}

// Get returns the version information of the running binary.
func Get() Info {
	return Info{
		GitVersion: gitVersion,
		GitCommit:  gitCommit,
	}
}

func (i Info) String() string {
	return i.GitVersion
}
