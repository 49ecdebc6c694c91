// Package version provides build information for gluemodel
package version

import (
	"runtime"
	"runtime/debug"
)

// These variables are set via ldflags during build time
var (
	// Version is the semantic version of gluemodel
	Version = "dev"

	// GitCommit is the git commit SHA
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built
	BuildDate = "unknown"

	// GoVersion is the Go version used to build
	GoVersion = runtime.Version()
)

// APIVersion is the Glue API version the model was generated from
const APIVersion = "2017-03-31"

// GetVersion returns the version string
func GetVersion() string {
	if Version == "" {
		return "dev"
	}
	return Version
}

// GetFullVersion returns the full version information
func GetFullVersion() string {
	v := GetVersion()
	if GitCommit != "unknown" && GitCommit != "" {
		v += "-" + GitCommit
	}
	return v
}

// Info contains all version information
type Info struct {
	Version    string `json:"version"`
	GitCommit  string `json:"gitCommit"`
	BuildDate  string `json:"buildDate"`
	GoVersion  string `json:"goVersion"`
	APIVersion string `json:"apiVersion"`
	SDKVersion string `json:"sdkVersion,omitempty"`
}

// GetInfo returns all version information
func GetInfo() Info {
	return Info{
		Version:    Version,
		GitCommit:  GitCommit,
		BuildDate:  BuildDate,
		GoVersion:  GoVersion,
		APIVersion: APIVersion,
		SDKVersion: moduleVersion("github.com/aws/aws-sdk-go-v2/service/glue"),
	}
}

// moduleVersion reports the version of a dependency linked into the binary.
func moduleVersion(path string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, dep := range info.Deps {
		if dep.Path == path {
			return dep.Version
		}
	}
	return ""
}
