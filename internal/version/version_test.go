package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	original := Version
	defer func() { Version = original }()

	Version = ""
	assert.Equal(t, "dev", GetVersion())

	Version = "v1.2.3"
	assert.Equal(t, "v1.2.3", GetVersion())
}

func TestGetFullVersion(t *testing.T) {
	origVersion, origCommit := Version, GitCommit
	defer func() {
		Version = origVersion
		GitCommit = origCommit
	}()

	tests := []struct {
		name    string
		version string
		commit  string
		want    string
	}{
		{"unknown commit", "v1.0.0", "unknown", "v1.0.0"},
		{"empty commit", "v1.0.0", "", "v1.0.0"},
		{"with commit", "v1.0.0", "abc1234", "v1.0.0-abc1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.version
			GitCommit = tt.commit
			assert.Equal(t, tt.want, GetFullVersion())
		})
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, GitCommit, info.GitCommit)
	assert.Equal(t, "2017-03-31", info.APIVersion)
	assert.NotEmpty(t, info.GoVersion)
}
