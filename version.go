package xr

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// EngineName is reported to the runtime as the engine name.
const EngineName = "gogpu"

// EngineVersion is reported to the runtime as the engine version.
var EngineVersion = Version{Major: 0, Minor: 1, Patch: 0}

// Version is a semantic version that fits the runtime's packed form.
type Version struct {
	Major, Minor, Patch uint32
}

// Limits of the packed form.
const (
	maxMajor = 1<<10 - 1
	maxMinor = 1<<10 - 1
	maxPatch = 1<<12 - 1
)

// ParseVersion parses a semantic version such as "1.2.3" or "v0.4".
// Pre-release and build metadata are accepted and discarded.
func ParseVersion(s string) (Version, error) {
	sv, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("xr: parse version %q: %w", s, err)
	}
	if sv.Major() > maxMajor || sv.Minor() > maxMinor || sv.Patch() > maxPatch {
		return Version{}, fmt.Errorf("xr: version %s out of range", sv)
	}
	return Version{
		Major: uint32(sv.Major()),
		Minor: uint32(sv.Minor()),
		Patch: uint32(sv.Patch()),
	}, nil
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Pack returns the version in the runtime's 32-bit form.
func (v Version) Pack() uint32 {
	return v.Major<<22 | v.Minor<<12 | v.Patch
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// AppInfo identifies the application to the runtime.
type AppInfo struct {
	Name    string
	Version Version
}
