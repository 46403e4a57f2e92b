package version

import (
	"fmt"
	"runtime/debug"
)

// Build metadata, set with -ldflags "-X".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string            `json:"version" yaml:"version"`
	Commit    string            `json:"commit" yaml:"commit"`
	Date      string            `json:"date" yaml:"date"`
	GoVersion string            `json:"go_version" yaml:"go_version"`
	Module    string            `json:"module" yaml:"module"`
	Deps      map[string]string `json:"deps,omitempty" yaml:"deps,omitempty"`
}

// BuildInfo returns the build information
func BuildInfo() (*debug.BuildInfo, error) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, fmt.Errorf("fetching build info failed")
	}

	if bi == nil {
		return nil, fmt.Errorf("build information is empty")
	}

	return bi, nil
}

// Current combines the linker-provided metadata with the module build information.
// withDeps adds the versions of the module dependencies.
func Current(withDeps bool) (Info, error) {
	info := Info{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
	}

	bi, err := BuildInfo()
	if err != nil {
		return info, err
	}

	info.GoVersion = bi.GoVersion
	info.Module = bi.Main.Path

	if withDeps {
		info.Deps = make(map[string]string, len(bi.Deps))
		for _, dep := range bi.Deps {
			info.Deps[dep.Path] = dep.Version
		}
	}

	return info, nil
}
