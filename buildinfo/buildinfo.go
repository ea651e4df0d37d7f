package buildinfo

import (
	"fmt"
	"os"
	"runtime"
)

// Build information variables set via ldflags during compilation
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info contains build and runtime information
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	Hostname  string
}

// GetInfo returns complete build and runtime information
func GetInfo() Info {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Hostname:  hostname,
	}
}

func (i Info) String() string {
	return fmt.Sprintf("Version: %s, Commit: %s, BuildDate: %s, GoVersion: %s, Hostname: %s",
		i.Version, i.Commit, i.BuildDate, i.GoVersion, i.Hostname)
}
