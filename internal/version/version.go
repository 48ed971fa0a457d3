// Package version reports the build information injected at link time:
//
//	go build -ldflags "-X github.com/information-sharing-networks/crypto-api/internal/version.version=v1.0.0 \
//	  -X github.com/information-sharing-networks/crypto-api/internal/version.buildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ) \
//	  -X github.com/information-sharing-networks/crypto-api/internal/version.gitCommit=$(git rev-parse --short HEAD)"
package version

import "runtime/debug"

var (
	version   = "dev"
	buildDate = "unknown"
	gitCommit = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string
	BuildDate string
	GitCommit string
}

// Get returns the build information.
// When the commit was not set with -ldflags the VCS revision recorded by the go tool is used.
func Get() Info {
	info := Info{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
	}

	if info.GitCommit == "unknown" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" && len(s.Value) >= 7 {
					info.GitCommit = s.Value[:7]
				}
			}
		}
	}
	return info
}
