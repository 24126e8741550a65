package main

import (
	"os"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	versionInfo := VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	if err := RootCmd(versionInfo).Execute(); err != nil {
		os.Exit(1)
	}
}
