//go:build debug

package main

import (
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/rowcrunch/onebrc/internal/errors"
)

var (
	memProfilePath string
	cpuProfilePath string
	stopProfiling  = func() {}
)

func init() {
	f := cmdRoot.PersistentFlags()
	f.StringVar(&memProfilePath, "mem-profile", "", "write memory profile to `dir`")
	f.StringVar(&cpuProfilePath, "cpu-profile", "", "write cpu profile to `dir`")

	origRunE := cmdRoot.RunE
	cmdRoot.RunE = func(cmd *cobra.Command, args []string) error {
		if err := startProfiling(); err != nil {
			return err
		}
		defer stopProfiling()
		return origRunE(cmd, args)
	}
}

func startProfiling() error {
	if memProfilePath != "" && cpuProfilePath != "" {
		return errors.Fatal("only one profile (memory or CPU) may be activated at the same time")
	}

	var prof interface{ Stop() }
	if memProfilePath != "" {
		prof = profile.Start(profile.Quiet, profile.NoShutdownHook, profile.MemProfile, profile.ProfilePath(memProfilePath))
	} else if cpuProfilePath != "" {
		prof = profile.Start(profile.Quiet, profile.NoShutdownHook, profile.CPUProfile, profile.ProfilePath(cpuProfilePath))
	}

	if prof != nil {
		stopProfiling = prof.Stop
	}

	return nil
}
