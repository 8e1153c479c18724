package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func (a *app) versionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", BuildDetails())
		},
	}
	return c
}

func BuildDetails() string {
	if version == "" {
		return `terrapath (unknown version)
To build with version information use -ldflags "-X main.version=..."`
	}

	return fmt.Sprintf(`terrapath %v
Commit SHA-1          : %v
Commit timestamp      : %v
Go version            : %v`,
		version,
		commit,
		date,
		runtime.Version())
}
