package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsonurl/jsonurl-go/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(),
				"jsonurl %s (%s, %s/%s, built by %s on %s)\n",
				version.Version, version.Revision, version.GoOS, version.GoArch,
				version.BuildUser, version.BuildDate)

			return err
		},
	}
}
