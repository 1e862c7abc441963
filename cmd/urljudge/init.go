package main

import (
	"github.com/spf13/cobra"

	"github.com/jongio/urljudge/cliout"
	"github.com/jongio/urljudge/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write a sample profiles file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "urljudge.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.SaveSample(path); err != nil {
				return err
			}
			cliout.Success("wrote %s", path)
			return nil
		},
	}
}
