package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jongio/urljudge/cliout"
	"github.com/jongio/urljudge/config"
	"github.com/jongio/urljudge/logutil"
	"github.com/jongio/urljudge/version"
)

// globalOptions holds the persistent flags and the profile they resolve to.
type globalOptions struct {
	output     string
	debug      bool
	configPath string
	profile    string

	resolved config.Profile
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "urljudge",
		Short:         "Judge whether strings are syntactically valid URLs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.output, "output", "o", "default", "Output format (default, json)")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.StringVar(&opts.configPath, "config", "", "Path to a profiles YAML file")
	flags.StringVar(&opts.profile, "profile", config.DefaultProfile, "Profile to use")

	root.AddCommand(
		newCheckCmd(opts),
		newRegressCmd(opts),
		newFuzzCmd(opts),
		newServeCmd(opts),
		newInitCmd(),
		newMetadataCmd(),
		version.NewCommand(version.New("urljudge")),
	)
	return root
}

func (o *globalOptions) init() error {
	if err := cliout.SetFormat(o.output); err != nil {
		return err
	}

	profile, err := config.Resolve(o.configPath, o.profile)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	o.resolved = profile

	logutil.SetupLogger(o.debug, profile.LogFormat == "json")
	if !o.debug && profile.LogLevel != "" {
		logutil.SetLevel(logutil.ParseLevel(profile.LogLevel))
	}
	logutil.Debug("configuration resolved", "profile", profile.Name, "config", o.configPath)
	return nil
}
