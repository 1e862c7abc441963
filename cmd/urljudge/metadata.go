package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jongio/urljudge/config"
	"github.com/jongio/urljudge/logutil"
)

// Metadata describes the command tree for shell integrations and docs.
type Metadata struct {
	SchemaVersion        string            `json:"schemaVersion"`
	Commands             []CommandMetadata `json:"commands"`
	EnvironmentVariables []EnvVarMetadata  `json:"environmentVariables"`
}

// CommandMetadata describes one command.
type CommandMetadata struct {
	Name        []string          `json:"name"`
	Short       string            `json:"short"`
	Usage       string            `json:"usage,omitempty"`
	Flags       []FlagMetadata    `json:"flags,omitempty"`
	Subcommands []CommandMetadata `json:"subcommands,omitempty"`
}

// FlagMetadata describes one local flag.
type FlagMetadata struct {
	Name        string `json:"name"`
	Shorthand   string `json:"shorthand,omitempty"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Default     string `json:"default,omitempty"`
}

// EnvVarMetadata describes one environment variable the binary reads.
type EnvVarMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Example     string `json:"example,omitempty"`
}

var envVars = []EnvVarMetadata{
	{Name: config.EnvSchemes, Description: "Comma-separated scheme allow-list, replaces the profile's", Example: "http,https"},
	{Name: config.EnvTLDs, Description: "Comma-separated top-level domain allow-list, replaces the profile's", Example: "com,org,net"},
	{Name: logutil.EnvDebug, Description: "Enable debug logging", Example: "true"},
	{Name: "NO_COLOR", Description: "Disable colored output"},
}

func newMetadataCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "metadata",
		Short:  "Print the command tree as JSON",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := json.MarshalIndent(generateMetadata(cmd.Root()), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal metadata: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func generateMetadata(root *cobra.Command) *Metadata {
	return &Metadata{
		SchemaVersion:        "1.0",
		Commands:             generateCommands(root),
		EnvironmentVariables: envVars,
	}
}

func generateCommands(cmd *cobra.Command) []CommandMetadata {
	var commands []CommandMetadata
	for _, child := range cmd.Commands() {
		if child.Hidden || child.Name() == "help" || child.Name() == "completion" {
			continue
		}
		commands = append(commands, generateCommand(child))
	}
	return commands
}

func generateCommand(cmd *cobra.Command) CommandMetadata {
	meta := CommandMetadata{
		Name:        commandPath(cmd),
		Short:       cmd.Short,
		Usage:       cmd.UseLine(),
		Subcommands: generateCommands(cmd),
	}

	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		meta.Flags = append(meta.Flags, FlagMetadata{
			Name:        f.Name,
			Shorthand:   f.Shorthand,
			Description: f.Usage,
			Type:        f.Value.Type(),
			Default:     f.DefValue,
		})
	})

	return meta
}

func commandPath(cmd *cobra.Command) []string {
	if cmd.HasParent() && cmd.Parent().HasParent() {
		return append(commandPath(cmd.Parent()), cmd.Name())
	}
	return []string{cmd.Name()}
}
