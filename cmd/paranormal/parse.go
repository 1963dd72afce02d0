package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/caryan/paranormal"
	"github.com/caryan/paranormal/argspec"
	"github.com/caryan/paranormal/flatten"
	"github.com/caryan/paranormal/reconstruct"
)

var parseCmd = &cobra.Command{
	Use:   "parse <namespace.Type> [flags and positionals...]",
	Short: "Parse a command line derived from a definition",
	Long: `parse derives a command line from a registered definition, parses the
remaining arguments with it and prints the resulting instance as YAML.
Pass --help after the type name to see the derived usage.`,
	// The derived flag set owns everything after the type name.
	DisableFlagParsing: true,
	RunE:               runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || args[0] == "--help" || args[0] == "-h" {
		return cmd.Help()
	}

	d, err := lookupType(args[0])
	if err != nil {
		return err
	}

	set, err := flatten.Fields(d)
	if err != nil {
		return err
	}

	ns, err := argspec.Parse(args[0], set, args[1:], argspec.Output(cmd.ErrOrStderr()))
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}

		return err
	}

	in, err := reconstruct.One(ns, d)
	if err != nil {
		return err
	}

	out, err := paranormal.ToYAML(in)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}
