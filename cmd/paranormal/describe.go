package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/caryan/paranormal/schema"
	"github.com/caryan/paranormal/serialize"
)

var describeCmd = &cobra.Command{
	Use:   "describe <namespace.Type>",
	Short: "Print the JSON schema of a registered definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := lookupType(args[0])
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(serialize.Describe(d), "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

// lookupType resolves "namespace.Type", splitting on the last dot so
// dotted namespaces keep working.
func lookupType(arg string) (*schema.Definition, error) {
	dot := strings.LastIndex(arg, ".")
	if dot < 1 || dot == len(arg)-1 {
		return nil, fmt.Errorf("want a namespace.Type identity, got %q", arg)
	}

	d, ok := schema.DefaultRegistry.Lookup(arg[:dot], arg[dot+1:])
	if !ok {
		return nil, fmt.Errorf("no definition registered for %s, try the types command", arg)
	}

	return d, nil
}
