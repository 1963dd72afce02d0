package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/caryan/paranormal/schema"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the registered parameter definitions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := schema.DefaultRegistry.IDs()
		if len(ids) == 0 {
			return fmt.Errorf("no definitions registered")
		}

		for _, id := range ids {
			d, ok := schema.DefaultRegistry.Lookup(id.Namespace, id.Name)
			if !ok {
				continue
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%-40s %s\n", id, strings.Join(d.Names(), ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
