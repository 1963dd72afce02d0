package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/caryan/paranormal/schema"
	"github.com/caryan/paranormal/serialize"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Resolve a serialized instance file and print its effective values",
	Long: `show reads a YAML or JSON instance file, resolves it against the
registered definitions and prints every field with its effective value,
so partial ranges and enum members come out the way code would see them.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	format, err := formatOf(path)
	if err != nil {
		return err
	}

	m, err := decodeAs(format, data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	in, err := serialize.FromMap(m)
	if err != nil {
		return err
	}

	logger.Debug("resolved instance", "dump", spew.Sdump(in))

	printInstance(cmd.OutOrStdout(), in, "")
	return nil
}

func printInstance(w io.Writer, in *schema.Instance, indent string) {
	fmt.Fprintf(w, "%s%s\n", indent, in.Definition().ID())
	for _, it := range in.Items() {
		if nested, ok := it.Value.(*schema.Instance); ok {
			fmt.Fprintf(w, "%s  %s:\n", indent, it.Name)
			printInstance(w, nested, indent+"    ")
			continue
		}

		unit := in.Definition().Unit(it.Name)
		if unit != "" {
			unit = " " + unit
		}

		fmt.Fprintf(w, "%s  %-24s %v%s\n", indent, it.Name, it.Value, unit)
	}
}
