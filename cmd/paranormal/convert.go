package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/caryan/paranormal/serialize"
)

var (
	flagConvertOut  string
	flagConvertTo   string
	flagConvertSort bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Transcode a serialized instance file between YAML and JSON",
	Long: `convert reads a YAML or JSON instance file and writes it in the other
format (or the one picked with --to), preserving key order. The file is
not resolved against the registry, unknown types pass through intact.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&flagConvertOut, "out", "o", "", "output path (default stdout)")
	convertCmd.Flags().StringVar(&flagConvertTo, "to", "", "target format: yaml or json (default: the opposite of the input)")
	convertCmd.Flags().BoolVar(&flagConvertSort, "sort", false, "sort mapping keys alphabetically")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	from, err := formatOf(path)
	if err != nil {
		return err
	}

	m, err := decodeAs(from, data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	logger.Debug("decoded mapping", "path", path, "format", from, "keys", m.Len())

	if flagConvertSort {
		m = serialize.SortMap(m)
	}

	to := flagConvertTo
	if to == "" {
		to = opposite(from)
	}

	out, err := encodeAs(to, m)
	if err != nil {
		return err
	}

	if flagConvertOut == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}

	return os.WriteFile(flagConvertOut, out, 0o644)
}

func formatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	default:
		return "", fmt.Errorf("cannot tell the format of %q, use a .yaml or .json file", path)
	case ".yaml", ".yml":
		return "yaml", nil
	case ".json":
		return "json", nil
	}
}

func opposite(format string) string {
	if format == "yaml" {
		return "json"
	}

	return "yaml"
}

func decodeAs(format string, data []byte) (*serialize.Map, error) {
	if format == "json" {
		return serialize.DecodeJSON(data)
	}

	return serialize.DecodeYAML(data)
}

func encodeAs(format string, m *serialize.Map) ([]byte, error) {
	switch format {
	default:
		return nil, fmt.Errorf("unknown target format %q, want yaml or json", format)
	case "json":
		out, err := serialize.EncodeJSON(m)
		if err != nil {
			return nil, err
		}

		return append(out, '\n'), nil
	case "yaml":
		return serialize.EncodeYAML(m)
	}
}
