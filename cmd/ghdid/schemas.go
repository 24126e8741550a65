package main

import (
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sufield/ghdid/internal/schema"
)

// SchemasCmd lists the registered schemas.
func SchemasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemas",
		Short: "List the built-in wallet key schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			validator, err := schema.NewValidator()
			if err != nil {
				return err
			}
			printSchemas(cmd.OutOrStdout(), validator)
			return nil
		},
	}
}

func printSchemas(w io.Writer, validator *schema.Validator) {
	names := make(map[string]string, len(schema.Builtin))
	for name, id := range schema.Builtin {
		names[id] = name
	}

	ids := validator.Schemas()
	sort.Strings(ids)

	table := NewTableWriter([]string{"Name", "ID"})
	for _, id := range ids {
		table.AddRow([]string{names[id], id})
	}
	table.Print(w)
}
