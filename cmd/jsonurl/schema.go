package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsonurl/jsonurl-go/jsonurl"
	"github.com/jsonurl/jsonurl-go/jsonurl/schema"
)

func newSchemaCmd(parserCfg *jsonurl.Config) *cobra.Command {
	var indent int

	cmd := &cobra.Command{
		Use:   "schema [flags] [file]",
		Short: "Infer a JSON Schema from JSON<->URL text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			v, err := parserCfg.NewParser().Parse(string(data))
			if err != nil {
				return fmt.Errorf("decoding: %w", err)
			}

			s := schema.Infer(v)

			out, err := json.MarshalIndent(s, "", indentString(indent))
			if err != nil {
				return fmt.Errorf("encoding schema: %w", err)
			}

			out = append(out, '\n')

			_, err = cmd.OutOrStdout().Write(out)
			if err != nil {
				return fmt.Errorf("writing output: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&indent, "indent", "i", 2, "JSON indentation spaces")

	return cmd
}
