package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsonurl/jsonurl-go/jsonurl"
)

func newDecodeCmd(parserCfg *jsonurl.Config) *cobra.Command {
	var indent int

	cmd := &cobra.Command{
		Use:   "decode [flags] [file]",
		Short: "Decode JSON<->URL text into JSON",
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

			out, err := json.MarshalIndent(jsonurl.ToJSON(v), "", indentString(indent))
			if err != nil {
				return fmt.Errorf("encoding json: %w", err)
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

func indentString(n int) string {
	if n <= 0 {
		return ""
	}

	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}

	return string(b)
}
