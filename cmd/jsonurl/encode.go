package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsonurl/jsonurl-go/jsonurl"
)

func newEncodeCmd(parserCfg *jsonurl.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [flags] [file]",
		Short: "Encode JSON into JSON<->URL text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var decoded any

			err = json.Unmarshal(data, &decoded)
			if err != nil {
				return fmt.Errorf("decoding json: %w", err)
			}

			v := jsonurl.FromJSON(decoded)

			out, err := jsonurl.ToString(v, parserCfg.ParserOptions())
			if err != nil {
				return fmt.Errorf("encoding: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			if err != nil {
				return fmt.Errorf("writing output: %w", err)
			}

			return nil
		},
	}

	return cmd
}
