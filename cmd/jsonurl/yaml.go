package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsonurl/jsonurl-go/jsonurl"
	"github.com/jsonurl/jsonurl-go/jsonurl/yamlconv"
)

func newFromYAMLCmd(parserCfg *jsonurl.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "fromyaml [flags] [file]",
		Short: "Convert a YAML document into JSON<->URL text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			v, err := yamlconv.ToValue(data)
			if err != nil {
				return err
			}

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
}

func newToYAMLCmd(parserCfg *jsonurl.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "toyaml [flags] [file]",
		Short: "Convert JSON<->URL text into a YAML document",
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

			out, err := yamlconv.ToYAML(v)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out)
			if err != nil {
				return fmt.Errorf("writing output: %w", err)
			}

			return nil
		},
	}
}
