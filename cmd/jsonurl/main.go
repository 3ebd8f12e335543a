// Package main provides the jsonurl CLI, a tool for encoding and decoding
// JSON<->URL text and converting it to and from YAML and JSON Schema.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsonurl/jsonurl-go/jsonurl"
	"github.com/jsonurl/jsonurl-go/log"
	"github.com/jsonurl/jsonurl-go/profile"
)

func main() {
	logCfg := log.NewConfig()
	profileCfg := profile.NewConfig()
	parserCfg := jsonurl.NewConfig()

	var prof *profile.Profiler

	rootCmd := &cobra.Command{
		Use:           "jsonurl",
		Short:         "Encode, decode, and inspect JSON<->URL text",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := log.NewHandlerFromStrings(os.Stderr, logCfg.Level, logCfg.Format)
			if err != nil {
				return fmt.Errorf("configuring logging: %w", err)
			}

			slog.SetDefault(slog.New(handler).With(slog.String("request_id", uuid.NewString())))

			prof = profileCfg.NewProfiler()

			return prof.Start()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return prof.Stop()
		},
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profileCfg.RegisterFlags(rootCmd.PersistentFlags())
	parserCfg.RegisterFlags(rootCmd.PersistentFlags())

	for _, register := range []func(*cobra.Command) error{
		logCfg.RegisterCompletions,
		profileCfg.RegisterCompletions,
		parserCfg.RegisterCompletions,
	} {
		err := register(rootCmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
		}
	}

	rootCmd.AddCommand(
		newEncodeCmd(parserCfg),
		newDecodeCmd(parserCfg),
		newFromYAMLCmd(parserCfg),
		newToYAMLCmd(parserCfg),
		newSchemaCmd(parserCfg),
		newVersionCmd(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(args[0]) //nolint:gosec // Input path is expected from CLI args.
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", args[0], err)
	}

	return data, nil
}
