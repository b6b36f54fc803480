package main

import (
	"fmt"

	"github.com/martinemde/ifcc/diagnostics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newTokensCmd() *cobra.Command {
	tokensCmd := &cobra.Command{
		Use:   "tokens <file.c | ->",
		Short: "Print the token stream of a source file",
		Long:  "Scan a source file and print every token with its position. Lexical errors are reported on stderr and do not stop the scan.",
		Args:  cobra.ExactArgs(1),
		RunE:  runTokens,
	}

	tokensCmd.Flags().String("channel", "all", "Channel to print: all, default or hidden")
	tokensCmd.Flags().String("format", "text", "Output format: text or json")

	_ = viper.BindPFlag("channel", tokensCmd.Flags().Lookup("channel"))
	_ = viper.BindPFlag("format", tokensCmd.Flags().Lookup("format"))

	return tokensCmd
}

func runTokens(cmd *cobra.Command, args []string) error {
	filename, src, err := readSource(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	stream := newStream(cmd.ErrOrStderr(), filename, src, false)
	_ = stream.Fill()

	tokens, err := selectChannel(stream, viper.GetString("channel"))
	if err != nil {
		return err
	}

	switch format := viper.GetString("format"); format {
	case "text":
		writeText(cmd.OutOrStdout(), tokens)
		if len(stream.Errors()) > 0 {
			emitter := diagnostics.NewEmitter(cmd.ErrOrStderr(), src)
			for _, lexErr := range stream.Errors() {
				emitter.Emit(diagnostics.FromLexError(filename, src, lexErr))
			}
		}
		return nil
	case "json":
		return writeJSON(cmd.OutOrStdout(), stream, tokens)
	default:
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}
}
