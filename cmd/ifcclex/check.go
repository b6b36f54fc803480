package main

import (
	"fmt"

	"github.com/martinemde/ifcc/diagnostics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check <file.c | ->",
		Short: "Report lexical errors in a source file",
		Long:  "Scan a source file and render every lexical error. Exits non-zero when any error is found.",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}

	checkCmd.Flags().Bool("fail-fast", false, "Stop at the first lexical error")

	_ = viper.BindPFlag("fail_fast", checkCmd.Flags().Lookup("fail-fast"))

	return checkCmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	filename, src, err := readSource(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	stream := newStream(cmd.ErrOrStderr(), filename, src, viper.GetBool("fail_fast"))
	_ = stream.Fill()

	bag := diagnostics.NewBag()
	for _, lexErr := range stream.Errors() {
		bag.Add(diagnostics.FromLexError(filename, src, lexErr))
	}
	diagnostics.NewEmitter(cmd.ErrOrStderr(), src).EmitAll(bag)

	if bag.HasErrors() {
		return fmt.Errorf("%s: %d lexical error(s)", filename, bag.ErrorCount())
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d tokens, %d visible)\n", filename, len(stream.Tokens()), len(stream.Visible()))
	return nil
}
