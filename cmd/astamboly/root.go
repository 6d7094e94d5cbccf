package main

import (
	"github.com/spf13/cobra"

	"github.com/mahanfarzaneh2000/Astamboly/internal/env"
	"github.com/mahanfarzaneh2000/Astamboly/log"
)

type rootParams struct {
	logLevel  *enumFlag
	logFormat *enumFlag
}

func newRootCommand() *cobra.Command {
	params := rootParams{
		logLevel:  newEnumFlag("info", []string{"debug", "info", "warn", "error"}),
		logFormat: newEnumFlag("text", []string{"text", "json", "json-pretty"}),
	}

	root := &cobra.Command{
		Use:   "astamboly",
		Short: "x86-64 instruction encoder",
		Long:  "Encode x86-64 instructions described as YAML into machine code, and inspect the opcode table.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := env.CmdFlags.CheckEnvironmentVariables(cmd); err != nil {
				return err
			}
			logger := log.Global()
			logger.SetOutput(cmd.ErrOrStderr())
			if err := logger.SetLevel(params.logLevel.String()); err != nil {
				return err
			}
			return logger.SetFormat(params.logFormat.String())
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().Var(params.logLevel, "log-level", "set log level: "+params.logLevel.Type())
	root.PersistentFlags().Var(params.logFormat, "log-format", "set log format: "+params.logFormat.Type())

	root.AddCommand(newEncodeCommand(), newMnemonicsCommand(), newVersionCommand())
	return root
}
