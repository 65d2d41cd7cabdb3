package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/ooo/internal/clipboard"
	"github.com/alexisbeaulieu97/ooo/internal/composer"
	"github.com/alexisbeaulieu97/ooo/internal/tui/form"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

var (
	formRunner = form.Run
	newCopier  = func(cmd *cobra.Command) clipboard.Copier {
		return clipboard.Default(cmd.ErrOrStderr(), os.Getenv)
	}
)

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "ooo",
		Short:         "Generate randomized out-of-office auto-replies",
		Long:          "ooo fills in a handful of fields and picks phrases by tone and holiday to produce an out-of-office message.\nRun without a subcommand to open the interactive form.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(cmd, flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file (default is $XDG_CONFIG_HOME/ooo/config.yaml)")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newTonesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runForm(cmd *cobra.Command, flags *rootFlags) error {
	if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
		fmt.Fprintln(cmd.ErrOrStderr(), "No terminal detected; use 'ooo generate' for scripted output.")
		return cmd.Help()
	}

	app, err := loadApp(cmd, flags)
	if err != nil {
		return err
	}

	result, err := formRunner(cmd.Context(), form.Options{
		Generator: composer.New(),
		Copier:    newCopier(cmd),
		Defaults:  app.cfg.Defaults,
	}, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	app.log.WithFields(map[string]any{"generated": result.Generated}).Debug("form closed")
	if !result.Message.Empty() {
		fmt.Fprintln(cmd.OutOrStdout(), result.Message.Text)
	}
	return nil
}

func isTerminal(stream any) bool {
	if file, ok := stream.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
