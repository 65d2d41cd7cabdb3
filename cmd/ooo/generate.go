package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ooo/internal/clipboard"
	"github.com/alexisbeaulieu97/ooo/internal/composer"
)

type generateOptions struct {
	Tone    string
	Holiday string
	Family  string
	Seed    uint64
	Copy    bool
	Fields  map[composer.Field]*string
}

var fieldFlags = []struct {
	field composer.Field
	name  string
	usage string
}{
	{composer.FieldName, "name", "Your name"},
	{composer.FieldReturnDate, "return-date", "Date you will be back"},
	{composer.FieldReason, "reason", "Reason for absence, e.g. 'on vacation'"},
	{composer.FieldContact, "contact", "Person to contact for urgent matters"},
	{composer.FieldActivity, "activity", "Mad-lib activity"},
	{composer.FieldLocation, "location", "Mad-lib location"},
	{composer.FieldExcuse, "excuse", "Mad-lib excuse"},
	{composer.FieldHobby, "hobby", "Mad-lib hobby"},
	{composer.FieldFood, "food", "Mad-lib food"},
}

func newGenerateCmd(root *rootFlags) *cobra.Command {
	opts := &generateOptions{Fields: make(map[composer.Field]*string, len(fieldFlags))}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a generated out-of-office message",
		Example: `  ooo generate --tone minimal --name Ava --return-date 2024-07-01 --reason "on vacation" --contact Ben
  ooo generate --family madlib --holiday christmas --activity skiing --location Tromsø --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Tone, "tone", "t", "", "Tone: fun, professional, minimal, adventurous")
	cmd.Flags().StringVar(&opts.Holiday, "holiday", "", "Holiday theme: none, christmas, newyear")
	cmd.Flags().StringVarP(&opts.Family, "family", "f", "", "Template family: classic, madlib")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "Seed for reproducible phrase selection")
	cmd.Flags().BoolVar(&opts.Copy, "copy", false, "Also copy the message to the clipboard")

	for _, f := range fieldFlags {
		value := new(string)
		opts.Fields[f.field] = value
		cmd.Flags().StringVar(value, f.name, "", f.usage)
	}

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootFlags, opts *generateOptions) error {
	app, err := loadApp(cmd, root)
	if err != nil {
		return err
	}

	req, err := buildRequest(cmd, app, opts)
	if err != nil {
		return err
	}

	var composerOpts []composer.Option
	if cmd.Flags().Changed("seed") {
		composerOpts = append(composerOpts, composer.WithRand(composer.NewSeededRand(opts.Seed)))
	}

	msg, err := composer.New(composerOpts...).Generate(req)
	if err != nil {
		return err
	}

	app.log.WithFields(map[string]any{
		"tone":    msg.Tone,
		"holiday": msg.Holiday,
		"family":  msg.Family,
		"layout":  msg.Layout,
	}).Debug("message generated")

	fmt.Fprintln(cmd.OutOrStdout(), msg.Text)

	if opts.Copy {
		if err := clipboard.Write(newCopier(cmd), msg.Text); err != nil {
			app.log.Warn(err, "copy to clipboard failed")
		} else {
			app.log.Info("message copied to clipboard")
		}
	}

	return nil
}

// buildRequest layers explicitly set flags over the configured defaults.
func buildRequest(cmd *cobra.Command, app *appContext, opts *generateOptions) (composer.Request, error) {
	req := app.cfg.Defaults.Request()
	flags := cmd.Flags()

	if flags.Changed("tone") {
		tone, err := composer.ParseTone(opts.Tone)
		if err != nil {
			return composer.Request{}, err
		}
		req.Tone = tone
	}
	if flags.Changed("holiday") {
		holiday, err := composer.ParseHoliday(opts.Holiday)
		if err != nil {
			return composer.Request{}, err
		}
		req.Holiday = holiday
	}
	if flags.Changed("family") {
		family, err := composer.ParseFamily(opts.Family)
		if err != nil {
			return composer.Request{}, err
		}
		req.Family = family
	}

	for _, f := range fieldFlags {
		if flags.Changed(f.name) {
			req.Fields = req.Fields.With(f.field, *opts.Fields[f.field])
		}
	}

	return req, nil
}
