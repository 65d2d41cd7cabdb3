package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ooo/internal/composer"
)

type tonesOptions struct {
	jsonOutput bool
}

func newTonesCmd() *cobra.Command {
	opts := &tonesOptions{}

	cmd := &cobra.Command{
		Use:   "tones",
		Short: "List tones, holiday themes and template families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.jsonOutput {
				return renderTonesJSON(cmd)
			}
			return renderTonesTable(cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderTonesTable(cmd *cobra.Command) error {
	bank := composer.DefaultPhraseBank()
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "TONE\tLABEL\tINTROS\tCLOSINGS")
	for _, tone := range composer.Tones() {
		fmt.Fprintf(writer, "%s\t%s\t%d\t%d\n", tone, tone.Label(), len(bank.IntrosFor(tone)), len(bank.ClosingsFor(tone)))
	}

	fmt.Fprintln(writer, "\nHOLIDAY\tLABEL\tADDITIONS")
	for _, holiday := range composer.Holidays() {
		fmt.Fprintf(writer, "%s\t%s\t%d\n", holiday, holiday.Label(), countNonEmpty(bank.AdditionsFor(holiday)))
	}

	fmt.Fprintln(writer, "\nFAMILY\tLABEL\tFIELDS")
	for _, family := range composer.Families() {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", family, family.Label(), joinFields(composer.FieldsFor(family)))
	}

	return writer.Flush()
}

type tonesJSONTone struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Intros   []string `json:"intros"`
	Closings []string `json:"closings"`
}

type tonesJSONHoliday struct {
	Name      string   `json:"name"`
	Label     string   `json:"label"`
	Additions []string `json:"additions"`
}

type tonesJSONFamily struct {
	Name   string   `json:"name"`
	Label  string   `json:"label"`
	Fields []string `json:"fields"`
}

type tonesJSONPayload struct {
	Tones    []tonesJSONTone    `json:"tones"`
	Holidays []tonesJSONHoliday `json:"holidays"`
	Families []tonesJSONFamily  `json:"families"`
}

func renderTonesJSON(cmd *cobra.Command) error {
	bank := composer.DefaultPhraseBank()
	payload := tonesJSONPayload{}

	for _, tone := range composer.Tones() {
		payload.Tones = append(payload.Tones, tonesJSONTone{
			Name:     tone.String(),
			Label:    tone.Label(),
			Intros:   bank.IntrosFor(tone),
			Closings: bank.ClosingsFor(tone),
		})
	}
	for _, holiday := range composer.Holidays() {
		additions := make([]string, 0)
		for _, a := range bank.AdditionsFor(holiday) {
			if a != "" {
				additions = append(additions, a)
			}
		}
		payload.Holidays = append(payload.Holidays, tonesJSONHoliday{
			Name:      holiday.String(),
			Label:     holiday.Label(),
			Additions: additions,
		})
	}
	for _, family := range composer.Families() {
		payload.Families = append(payload.Families, tonesJSONFamily{
			Name:   family.String(),
			Label:  family.Label(),
			Fields: fieldNames(composer.FieldsFor(family)),
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func countNonEmpty(values []string) int {
	n := 0
	for _, v := range values {
		if v != "" {
			n++
		}
	}
	return n
}

func fieldNames(fields []composer.Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return names
}

func joinFields(fields []composer.Field) string {
	return strings.Join(fieldNames(fields), ", ")
}
