package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"subforge/internal/assdoc"
	"subforge/internal/captions"
	"subforge/internal/layout"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <transcript>",
		Short: "Show the normalized cue timeline a transcript produces",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			style, err := cfg.StyleConfig()
			if err != nil {
				return fmt.Errorf("style configuration: %w", err)
			}
			cues, err := loadCues(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			prepared := layout.PrepareCues(cues, style)

			fmt.Fprintln(cmd.OutOrStdout(), renderCueTable(prepared))
			fmt.Fprintf(cmd.OutOrStdout(), "%d cue(s) after normalization and splitting\n", len(prepared))
			return nil
		},
	}
}

// renderCueTable lays out prepared cues as the timeline the serializer and
// renderer will consume: one row per cue, timestamps in the dialogue-event
// format, word count blank for cues that will render statically.
func renderCueTable(cues []captions.Cue) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Start", "End", "Words", "Text"})
	for i, c := range cues {
		words := "-"
		if c.HasWords() {
			words = strconv.Itoa(len(c.Words))
		}
		tw.AppendRow(table.Row{
			i + 1,
			assdoc.Timestamp(c.Start),
			assdoc.Timestamp(c.End),
			words,
			truncate(c.Text, 60),
		})
	}
	// Numeric columns right-aligned, headers kept flush left.
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
