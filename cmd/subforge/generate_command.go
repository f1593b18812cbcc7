package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"subforge/internal/assdoc"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <transcript> <output.ass>",
		Short: "Serialize a transcript into an ASS subtitle description",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := strings.TrimSpace(args[0])
			dest := strings.TrimSpace(args[1])
			if source == "" || dest == "" {
				return fmt.Errorf("transcript and output paths are required")
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := ctx.jobLogger()
			if err != nil {
				return err
			}
			style, err := cfg.StyleConfig()
			if err != nil {
				return fmt.Errorf("style configuration: %w", err)
			}

			cues, err := loadCues(source)
			if err != nil {
				return err
			}
			logger.Info("generate subtitles", "input", source, "cues", len(cues))

			doc, err := assdoc.Generate(cues, style)
			if err != nil {
				return fmt.Errorf("serialize: %w", err)
			}
			if err := os.WriteFile(dest, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			logger.Info("subtitle description written", "output", dest)
			return nil
		},
	}
}
