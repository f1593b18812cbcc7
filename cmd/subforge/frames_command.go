package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"subforge/internal/render"
)

func newFramesCommand(ctx *commandContext) *cobra.Command {
	var start float64
	var end float64

	cmd := &cobra.Command{
		Use:   "frames <transcript> <output-dir>",
		Short: "Render PNG overlay frames for every output video frame",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := strings.TrimSpace(args[0])
			outDir := strings.TrimSpace(args[1])
			if source == "" || outDir == "" {
				return fmt.Errorf("transcript and output directory are required")
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
			if end <= 0 {
				for _, c := range cues {
					if c.End > end {
						end = c.End
					}
				}
			}
			if end <= start {
				return fmt.Errorf("nothing to render between %.2fs and %.2fs", start, end)
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("ensure output directory: %w", err)
			}

			// One renderer per job; the monotonically increasing timestamp
			// is what its cache is built around.
			r := render.New(cues, style, render.WithFontPath(cfg.Style.FontFile))
			fps := cfg.Job.FPS
			total := 0
			logger.Info("render frames", "input", source, "fps", fps, "span", fmt.Sprintf("%.2fs-%.2fs", start, end))
			for i := 0; ; i++ {
				t := start + float64(i)/fps
				if t >= end {
					break
				}
				frame := r.RenderFrame(t)
				name := filepath.Join(outDir, fmt.Sprintf("frame_%06d.png", i))
				if err := writePNG(name, frame); err != nil {
					return err
				}
				total++
			}
			logger.Info("frames written", "count", total, "dir", outDir)
			return nil
		},
	}
	cmd.Flags().Float64Var(&start, "start", 0, "first timestamp to render, in seconds")
	cmd.Flags().Float64Var(&end, "end", 0, "last timestamp to render, in seconds (0 = end of last cue)")
	return cmd
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create frame: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode frame: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close frame: %w", err)
	}
	return nil
}
