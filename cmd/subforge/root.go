package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"subforge/internal/captions"
	"subforge/internal/config"
	"subforge/internal/logging"
	"subforge/internal/transcript"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		path := ""
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		if path == "" {
			c.config = config.Default()
			return
		}
		c.config, c.configErr = config.Load(path)
	})
	return c.config, c.configErr
}

// jobLogger builds the logger for one invocation with a fresh job id
// attached, so interleaved runs are distinguishable in shared logs.
func (c *commandContext) jobLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logging.Options{
		Level:  cfg.Job.LogLevel,
		Format: cfg.Job.LogFormat,
	})
	if err != nil {
		return nil, err
	}
	return logger.With("job", newJobID()), nil
}

// newJobID returns the identifier attached to every log line of one
// invocation.
func newJobID() string {
	return uuid.NewString()
}

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "subforge",
		Short:         "Generate subtitle descriptions and overlay frames from transcripts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to job configuration (TOML)")

	ctx := &commandContext{configFlag: &configPath}
	root.AddCommand(newGenerateCommand(ctx))
	root.AddCommand(newFramesCommand(ctx))
	root.AddCommand(newInspectCommand(ctx))
	root.AddCommand(newConfigInitCommand())
	return root
}

// loadCues reads a transcript file, choosing the parser by extension.
func loadCues(path string) ([]captions.Cue, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return transcript.LoadWhisperJSON(path)
	case ".srt":
		return transcript.LoadSRT(path)
	default:
		return nil, fmt.Errorf("unsupported transcript format %q (use .json or .srt)", filepath.Ext(path))
	}
}
