package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"reelsort/internal/config"
	"reelsort/internal/logging"
	"reelsort/internal/pipeline"
	"reelsort/internal/progress"
)

func newOrganizeCommand(cmdCtx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organize [path]",
		Short: "Rename, tag, and file every movie folder under the library root",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}

			root := cfg.Paths.LibraryDir
			if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
				root, err = config.ExpandPath(args[0])
				if err != nil {
					return fmt.Errorf("resolve library path: %w", err)
				}
			}
			if info, statErr := os.Stat(root); statErr != nil || !info.IsDir() {
				return fmt.Errorf("library root %s is not a directory", root)
			}

			logger, err := logging.NewFromOptions(cfg.Logging.Level, cfg.Logging.Format, cfg.Paths.LogDir)
			if err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}

			p, err := pipeline.New(cfg, logger)
			if err != nil {
				return err
			}
			defer p.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			result, err := p.Run(ctx, root, newProgressPrinter(out))
			if err != nil {
				return err
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, result.Summary.Line())
			return nil
		},
	}
	return cmd
}

// progressPrinter renders one updating line per stage on the terminal.
type progressPrinter struct {
	mu    sync.Mutex
	out   io.Writer
	stage progress.Stage
}

func newProgressPrinter(out io.Writer) *progressPrinter {
	return &progressPrinter{out: out}
}

func (p *progressPrinter) Report(stage progress.Stage, percent float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if stage != p.stage {
		if p.stage != "" {
			fmt.Fprintln(p.out)
		}
		p.stage = stage
	}
	fmt.Fprintf(p.out, "\r%-10s %5.1f%%", string(stage), progress.Clamp(percent))
}
