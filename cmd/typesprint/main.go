// Package main provides the CLI entrypoint for typesprint.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typesprint/internal/config"
	"github.com/verte-zerg/typesprint/internal/generator"
	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/sentences"
	"github.com/verte-zerg/typesprint/internal/stats"
	"github.com/verte-zerg/typesprint/internal/tui"
)

const (
	defaultDuration  = 30
	defaultSentences = 10
	defaultTickMs    = 200
	minTickMs        = 10
)

type options struct {
	duration  int
	sentences int
	tickMs    int
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:          "typesprint",
		Short:        "Timed typing speed test",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTestCmd(cmd, opts)
		},
	}

	rootCmd.Flags().IntVar(&opts.duration, "duration", defaultDuration, "session length in seconds")
	rootCmd.Flags().IntVar(&opts.sentences, "sentences", defaultSentences, "sentences drawn per session")
	rootCmd.Flags().IntVar(&opts.tickMs, "tick", defaultTickMs, "refresh interval in milliseconds")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newSentencesCmd())

	return rootCmd
}

func runTestCmd(cmd *cobra.Command, opts *options) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg, err := resolveConfig(cmd, opts, fileCfg)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("typesprint needs an interactive terminal")
	}

	m := tui.NewModel(cfg, generator.New(), sentences.Pool())
	program := tea.NewProgram(m, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	tm, ok := final.(*tui.Model)
	if !ok {
		return nil
	}
	result, ok := tm.LastResult()
	if !ok {
		return nil
	}
	out := cmd.OutOrStdout()
	if err := stats.RenderResult(out, result, stats.TerminalWidth(), stats.ShouldUseColor(out)); err != nil {
		logErrf("failed to print results: %v\n", err)
	}
	return nil
}

// resolveConfig layers explicit flags over file values over defaults.
func resolveConfig(cmd *cobra.Command, opts *options, fileCfg config.FileConfig) (model.Config, error) {
	applyIntConfig(cmd, "duration", &opts.duration, fileCfg.Session.Duration)
	applyIntConfig(cmd, "sentences", &opts.sentences, fileCfg.Session.Sentences)
	applyIntConfig(cmd, "tick", &opts.tickMs, fileCfg.Session.TickMs)

	if err := validateOptions(*opts); err != nil {
		return model.Config{}, err
	}
	return model.Config{
		Duration:     time.Duration(opts.duration) * time.Second,
		Sentences:    opts.sentences,
		TickInterval: time.Duration(opts.tickMs) * time.Millisecond,
	}, nil
}

func validateOptions(opts options) error {
	if opts.duration <= 0 {
		return fmt.Errorf("--duration must be > 0")
	}
	if opts.sentences <= 0 {
		return fmt.Errorf("--sentences must be > 0")
	}
	if opts.tickMs < minTickMs {
		return fmt.Errorf("--tick must be >= %d", minTickMs)
	}
	if opts.tickMs >= opts.duration*1000 {
		return fmt.Errorf("--tick must be shorter than --duration")
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := config.DefaultConfigPath()
			if err := ensureConfigFile(path); err != nil {
				return err
			}
			return openEditor(path)
		},
	}
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func openEditor(path string) error {
	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newSentencesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sentences",
		Short: "List the sentence pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range sentences.Pool() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), s); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			return nil
		},
	}
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typesprint configuration
# Uncomment a value to enable it. CLI flags override config values.

[session]
# duration = %d           # Session length in seconds
# sentences = %d          # Sentences drawn per session
# tick-ms = %d           # Refresh interval in milliseconds
`,
		defaultDuration,
		defaultSentences,
		defaultTickMs,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
