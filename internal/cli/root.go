package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ishaan812/linecounter/internal/config"
	"github.com/ishaan812/linecounter/internal/prompt"
	"github.com/ishaan812/linecounter/internal/session"
	"github.com/ishaan812/linecounter/internal/tui"
)

var (
	verbose bool
	quiet   bool
	noColor bool
	plain   bool
)

var rootCmd = &cobra.Command{
	Use:   "linecounter",
	Short: "Line Counter - Count the lines of a project interactively",
	Long: `Line Counter walks a project directory, lets you exclude folders and pick
file extensions, then sums the lines of every matching file.

The session loops until you interrupt it at the directory prompt and confirm.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSession,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgHiRed).Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print a line for every counted file")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "Use plain line-based prompts even on a terminal")
}

func IsVerbose() bool {
	return verbose
}

func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Verbose = verbose
	cfg.Quiet = quiet
	cfg.NoColor = noColor
	cfg.Plain = plain

	if cfg.NoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	VerboseLog("home: %s, working directory: %s", cfg.HomeDir, cfg.WorkDir)

	ui := newUI(cfg)

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	done := make(chan struct{})
	defer func() {
		signal.Stop(interrupts)
		close(done)
	}()
	go handleInterrupts(ui, interrupts, done, func() {
		ui.Clear()
		os.Exit(0)
	})

	controller := session.NewController(ui, session.Options{
		HomeDir:  cfg.HomeDir,
		Progress: !cfg.Quiet,
		Logf:     VerboseLog,
	})

	err = controller.Run(cmd.Context())
	ui.Clear()
	if errors.Is(err, session.ErrCanceled) {
		VerboseLog("session canceled")
		return nil
	}
	return err
}

// interrupter is implemented by front ends that turn an interrupt during an
// input wait into prompt.ErrCanceled.
type interrupter interface {
	Interrupt() bool
}

// handleInterrupts hands each interrupt to a pending read of ui. Interrupts
// outside an input wait call exit.
func handleInterrupts(ui prompt.UI, interrupts <-chan os.Signal, done <-chan struct{}, exit func()) {
	for {
		select {
		case <-done:
			return
		case <-interrupts:
			if in, ok := ui.(interrupter); ok && in.Interrupt() {
				VerboseLog("interrupt canceled pending input")
				continue
			}
			exit()
			return
		}
	}
}

func newUI(cfg *config.Config) prompt.UI {
	if !cfg.Plain && term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		VerboseLog("using terminal prompts")
		return tui.NewConsole(os.Stdin, os.Stdout)
	}
	VerboseLog("using plain prompts")
	return tui.NewPlain(os.Stdin, os.Stdout)
}
