package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/tracalorie/internal/app"
	"github.com/idilsaglam/tracalorie/internal/config"
	"github.com/idilsaglam/tracalorie/internal/store"
	"github.com/idilsaglam/tracalorie/internal/store/jsonstore"
	"github.com/idilsaglam/tracalorie/internal/store/sqlitestore"
	"github.com/idilsaglam/tracalorie/internal/ui"
)

// Options wire the CLI to its process environment.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	// Interactive starts the TUI; tests replace it.
	Interactive func(ctx context.Context, st *app.State, cfg config.Config) error
}

type rootFlags struct {
	configPath string
	dataDir    string
	backend    string
	theme      string
	goal       int
	verbose    bool
	noColor    bool
}

// runtime is built once per invocation and shared by the subcommands.
type runtime struct {
	opt   Options
	flags rootFlags
	cfg   config.Config
	p     *ui.Printer
	log   *slog.Logger
	slots store.Slots
	state *app.State
}

// Run executes one CLI invocation and returns the exit code.
func Run(ctx context.Context, args []string, opt Options) int {
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	rt := &runtime{
		opt: opt,
		p:   ui.NewPrinter(opt.Stdout, opt.Stderr, ui.ThemeByName("classic"), false),
	}
	defer rt.close()

	cmd := newRootCommand(rt)
	cmd.SetArgs(args)
	cmd.SetOut(opt.Stdout)
	cmd.SetErr(opt.Stderr)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		rt.p.Fail(err.Error())
	}
	return exitCode(err)
}

func newRootCommand(rt *runtime) *cobra.Command {
	f := &rt.flags
	cmd := &cobra.Command{
		Use:   "tracalorie",
		Short: "Track food items and their calories",
		Long: `tracalorie keeps a list of food items with calorie counts and shows
the running total against a daily goal.

Examples:
  tracalorie add 600 Pizza
  tracalorie ls
  tracalorie edit 0 700 Chocolate cake
  tracalorie rm 2
  tracalorie tui`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError("unknown subcommand: %s", args[0])
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return &ExitCodeError{Code: ExitUsage, Message: "no subcommand given"}
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitCodeError{Code: ExitUsage, Message: "flags", Err: err}
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (default ~/.tracalorie/config.yaml)")
	pf.StringVar(&f.dataDir, "data-dir", "", "directory holding the persisted list")
	pf.StringVar(&f.backend, "backend", "", "storage backend (json|sqlite)")
	pf.StringVar(&f.theme, "theme", "", "output theme ("+strings.Join(ui.ThemeNames, "|")+")")
	pf.IntVar(&f.goal, "goal", 0, "daily calorie goal, 0 hides the goal bar")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging on stderr")
	pf.BoolVar(&f.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		newAddCommand(rt),
		newEditCommand(rt),
		newRemoveCommand(rt),
		newClearCommand(rt),
		newListCommand(rt),
		newTotalCommand(rt),
		newTUICommand(rt),
	)
	return cmd
}

// setup merges config sources (file, env, flags), validates them and builds
// the logger and printer.
func (rt *runtime) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(rt.flags.configPath)
	if err != nil {
		return err
	}
	f := rt.flags
	if f.dataDir != "" {
		cfg.DataDir = f.dataDir
	}
	if f.backend != "" {
		cfg.Backend = strings.ToLower(f.backend)
	}
	if f.theme != "" {
		cfg.Theme = strings.ToLower(f.theme)
	}
	if cmd.Flags().Changed("goal") {
		cfg.DailyGoal = f.goal
	}
	if err := cfg.Validate(); err != nil {
		return &ExitCodeError{Code: ExitUsage, Message: "config", Err: err}
	}
	rt.cfg = cfg

	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(rt.opt.Stderr, &slog.HandlerOptions{Level: level})
	rt.log = slog.New(handler).With("run", uuid.NewString())

	color := !f.noColor
	if out, ok := rt.opt.Stdout.(*os.File); !ok || !ui.IsTerminal(out) {
		color = false
	}
	rt.p = ui.NewPrinter(rt.opt.Stdout, rt.opt.Stderr, ui.ThemeByName(cfg.Theme), color)

	rt.log.Debug("config resolved",
		"data_dir", cfg.DataDir, "backend", cfg.Backend, "theme", cfg.Theme, "goal", cfg.DailyGoal)
	return nil
}

// open loads the persisted list. Commands that need data call it lazily so
// help output never touches storage.
func (rt *runtime) open(ctx context.Context) (*app.State, error) {
	if rt.state != nil {
		return rt.state, nil
	}
	slots, err := openSlots(rt.cfg)
	if err != nil {
		return nil, err
	}
	rt.slots = slots
	st, err := app.Open(ctx, slots, rt.log)
	if err != nil {
		return nil, err
	}
	rt.state = st
	return st, nil
}

func (rt *runtime) close() {
	if rt.slots == nil {
		return
	}
	if err := rt.slots.Close(); err != nil && rt.log != nil {
		rt.log.Error("error closing storage", "error", err)
	}
}

func openSlots(cfg config.Config) (store.Slots, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir: %w", err)
		}
		return sqlitestore.Open(cfg.SQLitePath())
	default:
		return jsonstore.Open(cfg.DataDir)
	}
}
