package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"wellness/internal/bootstrap"
	analyticsdto "wellness/internal/modules/analytics/dto"
	logbookdto "wellness/internal/modules/logbook/dto"
	"wellness/internal/platform/config"
	"wellness/internal/platform/logging"
	"wellness/internal/platform/notice"
	"wellness/internal/ui/theme"
	overviewview "wellness/internal/ui/views/overview"
	trendsview "wellness/internal/ui/views/trends"
)

type globalFlags struct {
	home string
	user string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "wellness",
		Short:         "Mood, sleep and exercise log with a trailing-window dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.home, "home", defaultHome(), "data directory")
	root.PersistentFlags().StringVar(&flags.user, "user", "", "user id (defaults to the active user)")

	root.AddCommand(newUserCmd(flags))
	root.AddCommand(newLogCmd(flags))
	root.AddCommand(newImportCmd(flags))
	root.AddCommand(newEntriesCmd(flags))
	root.AddCommand(newDashboardCmd(flags))
	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newServeCmd(flags))
	return root
}

func defaultHome() string {
	if env := os.Getenv("WELLNESS_HOME"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wellness"
	}
	return filepath.Join(home, ".wellness")
}

func loadConfig(flags *globalFlags) (config.Config, error) {
	if err := os.MkdirAll(flags.home, 0o755); err != nil {
		return config.Config{}, fmt.Errorf("create home: %w", err)
	}
	return config.Load(flags.home)
}

// loadApp wires the app for one-shot commands: logs and notices go to stderr.
func loadApp(flags *globalFlags) (*bootstrap.App, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}
	logger := logging.New(cfg.LogLevel, os.Stderr)
	return bootstrap.New(cfg, logger, notice.NewWriter(os.Stderr))
}

func resolveUser(ctx context.Context, app *bootstrap.App, flags *globalFlags) (string, error) {
	return app.ProfileCLI.Resolve(ctx, flags.user)
}

func newUserCmd(flags *globalFlags) *cobra.Command {
	user := &cobra.Command{Use: "user", Short: "Active user selection"}

	user.AddCommand(&cobra.Command{
		Use:   "use <id>",
		Short: "Set the active user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.ProfileCLI.Use(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "active user: %s\n", out.UserID)
			return nil
		},
	})

	user.AddCommand(&cobra.Command{
		Use:   "whoami",
		Short: "Show the active user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer app.Close()
			id, err := resolveUser(cmd.Context(), app, flags)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	})

	user.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget the active user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.ProfileCLI.Clear(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "active user cleared")
			return nil
		},
	})
	return user
}

func newLogCmd(flags *globalFlags) *cobra.Command {
	logCmd := &cobra.Command{Use: "log", Short: "Record mood, sleep or exercise"}

	var date, label string
	mood := &cobra.Command{
		Use:   "mood <score>",
		Short: "Record a mood score from 1 to 10",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var score int
			if _, err := fmt.Sscanf(args[0], "%d", &score); err != nil {
				return fmt.Errorf("score must be a whole number: %q", args[0])
			}
			day := time.Now()
			if strings.TrimSpace(date) != "" {
				parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
				if err != nil {
					return fmt.Errorf("--date must be YYYY-MM-DD: %q", date)
				}
				day = parsed
			}
			return withUser(cmd, flags, func(ctx context.Context, app *bootstrap.App, userID string) error {
				out, err := app.LogbookCLI.LogMood(ctx, userID, day, score, label)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged mood %d for %s (%s)\n", score, day.Format("2006-01-02"), out.ID)
				return nil
			})
		},
	}
	mood.Flags().StringVar(&date, "date", "", "day of the entry, YYYY-MM-DD (defaults to today)")
	mood.Flags().StringVar(&label, "label", "", "optional mood label")

	var quality string
	sleep := &cobra.Command{
		Use:   "sleep <minutes>",
		Short: "Record last night's sleep",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var minutes int
			if _, err := fmt.Sscanf(args[0], "%d", &minutes); err != nil {
				return fmt.Errorf("minutes must be a whole number: %q", args[0])
			}
			return withUser(cmd, flags, func(ctx context.Context, app *bootstrap.App, userID string) error {
				out, err := app.LogbookCLI.LogSleep(ctx, userID, minutes, quality)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged %d minutes of sleep (%s)\n%s\n", minutes, out.ID, out.Comment)
				return nil
			})
		},
	}
	sleep.Flags().StringVar(&quality, "quality", "Good", "sleep quality: Poor|Fair|Good|Excellent")
	_ = sleep.RegisterFlagCompletionFunc("quality", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return formOptions(flags).SleepQualities, cobra.ShellCompDirectiveNoFileComp
	})

	var note string
	exercise := &cobra.Command{
		Use:   "exercise <activity> <minutes>",
		Short: "Record an exercise session",
		Args:  cobra.ExactArgs(2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return formOptions(flags).Activities, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var minutes int
			if _, err := fmt.Sscanf(args[1], "%d", &minutes); err != nil {
				return fmt.Errorf("minutes must be a whole number: %q", args[1])
			}
			return withUser(cmd, flags, func(ctx context.Context, app *bootstrap.App, userID string) error {
				out, err := app.LogbookCLI.LogExercise(ctx, userID, args[0], minutes, note)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged %d minutes of %s (%s)\n%s\n", minutes, args[0], out.ID, out.Comment)
				return nil
			})
		},
	}
	exercise.Flags().StringVar(&note, "note", "", "how it felt")

	logCmd.AddCommand(mood, sleep, exercise)
	return logCmd
}

func newImportCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import mood, sleep and exercise documents from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUser(cmd, flags, func(ctx context.Context, app *bootstrap.App, userID string) error {
				out, err := app.LogbookCLI.Import(ctx, userID, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d documents (mood=%d sleep=%d exercise=%d)\n", out.Total(), out.Mood, out.Sleep, out.Exercise)
				return nil
			})
		},
	}
}

func newEntriesCmd(flags *globalFlags) *cobra.Command {
	var limit int
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "entries <mood|sleep|exercise>",
		Short: "List the most recent entries of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUser(cmd, flags, func(ctx context.Context, app *bootstrap.App, userID string) error {
				docs, err := app.LogbookCLI.Recent(ctx, userID, args[0], limit)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), docs)
				}
				if len(docs) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no entries")
					return nil
				}
				for _, d := range docs {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", d.ID, d.CreatedAt.Local().Format("2006-01-02 15:04"), formatFields(d.Fields))
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 30, "maximum entries to list")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newDashboardCmd(flags *globalFlags) *cobra.Command {
	var window int
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show KPIs, the mood heatmap, the weekly insight and trends",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUser(cmd, flags, func(ctx context.Context, app *bootstrap.App, userID string) error {
				view, err := app.AnalyticsCLI.Dashboard(ctx, userID, window)
				if asJSON {
					if writeErr := writeJSON(cmd.OutOrStdout(), view); writeErr != nil {
						return writeErr
					}
					return err
				}
				if err != nil && view.UserID == "" {
					return err
				}
				renderDashboard(cmd.OutOrStdout(), view)
				return err
			})
		},
	}
	cmd.Flags().IntVar(&window, "window", 0, "trailing window in days (defaults to the configured window)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newTUICmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the wellness terminal dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			logger, logFile, err := logging.NewFile(cfg.LogLevel, cfg.LogPath)
			if err != nil {
				return err
			}
			defer logFile.Close()

			recorder := &notice.Recorder{}
			app, err := bootstrap.New(cfg, logger, recorder)
			if err != nil {
				return err
			}
			defer app.Close()
			userID, err := resolveUser(cmd.Context(), app, flags)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app, userID, recorder)
		},
	}
}

func newServeCmd(flags *globalFlags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard as a JSON API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			logger := logging.New(cfg.LogLevel, os.Stderr)
			app, err := bootstrap.New(cfg, logger, logNotifier{logger: logger})
			if err != nil {
				return err
			}
			defer app.Close()
			if addr == "" {
				addr = cfg.HTTPAddr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return bootstrap.Serve(ctx, app, addr, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to http.addr from config.yaml)")
	return cmd
}

// withUser loads the app, resolves the active user and runs fn.
func withUser(cmd *cobra.Command, flags *globalFlags, fn func(ctx context.Context, app *bootstrap.App, userID string) error) error {
	app, err := loadApp(flags)
	if err != nil {
		return err
	}
	defer app.Close()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	userID, err := resolveUser(ctx, app, flags)
	if err != nil {
		return err
	}
	return fn(ctx, app, userID)
}

// formOptions feeds shell completion; an unusable home just yields no suggestions.
func formOptions(flags *globalFlags) logbookdto.FormOptionsOutput {
	app, err := loadApp(flags)
	if err != nil {
		return logbookdto.FormOptionsOutput{}
	}
	defer app.Close()
	return app.LogbookCLI.FormOptions()
}

// logNotifier routes notices into the server log.
type logNotifier struct {
	logger hclog.Logger
}

func (n logNotifier) Notify(title, message string) error {
	n.logger.Warn(message, "notice", title)
	return nil
}

func renderDashboard(out io.Writer, view analyticsdto.ViewOutput) {
	sections := []string{
		theme.Title.Render(fmt.Sprintf("%s · last %d days · %s", view.UserID, view.WindowDays, view.State)),
		overviewview.RenderKPIs(view.KPIs),
		"",
		overviewview.RenderHeatmap(view.Heatmap),
		"",
		theme.Title.Render("This week"),
		view.Insight.Message,
		"",
		theme.Title.Render("Mood trend"),
		trendsview.RenderBars(view.Series.MoodTrend, 10, 40, "%.0f", theme.Lavender),
		"",
		theme.Title.Render("Sleep (hours)"),
		trendsview.RenderBars(view.Series.SleepTrend, 0, 40, "%.1f", theme.Sapphire),
		"",
		theme.Title.Render("Activity (minutes)"),
		trendsview.RenderBars(view.Series.ActivitySummary, 0, 40, "%.0f", theme.Green),
	}
	if view.Error != "" {
		sections = append(sections, "", theme.Warn.Render(view.Error))
	}
	_, _ = fmt.Fprintln(out, strings.Join(sections, "\n"))
}

func formatFields(fields map[string]any) string {
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Sprint(fields)
	}
	return string(raw)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
