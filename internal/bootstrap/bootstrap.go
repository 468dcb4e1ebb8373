package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"

	analyticsinadapter "wellness/internal/modules/analytics/adapter/in"
	analyticsoutadapter "wellness/internal/modules/analytics/adapter/out"
	analyticsdomain "wellness/internal/modules/analytics/domain"
	analyticsservice "wellness/internal/modules/analytics/service"
	analyticsusecase "wellness/internal/modules/analytics/usecase"
	commentoutadapter "wellness/internal/modules/comment/adapter/out"
	commentservice "wellness/internal/modules/comment/service"
	commentusecase "wellness/internal/modules/comment/usecase"
	logbookinadapter "wellness/internal/modules/logbook/adapter/in"
	logbookoutadapter "wellness/internal/modules/logbook/adapter/out"
	logbookservice "wellness/internal/modules/logbook/service"
	logbookusecase "wellness/internal/modules/logbook/usecase"
	profileinadapter "wellness/internal/modules/profile/adapter/in"
	profileoutadapter "wellness/internal/modules/profile/adapter/out"
	profileservice "wellness/internal/modules/profile/service"
	profileusecase "wellness/internal/modules/profile/usecase"
	"wellness/internal/platform/clock"
	"wellness/internal/platform/config"
	"wellness/internal/platform/id"
	"wellness/internal/platform/notice"
	uiapp "wellness/internal/ui/app"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	ProfileCLI    profileinadapter.CLIHandler
	LogbookCLI    logbookinadapter.CLIHandler
	AnalyticsCLI  analyticsinadapter.CLIHandler
	AnalyticsHTTP *analyticsinadapter.HTTPHandler

	logger  hclog.Logger
	closers []io.Closer
}

// New wires every module against cfg. Notices from background work go to
// notifier; when cfg.DesktopNotify is set they are also raised on the desktop.
func New(cfg config.Config, logger hclog.Logger, notifier notice.Notifier) (*App, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if cfg.DesktopNotify {
		notifier = notice.Multi{notifier, notice.NewDesktop("wellness")}
	}
	clk := clock.SystemClock{}
	ids := id.UUID{}

	profileUC := profileusecase.NewInteractor(profileservice.NewProfileService(
		clk,
		profileoutadapter.NewFileActiveUserStore(cfg.HomePath),
	))

	commentUC := commentusecase.NewInteractor(commentservice.NewCommentService(
		commentoutadapter.NewHTTPGenerator(cfg.CommentBaseURL, cfg.CommentTimeout),
		notifier,
		logger.Named("comment"),
	))

	store, err := logbookoutadapter.NewSQLiteDocumentStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new document store: %w", err)
	}
	logbookUC := logbookusecase.NewInteractor(
		logbookservice.NewLogbookService(clk, ids, store),
		logbookoutadapter.NewYAMLDocumentSource(),
		commentUC,
	)

	orchestrator := analyticsservice.NewOrchestrator(
		analyticsoutadapter.NewLogbookReader(logbookUC),
		clk,
		notifier,
		logger.Named("analytics"),
		analyticsservice.Options{
			FetchLimit: cfg.FetchLimit,
			Window:     analyticsdomain.Window(cfg.DefaultWindow),
		},
	)
	analyticsUC := analyticsusecase.NewInteractor(orchestrator)

	app := &App{
		ProfileCLI:    profileinadapter.NewCLIHandler(profileUC),
		LogbookCLI:    logbookinadapter.NewCLIHandler(logbookUC),
		AnalyticsCLI:  analyticsinadapter.NewCLIHandler(analyticsUC),
		AnalyticsHTTP: analyticsinadapter.NewHTTPHandler(analyticsUC, cfg.DefaultWindow, logger.Named("http")),
		logger:        logger,
	}
	if c, ok := store.(io.Closer); ok {
		app.closers = append(app.closers, c)
	}
	return app, nil
}

// Close releases the document store.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

func RunTUI(app *App, userID string, notices interface{ Last() string }) error {
	model := uiapp.NewModel(userID, app.AnalyticsCLI, app.LogbookCLI, notices)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Serve exposes the dashboard API on addr until ctx is cancelled.
func Serve(ctx context.Context, app *App, addr string, accessLog io.Writer) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.AnalyticsHTTP.Handler(accessLog),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("dashboard api listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve dashboard api: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	app.logger.Info("shutting down dashboard api")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown dashboard api: %w", err)
	}
	return nil
}
