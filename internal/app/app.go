// Package app implements the application layer for logshare.
package app

import (
	"context"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/logshare/internal/adapters/detector"
	"go.trai.ch/logshare/internal/adapters/export"
	"go.trai.ch/logshare/internal/adapters/linear"
	"go.trai.ch/logshare/internal/adapters/telemetry"
	"go.trai.ch/logshare/internal/adapters/tui"
	"go.trai.ch/logshare/internal/core/domain"
	"go.trai.ch/logshare/internal/core/ports"
	"go.trai.ch/logshare/internal/engine/share"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	opener       ports.RecordDatabaseOpener
	blobs        ports.BlobStore
	renderer     ports.DocumentRenderer
	logger       ports.Logger
	progress     io.Writer
	teaOptions   []tea.ProgramOption
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	opener ports.RecordDatabaseOpener,
	blobs ports.BlobStore,
	renderer ports.DocumentRenderer,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		opener:       opener,
		blobs:        blobs,
		renderer:     renderer,
		logger:       logger,
		progress:     os.Stderr,
	}
}

// WithTeaOptions sets the Bubble Tea program options.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithProgressOutput sets where the progress view draws. It defaults to stderr.
func (a *App) WithProgressOutput(w io.Writer) *App {
	a.progress = w
	return a
}

// ExportOptions holds the command line overrides of an export.
type ExportOptions struct {
	// All exports every stored record instead of the given ids.
	All bool
	// Format overrides the configured output format when set.
	Format string
	// OutDir overrides the configured export directory when set.
	OutDir string
	// OutputMode overrides the configured progress view when set.
	OutputMode string
}

// Export renders the selected records into one file and returns what was written.
func (a *App) Export(ctx context.Context, ids []domain.RecordID, opts ExportOptions) ([]domain.ExportedItem, error) {
	settings, err := a.loadSettings()
	if err != nil {
		return nil, err
	}
	if err := applyExportOptions(&settings, opts); err != nil {
		return nil, err
	}

	db, err := a.opener.Open(ctx, settings)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = db.Close()
	}()

	if opts.All {
		ids, err = db.IDs(ctx, ports.ListOptions{})
		if err != nil {
			return nil, err
		}
	}
	if len(ids) == 0 {
		return nil, domain.ErrNothingSelected
	}

	view, interrupted := a.newView(settings)
	phases := share.NewPhaseRelay(view)
	tp := telemetry.Setup(phases)
	defer func() {
		_ = tp.Shutdown(context.WithoutCancel(ctx))
	}()

	var (
		mu    sync.Mutex
		items []domain.ExportedItem
	)
	task := share.NewTask(ids, settings.Format, share.Deps{
		Store:    db,
		Renderer: a.renderer,
		Sink:     export.NewSink(settings.ExportDir, settings.Theme, settings.PageSize),
		View:     view,
		Phases:   phases,
		Tracer:   telemetry.NewOTelTracer(telemetry.InstrumentationName),
		Logger:   a.logger,
	}, func(exported []domain.ExportedItem) {
		mu.Lock()
		defer mu.Unlock()
		items = exported
	})

	if err := view.Start(ctx); err != nil {
		return nil, zerr.Wrap(err, domain.ErrViewStartFailed.Error())
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := view.Wait()
		if interrupted() {
			task.Cancel()
		}
		return err
	})

	g.Go(func() error {
		defer func() {
			_ = view.Stop()
		}()
		if err := task.Start(gctx); err != nil {
			return err
		}
		return task.Wait()
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	mu.Lock()
	defer mu.Unlock()
	return items, nil
}

// newView picks the progress view for the environment. The returned function
// reports whether the user quit the view.
func (a *App) newView(settings domain.Settings) (ports.ProgressView, func() bool) {
	mode := detector.ResolveMode(detector.DetectEnvironment(), settings.UIMode)
	if mode == domain.UIModeTUI {
		model := tui.NewModel(a.progress, string(settings.Format))
		opts := append([]tea.ProgramOption{tea.WithOutput(a.progress)}, a.teaOptions...)
		view := tui.NewView(&model, opts...)
		return view, view.Interrupted
	}
	return linear.NewView(a.progress), func() bool { return false }
}

// loadSettings reads the configuration of the working directory and applies
// the logger settings it carries.
func (a *App) loadSettings() (domain.Settings, error) {
	settings, err := a.configLoader.Load(".")
	if err != nil {
		return domain.Settings{}, err
	}
	if l, ok := a.logger.(interface{ SetJSON(enable bool) }); ok {
		l.SetJSON(settings.JSONLogs)
	}
	return settings, nil
}

func applyExportOptions(settings *domain.Settings, opts ExportOptions) error {
	if opts.Format != "" {
		format, err := domain.ParseOutputFormat(opts.Format)
		if err != nil {
			return err
		}
		settings.Format = format
	}
	if opts.OutputMode != "" {
		mode, err := domain.ParseUIMode(opts.OutputMode)
		if err != nil {
			return err
		}
		settings.UIMode = mode
	}
	if opts.OutDir != "" {
		settings.ExportDir = opts.OutDir
	}
	return nil
}
