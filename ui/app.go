package ui

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/yllada/theme-toggle/common"
	"github.com/yllada/theme-toggle/config"
	"github.com/yllada/theme-toggle/theme"
	"github.com/yllada/theme-toggle/toggle"
)

// Application represents the running tray utility.
type Application struct {
	config   *config.Config
	version  string
	logger   common.Logger
	sys      Systray
	kv       theme.KeyStore
	notifier common.Notifier

	store   *theme.Store
	tray    *TrayController
	events  *toggle.Dispatcher
	worker  *toggle.Worker
	watcher theme.ChangeWatcher

	wg          sync.WaitGroup
	mu          sync.Mutex
	cancelWatch context.CancelFunc
	exitCode    int
}

// AppOption configures an Application.
type AppOption func(*Application)

// WithSystray replaces the native tray.
func WithSystray(sys Systray) AppOption {
	return func(a *Application) {
		a.sys = sys
	}
}

// WithKeyStore replaces the key store selected by the config backend.
func WithKeyStore(kv theme.KeyStore) AppOption {
	return func(a *Application) {
		a.kv = kv
	}
}

// WithNotifier replaces the desktop notifier.
func WithNotifier(n common.Notifier) AppOption {
	return func(a *Application) {
		a.notifier = n
	}
}

// WithAppLogger sets the logger handed to every component.
func WithAppLogger(logger common.Logger) AppOption {
	return func(a *Application) {
		a.logger = logger
	}
}

// NewApplication builds every component. Any error is fatal.
func NewApplication(cfg *config.Config, version string, opts ...AppOption) (*Application, error) {
	a := &Application{
		config:  cfg,
		version: version,
		logger:  common.GetLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.sys == nil {
		a.sys = NewSystray()
	}
	if a.notifier == nil && cfg.NotifyWriteFailures {
		a.notifier = NewDesktopNotifier(a.logger)
	}

	if a.kv == nil {
		statePath, err := cfg.StatePath()
		if err != nil {
			a.logger.Debug("No default state file: %v", err)
		}
		kv, err := theme.OpenKeyStore(cfg.Backend, statePath)
		if err != nil {
			return nil, fmt.Errorf("opening theme store: %w", err)
		}
		a.kv = kv
	}

	icons, err := LoadIcons(cfg)
	if err != nil {
		return nil, err
	}

	a.store = theme.NewStore(a.kv, theme.WithStoreLogger(a.logger))
	a.tray = NewTrayController(a.sys, icons, cfg.Tooltip)
	a.events = toggle.NewDispatcher()

	workerOpts := []toggle.Option{
		toggle.WithLogger(a.logger),
		toggle.WithWriteFailureHandler(a.onWriteFailure),
	}
	if cfg.BroadcastChange {
		workerOpts = append(workerOpts, toggle.WithBroadcaster(theme.NewSettingsBroadcaster()))
	}
	a.worker = toggle.NewWorker(a.store, a.tray, a.events, workerOpts...)

	if cfg.WatchExternalChanges {
		watcher, err := theme.NewChangeWatcher(a.kv, a.logger)
		if err != nil {
			a.logger.Warn("External theme changes will not be tracked: %v", err)
		} else {
			a.watcher = watcher
		}
	}

	return a, nil
}

// Run enters the message loop and returns the process exit code once the
// tray quits. It must be called from the main goroutine.
func (a *Application) Run() int {
	a.logger.Info("Starting %s %s", common.AppName, a.version)

	stopSignals := a.handleSignals()
	defer stopSignals()

	RunMessageLoop(a.sys, a.onReady, a.onExit)
	a.shutdown()

	code := a.ExitCode()
	a.logger.Info("%s stopped (exit code %d)", common.AppName, code)
	return code
}

// Quit asks the message loop to end.
func (a *Application) Quit() {
	a.sys.Quit()
}

// ExitCode returns 1 after a fatal error, 0 otherwise.
func (a *Application) ExitCode() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.exitCode
}

// Tray returns the tray controller.
func (a *Application) Tray() *TrayController {
	return a.tray
}

// onReady runs on the message-loop thread once the tray exists.
func (a *Application) onReady() {
	isLight := a.store.ReadIsLight()
	if err := a.tray.Start(isLight, a.onClick); err != nil {
		a.fail(fmt.Errorf("%w: %w", common.ErrIconUpdate, err))
		return
	}
	a.logger.Info("Tray ready, current theme is %s", theme.ModeOf(isLight))

	a.wg.Add(1)
	go a.runWorker()

	if a.watcher != nil {
		ctx, cancel := context.WithCancel(context.Background())
		a.mu.Lock()
		a.cancelWatch = cancel
		a.mu.Unlock()

		a.wg.Add(1)
		go a.runWatcher(ctx)
	}
}

// onClick runs on the message-loop thread and must not block.
func (a *Application) onClick() {
	if !a.events.Send(toggle.EventToggle) {
		a.logger.Debug("Click ignored, shutting down")
		return
	}
	a.logger.Debug("Click queued, %d event(s) pending", a.events.Len())
}

// onExit is called by the tray library when it quits. Depending on the
// platform that is the message-loop thread or the goroutine that called
// Quit, so it must not wait on the worker.
func (a *Application) onExit() {
	a.stopWatcher()
}

// shutdown runs after the message loop has returned. Events already queued
// are still applied before the icon is released.
func (a *Application) shutdown() {
	a.stopWatcher()
	a.events.Close()
	a.wg.Wait()
	a.tray.Stop()
}

func (a *Application) stopWatcher() {
	a.mu.Lock()
	cancel := a.cancelWatch
	a.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (a *Application) runWorker() {
	defer a.wg.Done()

	if err := a.worker.Run(); err != nil {
		a.fail(err)
	}
}

func (a *Application) runWatcher(ctx context.Context) {
	defer a.wg.Done()

	err := a.watcher.Watch(ctx, func() {
		a.events.Send(toggle.EventRefresh)
	})
	if err != nil {
		a.logger.Warn("Stopped tracking external theme changes: %v", err)
	}
}

// fail records a fatal error and ends the message loop. Quit may run
// onExit on the calling goroutine, so it is issued from its own.
func (a *Application) fail(err error) {
	a.logger.Error("Fatal: %v", err)
	a.mu.Lock()
	a.exitCode = 1
	a.mu.Unlock()
	go a.sys.Quit()
}

func (a *Application) onWriteFailure(err error) {
	if !a.config.NotifyWriteFailures || a.notifier == nil {
		return
	}
	if nerr := NotifyWriteFailure(a.notifier, err); nerr != nil {
		a.logger.Warn("Could not show notification: %v", nerr)
	}
}

// handleSignals quits the tray on SIGINT/SIGTERM so the icon is removed
// before the process exits.
func (a *Application) handleSignals() (stop func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		select {
		case sig := <-sigChan:
			a.logger.Info("Received signal %v, shutting down", sig)
			a.Quit()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
	}
}
