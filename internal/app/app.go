// Package app wires the tray icon, calendar window, single-instance guard,
// and start-at-login management into the running application.
package app

import (
	"errors"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/robfig/cron/v3"

	"github.com/calweek/calweek/internal/autostart"
	"github.com/calweek/calweek/internal/calendarview"
	"github.com/calweek/calweek/internal/icon"
	"github.com/calweek/calweek/internal/logging"
	"github.com/calweek/calweek/internal/notify"
	"github.com/calweek/calweek/internal/singleinstance"
	"github.com/calweek/calweek/internal/weekclock"
)

const (
	appID = "com.calweek.calweek"

	// refreshSpec keeps the icon current across week rollovers. Hourly is
	// plenty; the icon only repaints when the week number changes.
	refreshSpec = "@hourly"
)

// ErrAlreadyRunning reports that another instance owns the session. The
// caller treats it as a clean exit.
var ErrAlreadyRunning = errors.New("calweek is already running")

// App is the application context: every piece of process-wide state lives
// here and is torn down when Run returns.
type App struct {
	logger   *logging.Logger
	coord    *singleinstance.Coordinator
	startup  autostart.Manager
	notifier *notify.Notifier

	fyneApp fyne.App
	tray    desktop.App

	// calWin guards the one-calendar-window rule: check-and-create runs
	// under winMu so near-simultaneous open requests cannot both create.
	winMu  sync.Mutex
	calWin fyne.Window

	statusItem  *fyne.MenuItem
	startupItem *fyne.MenuItem
	trayMenu    *fyne.Menu

	scheduler *cron.Cron
	lastWeek  int
}

// New assembles the application context.
func New(logger *logging.Logger) *App {
	return &App{
		logger:   logger,
		coord:    singleinstance.New(logger),
		startup:  autostart.New(logger),
		notifier: notify.New(logger),
	}
}

// Run acquires the instance lock, builds the tray, and blocks in the UI
// event loop until the user exits. A redundant launch signals the active
// instance and returns ErrAlreadyRunning without showing any UI.
func (a *App) Run() error {
	if !a.coord.Acquire() {
		a.logger.Info().Msg("another instance is active, requesting its calendar")
		a.coord.NotifyActive()
		a.notifier.AlreadyRunning()
		return ErrAlreadyRunning
	}
	defer a.coord.Release()

	a.fyneApp = fyneapp.NewWithID(appID)

	// Relay show requests from redundant launches onto the UI thread.
	go a.coord.Listen(func() {
		fyne.Do(a.showCalendar)
	})

	// One-time startup path validity check, off the UI thread.
	go a.checkStartupPath()

	a.setupTray()
	a.startRefresh()
	a.handleSignals()

	a.fyneApp.Run()

	if a.scheduler != nil {
		a.scheduler.Stop()
	}
	a.logger.Info().Msg("calweek stopped")
	return nil
}

// setupTray builds the tray icon and menu. On platforms without a system
// tray the app still runs so the listener can open calendar windows.
func (a *App) setupTray() {
	desk, ok := a.fyneApp.(desktop.App)
	if !ok {
		a.logger.Warn().Msg("system tray is not supported by this driver")
		return
	}
	a.tray = desk

	week := weekclock.Current()
	a.lastWeek = week

	a.statusItem = fyne.NewMenuItem("Week "+weekclock.Label(week), nil)
	a.statusItem.Disabled = true

	openItem := fyne.NewMenuItem("Open Calendar", a.showCalendar)

	a.startupItem = fyne.NewMenuItem(startupLabel(), a.toggleStartup)
	a.startupItem.Checked = a.startup.IsRegistered()

	exitItem := fyne.NewMenuItem("Exit", func() {
		a.coord.Release()
		a.fyneApp.Quit()
	})
	exitItem.IsQuit = true

	a.trayMenu = fyne.NewMenu("CalWeek",
		a.statusItem,
		fyne.NewMenuItemSeparator(),
		openItem,
		fyne.NewMenuItemSeparator(),
		a.startupItem,
		fyne.NewMenuItemSeparator(),
		exitItem,
	)
	desk.SetSystemTrayMenu(a.trayMenu)
	a.setTrayIcon(week)
}

func (a *App) setTrayIcon(week int) {
	data, err := icon.ForTray(week)
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to render tray icon")
		return
	}
	a.tray.SetSystemTrayIcon(fyne.NewStaticResource("calweek-week-icon", data))
}

// startRefresh schedules the hourly week check. The icon and status label
// repaint only when the computed value actually changes.
func (a *App) startRefresh() {
	a.scheduler = cron.New()
	if _, err := a.scheduler.AddFunc(refreshSpec, a.refreshWeek); err != nil {
		a.logger.Error().Err(err).Msg("failed to schedule week refresh")
		return
	}
	a.scheduler.Start()
}

func (a *App) refreshWeek() {
	week := weekclock.Current()
	if week == a.lastWeek || a.tray == nil {
		return
	}
	a.lastWeek = week
	a.logger.Info().Int("week", week).Msg("week rolled over")

	fyne.Do(func() {
		a.setTrayIcon(week)
		a.statusItem.Label = "Week " + weekclock.Label(week)
		a.trayMenu.Refresh()
	})
}

// showCalendar opens the year calendar, or raises the already-open window.
// Runs on the UI thread (menu callback, or marshaled via fyne.Do).
func (a *App) showCalendar() {
	a.winMu.Lock()
	defer a.winMu.Unlock()

	if a.calWin != nil {
		a.calWin.Show()
		a.calWin.RequestFocus()
		return
	}

	w := calendarview.NewWindow(a.fyneApp, time.Now())
	w.SetOnClosed(func() {
		a.winMu.Lock()
		a.calWin = nil
		a.winMu.Unlock()
	})
	a.calWin = w
	w.Show()
}

// toggleStartup is the "Start at Login" menu handler.
func (a *App) toggleStartup() {
	exe, err := os.Executable()
	if err != nil {
		a.logger.Error().Err(err).Msg("cannot resolve executable path")
		a.notifier.StartupError(err)
		return
	}

	if err := autostart.Toggle(a.startup, exe); err != nil {
		a.logger.Error().Err(err).Msg("start-at-login toggle failed")
		a.notifier.StartupError(err)
		return
	}

	registered := a.startup.IsRegistered()
	a.notifier.StartupChanged(registered)
	a.startupItem.Checked = registered
	a.trayMenu.Refresh()
}

// handleSignals releases the lock and stops the UI on SIGINT/SIGTERM so the
// well-known port is freed even on console termination.
func (a *App) handleSignals() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		a.logger.Info().Str("signal", sig.String()).Msg("shutting down")
		a.coord.Release()
		fyne.Do(a.fyneApp.Quit)
	}()
}

func startupLabel() string {
	if runtime.GOOS == "windows" {
		return "Start with Windows"
	}
	return "Start at Login"
}
