package app

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/calweek/calweek/internal/autostart"
)

// checkStartupPath runs once at startup. If the executable was moved after
// start-at-login was enabled, the registered entry points nowhere; the user
// is offered a one-click repair.
func (a *App) checkStartupPath() {
	exe, err := os.Executable()
	if err != nil {
		a.logger.Warn().Err(err).Msg("cannot resolve executable path for startup check")
		return
	}

	ok, registered := autostart.CheckPath(a.startup, exe)
	if ok {
		return
	}

	a.logger.Warn().
		Str("registered", registered).
		Str("current", exe).
		Msg("startup entry points at a stale path")

	fyne.Do(func() {
		a.promptPathRepair(registered, exe)
	})
}

// promptPathRepair shows the mismatch confirmation dialog. Dialogs need a
// parent window, so a small transient one is created for the prompt.
func (a *App) promptPathRepair(registered, current string) {
	w := a.fyneApp.NewWindow("CalWeek")
	w.Resize(fyne.NewSize(460, 220))
	w.CenterOnScreen()
	w.Show()

	message := fmt.Sprintf(
		"The application has been moved.\n\nRegistered path:\n%s\n\nCurrent path:\n%s\n\nUpdate the automatic startup path?",
		registered, current,
	)

	dialog.ShowConfirm("Path Changed", message, func(repair bool) {
		if !repair {
			w.Close()
			return
		}

		if err := autostart.Repair(a.startup, current); err != nil {
			a.logger.Error().Err(err).Msg("startup path repair failed")
			d := dialog.NewError(fmt.Errorf("failed to update the startup path: %w", err), w)
			d.SetOnClosed(w.Close)
			d.Show()
			return
		}

		a.logger.Info().Str("path", current).Msg("startup path repaired")
		d := dialog.NewInformation("Success", "Startup path updated successfully.", w)
		d.SetOnClosed(w.Close)
		d.Show()
	}, w)
}
