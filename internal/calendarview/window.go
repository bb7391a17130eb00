package calendarview

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"github.com/calweek/calweek/internal/icon"
	"github.com/calweek/calweek/internal/weekclock"
)

var (
	mutedColor = color.NRGBA{R: 0x9b, G: 0x9a, B: 0x97, A: 0xff}
	todayColor = color.NRGBA{R: 0xff, G: 0xef, B: 0x3d, A: 0xff}

	windowSize = fyne.NewSize(380, 480)
)

// NewWindow builds the full-year calendar window for the year containing
// now. The window is fixed-size and scrollable, scrolled so the current
// month is in view, and closes on Escape.
func NewWindow(a fyne.App, now time.Time) fyne.Window {
	year := now.Year()
	w := a.NewWindow(fmt.Sprintf("%d Calendar", year))
	w.SetFixedSize(true)

	if badge, err := icon.BadgePNG(); err == nil {
		w.SetIcon(fyne.NewStaticResource("calweek-badge.png", badge))
	}

	grids := YearGrid(year, now)
	months := container.NewVBox()
	for _, g := range grids {
		months.Add(monthView(g))
	}

	scroll := container.NewVScroll(container.NewPadded(months))
	scroll.SetMinSize(windowSize)
	w.SetContent(scroll)
	w.Resize(windowSize)
	w.CenterOnScreen()

	// Reveal the current month; every month block has roughly equal height.
	total := months.MinSize().Height
	scroll.ScrollToOffset(fyne.NewPos(0, total*float32(now.Month()-1)/12))

	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			w.Close()
		}
	})

	return w
}

// monthView lays out one month: name, separator, day-name header row, and a
// week-number column next to the day cells.
func monthView(g MonthGrid) fyne.CanvasObject {
	name := canvas.NewText(g.Month.String(), theme.Color(theme.ColorNameForeground))
	name.TextStyle = fyne.TextStyle{Bold: true}
	name.TextSize = theme.TextSize() + 2

	header := make([]fyne.CanvasObject, 0, 8)
	header = append(header, headerCell("W"))
	for _, d := range DayNames {
		header = append(header, headerCell(d))
	}

	rows := container.NewGridWithColumns(8, header...)
	for _, week := range g.Weeks {
		rows.Add(weekCell(week.Week))
		for _, day := range week.Days {
			rows.Add(dayCell(day))
		}
	}

	return container.NewVBox(
		name,
		canvas.NewLine(theme.Color(theme.ColorNameSeparator)),
		rows,
	)
}

func headerCell(text string) fyne.CanvasObject {
	t := canvas.NewText(text, mutedColor)
	t.Alignment = fyne.TextAlignCenter
	t.TextSize = theme.TextSize() - 2
	return t
}

func weekCell(week int) fyne.CanvasObject {
	t := canvas.NewText(weekclock.Label(week), mutedColor)
	t.Alignment = fyne.TextAlignCenter
	t.TextSize = theme.TextSize() - 2
	return t
}

func dayCell(d DayCell) fyne.CanvasObject {
	if d.Day == 0 {
		return canvas.NewText("", color.Transparent)
	}

	t := canvas.NewText(fmt.Sprintf("%d", d.Day), theme.Color(theme.ColorNameForeground))
	t.Alignment = fyne.TextAlignCenter
	if !d.Today {
		return t
	}

	t.Color = color.NRGBA{R: 0x37, G: 0x35, B: 0x2f, A: 0xff}
	t.TextStyle = fyne.TextStyle{Bold: true}
	highlight := canvas.NewRectangle(todayColor)
	highlight.CornerRadius = 4
	return container.NewStack(highlight, t)
}
