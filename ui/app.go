package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tally/counter"
)

// Feedback receives a signal for each completed mutation.
type Feedback interface {
	Increment()
	Decrement()
}

// App owns the screen and drives the counter from key events.
type App struct {
	screen  tcell.Screen
	counter *counter.Counter
	click   Feedback

	notice string
}

// New wires an app. click may be nil for silent operation. The caller
// owns screen setup and teardown; Run assumes an initialized screen.
func New(screen tcell.Screen, c *counter.Counter, click Feedback) *App {
	return &App{screen: screen, counter: c, click: click}
}

// Run blocks on the event loop until a quit trigger and returns nil.
// A persist failure aborts the loop with the error; the caller
// restores the screen before reporting it.
func (a *App) Run() error {
	a.draw()

	for {
		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventKey:
			action := Classify(ev)
			if action == ActionQuit {
				return nil
			}
			if action == ActionNone {
				continue
			}
			if err := a.apply(action); err != nil {
				return err
			}
			a.draw()

		case *tcell.EventResize:
			a.screen.Sync()
			a.draw()
		}
	}
}

func (a *App) apply(action Action) error {
	var err error
	switch action {
	case ActionIncrement:
		err = a.counter.Increment()
	case ActionDecrement:
		err = a.counter.Decrement()
	}

	if errors.Is(err, counter.ErrClamped) {
		if action == ActionIncrement {
			a.notice = "overflow!"
		} else {
			a.notice = "underflow!"
		}
		return nil
	}
	if err != nil {
		return err
	}

	a.notice = ""
	if a.click != nil {
		if action == ActionIncrement {
			a.click.Increment()
		} else {
			a.click.Decrement()
		}
	}
	return nil
}

func (a *App) draw() {
	a.screen.Clear()

	line := fmt.Sprintf("Count: %d    [+/-/q]", a.counter.Value())
	puts(a.screen, 0, 0, line, tcell.StyleDefault)

	if a.notice != "" {
		puts(a.screen, 0, 1, a.notice, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}

	a.screen.Show()
}

func puts(s tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, style)
		col++
	}
}
