package ui

import "github.com/gdamore/tcell/v2"

// Action is the effect of a single keystroke.
type Action int

const (
	ActionNone Action = iota
	ActionIncrement
	ActionDecrement
	ActionQuit
)

// Classify maps a key event to its action. Unbound keys map to
// ActionNone. Ctrl-C reaches us as a key event (the screen owns the
// terminal in raw mode), so interrupt classifies as an ordinary quit.
func Classify(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return ActionDecrement
	case tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case '+', '=', ' ': // '=' is '+' without shift
			return ActionIncrement
		case '-', '_': // '_' is '-' with shift
			return ActionDecrement
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}
