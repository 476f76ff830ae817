package game

import (
	"fmt"
	"strings"
)

// Action is a discrete player input.
type Action int

const (
	None Action = iota
	Left
	Right
	Down
	RotateCW
	RotateCCW
	HardDrop
	Pause
	Quit
)

// Actions lists every bindable action in display order.
var Actions = []Action{Left, Right, Down, RotateCW, RotateCCW, HardDrop, Pause, Quit}

var actionNames = map[Action]string{
	None:      "none",
	Left:      "left",
	Right:     "right",
	Down:      "down",
	RotateCW:  "rotate_cw",
	RotateCCW: "rotate_ccw",
	HardDrop:  "hard_drop",
	Pause:     "pause",
	Quit:      "quit",
}

func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ParseAction resolves an action by its snake_case name.
func ParseAction(s string) (Action, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for a, n := range actionNames {
		if n == s && a != None {
			return a, nil
		}
	}
	return None, fmt.Errorf("unknown action: %q", s)
}
