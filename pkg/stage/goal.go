package stage

import (
	"fmt"
	"strconv"
	"strings"

	"lifestage/pkg/core"
)

// Goal names the win-condition family of a stage. The integer values are
// stable and match stored level data.
type Goal int

const (
	More   Goal = iota + 1 // more live cells than a target
	Less                   // fewer live cells than a target
	Odd                    // an odd live count
	Even                   // an even live count
	Border                 // live cells confined to the border
	Fix                    // a fixed pattern must remain unchanged
	Cling                  // live cells must stick together
	You                    // a designated cell must survive
)

var goalNames = [...]string{
	More:   "MORE",
	Less:   "LESS",
	Odd:    "ODD",
	Even:   "EVEN",
	Border: "BORDER",
	Fix:    "FIX",
	Cling:  "CLING",
	You:    "YOU",
}

var goalDescriptions = [...]string{
	More:   "end with more live cells than the target",
	Less:   "end with fewer live cells than the target",
	Odd:    "end with an odd number of live cells",
	Even:   "end with an even number of live cells",
	Border: "keep every live cell on the border",
	Fix:    "keep the fixed pattern unchanged",
	Cling:  "keep the live cells stuck together",
	You:    "keep the designated cell alive",
}

// NewGoal converts a raw integer to a Goal.
func NewGoal(v int) (Goal, error) {
	g := Goal(v)
	if !g.Valid() {
		return 0, core.NewError(core.CodeInvalidGoal,
			fmt.Sprintf("goal %d is not in [%d, %d]", v, More, You),
			map[string]string{"goal": strconv.Itoa(v)})
	}
	return g, nil
}

// ParseGoal looks a goal up by name, ignoring case.
func ParseGoal(name string) (Goal, error) {
	want := strings.ToUpper(strings.TrimSpace(name))
	for _, g := range Goals() {
		if goalNames[g] == want {
			return g, nil
		}
	}
	return 0, core.NewError(core.CodeInvalidGoal,
		fmt.Sprintf("unknown goal %q", name),
		map[string]string{"goal": name})
}

// Goals returns every goal in integer order.
func Goals() []Goal {
	return []Goal{More, Less, Odd, Even, Border, Fix, Cling, You}
}

// Valid reports whether g is one of the defined goals.
func (g Goal) Valid() bool { return g >= More && g <= You }

// Int returns the stored integer value.
func (g Goal) Int() int { return int(g) }

// String returns the upper-case goal name.
func (g Goal) String() string {
	if !g.Valid() {
		return "Goal(" + strconv.Itoa(int(g)) + ")"
	}
	return goalNames[g]
}

// Description summarises the condition in words. Evaluating it is left to the
// rule component.
func (g Goal) Description() string {
	if !g.Valid() {
		return ""
	}
	return goalDescriptions[g]
}
