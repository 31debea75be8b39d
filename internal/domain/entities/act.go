package entities

import (
	"fmt"
	"strconv"
)

// Act is one of the three top-level campaign divisions.
type Act int

// Known acts.
const (
	Act1 Act = 1
	Act2 Act = 2
	Act3 Act = 3
)

// AllActs lists every act in campaign order.
var AllActs = []Act{Act1, Act2, Act3}

// IsValid reports whether a is a known act.
func (a Act) IsValid() bool {
	return a >= Act1 && a <= Act3
}

// String returns the act number.
func (a Act) String() string {
	return strconv.Itoa(int(a))
}

// ParseAct converts "1".."3" to an Act.
func ParseAct(s string) (Act, error) {
	n, err := strconv.Atoi(s)
	if err != nil || !Act(n).IsValid() {
		return 0, fmt.Errorf("%w: %q (valid: 1, 2, 3)", ErrUnknownAct, s)
	}
	return Act(n), nil
}
