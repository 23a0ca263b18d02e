package value

import (
	"fmt"
	"strconv"
)

// OutcomeClass is the binary launch outcome.
type OutcomeClass int

const (
	OutcomeFailure OutcomeClass = 0
	OutcomeSuccess OutcomeClass = 1
)

// OutcomeClasses lists every class in display order.
var OutcomeClasses = []OutcomeClass{OutcomeFailure, OutcomeSuccess} //nolint:gochecknoglobals

func ParseOutcomeClass(s string) (OutcomeClass, error) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("strconv.ParseFloat: %w", err)
	}

	switch n {
	case 0:
		return OutcomeFailure, nil
	case 1:
		return OutcomeSuccess, nil
	}

	return 0, fmt.Errorf("outcome class %q: must be 0 or 1", s)
}

func (c OutcomeClass) String() string {
	return strconv.Itoa(int(c))
}

// Color is the fixed display color of the class in proportion charts.
func (c OutcomeClass) Color() string {
	if c == OutcomeSuccess {
		return "green"
	}

	return "red"
}
