package cmdline

import "fmt"

// Phase names what a caller-side argument parser expects next.
//
// The set is open and carries no behavior: there is no transition table and
// the tokenizer never looks at it. Callers switch on it while they consume
// tokens; see the examples directory.
type Phase uint8

const (
	// PhaseCommand expects a command.
	PhaseCommand Phase = iota
	// PhaseModifiers expects a number of modifiers.
	PhaseModifiers
	// PhaseOptions expects a number of options.
	PhaseOptions
	// PhaseValue expects an option value.
	PhaseValue
	// PhaseFixed expects a fixed position argument; State.Index holds the position.
	PhaseFixed
	// PhaseArgs expects variable arguments.
	PhaseArgs
	// PhaseEnd expects no more arguments.
	PhaseEnd
)

var phaseNames = [...]string{
	PhaseCommand:   "Command",
	PhaseModifiers: "Modifiers",
	PhaseOptions:   "Options",
	PhaseValue:     "Value",
	PhaseFixed:     "Fixed",
	PhaseArgs:      "Args",
	PhaseEnd:       "End",
}

// String returns the name of the phase.
func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", p)
}

// State is a tagged union of parse phases. Index is only meaningful for
// PhaseFixed. The zero value is PhaseCommand.
type State struct {
	Phase Phase
	Index uint32
}

// Common states.
var (
	StateCommand   = State{Phase: PhaseCommand}
	StateModifiers = State{Phase: PhaseModifiers}
	StateOptions   = State{Phase: PhaseOptions}
	StateValue     = State{Phase: PhaseValue}
	StateArgs      = State{Phase: PhaseArgs}
	StateEnd       = State{Phase: PhaseEnd}
)

// Fixed returns the state expecting the fixed position argument n.
func Fixed(n uint32) State {
	return State{Phase: PhaseFixed, Index: n}
}

// Is reports whether s is in phase p, ignoring the index.
func (s State) Is(p Phase) bool {
	return s.Phase == p
}

// String returns the state name, with the index for fixed states, e.g. "Fixed(0)".
func (s State) String() string {
	if s.Phase == PhaseFixed {
		return fmt.Sprintf("Fixed(%d)", s.Index)
	}
	return s.Phase.String()
}
