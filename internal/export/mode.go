package export

import (
	"fmt"
	"strings"
)

// Mode picks between the packed pipeline, plain separate maps, or
// both at once.
type Mode int

const (
	ModeFull Mode = iota
	ModeBoth
	ModeSeparatesOnly
)

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "full":
		return ModeFull, nil
	case "both":
		return ModeBoth, nil
	case "separates":
		return ModeSeparatesOnly, nil
	}
	return 0, fmt.Errorf("export: unknown mode %q", s)
}

func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeBoth:
		return "both"
	case ModeSeparatesOnly:
		return "separates"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// effective downgrades the requested mode where the target cannot
// honor it. SpeedTree consumes only separate maps, so it always runs
// separates regardless of what the caller asked for.
func (m Mode) effective(t Target) Mode {
	if t == TargetSpeedTree {
		return ModeSeparatesOnly
	}
	return m
}

// State tracks a job through the planner. Failed can follow any
// state.
type State int

const (
	StateIdle State = iota
	StateExtracting
	StateDeriving
	StatePacking
	StateEncoding
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateExtracting:
		return "extracting"
	case StateDeriving:
		return "deriving"
	case StatePacking:
		return "packing"
	case StateEncoding:
		return "encoding"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}
