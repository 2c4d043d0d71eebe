package attendance

type State string

const (
	StateEmpty      State = "empty"
	StateCheckedIn  State = "checked_in"
	StateOnBreak    State = "on_break"
	StateBreakDone  State = "break_done"
	StateCheckedOut State = "checked_out"
)

// StateOf derives the clock state of a day. A nil day is Empty.
func StateOf(d *Day) State {
	switch {
	case d == nil:
		return StateEmpty
	case d.CheckOut != nil:
		return StateCheckedOut
	case d.BreakEnd != nil:
		return StateBreakDone
	case d.BreakStart != nil:
		return StateOnBreak
	case d.CheckIn != nil:
		return StateCheckedIn
	}
	return StateEmpty
}

// CanApply checks action against the recorded fields of d (nil means no row yet).
// ErrActionAlreadyRecorded means the target field is set and the action is a
// no-op. ErrInvalidTransition means a precondition fails.
func CanApply(d *Day, action Action) error {
	if d == nil {
		d = &Day{}
	}

	if d.Get(action) != nil {
		return ErrActionAlreadyRecorded
	}

	// checked out is terminal
	if d.CheckOut != nil {
		return ErrInvalidTransition
	}

	switch action {
	case ActionCheckIn:
		return nil
	case ActionBreakStart, ActionCheckOut:
		if d.CheckIn == nil {
			return ErrInvalidTransition
		}
		return nil
	case ActionBreakEnd:
		if d.BreakStart == nil {
			return ErrInvalidTransition
		}
		return nil
	}
	return ErrInvalidAction
}

// AvailableActions lists the actions that would be applied to d right now.
func AvailableActions(d *Day) []Action {
	available := make([]Action, 0, len(Actions))
	for _, a := range Actions {
		if CanApply(d, a) == nil {
			available = append(available, a)
		}
	}
	return available
}
