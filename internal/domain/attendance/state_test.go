package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateOf(t *testing.T) {
	assert.Equal(t, StateEmpty, StateOf(nil))

	d := testDay()
	assert.Equal(t, StateEmpty, StateOf(&d))

	d.CheckIn = at(9, 0, 0)
	assert.Equal(t, StateCheckedIn, StateOf(&d))

	d.BreakStart = at(12, 0, 0)
	assert.Equal(t, StateOnBreak, StateOf(&d))

	d.BreakEnd = at(13, 0, 0)
	assert.Equal(t, StateBreakDone, StateOf(&d))

	d.CheckOut = at(18, 0, 0)
	assert.Equal(t, StateCheckedOut, StateOf(&d))
}

func TestCanApply(t *testing.T) {
	checkedIn := testDay()
	checkedIn.CheckIn = at(9, 0, 0)

	onBreak := checkedIn
	onBreak.BreakStart = at(12, 0, 0)

	breakDone := onBreak
	breakDone.BreakEnd = at(13, 0, 0)

	checkedOut := checkedIn
	checkedOut.CheckOut = at(17, 0, 0)

	openBreakOut := onBreak
	openBreakOut.CheckOut = at(17, 0, 0)

	tests := []struct {
		name   string
		day    *Day
		action Action
		want   error
	}{
		{"check-in on empty day", nil, ActionCheckIn, nil},
		{"break before check-in", nil, ActionBreakStart, ErrInvalidTransition},
		{"break end before check-in", nil, ActionBreakEnd, ErrInvalidTransition},
		{"check-out before check-in", nil, ActionCheckOut, ErrInvalidTransition},

		{"second check-in is a no-op", &checkedIn, ActionCheckIn, ErrActionAlreadyRecorded},
		{"start break", &checkedIn, ActionBreakStart, nil},
		{"end break never started", &checkedIn, ActionBreakEnd, ErrInvalidTransition},
		{"check-out skipping break", &checkedIn, ActionCheckOut, nil},

		{"end break", &onBreak, ActionBreakEnd, nil},
		{"second break start is a no-op", &onBreak, ActionBreakStart, ErrActionAlreadyRecorded},
		{"check-out with open break", &onBreak, ActionCheckOut, nil},

		{"check-out after break", &breakDone, ActionCheckOut, nil},
		{"second break end is a no-op", &breakDone, ActionBreakEnd, ErrActionAlreadyRecorded},

		{"break after check-out", &checkedOut, ActionBreakStart, ErrInvalidTransition},
		{"break end after check-out", &openBreakOut, ActionBreakEnd, ErrInvalidTransition},
		{"second check-out is a no-op", &checkedOut, ActionCheckOut, ErrActionAlreadyRecorded},
		{"check-in after check-out is a no-op", &checkedOut, ActionCheckIn, ErrActionAlreadyRecorded},

		{"unknown action", &checkedIn, Action("lunch"), ErrInvalidAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanApply(tt.day, tt.action)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAvailableActions(t *testing.T) {
	assert.Equal(t, []Action{ActionCheckIn}, AvailableActions(nil))

	d := testDay()
	d.CheckIn = at(9, 0, 0)
	assert.Equal(t, []Action{ActionBreakStart, ActionCheckOut}, AvailableActions(&d))

	d.BreakStart = at(12, 0, 0)
	assert.Equal(t, []Action{ActionBreakEnd, ActionCheckOut}, AvailableActions(&d))

	d.BreakEnd = at(13, 0, 0)
	assert.Equal(t, []Action{ActionCheckOut}, AvailableActions(&d))

	d.CheckOut = at(18, 0, 0)
	assert.Empty(t, AvailableActions(&d))
}

func TestParseAction(t *testing.T) {
	for _, a := range Actions {
		got, err := ParseAction(string(a))
		assert.NoError(t, err)
		assert.Equal(t, a, got)

		got, err = ParseAction(a.Slug())
		assert.NoError(t, err)
		assert.Equal(t, a, got)
	}

	_, err := ParseAction("clock-in")
	assert.ErrorIs(t, err, ErrInvalidAction)
}
