package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionMoveUp)
	f.Release(ActionMoveUp)
	f.Press(ActionFire)

	if len(f.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(f.Events))
	}
	if f.Events[1] != (InputEvent{Action: ActionMoveUp, Pressed: false}) {
		t.Errorf("second event should be the release, got %+v", f.Events[1])
	}

	f.Clear()
	if len(f.Events) != 0 {
		t.Error("Clear should drop all events")
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dir    Direction
		ok     bool
	}{
		{ActionMoveUp, North, true},
		{ActionMoveDown, South, true},
		{ActionMoveLeft, West, true},
		{ActionMoveRight, East, true},
		{ActionFire, East, false},
		{ActionConfirm, East, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			dir, ok := tc.action.Direction()
			if ok != tc.ok || (ok && dir != tc.dir) {
				t.Errorf("Direction() = (%v, %v), expected (%v, %v)", dir, ok, tc.dir, tc.ok)
			}
		})
	}
}

func TestRuntimeConfigTickSeconds(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 50}).TickSeconds(); got != 0.02 {
		t.Errorf("TickSeconds() = %f, expected 0.02", got)
	}
	if got := (RuntimeConfig{}).TickSeconds(); got != 1.0/60.0 {
		t.Errorf("zero tick rate should fall back to 60 fps, got %f", got)
	}
}
