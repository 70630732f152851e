package core

import "testing"

func TestActionIsMove(t *testing.T) {
	tests := []struct {
		action   Action
		expected bool
	}{
		{ActionNone, false},
		{ActionUp, true},
		{ActionDown, true},
		{ActionLeft, true},
		{ActionRight, true},
		{ActionFire, false},
		{ActionPause, false},
		{ActionRestart, false},
		{ActionQuit, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			if got := tc.action.IsMove(); got != tc.expected {
				t.Errorf("%v.IsMove() = %v, expected %v", tc.action, got, tc.expected)
			}
		})
	}
}
