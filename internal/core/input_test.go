package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionPlace) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionPlace)
	f.Set(ActionPause)
	if !f.Has(ActionPlace) || !f.Has(ActionPause) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionPlace) || f.Has(ActionPause) {
		t.Error("Clear should remove actions")
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{{Type: EventPlaced, Value: 42}, {Type: EventPerfect}}}

	if !r.Has(EventPlaced) || !r.Has(EventPerfect) {
		t.Error("Has should find recorded events")
	}
	if r.Has(EventMiss) {
		t.Error("Has should not report missing events")
	}
}

func TestGameStateFinished(t *testing.T) {
	tests := []struct {
		state    GameState
		expected bool
	}{
		{GameState{}, false},
		{GameState{Paused: true}, false},
		{GameState{GameOver: true}, true},
		{GameState{Won: true}, true},
	}

	for _, tc := range tests {
		if got := tc.state.Finished(); got != tc.expected {
			t.Errorf("%+v.Finished() = %v, expected %v", tc.state, got, tc.expected)
		}
	}
}
