package rooms

import (
	"testing"
)

func testOptions() []Option {
	return []Option{
		{Id: "opt-1", Label: "Pizza", Color: "hsl(0, 70%, 60%)"},
		{Id: "opt-2", Label: "Burger", Color: "hsl(137.5, 70%, 60%)"},
		{Id: "opt-3", Label: "Sushi", Color: "hsl(275, 70%, 60%)"},
	}
}

func labelOf(options []Option, id string) string {
	option, _ := findOption(options, id)
	return option.Label
}

func TestSpinPicksAWinner(t *testing.T) {
	options := testOptions()
	state := DecodeGachaState(Spin(options, InitialState(TypeGacha), 1000))

	if state.Winner == nil {
		t.Fatal("expected a winner")
	}
	if _, ok := findOption(options, *state.Winner); !ok {
		t.Fatalf("winner %s is not one of the room's options", *state.Winner)
	}
	if !state.IsSpinning {
		t.Error("expected isSpinning to be set")
	}
	if state.SpinTimestamp != 1000 {
		t.Errorf("expected spinTimestamp 1000, got %d", state.SpinTimestamp)
	}
	if len(state.History) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(state.History))
	}
	if state.History[0].Label != labelOf(options, *state.Winner) {
		t.Errorf("history label %q does not match winner label %q",
			state.History[0].Label, labelOf(options, *state.Winner))
	}
	if state.Votes == nil {
		t.Error("expected votes map to survive the spin")
	}
}

func TestSpinHistoryNewestFirstAndCapped(t *testing.T) {
	options := testOptions()
	raw := InitialState(TypeGacha)

	for i := int64(1); i <= 15; i++ {
		raw = Spin(options, raw, i)
	}

	state := DecodeGachaState(raw)
	if len(state.History) != 10 {
		t.Fatalf("expected history capped at 10, got %d", len(state.History))
	}
	for i := range state.History {
		want := int64(15 - i)
		if state.History[i].Timestamp != want {
			t.Errorf("history[%d]: expected timestamp %d, got %d", i, want, state.History[i].Timestamp)
		}
	}
}

func TestSpinWithoutOptionsIsNoop(t *testing.T) {
	raw := InitialState(TypeGacha)
	if got := Spin(nil, raw, 1000); string(got) != string(raw) {
		t.Fatalf("expected no-op, state changed to %s", got)
	}
}

func TestSpinHealsMalformedState(t *testing.T) {
	state := DecodeGachaState(Spin(testOptions(), []byte("{{corrupt"), 42))
	if state.Winner == nil || state.SpinTimestamp != 42 || len(state.History) != 1 {
		t.Fatalf("expected spin to rebuild from defaults, got %+v", state)
	}
}
