package rooms

import "testing"

func TestDrawUntilExhausted(t *testing.T) {
	options := testOptions()
	raw := InitialState(TypeCards)

	for i := 1; i <= len(options); i++ {
		raw = Draw(options, raw, int64(i))

		state := DecodeCardsState(raw)
		if len(state.Drawn) != i {
			t.Fatalf("after %d draws expected %d drawn, got %d", i, i, len(state.Drawn))
		}
		if state.LastDrawn == nil || state.Drawn[len(state.Drawn)-1] != *state.LastDrawn {
			t.Fatalf("lastDrawn out of sync with drawn list: %+v", state)
		}
		if !state.IsDrawing {
			t.Fatal("expected isDrawing to be set")
		}
		if state.DrawTimestamp != int64(i) {
			t.Fatalf("expected drawTimestamp %d, got %d", i, state.DrawTimestamp)
		}
	}

	state := DecodeCardsState(raw)
	seen := map[string]bool{}
	for _, label := range state.Drawn {
		if seen[label] {
			t.Fatalf("card %q drawn twice", label)
		}
		seen[label] = true
	}

	// exhausted deck: further draws leave the document untouched
	exhausted := Draw(options, raw, 99)
	if string(exhausted) != string(raw) {
		t.Fatalf("expected exhausted draw to be a no-op, got %s", exhausted)
	}
}

func TestResetCards(t *testing.T) {
	options := testOptions()
	raw := Draw(options, InitialState(TypeCards), 1)
	raw = ResetCards(raw)

	state := DecodeCardsState(raw)
	if len(state.Drawn) != 0 {
		t.Errorf("expected empty drawn list after reset, got %v", state.Drawn)
	}
	if state.LastDrawn != nil {
		t.Errorf("expected lastDrawn cleared, got %q", *state.LastDrawn)
	}

	// the full deck is drawable again
	state = DecodeCardsState(Draw(options, raw, 2))
	if len(state.Drawn) != 1 {
		t.Fatalf("expected a fresh draw after reset, got %+v", state)
	}
}
