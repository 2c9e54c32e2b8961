package rooms

import "testing"

func TestRollProducesValidResults(t *testing.T) {
	raw := InitialState(TypeDice)

	for i := int64(1); i <= 30; i++ {
		raw = Roll(raw, i)

		state := DecodeDiceState(raw)
		if state.LastRoll == nil {
			t.Fatal("expected a roll result")
		}
		if *state.LastRoll < 1 || *state.LastRoll > 6 {
			t.Fatalf("roll %d out of range", *state.LastRoll)
		}
		if len(state.History) > diceHistoryLimit {
			t.Fatalf("history grew to %d entries", len(state.History))
		}
		for _, result := range state.History {
			if result < 1 || result > 6 {
				t.Fatalf("history contains out-of-range result %d", result)
			}
		}
		if !state.IsRolling {
			t.Fatal("expected isRolling to be set")
		}
		if state.RollTimestamp != i {
			t.Fatalf("expected rollTimestamp %d, got %d", i, state.RollTimestamp)
		}
	}

	state := DecodeDiceState(raw)
	if len(state.History) != diceHistoryLimit {
		t.Errorf("expected full history of %d after 30 rolls, got %d", diceHistoryLimit, len(state.History))
	}
	if state.History[len(state.History)-1] != *state.LastRoll {
		t.Error("expected the newest history entry to match lastRoll")
	}
}

func TestRollDefaultsDiceCount(t *testing.T) {
	state := DecodeDiceState(Roll([]byte(`{}`), 1))
	if state.DiceCount != 1 {
		t.Fatalf("expected diceCount default of 1, got %d", state.DiceCount)
	}
}
