package match

import "testing"

func TestFinishOutcome(t *testing.T) {
	tests := []struct {
		name         string
		white, black uint8
		completed    bool
		wantOutcome  string
		wantReason   string
	}{
		{"white wins", 40, 24, true, OutcomeWhite, EndCompleted},
		{"black wins", 20, 44, true, OutcomeBlack, EndCompleted},
		{"draw", 32, 32, true, OutcomeDraw, EndCompleted},
		{"abandoned keeps leader", 5, 3, false, OutcomeWhite, EndAbandoned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(ModeLocal, "")
			res := m.Finish(tt.white, tt.black, tt.completed)

			if res.Outcome != tt.wantOutcome {
				t.Errorf("Outcome = %q, want %q", res.Outcome, tt.wantOutcome)
			}
			if res.EndReason != tt.wantReason {
				t.Errorf("EndReason = %q, want %q", res.EndReason, tt.wantReason)
			}
			if res.WhiteScore != int(tt.white) || res.BlackScore != int(tt.black) {
				t.Errorf("scores = %d/%d, want %d/%d", res.WhiteScore, res.BlackScore, tt.white, tt.black)
			}
		})
	}
}

func TestMoveCounting(t *testing.T) {
	m := New(ModeSSH, "alice")
	for i := 0; i < 7; i++ {
		m.RecordMove()
	}

	if m.Moves() != 7 {
		t.Errorf("Moves() = %d, want 7", m.Moves())
	}

	res := m.Finish(4, 5, false)
	if res.Moves != 7 {
		t.Errorf("Result.Moves = %d, want 7", res.Moves)
	}
	if res.Mode != ModeSSH || res.Session != "alice" {
		t.Errorf("mode/session = %v/%q", res.Mode, res.Session)
	}
}

func TestSessionRegistry(t *testing.T) {
	reg := NewSessionRegistry()

	id1 := NewSessionID("alice")
	id2 := NewSessionID("bob")
	reg.Register(SessionInfo{ID: id1, User: "alice"})
	reg.Register(SessionInfo{ID: id2, User: "bob"})

	if reg.Count() != 2 {
		t.Errorf("Count() = %d, want 2", reg.Count())
	}

	info, ok := reg.Get(id1)
	if !ok || info.User != "alice" {
		t.Errorf("Get(%q) = (%+v, %v)", id1, info, ok)
	}

	reg.Unregister(id1)
	if reg.Count() != 1 {
		t.Errorf("Count() after unregister = %d, want 1", reg.Count())
	}
	if _, ok := reg.Get(id1); ok {
		t.Error("unregistered session still retrievable")
	}
}
