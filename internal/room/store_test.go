package room

import (
	"testing"
	"time"

	"spy-room/internal/config"
	"spy-room/internal/pool"
)

func testPresence() config.PresenceConfig {
	return config.PresenceConfig{
		StepInterval:          500 * time.Millisecond,
		MaxTimeToLive:         10 * time.Second,
		DisconnectedThreshold: 3 * time.Second,
	}
}

func testTopics() []pool.Topic {
	return []pool.Topic{
		{Name: "food", Keywords: []string{"ramen", "sushi", "taco", "pizza", "curry", "dumpling"}},
		{Name: "places", Keywords: []string{"airport", "library", "aquarium", "casino", "harbor", "subway"}},
	}
}

func assertSingleMaster(t *testing.T, s *Store, code string, sessionIDs ...string) string {
	t.Helper()
	master := ""
	for _, id := range sessionIDs {
		snap, err := s.Heartbeat(code, id)
		if err != nil {
			t.Fatalf("heartbeat %s: %v", id, err)
		}
		if snap.IsMaster {
			if master != "" {
				t.Fatalf("both %s and %s report master", master, id)
			}
			master = id
		}
	}
	if master == "" {
		t.Fatalf("no user reports master")
	}
	return master
}

func TestFirstJoinerBecomesMaster(t *testing.T) {
	s := NewStore(testPresence())
	code := s.Create()

	a, err := s.Join(code, "alice")
	if err != nil {
		t.Fatalf("join alice: %v", err)
	}
	b, err := s.Join(code, "bob")
	if err != nil {
		t.Fatalf("join bob: %v", err)
	}

	if got := assertSingleMaster(t, s, code, a, b); got != a {
		t.Fatalf("expected first joiner %s as master, got %s", a, got)
	}
}

func TestJoinUnknownRoom(t *testing.T) {
	s := NewStore(testPresence())
	if _, err := s.Join("ZZZZZ", "alice"); err != ErrRoomNotFound {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestLeavePromotesLowestRemainingSession(t *testing.T) {
	s := NewStore(testPresence())
	code := s.Create()
	a, _ := s.Join(code, "alice")
	b, _ := s.Join(code, "bob")
	c, _ := s.Join(code, "carol")

	if err := s.Leave(code, a); err != nil {
		t.Fatalf("leave master: %v", err)
	}

	// session ids are monotonic ULIDs, so the earliest joiner sorts lowest
	want := b
	if c < b {
		want = c
	}
	if got := assertSingleMaster(t, s, code, b, c); got != want {
		t.Fatalf("expected promotion of %s, got %s", want, got)
	}
}

func TestLastLeaveRetiresRoom(t *testing.T) {
	s := NewStore(testPresence())
	code := s.Create()
	a, _ := s.Join(code, "alice")

	if err := s.Leave(code, a); err != nil {
		t.Fatalf("leave: %v", err)
	}
	if s.Exists(code) {
		t.Fatalf("room still retrievable after last leave")
	}
	if _, err := s.Join(code, "bob"); err != ErrRoomNotFound {
		t.Fatalf("expected ErrRoomNotFound joining retired room, got %v", err)
	}
}

func TestLeaveUnknownUser(t *testing.T) {
	s := NewStore(testPresence())
	code := s.Create()
	if _, err := s.Join(code, "alice"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := s.Leave(code, "nope"); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestHeartbeatResetsDecay(t *testing.T) {
	s := NewStore(testPresence())
	code := s.Create()
	a, _ := s.Join(code, "alice")

	// decay past the unresponsive threshold but not to zero
	for i := 0; i < 14; i++ {
		s.SweepTick()
	}
	snap, err := s.Heartbeat(code, a)
	if err != nil {
		t.Fatalf("heartbeat: %v", err)
	}
	view := snap.Users[a]
	if view.Status != StatusActive {
		t.Fatalf("expected active after heartbeat, got %s", view.Status)
	}
	if view.TimeToLive != testPresence().MaxTimeToLive.Milliseconds() {
		t.Fatalf("expected full ttl, got %d", view.TimeToLive)
	}
}

func TestStartRoundRequiresMaster(t *testing.T) {
	s := NewStore(testPresence())
	code := s.Create()
	a, _ := s.Join(code, "alice")
	b, _ := s.Join(code, "bob")
	cfg := RoundConfig{NumSpies: 1, NumFalses: 3}

	if err := s.StartRound(code, a, testTopics(), cfg); err != nil {
		t.Fatalf("master start: %v", err)
	}
	snap, _ := s.Heartbeat(code, a)
	firstRound := snap.Round
	firstContent := snap.Content

	if err := s.StartRound(code, b, testTopics(), cfg); err != ErrNotMaster {
		t.Fatalf("expected ErrNotMaster, got %v", err)
	}
	snap, _ = s.Heartbeat(code, a)
	if snap.Round != firstRound {
		t.Fatalf("rejected start incremented round: %d -> %d", firstRound, snap.Round)
	}
	if snap.Content == nil || firstContent == nil || snap.Content.Truth != firstContent.Truth {
		t.Fatalf("rejected start replaced committed content")
	}
}

func TestStartStopRoundTrip(t *testing.T) {
	s := NewStore(testPresence())
	code := s.Create()
	a, _ := s.Join(code, "alice")
	b, _ := s.Join(code, "bob")

	if err := s.StartRound(code, a, testTopics(), RoundConfig{NumSpies: 1, NumFalses: 3}); err != nil {
		t.Fatalf("start: %v", err)
	}
	snap, _ := s.Heartbeat(code, b)
	if snap.Phase != PhaseRound || snap.Round != 1 || snap.Content == nil {
		t.Fatalf("expected active round with content, got phase=%s round=%d content=%v",
			snap.Phase, snap.Round, snap.Content)
	}

	if err := s.StopRound(code, b); err != ErrNotMaster {
		t.Fatalf("expected ErrNotMaster stopping as non-master, got %v", err)
	}
	if err := s.StopRound(code, a); err != nil {
		t.Fatalf("stop: %v", err)
	}
	for _, id := range []string{a, b} {
		snap, _ := s.Heartbeat(code, id)
		if snap.Phase != PhaseIdle || snap.Content != nil {
			t.Fatalf("expected idle without content for %s", id)
		}
		if snap.Round != 1 {
			t.Fatalf("round counter reset by stop: %d", snap.Round)
		}
	}
}

func TestStartRoundContentVisibility(t *testing.T) {
	s := NewStore(testPresence())
	code := s.Create()
	a, _ := s.Join(code, "alice")
	b, _ := s.Join(code, "bob")

	if err := s.StartRound(code, a, testTopics(), RoundConfig{NumSpies: 1, NumFalses: 3}); err != nil {
		t.Fatalf("start: %v", err)
	}

	snapA, _ := s.Heartbeat(code, a)
	snapB, _ := s.Heartbeat(code, b)
	if snapA.Content == nil || snapB.Content == nil {
		t.Fatalf("both participants should hold content")
	}
	spies := 0
	if snapA.Content.Truth == "" {
		spies++
	}
	if snapB.Content.Truth == "" {
		spies++
	}
	if spies != 1 {
		t.Fatalf("expected exactly one spy, got %d", spies)
	}
}

func TestStartRoundInvalidConfigFailsClosed(t *testing.T) {
	s := NewStore(testPresence())
	code := s.Create()
	a, _ := s.Join(code, "alice")
	s.Join(code, "bob")

	cases := []RoundConfig{
		{NumSpies: 0, NumFalses: 3},
		{NumSpies: 2, NumFalses: 3},  // no informed participant left
		{NumSpies: 1, NumFalses: -1},
		{NumSpies: 1, NumFalses: 99}, // pool smaller than 1 truth + 99 falses
	}
	for _, cfg := range cases {
		if err := s.StartRound(code, a, testTopics(), cfg); err != ErrInvalidConfig {
			t.Fatalf("cfg %+v: expected ErrInvalidConfig, got %v", cfg, err)
		}
		snap, _ := s.Heartbeat(code, a)
		if snap.Phase != PhaseIdle || snap.Round != 0 {
			t.Fatalf("cfg %+v mutated room state", cfg)
		}
	}
}

func TestLateJoinerHasNoContentUntilNextRound(t *testing.T) {
	s := NewStore(testPresence())
	code := s.Create()
	a, _ := s.Join(code, "alice")
	s.Join(code, "bob")

	if err := s.StartRound(code, a, testTopics(), RoundConfig{NumSpies: 1, NumFalses: 2}); err != nil {
		t.Fatalf("start: %v", err)
	}
	c, _ := s.Join(code, "carol")

	snap, _ := s.Heartbeat(code, c)
	if snap.Phase != PhaseRound {
		t.Fatalf("late joiner should see the running round")
	}
	if snap.Content != nil {
		t.Fatalf("late joiner must not receive retroactive content")
	}

	if err := s.StartRound(code, a, testTopics(), RoundConfig{NumSpies: 1, NumFalses: 2}); err != nil {
		t.Fatalf("second start: %v", err)
	}
	snap, _ = s.Heartbeat(code, c)
	if snap.Content == nil {
		t.Fatalf("late joiner should be covered by the next round")
	}
	if snap.Round != 2 {
		t.Fatalf("expected round 2, got %d", snap.Round)
	}
}

func TestCreateCodesAreUniqueAndWellFormed(t *testing.T) {
	s := NewStore(testPresence())
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		code := s.Create()
		if len(code) != 5 {
			t.Fatalf("expected 5-char code, got %q", code)
		}
		for _, c := range code {
			if !((c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z')) {
				t.Fatalf("unexpected character in code %q", code)
			}
		}
		if seen[code] {
			t.Fatalf("duplicate live code %q", code)
		}
		seen[code] = true
	}
}
