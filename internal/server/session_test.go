package server

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/nicollemakh/BS-Card-Game/internal/bots"
	"github.com/nicollemakh/BS-Card-Game/internal/engine"
)

func testSession(botSeats []int) *Session {
	return NewSession(zap.NewNop(), Options{
		AIDelay:  time.Hour, // scheduled timers must never fire during a test
		BotSeats: botSeats,
	})
}

func TestApplyIntentIsIdempotent(t *testing.T) {
	s := testSession([]int{})
	s.startGame(3)

	required := engine.RequiredRank(s.state).String()
	s.applyIntent("a1", &IntentDTO{Type: "play", Player: 0, Indices: []int{0}, DeclaredRank: required})
	if s.state.TurnCount != 1 || s.state.Pending == nil {
		t.Fatalf("play was not applied: turnCount=%d", s.state.TurnCount)
	}

	// Same actionId with a different payload must be a no-op.
	s.applyIntent("a1", &IntentDTO{Type: "pass", Player: 1})
	if s.state.TurnCount != 1 || s.state.Pending == nil {
		t.Fatalf("duplicate actionId was replayed")
	}

	s.applyIntent("a2", &IntentDTO{Type: "pass", Player: 1})
	if s.state.Pending != nil {
		t.Fatalf("fresh actionId was not applied")
	}
}

func TestApplyIntentRejectsBeforeStart(t *testing.T) {
	s := testSession([]int{})
	s.applyIntent("a1", &IntentDTO{Type: "pass", Player: 0})
	if s.started {
		t.Fatalf("intent before start must not start a game")
	}
}

func TestStartGameResetsActionIds(t *testing.T) {
	s := testSession([]int{})
	s.startGame(3)
	required := engine.RequiredRank(s.state).String()
	s.applyIntent("a1", &IntentDTO{Type: "play", Player: 0, Indices: []int{0}, DeclaredRank: required})

	s.startGame(4)
	if s.state.TurnCount != 0 {
		t.Fatalf("new game kept old progress")
	}
	required = engine.RequiredRank(s.state).String()
	s.applyIntent("a1", &IntentDTO{Type: "play", Player: 0, Indices: []int{0}, DeclaredRank: required})
	if s.state.Pending == nil {
		t.Fatalf("actionIds not reset across games")
	}
}

func TestRunBotChecksEpochAndSeat(t *testing.T) {
	s := testSession([]int{0, 1, 2, 3})
	s.startGame(7)

	seat := s.state.Current
	s.runBot(s.epoch-1, seat)
	if s.state.TurnCount != 0 || s.state.Pending != nil {
		t.Fatalf("stale epoch task mutated the game")
	}

	s.runBot(s.epoch, (seat+1)%s.opts.Rules.Players)
	if s.state.TurnCount != 0 || s.state.Pending != nil {
		t.Fatalf("task for a non-current seat mutated the game")
	}

	s.runBot(s.epoch, seat)
	if s.state.Pending == nil || s.state.TurnCount != 1 {
		t.Fatalf("current bot seat did not act")
	}
}

func TestStaleBotTaskAfterReset(t *testing.T) {
	s := testSession([]int{0, 1, 2, 3})
	s.startGame(7)
	epoch := s.epoch
	seat := s.state.Current

	s.startGame(8)
	s.runBot(epoch, seat)
	if s.state.TurnCount != 0 || s.state.Pending != nil {
		t.Fatalf("task from the previous game mutated the new one")
	}
}

func TestIntentDTOToEngine(t *testing.T) {
	cases := []struct {
		name    string
		dto     *IntentDTO
		want    Intent
		wantErr bool
	}{
		{
			name: "play",
			dto:  &IntentDTO{Type: "play", Player: 2, Indices: []int{1, 3}, DeclaredRank: "Q"},
			want: Intent{Type: IntentPlay, Player: 2, Indices: []int{1, 3}, Declared: engine.RankQ},
		},
		{
			name: "call bs",
			dto:  &IntentDTO{Type: "call_bs", Player: 1},
			want: Intent{Type: IntentCallBS, Player: 1},
		},
		{
			name: "pass",
			dto:  &IntentDTO{Type: "pass", Player: 0},
			want: Intent{Type: IntentPass},
		},
		{name: "bad rank", dto: &IntentDTO{Type: "play", Player: 0, DeclaredRank: "joker"}, wantErr: true},
		{name: "unknown type", dto: &IntentDTO{Type: "fold"}, wantErr: true},
		{name: "nil", dto: nil, wantErr: true},
	}
	for _, c := range cases {
		got, err := c.dto.ToEngine()
		if c.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error", c.name)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if got.Type != c.want.Type || got.Player != c.want.Player || got.Declared != c.want.Declared {
			t.Fatalf("%s: got %+v, want %+v", c.name, got, c.want)
		}
	}
}

func TestErrorCodes(t *testing.T) {
	cases := []struct {
		err  error
		code string
	}{
		{engine.ErrNotYourTurn, "not_your_turn"},
		{engine.ErrWrongDeclaredRank, "wrong_declared_rank"},
		{engine.ErrChallengeOwnPlay, "challenge_own_play"},
		{engine.ErrGameOver, "game_over"},
		{engine.ErrEmptyDeck, "invalid_action"},
	}
	for _, c := range cases {
		if got := errorCode(c.err); got != c.code {
			t.Fatalf("errorCode(%v) = %q, want %q", c.err, got, c.code)
		}
	}
}

func TestBuildGameView(t *testing.T) {
	g := engine.NewGame(engine.ClassicPreset(), 5)
	engine.Deal(&g)
	botPlayers := map[int]bots.Bot{1: bots.NewScripted(1, bots.DefaultConfig())}

	view := BuildGameView(g, "sid", botPlayers)
	if view.SessionID != "sid" || len(view.Players) != 4 {
		t.Fatalf("view shape wrong: %+v", view)
	}
	for i, p := range view.Players {
		if p.HandCount != 13 || len(p.Hand) != 13 {
			t.Fatalf("player %d hand not visible: %d cards", i, p.HandCount)
		}
	}
	if !view.Players[1].IsBot || view.Players[0].IsBot {
		t.Fatalf("bot flags wrong")
	}
	if view.RequiredRank != "A" || view.Phase != "AwaitingPlay" || view.Winner != -1 {
		t.Fatalf("view fields wrong: %+v", view)
	}
}

func TestBuildEvents(t *testing.T) {
	g := engine.NewGame(engine.ClassicPreset(), 5)
	engine.Deal(&g)

	prev := g
	if err := engine.Play(&g, 0, []int{0}, engine.RequiredRank(g)); err != nil {
		t.Fatalf("play failed: %v", err)
	}
	events := buildEvents(prev, g, Intent{Type: IntentPlay, Player: 0})
	if len(events) != 2 || events[0].Type != "play_made" || events[1].Type != "turn_changed" {
		t.Fatalf("play events wrong: %+v", events)
	}

	prev = g
	if err := engine.CallBS(&g, 2); err != nil {
		t.Fatalf("challenge failed: %v", err)
	}
	events = buildEvents(prev, g, Intent{Type: IntentCallBS, Player: 2})
	if len(events) == 0 || events[0].Type != "challenge_resolved" {
		t.Fatalf("challenge events wrong: %+v", events)
	}
}

func TestBuildEventsGameOver(t *testing.T) {
	g := engine.NewGame(engine.Rules{Players: 2, MaxPlayCards: 4}, 1)
	g.Players[0].Hand.AddCards([]engine.Card{engine.CardOf(engine.RankA, engine.SuitHearts)})
	g.Players[1].Hand.AddCards([]engine.Card{engine.CardOf(engine.Rank9, engine.SuitSpades)})

	prev := g
	if err := engine.Play(&g, 0, []int{0}, engine.RankA); err != nil {
		t.Fatalf("play failed: %v", err)
	}
	events := buildEvents(prev, g, Intent{Type: IntentPlay, Player: 0})
	last := events[len(events)-1]
	if last.Type != "game_over" {
		t.Fatalf("expected trailing game_over, got %+v", events)
	}
	if payload, ok := last.Data.(GameOverPayload); !ok || payload.Winner != 0 {
		t.Fatalf("game over payload wrong: %+v", last.Data)
	}
}
