package engine

import "github.com/google/uuid"

type Phase int

const (
	PhaseAwaitingPlay Phase = iota
	PhaseAwaitingChallenge
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingPlay:
		return "AwaitingPlay"
	case PhaseAwaitingChallenge:
		return "AwaitingChallenge"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

type Rules struct {
	Players      int
	MaxPlayCards int
}

// ClassicPreset is the standard table: four players, at most four cards per
// play. The cap mirrors the UI selection limit as a hard engine constraint.
func ClassicPreset() Rules {
	return Rules{
		Players:      4,
		MaxPlayCards: 4,
	}
}

type PlayerState struct {
	ID   int
	Hand Hand
}

// PendingPlay is the most recent unresolved play, open to challenge until
// the next play, a challenge, or an explicit pass.
type PendingPlay struct {
	ID           uuid.UUID
	Player       int
	DeclaredRank Rank
	Cards        []Card
}

// Resolution records the outcome of the last challenge.
type Resolution struct {
	PlayID     uuid.UUID
	Player     int
	Challenger int
	WasLie     bool
	PickedUpBy int
	CardCount  int
}

type GameState struct {
	Rules   Rules
	Seed    int64
	Deck    *Deck
	Players []PlayerState

	Current   int
	TurnCount int
	Phase     Phase
	Pending   *PendingPlay

	LastResult *Resolution
	Discarded  []Card
	Winner     int
}

func NewGame(r Rules, seed int64) GameState {
	players := make([]PlayerState, r.Players)
	for i := 0; i < r.Players; i++ {
		players[i] = PlayerState{ID: i}
	}
	return GameState{
		Rules:   r,
		Seed:    seed,
		Deck:    NewDeck(seed),
		Players: players,
		Phase:   PhaseAwaitingPlay,
		Winner:  -1,
	}
}

// Deal shuffles and distributes the deck round-robin. Mutates game state
// deterministically based on the seed.
func Deal(g *GameState) {
	hands := make([]*Hand, len(g.Players))
	for i := range g.Players {
		hands[i] = &g.Players[i].Hand
	}
	g.Deck.Shuffle()
	g.Deck.DealHands(hands)
}
