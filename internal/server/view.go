package server

import (
	"github.com/nicollemakh/BS-Card-Game/internal/bots"
	"github.com/nicollemakh/BS-Card-Game/internal/engine"
)

type PlayerView struct {
	ID        int       `json:"id"`
	Hand      []CardDTO `json:"hand"`
	HandCount int       `json:"handCount"`
	IsBot     bool      `json:"isBot"`
}

type PendingView struct {
	PlayID       string `json:"playId"`
	Player       int    `json:"player"`
	DeclaredRank string `json:"declaredRank"`
	CardCount    int    `json:"cardCount"`
}

type ResolutionView struct {
	PlayID     string `json:"playId"`
	Player     int    `json:"player"`
	Challenger int    `json:"challenger"`
	WasLie     bool   `json:"wasLie"`
	PickedUpBy int    `json:"pickedUpBy"`
	CardCount  int    `json:"cardCount"`
}

type RulesView struct {
	Players      int `json:"players"`
	MaxPlayCards int `json:"maxPlayCards"`
}

// GameView is the full table state sent to the client. This is a hot-seat
// shell: every hand is visible, the client decides what to show per seat.
type GameView struct {
	SessionID    string          `json:"sessionId"`
	Rules        RulesView       `json:"rules"`
	Players      []PlayerView    `json:"players"`
	Current      int             `json:"current"`
	RequiredRank string          `json:"requiredRank"`
	TurnCount    int             `json:"turnCount"`
	Phase        string          `json:"phase"`
	Pending      *PendingView    `json:"pending,omitempty"`
	LastResult   *ResolutionView `json:"lastResult,omitempty"`
	DiscardCount int             `json:"discardCount"`
	UndealtCount int             `json:"undealtCount"`
	Winner       int             `json:"winner"`
}

func BuildGameView(g engine.GameState, sessionID string, botPlayers map[int]bots.Bot) *GameView {
	players := make([]PlayerView, len(g.Players))
	for i := range g.Players {
		cards := g.Players[i].Hand.Cards()
		hand := make([]CardDTO, len(cards))
		for j, c := range cards {
			hand[j] = cardToDTO(c)
		}
		_, isBot := botPlayers[g.Players[i].ID]
		players[i] = PlayerView{
			ID:        g.Players[i].ID,
			Hand:      hand,
			HandCount: len(cards),
			IsBot:     isBot,
		}
	}

	view := &GameView{
		SessionID:    sessionID,
		Rules:        RulesView{Players: g.Rules.Players, MaxPlayCards: g.Rules.MaxPlayCards},
		Players:      players,
		Current:      g.Current,
		RequiredRank: engine.RequiredRank(g).String(),
		TurnCount:    g.TurnCount,
		Phase:        g.Phase.String(),
		DiscardCount: len(g.Discarded),
		UndealtCount: g.Deck.Remaining(),
		Winner:       g.Winner,
	}
	if g.Pending != nil {
		view.Pending = &PendingView{
			PlayID:       g.Pending.ID.String(),
			Player:       g.Pending.Player,
			DeclaredRank: g.Pending.DeclaredRank.String(),
			CardCount:    len(g.Pending.Cards),
		}
	}
	if g.LastResult != nil {
		view.LastResult = &ResolutionView{
			PlayID:     g.LastResult.PlayID.String(),
			Player:     g.LastResult.Player,
			Challenger: g.LastResult.Challenger,
			WasLie:     g.LastResult.WasLie,
			PickedUpBy: g.LastResult.PickedUpBy,
			CardCount:  g.LastResult.CardCount,
		}
	}
	return view
}
