package server

import "github.com/nicollemakh/BS-Card-Game/internal/engine"

type DealPayload struct {
	Players  int `json:"players"`
	HandSize int `json:"handSize"`
	Undealt  int `json:"undealt"`
}

type PlayPayload struct {
	Player       int    `json:"player"`
	CardCount    int    `json:"cardCount"`
	DeclaredRank string `json:"declaredRank"`
	PlayID       string `json:"playId"`
}

type ChallengePayload struct {
	Challenger int    `json:"challenger"`
	Player     int    `json:"player"`
	WasLie     bool   `json:"wasLie"`
	PickedUpBy int    `json:"pickedUpBy"`
	CardCount  int    `json:"cardCount"`
	PlayID     string `json:"playId"`
}

type TurnPayload struct {
	Player       int    `json:"player"`
	RequiredRank string `json:"requiredRank"`
}

type GameOverPayload struct {
	Winner int `json:"winner"`
}

// buildEvents diffs the state around one applied intent into client events.
// Ordering matters: the action event comes before the turn change, the game
// over event is always last.
func buildEvents(prev, next engine.GameState, intent Intent) []Event {
	events := []Event{}

	switch intent.Type {
	case IntentPlay:
		if next.Pending != nil {
			events = append(events, Event{Type: "play_made", Data: PlayPayload{
				Player:       intent.Player,
				CardCount:    len(next.Pending.Cards),
				DeclaredRank: next.Pending.DeclaredRank.String(),
				PlayID:       next.Pending.ID.String(),
			}})
		}
	case IntentCallBS:
		if r := next.LastResult; r != nil {
			events = append(events, Event{Type: "challenge_resolved", Data: ChallengePayload{
				Challenger: r.Challenger,
				Player:     r.Player,
				WasLie:     r.WasLie,
				PickedUpBy: r.PickedUpBy,
				CardCount:  r.CardCount,
				PlayID:     r.PlayID.String(),
			}})
		}
	case IntentPass:
		events = append(events, Event{Type: "turn_passed", Data: TurnPayload{
			Player:       intent.Player,
			RequiredRank: engine.RequiredRank(next).String(),
		}})
	}

	if next.Phase != engine.PhaseGameOver && prev.Current != next.Current {
		events = append(events, Event{Type: "turn_changed", Data: TurnPayload{
			Player:       next.Current,
			RequiredRank: engine.RequiredRank(next).String(),
		}})
	}
	if next.Phase == engine.PhaseGameOver && prev.Phase != engine.PhaseGameOver {
		events = append(events, Event{Type: "game_over", Data: GameOverPayload{Winner: next.Winner}})
	}
	return events
}
