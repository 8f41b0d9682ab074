package server

import (
	"errors"
	"fmt"

	"github.com/nicollemakh/BS-Card-Game/internal/engine"
)

type IntentType int

const (
	IntentPlay IntentType = iota
	IntentCallBS
	IntentPass
)

func (t IntentType) String() string {
	switch t {
	case IntentPlay:
		return "play"
	case IntentCallBS:
		return "call_bs"
	case IntentPass:
		return "pass"
	default:
		return "unknown"
	}
}

// IntentDTO is the wire form of a player action.
type IntentDTO struct {
	Type         string `json:"type"`
	Player       int    `json:"player"`
	Indices      []int  `json:"indices,omitempty"`
	DeclaredRank string `json:"declaredRank,omitempty"`
}

// Intent is the decoded, engine-ready form.
type Intent struct {
	Type     IntentType
	Player   int
	Indices  []int
	Declared engine.Rank
}

func (d *IntentDTO) ToEngine() (Intent, error) {
	if d == nil {
		return Intent{}, fmt.Errorf("missing intent")
	}
	switch d.Type {
	case "play":
		rank, err := engine.ParseRank(d.DeclaredRank)
		if err != nil {
			return Intent{}, fmt.Errorf("declared rank %q: %w", d.DeclaredRank, err)
		}
		return Intent{Type: IntentPlay, Player: d.Player, Indices: d.Indices, Declared: rank}, nil
	case "call_bs":
		return Intent{Type: IntentCallBS, Player: d.Player}, nil
	case "pass":
		return Intent{Type: IntentPass, Player: d.Player}, nil
	default:
		return Intent{}, fmt.Errorf("unknown intent type %q", d.Type)
	}
}

type CardDTO struct {
	Rank    string `json:"rank"`
	Suit    string `json:"suit"`
	Color   string `json:"color"`
	Display string `json:"display"`
}

func cardToDTO(c engine.Card) CardDTO {
	return CardDTO{
		Rank:    c.Rank().String(),
		Suit:    c.Suit().String(),
		Color:   c.Suit().Color(),
		Display: c.String(),
	}
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, engine.ErrNotYourTurn):
		return "not_your_turn"
	case errors.Is(err, engine.ErrWrongDeclaredRank):
		return "wrong_declared_rank"
	case errors.Is(err, engine.ErrNoSelection):
		return "no_selection"
	case errors.Is(err, engine.ErrSelectionLimit):
		return "selection_limit"
	case errors.Is(err, engine.ErrIndexOutOfRange):
		return "index_out_of_range"
	case errors.Is(err, engine.ErrDuplicateIndex):
		return "duplicate_index"
	case errors.Is(err, engine.ErrNoPendingPlay):
		return "no_pending_play"
	case errors.Is(err, engine.ErrChallengeOwnPlay):
		return "challenge_own_play"
	case errors.Is(err, engine.ErrUnknownPlayer):
		return "unknown_player"
	case errors.Is(err, engine.ErrGameOver):
		return "game_over"
	default:
		return "invalid_action"
	}
}
