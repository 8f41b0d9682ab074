package bots

import (
	"math/rand"

	"github.com/nicollemakh/BS-Card-Game/internal/engine"
)

// Bot decides plays and challenges from a state snapshot. Implementations
// never mutate the state they are given.
type Bot interface {
	// ChoosePlay returns the hand indices to play and the rank to declare.
	ChoosePlay(state engine.GameState, player int) ([]int, engine.Rank)
	// WantsChallenge reports whether the bot calls BS on the pending play.
	WantsChallenge(state engine.GameState, player int) bool
}

// Config tunes the scripted policy. Probabilities are in [0, 1].
type Config struct {
	HonestChance    float64 // chance of playing matching cards when held
	ChallengeChance float64 // chance of challenging someone else's play
	MaxHonest       int     // cap on matching cards played truthfully
	MaxBluff        int     // cap on arbitrary cards played as a bluff
}

func DefaultConfig() Config {
	return Config{
		HonestChance:    0.6,
		ChallengeChance: 0.3,
		MaxHonest:       4,
		MaxBluff:        3,
	}
}

// ScriptedBot plays the required rank honestly when it can and feels like
// it, and otherwise bluffs from the front of its hand.
type ScriptedBot struct {
	RNG *rand.Rand
	Cfg Config
}

func NewScripted(seed int64, cfg Config) *ScriptedBot {
	return &ScriptedBot{RNG: rand.New(rand.NewSource(seed)), Cfg: cfg}
}

func (b *ScriptedBot) ChoosePlay(state engine.GameState, player int) ([]int, engine.Rank) {
	required := engine.RequiredRank(state)
	hand := state.Players[player].Hand.Cards()

	matching := make([]int, 0, len(hand))
	for i, c := range hand {
		if c.Rank() == required {
			matching = append(matching, i)
		}
	}

	if b.RNG.Float64() < b.Cfg.HonestChance && len(matching) > 0 {
		if len(matching) > b.Cfg.MaxHonest {
			matching = matching[:b.Cfg.MaxHonest]
		}
		return matching, required
	}

	n := b.Cfg.MaxBluff
	if n > len(hand) {
		n = len(hand)
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices, required
}

func (b *ScriptedBot) WantsChallenge(state engine.GameState, player int) bool {
	if state.Pending == nil || state.Pending.Player == player {
		return false
	}
	return b.RNG.Float64() < b.Cfg.ChallengeChance
}
