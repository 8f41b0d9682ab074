package sim

import (
	"fmt"
	"math/rand"

	"github.com/nicollemakh/BS-Card-Game/internal/bots"
	"github.com/nicollemakh/BS-Card-Game/internal/engine"
)

type ActionRecord struct {
	Step   int
	Phase  engine.Phase
	P      int
	Intent string
}

// RunSelfPlay plays one full game with scripted bots on every seat,
// checking conservation and phase invariants after every action. The game
// must finish within maxSteps.
func RunSelfPlay(seed int64, maxSteps int) error {
	rules := engine.ClassicPreset()
	state := engine.NewGame(rules, seed)
	engine.Deal(&state)

	rng := rand.New(rand.NewSource(seed))
	players := map[int]bots.Bot{}
	for i := 0; i < rules.Players; i++ {
		players[i] = bots.NewScripted(seed+int64(i)*100, bots.DefaultConfig())
	}

	records := []ActionRecord{}
	for step := 0; step < maxSteps; step++ {
		player, ok := engine.CurrentPlayer(state)
		if !ok {
			if state.Winner < 0 {
				return failure(seed, step, state.Phase, -1, records, "game over without winner")
			}
			return nil
		}
		bot := players[player]

		var intent string
		var err error
		switch {
		case bot.WantsChallenge(state, player):
			intent = "call_bs"
			err = engine.CallBS(&state, player)
		case state.Pending != nil && rng.Float64() < 0.05:
			intent = "pass"
			err = engine.Pass(&state)
		default:
			indices, declared := bot.ChoosePlay(state, player)
			intent = fmt.Sprintf("play %v as %v", indices, declared)
			err = engine.Play(&state, player, indices, declared)
		}
		if err != nil {
			return failure(seed, step, state.Phase, player, records, fmt.Sprintf("apply error: %v", err))
		}
		records = append(records, ActionRecord{Step: step, Phase: state.Phase, P: player, Intent: intent})
		if err := checkInvariants(state); err != nil {
			return failure(seed, step, state.Phase, player, records, err.Error())
		}
	}
	return failure(seed, maxSteps, state.Phase, -1, records, "game did not terminate")
}

func checkInvariants(state engine.GameState) error {
	total, dup := countCards(state)
	if total != engine.DeckSize {
		return fmt.Errorf("card count mismatch: %d", total)
	}
	if dup {
		return fmt.Errorf("duplicate card detected")
	}
	if state.Pending != nil && state.Phase == engine.PhaseAwaitingPlay {
		return fmt.Errorf("pending play outside challenge window")
	}
	if state.Phase == engine.PhaseAwaitingChallenge && state.Pending == nil {
		return fmt.Errorf("challenge window without pending play")
	}
	if state.Phase != engine.PhaseGameOver {
		if state.Players[state.Current].Hand.Size() == 0 {
			return fmt.Errorf("current player %d has no cards", state.Current)
		}
	}
	if state.Pending != nil && len(state.Pending.Cards) > state.Rules.MaxPlayCards {
		return fmt.Errorf("pending play too large: %d", len(state.Pending.Cards))
	}
	outOfPlay := 0
	for r := engine.Rank(0); r < engine.NumRanks; r++ {
		outOfPlay += state.Deck.Played[r]
	}
	if outOfPlay != state.Deck.Remaining()+len(state.Discarded) {
		return fmt.Errorf("played tracking mismatch: %d tracked, %d out of play",
			outOfPlay, state.Deck.Remaining()+len(state.Discarded))
	}
	return nil
}

func countCards(state engine.GameState) (int, bool) {
	seen := map[int]bool{}
	total := 0
	dup := false
	add := func(c engine.Card) {
		total++
		if seen[c.ID] {
			dup = true
		}
		seen[c.ID] = true
	}
	for i := range state.Players {
		for _, c := range state.Players[i].Hand.Cards() {
			add(c)
		}
	}
	if state.Pending != nil {
		for _, c := range state.Pending.Cards {
			add(c)
		}
	}
	for _, c := range state.Discarded {
		add(c)
	}
	for _, c := range state.Deck.Cards() {
		add(c)
	}
	return total, dup
}

func failure(seed int64, step int, phase engine.Phase, player int, records []ActionRecord, reason string) error {
	start := 0
	if len(records) > 20 {
		start = len(records) - 20
	}
	log := ""
	for _, r := range records[start:] {
		log += fmt.Sprintf("[s%d p%d %v] %s\n", r.Step, r.P, r.Phase, r.Intent)
	}
	return fmt.Errorf("seed=%d step=%d phase=%v player=%d reason=%s\nlast actions:\n%s",
		seed, step, phase, player, reason, log)
}
