package engine

import "github.com/google/uuid"

// RequiredRank is the rank the current play must declare. It cycles through
// the 13 ranks with the turn counter, independent of what anyone holds.
func RequiredRank(g GameState) Rank {
	return Rank(g.TurnCount % NumRanks)
}

// CurrentPlayer returns the seat expected to act, or false once the game is
// over.
func CurrentPlayer(g GameState) (int, bool) {
	if g.Phase == PhaseGameOver {
		return -1, false
	}
	return g.Current, true
}

// Play removes the selected cards from the player's hand into a new pending
// play declared as the required rank. A still-unresolved previous pending
// play is discarded face-down first. On success the turn advances to the
// next player holding cards and the declaration cycle moves on.
func Play(g *GameState, player int, indices []int, declared Rank) error {
	if g.Phase == PhaseGameOver {
		return ErrGameOver
	}
	if player != g.Current {
		return ErrNotYourTurn
	}
	if len(indices) == 0 {
		return ErrNoSelection
	}
	if len(indices) > g.Rules.MaxPlayCards {
		return ErrSelectionLimit
	}
	if declared != RequiredRank(*g) {
		return ErrWrongDeclaredRank
	}

	cards, err := g.Players[player].Hand.PlayCards(indices)
	if err != nil {
		return err
	}

	discardPending(g)
	g.Pending = &PendingPlay{
		ID:           uuid.New(),
		Player:       player,
		DeclaredRank: declared,
		Cards:        cards,
	}
	g.Deck.RecordClaim(declared, len(cards))
	g.LastResult = nil

	if checkWin(g) {
		return nil
	}
	g.Phase = PhaseAwaitingChallenge
	advanceTurn(g, true)
	return nil
}

// CallBS resolves the pending play. Any card mismatching the declared rank
// makes the declaration a lie and sends every pending card back to the
// bluffer; an honest play sends them to the challenger instead.
func CallBS(g *GameState, challenger int) error {
	if g.Phase == PhaseGameOver {
		return ErrGameOver
	}
	if challenger < 0 || challenger >= len(g.Players) {
		return ErrUnknownPlayer
	}
	p := g.Pending
	if p == nil {
		return ErrNoPendingPlay
	}
	if challenger == p.Player {
		return ErrChallengeOwnPlay
	}

	lie := false
	for _, c := range p.Cards {
		if c.Rank() != p.DeclaredRank {
			lie = true
			break
		}
	}
	pickup := challenger
	if lie {
		pickup = p.Player
	}
	g.Players[pickup].Hand.AddCards(p.Cards)
	g.LastResult = &Resolution{
		PlayID:     p.ID,
		Player:     p.Player,
		Challenger: challenger,
		WasLie:     lie,
		PickedUpBy: pickup,
		CardCount:  len(p.Cards),
	}
	g.Pending = nil
	g.Phase = PhaseAwaitingPlay

	if checkWin(g) {
		return nil
	}
	advanceTurn(g, true)
	return nil
}

// Pass skips the challenge window. Pending cards are discarded face-down:
// they stay lost from the hand that played them. The seat advances but the
// declaration cycle does not.
func Pass(g *GameState) error {
	if g.Phase == PhaseGameOver {
		return ErrGameOver
	}
	discardPending(g)
	g.LastResult = nil
	g.Phase = PhaseAwaitingPlay
	advanceTurn(g, false)
	return nil
}

// PlayersWithCards counts seats still holding cards.
func PlayersWithCards(g GameState) int {
	n := 0
	for i := range g.Players {
		if g.Players[i].Hand.Size() > 0 {
			n++
		}
	}
	return n
}

func discardPending(g *GameState) {
	if g.Pending == nil {
		return
	}
	g.Discarded = append(g.Discarded, g.Pending.Cards...)
	g.Deck.RecordPlayed(g.Pending.Cards)
	g.Pending = nil
}

// advanceTurn moves to the next seat with a non-empty hand. bumpCycle moves
// the declaration cycle too; passing a turn leaves it in place.
func advanceTurn(g *GameState, bumpCycle bool) {
	if bumpCycle {
		g.TurnCount++
	}
	for i := 1; i <= len(g.Players); i++ {
		n := (g.Current + i) % len(g.Players)
		if g.Players[n].Hand.Size() > 0 {
			g.Current = n
			return
		}
	}
}

// checkWin ends the game as soon as any hand is empty: first to shed every
// card wins.
func checkWin(g *GameState) bool {
	for i := range g.Players {
		if g.Players[i].Hand.Size() == 0 {
			g.Winner = g.Players[i].ID
			g.Phase = PhaseGameOver
			return true
		}
	}
	return false
}
