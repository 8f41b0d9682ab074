package engine

import "math/rand"

// Deck owns the 52-card pool and the per-rank tracking counters. The card
// slice acts as a stack: dealing pops from the end.
//
// Played counts cards that left circulation without reaching a hand: the
// undealt remainder of an uneven deal plus cards discarded face-down when a
// pending play goes unchallenged. Claimed counts ranks as declared during
// play, whether or not the declaration was honest.
type Deck struct {
	cards []Card
	rng   *rand.Rand

	Played  map[Rank]int
	Claimed map[Rank]int
}

// NewDeck builds an ordered 52-card deck with zeroed tracking. The seed
// drives every later Shuffle, so a game is reproducible end to end.
func NewDeck(seed int64) *Deck {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rng:   rand.New(rand.NewSource(seed)),
	}
	for id := 0; id < DeckSize; id++ {
		d.cards = append(d.cards, Card{ID: id})
	}
	d.Played = make(map[Rank]int, NumRanks)
	d.Claimed = make(map[Rank]int, NumRanks)
	d.ResetTracking()
	return d
}

// Shuffle permutes the deck with Fisher–Yates.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// DealCard removes and returns the top card.
func (d *Deck) DealCard() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, nil
}

// DealHands deals the deck round-robin, one card per hand per round, for
// floor(remaining/len(hands)) rounds, so every hand ends up the same size.
// The remainder is never dealt: those cards stay in the deck and are
// recorded into Played by rank, out of circulation for the whole game.
func (d *Deck) DealHands(hands []*Hand) {
	if len(hands) == 0 {
		return
	}
	handSize := len(d.cards) / len(hands)
	for i := 0; i < handSize; i++ {
		for _, h := range hands {
			c, err := d.DealCard()
			if err != nil {
				return
			}
			h.AddCard(c)
		}
	}
	for _, c := range d.cards {
		d.Played[c.Rank()]++
	}
}

// Remaining reports how many cards were never dealt.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the undealt cards, top last; mutating it never
// touches the deck.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// ResetTracking zeroes both counters without touching card identity.
func (d *Deck) ResetTracking() {
	for r := Rank(0); r < NumRanks; r++ {
		d.Played[r] = 0
		d.Claimed[r] = 0
	}
}

// RecordClaim notes n cards declared as rank r.
func (d *Deck) RecordClaim(r Rank, n int) {
	d.Claimed[r] += n
}

// RecordPlayed notes cards that permanently left circulation.
func (d *Deck) RecordPlayed(cards []Card) {
	for _, c := range cards {
		d.Played[c.Rank()]++
	}
}
