package engine

import "testing"

func TestShuffleDeterministic(t *testing.T) {
	a := NewDeck(7)
	b := NewDeck(7)
	a.Shuffle()
	b.Shuffle()
	for i, c := range a.Cards() {
		if b.Cards()[i] != c {
			t.Fatalf("same seed diverged at position %d", i)
		}
	}

	c := NewDeck(8)
	c.Shuffle()
	same := true
	for i, card := range a.Cards() {
		if c.Cards()[i] != card {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("different seeds produced identical order")
	}
}

func TestDealCard(t *testing.T) {
	d := NewDeck(1)
	top := d.Cards()[len(d.Cards())-1]
	c, err := d.DealCard()
	if err != nil {
		t.Fatalf("deal from full deck: %v", err)
	}
	if c != top {
		t.Fatalf("dealt %v, want top card %v", c, top)
	}
	for d.Remaining() > 0 {
		if _, err := d.DealCard(); err != nil {
			t.Fatalf("deal failed with %d remaining: %v", d.Remaining(), err)
		}
	}
	if _, err := d.DealCard(); err != ErrEmptyDeck {
		t.Fatalf("expected ErrEmptyDeck, got %v", err)
	}
}

func TestDealHandsEven(t *testing.T) {
	d := NewDeck(3)
	d.Shuffle()
	hands := make([]*Hand, 4)
	for i := range hands {
		hands[i] = &Hand{}
	}
	d.DealHands(hands)

	for i, h := range hands {
		if h.Size() != 13 {
			t.Fatalf("hand %d has %d cards, want 13", i, h.Size())
		}
	}
	if d.Remaining() != 0 {
		t.Fatalf("expected empty deck, %d remaining", d.Remaining())
	}
	for r := Rank(0); r < NumRanks; r++ {
		if d.Played[r] != 0 {
			t.Fatalf("even deal recorded rank %v as played", r)
		}
	}
}

func TestDealHandsRemainder(t *testing.T) {
	d := NewDeck(3)
	d.Shuffle()
	hands := make([]*Hand, 5)
	for i := range hands {
		hands[i] = &Hand{}
	}
	d.DealHands(hands)

	for i, h := range hands {
		if h.Size() != 10 {
			t.Fatalf("hand %d has %d cards, want 10", i, h.Size())
		}
	}
	if d.Remaining() != 2 {
		t.Fatalf("expected 2 undealt cards, got %d", d.Remaining())
	}
	tracked := 0
	for r := Rank(0); r < NumRanks; r++ {
		tracked += d.Played[r]
	}
	if tracked != 2 {
		t.Fatalf("remainder tracking holds %d cards, want 2", tracked)
	}
	for _, c := range d.Cards() {
		if d.Played[c.Rank()] == 0 {
			t.Fatalf("undealt card %v not tracked", c)
		}
	}
}

func TestDeckCardsReturnsCopy(t *testing.T) {
	d := NewDeck(1)
	cards := d.Cards()
	cards[0] = Card{ID: 51}
	if d.Cards()[0].ID != 0 {
		t.Fatalf("mutating the returned slice changed the deck")
	}
}

func TestTracking(t *testing.T) {
	d := NewDeck(1)
	d.RecordClaim(RankQ, 3)
	d.RecordPlayed([]Card{CardOf(RankQ, SuitSpades), CardOf(Rank2, SuitHearts)})
	if d.Claimed[RankQ] != 3 {
		t.Fatalf("claimed count %d, want 3", d.Claimed[RankQ])
	}
	if d.Played[RankQ] != 1 || d.Played[Rank2] != 1 {
		t.Fatalf("played counts wrong: %v", d.Played)
	}
	d.ResetTracking()
	if d.Claimed[RankQ] != 0 || d.Played[RankQ] != 0 {
		t.Fatalf("tracking not reset")
	}
}
