package engine

// Hand is a player's ordered card collection. Order is display order only;
// the rules never depend on it.
type Hand struct {
	cards []Card
}

func (h *Hand) AddCard(c Card) {
	h.cards = append(h.cards, c)
}

func (h *Hand) AddCards(cards []Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Size() int {
	return len(h.cards)
}

// Cards returns a copy; mutating it never touches the hand.
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// PlayCard removes and returns the card at index, shifting later cards down.
func (h *Hand) PlayCard(index int) (Card, error) {
	if index < 0 || index >= len(h.cards) {
		return Card{}, ErrIndexOutOfRange
	}
	c := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return c, nil
}

// PlayCards removes and returns the cards at the given indices. Indices
// refer to positions before any removal: the hand is partitioned into kept
// and removed in one pass, so both the returned cards and the retained hand
// keep their original relative order. On any invalid or duplicate index the
// hand is left untouched.
func (h *Hand) PlayCards(indices []int) ([]Card, error) {
	selected := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(h.cards) {
			return nil, ErrIndexOutOfRange
		}
		if selected[i] {
			return nil, ErrDuplicateIndex
		}
		selected[i] = true
	}

	playing := make([]Card, 0, len(indices))
	remaining := make([]Card, 0, len(h.cards)-len(indices))
	for i, c := range h.cards {
		if selected[i] {
			playing = append(playing, c)
		} else {
			remaining = append(remaining, c)
		}
	}
	h.cards = remaining
	return playing, nil
}
