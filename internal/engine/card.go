package engine

import "strings"

// Rank is one of the 13 face values, independent of suit. The order is the
// declaration cycle order: A, 2..10, J, Q, K.
type Rank int

const (
	RankA Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
)

const NumRanks = 13

var rankNames = [NumRanks]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

func (r Rank) String() string {
	if r < 0 || int(r) >= NumRanks {
		return "?"
	}
	return rankNames[r]
}

// ParseRank reverses Rank.String.
func ParseRank(s string) (Rank, error) {
	for i, name := range rankNames {
		if name == s {
			return Rank(i), nil
		}
	}
	return RankA, ErrUnrecognizedCard
}

type Suit int

const (
	SuitHearts Suit = iota
	SuitDiamonds
	SuitClubs
	SuitSpades
)

const NumSuits = 4

var suitSymbols = [NumSuits]string{"♥", "♦", "♣", "♠"}

func (s Suit) String() string {
	if s < 0 || int(s) >= NumSuits {
		return "?"
	}
	return suitSymbols[s]
}

// Color is "red" for hearts and diamonds, "black" for clubs and spades.
func (s Suit) Color() string {
	if s < 2 {
		return "red"
	}
	return "black"
}

const DeckSize = NumRanks * NumSuits

// Card is an immutable value identified by an integer in [0, 52). Rank and
// suit are pure derivations of the id: rank = id mod 13, suit = id div 13.
// Two cards are equal exactly when their ids are equal.
type Card struct {
	ID int
}

func NewCard(id int) (Card, error) {
	if id < 0 || id >= DeckSize {
		return Card{}, ErrInvalidCardID
	}
	return Card{ID: id}, nil
}

// CardOf builds the card for a rank/suit pair. Inverse of Rank/Suit.
func CardOf(r Rank, s Suit) Card {
	return Card{ID: int(s)*NumRanks + int(r)}
}

func (c Card) Rank() Rank {
	return Rank(c.ID % NumRanks)
}

func (c Card) Suit() Suit {
	return Suit(c.ID / NumRanks)
}

func (c Card) Color() string {
	return c.Suit().Color()
}

// String returns the display form, rank then suit symbol, e.g. "Q♠".
func (c Card) String() string {
	return c.Rank().String() + c.Suit().String()
}

// ParseCard reverses the display derivation: the last rune is the suit
// symbol, everything before it the rank name.
func ParseCard(s string) (Card, error) {
	runes := []rune(s)
	if len(runes) < 2 {
		return Card{}, ErrUnrecognizedCard
	}
	symbol := string(runes[len(runes)-1])
	name := string(runes[:len(runes)-1])

	suit := -1
	for i, sym := range suitSymbols {
		if sym == symbol {
			suit = i
			break
		}
	}
	if suit < 0 {
		return Card{}, ErrUnrecognizedCard
	}
	rank, err := ParseRank(strings.TrimSpace(name))
	if err != nil {
		return Card{}, err
	}
	return CardOf(rank, Suit(suit)), nil
}
