package cards

import "fmt"

type Suit int

const (
	Hearts Suit = iota
	Spades
	Clubs
	Diamonds
)

// Suits lists the suits in deck order.
var Suits = []Suit{Hearts, Spades, Clubs, Diamonds}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	default:
		return "Unknown"
	}
}

// Symbol returns the unicode pip for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	default:
		return "?"
	}
}

// Red reports whether the suit is printed in red.
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists the ranks in deck order.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		if r >= Two && r <= Ten {
			return fmt.Sprintf("%d", int(r))
		}
		return "Unknown"
	}
}

// Value is the nominal blackjack value: numerics by rank, faces 10, Ace 11.
func (r Rank) Value() int {
	switch {
	case r == Ace:
		return 11
	case r >= Jack:
		return 10
	default:
		return int(r)
	}
}

// Card is immutable once created.
type Card struct {
	Suit Suit
	Rank Rank
}

func New(rank Rank, suit Suit) Card {
	return Card{Suit: suit, Rank: rank}
}

func (c Card) Value() int {
	return c.Rank.Value()
}

func (c Card) IsAce() bool {
	return c.Rank == Ace
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
