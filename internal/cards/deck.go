package cards

import (
	"errors"
	"math/rand"
)

// Size is the number of cards in a full deck.
const Size = 52

var ErrEmptyDeck = errors.New("draw from empty deck")

// Deck is an ordered pile of cards. The top of the deck is the last element.
type Deck struct {
	cards []Card
}

// Build returns an unshuffled deck in suit-major, rank-minor order.
func Build() *Deck {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return &Deck{cards: cards}
}

// NewDeck returns a deck holding cards in the given order; the last card is
// drawn first.
func NewDeck(cards ...Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

// Shuffle permutes the deck in place using Fisher-Yates.
func (d *Deck) Shuffle(r *rand.Rand) {
	r.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, bottom first.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

// Clone returns an independent copy of the deck.
func (d *Deck) Clone() *Deck {
	return NewDeck(d.cards...)
}
