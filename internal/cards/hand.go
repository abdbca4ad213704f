package cards

// BlackjackLimit is the highest total that does not bust.
const BlackjackLimit = 21

// Hand holds the cards dealt to one side of the table.
type Hand struct {
	Cards []Card
}

func NewHand(cards ...Card) Hand {
	return Hand{Cards: append([]Card(nil), cards...)}
}

func (h *Hand) Add(c Card) {
	h.Cards = append(h.Cards, c)
}

func (h Hand) Len() int {
	return len(h.Cards)
}

func (h Hand) Clone() Hand {
	return NewHand(h.Cards...)
}

func (h Hand) Value() int {
	return Value(h.Cards)
}

func (h Hand) Busted() bool {
	return h.Value() > BlackjackLimit
}

// Soft reports whether an Ace in the hand still counts as 11.
func (h Hand) Soft() bool {
	total, soft := evaluate(h.Cards)
	return total <= BlackjackLimit && soft > 0
}

// Value returns the best blackjack total for cards. Aces count as 11 and are
// reduced to 1 one at a time, only while the total exceeds 21.
func Value(cards []Card) int {
	total, _ := evaluate(cards)
	return total
}

func evaluate(cards []Card) (total, softAces int) {
	for _, c := range cards {
		total += c.Value()
		if c.IsAce() {
			softAces++
		}
	}

	for total > BlackjackLimit && softAces > 0 {
		total -= 10
		softAces--
	}

	return total, softAces
}
