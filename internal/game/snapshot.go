package game

import "blackjack/internal/cards"

type Screen int

const (
	ScreenMenu Screen = iota
	ScreenTable
	ScreenResult
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenTable:
		return "table"
	case ScreenResult:
		return "result"
	default:
		return "unknown"
	}
}

// Snapshot is the display data for one frame. It shares no memory with the
// state it was taken from.
type Snapshot struct {
	Screen       Screen
	Phase        Phase
	Player       []cards.Card
	Dealer       []cards.Card
	HideHoleCard bool
	PlayerValue  int
	PlayerSoft   bool
	// DealerValue only counts cards the player can see.
	DealerValue int
	Message     string
	Wins        int
	DeckSize    int
}

func TakeSnapshot(s State) Snapshot {
	snap := Snapshot{
		Screen: ScreenMenu,
		Wins:   s.Session.Wins,
	}
	if s.Round == nil {
		return snap
	}

	r := s.Round
	snap.Screen = ScreenTable
	if r.Over() {
		snap.Screen = ScreenResult
	}
	snap.Phase = r.Phase
	snap.Player = append([]cards.Card(nil), r.Player.Cards...)
	snap.Dealer = append([]cards.Card(nil), r.Dealer.Cards...)
	snap.HideHoleCard = r.PlayerTurn()
	snap.PlayerValue = r.Player.Value()
	snap.PlayerSoft = r.Player.Soft()
	snap.Message = r.Message
	snap.DeckSize = r.Deck.Len()

	visible := snap.Dealer
	if snap.HideHoleCard && len(visible) > 1 {
		visible = append(visible[:1:1], visible[2:]...)
	}
	snap.DealerValue = cards.Value(visible)

	return snap
}
