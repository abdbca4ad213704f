package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"blackjack/internal/cards"
	"blackjack/internal/game"
)

func TestHandViewHidesSecondCard(t *testing.T) {
	test.NewTempApp(t)

	hv := NewHandView("Dealer's Hand:")
	hand := []cards.Card{cards.New(cards.King, cards.Spades), cards.New(cards.Seven, cards.Hearts)}

	hv.SetCards(hand, true, 10, false)
	assert.Equal(t, []string{"King\n♠ Spades", HiddenLabel}, hv.Labels())
	assert.Equal(t, "Dealer's Hand: (10)", hv.Heading())

	hv.SetCards(hand, false, 17, false)
	assert.Equal(t, []string{"King\n♠ Spades", "7\n♥ Hearts"}, hv.Labels())
	assert.Equal(t, "Dealer's Hand: (17)", hv.Heading())
}

func TestHandViewSoftTotal(t *testing.T) {
	test.NewTempApp(t)

	hv := NewHandView("Your Hand:")
	hv.SetCards([]cards.Card{cards.New(cards.Ace, cards.Clubs), cards.New(cards.Six, cards.Clubs)}, false, 17, true)
	assert.Equal(t, "Your Hand: (soft 17)", hv.Heading())

	hv.SetCards(nil, false, 0, false)
	assert.Equal(t, "Your Hand:", hv.Heading())
	assert.Empty(t, hv.Labels())
}

func TestMenuStartButton(t *testing.T) {
	test.NewTempApp(t)

	ms := NewMenuScreen()
	pressed := 0
	ms.SetStartHandler(func() { pressed++ })

	test.Tap(ms.StartButton)
	assert.Equal(t, 1, pressed)
	assert.Equal(t, StartLabel, ms.StartButton.Text)
}

func TestTableScreenUpdate(t *testing.T) {
	test.NewTempApp(t)

	ts := NewTableScreen()
	var got []string
	ts.SetHitHandler(func() { got = append(got, "hit") })
	ts.SetStandHandler(func() { got = append(got, "stand") })

	ts.Update(game.Snapshot{
		Screen:       game.ScreenTable,
		Phase:        game.PhasePlayerTurn,
		Player:       []cards.Card{cards.New(cards.Ten, cards.Hearts), cards.New(cards.Nine, cards.Clubs)},
		Dealer:       []cards.Card{cards.New(cards.Ten, cards.Spades), cards.New(cards.Six, cards.Spades)},
		HideHoleCard: true,
		PlayerValue:  19,
		DealerValue:  10,
		Wins:         4,
		DeckSize:     48,
	})

	assert.Equal(t, "Player Wins: 4", ts.Wins())
	assert.Equal(t, HiddenLabel, ts.DealerHand.Labels()[1])
	assert.False(t, ts.HitButton.Disabled())

	test.Tap(ts.HitButton)
	test.Tap(ts.StandButton)
	assert.Equal(t, []string{"hit", "stand"}, got)

	ts.Update(game.Snapshot{Screen: game.ScreenTable, Phase: game.PhaseDealerTurn, Message: game.MsgDealerTurn})
	assert.True(t, ts.HitButton.Disabled())
	assert.Equal(t, game.MsgDealerTurn, ts.Status())
}

func TestResultScreenButtons(t *testing.T) {
	test.NewTempApp(t)

	rs := NewResultScreen()
	var got []string
	rs.SetNextRoundHandler(func() { got = append(got, "next") })
	rs.SetQuitHandler(func() { got = append(got, "quit") })

	rs.Update(game.Snapshot{Screen: game.ScreenResult, Message: game.MsgTie, Wins: 1})
	assert.Equal(t, game.MsgTie, rs.Message())

	test.Tap(rs.NextButton)
	test.Tap(rs.QuitButton)
	assert.Equal(t, []string{"next", "quit"}, got)
	assert.Equal(t, NextRoundLabel, rs.NextButton.Text)
	assert.Equal(t, QuitLabel, rs.QuitButton.Text)
}
