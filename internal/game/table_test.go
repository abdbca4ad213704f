package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blackjack/internal/cards"
)

// stacked returns a full 52-card deck source where draws come off the top in
// the given order.
func stacked(t *testing.T, draws ...cards.Card) DeckSource {
	t.Helper()
	return func() *cards.Deck {
		used := make(map[cards.Card]bool, len(draws))
		for _, c := range draws {
			require.False(t, used[c], "card %s stacked twice", c)
			used[c] = true
		}

		order := make([]cards.Card, 0, cards.Size)
		for _, c := range cards.Build().Cards() {
			if !used[c] {
				order = append(order, c)
			}
		}
		for i := len(draws) - 1; i >= 0; i-- {
			order = append(order, draws[i])
		}
		return cards.NewDeck(order...)
	}
}

func c(r cards.Rank, s cards.Suit) cards.Card { return cards.New(r, s) }

func started(t *testing.T, table *Table) State {
	t.Helper()
	s, err := table.Step(State{}, EventStart)
	require.NoError(t, err)
	require.NotNil(t, s.Round)
	return s
}

func stepAll(t *testing.T, table *Table, s State, events ...Event) State {
	t.Helper()
	var err error
	for _, ev := range events {
		s, err = table.Step(s, ev)
		require.NoError(t, err)
		require.Equal(t, cards.Size, s.Round.CardsInPlay())
	}
	return s
}

// runDealer ticks until the round is over, bounded by the deck size.
func runDealer(t *testing.T, table *Table, s State) State {
	t.Helper()
	for i := 0; i < cards.Size && !s.Round.Over(); i++ {
		s = stepAll(t, table, s, EventTick)
	}
	require.True(t, s.Round.Over())
	return s
}

func TestMenuIgnoresEverythingButStart(t *testing.T) {
	table := NewTable(WithRand(rand.New(rand.NewSource(1))))

	for _, ev := range []Event{EventTick, EventHit, EventStand, EventNextRound, EventQuit} {
		s, err := table.Step(State{}, ev)
		require.NoError(t, err)
		assert.Nil(t, s.Round, ev.String())
		assert.False(t, s.Session.Started, ev.String())
	}

	s := started(t, table)
	assert.True(t, s.Session.Started)
	assert.Equal(t, PhasePlayerTurn, s.Round.Phase)
}

func TestDealAlternates(t *testing.T) {
	table := NewTable(WithDeckSource(stacked(t,
		c(cards.Two, cards.Hearts), c(cards.Three, cards.Hearts),
		c(cards.Four, cards.Hearts), c(cards.Five, cards.Hearts),
	)))

	s := started(t, table)
	assert.Equal(t, []cards.Card{c(cards.Two, cards.Hearts), c(cards.Four, cards.Hearts)}, s.Round.Player.Cards)
	assert.Equal(t, []cards.Card{c(cards.Three, cards.Hearts), c(cards.Five, cards.Hearts)}, s.Round.Dealer.Cards)
	assert.Equal(t, cards.Size-4, s.Round.Deck.Len())
	assert.Empty(t, s.Round.Message)
}

func TestPlayerBustEndsRound(t *testing.T) {
	table := NewTable(WithDeckSource(stacked(t,
		c(cards.Ten, cards.Hearts), c(cards.King, cards.Spades),
		c(cards.Eight, cards.Hearts), c(cards.Seven, cards.Spades),
		c(cards.Five, cards.Hearts),
	)))

	s := started(t, table)
	s.Session.Wins = 3
	s = stepAll(t, table, s, EventHit)

	assert.Equal(t, 23, s.Round.Player.Value())
	assert.Equal(t, PhaseOver, s.Round.Phase)
	assert.Equal(t, OutcomePlayerBust, s.Round.Outcome)
	assert.Equal(t, MsgPlayerBust, s.Round.Message)
	assert.Equal(t, 3, s.Session.Wins)
	assert.Len(t, s.Round.Dealer.Cards, 2, "dealer must not play after a bust")
}

func TestDealerWinsAfterDrawing(t *testing.T) {
	table := NewTable(WithDeckSource(stacked(t,
		c(cards.Ten, cards.Hearts), c(cards.Ten, cards.Spades),
		c(cards.Nine, cards.Hearts), c(cards.Six, cards.Spades),
		c(cards.Five, cards.Clubs),
	)))

	s := started(t, table)
	s = stepAll(t, table, s, EventStand)
	assert.Equal(t, PhaseDealerTurn, s.Round.Phase)
	assert.Equal(t, MsgDealerTurn, s.Round.Message)

	s = stepAll(t, table, s, EventTick)
	assert.Len(t, s.Round.Dealer.Cards, 3, "one draw per step")
	assert.Equal(t, PhaseDealerTurn, s.Round.Phase)

	s = runDealer(t, table, s)
	assert.Equal(t, 21, s.Round.Dealer.Value())
	assert.Equal(t, MsgDealerWins, s.Round.Message)
	assert.Equal(t, 0, s.Session.Wins)
}

func TestOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		draws   []cards.Card
		outcome Outcome
		message string
		wins    int
	}{
		{
			name: "dealer busts",
			draws: []cards.Card{
				c(cards.Ten, cards.Hearts), c(cards.Ten, cards.Spades),
				c(cards.Seven, cards.Hearts), c(cards.Six, cards.Spades),
				c(cards.King, cards.Clubs),
			},
			outcome: OutcomePlayerWins,
			message: MsgPlayerWins,
			wins:    1,
		},
		{
			name: "player higher",
			draws: []cards.Card{
				c(cards.Ten, cards.Hearts), c(cards.Ten, cards.Spades),
				c(cards.Nine, cards.Hearts), c(cards.Seven, cards.Spades),
			},
			outcome: OutcomePlayerWins,
			message: MsgPlayerWins,
			wins:    1,
		},
		{
			name: "dealer higher",
			draws: []cards.Card{
				c(cards.Ten, cards.Hearts), c(cards.Ten, cards.Spades),
				c(cards.Seven, cards.Hearts), c(cards.Nine, cards.Spades),
			},
			outcome: OutcomeDealerWins,
			message: MsgDealerWins,
		},
		{
			name: "push",
			draws: []cards.Card{
				c(cards.Ten, cards.Hearts), c(cards.Ten, cards.Spades),
				c(cards.Eight, cards.Hearts), c(cards.Eight, cards.Spades),
			},
			outcome: OutcomeTie,
			message: MsgTie,
		},
		{
			name: "soft seventeen stands",
			draws: []cards.Card{
				c(cards.Ten, cards.Hearts), c(cards.Ace, cards.Spades),
				c(cards.Six, cards.Hearts), c(cards.Six, cards.Spades),
			},
			outcome: OutcomeDealerWins,
			message: MsgDealerWins,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable(WithDeckSource(stacked(t, tt.draws...)))
			s := started(t, table)
			s = stepAll(t, table, s, EventStand)
			s = runDealer(t, table, s)

			assert.Equal(t, tt.outcome, s.Round.Outcome)
			assert.Equal(t, tt.message, s.Round.Message)
			assert.Equal(t, tt.wins, s.Session.Wins)
		})
	}
}

func TestDealerStopRule(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		table := NewTable(WithRand(rand.New(rand.NewSource(seed))))
		s := started(t, table)
		s = stepAll(t, table, s, EventStand)

		for !s.Round.Over() {
			before := s.Round.Dealer.Value()
			n := s.Round.Dealer.Len()
			s = stepAll(t, table, s, EventTick)
			if before < DealerStandsAt {
				require.Equal(t, n+1, s.Round.Dealer.Len(), "seed %d: dealer must draw below 17", seed)
			} else {
				require.Equal(t, n, s.Round.Dealer.Len(), "seed %d: dealer must stand at 17+", seed)
				require.True(t, s.Round.Over())
			}
		}
		assert.GreaterOrEqual(t, s.Round.Dealer.Value(), DealerStandsAt)
	}
}

func TestInputIgnoredOutsideItsPhase(t *testing.T) {
	table := NewTable(WithDeckSource(stacked(t,
		c(cards.Ten, cards.Hearts), c(cards.Ten, cards.Spades),
		c(cards.Nine, cards.Hearts), c(cards.Seven, cards.Spades),
	)))
	s := started(t, table)

	for _, ev := range []Event{EventTick, EventStart, EventNextRound, EventQuit} {
		next := stepAll(t, table, s, ev)
		assert.Equal(t, s.Round.Player.Cards, next.Round.Player.Cards, ev.String())
		assert.Equal(t, PhasePlayerTurn, next.Round.Phase, ev.String())
	}

	s = stepAll(t, table, s, EventStand)
	s = runDealer(t, table, s)
	for _, ev := range []Event{EventTick, EventStart, EventHit, EventStand} {
		next := stepAll(t, table, s, ev)
		assert.Equal(t, s, next, ev.String())
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	table := NewTable(WithRand(rand.New(rand.NewSource(5))))
	s := started(t, table)
	deckLen := s.Round.Deck.Len()
	hand := append([]cards.Card(nil), s.Round.Player.Cards...)

	_, err := table.Step(s, EventHit)
	require.NoError(t, err)

	assert.Equal(t, deckLen, s.Round.Deck.Len())
	assert.Equal(t, hand, s.Round.Player.Cards)
}

func TestNextRoundKeepsWins(t *testing.T) {
	table := NewTable(WithDeckSource(stacked(t,
		c(cards.Ten, cards.Hearts), c(cards.Ten, cards.Spades),
		c(cards.Nine, cards.Hearts), c(cards.Seven, cards.Spades),
	)))
	s := started(t, table)
	s = stepAll(t, table, s, EventStand)
	s = runDealer(t, table, s)
	require.Equal(t, 1, s.Session.Wins)

	s = stepAll(t, table, s, EventNextRound)
	assert.Equal(t, 1, s.Session.Wins)
	assert.Equal(t, PhasePlayerTurn, s.Round.Phase)
	assert.Equal(t, 2, s.Round.Player.Len())
	assert.Equal(t, cards.Size-4, s.Round.Deck.Len())
}

func TestQuitResetsSession(t *testing.T) {
	table := NewTable(WithDeckSource(stacked(t,
		c(cards.Ten, cards.Hearts), c(cards.Ten, cards.Spades),
		c(cards.Eight, cards.Hearts), c(cards.Seven, cards.Spades),
		c(cards.Five, cards.Hearts),
	)))
	s := started(t, table)
	s.Session.Wins = 7
	s = stepAll(t, table, s, EventHit)
	require.True(t, s.Round.Over())

	s, err := table.Step(s, EventQuit)
	require.NoError(t, err)
	assert.Nil(t, s.Round)
	assert.Equal(t, Session{}, s.Session)
}

func TestEmptyDeckIsFatal(t *testing.T) {
	short := func() *cards.Deck {
		return cards.NewDeck(c(cards.Two, cards.Hearts), c(cards.Three, cards.Hearts), c(cards.Four, cards.Hearts))
	}
	table := NewTable(WithDeckSource(short))

	s, err := table.Step(State{}, EventStart)
	assert.ErrorIs(t, err, cards.ErrEmptyDeck)
	assert.Nil(t, s.Round)
	assert.False(t, s.Session.Started)
}
