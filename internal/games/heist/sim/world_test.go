package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorldStartsInMenu(t *testing.T) {
	w, err := NewWorld(mustGrid(t, openRows()), testBank(3, 0), DefaultParams(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, ModeMenu, w.Mode())
	assert.Equal(t, C(1, 1), w.Player().Pos)
}

func TestNewWorldRejectsBadInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := NewWorld(mustGrid(t, openRows()), nil, DefaultParams(), rng)
	assert.ErrorIs(t, err, ErrInvalidBank)

	params := DefaultParams()
	params.Spawn.Pursuers = 9
	_, err = NewWorld(mustGrid(t, corridorRows()), testBank(3, 0), params, rng)
	assert.ErrorIs(t, err, ErrInsufficientCells)
}

func TestMenuTransitions(t *testing.T) {
	w, err := NewWorld(mustGrid(t, openRows()), testBank(3, 0), DefaultParams(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Equal(t, ModeHelp, w.Step(0.016, Intents{Help: true}).Mode)
	assert.Equal(t, ModeHelp, w.Step(0.016, Intents{Right: true}).Mode)
	assert.Equal(t, ModeMenu, w.Step(0.016, Intents{Cancel: true}).Mode)

	res := w.Step(0.016, Intents{Confirm: true})
	require.NoError(t, res.Err)
	assert.Equal(t, ModePlaying, res.Mode)

	snap := w.Snapshot()
	assert.Len(t, snap.Collectibles, 5)
	assert.Len(t, snap.Triggers, 3)
	assert.Len(t, snap.Pursuers, 6)
	assert.Equal(t, 100.0, snap.Player.Stamina)
	assert.False(t, snap.ExitOpen)
}

func TestExitRequiresAllCollectibles(t *testing.T) {
	w := newTestWorld(t, 1)
	w.player.Pos = C(17, 13)
	w.collectibles = []Cell{C(16, 13)}

	res := w.Step(0.12, Intents{Right: true})
	assert.Equal(t, C(18, 13), w.player.Pos)
	assert.Equal(t, ModePlaying, res.Mode, "exit is locked while a collectible remains")

	w.Step(0.12, Intents{Left: true})
	res = w.Step(0.12, Intents{Left: true})
	assert.Empty(t, w.collectibles)
	assert.True(t, w.ExitOpen())
	assert.Equal(t, ModePlaying, res.Mode)

	w.Step(0.12, Intents{Right: true})
	res = w.Step(0.12, Intents{Right: true})
	assert.Equal(t, ModeVictory, res.Mode)
	assert.Contains(t, res.Events, Event(EscapedEvent{Cell: C(18, 13)}))

	// terminal until confirm
	assert.Equal(t, ModeVictory, w.Step(1, Intents{Left: true}).Mode)
	assert.Equal(t, ModeMenu, w.Step(0, Intents{Confirm: true}).Mode)
}

func TestCatchOnExitTickOverridesVictory(t *testing.T) {
	w := newTestWorld(t, 1)
	w.player.Pos = C(17, 13)
	w.pursuers = []Pursuer{{Pos: C(18, 12), Speed: 0.1}}

	res := w.Step(0.12, Intents{Right: true})
	assert.Equal(t, C(18, 13), w.player.Pos)
	assert.Equal(t, C(18, 13), w.pursuers[0].Pos)
	assert.Equal(t, ModeGameOver, res.Mode)
	assert.Equal(t, []Event{
		EscapedEvent{Cell: C(18, 13)},
		ModeChangedEvent{From: ModePlaying, To: ModeVictory},
		CaughtEvent{Pursuer: 0, Cell: C(18, 13)},
		ModeChangedEvent{From: ModeVictory, To: ModeGameOver},
	}, res.Events)
}

func TestWrongAnswerFreezesForDuration(t *testing.T) {
	w := newTestWorld(t, 1)
	w.player.Pos = C(5, 5)
	w.triggers = []Cell{C(5, 6)}

	res := w.Step(0.12, Intents{Down: true})
	require.Equal(t, ModeQuiz, res.Mode)
	snap := w.Snapshot()
	require.NotNil(t, snap.Question)
	assert.Empty(t, snap.Triggers)

	// no movement while the quiz is open
	w.Step(1, Intents{Up: true})
	assert.Equal(t, C(5, 6), w.player.Pos)

	wrong := (snap.Question.Correct + 1) % OptionCount
	res = w.Step(0.016, Intents{Choice: wrong + 1})
	require.Equal(t, ModeFrozen, res.Mode)
	assert.Equal(t, 3.0, w.player.Frozen)
	assert.Nil(t, w.Snapshot().Question)

	const dt = 1.0 / 60
	for i := 1; i <= 180; i++ {
		res = w.Step(dt, Intents{})
		if i < 180 {
			require.Equal(t, ModeFrozen, res.Mode, "tick %d", i)
		}
	}
	assert.Equal(t, ModePlaying, res.Mode, "thaws on tick 180")
	assert.Zero(t, w.player.Frozen)
}

func TestCorrectAnswerGrantsInvisibility(t *testing.T) {
	w := newTestWorld(t, 2)
	w.player.Pos = C(5, 5)
	w.player.Stamina = 10
	w.triggers = []Cell{C(6, 5)}

	w.Step(0.12, Intents{Right: true})
	q := w.Snapshot().Question
	require.NotNil(t, q)

	// out-of-range choices are ignored
	assert.False(t, w.Answer(OptionCount))
	assert.Equal(t, ModeQuiz, w.Mode())

	res := w.Step(0, Intents{Choice: q.Correct + 1})
	assert.Equal(t, ModePlaying, res.Mode)
	assert.Equal(t, 5.0, w.player.Invisible)
	assert.Equal(t, 100.0, w.player.Stamina)
	assert.Equal(t, 1, w.Stats().QuizCorrect)

	// Answer outside a quiz is a no-op.
	assert.False(t, w.Answer(0))
}

func TestCollisionEndsRun(t *testing.T) {
	w := newTestWorld(t, 1)
	w.player.Pos = C(5, 5)
	w.pursuers = []Pursuer{{Pos: C(5, 5), Speed: 10}}

	res := w.Step(0.01, Intents{})
	assert.Equal(t, ModeGameOver, res.Mode)
	assert.Contains(t, res.Events, Event(CaughtEvent{Pursuer: 0, Cell: C(5, 5)}))
}

func TestCollisionIgnoredWhileInvisible(t *testing.T) {
	w := newTestWorld(t, 1)
	w.player.Pos = C(5, 5)
	w.player.Invisible = 2
	w.pursuers = []Pursuer{{Pos: C(5, 5), Speed: 10}}

	res := w.Step(0.01, Intents{})
	assert.Equal(t, ModePlaying, res.Mode)
}

func TestPursuerCatchesPlayerByMoving(t *testing.T) {
	w := newTestWorld(t, 1)
	w.player.Pos = C(5, 5)
	w.pursuers = []Pursuer{{Pos: C(5, 7), Speed: 0.3}}

	w.Step(0.3, Intents{})
	assert.Equal(t, C(5, 6), w.pursuers[0].Pos)
	res := w.Step(0.3, Intents{})
	assert.Equal(t, ModeGameOver, res.Mode)
}

func TestCollisionDuringFrozen(t *testing.T) {
	w := newTestWorld(t, 1)
	w.player.Pos = C(5, 5)
	w.player.Frozen = 3
	w.mode = ModeFrozen
	w.pursuers = []Pursuer{{Pos: C(5, 6), Speed: 0.4}}

	res := w.Step(0.2, Intents{})
	assert.Equal(t, ModeGameOver, res.Mode)
}

func TestResetClearsRun(t *testing.T) {
	w := newTestWorld(t, 4)
	w.player.Pos = C(9, 9)
	w.player.Invisible = 3
	w.player.Frozen = 1
	w.player.Stamina = 5
	w.stats.Collected = 4

	require.NoError(t, w.Reset())
	p := w.Player()
	assert.Equal(t, C(1, 1), p.Pos)
	assert.Zero(t, p.Invisible)
	assert.Zero(t, p.Frozen)
	assert.Equal(t, 100.0, p.Stamina)
	assert.Equal(t, RunStats{}, w.Stats())
	assert.Len(t, w.collectibles, 5)
	assert.Equal(t, ModePlaying, w.Mode())
	assert.Equal(t, w.Deck().Size(), w.Deck().Remaining())
}

func TestSetBankAppliesOnReset(t *testing.T) {
	w := newTestWorld(t, 1)
	assert.Error(t, w.SetBank(nil))

	require.NoError(t, w.SetBank(testBank(7, 6)))
	assert.Equal(t, 5, w.Deck().Size(), "staged bank waits for the next reset")

	w.mode = ModeMenu
	res := w.Step(0, Intents{Confirm: true})
	require.NoError(t, res.Err)
	assert.Equal(t, 7, w.Deck().Size())
	assert.Equal(t, 6, w.Deck().PinnedIndex())
	assert.Contains(t, res.Events, Event(BankSwappedEvent{Size: 7}))
}

// driveRandom plays a long session with random inputs and reports every
// snapshot to check.
func driveRandom(t *testing.T, seed int64, ticks int, check func(prev, cur Snapshot, res StepResult)) {
	t.Helper()
	w, err := NewWorld(mustGrid(t, openRows()), testBank(9, 0), DefaultParams(), rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	input := rand.New(rand.NewSource(seed + 1000))

	prev := w.Snapshot()
	for i := 0; i < ticks; i++ {
		in := Intents{
			Up:     input.Intn(4) == 0,
			Down:   input.Intn(4) == 0,
			Left:   input.Intn(4) == 0,
			Right:  input.Intn(4) == 0,
			Sprint: input.Intn(3) == 0,
		}
		switch w.Mode() {
		case ModeMenu, ModeGameOver, ModeVictory:
			in.Confirm = input.Intn(20) == 0
		case ModeQuiz:
			in.Choice = input.Intn(OptionCount + 1)
		}
		dt := 0.005 + input.Float64()*0.03

		res := w.Step(dt, in)
		cur := w.Snapshot()
		check(prev, cur, res)
		prev = cur
	}
}

func TestStaminaStaysInBounds(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		driveRandom(t, seed, 3000, func(_, cur Snapshot, _ StepResult) {
			require.GreaterOrEqual(t, cur.Player.Stamina, 0.0)
			require.LessOrEqual(t, cur.Player.Stamina, 100.0)
		})
	}
}

func TestStatusTimersNonIncreasing(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		driveRandom(t, seed, 3000, func(prev, cur Snapshot, res StepResult) {
			for _, e := range res.Events {
				if _, ok := e.(AnsweredEvent); ok {
					return
				}
			}
			require.LessOrEqual(t, cur.Player.Invisible, prev.Player.Invisible)
			require.LessOrEqual(t, cur.Player.Frozen, prev.Player.Frozen)
			require.GreaterOrEqual(t, cur.Player.Invisible, 0.0)
			require.GreaterOrEqual(t, cur.Player.Frozen, 0.0)
		})
	}
}

func TestDeterministicReplay(t *testing.T) {
	var a, b []Snapshot
	driveRandom(t, 11, 2000, func(_, cur Snapshot, _ StepResult) { a = append(a, cur) })
	driveRandom(t, 11, 2000, func(_, cur Snapshot, _ StepResult) { b = append(b, cur) })
	require.Equal(t, a, b)
}
