package sim

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// openRows returns a walled 20x15 room with spawn at (1,1) and exit at (18,13).
func openRows() []string {
	rows := make([]string, Rows)
	for y := range rows {
		if y == 0 || y == Rows-1 {
			rows[y] = strings.Repeat("1", Cols)
			continue
		}
		rows[y] = "1" + strings.Repeat("0", Cols-2) + "1"
	}
	rows = setSymbol(rows, 1, 1, SymbolSpawn)
	return setSymbol(rows, 18, 13, SymbolExit)
}

func setSymbol(rows []string, x, y int, sym byte) []string {
	out := append([]string(nil), rows...)
	b := []byte(out[y])
	b[x] = sym
	out[y] = string(b)
	return out
}

func mustGrid(t *testing.T, rows []string) *Grid {
	t.Helper()
	g, err := ParseLayout(rows)
	require.NoError(t, err)
	return g
}

func testBank(n, pinned int) []Question {
	bank := make([]Question, n)
	for i := range bank {
		bank[i] = Question{
			Prompt:  fmt.Sprintf("question %d", i),
			Options: [OptionCount]string{"a", "b", "c"},
			Correct: i % OptionCount,
			Pinned:  i == pinned,
		}
	}
	return bank
}

// newTestWorld returns a world in Playing with no entities placed, so each
// test can arrange exactly the pieces it needs.
func newTestWorld(t *testing.T, seed int64) *World {
	t.Helper()
	w, err := NewWorld(mustGrid(t, openRows()), testBank(5, 0), DefaultParams(), rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	require.NoError(t, w.Reset())
	w.collectibles = nil
	w.triggers = nil
	w.pursuers = nil
	return w
}
