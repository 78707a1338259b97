package ticker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWindow_ClipsToWidth(t *testing.T) {
	m := New([]string{"alpha beta gamma"}).SetWidth(5)
	require.Equal(t, "alpha", m.Window())
}

func TestWindow_WrapsAroundLoop(t *testing.T) {
	m := New([]string{"ab"}).SetWidth(6)
	// Loop is "ab   •   " joined; advancing past the end wraps to the start.
	for i := 0; i < len("ab"+"   •   ")-1; i++ {
		m, _ = m.Update(TickMsg{})
	}
	w := m.Window()
	require.Len(t, []rune(w), 6)
	require.True(t, strings.HasSuffix(w[:3], "ab") || strings.Contains(w, "ab"),
		"window should wrap back into the headline")
}

func TestUpdate_AdvancesOneCellPerTick(t *testing.T) {
	m := New([]string{"abcdef"}).SetWidth(3)
	require.Equal(t, "abc", m.Window())

	m, cmd := m.Update(TickMsg{})
	require.Equal(t, "bcd", m.Window())
	require.NotNil(t, cmd, "marquee must keep ticking")
}

func TestEmptyHeadlines(t *testing.T) {
	m := New(nil).SetWidth(10)
	require.Empty(t, m.Window())
	require.Nil(t, m.Init(), "nothing to scroll, no tick")
}

func TestWindow_WideRunesRespectCellWidth(t *testing.T) {
	m := New([]string{"日本語ニュース"}).SetWidth(4)
	w := m.Window()
	require.Equal(t, "日本", w, "two double-width runes fill a 4-cell window")
}
