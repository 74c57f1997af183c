package tui

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-haunted-house/internal/app"
	"go-haunted-house/internal/config"
	"go-haunted-house/internal/defs"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

// 61x45 клеток карты: одна клетка на единицу пола поместья.
func newViewer(t *testing.T) (*Viewer, tcell.SimulationScreen) {
	t.Helper()
	scr := tcell.NewSimulationScreen("")
	require.NoError(t, scr.Init())
	t.Cleanup(scr.Fini)
	scr.SetSize(61, 45+hudLines)
	return NewViewer(scr, app.NewGame(config.Default(), defs.HauntedManor())), scr
}

func runeAt(scr tcell.Screen, x, y int) rune {
	r, _, _, _ := scr.GetContent(x, y)
	return r
}

func line(scr tcell.Screen, y int) string {
	w, _ := scr.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(runeAt(scr, x, y))
	}
	return strings.TrimRight(b.String(), " ")
}

func press(v *Viewer, r rune) bool {
	return v.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func TestDrawPlacesEntitiesOnTheFloor(t *testing.T) {
	v, scr := newViewer(t)
	v.Draw()

	assert.Equal(t, 'G', runeAt(scr, 6, 6), "Mabel")
	assert.Equal(t, '#', runeAt(scr, 12, 30), "Hall Mirror")
	assert.Equal(t, '&', runeAt(scr, 22, 31), "Grand Piano")
	assert.Equal(t, '*', runeAt(scr, 13, 31), "pickup")
	assert.Equal(t, 'c', runeAt(scr, 20, 30), "Tommy")
	assert.Equal(t, 'b', runeAt(scr, 14, 26), "Luna")
	assert.Equal(t, 'X', runeAt(scr, 30, 0), "front door")
	assert.Equal(t, '.', runeAt(scr, 1, 1))

	assert.True(t, strings.HasPrefix(line(scr, 45), "Pool 50/100  Time 0/300  x1"), line(scr, 45))
	assert.Contains(t, line(scr, 46), "1-5 select")
}

func TestKeysDriveTheSelectedGhost(t *testing.T) {
	v, scr := newViewer(t)
	w := v.game.World

	assert.True(t, press(v, '1'))
	mabel := w.SortedGhostIDs()[0]
	require.Equal(t, mabel, w.Selected)

	press(v, 'b')
	mirror := w.Ghosts[mabel].BoundAnchor
	require.True(t, w.Ghosts[mabel].IsBound())
	assert.Equal(t, "Hall Mirror", w.Anchors[mirror].Name)

	v.Draw()
	r, _, style, _ := scr.GetContent(12, 30)
	assert.Equal(t, 'G', r)
	assert.Equal(t, selectedStyle, style)
	assert.True(t, strings.HasPrefix(line(scr, 46), "Mabel  plasm 40/100"), line(scr, 46))

	press(v, 'u')
	assert.False(t, w.Ghosts[mabel].IsBound())

	v.HandleKey(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	assert.Equal(t, w.SortedGhostIDs()[1], w.Selected)

	press(v, 'p')
	assert.True(t, v.game.IsPaused())
	press(v, '+')
	assert.Equal(t, 2.0, v.game.SpeedMultiplier)

	assert.False(t, v.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestRunStopsOnEscape(t *testing.T) {
	v, scr := newViewer(t)
	scr.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, v.Run(ctx, 10*time.Millisecond))
}

func TestEventPollingStopsAfterRun(t *testing.T) {
	v, scr := newViewer(t)
	scr.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, v.Run(ctx, 10*time.Millisecond))

	// никто больше не читает канал: горутина должна выйти, а не зависнуть
	for i := 0; i < 2*eventBuffer; i++ {
		scr.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
		time.Sleep(time.Millisecond)
	}
	stopped := make(chan struct{})
	go func() {
		v.polling.Wait()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("event polling goroutine still running")
	}
}
