package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"
	"go.uber.org/zap"

	flip "github.com/grindlemire/go-flip"
)

func newTestDemo(t *testing.T, items int) (*demo, tcell.SimulationScreen, *clockz.FakeClock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 10)
	t.Cleanup(screen.Fini)

	clock := clockz.NewFakeClock()
	cfg := demoConfig{Items: items, Duration: 100 * time.Millisecond, FPS: 60, Direction: flip.Row}
	d, err := newDemo(screen, cfg, clock, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(d.zone.Detach)
	return d, screen, clock
}

func press(d *demo, r rune) bool {
	return d.handleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func pressKey(d *demo, k tcell.Key) bool {
	return d.handleKey(tcell.NewEventKey(k, 0, tcell.ModNone))
}

func labels(d *demo) []string {
	out := make([]string, len(d.items))
	for i, it := range d.items {
		out[i] = it.(card).Label
	}
	return out
}

func TestDemo_Layout(t *testing.T) {
	d, _, _ := newTestDemo(t, 3)

	children := d.root.Children()
	require.Len(t, children, 3)
	for i, el := range children {
		assert.Equal(t, flip.NewRect(1+i*(cardWidth+1), 1, cardWidth, cardHeight), el.Bounds())
	}
	assert.True(t, d.zone.Bound())
}

func TestDemo_CursorClamps(t *testing.T) {
	d, _, _ := newTestDemo(t, 3)

	assert.True(t, pressKey(d, tcell.KeyLeft))
	assert.Equal(t, 0, d.cursor)
	press(d, 'l')
	press(d, 'l')
	press(d, 'l')
	assert.Equal(t, 2, d.cursor)
	assert.Equal(t, []string{"card 1", "card 2", "card 3"}, labels(d), "moving the cursor does not reorder")
}

func TestDemo_MoveAnimatesAndDrops(t *testing.T) {
	d, screen, clock := newTestDemo(t, 3)
	first := d.root.Children()[0]

	press(d, ' ')
	assert.True(t, pressKey(d, tcell.KeyRight))

	assert.Equal(t, []string{"card 2", "card 1", "card 3"}, labels(d))
	assert.Equal(t, 1, d.cursor, "cursor follows the picked card")
	assert.Equal(t, 2, d.zone.Flipper().Active())
	assert.Equal(t, 1, first.Bounds().X, "the moved card starts from its old slot")
	assert.Equal(t, 1+cardWidth+1, first.Rect().X)

	clock.Advance(100 * time.Millisecond)
	d.frame()
	assert.Equal(t, 1+cardWidth+1, first.Bounds().X)
	assert.Equal(t, 0, d.zone.Flipper().Active())

	r, _, _, _ := screen.GetContent(first.Bounds().X, 1)
	assert.Equal(t, '┌', r)
	r, _, _, _ = screen.GetContent(first.Bounds().X+1, 2)
	assert.Equal(t, 'c', r)

	press(d, ' ')
	_, picked := d.engine.Active().Picked()
	assert.False(t, picked)
	assert.Equal(t, []string{"card 2", "card 1", "card 3"}, labels(d))
}

func TestDemo_EscapeCancelsThenQuits(t *testing.T) {
	d, _, _ := newTestDemo(t, 3)

	press(d, 'l')
	press(d, ' ')
	press(d, 'l')
	require.Equal(t, []string{"card 1", "card 3", "card 2"}, labels(d))

	assert.True(t, pressKey(d, tcell.KeyEscape), "escape with a picked card cancels")
	assert.Equal(t, []string{"card 1", "card 2", "card 3"}, labels(d))
	assert.Equal(t, 1, d.cursor)

	assert.False(t, pressKey(d, tcell.KeyEscape))
	assert.False(t, press(d, 'q'))
	assert.False(t, pressKey(d, tcell.KeyCtrlC))
}

func TestDemo_ElementsFollowItems(t *testing.T) {
	d, _, _ := newTestDemo(t, 4)
	before := d.els.Get(d.items[3].(card).ID)
	require.NotNil(t, before)

	d.items = d.items[:2]
	d.render()
	assert.Equal(t, 2, d.els.Len())
	assert.Len(t, d.root.Children(), 2)
}

func TestDemo_RunQuitsOnKey(t *testing.T) {
	d, screen, _ := newTestDemo(t, 2)

	done := make(chan error, 1)
	go func() { done <- d.run(context.Background()) }()
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("demo did not quit")
	}
	assert.Equal(t, flip.Unattached, d.zone.State())
}
