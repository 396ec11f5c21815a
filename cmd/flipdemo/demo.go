package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/zoobzio/clockz"
	"go.uber.org/zap"

	flip "github.com/grindlemire/go-flip"
	"github.com/grindlemire/go-flip/internal/keyboard"
)

const (
	cardWidth  = 12
	cardHeight = 3
)

type card struct {
	ID    string
	Label string
}

var (
	cardStyle   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	cursorStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	pickedStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// demo owns the screen, the card tree and the zone that animates it. All
// methods run on the loop goroutine.
type demo struct {
	screen tcell.Screen
	cfg    demoConfig
	logger *zap.Logger

	loop   *flip.Loop
	tl     *flip.Timeline
	root   *flip.Element
	ref    *flip.Ref
	els    *flip.RefMap[string]
	engine *keyboard.Engine
	zone   *flip.Zone

	items  []any
	cursor int
}

func newDemo(screen tcell.Screen, cfg demoConfig, clock clockz.Clock, logger *zap.Logger) (*demo, error) {
	d := &demo{
		screen: screen,
		cfg:    cfg,
		logger: logger,
		tl:     flip.NewTimeline(flip.WithClock(clock), flip.WithTimelineLogger(logger)),
		ref:    flip.NewRef(),
		els:    flip.NewRefMap[string](),
		engine: keyboard.New(keyboard.WithLogger(logger)),
	}

	opts := []flip.Option{
		flip.WithTimeline(d.tl),
		flip.WithDirection(cfg.Direction),
		flip.WithGap(1),
		flip.WithPadding(1),
	}
	if cfg.Wrap {
		opts = append(opts, flip.WithWrap())
	}
	d.root = flip.New(opts...)
	d.ref.Set(d.root)

	for i := range cfg.Items {
		d.items = append(d.items, card{ID: uuid.NewString(), Label: fmt.Sprintf("card %d", i+1)})
	}
	d.render()

	loop, err := flip.NewLoop(
		flip.WithFrameRate(cfg.FPS),
		flip.WithLoopClock(clock),
		flip.WithLoopLogger(logger),
		flip.WithOnFrame(d.frame),
	)
	if err != nil {
		return nil, err
	}
	d.loop = loop

	zone, err := flip.Attach(d.ref, d.engine, d.config(), d.reorder, flip.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("attach zone: %w", err)
	}
	d.zone = zone
	return d, nil
}

func (d *demo) config() flip.Config {
	return flip.Config{Items: d.items, FlipDuration: d.cfg.Duration}
}

// run feeds terminal events into the loop until the user quits or ctx ends.
// The polling goroutine exits once the screen is finalized.
func (d *demo) run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	d.loop.Watch(flip.Watch[tcell.Event](events, d.handleEvent))
	defer d.zone.Detach()

	err := d.loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// reorder is the zone's consider and finalize handler: adopt the new order,
// re-render, then let the zone animate the committed layout.
func (d *demo) reorder(detail flip.Detail) {
	d.items = detail.Items
	d.zone.Update(d.config())
	d.render()
	d.zone.Committed()

	if s := d.engine.Active(); s != nil {
		if i, ok := s.Picked(); ok {
			d.cursor = i
		}
	}
}

// render reconciles the card elements with the item order and lays them
// out. An item keeps its element for as long as it exists.
func (d *demo) render() {
	keep := make(map[string]bool, len(d.items))
	children := make([]*flip.Element, len(d.items))
	for i, it := range d.items {
		c := it.(card)
		keep[c.ID] = true
		el := d.els.Get(c.ID)
		if el == nil {
			el = flip.New(flip.WithSize(cardWidth, cardHeight), flip.WithText(c.Label), flip.WithData(c))
			d.els.Put(c.ID, el)
		}
		children[i] = el
	}
	d.els.Retain(keep)
	d.root.SetChildren(children...)

	w, h := d.screen.Size()
	d.root.Layout(flip.NewRect(0, 0, w, h-1))
}

func (d *demo) frame() {
	d.tl.Step()
	d.draw()
}

func (d *demo) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !d.handleKey(ev) {
			d.loop.Stop()
		}
	case *tcell.EventResize:
		d.screen.Sync()
		d.render()
	}
}

// handleKey applies one key press and reports whether the demo should keep
// running.
func (d *demo) handleKey(ev *tcell.EventKey) bool {
	s := d.engine.Active()
	if s == nil {
		return ev.Key() != tcell.KeyCtrlC && ev.Key() != tcell.KeyEscape && !isRune(ev, 'q')
	}
	_, picked := s.Picked()

	switch {
	case ev.Key() == tcell.KeyCtrlC, isRune(ev, 'q'):
		return false
	case ev.Key() == tcell.KeyEscape:
		if !picked {
			return false
		}
		s.Cancel()
	case ev.Key() == tcell.KeyLeft, ev.Key() == tcell.KeyUp, isRune(ev, 'h'), isRune(ev, 'k'):
		d.step(s, -1)
	case ev.Key() == tcell.KeyRight, ev.Key() == tcell.KeyDown, isRune(ev, 'l'), isRune(ev, 'j'):
		d.step(s, 1)
	case ev.Key() == tcell.KeyEnter, isRune(ev, ' '):
		if picked {
			s.Drop()
			break
		}
		if err := s.Pick(d.cursor); err != nil {
			d.logger.Debug("pick failed", zap.Int("cursor", d.cursor), zap.Error(err))
		}
	}
	return true
}

func (d *demo) step(s *keyboard.Session, delta int) {
	if _, picked := s.Picked(); picked {
		s.Move(delta)
		return
	}
	d.cursor = min(max(d.cursor+delta, 0), len(d.items)-1)
}

func isRune(ev *tcell.EventKey, r rune) bool {
	return ev.Key() == tcell.KeyRune && ev.Rune() == r
}

func (d *demo) draw() {
	d.screen.Clear()

	picked := -1
	if s := d.engine.Active(); s != nil {
		if i, ok := s.Picked(); ok {
			picked = i
		}
	}

	for i, el := range d.root.Children() {
		style := cardStyle
		switch i {
		case picked:
			style = pickedStyle
		case d.cursor:
			style = cursorStyle
		}
		drawCard(d.screen, el.Bounds(), el.Text(), style)
	}

	_, h := d.screen.Size()
	status := "space pick/drop  arrows move  esc cancel  q quit"
	if picked >= 0 {
		status = fmt.Sprintf("moving %s", d.items[picked].(card).Label)
	}
	drawText(d.screen, 0, h-1, status, statusStyle)
	d.screen.Show()
}

func drawCard(screen tcell.Screen, r flip.Rect, label string, style tcell.Style) {
	if r.IsEmpty() {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		screen.SetContent(x, r.Y, '─', nil, style)
		screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		screen.SetContent(r.X, y, '│', nil, style)
		screen.SetContent(right, y, '│', nil, style)
	}
	screen.SetContent(r.X, r.Y, '┌', nil, style)
	screen.SetContent(right, r.Y, '┐', nil, style)
	screen.SetContent(r.X, bottom, '└', nil, style)
	screen.SetContent(right, bottom, '┘', nil, style)

	runes := []rune(label)
	if inner := r.Width - 2; len(runes) > inner {
		runes = runes[:max(inner, 0)]
	}
	drawText(screen, r.X+1, r.Y+r.Height/2, string(runes), style)
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
