// Package main is an interactive demo of the search-highlight engine.
//
// It opens a file in a minimal tcell viewer with a search prompt at the
// bottom. Every keystroke updates the process-wide search state and drives
// tags through the real prompt/background protocol: a newer request
// cancels the in-flight background scan, and stale results are discarded
// by generation.
//
// Keys: type to search, Enter to run the search, Esc to suppress
// highlighting once (:noh), Ctrl-T to toggle the hlsearch setting,
// Ctrl-V to toggle simulated view visibility, Up/Down to scroll,
// Ctrl-C to quit.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/hlsearch/internal/config"
	"github.com/dshills/hlsearch/internal/highlight"
	"github.com/dshills/hlsearch/internal/search"
	"github.com/dshills/hlsearch/internal/text"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-config file] <file>\n", os.Args[0])
		return 2
	}

	content, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	settings := config.NewStore()
	if configPath != "" {
		if err := settings.LoadFile(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		watcher, err := config.NewWatcher(settings, configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer watcher.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	a := newApp(screen, string(content), settings)
	defer a.shutdown()
	a.loop()
	return 0
}

// tagResult carries a finished background computation back to the event
// loop. Results from superseded requests are dropped by generation.
type tagResult struct {
	generation uint64
	tags       []highlight.Tag
	err        error
}

// demoView implements highlight.View with keyboard-toggled visibility.
type demoView struct {
	visible  bool
	listener func(visible bool)
}

type demoViewSub struct {
	view *demoView
}

func (s *demoViewSub) Unsubscribe() {
	s.view.listener = nil
}

func (v *demoView) Visible() bool {
	return v.visible
}

func (v *demoView) OnVisibilityChanged(fn func(visible bool)) highlight.Unsubscriber {
	v.listener = fn
	return &demoViewSub{view: v}
}

func (v *demoView) setVisible(visible bool) {
	v.visible = visible
	if v.listener != nil {
		v.listener(visible)
	}
}

type app struct {
	screen   tcell.Screen
	snap     *text.StringSnapshot
	lines    []string
	offsets  []int // byte offset of each line start
	top      int   // first visible line
	input    string

	settings *config.Store
	state    *search.State
	view     *demoView
	source   *highlight.Source

	tags       []highlight.Tag
	tagsCh     chan tagResult
	invalidate chan struct{}

	generation uint64
	cancel     context.CancelFunc

	status string
}

func newApp(screen tcell.Screen, content string, settings *config.Store) *app {
	a := &app{
		screen:     screen,
		snap:       text.NewStringSnapshot(content),
		settings:   settings,
		state:      search.NewState(),
		view:       &demoView{visible: true},
		tagsCh:     make(chan tagResult, 1),
		invalidate: make(chan struct{}, 1),
	}

	a.lines = strings.Split(content, "\n")
	offset := 0
	for _, line := range a.lines {
		a.offsets = append(a.offsets, offset)
		offset += len(line) + 1
	}

	a.source = highlight.NewSource(a.state, a.settings, a.view)

	// Changed may fire from the config watcher's goroutine; hand the
	// invalidation to the event loop instead of touching loop state here.
	a.source.OnChanged(func() {
		select {
		case a.invalidate <- struct{}{}:
		default:
		}
	})
	return a
}

func (a *app) shutdown() {
	if a.cancel != nil {
		a.cancel()
	}
	a.source.Close()
}

func (a *app) loop() {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(events, quit)
	defer close(quit)

	a.requestTags()
	a.draw()

	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
			a.draw()

		case <-a.invalidate:
			a.requestTags()
			a.draw()

		case res := <-a.tagsCh:
			if res.generation != a.generation {
				continue // superseded
			}
			if res.err != nil {
				// Cancelled or bad pattern: keep the previous tags.
				a.status = res.err.Error()
				continue
			}
			a.tags = res.tags
			a.status = ""
			a.draw()
		}
	}
}

func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return false

		case tcell.KeyEscape:
			a.state.NotifyDisableOneTime()

		case tcell.KeyCtrlT:
			a.settings.SetHighlightSearch(!a.settings.HighlightSearch())

		case tcell.KeyCtrlV:
			a.view.setVisible(!a.view.Visible())

		case tcell.KeyUp:
			if a.top > 0 {
				a.top--
				a.requestTags()
			}

		case tcell.KeyDown:
			if a.top < len(a.lines)-1 {
				a.top++
				a.requestTags()
			}

		case tcell.KeyEnter:
			a.runSearch()

		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if a.input != "" {
				a.input = a.input[:len(a.input)-1]
				a.runSearch()
			}

		case tcell.KeyRune:
			a.input += string(ev.Rune())
			a.runSearch()
		}
	}
	return true
}

// runSearch replaces the current pattern and signals that a search ran,
// the way the editor's incremental search would.
func (a *app) runSearch() {
	a.state.SetCurrent(search.PatternData{Pattern: a.input, Direction: search.Forward})
	a.state.NotifySearchRan()
	a.requestTags()
}

// requestTags re-queries the source for the visible span. The prompt path
// answers immediately when highlighting is suppressed; otherwise the scan
// runs on a background goroutine, cancelling any in-flight one.
func (a *app) requestTags() {
	span := a.visibleSpan()

	a.generation++
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}

	if ok, tags := a.source.TryGetTagsPrompt(span); ok {
		a.tags = tags
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	generation := a.generation
	data := a.source.DataForSpan()
	go func() {
		tags, err := a.source.TagsInBackground(ctx, data, a.snap, span)
		select {
		case a.tagsCh <- tagResult{generation: generation, tags: tags, err: err}:
		case <-ctx.Done():
		}
	}()
}

func (a *app) visibleSpan() text.Span {
	_, height := a.screen.Size()
	rows := height - 1 // last row is the prompt
	if rows < 1 {
		rows = 1
	}

	last := a.top + rows - 1
	if last >= len(a.lines) {
		last = len(a.lines) - 1
	}

	start := a.offsets[a.top]
	end := a.offsets[last] + len(a.lines[last])
	return text.SpanFromRange(start, end)
}

func (a *app) draw() {
	a.screen.Clear()
	width, height := a.screen.Size()
	rows := height - 1

	base := tcell.StyleDefault
	hl := base.Reverse(true)

	for row := 0; row < rows; row++ {
		idx := a.top + row
		if idx >= len(a.lines) {
			break
		}
		line := a.lines[idx]
		lineStart := a.offsets[idx]

		col := 0
		for i, r := range line {
			if col >= width {
				break
			}
			style := base
			if a.highlighted(lineStart + i) {
				style = hl
			}
			a.screen.SetContent(col, row, r, nil, style)
			col++
		}
	}

	a.drawPrompt(width, height-1)
	a.screen.Show()
}

func (a *app) highlighted(offset int) bool {
	for _, tag := range a.tags {
		if tag.Span.Intersects(text.NewSpan(offset, 1)) {
			return true
		}
	}
	return false
}

func (a *app) drawPrompt(width, row int) {
	style := tcell.StyleDefault.Bold(true)

	flags := ""
	if !a.settings.HighlightSearch() {
		flags += " [nohls]"
	}
	if !a.view.Visible() {
		flags += " [hidden]"
	}
	if a.status != "" {
		flags += " " + a.status
	}

	prompt := "/" + a.input + flags
	col := 0
	for _, r := range prompt {
		if col >= width {
			break
		}
		a.screen.SetContent(col, row, r, nil, style)
		col++
	}
	for col < width {
		a.screen.SetContent(col, row, ' ', nil, style)
		col++
	}
}
