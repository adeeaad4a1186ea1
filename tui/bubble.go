package tui

import (
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/themer-cli/themer/color"
	"github.com/themer-cli/themer/provider"
	"github.com/themer-cli/themer/style"
	"github.com/themer-cli/themer/theme"
	"github.com/themer-cli/themer/util"
)

// statefulBubble is the settings screen model.
type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	provider *provider.Provider
	snapshot provider.Snapshot

	// changed is signalled by the provider subscription; the newest
	// snapshot is read from the provider when the signal is handled.
	changed     chan struct{}
	done        chan struct{}
	closeOnce   sync.Once
	unsubscribe func()

	lists map[state]*list.Model
	helpC help.Model

	width, height int
}

func newBubble(p *provider.Provider) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := &statefulBubble{
		keymap:   keymap,
		provider: p,
		snapshot: p.Snapshot(),
		changed:  make(chan struct{}, 1),
		done:     make(chan struct{}),
		lists:    make(map[state]*list.Model),
		helpC:    help.New(),
	}

	bubble.unsubscribe = p.Subscribe(func(provider.Snapshot) {
		select {
		case bubble.changed <- struct{}{}:
		default:
		}
	})

	makeList := func(s state, values []interface{}) *list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.ShowDescription = true

		listC := list.New(lo.Map(values, func(v interface{}, _ int) list.Item {
			return &listItem{internal: v}
		}), delegate, 0, 0)
		listC.KeyMap = keymap.forList()
		listC.Title = s.String()
		listC.SetShowHelp(false)
		listC.SetShowStatusBar(false)
		listC.SetShowPagination(false)
		listC.SetFilteringEnabled(false)

		return &listC
	}

	bubble.lists[modeState] = makeList(modeState, lo.ToAnySlice(theme.Modes()))
	bubble.lists[schemeState] = makeList(schemeState, lo.ToAnySlice(theme.Schemes()))
	bubble.lists[designState] = makeList(designState, lo.ToAnySlice(theme.Designs()))

	bubble.setState(modeState)
	bubble.sync()

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return bubble
}

func (b *statefulBubble) close() {
	b.closeOnce.Do(func() {
		b.unsubscribe()
		close(b.done)
	})
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// current returns the list of the axis being edited.
func (b *statefulBubble) current() *list.Model {
	return b.lists[b.state]
}

// sync marks the selected values and restyles the lists from the snapshot.
func (b *statefulBubble) sync() {
	selected := map[state]interface{}{
		modeState:   b.snapshot.Mode,
		schemeState: b.snapshot.Scheme,
		designState: b.snapshot.Design,
	}

	styles := style.Build(b.snapshot.Colors, b.snapshot.Design)

	for s, l := range b.lists {
		for _, item := range l.Items() {
			li := item.(*listItem)
			li.current = li.internal == selected[s]
		}

		delegate := list.NewDefaultDelegate()
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(color.Hex(b.snapshot.Colors.Accent)).
			Foreground(color.Hex(b.snapshot.Colors.Primary)).
			Bold(styles.Design.BoldTitles).
			Padding(0, 0, 0, 1)
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle.Bold(false)
		l.SetDelegate(delegate)

		l.Styles.Title = styles.Selected
		if s != b.state {
			l.Styles.Title = styles.Muted.Padding(0, 1)
		}
	}
}

// refresh adopts the provider's newest snapshot.
func (b *statefulBubble) refresh() {
	b.snapshot = b.provider.Snapshot()
	b.sync()
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y

	listWidth := util.Max(b.width/3, 20)
	listHeight := util.Clamp(b.height-4, 6, 18)

	for _, l := range b.lists {
		l.SetSize(listWidth, listHeight)
	}

	b.helpC.Width = b.width
}
