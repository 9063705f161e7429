package controller

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"principles/internal/card"
	"principles/internal/deck"
	"principles/internal/haptics"
	"principles/internal/principles"
	"principles/internal/share"
	"principles/internal/tip"
	"principles/internal/tui/model"
)

const testAddress = "0xFFe16898FC0af80ee9BCF29D2B54a0F20F9498ad"

type recordingHaptics struct {
	mu         sync.Mutex
	impacts    []deck.Intensity
	selections int
	notes      []haptics.Notification
}

func (r *recordingHaptics) Impact(i deck.Intensity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.impacts = append(r.impacts, i)
	return nil
}

func (r *recordingHaptics) Selection() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selections++
	return nil
}

func (r *recordingHaptics) Notify(n haptics.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, n)
	return nil
}

type fakeComposer struct {
	casts []share.Cast
	err   error
}

func (f *fakeComposer) Compose(_ context.Context, c share.Cast) error {
	f.casts = append(f.casts, c)
	return f.err
}

type fakeWallet struct {
	sent []tip.Payload
}

func (f *fakeWallet) Send(_ context.Context, p tip.Payload) (tip.Receipt, error) {
	f.sent = append(f.sent, p)
	return tip.Receipt{Payload: p, Link: "ethereum:test"}, nil
}

type testEnv struct {
	m        *model.Model
	haptics  *recordingHaptics
	composer *fakeComposer
	wallet   *fakeWallet
	clock    time.Time
}

func (e *testEnv) advance(d time.Duration) {
	e.clock = e.clock.Add(d)
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		haptics:  &recordingHaptics{},
		composer: &fakeComposer{},
		wallet:   &fakeWallet{},
		clock:    time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	store := principles.Default()
	sched := model.NewTickScheduler()
	d, err := deck.New(store.Len(),
		deck.WithScheduler(sched),
		deck.WithHaptics(env.haptics),
		deck.WithConfig(deck.Config{TransitionDuration: time.Millisecond}),
	)
	require.NoError(t, err)

	tpl, err := share.NewTemplates(share.TemplateConfig{AppURL: "https://principles.test", Author: "@Jake"})
	require.NoError(t, err)

	m := model.InitialModel(model.Deps{
		Deck:           d,
		Scheduler:      sched,
		Renderer:       card.NewRenderer(store),
		Share:          &share.Gateway{AppURL: "https://principles.test", Composer: env.composer},
		Templates:      tpl,
		Tip:            &tip.Gateway{Wallet: env.wallet},
		TipTarget:      model.TipTarget{Address: testAddress, FID: 1356870},
		Haptics:        env.haptics,
		StatusDuration: time.Millisecond,
	})
	m.Width, m.Height = 100, 30
	m.Now = func() time.Time { return env.clock }
	env.m = m
	return env
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func (e *testEnv) send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.m, cmd = Update(msg, e.m)
	return cmd
}

// collect runs cmd and any batch it expands to, returning the messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// settle delivers the scheduled tasks found in cmd.
func (e *testEnv) settle(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	fired := 0
	for _, msg := range collect(cmd) {
		if task, ok := msg.(model.ScheduledTaskMsg); ok {
			e.send(task)
			fired++
		}
	}
	require.NotZero(t, fired, "expected a scheduled transition")
}

func find[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
