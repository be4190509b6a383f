package launcher

import (
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taodev/dragster/internal/config"
	"github.com/taodev/dragster/internal/drop"
	"github.com/taodev/dragster/internal/expand"
)

type fakeRunner struct {
	commands []string
	err      error
}

func (r *fakeRunner) Run(command string) error {
	r.commands = append(r.commands, command)
	return r.err
}

type notice struct {
	level   string
	title   string
	message string
}

type fakeNotifier struct {
	notices []notice
}

func (n *fakeNotifier) Info(title, message string) {
	n.notices = append(n.notices, notice{"info", title, message})
}

func (n *fakeNotifier) Error(title, message string) {
	n.notices = append(n.notices, notice{"error", title, message})
}

type harness struct {
	dispatcher *Dispatcher
	runner     *fakeRunner
	notifier   *fakeNotifier
	fs         afero.Fs
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		runner:   &fakeRunner{},
		notifier: &fakeNotifier{},
		fs:       afero.NewMemMapFs(),
	}
	env := map[string]string{"HOME": "/home/alice", "USER": "alice"}
	exp := expand.New(
		expand.WithEnv(func(k string) (string, bool) { v, ok := env[k]; return v, ok }),
		expand.WithClock(func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local) }),
	)
	h.dispatcher = New(exp, h.runner, h.fs, h.notifier, slog.New(slog.DiscardHandler))
	return h
}

func (h *harness) touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, h.fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(h.fs, path, []byte("x"), 0o644))
}

func TestDispatchText(t *testing.T) {
	h := newHarness(t)
	dc := drop.Classify(drop.Payload{Text: "hello there"})

	err := h.dispatcher.Dispatch(config.Action{Name: "Copy", Command: `echo ":text:" | xclip`, Kind: config.KindText}, dc)
	require.NoError(t, err)
	assert.Equal(t, []string{`echo "hello there" | xclip`}, h.runner.commands)
	assert.Empty(t, h.notifier.notices)
}

func TestDispatchURL(t *testing.T) {
	h := newHarness(t)
	dc := drop.Classify(drop.Payload{URIs: []string{"https://a.example", "https://b.example"}})

	err := h.dispatcher.Dispatch(config.Action{Command: `open ":url:" :timestamp:`, Kind: config.KindURL}, dc)
	require.NoError(t, err)
	require.Len(t, h.runner.commands, 1)
	assert.Equal(t, "open \"https://a.example\nhttps://b.example\" 20240102-030405", h.runner.commands[0])
}

func TestDispatchFileWithoutFileURI(t *testing.T) {
	h := newHarness(t)
	dc := drop.Classify(drop.Payload{URIs: []string{"https://example.com/video"}})

	err := h.dispatcher.Dispatch(config.Action{Command: `xdg-open ":file:"`, Kind: config.KindFile}, dc)
	assert.ErrorIs(t, err, ErrNoFileURI)
	assert.Empty(t, h.runner.commands)
	require.Len(t, h.notifier.notices, 1)
	assert.Equal(t, notice{"info", "Info", "No file URI found."}, h.notifier.notices[0])
}

func TestDispatchFileOnEmptyDrop(t *testing.T) {
	h := newHarness(t)

	err := h.dispatcher.Dispatch(config.Action{Command: ":file:", Kind: config.KindFile}, drop.Context{})
	assert.ErrorIs(t, err, ErrNoFileURI)
	assert.Empty(t, h.runner.commands)
	assert.Len(t, h.notifier.notices, 1)
}

func TestDispatchFileSplitsName(t *testing.T) {
	h := newHarness(t)
	h.touch(t, "/tmp/report.final.txt")
	dc := drop.Classify(drop.Payload{URIs: []string{"file:///tmp/report.final.txt"}})

	err := h.dispatcher.Dispatch(config.Action{Command: ":fname:-:fext:", Kind: config.KindFile}, dc)
	require.NoError(t, err)
	assert.Equal(t, []string{"report.final-.txt"}, h.runner.commands)
}

func TestDispatchFileMissingSibling(t *testing.T) {
	h := newHarness(t)
	h.touch(t, "/home/alice/My Song.mp3")
	dc := drop.Classify(drop.Payload{URIs: []string{
		"file:///home/alice/gone.txt",
		"file:///home/alice/My%20Song.mp3",
	}})

	err := h.dispatcher.Dispatch(config.Action{
		Command: `zip /home/:user:/:fname:.zip ":file:" -j`,
		Kind:    config.KindFile,
	}, dc)
	require.NoError(t, err)

	assert.Equal(t, []string{`zip /home/alice/My Song.zip "/home/alice/My Song.mp3" -j`}, h.runner.commands)
	require.Len(t, h.notifier.notices, 1)
	assert.Equal(t, notice{"error", "Error", "File: /home/alice/gone.txt doesn't exist."}, h.notifier.notices[0])
}

func TestDispatchFileEveryExistingPath(t *testing.T) {
	h := newHarness(t)
	h.touch(t, "/data/a.png")
	h.touch(t, "/data/b.png")
	dc := drop.Classify(drop.Payload{URIs: []string{"file:///data/a.png", "file:///data/b.png"}})

	require.NoError(t, h.dispatcher.Dispatch(config.Action{Command: "view :file: in :fdir:", Kind: config.KindFile}, dc))
	assert.Equal(t, []string{"view /data/a.png in /data", "view /data/b.png in /data"}, h.runner.commands)
	assert.Empty(t, h.notifier.notices)
}

func TestDispatchRunnerFailureIsNotSurfaced(t *testing.T) {
	h := newHarness(t)
	h.runner.err = errors.New("exec: no shell")

	err := h.dispatcher.Dispatch(config.Action{Command: "echo :text:", Kind: config.KindText}, drop.Classify(drop.Payload{Text: "x"}))
	assert.NoError(t, err)
	assert.Empty(t, h.notifier.notices)
	assert.Len(t, h.runner.commands, 1)
}

func TestDispatchSeparatorDoesNothing(t *testing.T) {
	h := newHarness(t)

	err := h.dispatcher.Dispatch(config.Action{Kind: config.KindSeparator}, drop.Classify(drop.Payload{Text: "x"}))
	assert.NoError(t, err)
	assert.Empty(t, h.runner.commands)
	assert.Empty(t, h.notifier.notices)
}

func TestDispatchRejectsInvalidKind(t *testing.T) {
	h := newHarness(t)

	err := h.dispatcher.Dispatch(config.Action{Name: "broken", Command: "ls"}, drop.Context{})
	assert.ErrorIs(t, err, config.ErrUnknownKind)
	assert.Empty(t, h.runner.commands)
}

func TestInvokeReportsConsumedDrop(t *testing.T) {
	h := newHarness(t)
	h.touch(t, "/data/a.png")

	tests := []struct {
		name     string
		action   config.Action
		dc       drop.Context
		consumed bool
	}{
		{
			name:     "text action",
			action:   config.Action{Command: "echo :text:", Kind: config.KindText},
			dc:       drop.Classify(drop.Payload{Text: "x"}),
			consumed: true,
		},
		{
			name:     "file action",
			action:   config.Action{Command: "view :file:", Kind: config.KindFile},
			dc:       drop.Classify(drop.Payload{URIs: []string{"file:///data/a.png"}}),
			consumed: true,
		},
		{
			name:     "file action with missing file",
			action:   config.Action{Command: "view :file:", Kind: config.KindFile},
			dc:       drop.Classify(drop.Payload{URIs: []string{"file:///data/gone.png"}}),
			consumed: true,
		},
		{
			name:     "file action without file URI",
			action:   config.Action{Command: "view :file:", Kind: config.KindFile},
			dc:       drop.Classify(drop.Payload{Text: "just text"}),
			consumed: false,
		},
		{
			name:     "invalid kind",
			action:   config.Action{Command: "ls"},
			dc:       drop.Classify(drop.Payload{Text: "x"}),
			consumed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.consumed, h.dispatcher.Invoke(tt.action, tt.dc))
		})
	}
}
