package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const twoActions = `[
  {"name": "Say", "command": "notify-send \":text:\"", "type": "text"},
  {"name": "", "command": "", "type": "separator"}
]`

func TestDefaultActions(t *testing.T) {
	actions := DefaultActions()
	require.Len(t, actions, 8)

	kinds := map[Kind]int{}
	for _, a := range actions {
		kinds[a.Kind]++
		if a.Kind != KindSeparator {
			assert.NotEmpty(t, a.Name)
			assert.NotEmpty(t, a.Command)
		}
	}
	assert.Equal(t, map[Kind]int{KindText: 1, KindURL: 2, KindFile: 4, KindSeparator: 1}, kinds)
}

func TestLoadActionsOrder(t *testing.T) {
	dir := t.TempDir()
	explicit := writeFile(t, dir, "mine.json", twoActions)
	fallback := writeFile(t, dir, ActionsFile, `[{"name": "Fallback", "command": "true", "type": "url"}]`)

	t.Run("explicit path wins over fallback", func(t *testing.T) {
		actions, source := LoadActions([]string{explicit, fallback}, discardLogger())
		assert.Equal(t, explicit, source)
		require.Len(t, actions, 2)
		assert.Equal(t, "Say", actions[0].Name)
		assert.Equal(t, KindSeparator, actions[1].Kind)
	})

	t.Run("malformed explicit path falls through", func(t *testing.T) {
		broken := writeFile(t, dir, "broken.json", `[{"name": "x",`)
		actions, source := LoadActions([]string{broken, fallback}, discardLogger())
		assert.Equal(t, fallback, source)
		require.Len(t, actions, 1)
		assert.Equal(t, "Fallback", actions[0].Name)
	})

	t.Run("missing explicit path falls through", func(t *testing.T) {
		actions, source := LoadActions([]string{filepath.Join(dir, "nope.json"), fallback}, discardLogger())
		assert.Equal(t, fallback, source)
		assert.Len(t, actions, 1)
	})

	t.Run("nothing usable gives built-in list", func(t *testing.T) {
		actions, source := LoadActions([]string{filepath.Join(dir, "nope.json")}, discardLogger())
		assert.Empty(t, source)
		assert.Equal(t, DefaultActions(), actions)
	})
}

func TestReadActions(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    int
		wantErr error
	}{
		{
			name:    "plain list",
			content: twoActions,
			want:    2,
		},
		{
			name: "comments allowed",
			content: `// my actions
[
  /* copy */ {"name": "Copy", "command": "echo :text:", "type": "text"},
]`,
			want: 1,
		},
		{
			name:    "empty list",
			content: `[]`,
			want:    0,
		},
		{
			name:    "object instead of list",
			content: `{"name": "Copy"}`,
			wantErr: ErrNotActionList,
		},
		{
			name:    "null document",
			content: `null`,
			wantErr: ErrNotActionList,
		},
		{
			name:    "unknown type",
			content: `[{"name": "Run", "command": "ls", "type": "program"}]`,
			wantErr: ErrUnknownKind,
		},
		{
			name:    "missing type",
			content: `[{"name": "Run", "command": "ls"}]`,
			wantErr: ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "actions.json", tt.content)
			actions, err := ReadActions(path)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, actions, tt.want)
		})
	}
}

func TestReadActionsYAML(t *testing.T) {
	dir := t.TempDir()

	t.Run("list", func(t *testing.T) {
		path := writeFile(t, dir, "actions.yaml", `- name: Copy
  command: echo ":text:" | xclip
  type: text
- type: separator
- name: Open
  command: xdg-open ":file:"
  type: file
`)
		actions, err := ReadActions(path)
		require.NoError(t, err)
		assert.Equal(t, []Action{
			{Name: "Copy", Command: `echo ":text:" | xclip`, Kind: KindText},
			{Kind: KindSeparator},
			{Name: "Open", Command: `xdg-open ":file:"`, Kind: KindFile},
		}, actions)
	})

	t.Run("unknown type", func(t *testing.T) {
		path := writeFile(t, dir, "unknown.yml", "- name: Run\n  command: ls\n  type: program\n")
		_, err := ReadActions(path)
		assert.ErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("missing type", func(t *testing.T) {
		path := writeFile(t, dir, "missing.yaml", "- name: Run\n  command: ls\n")
		_, err := ReadActions(path)
		assert.ErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("mapping document", func(t *testing.T) {
		path := writeFile(t, dir, "mapping.yaml", "name: Run\ncommand: ls\ntype: text\n")
		_, err := ReadActions(path)
		assert.Error(t, err)
	})

	t.Run("empty document", func(t *testing.T) {
		path := writeFile(t, dir, "empty.yaml", "")
		_, err := ReadActions(path)
		assert.ErrorIs(t, err, ErrNotActionList)
	})
}

func TestSaveActionsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.json")
	want := DefaultActions()

	require.NoError(t, SaveActions(path, want))
	got, err := ReadActions(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var generic []map[string]string
	require.NoError(t, json.Unmarshal(raw, &generic))
	assert.Equal(t, "separator", generic[2]["type"])
	assert.Equal(t, "text", generic[0]["type"])
}

func TestSaveActionsRejectsInvalidKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.json")
	err := SaveActions(path, []Action{{Name: "bad"}})
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.NoFileExists(t, path)
}

func TestParseKind(t *testing.T) {
	for _, name := range []string{"text", "url", "file", "separator"} {
		k, err := ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.String())
		assert.True(t, k.Valid())
	}

	_, err := ParseKind("Text")
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.False(t, Kind(0).Valid())
}

func TestCandidates(t *testing.T) {
	assert.Equal(t,
		[]string{"/etc/mine.json", "actions.json", filepath.Join("/opt/dragster", "actions.json")},
		Candidates("/etc/mine.json", ActionsFile, "/opt/dragster"))
	assert.Equal(t,
		[]string{"settings.json", filepath.Join("/opt/dragster", "settings.json")},
		Candidates("", SettingsFile, "/opt/dragster"))
}
