package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/repl/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".replrc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty file", "", nil},
		{"single line", "key=value\n", []string{"key=value"}},
		{"no trailing newline", "a=1\nb=2", []string{"a=1", "b=2"}},
		{"comments kept", "# Comment\nkey=value\n", []string{"# Comment", "key=value"}},
		{"CRLF line endings", "key1=value1\r\nkey2=value2\r\n", []string{"key1=value1", "key2=value2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLines(writeConfig(t, tt.content))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestReadLines_MissingFile(t *testing.T) {
	got, err := ReadLines(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestWriteLines_AtomicAndPrivate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".replrc")

	require.NoError(t, WriteLines(path, []string{"a=1"}))
	require.NoError(t, WriteLines(path, []string{"b=2", "c=3"}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "b=2\nc=3\n", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file left behind")
}

func TestSet(t *testing.T) {
	lines := []string{"# header", "prompt=> ", "exit=quit"}

	lines, existed := Set(lines, "exit", "bye")
	require.True(t, existed)
	require.Equal(t, []string{"# header", "prompt=> ", "exit=bye"}, lines)

	lines, existed = Set(lines, "log_level", "debug")
	require.False(t, existed)
	require.Equal(t, "log_level=debug", lines[len(lines)-1])

	lines, _ = Set(lines, "prompt", "$ ")
	require.Equal(t, `prompt="$ "`, lines[1])
}

func TestSet_IgnoresCommentedKey(t *testing.T) {
	lines, existed := Set([]string{"# exit=quit"}, "exit", "bye")
	require.False(t, existed)
	require.Equal(t, []string{"# exit=quit", "exit=bye"}, lines)
}

func TestUnset(t *testing.T) {
	lines := []string{"# exit=quit", "exit=bye", "color=false", " exit = again"}

	out, removed := Unset(lines, "exit")
	require.True(t, removed)
	require.Equal(t, []string{"# exit=quit", "color=false"}, out)

	_, removed = Unset(out, "missing")
	require.False(t, removed)
}

func TestProvider_GetFallsBackToDefaults(t *testing.T) {
	p := NewProvider(filepath.Join(t.TempDir(), "absent"))

	v, ok := p.Get("prompt")
	require.True(t, ok)
	require.Equal(t, "> ", v)

	_, ok = p.Get("no_such_key")
	require.False(t, ok)
}

func TestProvider_GetFromFile(t *testing.T) {
	p := NewProvider(writeConfig(t, "prompt=\"$ \"\ncustom=1\n"))

	v, ok := p.Get("prompt")
	require.True(t, ok)
	require.Equal(t, "$ ", v)

	v, ok = p.Get("custom")
	require.True(t, ok)
	require.Equal(t, "1", v)
}

func TestProvider_GetAll(t *testing.T) {
	p := NewProvider(writeConfig(t, "log_level=debug\nextra=yes\n"))

	all, err := p.GetAll()
	require.NoError(t, err)
	require.Equal(t, "debug", all["log_level"])
	require.Equal(t, "yes", all["extra"])
	require.Equal(t, "exit,quit", all["exit"])
	require.Len(t, all, len(domain.ConfigKeys)+1)
}

func TestProvider_GetAll_InvalidFileKeepsDefaults(t *testing.T) {
	p := NewProvider(writeConfig(t, "not a setting\n"))

	all, err := p.GetAll()
	require.Error(t, err)
	require.Equal(t, "warn", all["log_level"])

	v, ok := p.Get("log_level")
	require.True(t, ok)
	require.Equal(t, "warn", v)
}

func TestProvider_SetCreatesDocumentedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".replrc")
	p := NewProvider(path)

	require.NoError(t, p.Set("prompt", "repl> "))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	require.Equal(t, "# repl configuration", lines[0])
	require.Contains(t, lines, `prompt="repl> "`)
	require.Contains(t, lines, "# log_level=warn")

	v, _ := p.Get("prompt")
	require.Equal(t, "repl> ", v)

	_, err = os.Stat(path + lockSuffix)
	require.True(t, os.IsNotExist(err), "lock released")
}

func TestProvider_Unset(t *testing.T) {
	path := writeConfig(t, "color=false\nhistory=false\n")
	p := NewProvider(path)

	removed, err := p.Unset("color")
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = p.Unset("color")
	require.NoError(t, err)
	require.False(t, removed)

	lines, err := ReadLines(path)
	require.NoError(t, err)
	require.Equal(t, []string{"history=false"}, lines)
}

func TestDefaultLines_ParseToNothing(t *testing.T) {
	cfg, err := Parse(DefaultLines())
	require.NoError(t, err)
	require.Empty(t, cfg)
}

func TestBool(t *testing.T) {
	p := NewProvider(writeConfig(t, "color=false\nhistory=maybe\n"))

	v, err := Bool(p, "color")
	require.NoError(t, err)
	require.False(t, v)

	v, err = Bool(p, "enable_log")
	require.NoError(t, err)
	require.False(t, v)

	_, err = Bool(p, "history")
	require.Error(t, err)
}

func TestList(t *testing.T) {
	p := NewProvider(writeConfig(t, "exit= quit, ,bye ,\n"))

	require.Equal(t, []string{"quit", "bye"}, List(p, "exit"))
	require.Nil(t, List(p, "unknown_key"))
}

func TestWithLock_Timeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".replrc")
	held, err := acquireLock(path+lockSuffix, lockTimeout)
	require.NoError(t, err)
	defer releaseLock(held, path+lockSuffix)

	_, err = acquireLock(path+lockSuffix, 2*lockPollInterval)
	require.ErrorIs(t, err, ErrLockTimeout)
}

func TestWithLock_RemovesStaleLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".replrc")
	lockPath := path + lockSuffix
	require.NoError(t, os.WriteFile(lockPath, []byte("1"), 0600))
	old := time.Now().Add(-2 * staleLockTimeout)
	require.NoError(t, os.Chtimes(lockPath, old, old))

	ran := false
	require.NoError(t, WithLock(path, func() error { ran = true; return nil }))
	require.True(t, ran)
}
