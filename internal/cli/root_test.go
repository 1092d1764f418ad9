package cli

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type surface struct {
	mu sync.Mutex
	sb strings.Builder
}

func (s *surface) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sb.Write(p)
}

func (s *surface) ClearLine() {}

func (s *surface) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sb.String()
}

func runRepl(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	out := &surface{}
	cmd := newRootCommand(streams{in: strings.NewReader(input), surface: out})

	configPath := filepath.Join(t.TempDir(), ".replrc")
	cmd.SetArgs(append([]string{"--config", configPath, "--no-history"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_SampleCommands(t *testing.T) {
	out, err := runRepl(t, strings.Join([]string{
		`echo "hello world" -upper -times 2`,
		"sum 40 2",
		"sum 4 x",
		"paint RED roses",
		"paint pink roses",
		"wait 1",
		"exit",
		"echo never",
	}, "\n"))
	require.NoError(t, err)

	require.Contains(t, out, "HELLO WORLD\nHELLO WORLD\n")
	require.Contains(t, out, "> 42\n")
	require.Contains(t, out, "x is not valid for argument 1")
	require.Contains(t, out, "red: roses\n")
	require.Contains(t, out, "pink is not valid for argument 0")
	require.Contains(t, out, "waited ")
	require.NotContains(t, out, "never")
}

func TestRoot_OversizedNumbersKeepSessionAlive(t *testing.T) {
	out, err := runRepl(t, strings.Join([]string{
		"sum 1 99999999999999999999",
		"sum 999999999999999999 999999999999999999",
		"remind hi -in 9300000000",
		"wait 999999999999",
		"echo still-alive",
		"exit",
	}, "\n"))
	require.NoError(t, err)

	require.Contains(t, out, "99999999999999999999 is not valid for argument 1")
	require.Contains(t, out, "> 1999999999999999998\n")
	require.Contains(t, out, "9300000000 is not valid for argument -in")
	require.Contains(t, out, "999999999999 is not valid for argument 0")
	require.NotContains(t, out, "reminder")
	require.Contains(t, out, "still-alive\n")
}

func TestRoot_PromptFlagOverridesConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".replrc")
	require.NoError(t, os.WriteFile(configPath, []byte("prompt=cfg> \n"), 0600))

	out := &surface{}
	cmd := newRootCommand(streams{in: strings.NewReader("version\n"), surface: out})
	cmd.SetArgs([]string{"--config", configPath, "--no-history", "--prompt", "$ "})
	require.NoError(t, cmd.Execute())

	require.True(t, strings.HasPrefix(out.String(), "$ repl version "), out.String())
	require.NotContains(t, out.String(), "cfg>")
}

func TestRoot_ConfigPrompt(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".replrc")
	require.NoError(t, os.WriteFile(configPath, []byte(`prompt="cfg> "`+"\n"), 0600))

	out := &surface{}
	cmd := newRootCommand(streams{in: strings.NewReader(""), surface: out})
	cmd.SetArgs([]string{"--config", configPath, "--no-history"})
	require.NoError(t, cmd.Execute())

	require.Equal(t, "cfg> ", out.String())
}

func TestRoot_HelpFlag(t *testing.T) {
	out, err := runRepl(t, "sum --usage\nsum 1 -h\n", "--help-flag", "--usage")
	require.NoError(t, err)

	require.Contains(t, out, "█ sum\tadd two integers")
	require.Contains(t, out, "-h is not valid for argument 1", "-h is an ordinary value once replaced")
}

func TestRoot_NoSamples(t *testing.T) {
	out, err := runRepl(t, "echo hi\n", "--no-samples")
	require.NoError(t, err)

	require.Contains(t, out, "'echo' is not a command. See 'help'.")
}

func TestRoot_RejectsPositionalArgs(t *testing.T) {
	_, err := runRepl(t, "", "extra")
	require.Error(t, err)
}

func TestBuildCommands_Valid(t *testing.T) {
	out, err := runRepl(t, "help\n")
	require.NoError(t, err)

	for _, spec := range BuildCommands() {
		require.Contains(t, out, "█ "+spec.Name+"\t"+spec.Summary)
	}
}
