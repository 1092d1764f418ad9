package console

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// recorder is a Surface that marks clears inline as "<clear>".
type recorder struct {
	mu sync.Mutex
	sb strings.Builder
}

func (r *recorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sb.Write(p)
}

func (r *recorder) ClearLine() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sb.WriteString("<clear>")
}

func (r *recorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sb.String()
}

func TestConsole_NotRunningWritesDirectly(t *testing.T) {
	rec := &recorder{}
	c := New(rec, "> ")

	c.Println("hello")

	require.Equal(t, "hello\n", rec.String())
}

func TestConsole_UnsolicitedRedrawsPrompt(t *testing.T) {
	rec := &recorder{}
	c := New(rec, "> ")
	c.SetRunning(true)

	c.Prompt()
	c.Println("background done")

	require.Equal(t, "> <clear>background done\n> ", rec.String())
}

func TestConsole_UnsolicitedWithoutNewline(t *testing.T) {
	rec := &recorder{}
	c := New(rec, "$ ")
	c.SetRunning(true)

	c.Printf("%d%%", 50)

	require.Equal(t, "<clear>50%\n$ ", rec.String())
}

func TestConsole_ExecutingOwnsTerminal(t *testing.T) {
	rec := &recorder{}
	c := New(rec, "> ")
	c.SetRunning(true)

	c.BeginExecution()
	require.True(t, c.Executing())
	c.Println("from command")
	c.Printf("no newline")
	c.EndExecution()
	require.False(t, c.Executing())

	require.Equal(t, "from command\nno newline", rec.String())
}

func TestConsole_Write(t *testing.T) {
	rec := &recorder{}
	c := New(rec, "> ")
	c.SetRunning(true)

	n, err := c.Write([]byte("raw\n"))
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, "<clear>raw\n> ", rec.String())
}

func TestConsole_ConcurrentLinesStayWhole(t *testing.T) {
	rec := &recorder{}
	c := New(rec, "> ")
	c.SetRunning(true)
	c.BeginExecution()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				c.Println("abcdefghij")
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(rec.String(), "\n"), "\n")
	require.Len(t, lines, 400)
	for _, l := range lines {
		require.Equal(t, "abcdefghij", l)
	}
}

func TestConsole_State(t *testing.T) {
	c := New(&recorder{}, ">> ")
	require.Equal(t, ">> ", c.PromptSymbol())
	require.False(t, c.Running())
	c.SetRunning(true)
	require.True(t, c.Running())
	c.SetRunning(false)
	require.False(t, c.Running())
}

func TestConsole_SetPromptUsedOnNextRedraw(t *testing.T) {
	rec := &recorder{}
	c := New(rec, "> ")
	c.SetRunning(true)
	c.Prompt()

	c.SetPrompt("$ ")
	c.Println("reloaded")

	require.Equal(t, "> <clear>reloaded\n$ ", rec.String())
	require.Equal(t, "$ ", c.PromptSymbol())
}

func TestConsole_PromptNotDrawnTwice(t *testing.T) {
	rec := &recorder{}
	c := New(rec, "> ")
	c.SetRunning(true)

	c.Println("late")
	c.Prompt()
	require.Equal(t, "<clear>late\n> ", rec.String())

	c.Submitted()
	c.Prompt()
	require.Equal(t, "<clear>late\n> > ", rec.String())
}
