package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{
			name: "identical strings",
			a:    "track",
			b:    "track",
			want: 0,
		},
		{
			name: "one character difference",
			a:    "track",
			b:    "tracky",
			want: 1,
		},
		{
			name: "typo - transposition",
			a:    "track",
			b:    "tarck",
			want: 2,
		},
		{
			name: "typo - substitution",
			a:    "status",
			b:    "stauts",
			want: 2,
		},
		{
			name: "completely different",
			a:    "track",
			b:    "xyz123",
			want: 6,
		},
		{
			name: "empty string a",
			a:    "",
			b:    "track",
			want: 5,
		},
		{
			name: "empty string b",
			a:    "track",
			b:    "",
			want: 5,
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: 0,
		},
		{
			name: "case insensitive",
			a:    "TRACK",
			b:    "track",
			want: 0,
		},
		{
			name: "missing letter",
			a:    "config",
			b:    "confg",
			want: 1,
		},
		{
			name: "extra letter",
			a:    "config",
			b:    "confiig",
			want: 1,
		},
		{
			name: "accented letter counts once",
			a:    "café",
			b:    "cafe",
			want: 1,
		},
		{
			name: "multi-byte letters in both",
			a:    "grüße",
			b:    "grüsse",
			want: 2,
		},
		{
			name: "non-ascii case insensitive",
			a:    "ÉCHO",
			b:    "écho",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := levenshtein(tt.a, tt.b)
			require.Equal(t, tt.want, got)
		})
	}
}

func commandsNamed(t *testing.T, names ...string) []*Command {
	t.Helper()
	var cmds []*Command
	for _, n := range names {
		c, err := NewCommand(CommandSpec{Name: n})
		require.NoError(t, err)
		cmds = append(cmds, c)
	}
	return cmds
}

func TestFindSimilarCommands(t *testing.T) {
	cmds := commandsNamed(t, "help", "history", "echo", "sum", "wait")

	tests := []struct {
		name  string
		input string
		max   int
		want  []string
	}{
		{name: "single typo", input: "hepl", max: 3, want: []string{"help"}},
		{name: "closest first", input: "ech", max: 3, want: []string{"echo", "help", "sum"}},
		{name: "exact match is not suggested", input: "sum", max: 3, want: []string{}},
		{name: "nothing close", input: "zzzzzzzz", max: 3, want: []string{}},
		{name: "case insensitive", input: "WAIT!", max: 3, want: []string{"wait"}},
		{name: "respects max", input: "sun", max: 1, want: []string{"sum"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FindSimilarCommands(tt.input, cmds, tt.max))
		})
	}
}

func TestFindSimilarCommands_SortedByDistance(t *testing.T) {
	cmds := commandsNamed(t, "stats", "state", "start")

	got := FindSimilarCommands("stat", cmds, 3)

	require.Equal(t, []string{"start", "state", "stats"}, got)
}

func TestFindSimilarCommands_NoCommands(t *testing.T) {
	require.Empty(t, FindSimilarCommands("x", nil, 3))
}

func TestFindSimilarCommands_NonASCIINames(t *testing.T) {
	got := FindSimilarCommands("résumé", commandsNamed(t, "resume", "rescue"), 3)
	require.Equal(t, []string{"resume"}, got)
}
