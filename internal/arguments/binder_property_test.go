package arguments

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Values are lower-case words, so they can never collide with the "-" keys.
func TestBindFitsRoundTrip(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("fits iff every value satisfies its validator", prop.ForAll(
		func(positionals []string, keyed []string, flagMask []bool) bool {
			opts := Options{}
			for range positionals {
				opts.Positionals = append(opts.Positionals, ArgSpec{Pattern: "^[a-m]"})
			}
			for i := range keyed {
				opts.Keyed = append(opts.Keyed, ArgSpec{
					Key:        fmt.Sprintf("-k%d", i),
					Allowed:    []string{"alpha", "beta", "gamma"},
					IgnoreCase: true,
				})
			}
			for i := range flagMask {
				opts.Flags = append(opts.Flags, ArgSpec{Key: fmt.Sprintf("-f%d", i)})
			}

			b, err := New(opts)
			if err != nil {
				return false
			}

			var tokens []string
			for i, v := range keyed {
				tokens = append(tokens, fmt.Sprintf("-k%d", i), v)
			}
			tokens = append(tokens, positionals...)
			for i, set := range flagMask {
				if set {
					tokens = append(tokens, fmt.Sprintf("-f%d", i))
				}
			}

			want := true
			for _, v := range positionals {
				if v == "" || v[0] < 'a' || v[0] > 'm' {
					want = false
				}
			}
			for _, v := range keyed {
				switch strings.ToLower(v) {
				case "alpha", "beta", "gamma":
				default:
					want = false
				}
			}

			bound := b.Bind(tokens)
			if len(bound.Positionals()) != len(positionals) {
				return false
			}
			for i, set := range flagMask {
				if bound.HasFlag(fmt.Sprintf("-f%d", i)) != set {
					return false
				}
			}
			return b.Fits(bound).OK == want
		},
		gen.SliceOfN(3, gen.AlphaString().Map(strings.ToLower)),
		gen.SliceOfN(2, gen.OneConstOf("alpha", "BETA", "Gamma", "delta", "omega")),
		gen.SliceOfN(2, gen.Bool()),
	))

	properties.TestingRun(t)
}
