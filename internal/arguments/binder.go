// Package arguments declares, binds and validates command arguments.
//
// A Binder holds three collections of specs: positionals (required, in
// input order), keyed arguments ("-k value") and flags ("-f"). Bind turns a
// token list into a Bound snapshot and Fits checks that snapshot against the
// declarations.
package arguments

import (
	"fmt"
	"slices"
	"strings"

	"github.com/footprint-tools/repl/internal/usage"
)

// UsageFunc renders a custom usage text for a binder.
type UsageFunc func(b *Binder) string

// Options is the declaration table of a Binder.
type Options struct {
	Positionals []ArgSpec
	Keyed       []ArgSpec
	Flags       []ArgSpec
	Usage       UsageFunc
}

// Binder owns the declared specs. It keeps no per-call state, so a single
// Binder can be shared by concurrent readers.
type Binder struct {
	positionals []Spec
	keyed       []Spec
	flags       []Spec
	usage       UsageFunc
}

// New compiles the declaration table. Keyed and flag specs behave as sets:
// a repeated key keeps its first declaration.
func New(opts Options) (*Binder, error) {
	b := &Binder{usage: opts.Usage}

	for i, decl := range opts.Positionals {
		s, err := newSpec(Positional, i, decl)
		if err != nil {
			return nil, err
		}
		b.positionals = append(b.positionals, s)
	}

	var err error
	if b.keyed, err = compileSet(Keyed, opts.Keyed); err != nil {
		return nil, err
	}
	if b.flags, err = compileSet(Flag, opts.Flags); err != nil {
		return nil, err
	}

	return b, nil
}

func compileSet(kind Kind, decls []ArgSpec) ([]Spec, error) {
	var specs []Spec
	for i, decl := range decls {
		s, err := newSpec(kind, i, decl)
		if err != nil {
			return nil, err
		}
		if slices.ContainsFunc(specs, s.Equal) {
			continue
		}
		specs = append(specs, s)
	}
	return specs, nil
}

// Positionals returns the positional specs in input order.
func (b *Binder) Positionals() []Spec { return slices.Clone(b.positionals) }

// Keyed returns the keyed specs in declaration order.
func (b *Binder) Keyed() []Spec { return slices.Clone(b.keyed) }

// Flags returns the flag specs in declaration order.
func (b *Binder) Flags() []Spec { return slices.Clone(b.flags) }

// Bind derives a fresh snapshot from tokens. Keyed arguments are claimed
// first, then flags; whatever remains becomes the positionals.
//
// A keyed argument found as the last token has no value and binds nothing.
// Every occurrence of a claimed key or flag token is removed, so repeated
// keys are discarded rather than rebound.
func (b *Binder) Bind(tokens []string) *Bound {
	rest := slices.Clone(tokens)
	bound := &Bound{keyed: make(map[string]string)}

	for _, spec := range b.keyed {
		if i := slices.Index(rest, spec.key); i >= 0 && i < len(rest)-1 {
			bound.keyed[spec.key] = rest[i+1]
			rest = slices.Delete(rest, i+1, i+2)
		}
		rest = removeAll(rest, spec.key)
	}

	for _, spec := range b.flags {
		if slices.Contains(rest, spec.key) {
			bound.flags = append(bound.flags, spec.key)
			rest = removeAll(rest, spec.key)
		}
	}

	bound.positionals = rest
	return bound
}

func removeAll(tokens []string, key string) []string {
	return slices.DeleteFunc(tokens, func(t string) bool { return t == key })
}

// Fits validates a snapshot. A positional count mismatch fails before any
// value is looked at and carries no per-value failures.
func (b *Binder) Fits(bound *Bound) FitResult {
	switch {
	case len(bound.positionals) > len(b.positionals):
		return structural(usage.TooManyArguments())
	case len(bound.positionals) < len(b.positionals):
		return structural(usage.MissingArguments())
	}

	var failed []Failure
	for i, spec := range b.positionals {
		if v := bound.positionals[i]; !spec.Fits(v) {
			failed = append(failed, Failure{Spec: spec, Value: v})
		}
	}
	for _, spec := range b.keyed {
		if v, ok := bound.keyed[spec.key]; ok && !spec.Fits(v) {
			failed = append(failed, Failure{Spec: spec, Value: v})
		}
	}
	for _, spec := range b.flags {
		if bound.HasFlag(spec.key) && !spec.Fits(spec.key) {
			failed = append(failed, Failure{Spec: spec, Value: spec.key})
		}
	}

	if len(failed) > 0 {
		e := usage.InvalidValues(len(failed))
		return FitResult{Kind: e.Kind, Reason: e.Message, Failures: failed}
	}
	return FitResult{OK: true}
}

const sectionSeparator = "--------------------------------------------------\n"

// Usage renders the argument sections, or the custom usage text if one was
// declared.
func (b *Binder) Usage() string {
	if b.usage != nil {
		return b.usage(b)
	}

	var sb strings.Builder
	sb.WriteString("\n")
	writeSection(&sb, "Mandatory", b.positionals, len(b.keyed) > 0 || len(b.flags) > 0)
	writeSection(&sb, "Optionals", b.keyed, len(b.flags) > 0)
	writeSection(&sb, "Flags", b.flags, false)
	return sb.String()
}

func writeSection(sb *strings.Builder, title string, specs []Spec, separate bool) {
	if len(specs) == 0 {
		return
	}
	sb.WriteString(title + "\n")
	for _, s := range specs {
		fmt.Fprintln(sb, s.String())
	}
	if separate {
		sb.WriteString(sectionSeparator)
	}
}
