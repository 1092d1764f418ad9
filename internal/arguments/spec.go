package arguments

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind tells how an argument is identified in the input.
type Kind int

const (
	Positional Kind = iota // identified by its ordinal position
	Keyed                  // "key value" pair
	Flag                   // presence of the key token alone
)

func (k Kind) String() string {
	switch k {
	case Positional:
		return "positional"
	case Keyed:
		return "keyed"
	case Flag:
		return "flag"
	default:
		return "unknown"
	}
}

// ArgSpec declares one accepted argument. Key is ignored for positionals,
// whose identity is their declaration index.
//
// Pattern and Allowed select the validator. When both are set Pattern wins;
// when neither is set any value is accepted.
type ArgSpec struct {
	Key         string
	Description string
	Pattern     string
	Allowed     []string
	IgnoreCase  bool
}

// Spec is a compiled ArgSpec. It is immutable once built.
type Spec struct {
	kind        Kind
	index       int
	key         string
	description string
	validator   Validator
}

func newSpec(kind Kind, index int, decl ArgSpec) (Spec, error) {
	if kind != Positional && decl.Key == "" {
		return Spec{}, fmt.Errorf("%s argument %d has no key", kind, index)
	}

	v, err := NewValidator(decl.Pattern, decl.Allowed, decl.IgnoreCase)
	if err != nil {
		return Spec{}, fmt.Errorf("%s argument %q: %w", kind, decl.Key, err)
	}

	s := Spec{
		kind:        kind,
		index:       index,
		description: decl.Description,
		validator:   v,
	}
	if kind == Positional {
		s.key = strconv.Itoa(index)
	} else {
		s.key = decl.Key
	}
	return s, nil
}

// Kind returns how the argument is identified.
func (s Spec) Kind() Kind { return s.kind }

// Index returns the declaration index. For positionals this is the input
// position the value must occupy.
func (s Spec) Index() int { return s.index }

// Key returns the literal token for keyed and flag arguments, or the
// decimal position for positionals.
func (s Spec) Key() string { return s.key }

// Description returns the human readable description.
func (s Spec) Description() string { return s.description }

// Validator returns the value policy.
func (s Spec) Validator() Validator { return s.validator }

// Fits reports whether value satisfies the spec's validator.
func (s Spec) Fits(value string) bool { return s.validator.Fits(value) }

// Equal compares identity only. Positionals are equal when their indices
// match; keyed and flag specs when their keys match.
func (s Spec) Equal(other Spec) bool {
	if (s.kind == Positional) != (other.kind == Positional) {
		return false
	}
	if s.kind == Positional {
		return s.index == other.index
	}
	return s.key == other.key
}

// String renders the spec as a usage line.
func (s Spec) String() string {
	return s.key + "\t" + s.description + s.validator.String()
}

// Validator is the value policy of a spec: accept anything, match a regular
// expression, or belong to an enumerated set.
type Validator struct {
	pattern    *regexp.Regexp
	allowed    []string
	lookup     map[string]struct{}
	ignoreCase bool
}

// NewValidator compiles a validator. A blank pattern means no pattern.
// Patterns are matched anywhere in the value unless they carry anchors.
func NewValidator(pattern string, allowed []string, ignoreCase bool) (Validator, error) {
	var v Validator

	if strings.TrimSpace(pattern) != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return Validator{}, fmt.Errorf("compile pattern: %w", err)
		}
		v.pattern = re
	}

	if len(allowed) > 0 {
		v.allowed = append([]string(nil), allowed...)
		v.ignoreCase = ignoreCase
		v.lookup = make(map[string]struct{}, len(allowed))
		for _, a := range allowed {
			if ignoreCase {
				a = strings.ToLower(a)
			}
			v.lookup[a] = struct{}{}
		}
	}

	return v, nil
}

// Fits reports whether value is accepted.
func (v Validator) Fits(value string) bool {
	switch {
	case v.pattern != nil:
		return v.pattern.MatchString(value)
	case v.lookup != nil:
		if v.ignoreCase {
			value = strings.ToLower(value)
		}
		_, ok := v.lookup[value]
		return ok
	default:
		return true
	}
}

// Pattern returns the source of the regular expression, or "".
func (v Validator) Pattern() string {
	if v.pattern == nil {
		return ""
	}
	return v.pattern.String()
}

// Allowed returns the enumerated values in declaration order.
func (v Validator) Allowed() []string {
	return append([]string(nil), v.allowed...)
}

// String renders the policy suffix used in usage lines.
func (v Validator) String() string {
	switch {
	case v.allowed != nil && v.pattern == nil:
		return " [" + strings.Join(v.allowed, ", ") + "] "
	case v.pattern != nil:
		return ` r["` + v.pattern.String() + `"] `
	default:
		return ""
	}
}
