// Package config reads and edits the key=value settings file. Keys not set
// in the file fall back to the defaults declared in domain.ConfigKeys.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/footprint-tools/repl/internal/domain"
)

// Provider reads and writes one config file and implements
// domain.ConfigProvider.
type Provider struct {
	path string
}

// NewProvider creates a provider for the file at path. The file need not
// exist.
func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// Path returns the file the provider reads.
func (p *Provider) Path() string { return p.path }

func (p *Provider) load() (map[string]string, error) {
	lines, err := ReadLines(p.path)
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}

// Get returns the value for key from the file, else its default. An
// unreadable file falls back to defaults.
func (p *Provider) Get(key string) (string, bool) {
	if cfg, err := p.load(); err == nil {
		if v, ok := cfg[key]; ok {
			return v, true
		}
	}
	if k, ok := domain.ConfigKeyByName(key); ok {
		return k.Default, true
	}
	return "", false
}

// GetAll returns the defaults overlaid with the file's values. Unknown
// keys in the file are kept.
func (p *Provider) GetAll() (map[string]string, error) {
	result := make(map[string]string, len(domain.ConfigKeys))
	for _, k := range domain.ConfigKeys {
		result[k.Name] = k.Default
	}

	cfg, err := p.load()
	if err != nil {
		return result, err
	}
	for k, v := range cfg {
		result[k] = v
	}
	return result, nil
}

// Set stores value under key. A new file starts from DefaultLines.
func (p *Provider) Set(key, value string) error {
	return WithLock(p.path, func() error {
		lines, err := ReadLines(p.path)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			lines = DefaultLines()
		}

		lines, _ = Set(lines, key, value)
		return WriteLines(p.path, lines)
	})
}

// Unset removes key from the file. It reports whether the key was set.
func (p *Provider) Unset(key string) (bool, error) {
	var removed bool
	err := WithLock(p.path, func() error {
		lines, err := ReadLines(p.path)
		if err != nil {
			return err
		}

		lines, removed = Unset(lines, key)
		if !removed {
			return nil
		}
		return WriteLines(p.path, lines)
	})
	return removed, err
}

// Bool reads key as a boolean.
func Bool(p domain.ConfigProvider, key string) (bool, error) {
	v, _ := p.Get(key)
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("config: %s: %q is not a boolean", key, v)
	}
	return b, nil
}

// List reads key as a comma separated list, dropping empty items.
func List(p domain.ConfigProvider, key string) []string {
	v, _ := p.Get(key)

	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

var _ domain.ConfigProvider = (*Provider)(nil)
