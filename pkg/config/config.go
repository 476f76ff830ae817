package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tetrus/pkg/errors"
	"github.com/matzehuels/tetrus/pkg/game"
)

const (
	appName  = "tetrus"
	fileName = "config.toml"

	// DefaultFallInterval is the automatic descent period.
	DefaultFallInterval = 500 * time.Millisecond
)

// Duration is a time.Duration that reads and writes as "500ms" in TOML.
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// KeyBindings maps action names (see game.Action.String) to key names.
type KeyBindings map[string][]string

// Config holds every user-facing setting.
type Config struct {
	Columns      int         `toml:"columns"`
	Rows         int         `toml:"rows"`
	FallInterval Duration    `toml:"fall_interval"`
	Seed         uint64      `toml:"seed"`
	Sound        bool        `toml:"sound"`
	LogFile      string      `toml:"log_file"`
	Keys         KeyBindings `toml:"keys"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Columns:      game.DefaultColumns,
		Rows:         game.DefaultRows,
		FallInterval: Duration(DefaultFallInterval),
		Keys:         DefaultKeys(),
	}
}

// DefaultKeys returns the built-in key bindings.
func DefaultKeys() KeyBindings {
	return KeyBindings{
		game.Left.String():      {"left", "h"},
		game.Right.String():     {"right", "l"},
		game.Down.String():      {"down", "j"},
		game.RotateCW.String():  {"up", "x", "k"},
		game.RotateCCW.String(): {"z"},
		game.HardDrop.String():  {" ", "space"},
		game.Pause.String():     {"p"},
		game.Quit.String():      {"esc", "q", "ctrl+c"},
	}
}

// Interval returns the fall interval as a time.Duration.
func (c Config) Interval() time.Duration { return time.Duration(c.FallInterval) }

// DefaultPath returns the config file location using the XDG convention.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the file at path on top of the defaults and validates the
// result. An empty path means DefaultPath. A missing file yields the
// defaults unless the path was given explicitly.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := Decode(data, &cfg); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML into cfg, keeping cfg's values for absent keys. Key
// bindings listed in the file replace the defaults per action. The result
// is validated.
func Decode(data []byte, cfg *Config) error {
	defaults := cfg.Keys
	cfg.Keys = nil

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}

	merged := make(KeyBindings, len(defaults))
	for action, keys := range defaults {
		merged[action] = keys
	}
	for action, keys := range cfg.Keys {
		merged[action] = keys
	}
	cfg.Keys = merged

	return cfg.Validate()
}

// Encode writes cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return buf.Bytes(), nil
}

// WriteFile writes cfg to path, creating parent directories. It refuses to
// replace an existing file unless force is set.
func WriteFile(path string, cfg Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrCodeFileExists, "config file already exists: %s", path)
		}
	}
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks dimensions, the fall interval and key bindings.
func (c Config) Validate() error {
	if err := errors.ValidateDimensions(c.Columns, c.Rows); err != nil {
		return err
	}
	if err := errors.ValidateFallInterval(c.Interval()); err != nil {
		return err
	}
	_, err := c.Keys.Resolve()
	return err
}

// Resolve builds a key-to-action table. Every action needs at least one
// key and no key may be bound twice.
func (kb KeyBindings) Resolve() (map[string]game.Action, error) {
	table := make(map[string]game.Action)

	names := make([]string, 0, len(kb))
	for name := range kb {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, err := game.ParseAction(name)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidKeyBinding, err, "keys.%s", name)
		}
		for _, key := range kb[name] {
			if err := errors.ValidateKeyName(key); err != nil {
				return nil, err
			}
			if prev, dup := table[key]; dup {
				return nil, errors.New(errors.ErrCodeInvalidKeyBinding, "key %q bound to both %s and %s", key, prev, action)
			}
			table[key] = action
		}
	}

	for _, action := range game.Actions {
		if len(kb[action.String()]) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidKeyBinding, "no key bound to %s", action)
		}
	}
	return table, nil
}

// Lookup returns the action bound to key, or game.None.
func (kb KeyBindings) Lookup(key string) game.Action {
	for name, keys := range kb {
		for _, k := range keys {
			if k == key {
				if a, err := game.ParseAction(name); err == nil {
					return a
				}
			}
		}
	}
	return game.None
}
