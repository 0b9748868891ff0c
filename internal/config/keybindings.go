package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// KeybindingsVersion is the only keybindings file layout understood.
const KeybindingsVersion = 1

type keybindingsFile struct {
	Version  int                 `toml:"version"`
	Bindings map[string][]string `toml:"bindings"`
}

// LoadKeybindings reads action -> keys overrides from path. A missing file
// yields no overrides.
func LoadKeybindings(path string) (map[string][]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "read keybindings")
	}
	return ParseKeybindings(data)
}

// ParseKeybindings decodes a keybindings file. Action names are lowercased and
// empty key lists dropped; whether an action exists is up to the caller.
func ParseKeybindings(data []byte) (map[string][]string, error) {
	var f keybindingsFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, errors.Wrap(err, "parse keybindings.toml")
	}
	if f.Version != KeybindingsVersion {
		return nil, errors.Errorf("keybindings.toml: unsupported version %d", f.Version)
	}
	out := make(map[string][]string, len(f.Bindings))
	for action, keys := range f.Bindings {
		var clean []string
		for _, k := range keys {
			if k = strings.TrimSpace(k); k != "" {
				clean = append(clean, k)
			}
		}
		if len(clean) == 0 {
			continue
		}
		out[strings.ToLower(strings.TrimSpace(action))] = clean
	}
	return out, nil
}
