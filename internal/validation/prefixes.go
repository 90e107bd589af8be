package validation

import (
	"encoding/json"
	"fmt"
	"os"
)

// MobileNetwork pairs a carrier name with the dialing prefixes it owns.
type MobileNetwork struct {
	Network  string   `json:"network"`
	Prefixes []string `json:"prefixes"`
}

type prefixFile struct {
	Mobile []MobileNetwork `json:"mobile"`
}

// PrefixTable maps phone-number prefixes to carrier networks. It is loaded
// once at startup and immutable afterwards; inject it wherever phone
// validation is needed instead of reaching for global state.
type PrefixTable struct {
	networks []MobileNetwork
	byPrefix map[string]string
}

// LoadPrefixTable reads the static prefix mapping from the given JSON file.
// A missing or malformed file is a configuration error and should be treated
// as fatal by the caller.
func LoadPrefixTable(path string) (*PrefixTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mobile prefix source %s: %w", path, err)
	}

	var parsed prefixFile
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse mobile prefix source %s: %w", path, err)
	}
	if len(parsed.Mobile) == 0 {
		return nil, fmt.Errorf("mobile prefix source %s: no networks configured", path)
	}

	return NewPrefixTable(parsed.Mobile), nil
}

// NewPrefixTable builds a table from an in-memory network list. Tests use
// this to avoid touching the filesystem.
func NewPrefixTable(networks []MobileNetwork) *PrefixTable {
	byPrefix := make(map[string]string)
	for _, n := range networks {
		for _, p := range n.Prefixes {
			if _, taken := byPrefix[p]; !taken {
				byPrefix[p] = n.Network
			}
		}
	}
	return &PrefixTable{networks: networks, byPrefix: byPrefix}
}

// Resolve returns the network owning the given prefix.
func (t *PrefixTable) Resolve(prefix string) (string, bool) {
	network, ok := t.byPrefix[prefix]
	return network, ok
}

// Networks returns the configured carrier list.
func (t *PrefixTable) Networks() []MobileNetwork {
	return t.networks
}
