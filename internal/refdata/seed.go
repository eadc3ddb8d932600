package refdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed seed.json
var seedJSON []byte

// Load parses the embedded corpus, validates table keys and links child
// records onto their elements.
func Load() (*Dataset, error) {
	var d Dataset
	if err := json.Unmarshal(seedJSON, &d); err != nil {
		return nil, fmt.Errorf("parse seed corpus: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("validate seed corpus: %w", err)
	}
	if err := d.Link(); err != nil {
		return nil, fmt.Errorf("link seed corpus: %w", err)
	}
	return &d, nil
}
