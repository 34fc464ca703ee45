// Package config decodes server options from the client's
// initializationOptions.
package config

import (
	"encoding/json"
	"fmt"

	"github.com/devopstoday11/tremor-language-server/internal/text"
)

type Config struct {
	// ColumnUnit selects how position columns are counted: "utf-16" (the
	// protocol default), "rune", or "grapheme".
	ColumnUnit string `json:"column_unit"`

	// RetainOnClose keeps a document's text in the store after the client
	// closes it, so late queries against the document still resolve.
	RetainOnClose bool `json:"retain_on_close"`
}

var defaultConfig = Config{
	ColumnUnit:    "utf-16",
	RetainOnClose: false,
}

// Load overlays fields present in v onto the defaults. v is the decoded
// initializationOptions value, typically a map.
func Load(v any) (Config, error) {
	cfg := defaultConfig
	if v == nil {
		return cfg, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return Config{}, fmt.Errorf("failed to marshal source: %w", err)
	}

	// only fields present in src will overwrite.
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal into Config: %w", err)
	}

	return cfg, nil
}

// Unit maps the configured column unit name onto the mapper's unit.
func (c Config) Unit() (text.ColumnUnit, error) {
	switch c.ColumnUnit {
	case "", "utf-16":
		return text.ColumnUnitUTF16, nil
	case "rune":
		return text.ColumnUnitRune, nil
	case "grapheme":
		return text.ColumnUnitGrapheme, nil
	default:
		return 0, fmt.Errorf("unknown column unit %q", c.ColumnUnit)
	}
}
