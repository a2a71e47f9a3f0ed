package sessions

import (
	"path/filepath"
	"strings"

	textsource "github.com/bnema/cgx-claimer/internal/adapters/sessions/text"
	tomlsource "github.com/bnema/cgx-claimer/internal/adapters/sessions/toml"
	yamlsource "github.com/bnema/cgx-claimer/internal/adapters/sessions/yaml"
	"github.com/bnema/cgx-claimer/internal/ports"
)

// NewSource picks the credential file format from the path extension. Any
// extension other than .yaml, .yml and .toml is read as one token per line.
func NewSource(path string) ports.SessionSource {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlsource.NewSource(path)
	case ".toml":
		return tomlsource.NewSource(path)
	default:
		return textsource.NewSource(path)
	}
}
