package cli

import (
	"github.com/takeokunn/sqlindent"
)

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*sqlindent.Config, error) {
	return sqlindent.LoadConfig(configPath)
}
