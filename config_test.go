package sqlindent

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/takeokunn/sqlindent/formatter"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sqlindent.yaml")
	err := os.WriteFile(path, []byte(content), 0o644)
	assert.NoError(t, err)

	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	assert.NoError(t, err)
	assert.Equal(t, "basic", config.Style)
	assert.Zero(t, config.Uppercase)
}

func TestLoadConfigValid(t *testing.T) {
	path := writeConfig(t, "style: aligned\nuppercase: false\n")

	config, err := LoadConfig(path)

	assert.NoError(t, err)
	assert.Equal(t, "aligned", config.Style)
	assert.NotZero(t, config.Uppercase)
	assert.False(t, *config.Uppercase)
}

func TestLoadConfigInvalidStyle(t *testing.T) {
	path := writeConfig(t, "style: fancy\n")

	_, err := LoadConfig(path)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigValidation))
}

func TestLoadConfigUnknownField(t *testing.T) {
	// strict parsing rejects fields we do not know about
	path := writeConfig(t, "style: basic\ncolor: red\n")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigEnvExpansion(t *testing.T) {
	t.Setenv("SQLINDENT_STYLE", "dataops")

	path := writeConfig(t, "style: ${SQLINDENT_STYLE}\n")

	config, err := LoadConfig(path)

	assert.NoError(t, err)
	assert.Equal(t, "dataops", config.Style)
}

func TestConfigOptions(t *testing.T) {
	falseVal := false

	tests := []struct {
		name     string
		config   Config
		expected formatter.Options
	}{
		{
			name:     "empty config keeps defaults",
			config:   Config{},
			expected: formatter.Options{Uppercase: true, Style: formatter.StyleBasic},
		},
		{
			name:     "style override",
			config:   Config{Style: "compact"},
			expected: formatter.Options{Uppercase: true, Style: formatter.StyleCompact},
		},
		{
			name:     "uppercase override",
			config:   Config{Style: "aligned", Uppercase: &falseVal},
			expected: formatter.Options{Uppercase: false, Style: formatter.StyleAligned},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.Options())
		})
	}
}
