package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("BROWSE_ROW_LIMIT", "")

	conf := LoadConfig()

	assert.Equal(t, ":2222", conf.ListenAddr)
	assert.Equal(t, 200, conf.BrowseRowLimit)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":8000")
	t.Setenv("BROWSE_ROW_LIMIT", "50")

	conf := LoadConfig()

	assert.Equal(t, ":8000", conf.ListenAddr)
	assert.Equal(t, 50, conf.BrowseRowLimit)
}

func TestLoadConfig_InvalidLimitFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "abc"},
		{"zero", "0"},
		{"negative", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LISTEN_ADDR", "")
			t.Setenv("BROWSE_ROW_LIMIT", tt.value)

			conf := LoadConfig()

			assert.Equal(t, 200, conf.BrowseRowLimit)
		})
	}
}
