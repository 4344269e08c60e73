package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCalcConfig_MissingFile(t *testing.T) {
	config := LoadCalcConfig(filepath.Join(t.TempDir(), "calc_conf.json"))

	assert.Equal(t, float64(DefaultStandardPrice), config.StandardPrice)
	assert.Empty(t, config.Configs)
	assert.NotNil(t, config.Configs, "fallback should be an empty list, not nil")
}

func TestLoadCalcConfig_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc_conf.json")
	require.NoError(t, os.WriteFile(path, []byte("{standard_price:"), 0o644))

	config := LoadCalcConfig(path)

	assert.Equal(t, float64(DefaultStandardPrice), config.StandardPrice)
	assert.Empty(t, config.Configs)
}

func TestLoadCalcConfig_ValidFile(t *testing.T) {
	content := `{
    "standard_price": 5385,
    "configs": [
        {"name": "A", "float_a": 0.05, "weight_b": 0.6, "float_c3": 0.02},
        {"name": "B", "float_a": 0.04, "weight_b": 0.5, "float_c3": 0.01}
    ]
}`
	path := filepath.Join(t.TempDir(), "calc_conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config := LoadCalcConfig(path)

	assert.Equal(t, float64(5385), config.StandardPrice)
	require.Len(t, config.Configs, 2)
	assert.Equal(t, "A", config.Configs[0].Name)
	assert.Equal(t, 0.05, config.Configs[0].FloatA)
	assert.Equal(t, 0.6, config.Configs[0].WeightB)
	assert.Equal(t, 0.02, config.Configs[0].FloatC3)
	assert.Equal(t, "B", config.Configs[1].Name)
}

func TestLoadCalcConfig_MissingStandardPrice(t *testing.T) {
	content := `{"configs": [{"name": "A", "float_a": 0.05, "weight_b": 0.6, "float_c3": 0.02}]}`
	path := filepath.Join(t.TempDir(), "calc_conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config := LoadCalcConfig(path)

	assert.Equal(t, float64(DefaultStandardPrice), config.StandardPrice, "standard price should default")
	assert.Len(t, config.Configs, 1)
}

func TestAppConfig_Validate(t *testing.T) {
	config := AppConfig{
		Logger: LoggerConfig{Level: "info"},
		Server: ServerConfig{Address: ":8080"},
	}

	require.NoError(t, config.Validate())
	assert.Equal(t, "calc_conf.json", config.Scoring.Config, "scoring config path should default")
	assert.Equal(t, "result.json", config.Storage.Result, "result log path should default")
	assert.Equal(t, 100, config.Journal.Size)
	assert.Equal(t, 20, config.Journal.Amount)
}

func TestAppConfig_Validate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		config AppConfig
	}{
		{"missing logger level", AppConfig{Server: ServerConfig{Address: ":8080"}}},
		{"unsupported logger level", AppConfig{Logger: LoggerConfig{Level: "trace"}, Server: ServerConfig{Address: ":8080"}}},
		{"missing server address", AppConfig{Logger: LoggerConfig{Level: "info"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.config.Validate())
		})
	}
}
