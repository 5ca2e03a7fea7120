package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 2.0, cfg.Analysis.StutterMargin)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
}

func TestLoadConfigFile(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test-config-*.yaml")
	require.NoError(t, err)
	defer func() {
		_ = os.Remove(tmpfile.Name())
	}()

	configContent := `
analysis:
  stutter_margin: 3.5

logging:
  level: "debug"
  format: "json"
`
	_, err = tmpfile.Write([]byte(configContent))
	require.NoError(t, err)
	_ = tmpfile.Close()

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)

	assert.Equal(t, 3.5, cfg.Analysis.StutterMargin)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/fpa.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid config",
			config: &Config{
				Analysis: AnalysisConfig{StutterMargin: 2.0},
				Logging: LoggingConfig{
					Level:  "info",
					Format: "text",
					Output: "stderr",
				},
			},
			wantErr: false,
		},
		{
			name: "margin below range",
			config: &Config{
				Analysis: AnalysisConfig{StutterMargin: 0.05},
				Logging: LoggingConfig{
					Level:  "info",
					Format: "text",
					Output: "stderr",
				},
			},
			wantErr: true,
			errMsg:  "analysis config",
		},
		{
			name: "margin at excluded lower bound",
			config: &Config{
				Analysis: AnalysisConfig{StutterMargin: 0.10},
				Logging: LoggingConfig{
					Level:  "info",
					Format: "text",
					Output: "stderr",
				},
			},
			wantErr: true,
			errMsg:  "analysis config",
		},
		{
			name: "invalid log level",
			config: &Config{
				Analysis: AnalysisConfig{StutterMargin: 2.0},
				Logging: LoggingConfig{
					Level:  "loud",
					Format: "text",
					Output: "stderr",
				},
			},
			wantErr: true,
			errMsg:  "invalid log level",
		},
		{
			name: "invalid log format",
			config: &Config{
				Analysis: AnalysisConfig{StutterMargin: 2.0},
				Logging: LoggingConfig{
					Level:  "info",
					Format: "xml",
					Output: "stderr",
				},
			},
			wantErr: true,
			errMsg:  "log format",
		},
		{
			name: "file output needs positive max_size",
			config: &Config{
				Analysis: AnalysisConfig{StutterMargin: 2.0},
				Logging: LoggingConfig{
					Level:   "info",
					Format:  "text",
					Output:  "/var/log/fpa.log",
					MaxSize: 0,
				},
			},
			wantErr: true,
			errMsg:  "max_size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				if err != nil {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
