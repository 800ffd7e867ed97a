package config

import (
	"os"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GOOGLE_API_KEY", "GEMINI_API_KEY", "MINUTES_MODEL", "MINUTES_ADDR", "MINUTES_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "explicit values",
			config: Config{
				Gemini:   GeminiConfig{Model: "gemini-2.0-flash", APIKey: "k"},
				Chunking: ChunkingConfig{MaxLength: 2000},
				Server:   ServerConfig{Addr: ":9000", MaxUploadBytes: 1024},
			},
			wantErr: false,
		},
		{
			name:    "negative max length",
			config:  Config{Chunking: ChunkingConfig{MaxLength: -1}},
			wantErr: true,
		},
		{
			name:    "negative upload limit",
			config:  Config{Server: ServerConfig{MaxUploadBytes: -5}},
			wantErr: true,
		},
		{
			name:    "unknown log format",
			config:  Config{Logging: LoggingConfig{Format: "xml"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	if cfg.Gemini.Model != DefaultModel {
		t.Errorf("Model = %v, want %v", cfg.Gemini.Model, DefaultModel)
	}
	if cfg.Chunking.MaxLength != 4000 {
		t.Errorf("MaxLength = %v, want 4000", cfg.Chunking.MaxLength)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %v, want :8080", cfg.Server.Addr)
	}
	if cfg.Paths.Archived != "data/archived" {
		t.Errorf("Archived = %v, want data/archived", cfg.Paths.Archived)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %v, want info", cfg.Logging.Level)
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
gemini:
  model: "gemini-2.0-flash"
  api_key: "from-file"

chunking:
  max_length: 1500

server:
  addr: ":9090"

paths:
  input: "in"
  output: "out"

export:
  docx: true

logging:
  level: "debug"
  format: "json"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("Model = %v, want %v", cfg.Gemini.Model, "gemini-2.0-flash")
	}
	if cfg.Gemini.APIKey != "from-file" {
		t.Errorf("APIKey = %v, want %v", cfg.Gemini.APIKey, "from-file")
	}
	if cfg.Chunking.MaxLength != 1500 {
		t.Errorf("MaxLength = %v, want %v", cfg.Chunking.MaxLength, 1500)
	}
	if cfg.Paths.Input != "in" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "in")
	}
	if !cfg.Export.Docx {
		t.Error("Export.Docx = false, want true")
	}
	if cfg.Server.MaxUploadBytes != DefaultMaxUploadBytes {
		t.Errorf("MaxUploadBytes = %v, want default", cfg.Server.MaxUploadBytes)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "env-key")
	t.Setenv("MINUTES_MODEL", "gemini-env")
	t.Setenv("MINUTES_ADDR", ":7000")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Gemini.APIKey != "env-key" {
		t.Errorf("APIKey = %v, want env-key", cfg.Gemini.APIKey)
	}
	if cfg.Gemini.Model != "gemini-env" {
		t.Errorf("Model = %v, want gemini-env", cfg.Gemini.Model)
	}
	if cfg.Server.Addr != ":7000" {
		t.Errorf("Addr = %v, want :7000", cfg.Server.Addr)
	}
}

func TestLoadGeminiKeyFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Gemini.APIKey != "gemini-key" {
		t.Errorf("APIKey = %v, want gemini-key", cfg.Gemini.APIKey)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
