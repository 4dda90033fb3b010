package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := []byte(`
url: https://example.com/post
llm:
  base: http://localhost:8080/v1
  model: local-model
analysis:
  topKeywords: 10
  includeSuggestions: true
  evalTimeout: 30s
log:
  file: seoscope.log
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fc.URL != "https://example.com/post" || fc.LLM.Model != "local-model" {
		t.Fatalf("unexpected config %+v", fc)
	}
	if fc.Analysis.TopKeywords != 10 || fc.Analysis.EvalTimeout != "30s" {
		t.Fatalf("unexpected analysis section %+v", fc.Analysis)
	}
	if fc.Analysis.IncludeSuggestions == nil || !*fc.Analysis.IncludeSuggestions {
		t.Fatal("expected includeSuggestions true")
	}

	var cfg Config
	ApplyFileConfig(&cfg, fc)
	if cfg.EvalTimeout != 30*time.Second {
		t.Fatalf("expected parsed eval timeout, got %v", cfg.EvalTimeout)
	}
	if cfg.LogFile != "seoscope.log" {
		t.Fatalf("unexpected log file %q", cfg.LogFile)
	}
}

func TestApplyFileConfig_FlagsWin(t *testing.T) {
	cfg := Config{URL: "https://flag.example.com", LLMModel: "flag-model"}
	var fc FileConfig
	fc.URL = "https://file.example.com"
	fc.LLM.Model = "file-model"
	fc.Log.File = "file.log"

	ApplyFileConfig(&cfg, fc)
	if cfg.URL != "https://flag.example.com" {
		t.Fatalf("flag url overwritten: %q", cfg.URL)
	}
	if cfg.LLMModel != "flag-model" {
		t.Fatalf("flag model overwritten: %q", cfg.LLMModel)
	}
	if cfg.LogFile != "file.log" {
		t.Fatalf("unset field not filled: %q", cfg.LogFile)
	}
}

func TestValidateConfig(t *testing.T) {
	ok := Config{URL: "https://example.com", LLMModel: "m"}
	if err := ValidateConfig(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateConfig(Config{LLMModel: "m"}); err == nil {
		t.Fatal("expected error for missing url")
	}
	if err := ValidateConfig(Config{URL: "https://example.com"}); err == nil {
		t.Fatal("expected error for missing model")
	}
	bad := ok
	bad.TopKeywords = -1
	if err := ValidateConfig(bad); err == nil {
		t.Fatal("expected error for negative keyword limit")
	}
}
