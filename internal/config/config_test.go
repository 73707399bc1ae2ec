package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Provider != ProviderGemini || cfg.Gemini.Auth != GeminiAuthAPIKey {
		t.Fatalf("unexpected provider defaults: %+v", cfg)
	}
	if cfg.Gemini.Endpoint != DefaultGeminiEndpoint {
		t.Fatalf("unexpected endpoint %q", cfg.Gemini.Endpoint)
	}
	if cfg.RequestTimeout != 60*time.Second {
		t.Fatalf("want 60s timeout, got %s", cfg.RequestTimeout)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"http://localhost:5173"}) {
		t.Fatalf("unexpected origins %v", cfg.AllowedOrigins)
	}
	if cfg.HistoryFilePath != "history.json" || cfg.Speech.Enabled {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test; http://b.test")
	t.Setenv("REQUEST_TIMEOUT", "30s")
	t.Setenv("HISTORY_FILE_PATH", "/tmp/h.json")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Gemini.APIKey != "secret" {
		t.Fatalf("api key not read from env")
	}
	if cfg.Provider != ProviderOpenAI {
		t.Fatalf("provider should be normalized, got %q", cfg.Provider)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Fatalf("unexpected origins %v", cfg.AllowedOrigins)
	}
	if cfg.RequestTimeout != 30*time.Second || cfg.HistoryFilePath != "/tmp/h.json" {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("BIND_ADDR", "0.0.0.0:9000")
	cfg, err := Load([]string{"-bind-addr", "127.0.0.1:7000", "-llm-provider", "stub", "-debug-mode"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BindAddr != "127.0.0.1:7000" || cfg.Provider != ProviderStub || !cfg.DebugMode {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := [][]string{
		{"-llm-provider", "llama"},
		{"-gemini-auth", "oauth"},
		{"-request-timeout", "0s"},
		{"-no-such-flag"},
	}
	for _, args := range cases {
		if _, err := Load(args); err == nil {
			t.Errorf("args %v: expected error", args)
		}
	}
}

func TestLoad_SpeechCredentials(t *testing.T) {
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", filepath.Join(t.TempDir(), "missing.json"))
	if _, err := Load([]string{"-speech-enabled"}); err == nil {
		t.Fatal("expected error for missing credentials file")
	}

	cred := filepath.Join(t.TempDir(), "sa.json")
	if err := os.WriteFile(cred, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", cred)
	cfg, err := Load([]string{"-speech-enabled"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Speech.Enabled || cfg.Speech.CredentialsPath != cred {
		t.Fatalf("unexpected speech config: %+v", cfg.Speech)
	}
}
