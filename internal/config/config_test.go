package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoadConfigDefaultsAndFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
jwt:
  secret: file-secret
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "9090")
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want default", cfg.Server.Host)
	}
	if cfg.Mongo.Database != "collegehub" {
		t.Errorf("Mongo.Database = %q, want default", cfg.Mongo.Database)
	}
	if cfg.MongoConnectTimeout() != 5*time.Second {
		t.Errorf("MongoConnectTimeout() = %v, want 5s", cfg.MongoConnectTimeout())
	}
	if cfg.MongoSocketTimeout() != 45*time.Second {
		t.Errorf("MongoSocketTimeout() = %v, want 45s", cfg.MongoSocketTimeout())
	}
	if cfg.JWTExpiration() != 24*time.Hour {
		t.Errorf("JWTExpiration() = %v, want 24h", cfg.JWTExpiration())
	}
	if cfg.ListenAddr() != "0.0.0.0:9090" {
		t.Errorf("ListenAddr() = %q", cfg.ListenAddr())
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: file-secret
`)

	t.Setenv("SERVER_MODE", "production")
	t.Setenv("MONGODB_DATABASE", "collegehub_test")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true after SERVER_MODE override")
	}
	if cfg.Mongo.Database != "collegehub_test" {
		t.Errorf("Mongo.Database = %q, want env override", cfg.Mongo.Database)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("JWT.Secret = %q, want env override", cfg.JWT.Secret)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{
			name:    "missing jwt secret",
			content: "server:\n  port: \"8080\"\n",
		},
		{
			name:    "bad jwt expiration",
			content: "jwt:\n  secret: s\n  expiration: never\n",
		},
		{
			name:    "bad mongo timeout",
			content: "jwt:\n  secret: s\nmongo:\n  connect_timeout: soon\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.content)
			if _, err := LoadConfig(path); err == nil {
				t.Error("LoadConfig() succeeded, want validation error")
			}
		})
	}
}

func TestLoadConfigMissingFileUsesEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-only-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.JWT.Secret != "env-only-secret" {
		t.Errorf("JWT.Secret = %q, want env value", cfg.JWT.Secret)
	}
}
