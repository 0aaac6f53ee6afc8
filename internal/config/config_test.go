package config

import (
	"os"
	"testing"
)

func unsetEnv() {
	_ = os.Unsetenv("YOUSPACE_HTTP_PORT")
	_ = os.Unsetenv("YOUSPACE_DB_DRIVER")
	_ = os.Unsetenv("YOUSPACE_POSTGRES_DSN")
	_ = os.Unsetenv("YOUSPACE_SQLITE_PATH")
	_ = os.Unsetenv("YOUSPACE_STORY_MODEL")
	_ = os.Unsetenv("YOUSPACE_GENERATION_TIMEOUT_SECONDS")
}

func TestConfigLoad_Defaults(t *testing.T) {
	unsetEnv()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 8080 || cfg.DBDriver != "memory" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.StoryModel != "gpt-4o-mini" || cfg.CaptionModel != "glm-4v" {
		t.Fatalf("unexpected model defaults: %+v", cfg)
	}
	if cfg.GenerationTimeoutSeconds != 30 {
		t.Fatalf("unexpected default generation timeout: %d", cfg.GenerationTimeoutSeconds)
	}
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	unsetEnv()
	_ = os.Setenv("YOUSPACE_HTTP_PORT", "9090")
	_ = os.Setenv("YOUSPACE_STORY_MODEL", "test-model")
	defer unsetEnv()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 9090 {
		t.Fatalf("port env override failed, got %d", cfg.HTTPPort)
	}
	if cfg.StoryModel != "test-model" {
		t.Fatalf("story model env override failed, got %s", cfg.StoryModel)
	}
}

func TestResolveDefaults_PostgresRequiresDSN(t *testing.T) {
	unsetEnv()
	_ = os.Setenv("YOUSPACE_DB_DRIVER", "postgres")
	defer unsetEnv()

	if _, err := New(); err == nil {
		t.Fatal("expected error for postgres driver without DSN")
	}

	_ = os.Setenv("YOUSPACE_POSTGRES_DSN", "postgres://localhost:5432/youspace")
	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.DBDriver != "postgres" {
		t.Fatalf("unexpected driver: %s", cfg.DBDriver)
	}
}

func TestResolveDefaults_UnknownDriver(t *testing.T) {
	unsetEnv()
	_ = os.Setenv("YOUSPACE_DB_DRIVER", "cassandra")
	defer unsetEnv()

	if _, err := New(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestResolveDefaults_TimeoutMustBePositive(t *testing.T) {
	unsetEnv()
	_ = os.Setenv("YOUSPACE_GENERATION_TIMEOUT_SECONDS", "0")
	defer unsetEnv()

	if _, err := New(); err == nil {
		t.Fatal("expected error for non-positive generation timeout")
	}
}

func TestGetHTTPAddr(t *testing.T) {
	cfg := NewForTesting()
	if got := cfg.GetHTTPAddr(); got != ":8080" {
		t.Fatalf("unexpected addr: %s", got)
	}
}
