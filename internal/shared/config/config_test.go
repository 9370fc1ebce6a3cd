package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "CORS_ALLOW_ORIGINS", "OBJECT_STORE", "LOCAL_STORE_DIR",
		"LLM_PROVIDER", "LLM_MODEL", "SKILLS_MODEL", "CONTENT_LIBRARY_PATH",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected default env dev, got %q", cfg.Env)
	}
	if cfg.ObjectStoreType != "local" {
		t.Fatalf("expected local store by default, got %q", cfg.ObjectStoreType)
	}
	if cfg.LLMModel != "gpt-3.5-turbo" || cfg.SkillsModel != "gpt-4" {
		t.Fatalf("unexpected default models %q %q", cfg.LLMModel, cfg.SkillsModel)
	}
	if cfg.ContentLibraryPath != "./content/library.json" {
		t.Fatalf("unexpected default library path %q", cfg.ContentLibraryPath)
	}
}

func TestLoadNormalizesValues(t *testing.T) {
	t.Setenv("ENV", " PROD ")
	t.Setenv("OBJECT_STORE", "S3")
	t.Setenv("LLM_PROVIDER", " OpenAI ")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.example, http://b.example ,,")

	cfg := Load()

	if cfg.Env != "production" {
		t.Fatalf("expected production, got %q", cfg.Env)
	}
	if cfg.ObjectStoreType != "s3" {
		t.Fatalf("expected s3, got %q", cfg.ObjectStoreType)
	}
	if cfg.LLMProvider != "openai" {
		t.Fatalf("expected openai, got %q", cfg.LLMProvider)
	}
	want := []string{"http://a.example", "http://b.example"}
	if !reflect.DeepEqual(cfg.CORSAllowOrigin, want) {
		t.Fatalf("expected %v, got %v", want, cfg.CORSAllowOrigin)
	}
}

func TestLoadUnknownStoreTypeFallsBackToLocal(t *testing.T) {
	t.Setenv("OBJECT_STORE", "gcs")
	cfg := Load()
	if cfg.ObjectStoreType != "local" {
		t.Fatalf("expected local fallback, got %q", cfg.ObjectStoreType)
	}
}
