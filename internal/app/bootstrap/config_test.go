package bootstrap

import (
	"strings"
	"testing"
)

func TestLoadConfig_MissingURI(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGODB_DB", "")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("expected error when MONGODB_URI is unset")
	}
	if !strings.Contains(err.Error(), "MONGODB_URI") {
		t.Errorf("error should name the missing variable, got %q", err)
	}
}

func TestLoadConfig_DefaultDatabase(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("MONGODB_DB", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.MongoDatabase != "attendance" {
		t.Errorf("MongoDatabase: got %q, want default %q", cfg.MongoDatabase, "attendance")
	}
}

func TestLoadConfig_ExplicitDatabase(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("MONGODB_DB", "inst346_attendance")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.MongoDatabase != "inst346_attendance" {
		t.Errorf("MongoDatabase: got %q", cfg.MongoDatabase)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI: got %q", cfg.MongoURI)
	}
}
