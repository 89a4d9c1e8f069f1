package server

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadConfigPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fbx.yaml")
	body := "addr: \":9000\"\nplayer1Name: Alice\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Addr != ":9000" || cfg.Player1Name != "Alice" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	// 未覆盖的字段保留默认值
	if cfg.Player2Name != "Player 2" || cfg.LogFile != "fbx.log" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fbx.yaml")
	if err := os.WriteFile(path, []byte("addr: [:::"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("malformed yaml should error")
	}
}
