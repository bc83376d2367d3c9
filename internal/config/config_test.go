package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/leandrodaf/hui/sdk/contracts"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "huimon.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewConfig(t *testing.T) {
	path := writeConfig(t, `
[logger]
log-level = "debug"

[link]
role = "host"
in-port = "HUI In"
out-port = "HUI Out"
ping-interval-ms = 500
ping-timeout-ms = 2000
`)
	cfg, err := NewConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	role, err := cfg.Link.ParseRole()
	if err != nil || role != contracts.RoleHost {
		t.Fatalf("role = %v, %v", role, err)
	}
	level, err := cfg.Logger.ParseLevel()
	if err != nil || level != contracts.DebugLevel {
		t.Fatalf("level = %v, %v", level, err)
	}
	if cfg.Link.InPort != "HUI In" || cfg.Link.OutPort != "HUI Out" {
		t.Fatalf("ports = %q / %q", cfg.Link.InPort, cfg.Link.OutPort)
	}
	if cfg.Link.PingInterval() != 500*time.Millisecond {
		t.Errorf("interval = %v", cfg.Link.PingInterval())
	}
	if cfg.Link.PingTimeout() != 2*time.Second {
		t.Errorf("timeout = %v", cfg.Link.PingTimeout())
	}
}

func TestNewConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
[link]
in-port = "HUI"
out-port = "HUI"
`)
	cfg, err := NewConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role, err := cfg.Link.ParseRole(); err != nil || role != contracts.RoleSurface {
		t.Fatalf("default role = %v, %v", role, err)
	}
	if level, err := cfg.Logger.ParseLevel(); err != nil || level != contracts.InfoLevel {
		t.Fatalf("default level = %v, %v", level, err)
	}
	if cfg.Link.PingInterval() != time.Second {
		t.Errorf("default interval = %v", cfg.Link.PingInterval())
	}
}

func TestParseRoleUnknown(t *testing.T) {
	c := LinkConf{Role: "mixer"}
	if _, err := c.ParseRole(); err == nil {
		t.Fatal("expected error for unknown role")
	}
}
