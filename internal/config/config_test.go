package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.App.Port != 38471 {
		t.Errorf("Port = %d", cfg.App.Port)
	}
	if cfg.Recommend.WindowDays != 30 || cfg.Recommend.MaxOfficial != 3 || cfg.Recommend.MaxSpeculative != 3 {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if _, res := NormalizeAndValidate(cfg); !res.OK() {
		t.Errorf("defaults should validate, got %v", res.Errors)
	}
}

func TestEnsureUserConfigAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	p, err := EnsureUserConfig(dir)
	if err != nil {
		t.Fatalf("EnsureUserConfig: %v", err)
	}
	if p != filepath.Join(dir, "config.yml") {
		t.Errorf("path = %q", p)
	}

	if err := os.WriteFile(p, []byte("recommend:\n  max_official: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	again, err := EnsureUserConfig(dir)
	if err != nil || again != p {
		t.Fatalf("second EnsureUserConfig = %q, %v", again, err)
	}

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Recommend.MaxOfficial != 5 {
		t.Errorf("MaxOfficial = %d, want 5", cfg.Recommend.MaxOfficial)
	}
	if cfg.Recommend.MaxSpeculative != 3 || cfg.History.Path != "history.json" {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
}

func TestLoad_Env(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yml")
	_ = os.WriteFile(p, []byte("app:\n  port: 9000\n"), 0o644)
	t.Setenv("JOBHUNT_PORT", "9100")
	t.Setenv("JOBHUNT_SEED", "77")
	t.Setenv("JOBHUNT_DATA_DIR", "/srv/jobhunt")

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Port != 9100 || cfg.Recommend.Seed != 77 || cfg.App.DataDir != "/srv/jobhunt" {
		t.Errorf("env not applied: %+v", cfg)
	}
	if got := cfg.HistoryPath(); got != filepath.Join("/srv/jobhunt", "history.json") {
		t.Errorf("HistoryPath = %q", got)
	}
}

func TestResolve(t *testing.T) {
	cfg := Defaults()
	cfg.App.DataDir = "/data"
	if got := cfg.Resolve(""); got != "" {
		t.Errorf("Resolve(\"\") = %q", got)
	}
	if got := cfg.Resolve("/abs/x.yml"); got != "/abs/x.yml" {
		t.Errorf("absolute = %q", got)
	}
	if got := cfg.Resolve("x.yml"); got != "/data/x.yml" {
		t.Errorf("relative = %q", got)
	}
	if cfg.MaxUploadBytes() != 20<<20 {
		t.Errorf("MaxUploadBytes = %d", cfg.MaxUploadBytes())
	}
}

func TestNormalizeAndValidate(t *testing.T) {
	cfg := Defaults()
	cfg.App.Port = 0
	cfg.Recommend.MaxOfficial = -1
	cfg.Import.Burst = 0
	cfg.Export.Command = []string{" pandoc ", "", "-o", "-"}
	cfg.History.Path = "  h.json "

	out, res := NormalizeAndValidate(cfg)
	if res.OK() {
		t.Fatal("expected errors")
	}
	joined := strings.Join(res.Errors, "\n")
	for _, want := range []string{"app.port", "recommend.max_official", "import.burst"} {
		if !strings.Contains(joined, want) {
			t.Errorf("errors missing %s: %v", want, res.Errors)
		}
	}
	if len(out.Export.Command) != 3 || out.Export.Command[0] != "pandoc" {
		t.Errorf("Command = %q", out.Export.Command)
	}
	if out.History.Path != "h.json" {
		t.Errorf("History.Path = %q", out.History.Path)
	}
}

func TestSaveAtomic(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yml")
	cfg := Defaults()
	cfg.Recommend.WindowDays = 14
	if err := SaveAtomic(p, cfg); err != nil {
		t.Fatalf("SaveAtomic: %v", err)
	}
	cfg.Recommend.WindowDays = 21
	if err := SaveAtomic(p, cfg); err != nil {
		t.Fatalf("SaveAtomic: %v", err)
	}

	got, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Recommend.WindowDays != 21 {
		t.Errorf("WindowDays = %d, want 21", got.Recommend.WindowDays)
	}
	bak, err := Load(p + ".bak")
	if err != nil || bak.Recommend.WindowDays != 14 {
		t.Errorf("backup = %d, %v", bak.Recommend.WindowDays, err)
	}

	cfg.App.Port = -1
	if err := SaveAtomic(p, cfg); err == nil {
		t.Error("invalid config should not save")
	}
}
