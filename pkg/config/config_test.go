package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Port  int    `yaml:"port"`
	Debug bool   `yaml:"debug"`
}

type checked struct {
	Name string `yaml:"name"`
}

func (c *checked) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func TestDecode_KeepsDefaults(t *testing.T) {
	cfg := sample{Name: "default", Port: 80}
	if err := Decode([]byte("port: 8080\n"), &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "default" || cfg.Port != 8080 {
		t.Errorf("got %+v", cfg)
	}
}

func TestDecode_ExpandsEnv(t *testing.T) {
	t.Setenv("CONFIG_TEST_NAME", "folio")
	var cfg sample
	if err := Decode([]byte("name: ${CONFIG_TEST_NAME}\ndebug: true\n"), &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "folio" || !cfg.Debug {
		t.Errorf("got %+v", cfg)
	}
}

func TestDecode_Validates(t *testing.T) {
	var cfg checked
	err := Decode([]byte("name: \"\"\n"), &cfg)
	if err == nil || !strings.Contains(err.Error(), "validation") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecode_BadYAML(t *testing.T) {
	var cfg sample
	if err := Decode([]byte("port: [\n"), &cfg); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	var cfg sample
	if err := Load(filepath.Join(t.TempDir(), "nope.yaml"), &cfg); err == nil {
		t.Fatal("expected read error")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	if err := os.WriteFile(path, []byte("name: file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var cfg checked
	if err := Load(path, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "file" {
		t.Errorf("name = %q", cfg.Name)
	}
}
