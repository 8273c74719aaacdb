package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "md", "md"},
		{"single trailing slash", "md/", "md"},
		{"multiple trailing slashes", "md///", "md"},
		{"absolute path", "/corpus/md/", "/corpus/md"},
		{"root path", "/", "/"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "rainbow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Prefix(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		wantErr bool
	}{
		{"default is valid", "KR3k0059", false},
		{"empty is invalid", "", true},
		{"path separator is invalid", "KR/0059", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Prefix = tt.prefix
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateMerge(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ValidateMerge(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	cfg = DefaultConfig()
	cfg.OutDir = ""
	if err := cfg.ValidateMerge(); err == nil {
		t.Error("empty OutDir: want error")
	}

	cfg = DefaultConfig()
	cfg.OutDir = "md/"
	if err := cfg.ValidateMerge(); err == nil {
		t.Error("OutDir equal to MdDir: want error")
	}
}

func TestLoadCorpusFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, CorpusFile)
	content := "prefix: KR1a0001\nmd_dir: sources\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if err := LoadCorpusFile(path, &cfg); err != nil {
		t.Fatalf("LoadCorpusFile: %v", err)
	}
	if cfg.Prefix != "KR1a0001" {
		t.Errorf("Prefix = %q, want override", cfg.Prefix)
	}
	if cfg.MdDir != "sources" {
		t.Errorf("MdDir = %q, want override", cfg.MdDir)
	}
	if cfg.OutDir != "merged" {
		t.Errorf("OutDir = %q, unset key should keep default", cfg.OutDir)
	}
}

func TestLoadCorpusFile_Missing(t *testing.T) {
	cfg := DefaultConfig()
	if err := LoadCorpusFile(filepath.Join(t.TempDir(), CorpusFile), &cfg); err != nil {
		t.Errorf("missing corpus file should not be an error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Error("missing corpus file should leave defaults untouched")
	}
}

func TestLoadCorpusFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, CorpusFile)
	if err := os.WriteFile(path, []byte("prefix: [broken\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	if err := LoadCorpusFile(path, &cfg); err == nil {
		t.Error("malformed corpus file: want error")
	}
}

func TestParseFlags(t *testing.T) {
	cfg := DefaultConfig()
	err := ParseFlags(ToolRename, &cfg, []string{"--dry-run", "--md-dir", "corpus/", "--no-color"}, "0.0-test")
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if !cfg.DryRun {
		t.Error("DryRun not set")
	}
	if cfg.MdDir != "corpus" {
		t.Errorf("MdDir = %q, want trailing slash stripped", cfg.MdDir)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q, want never", cfg.ColorMode)
	}
}

func TestParseFlags_RejectsPositionalArgs(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(ToolMerge, &cfg, []string{"stray"}, "0.0-test"); err == nil {
		t.Error("positional argument: want error")
	}
}
