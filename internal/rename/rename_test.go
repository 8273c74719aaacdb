package rename

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/krtools/internal/config"
)

type testLogger struct {
	warns  int
	errors int
}

func (l *testLogger) Info(string, ...interface{})        {}
func (l *testLogger) Success(string, ...interface{})     {}
func (l *testLogger) Warn(string, ...interface{})        { l.warns++ }
func (l *testLogger) Error(string, ...interface{})       { l.errors++ }
func (l *testLogger) Debug(bool, string, ...interface{}) {}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.MdDir = t.TempDir()
	cfg.ColorMode = config.ColorNever
	return cfg
}

func TestRun_RenamesByChapter(t *testing.T) {
	cfg := testConfig(t)
	writeFile(t, cfg.MdDir, "KR3k0059_001.md", "---\ntitle: a\n---\n# 卷一目録\n")
	writeFile(t, cfg.MdDir, "KR3k0059_002.md", "# 卷一之一\n正文。\n")
	writeFile(t, cfg.MdDir, "KR3k0059_088.md", "# 卷四十三之二\n")

	stats, err := Run(&cfg, &testLogger{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Renamed != 3 || stats.Skipped != 0 || stats.Failed != 0 {
		t.Fatalf("stats = %+v", stats)
	}

	for _, want := range []string{"001.md", "001_01.md", "043_02.md"} {
		if _, err := os.Stat(filepath.Join(cfg.MdDir, want)); err != nil {
			t.Errorf("expected %s to exist: %v", want, err)
		}
	}
	if _, err := os.Stat(filepath.Join(cfg.MdDir, "KR3k0059_001.md")); !os.IsNotExist(err) {
		t.Error("original name should be gone after rename")
	}
}

func TestRun_Idempotent(t *testing.T) {
	cfg := testConfig(t)
	writeFile(t, cfg.MdDir, "KR3k0059_001.md", "# 卷一目録\n")
	writeFile(t, cfg.MdDir, "KR3k0059_002.md", "# 卷一之一\n")

	first, err := Run(&cfg, &testLogger{})
	if err != nil {
		t.Fatal(err)
	}
	if first.Renamed != 2 {
		t.Fatalf("first run stats = %+v", first)
	}

	second, err := Run(&cfg, &testLogger{})
	if err != nil {
		t.Fatal(err)
	}
	if second.Renamed != 0 || second.Skipped != 2 || second.Failed != 0 {
		t.Errorf("second run stats = %+v, want all already-correct", second)
	}
}

func TestRun_SkipsWithoutHeading(t *testing.T) {
	cfg := testConfig(t)
	writeFile(t, cfg.MdDir, "KR3k0059_001.md", "沒有標題的文件。\n")

	log := &testLogger{}
	stats, err := Run(&cfg, log)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Skipped != 1 || stats.Renamed != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if log.warns == 0 {
		t.Error("expected a warning for the headingless file")
	}
}

func TestRun_NeverOverwrites(t *testing.T) {
	cfg := testConfig(t)
	occupant := "occupant content\n"
	writeFile(t, cfg.MdDir, "003.md", occupant)
	writeFile(t, cfg.MdDir, "KR3k0059_005.md", "# 卷三目録\n")

	log := &testLogger{}
	stats, err := Run(&cfg, log)
	if err != nil {
		t.Fatal(err)
	}
	// The occupant itself has no heading (skipped); the corpus file
	// targets 003.md which is taken (failed).
	if stats.Failed != 1 {
		t.Errorf("stats = %+v, want one conflict failure", stats)
	}
	b, _ := os.ReadFile(filepath.Join(cfg.MdDir, "003.md"))
	if string(b) != occupant {
		t.Error("conflicting target was overwritten")
	}
	if _, err := os.Stat(filepath.Join(cfg.MdDir, "KR3k0059_005.md")); err != nil {
		t.Error("source of a conflicting rename must stay in place")
	}
}

func TestRun_DryRun(t *testing.T) {
	cfg := testConfig(t)
	cfg.DryRun = true
	writeFile(t, cfg.MdDir, "KR3k0059_001.md", "# 卷一目録\n")

	stats, err := Run(&cfg, &testLogger{})
	if err != nil {
		t.Fatal(err)
	}
	if stats.Renamed != 1 {
		t.Errorf("stats = %+v, dry run still reports intended renames", stats)
	}
	if _, err := os.Stat(filepath.Join(cfg.MdDir, "KR3k0059_001.md")); err != nil {
		t.Error("dry run must not rename files")
	}
	if _, err := os.Stat(filepath.Join(cfg.MdDir, "001.md")); !os.IsNotExist(err) {
		t.Error("dry run must not create target files")
	}
}

func TestRun_MissingDirIsFatal(t *testing.T) {
	cfg := testConfig(t)
	cfg.MdDir = filepath.Join(cfg.MdDir, "nope")

	stats, err := Run(&cfg, &testLogger{})
	if err == nil {
		t.Fatal("missing directory: want error")
	}
	if stats.Found != 0 {
		t.Errorf("stats = %+v, nothing should be processed", stats)
	}
}

func TestRun_IgnoresNonMarkdown(t *testing.T) {
	cfg := testConfig(t)
	writeFile(t, cfg.MdDir, "notes.txt", "# 卷一目録\n")
	writeFile(t, cfg.MdDir, "KR3k0059_001.md", "# 卷一目録\n")

	stats, err := Run(&cfg, &testLogger{})
	if err != nil {
		t.Fatal(err)
	}
	if stats.Found != 1 {
		t.Errorf("Found = %d, want only .md files", stats.Found)
	}
}
