package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveLogFilePathDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	got, err := resolveLogFilePath(Options{})
	if err != nil {
		t.Fatalf("resolve default log path failed: %v", err)
	}

	realTmpDir, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("resolve tmp dir symlink failed: %v", err)
	}
	realGotDir, err := filepath.EvalSymlinks(filepath.Dir(got))
	if err != nil {
		t.Fatalf("resolve log dir symlink failed: %v", err)
	}
	wantDir := filepath.Join(realTmpDir, defaultLogDirName)
	if realGotDir != wantDir {
		t.Fatalf("log dir: want %s got %s", wantDir, realGotDir)
	}
	if name := filepath.Base(got); name != defaultLogFilename {
		t.Fatalf("log filename: want %s got %s", defaultLogFilename, name)
	}
	if _, err := os.Stat(filepath.Dir(got)); err != nil {
		t.Fatalf("log dir should exist after resolve: %v", err)
	}
}

func TestReleaseModeWritesJSONFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("release", Options{Dir: tmpDir, Filename: "api.log"})
	log.Info("weighing station online")
	_ = log.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "api.log"))
	if err != nil {
		t.Fatalf("read log file failed: %v", err)
	}
	if !strings.Contains(string(content), "weighing station online") {
		t.Fatalf("log file missing message, got %s", string(content))
	}
}

func TestDebugModeSkipsFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("debug", Options{Dir: tmpDir, Filename: "api.log"})
	log.Info("debug goes to stdout only")
	_ = log.Sync()

	if _, err := os.Stat(filepath.Join(tmpDir, "api.log")); !os.IsNotExist(err) {
		t.Fatalf("debug mode must not create the log file")
	}
}
