package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

// TestMain keeps command logs out of the package directory.
func TestMain(tm *testing.M) {
	dir, err := os.MkdirTemp("", "sshbatch-cmd")
	if err != nil {
		panic(err)
	}

	if err := os.Setenv("SSHBATCH_LOG_FILENAME", filepath.Join(dir, "sshbatch.log")); err != nil {
		panic(err)
	}

	code := tm.Run()

	_ = os.RemoveAll(dir)
	os.Exit(code)
}
