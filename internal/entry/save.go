package entry

import (
	"fmt"
	"os"
	"path/filepath"
)

// Ext is the file extension Day One reads entries from.
const Ext = ".doentry"

// DefaultDirName is the directory, relative to the working directory,
// entries are saved to when no directory is given.
const DefaultDirName = "entries"

// Save renders the entry and writes it to <dir>/<ID>.doentry, replacing any
// existing file. An empty dir means DefaultDirName under the working
// directory. The directory is created if missing. Save returns the path
// written. Failures are *IOError values and leave the entry unchanged.
func (e *Entry) Save(dir string) (string, error) {
	dir, err := e.resolveDir(dir)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &IOError{Op: "create entries directory", Path: dir, Err: err}
	}

	text, err := e.Render()
	if err != nil {
		return "", err
	}

	path := e.Path(dir)
	if err := atomicWrite(path, []byte(text)); err != nil {
		return "", &IOError{Op: "write entry", Path: path, Err: err}
	}

	e.notify("Entry saved successfully")
	return path, nil
}

// Path returns the file path of the entry inside dir.
func (e *Entry) Path(dir string) string {
	return filepath.Join(dir, e.id+Ext)
}

func (e *Entry) resolveDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}

	base := e.workDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", &IOError{Op: "resolve working directory", Err: err}
		}
		base = wd
	}
	return filepath.Join(base, DefaultDirName), nil
}

// atomicWrite writes data to path using write-to-temp-then-rename.
// The temp file is created in the same directory as path.
func atomicWrite(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".tmp-*"+Ext)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Chmod(0o644); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
