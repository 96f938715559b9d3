package security

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// imageExtensions are additionally allowed for image reads and slide exports.
var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
}

// PathValidator restricts file operations to configured directories and
// extensions. An empty allowed-dirs list permits any directory.
type PathValidator struct {
	allowedDirs []string
	allowedExts map[string]bool
}

func NewPathValidator(allowedDirs, allowedExts []string) *PathValidator {
	exts := make(map[string]bool, len(allowedExts))
	for _, e := range allowedExts {
		exts[strings.ToLower(e)] = true
	}
	dirs := make([]string, 0, len(allowedDirs))
	for _, d := range allowedDirs {
		if abs, err := filepath.Abs(d); err == nil {
			dirs = append(dirs, abs)
		}
	}
	return &PathValidator{allowedDirs: dirs, allowedExts: exts}
}

// ValidateRead checks that path points at a readable file of an allowed type
// inside an allowed directory.
func (v *PathValidator) ValidateRead(path string) error {
	abs, err := v.check(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("file not found: %s", path)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory: %s", path)
	}
	return nil
}

// ValidateWrite checks that path is an allowed destination. The file itself
// need not exist yet.
func (v *PathValidator) ValidateWrite(path string) error {
	_, err := v.check(path)
	return err
}

func (v *PathValidator) check(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("path cannot be empty")
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !v.allowedExts[ext] && !imageExtensions[ext] {
		return "", fmt.Errorf("file extension %q is not allowed", ext)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	// Abs cleans the path, so any ".." left over came from a symlink-free
	// traversal attempt in the original input.
	if strings.Contains(path, "..") {
		return "", fmt.Errorf("path traversal is not allowed")
	}

	if len(v.allowedDirs) == 0 {
		return abs, nil
	}
	for _, dir := range v.allowedDirs {
		if abs == dir || strings.HasPrefix(abs, dir+string(filepath.Separator)) {
			return abs, nil
		}
	}
	return "", fmt.Errorf("path %s is outside the allowed directories", path)
}
