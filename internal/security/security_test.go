package security

import (
	"os"
	"path/filepath"
	"testing"
)

// ─── Path Validator ───────────────────────────────────────────────────────────

func TestValidateWriteExtensions(t *testing.T) {
	v := NewPathValidator(nil, []string{".pptx"})

	if err := v.ValidateWrite("deck.pptx"); err != nil {
		t.Errorf("pptx should be allowed: %v", err)
	}
	if err := v.ValidateWrite("slide.png"); err != nil {
		t.Errorf("image extensions should be allowed for exports: %v", err)
	}
	if err := v.ValidateWrite("notes.docx"); err == nil {
		t.Error("docx should be rejected")
	}
	if err := v.ValidateWrite(""); err == nil {
		t.Error("empty path should be rejected")
	}
}

func TestValidateWriteTraversal(t *testing.T) {
	v := NewPathValidator([]string{"/data"}, []string{".pptx"})
	if err := v.ValidateWrite("/data/../etc/deck.pptx"); err == nil {
		t.Error("traversal should be rejected")
	}
}

func TestValidateWriteAllowedDirs(t *testing.T) {
	v := NewPathValidator([]string{"/data/decks"}, []string{".pptx"})

	if err := v.ValidateWrite("/data/decks/q3.pptx"); err != nil {
		t.Errorf("path inside allowed dir should pass: %v", err)
	}
	if err := v.ValidateWrite("/data/decks/sub/q3.pptx"); err != nil {
		t.Errorf("nested path inside allowed dir should pass: %v", err)
	}
	if err := v.ValidateWrite("/tmp/q3.pptx"); err == nil {
		t.Error("path outside allowed dirs should be rejected")
	}
	if err := v.ValidateWrite("/data/decks-evil/q3.pptx"); err == nil {
		t.Error("sibling dir sharing a prefix should be rejected")
	}
}

func TestValidateRead(t *testing.T) {
	dir := t.TempDir()
	v := NewPathValidator([]string{dir}, []string{".pptx"})

	path := filepath.Join(dir, "deck.pptx")
	if err := os.WriteFile(path, []byte("stub"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := v.ValidateRead(path); err != nil {
		t.Errorf("existing file should pass: %v", err)
	}
	if err := v.ValidateRead(filepath.Join(dir, "missing.pptx")); err == nil {
		t.Error("missing file should be rejected")
	}
}

// ─── Audit Logger ─────────────────────────────────────────────────────────────

func TestAuditLoggerDisabled(t *testing.T) {
	// Disabled logger must not panic on any event
	a := NewAuditLogger(false)
	a.LogToolCall("add_slide", "key", 5, true, "")
	a.LogFileAccess("open", "/data/deck.pptx", true)
}

func TestHashStr(t *testing.T) {
	a, b := hashStr("secret-key"), hashStr("secret-key")
	if a != b {
		t.Error("hash should be deterministic")
	}
	if len(a) != 64 {
		t.Errorf("sha256 hex length = %d, want 64", len(a))
	}
	if hashStr("other") == a {
		t.Error("different inputs should hash differently")
	}
}
