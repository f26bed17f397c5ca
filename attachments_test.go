package daftar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAttachmentStoreSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "receipts")
	store := AttachmentStore{Dir: dir}

	ref, err := store.Save([]byte("fake image"), "receipt 42.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(ref, "receipts"+string(filepath.Separator)) {
		t.Errorf("reference %q not relative to the data directory", ref)
	}
	if !strings.HasSuffix(ref, "_receipt_42.jpg") {
		t.Errorf("reference %q does not carry the sanitized name", ref)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("attachments directory has %d files, want 1", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "fake image" {
		t.Errorf("saved content = %q", data)
	}
}

func TestSanitizeName(t *testing.T) {
	testCases := []struct{ input, want string }{
		{"receipt.jpg", "receipt.jpg"},
		{"../../etc/passwd", "passwd"},
		{"my receipt.png", "my_receipt.png"},
		{"", "attachment"},
		{".", "attachment"},
	}
	for _, tc := range testCases {
		if got := sanitizeName(tc.input); got != tc.want {
			t.Errorf("sanitizeName(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
