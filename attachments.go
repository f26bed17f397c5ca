package daftar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// AttachmentStore saves receipt and check images next to the snapshots and
// hands back opaque references. The book stores the reference on the
// transaction and never looks inside.
type AttachmentStore struct {
	Dir string
}

// Save writes the attachment under a timestamped name derived from
// suggestedName and returns its reference, a path relative to the data
// directory.
func (s AttachmentStore) Save(data []byte, suggestedName string) (string, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", fmt.Errorf("could not create attachments directory: %w", err)
	}
	stamp := time.Now().Format("2006-01-02_15-04-05")
	name := stamp + "_" + sanitizeName(suggestedName)
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("could not save attachment %q: %w", name, err)
	}
	return filepath.Join(filepath.Base(s.Dir), name), nil
}

// sanitizeName keeps a suggested file name safe to drop into the
// attachments directory.
func sanitizeName(name string) string {
	name = filepath.Base(name)
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_")
	name = replacer.Replace(name)
	if name == "" || name == "." {
		name = "attachment"
	}
	return name
}
