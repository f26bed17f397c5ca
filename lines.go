package daftar

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"github.com/omidv/daftar/jalali"
)

// The business also trades phone numbers. Lines are inventory assets: they
// have a price and a status but no balance effect until a sale is recorded
// in the book as a regular deposit.

// LineStatus is the sale status of a phone-number asset.
type LineStatus string

const (
	// LineAvailable marks a number still in inventory.
	LineAvailable LineStatus = "available"
	// LineSold marks a number that has been sold.
	LineSold LineStatus = "sold"
)

// Line is one phone-number asset.
type Line struct {
	ID          string     `json:"id"`
	Number      string     `json:"number"`
	Price       Money      `json:"price"`
	Description string     `json:"description,omitempty"`
	Registered  string     `json:"registered"` // Jalali display date
	Status      LineStatus `json:"status"`
	PartnerID   string     `json:"partnerId,omitempty"`
}

// Partner is a co-owner of part of the line inventory.
type Partner struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Share   string `json:"share,omitempty"` // free-form, e.g. "50%" or "1/3"
}

const (
	linesFile    = "lines.jsonl"
	partnersFile = "partners.jsonl"
)

// Lines is the phone-number inventory with its partner roster.
type Lines struct {
	linesPath    string
	partnersPath string
	lines        []Line
	partners     []Partner
}

// OpenLines loads the inventory and partner registries from the data
// directory.
func OpenLines(dir string) (*Lines, error) {
	l := &Lines{
		linesPath:    filepath.Join(dir, linesFile),
		partnersPath: filepath.Join(dir, partnersFile),
	}
	var err error
	if l.lines, err = loadRecords[Line](l.linesPath); err != nil {
		return nil, err
	}
	if l.partners, err = loadRecords[Partner](l.partnersPath); err != nil {
		return nil, err
	}
	return l, nil
}

// Add registers a new phone-number asset and returns its id.
func (l *Lines) Add(line Line) (string, error) {
	if line.Number == "" {
		return "", fmt.Errorf("phone number is missing")
	}
	if line.PartnerID != "" {
		if _, ok := l.FindPartner(line.PartnerID); !ok {
			return "", fmt.Errorf("partner %q not found", line.PartnerID)
		}
	}
	if line.ID == "" {
		line.ID = uuid.NewString()
	}
	if line.Registered == "" {
		line.Registered = jalali.Today().String()
	}
	if line.Status == "" {
		line.Status = LineAvailable
	}
	l.lines = append(l.lines, line)
	return line.ID, saveRecords(l.linesPath, l.lines)
}

// List returns a copy of the inventory, optionally narrowed to one status.
func (l *Lines) List(status LineStatus) []Line {
	if status == "" {
		return slices.Clone(l.lines)
	}
	var out []Line
	for _, line := range l.lines {
		if line.Status == status {
			out = append(out, line)
		}
	}
	return out
}

// MarkSold flips a number to sold. Recording the sale proceeds in the book
// is the caller's business.
func (l *Lines) MarkSold(id string) error {
	for i, line := range l.lines {
		if line.ID == id {
			l.lines[i].Status = LineSold
			return saveRecords(l.linesPath, l.lines)
		}
	}
	return fmt.Errorf("line %q not found", id)
}

// Remove deletes a phone-number asset.
func (l *Lines) Remove(id string) error {
	for i, line := range l.lines {
		if line.ID == id {
			l.lines = slices.Delete(l.lines, i, i+1)
			return saveRecords(l.linesPath, l.lines)
		}
	}
	return fmt.Errorf("line %q not found", id)
}

// AddPartner registers a partner and returns their id.
func (l *Lines) AddPartner(p Partner) (string, error) {
	if p.Name == "" {
		return "", fmt.Errorf("partner name is missing")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	l.partners = append(l.partners, p)
	return p.ID, saveRecords(l.partnersPath, l.partners)
}

// Partners returns a copy of the partner roster.
func (l *Lines) Partners() []Partner { return slices.Clone(l.partners) }

// FindPartner returns the partner with the given id.
func (l *Lines) FindPartner(id string) (Partner, bool) {
	for _, p := range l.partners {
		if p.ID == id {
			return p, true
		}
	}
	return Partner{}, false
}
