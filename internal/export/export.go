// Package export serializes an assessment design to a portable JSON
// document and reads it back.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/assay/internal/domain"
)

// ErrPrintUnsupported is returned by the print path, which performs no export.
var ErrPrintUnsupported = errors.New("PDF export would require a server-side implementation. " +
	"For now, use JSON export or print the summary from your terminal")

// Document is the exported file: the design plus when and from which
// session it was exported.
type Document struct {
	SessionID string                  `json:"sessionId,omitempty"`
	Timestamp time.Time               `json:"timestamp"`
	Design    domain.AssessmentDesign `json:"design"`
}

// NewDocument snapshots d for export. The timestamp is kept at millisecond
// precision so it matches the file name.
func NewDocument(sessionID string, d *domain.AssessmentDesign, now time.Time) Document {
	return Document{
		SessionID: sessionID,
		Timestamp: now.UTC().Truncate(time.Millisecond),
		Design:    *d.Clone(),
	}
}

// Filename returns assessment-plan-<epoch-millis>.json for t.
func Filename(t time.Time) string {
	return fmt.Sprintf("assessment-plan-%d.json", t.UnixMilli())
}

// Encode writes doc as indented JSON.
func Encode(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding assessment plan: %w", err)
	}
	return nil
}

// Decode reads a document written by Encode.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding assessment plan: %w", err)
	}
	if err := normalize(&doc.Design); err != nil {
		return nil, fmt.Errorf("decoding assessment plan: %w", err)
	}
	return &doc, nil
}

// SaveJSON writes doc into dir under Filename(doc.Timestamp) and returns the path.
func SaveJSON(dir string, doc Document) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	path := filepath.Join(dir, Filename(doc.Timestamp))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	if err := Encode(f, doc); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing export file: %w", err)
	}
	return path, nil
}

// LoadJSON reads an exported plan from path.
func LoadJSON(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Print is the degraded export path. It never produces a document.
func Print() error {
	return ErrPrintUnsupported
}

func normalize(d *domain.AssessmentDesign) error {
	if d.UDLCompliance == nil {
		d.UDLCompliance = map[string]bool{}
	}
	if d.InclusiveDesign == nil {
		d.InclusiveDesign = map[domain.Category]domain.CategoryTally{}
	}
	if d.Type != nil {
		t, err := domain.ParseAssessmentType(string(*d.Type))
		if err != nil {
			return err
		}
		d.Type = &t
	}
	for cat := range d.InclusiveDesign {
		if !cat.Valid() {
			return fmt.Errorf("unknown inclusive category %q", cat)
		}
	}
	if d.Progress < 0 || d.Progress > 100 {
		return fmt.Errorf("progress %d out of range 0..100", d.Progress)
	}
	return nil
}
