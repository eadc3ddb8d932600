// Package export renders tabular frames into artifacts and persists them
// through the blob store.
package export

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"periodica/internal/blob"
	"periodica/pkg/frame"
)

// Format names an artifact rendering.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Artifact describes one rendered, persisted frame.
type Artifact struct {
	Key         string    `json:"key"`
	Format      Format    `json:"format"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	Checksum    string    `json:"checksum"`
	URL         string    `json:"url,omitempty"`
	Rows        int       `json:"rows"`
	CreatedAt   time.Time `json:"created_at"`
}

// AuditEntry records one export for the audit trail.
type AuditEntry struct {
	ID         string    `json:"id"`
	Table      string    `json:"table"`
	Format     Format    `json:"format"`
	Key        string    `json:"key"`
	Rows       int       `json:"rows"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AuditLogger records export audit entries.
type AuditLogger interface {
	Record(ctx context.Context, entry AuditEntry)
}

// MemoryAudit is an AuditLogger that keeps entries in memory.
type MemoryAudit struct {
	mu      sync.Mutex
	entries []AuditEntry
}

func (a *MemoryAudit) Record(_ context.Context, entry AuditEntry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
}

// Entries returns a copy of the recorded audit trail.
func (a *MemoryAudit) Entries() []AuditEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]AuditEntry(nil), a.entries...)
}

// Exporter renders frames and persists the artifacts.
type Exporter struct {
	store blob.Store
	audit AuditLogger
	now   func() time.Time

	mu  sync.Mutex
	seq int
}

// NewExporter builds an exporter over the given blob store. audit may be
// nil when no trail is wanted.
func NewExporter(store blob.Store, audit AuditLogger) *Exporter {
	return &Exporter{store: store, audit: audit, now: time.Now}
}

// WithClock overrides the timestamp source, for tests.
func (e *Exporter) WithClock(now func() time.Time) *Exporter {
	e.now = now
	return e
}

// Export renders the frame in every requested format and stores each
// artifact under exports/<frame name>/<id>.<format>.
func (e *Exporter) Export(ctx context.Context, f *frame.Frame, formats ...Format) ([]Artifact, error) {
	if len(formats) == 0 {
		formats = []Format{FormatCSV}
	}
	id := e.nextID()
	artifacts := make([]Artifact, 0, len(formats))
	for _, format := range formats {
		payload, contentType, err := render(f, format)
		if err != nil {
			return nil, err
		}
		key := fmt.Sprintf("exports/%s/%s.%s", f.Name, id, format)
		sum := sha256.Sum256(payload)
		info, err := e.store.Put(ctx, key, bytes.NewReader(payload), blob.PutOptions{
			ContentType: contentType,
			Metadata: map[string]string{
				"table":    f.Name,
				"rows":     fmt.Sprint(len(f.Rows)),
				"checksum": hex.EncodeToString(sum[:]),
			},
		})
		if err != nil {
			return nil, fmt.Errorf("store %s: %w", key, err)
		}
		artifact := Artifact{
			Key:         key,
			Format:      format,
			ContentType: contentType,
			SizeBytes:   info.Size,
			Checksum:    hex.EncodeToString(sum[:]),
			URL:         info.URL,
			Rows:        len(f.Rows),
			CreatedAt:   e.now().UTC(),
		}
		artifacts = append(artifacts, artifact)
		if e.audit != nil {
			e.audit.Record(ctx, AuditEntry{
				ID:         id,
				Table:      f.Name,
				Format:     format,
				Key:        key,
				Rows:       len(f.Rows),
				OccurredAt: artifact.CreatedAt,
			})
		}
	}
	return artifacts, nil
}

func (e *Exporter) nextID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.seq++
	return fmt.Sprintf("%s-%04d", e.now().UTC().Format("20060102T150405Z"), e.seq)
}

func render(f *frame.Frame, format Format) ([]byte, string, error) {
	switch format {
	case FormatCSV:
		var buf bytes.Buffer
		if err := f.WriteCSV(&buf); err != nil {
			return nil, "", fmt.Errorf("render csv: %w", err)
		}
		return buf.Bytes(), "text/csv", nil
	case FormatJSON:
		payload, err := json.Marshal(f)
		if err != nil {
			return nil, "", fmt.Errorf("render json: %w", err)
		}
		return payload, "application/json", nil
	default:
		return nil, "", fmt.Errorf("unknown export format %q", format)
	}
}
