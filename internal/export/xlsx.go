// Package export turns an in-memory collection into an xlsx workbook and
// hands it to a sink: a directory drop (the download analog) or a cache
// file plus share hook (the mobile analog).
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/example/turf-admin/internal/notify"
	"github.com/example/turf-admin/internal/observability"
)

// Field is one named cell; a Row is an ordered record whose field order
// defines the column order.
type Field struct {
	Name  string
	Value any
}

type Row []Field

// Sink receives the serialized workbook and reports where it landed.
type Sink interface {
	Deliver(filename string, data []byte) (string, error)
}

// DirSink writes the workbook into a directory, the closest thing a CLI
// has to a browser download.
type DirSink struct {
	Dir string
}

func (s DirSink) Deliver(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.Dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// ShareSink writes to a cache location and invokes a share hook. When no
// hook is available the saved path is still returned so the caller can
// surface it instead of failing silently.
type ShareSink struct {
	CacheDir string
	Share    func(path string) error
}

func (s ShareSink) Deliver(filename string, data []byte) (string, error) {
	dir := s.CacheDir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	if s.Share != nil {
		if err := s.Share(path); err != nil {
			return path, nil // sharing unavailable; surface the path
		}
	}
	return path, nil
}

// Exporter serializes rows and delivers the result. Failures surface as
// a single user-facing notice plus the returned error; it never panics.
type Exporter struct {
	Sink     Sink
	Notifier notify.Notifier
	Logger   *slog.Logger

	// now is swapped in tests for a stable filename.
	now func() time.Time
}

func NewExporter(sink Sink, n notify.Notifier, logger *slog.Logger) *Exporter {
	if n == nil {
		n = notify.Discard{}
	}
	return &Exporter{Sink: sink, Notifier: n, Logger: logger, now: time.Now}
}

// ToSpreadsheet builds a one-sheet workbook from rows and delivers it as
// <sheetName>_<timestamp>.xlsx. Returns the delivered path.
func (e *Exporter) ToSpreadsheet(rows []Row, sheetName string) (string, error) {
	data, err := buildWorkbook(rows, sheetName)
	if err != nil {
		return "", e.surface(err)
	}
	filename := fmt.Sprintf("%s_%d.xlsx", sheetName, e.now().UnixMilli())
	path, err := e.Sink.Deliver(filename, data)
	if err != nil {
		return "", e.surface(err)
	}
	observability.ExportsTotal.WithLabelValues("ok").Inc()
	e.Notifier.Notify(notify.Success, "Export complete", path)
	return path, nil
}

func (e *Exporter) surface(err error) error {
	observability.ExportsTotal.WithLabelValues("error").Inc()
	e.Notifier.Notify(notify.Error, "Export Error", err.Error())
	if e.Logger != nil {
		e.Logger.Warn("export failed", "error", err)
	}
	return err
}

func buildWorkbook(rows []Row, sheetName string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	if len(rows) > 0 {
		for col, field := range rows[0] {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, field.Name); err != nil {
				return nil, err
			}
		}
		for r, row := range rows {
			for col, field := range row {
				cell, err := excelize.CoordinatesToCellName(col+1, r+2)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(sheetName, cell, field.Value); err != nil {
					return nil, err
				}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
