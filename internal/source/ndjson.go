// Package source provides a file-backed variation stream and lookup dataset
// so the exporter can run against an index dump.
package source

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/plentyexport/motorradbekleidungnet-export/internal/export"
	"github.com/plentyexport/motorradbekleidungnet-export/internal/model"
)

// FileProducer pages variation documents read from an NDJSON dump. The dump
// must be ordered by item id ascending, like the index scroll it replaces.
type FileProducer struct {
	docs       []model.VariationRecord
	parseErrs  []string
	pageSize   int
	pos        int
	firstFetch bool
}

// NewFileProducer reads the dump at path. Malformed lines are collected and
// reported with the first batch instead of failing the whole run.
func NewFileProducer(path string) (*FileProducer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open variation dump: %w", err)
	}
	defer f.Close()

	p := &FileProducer{pageSize: 250, firstFetch: true}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Bytes()
		if len(raw) == 0 {
			continue
		}
		var doc model.VariationRecord
		if err := json.Unmarshal(raw, &doc); err != nil {
			p.parseErrs = append(p.parseErrs, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		p.docs = append(p.docs, doc)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read variation dump: %w", err)
	}
	return p, nil
}

// SetPageSize sets the number of documents per batch.
func (p *FileProducer) SetPageSize(n int) {
	if n > 0 {
		p.pageSize = n
	}
}

// FetchNext returns the next page of documents.
func (p *FileProducer) FetchNext(ctx context.Context) (export.Batch, error) {
	if err := ctx.Err(); err != nil {
		return export.Batch{}, err
	}

	end := p.pos + p.pageSize
	if end > len(p.docs) {
		end = len(p.docs)
	}
	batch := export.Batch{
		Total:     int64(len(p.docs)),
		Documents: p.docs[p.pos:end],
	}
	if p.firstFetch {
		batch.Errors = p.parseErrs
		p.firstFetch = false
	}
	p.pos = end
	return batch, nil
}

// HasMore reports whether further documents remain.
func (p *FileProducer) HasMore() bool {
	return p.pos < len(p.docs)
}
