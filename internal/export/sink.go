package export

import (
	"encoding/csv"
	"io"
)

// TSVSink writes feed records as tab-delimited lines.
type TSVSink struct {
	w *csv.Writer
}

// NewTSVSink constructs a TSVSink over the given writer.
func NewTSVSink(w io.Writer) *TSVSink {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return &TSVSink{w: cw}
}

// WriteHeader writes the column header line.
func (s *TSVSink) WriteHeader(fields []string) error {
	return s.w.Write(fields)
}

// WriteRow writes one record line.
func (s *TSVSink) WriteRow(fields []string) error {
	return s.w.Write(fields)
}

// Close flushes buffered records and reports any deferred write error.
func (s *TSVSink) Close() error {
	s.w.Flush()
	return s.w.Error()
}
