package rotor

import (
	"fmt"
	"io"
)

// Reporter defines the interface for structure that receives the diagnostics
// found while scanning and parsing. A reporter is defined to separated
// diagnostics reporting code from diagnostics displaying code.
type Reporter interface {
	Report(diag *Diagnostic)
	HadError() bool
}

// Sink keeps every reported diagnostic in the order it was reported.
type Sink struct {
	diagnostics []*Diagnostic
}

func NewSink() *Sink {
	return &Sink{make([]*Diagnostic, 0)}
}

func (sink *Sink) Report(diag *Diagnostic) {
	sink.diagnostics = append(sink.diagnostics, diag)
}

func (sink *Sink) HadError() bool {
	return len(sink.diagnostics) != 0
}

// Clean reports whether no diagnostic has been reported.
func (sink *Sink) Clean() bool {
	return !sink.HadError()
}

// Diagnostics returns the reported diagnostics. The returned slice must not
// be modified.
func (sink *Sink) Diagnostics() []*Diagnostic {
	return sink.diagnostics
}

// WriterReporter writes diagnostics as-is to inner writer
type WriterReporter struct {
	writer io.Writer
	hadErr bool
}

func NewWriterReporter(writer io.Writer) *WriterReporter {
	return &WriterReporter{writer, false}
}

func (reporter *WriterReporter) Report(diag *Diagnostic) {
	reporter.hadErr = true
	fmt.Fprintln(reporter.writer, diag)
}

func (reporter *WriterReporter) HadError() bool {
	return reporter.hadErr
}

// ReportAll forwards diagnostics to the reporter in order.
func ReportAll(reporter Reporter, diags []*Diagnostic) {
	for _, diag := range diags {
		reporter.Report(diag)
	}
}
