package usecase

import (
	"context"

	"vivasheet/internal/domain"
	"vivasheet/internal/ports"
)

// ReportWriter copies the formatted assessment report to the clipboard so
// the candidate can share it.
type ReportWriter struct {
	clipboard ports.Clipboard
	events    ports.EventSink
}

func NewReportWriter(clipboard ports.Clipboard, events ports.EventSink) ReportWriter {
	return ReportWriter{clipboard: clipboard, events: events}
}

// Copy writes the report text to the clipboard. A clipboard failure is
// reported but non-fatal; the report itself is still available in the UI.
func (w ReportWriter) Copy(ctx context.Context, report domain.Report) bool {
	if err := w.clipboard.SetText(ctx, FormatReport(report)); err != nil {
		w.events.SessionError(domain.ErrorCodeClipboard, "report ready but clipboard write failed")
		return false
	}
	return true
}
