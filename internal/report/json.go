package report

import (
	"encoding/json"
	"fmt"
	"io"

	"featrun/internal/runner"
)

// WriteJSON renders the structured report. Field order and indentation
// are stable, so identical runs produce byte-identical documents.
func WriteJSON(w io.Writer, results runner.Results) error {
	payload, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	payload = append(payload, '\n')
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
