package pipeline

import (
	"strings"

	"payout/internal/core"
)

// cancelledStatuses are the export's cancellation tokens. "cancele" is a
// truncated variant seen in historical exports; it is matched literally,
// not as a prefix.
var cancelledStatuses = map[string]bool{
	"cancel":   true,
	"canceled": true,
	"cancele":  true,
}

// Clean drops cancelled orders and projects each survivor onto the retained
// column set, in column order. Fields absent from the source are omitted
// rather than erroring. Afterwards the session's headers are the retained
// columns plus Settlement Amount, and every record carries a zero
// Settlement Amount awaiting computation.
func (s *Session) Clean() {
	kept := make([]core.Record, 0, len(s.Records))
	for _, rec := range s.Records {
		status := strings.ToLower(strings.TrimSpace(rec[core.FieldOrderStatus]))
		if cancelledStatuses[status] {
			continue
		}
		projected := make(core.Record, len(core.KeepFields)+1)
		for _, field := range core.KeepFields {
			if v, ok := rec[field]; ok {
				projected[field] = v
			}
		}
		kept = append(kept, projected)
	}

	headers := make([]string, len(core.KeepFields), len(core.KeepFields)+1)
	copy(headers, core.KeepFields)
	headers = append(headers, core.FieldSettlement)

	for _, rec := range kept {
		rec[core.FieldSettlement] = "0"
	}

	s.Headers = headers
	s.Records = kept
}
