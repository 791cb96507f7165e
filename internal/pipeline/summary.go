package pipeline

import (
	"strings"

	"payout/internal/core"
)

// Substatus values counted by the summary. Matching is exact on the
// trimmed, lowercased substatus; a record matching none counts nowhere.
const (
	substatusInTransit = "in transit"
	substatusCompleted = "completed"
	substatusDelivered = "delivered"
)

// Summarize walks the record set once and derives the summary snapshot.
// Only completed orders count as settled; everything else, including
// records with an empty substatus, accrues to the not-settled bucket, so
// Settled+NotSettled always equals Total.
func (s *Session) Summarize() core.Summary {
	sum := core.Summary{
		VariationCounts: make(map[string]int),
	}

	for _, rec := range s.Records {
		amt := core.ParseNumber(rec[core.FieldSettlement])
		sum.Total += amt
		sum.TotalQuantity += core.ParseNumber(rec[core.FieldQuantity])

		substatus := strings.ToLower(strings.TrimSpace(rec[core.FieldOrderSubstatus]))
		switch substatus {
		case substatusInTransit:
			sum.InTransit++
		case substatusCompleted:
			sum.Completed++
		case substatusDelivered:
			sum.Delivered++
		}

		if substatus == substatusCompleted {
			sum.Settled += amt
		} else {
			sum.NotSettled += amt
		}

		variation := strings.TrimSpace(rec[core.FieldVariation])
		if variation != "" {
			if _, seen := sum.VariationCounts[variation]; !seen {
				sum.VariationNames = append(sum.VariationNames, variation)
			}
			sum.VariationCounts[variation]++
		}
	}

	return sum
}
