// Package stdmap implements diplomat.Map for the standard 1901 seven-power
// board: 75 provinces, 34 supply centers, and the full adjacency graph
// including the three split-coast provinces (Spain, St. Petersburg,
// Bulgaria).
package stdmap

import "github.com/corrigan/diplomat/pkg/diplomat"

// The seven great powers of the standard board.
const (
	Austria diplomat.Nation = "austria"
	England diplomat.Nation = "england"
	France  diplomat.Nation = "france"
	Germany diplomat.Nation = "germany"
	Italy   diplomat.Nation = "italy"
	Russia  diplomat.Nation = "russia"
	Turkey  diplomat.Nation = "turkey"

	// Neutral marks a supply center with no home power (e.g. Belgium,
	// Holland) in the opening position.
	Neutral diplomat.Nation = ""
)

// Nations returns the seven great powers in the standard turn order.
func Nations() []diplomat.Nation {
	return []diplomat.Nation{Austria, England, France, Germany, Italy, Russia, Turkey}
}
