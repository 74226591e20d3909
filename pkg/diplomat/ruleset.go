package diplomat

// ConvoyParadoxRule selects how the resolver breaks a genuine convoy
// paradox — a dependency cycle containing at least one Convoy order, where
// the two guesses (the back-edge order fails / succeeds) lead to different
// resolutions for the cycle's members. This is distinct from pure circular
// movement (a cycle of Move orders only), which always resolves with every
// member succeeding regardless of ruleset.
type ConvoyParadoxRule int

const (
	// Szykman is the standard tournament rule and the core's default: every
	// Convoy order in the paradoxical cycle fails (ConvoyOutcome::Paradoxical),
	// so the army it would have carried gets MoveOutcome::NoPath, and the
	// rest of the cycle is then resolved without it.
	Szykman ConvoyParadoxRule = iota
	// AllFailAmbiguous fails every order in the paradoxical cycle, not just
	// the convoys. Some older rulesets use this instead of Szykman.
	AllFailAmbiguous
)

func (r ConvoyParadoxRule) String() string {
	if r == AllFailAmbiguous {
		return "all-fail-ambiguous"
	}
	return "szykman"
}

// CivilDisorderTiebreak selects how the build phase picks which of a
// power's units to disband when it holds more units than supply centers and
// issued fewer disband orders than that surplus. The core implements exactly one tiebreak today;
// the type exists so a caller can name it explicitly rather than rely on
// unstated behavior, and so a future alternate policy has a place to live.
type CivilDisorderTiebreak int

const (
	// FurthestFromHomeFleetFirst disbands the unit(s) furthest (by map
	// distance) from any of the power's home supply centers; ties are
	// broken in favor of disbanding a fleet before an army, and remaining
	// ties broken by province name for determinism.
	FurthestFromHomeFleetFirst CivilDisorderTiebreak = iota
)

// Ruleset is the explicit policy object every adjudication call takes. The
// core never reads global state or environment configuration — every rule
// choice a caller might want to vary is a field here.
type Ruleset struct {
	ConvoyParadox ConvoyParadoxRule
	CivilDisorder CivilDisorderTiebreak
}

// DefaultRuleset returns the ruleset used by standard tournament play:
// Szykman convoy paradox resolution and the furthest-from-home/fleet-first
// civil disorder tiebreak.
func DefaultRuleset() Ruleset {
	return Ruleset{
		ConvoyParadox: Szykman,
		CivilDisorder: FurthestFromHomeFleetFirst,
	}
}
