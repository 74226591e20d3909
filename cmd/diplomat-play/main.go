// Command diplomat-play is a small demo binary: it loads configuration,
// initializes the logger, builds the standard board, adjudicates one
// hardcoded movement phase, and logs the result. It exists to exercise
// pkg/diplomat end to end the way a real caller would, not as a game
// server — see the teacher's cmd/server for the shape this is stripped
// down from.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/corrigan/diplomat/internal/config"
	"github.com/corrigan/diplomat/internal/logger"
	"github.com/corrigan/diplomat/pkg/diplomat"
	"github.com/corrigan/diplomat/pkg/stdmap"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)
	log.Info().Str("ruleset", cfg.Ruleset).Msg("diplomat-play starting")

	mp := stdmap.Shared()
	rs := diplomat.DefaultRuleset()
	if cfg.Ruleset == "all-fail" {
		rs.ConvoyParadox = diplomat.AllFailAmbiguous
	}

	units, orders := openingScenario()
	legal, errs := diplomat.ValidateOrders(mp, units, orders)
	for _, e := range errs {
		log.Warn().Str("order", e.Ref.String()).Str("reason", e.Reason).Msg("order rejected")
	}

	outcomes, dislodged := diplomat.AdjudicateMain(mp, units, legal, rs)
	for i, oc := range outcomes {
		log.Info().
			Str("order", oc.Ref.String()).
			Str("kind", legal[i].Kind.String()).
			Msg(describe(oc))
	}
	for _, d := range dislodged {
		log.Info().
			Str("unit", string(d.Unit.Nation)).
			Str("from", d.DislodgedFrom.String()).
			Str("attacker", string(d.AttackerFrom)).
			Msg("unit dislodged")
	}

	standoffs := diplomat.ComputeStandoffs(legal, outcomes)
	log.Info().Int("standoffCount", len(standoffs)).Msg("phase resolved")
}

// describe renders an OrderOutcome's resolution as a short human string
// for the demo log, switching on whichever sub-struct the Kind selects.
func describe(oc diplomat.OrderOutcome) string {
	switch oc.Kind {
	case diplomat.OutcomeHold:
		if oc.Hold.Kind == diplomat.HoldDislodged {
			return "held, dislodged"
		}
		return "held"
	case diplomat.OutcomeMove:
		switch oc.Move.Kind {
		case diplomat.MoveSucceeds:
			return "moved"
		case diplomat.MoveConvoyed:
			return "moved by convoy"
		case diplomat.MoveDislodged:
			return "dislodged mid-move"
		case diplomat.MoveNoPath:
			return "no convoy path"
		default:
			return "bounced"
		}
	case diplomat.OutcomeSupport:
		switch oc.Support.Kind {
		case diplomat.SupportCut:
			return "support cut"
		case diplomat.SupportDislodged:
			return "support dislodged"
		case diplomat.SupportInvalid:
			return "support invalid"
		default:
			return "support given"
		}
	case diplomat.OutcomeConvoy:
		switch oc.Convoy.Kind {
		case diplomat.ConvoyUsed:
			return "convoy used"
		case diplomat.ConvoyParadoxical:
			return "convoy failed (paradox)"
		case diplomat.ConvoyDislodged:
			return "convoy fleet dislodged"
		default:
			return "convoy not used"
		}
	default:
		return "illegal"
	}
}

// openingScenario is a small supported-attack-versus-bounce scene near
// the standard 1901 opening, used purely to give the demo something to
// adjudicate. France attacks Burgundy with support; Germany moves into
// Burgundy from Munich without support and bounces.
func openingScenario() ([]diplomat.UnitPosition, []diplomat.Order) {
	units := []diplomat.UnitPosition{
		{Unit: diplomat.Unit{Nation: stdmap.France, Branch: diplomat.Army}, Location: diplomat.At("par")},
		{Unit: diplomat.Unit{Nation: stdmap.France, Branch: diplomat.Army}, Location: diplomat.At("mar")},
		{Unit: diplomat.Unit{Nation: stdmap.Germany, Branch: diplomat.Army}, Location: diplomat.At("mun")},
	}
	orders := []diplomat.Order{
		{Unit: units[0].Unit, At: diplomat.At("par"), Kind: diplomat.Move, Dest: diplomat.At("bur")},
		{Unit: units[1].Unit, At: diplomat.At("mar"), Kind: diplomat.Support, AuxAt: diplomat.At("par"), AuxDest: diplomat.At("bur")},
		{Unit: units[2].Unit, At: diplomat.At("mun"), Kind: diplomat.Move, Dest: diplomat.At("bur")},
	}
	return units, orders
}
