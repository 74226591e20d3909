package diplomat_test

import (
	"testing"

	"github.com/corrigan/diplomat/pkg/diplomat"
	"github.com/corrigan/diplomat/pkg/stdmap"
)

// DATC-style representative scenarios (Diplomacy Adjudicator Test Cases).
// Reference: http://web.inter.nl.net/users/L.B.Kruijswijk/

func up(n diplomat.Nation, b diplomat.Branch, p diplomat.Province) diplomat.UnitPosition {
	return diplomat.UnitPosition{Unit: diplomat.Unit{Nation: n, Branch: b}, Location: diplomat.At(p)}
}

func outcomeFor(t *testing.T, outcomes []diplomat.OrderOutcome, n diplomat.Nation, p diplomat.Province) diplomat.OrderOutcome {
	t.Helper()
	ref := diplomat.OrderRef{Nation: n, At: diplomat.At(p)}
	for _, oc := range outcomes {
		if oc.Ref == ref {
			return oc
		}
	}
	t.Fatalf("no outcome for %s", ref)
	return diplomat.OrderOutcome{}
}

func adjudicate(t *testing.T, units []diplomat.UnitPosition, orders []diplomat.Order) []diplomat.OrderOutcome {
	t.Helper()
	mp := stdmap.Standard()
	legal, errs := diplomat.ValidateOrders(mp, units, orders)
	if len(errs) != 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	outcomes, _ := diplomat.AdjudicateMain(mp, units, legal, diplomat.DefaultRuleset())
	return outcomes
}

func TestDATC_SimpleBounceNoSupport(t *testing.T) {
	units := []diplomat.UnitPosition{
		up(stdmap.France, diplomat.Army, "par"),
		up(stdmap.Germany, diplomat.Army, "mun"),
	}
	orders := []diplomat.Order{
		{Unit: units[0].Unit, At: diplomat.At("par"), Kind: diplomat.Move, Dest: diplomat.At("bur")},
		{Unit: units[1].Unit, At: diplomat.At("mun"), Kind: diplomat.Move, Dest: diplomat.At("bur")},
	}
	outcomes := adjudicate(t, units, orders)

	par := outcomeFor(t, outcomes, stdmap.France, "par")
	if par.Move.Kind != diplomat.MoveBounced {
		t.Errorf("expected Paris move to bounce, got %v", par.Move.Kind)
	}
	mun := outcomeFor(t, outcomes, stdmap.Germany, "mun")
	if mun.Move.Kind != diplomat.MoveBounced {
		t.Errorf("expected Munich move to bounce, got %v", mun.Move.Kind)
	}
}

func TestDATC_SupportedAttackBeatsUnsupported(t *testing.T) {
	units := []diplomat.UnitPosition{
		up(stdmap.France, diplomat.Army, "par"),
		up(stdmap.France, diplomat.Army, "mar"),
		up(stdmap.Germany, diplomat.Army, "mun"),
	}
	orders := []diplomat.Order{
		{Unit: units[0].Unit, At: diplomat.At("par"), Kind: diplomat.Move, Dest: diplomat.At("bur")},
		{Unit: units[1].Unit, At: diplomat.At("mar"), Kind: diplomat.Support, AuxAt: diplomat.At("par"), AuxDest: diplomat.At("bur")},
		{Unit: units[2].Unit, At: diplomat.At("mun"), Kind: diplomat.Move, Dest: diplomat.At("bur")},
	}
	outcomes := adjudicate(t, units, orders)

	par := outcomeFor(t, outcomes, stdmap.France, "par")
	if par.Move.Kind != diplomat.MoveSucceeds {
		t.Errorf("expected Paris move to succeed (2 vs 1), got %v", par.Move.Kind)
	}
	mun := outcomeFor(t, outcomes, stdmap.Germany, "mun")
	if mun.Move.Kind != diplomat.MoveBounced {
		t.Errorf("expected Munich move to bounce, got %v", mun.Move.Kind)
	}
}

func TestDATC_SelfDislodgementForbiddenEvenWithSupport(t *testing.T) {
	units := []diplomat.UnitPosition{
		up(stdmap.France, diplomat.Army, "par"),
		up(stdmap.France, diplomat.Army, "bur"),
		up(stdmap.France, diplomat.Army, "gas"),
	}
	orders := []diplomat.Order{
		{Unit: units[0].Unit, At: diplomat.At("par"), Kind: diplomat.Hold},
		{Unit: units[1].Unit, At: diplomat.At("bur"), Kind: diplomat.Move, Dest: diplomat.At("par")},
		{Unit: units[2].Unit, At: diplomat.At("gas"), Kind: diplomat.Support, AuxAt: diplomat.At("bur"), AuxDest: diplomat.At("par")},
	}
	outcomes := adjudicate(t, units, orders)

	par := outcomeFor(t, outcomes, stdmap.France, "par")
	if par.Hold.Kind != diplomat.HoldSucceeds {
		t.Errorf("expected Paris to hold despite 2-strength same-nation attack, got %v", par.Hold.Kind)
	}
	bur := outcomeFor(t, outcomes, stdmap.France, "bur")
	if bur.Move.Kind != diplomat.MoveBounced {
		t.Errorf("expected Burgundy's move to bounce (same-nation support discarded), got %v", bur.Move.Kind)
	}
}

func TestDATC_HeadToHeadWithSupport(t *testing.T) {
	units := []diplomat.UnitPosition{
		up(stdmap.Austria, diplomat.Army, "tri"),
		up(stdmap.Austria, diplomat.Army, "tyr"),
		up(stdmap.Italy, diplomat.Army, "ven"),
	}
	orders := []diplomat.Order{
		{Unit: units[0].Unit, At: diplomat.At("tri"), Kind: diplomat.Move, Dest: diplomat.At("ven")},
		{Unit: units[1].Unit, At: diplomat.At("tyr"), Kind: diplomat.Support, AuxAt: diplomat.At("tri"), AuxDest: diplomat.At("ven")},
		{Unit: units[2].Unit, At: diplomat.At("ven"), Kind: diplomat.Move, Dest: diplomat.At("tri")},
	}
	outcomes := adjudicate(t, units, orders)

	tri := outcomeFor(t, outcomes, stdmap.Austria, "tri")
	if tri.Move.Kind != diplomat.MoveSucceeds {
		t.Errorf("expected Trieste's supported attack to win the head-to-head, got %v", tri.Move.Kind)
	}
	ven := outcomeFor(t, outcomes, stdmap.Italy, "ven")
	if ven.Move.Kind != diplomat.MoveDislodged {
		t.Errorf("expected Venice's unsupported counter-move to lose and be dislodged, got %v", ven.Move.Kind)
	}
}

func TestDATC_ThreeUnitCircularMoveAllSucceed(t *testing.T) {
	units := []diplomat.UnitPosition{
		up(stdmap.Turkey, diplomat.Army, "ank"),
		up(stdmap.Turkey, diplomat.Army, "con"),
		up(stdmap.Turkey, diplomat.Army, "smy"),
	}
	orders := []diplomat.Order{
		{Unit: units[0].Unit, At: diplomat.At("ank"), Kind: diplomat.Move, Dest: diplomat.At("con")},
		{Unit: units[1].Unit, At: diplomat.At("con"), Kind: diplomat.Move, Dest: diplomat.At("smy")},
		{Unit: units[2].Unit, At: diplomat.At("smy"), Kind: diplomat.Move, Dest: diplomat.At("ank")},
	}
	outcomes := adjudicate(t, units, orders)

	for _, p := range []diplomat.Province{"ank", "con", "smy"} {
		oc := outcomeFor(t, outcomes, stdmap.Turkey, p)
		if oc.Move.Kind != diplomat.MoveSucceeds {
			t.Errorf("expected %s's move in the circular chain to succeed, got %v", p, oc.Move.Kind)
		}
	}
}

// TestDATC_SzykmanConvoyParadox is the canonical self-referential convoy
// paradox: England convoys London to Belgium through the North Sea; France
// attacks the North Sea from the Channel, supported by a fleet sitting in
// Belgium itself. Whether the North Sea fleet is dislodged depends on
// whether the Belgium fleet's support is cut, which depends on whether the
// convoyed army reaches Belgium, which depends on whether the North Sea
// fleet is dislodged. Both guesses are internally consistent; Szykman's
// rule breaks the tie by failing the convoy.
func TestDATC_SzykmanConvoyParadox(t *testing.T) {
	units := []diplomat.UnitPosition{
		up(stdmap.England, diplomat.Fleet, "nth"),
		up(stdmap.England, diplomat.Army, "lon"),
		up(stdmap.France, diplomat.Fleet, "bel"),
		up(stdmap.France, diplomat.Fleet, "eng"),
	}
	orders := []diplomat.Order{
		{Unit: units[0].Unit, At: diplomat.At("nth"), Kind: diplomat.Convoy, AuxAt: diplomat.At("lon"), AuxDest: diplomat.At("bel")},
		{Unit: units[1].Unit, At: diplomat.At("lon"), Kind: diplomat.Move, Dest: diplomat.At("bel")},
		{Unit: units[2].Unit, At: diplomat.At("bel"), Kind: diplomat.Support, AuxAt: diplomat.At("eng"), AuxDest: diplomat.At("nth")},
		{Unit: units[3].Unit, At: diplomat.At("eng"), Kind: diplomat.Move, Dest: diplomat.At("nth")},
	}
	outcomes := adjudicate(t, units, orders)

	convoy := outcomeFor(t, outcomes, stdmap.England, "nth")
	if convoy.Convoy.Kind != diplomat.ConvoyParadoxical {
		t.Errorf("expected the convoy to fail as paradoxical under Szykman's rule, got %v", convoy.Convoy.Kind)
	}
	army := outcomeFor(t, outcomes, stdmap.England, "lon")
	if army.Move.Kind == diplomat.MoveSucceeds || army.Move.Kind == diplomat.MoveConvoyed {
		t.Errorf("expected the convoyed army to fail to reach Belgium, got %v", army.Move.Kind)
	}
}

func TestDATC_UnrelatedMoveDoesNotCutSupport(t *testing.T) {
	units := []diplomat.UnitPosition{
		up(stdmap.Austria, diplomat.Army, "tri"),
		up(stdmap.Austria, diplomat.Army, "tyr"),
		up(stdmap.Italy, diplomat.Army, "ven"),
		up(stdmap.Italy, diplomat.Army, "pie"),
	}
	orders := []diplomat.Order{
		{Unit: units[0].Unit, At: diplomat.At("tri"), Kind: diplomat.Move, Dest: diplomat.At("ven")},
		{Unit: units[1].Unit, At: diplomat.At("tyr"), Kind: diplomat.Support, AuxAt: diplomat.At("tri"), AuxDest: diplomat.At("ven")},
		{Unit: units[2].Unit, At: diplomat.At("ven"), Kind: diplomat.Hold},
		{Unit: units[3].Unit, At: diplomat.At("pie"), Kind: diplomat.Move, Dest: diplomat.At("tus")},
	}
	outcomes := adjudicate(t, units, orders)
	tyr := outcomeFor(t, outcomes, stdmap.Austria, "tyr")
	if tyr.Support.Kind != diplomat.SupportNotDisruptive {
		t.Errorf("expected Tyrolia's support to count, with no move into Tyrolia to disrupt it, got %v", tyr.Support.Kind)
	}
	ven := outcomeFor(t, outcomes, stdmap.Italy, "ven")
	if ven.Hold.Kind != diplomat.HoldDislodged {
		t.Errorf("expected Venice to be dislodged by the 2-strength attack, got %v", ven.Hold.Kind)
	}
}

func TestDATC_SupportCutByAttackOnSupporterRegardlessOfOutcome(t *testing.T) {
	units := []diplomat.UnitPosition{
		up(stdmap.Austria, diplomat.Army, "tri"),
		up(stdmap.Austria, diplomat.Army, "tyr"),
		up(stdmap.Italy, diplomat.Army, "ven"),
		up(stdmap.Italy, diplomat.Army, "pie"),
	}
	orders := []diplomat.Order{
		{Unit: units[0].Unit, At: diplomat.At("tri"), Kind: diplomat.Move, Dest: diplomat.At("ven")},
		{Unit: units[1].Unit, At: diplomat.At("tyr"), Kind: diplomat.Support, AuxAt: diplomat.At("tri"), AuxDest: diplomat.At("ven")},
		{Unit: units[2].Unit, At: diplomat.At("ven"), Kind: diplomat.Hold},
		{Unit: units[3].Unit, At: diplomat.At("pie"), Kind: diplomat.Move, Dest: diplomat.At("tyr")},
	}
	outcomes := adjudicate(t, units, orders)

	tyr := outcomeFor(t, outcomes, stdmap.Austria, "tyr")
	if tyr.Support.Kind != diplomat.SupportCut {
		t.Errorf("expected Tyrolia's support to be cut by the Piedmontese attack, got %v", tyr.Support.Kind)
	}
	tri := outcomeFor(t, outcomes, stdmap.Austria, "tri")
	if tri.Move.Kind != diplomat.MoveBounced {
		t.Errorf("expected Trieste's now-unsupported attack to bounce (1 vs 1), got %v", tri.Move.Kind)
	}
	pie := outcomeFor(t, outcomes, stdmap.Italy, "pie")
	if pie.Move.Kind != diplomat.MoveBounced {
		t.Errorf("expected Piedmont's own attack on Tyrolia to bounce too (1 vs 1), got %v", pie.Move.Kind)
	}
}
