package diplomat_test

import (
	"testing"

	"github.com/corrigan/diplomat/pkg/diplomat"
	"github.com/corrigan/diplomat/pkg/stdmap"
)

func TestRetreat_SucceedsToOpenAdjacentProvince(t *testing.T) {
	mp := stdmap.Standard()
	unit := diplomat.Unit{Nation: stdmap.Germany, Branch: diplomat.Army}
	order := diplomat.RetreatOrder{
		Unit: unit, From: diplomat.At("bur"), Kind: diplomat.RetreatMove, To: diplomat.At("par"),
	}

	if err := diplomat.ValidateRetreatOrder(mp, order); err != nil {
		t.Fatalf("expected order to validate, got %v", err)
	}

	outcomes := diplomat.ResolveRetreats(mp, nil, []diplomat.RetreatOrder{order}, nil, nil)
	if len(outcomes) != 1 || outcomes[0].Kind != diplomat.RetreatSucceeds {
		t.Fatalf("expected retreat to succeed, got %+v", outcomes)
	}
}

func TestRetreat_CannotReenterVacatedProvince(t *testing.T) {
	mp := stdmap.Standard()
	unit := diplomat.Unit{Nation: stdmap.Germany, Branch: diplomat.Army}
	order := diplomat.RetreatOrder{
		Unit: unit, From: diplomat.At("bur"), Kind: diplomat.RetreatMove, To: diplomat.At("bur"),
	}
	if err := diplomat.ValidateRetreatOrder(mp, order); err == nil {
		t.Fatal("expected validation error for retreating into the vacated province")
	}
}

func TestRetreat_BouncedIntoMovementPhaseStandoff(t *testing.T) {
	mp := stdmap.Standard()
	unit := diplomat.Unit{Nation: stdmap.Germany, Branch: diplomat.Army}
	order := diplomat.RetreatOrder{
		Unit: unit, From: diplomat.At("bur"), Kind: diplomat.RetreatMove, To: diplomat.At("par"),
	}
	standoffs := map[diplomat.Province]bool{"par": true}

	outcomes := diplomat.ResolveRetreats(mp, nil, []diplomat.RetreatOrder{order}, nil, standoffs)
	if len(outcomes) != 1 || outcomes[0].Kind != diplomat.RetreatStandoffBounced {
		t.Fatalf("expected retreat bounced by standoff, got %+v", outcomes)
	}
}

func TestRetreat_BouncedIntoAttackersOrigin(t *testing.T) {
	mp := stdmap.Standard()
	unit := diplomat.Unit{Nation: stdmap.Germany, Branch: diplomat.Army}
	dislodged := []diplomat.DislodgedUnit{
		{Unit: unit, DislodgedFrom: diplomat.At("bur"), AttackerFrom: "par"},
	}
	order := diplomat.RetreatOrder{
		Unit: unit, From: diplomat.At("bur"), Kind: diplomat.RetreatMove, To: diplomat.At("par"),
	}

	outcomes := diplomat.ResolveRetreats(mp, dislodged, []diplomat.RetreatOrder{order}, nil, nil)
	if len(outcomes) != 1 || outcomes[0].Kind != diplomat.RetreatIllegalBounced {
		t.Fatalf("expected retreat bounced by attacker's own origin, got %+v", outcomes)
	}
}

func TestRetreat_BouncedByOccupiedProvince(t *testing.T) {
	mp := stdmap.Standard()
	unit := diplomat.Unit{Nation: stdmap.Germany, Branch: diplomat.Army}
	order := diplomat.RetreatOrder{
		Unit: unit, From: diplomat.At("bur"), Kind: diplomat.RetreatMove, To: diplomat.At("par"),
	}
	standing := []diplomat.UnitPosition{up(stdmap.France, diplomat.Army, "par")}

	outcomes := diplomat.ResolveRetreats(mp, nil, []diplomat.RetreatOrder{order}, standing, nil)
	if len(outcomes) != 1 || outcomes[0].Kind != diplomat.RetreatOccupiedBounced {
		t.Fatalf("expected retreat bounced by occupied province, got %+v", outcomes)
	}
}

func TestRetreat_MutualBounceWhenTwoRetreatToSameProvince(t *testing.T) {
	mp := stdmap.Standard()
	germanUnit := diplomat.Unit{Nation: stdmap.Germany, Branch: diplomat.Army}
	russianUnit := diplomat.Unit{Nation: stdmap.Russia, Branch: diplomat.Army}
	orders := []diplomat.RetreatOrder{
		{Unit: germanUnit, From: diplomat.At("bur"), Kind: diplomat.RetreatMove, To: diplomat.At("par")},
		{Unit: russianUnit, From: diplomat.At("pic"), Kind: diplomat.RetreatMove, To: diplomat.At("par")},
	}

	outcomes := diplomat.ResolveRetreats(mp, nil, orders, nil, nil)
	if len(outcomes) != 2 {
		t.Fatalf("expected two outcomes, got %d", len(outcomes))
	}
	for _, oc := range outcomes {
		if oc.Kind != diplomat.RetreatMutualBounced {
			t.Errorf("expected both retreats to mutually bounce, got %+v", oc)
		}
	}
}

func TestRetreat_DisbandAlwaysSucceedsAsDisbanded(t *testing.T) {
	mp := stdmap.Standard()
	unit := diplomat.Unit{Nation: stdmap.Germany, Branch: diplomat.Army}
	order := diplomat.RetreatOrder{Unit: unit, From: diplomat.At("bur"), Kind: diplomat.RetreatDisband}

	if err := diplomat.ValidateRetreatOrder(mp, order); err != nil {
		t.Fatalf("expected disband to validate, got %v", err)
	}
	outcomes := diplomat.ResolveRetreats(mp, nil, []diplomat.RetreatOrder{order}, nil, nil)
	if len(outcomes) != 1 || outcomes[0].Kind != diplomat.RetreatDisbanded {
		t.Fatalf("expected disband outcome, got %+v", outcomes)
	}
}
