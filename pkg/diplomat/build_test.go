package diplomat_test

import (
	"testing"

	"github.com/corrigan/diplomat/pkg/diplomat"
	"github.com/corrigan/diplomat/pkg/stdmap"
)

func TestBuild_NewAtUnoccupiedHomeCenterSucceeds(t *testing.T) {
	mp := stdmap.Standard()
	g := diplomat.NewInitialState(1901, nil, map[diplomat.Province]diplomat.Nation{
		"par": stdmap.France, "bre": stdmap.France, "mar": stdmap.France,
	})
	order := diplomat.BuildOrder{
		Nation: stdmap.France,
		Kind:   diplomat.BuildNew,
		Unit:   diplomat.Unit{Nation: stdmap.France, Branch: diplomat.Army},
		At:     diplomat.At("par"),
	}
	if kind := diplomat.ValidateBuildOrder(mp, g, order); kind != diplomat.BuildSucceeds {
		t.Errorf("expected build to succeed, got %v", kind)
	}
}

func TestBuild_RejectedAtNonHomeCenter(t *testing.T) {
	mp := stdmap.Standard()
	g := diplomat.NewInitialState(1901, nil, map[diplomat.Province]diplomat.Nation{
		"bel": stdmap.France,
	})
	order := diplomat.BuildOrder{
		Nation: stdmap.France,
		Kind:   diplomat.BuildNew,
		Unit:   diplomat.Unit{Nation: stdmap.France, Branch: diplomat.Army},
		At:     diplomat.At("bel"),
	}
	if kind := diplomat.ValidateBuildOrder(mp, g, order); kind != diplomat.BuildRejectedNotHome {
		t.Errorf("expected build rejected (not a home center), got %v", kind)
	}
}

func TestBuild_RejectedWhenOccupied(t *testing.T) {
	mp := stdmap.Standard()
	g := diplomat.NewInitialState(1901, []diplomat.UnitPosition{
		up(stdmap.France, diplomat.Army, "par"),
	}, map[diplomat.Province]diplomat.Nation{"par": stdmap.France})
	order := diplomat.BuildOrder{
		Nation: stdmap.France,
		Kind:   diplomat.BuildNew,
		Unit:   diplomat.Unit{Nation: stdmap.France, Branch: diplomat.Army},
		At:     diplomat.At("par"),
	}
	if kind := diplomat.ValidateBuildOrder(mp, g, order); kind != diplomat.BuildRejectedOccupied {
		t.Errorf("expected build rejected (occupied), got %v", kind)
	}
}

func TestResolveBuildOrders_CivilDisorderPicksFurthestFirst(t *testing.T) {
	mp := stdmap.Standard()
	// France owns only Paris (1 center) but has two armies on the board: one
	// deep in Galicia, one sitting on a home center in Marseilles. Neither
	// disband is ordered, so civil disorder must pick one automatically.
	g := diplomat.NewInitialState(1901, []diplomat.UnitPosition{
		up(stdmap.France, diplomat.Army, "gal"),
		up(stdmap.France, diplomat.Army, "mar"),
	}, map[diplomat.Province]diplomat.Nation{"par": stdmap.France})

	outcomes := diplomat.ResolveBuildOrders(mp, g, nil, diplomat.DefaultRuleset())

	if len(outcomes) != 1 {
		t.Fatalf("expected exactly one forced disband, got %d", len(outcomes))
	}
	oc := outcomes[0]
	if oc.Kind != diplomat.BuildSucceeds || oc.Order.Kind != diplomat.BuildDisband {
		t.Fatalf("expected a successful forced disband, got %+v", oc)
	}
	if oc.Order.At.Province != "gal" {
		t.Errorf("expected the furthest-from-home unit (Galicia) to be disbanded, got %s", oc.Order.At.Province)
	}
}

func TestResolveBuildOrders_NoForcedDisbandWhenCentersCoverUnits(t *testing.T) {
	mp := stdmap.Standard()
	g := diplomat.NewInitialState(1901, []diplomat.UnitPosition{
		up(stdmap.France, diplomat.Army, "par"),
	}, map[diplomat.Province]diplomat.Nation{"par": stdmap.France, "bre": stdmap.France})

	outcomes := diplomat.ResolveBuildOrders(mp, g, nil, diplomat.DefaultRuleset())
	if len(outcomes) != 0 {
		t.Errorf("expected no outcomes (one build allowance, no orders submitted), got %+v", outcomes)
	}
}
