package diplomat_test

import (
	"testing"

	"github.com/corrigan/diplomat/pkg/diplomat"
	"github.com/corrigan/diplomat/pkg/stdmap"
)

func TestGameState_CloneIndependent(t *testing.T) {
	g := diplomat.NewInitialState(1901, []diplomat.UnitPosition{
		up(stdmap.France, diplomat.Army, "par"),
	}, map[diplomat.Province]diplomat.Nation{"par": stdmap.France})

	c := g.Clone()

	g.Units[0].Location = diplomat.At("xxx")
	if c.Units[0].Location.Province != "par" {
		t.Error("clone units should be independent of original")
	}

	c.Centers["bel"] = stdmap.France
	if _, ok := g.Centers["bel"]; ok {
		t.Error("original centers should be independent of clone")
	}

	delete(g.Centers, "par")
	if _, ok := c.Centers["par"]; !ok {
		t.Error("clone centers should retain 'par' after original deletes it")
	}
}

func TestGameState_CloneNilSlices(t *testing.T) {
	g := &diplomat.GameState{Phase: diplomat.Phase{Year: 1901, Season: diplomat.Spring, Kind: diplomat.Movement}}
	c := g.Clone()

	if c.Dislodged != nil {
		t.Error("clone of nil Dislodged should be nil")
	}
	if c.Standoffs != nil {
		t.Error("clone of nil Standoffs should be nil")
	}
}

func TestGameState_SupplyCenterCountAndAlive(t *testing.T) {
	g := diplomat.NewInitialState(1901, []diplomat.UnitPosition{
		up(stdmap.France, diplomat.Army, "par"),
	}, map[diplomat.Province]diplomat.Nation{
		"par": stdmap.France,
		"bre": stdmap.France,
		"mun": stdmap.Germany,
	})

	if got := g.SupplyCenterCount(stdmap.France); got != 2 {
		t.Errorf("expected France to own 2 centers, got %d", got)
	}
	if !g.PowerIsAlive(stdmap.France) {
		t.Error("France should be alive")
	}
	if g.PowerIsAlive(stdmap.Italy) {
		t.Error("Italy has no units or centers and should not be alive")
	}
}

func TestNextPhase(t *testing.T) {
	tests := []struct {
		name             string
		in               diplomat.Phase
		hadDislodgements bool
		needsBuilds      bool
		want             diplomat.Phase
	}{
		{
			name: "spring movement with dislodgements goes to spring retreats",
			in:   diplomat.Phase{Year: 1901, Season: diplomat.Spring, Kind: diplomat.Movement},
			hadDislodgements: true,
			want:             diplomat.Phase{Year: 1901, Season: diplomat.Spring, Kind: diplomat.Retreats},
		},
		{
			name: "spring movement without dislodgements goes to fall movement",
			in:   diplomat.Phase{Year: 1901, Season: diplomat.Spring, Kind: diplomat.Movement},
			want: diplomat.Phase{Year: 1901, Season: diplomat.Fall, Kind: diplomat.Movement},
		},
		{
			name:        "fall movement needing builds goes to fall builds",
			in:          diplomat.Phase{Year: 1901, Season: diplomat.Fall, Kind: diplomat.Movement},
			needsBuilds: true,
			want:        diplomat.Phase{Year: 1901, Season: diplomat.Fall, Kind: diplomat.Builds},
		},
		{
			name: "fall movement with no builds needed rolls to next year's spring",
			in:   diplomat.Phase{Year: 1901, Season: diplomat.Fall, Kind: diplomat.Movement},
			want: diplomat.Phase{Year: 1902, Season: diplomat.Spring, Kind: diplomat.Movement},
		},
		{
			name: "fall builds always rolls to next year's spring movement",
			in:   diplomat.Phase{Year: 1901, Season: diplomat.Fall, Kind: diplomat.Builds},
			want: diplomat.Phase{Year: 1902, Season: diplomat.Spring, Kind: diplomat.Movement},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := diplomat.NextPhase(tt.in, tt.hadDislodgements, tt.needsBuilds)
			if got != tt.want {
				t.Errorf("NextPhase(%+v, %v, %v) = %+v, want %+v", tt.in, tt.hadDislodgements, tt.needsBuilds, got, tt.want)
			}
		})
	}
}

func TestUpdateSupplyCenterOwnership(t *testing.T) {
	mp := stdmap.Standard()
	g := diplomat.NewInitialState(1901, []diplomat.UnitPosition{
		up(stdmap.Germany, diplomat.Army, "bel"),
	}, map[diplomat.Province]diplomat.Nation{"bel": stdmap.Neutral})
	g.Phase = diplomat.Phase{Year: 1901, Season: diplomat.Fall, Kind: diplomat.Movement}

	diplomat.UpdateSupplyCenterOwnership(g, mp)

	if g.Centers["bel"] != stdmap.Germany {
		t.Errorf("expected Belgium to become German-owned, got %v", g.Centers["bel"])
	}
}

func TestUpdateSupplyCenterOwnership_OnlyAppliesAtFallMovement(t *testing.T) {
	mp := stdmap.Standard()
	g := diplomat.NewInitialState(1901, []diplomat.UnitPosition{
		up(stdmap.Germany, diplomat.Army, "bel"),
	}, map[diplomat.Province]diplomat.Nation{"bel": stdmap.Neutral})
	g.Phase = diplomat.Phase{Year: 1901, Season: diplomat.Spring, Kind: diplomat.Movement}

	diplomat.UpdateSupplyCenterOwnership(g, mp)

	if g.Centers["bel"] != stdmap.Neutral {
		t.Error("spring movement should not transfer supply center ownership")
	}
}
