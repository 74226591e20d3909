package diplomat

// ValidateOrders checks a proposed main-phase order set against the board
// state and Map, returning one error per illegal order. Legal orders are
// untouched; a unit with no submitted order is defaulted to Hold, matching
// standard Diplomacy adjournment rules (an unordered unit holds).
//
// Resolve assumes its input has already passed through ValidateOrders: it
// does not re-check legality, only adjudicates.
func ValidateOrders(mp Map, units []UnitPosition, orders []Order) ([]Order, []ValidationError) {
	byProvince := make(map[Province]Unit, len(units))
	for _, up := range units {
		byProvince[up.Location.Province] = up.Unit
	}

	submitted := make(map[Province]Order, len(orders))
	var errs []ValidationError

	for _, o := range orders {
		unit, ok := byProvince[o.At.Province]
		if !ok {
			errs = append(errs, ValidationError{Ref: o.Ref(), Reason: ReasonNoUnit.String()})
			continue
		}
		if unit != o.Unit {
			errs = append(errs, ValidationError{Ref: o.Ref(), Reason: ReasonWrongBranch.String()})
			continue
		}
		if _, dup := submitted[o.At.Province]; dup {
			errs = append(errs, ValidationError{Ref: o.Ref(), Reason: ReasonDuplicateOrder.String()})
			continue
		}
		if err := validateOne(mp, byProvince, o); err != nil {
			errs = append(errs, *err)
			continue
		}
		submitted[o.At.Province] = o
	}

	final := make([]Order, 0, len(units))
	for _, up := range units {
		if o, ok := submitted[up.Location.Province]; ok {
			final = append(final, o)
		} else {
			final = append(final, Order{Unit: up.Unit, At: up.Location, Kind: Hold})
		}
	}
	return final, errs
}

func validateOne(mp Map, byProvince map[Province]Unit, o Order) *ValidationError {
	switch o.Kind {
	case Hold:
		return nil
	case Move:
		return validateMove(mp, o)
	case Support:
		return validateSupport(mp, byProvince, o)
	case Convoy:
		return validateConvoy(mp, byProvince, o)
	}
	return nil
}

func validateMove(mp Map, o Order) *ValidationError {
	if o.Unit.Branch == Fleet && len(mp.Coasts(o.Dest.Province)) > 0 && o.Dest.Coast == NoCoast {
		if mp.Kind(o.Dest.Province) != Land {
			return &ValidationError{Ref: o.Ref(), Reason: "fleet move to a split-coast province must name a coast"}
		}
	}
	direct := mp.Adjacent(o.Unit.Branch, o.At, o.Dest)
	if o.Convoyed == ConvoyForbidden && !direct {
		return &ValidationError{Ref: o.Ref(), Reason: ReasonNotAdjacent.String()}
	}
	if o.Unit.Branch == Fleet && !direct {
		return &ValidationError{Ref: o.Ref(), Reason: ReasonNotAdjacent.String()}
	}
	if o.Unit.Branch == Army && !direct && o.Convoyed == ConvoyRequired {
		if mp.Kind(o.At.Province) == Land {
			return &ValidationError{Ref: o.Ref(), Reason: ReasonNotAdjacent.String()}
		}
	}
	return nil
}

func validateSupport(mp Map, byProvince map[Province]Unit, o Order) *ValidationError {
	supported, ok := byProvince[o.AuxAt.Province]
	if !ok {
		return &ValidationError{Ref: o.Ref(), Reason: ReasonAuxOrderMissing.String()}
	}
	if !mp.Adjacent(o.Unit.Branch, o.At, Location{Province: o.AuxDest.Province}) &&
		o.AuxDest.Province != "" && o.AuxDest.Province != o.AuxAt.Province {
		// A unit can only support a move into a province it could itself
		// enter (ignoring coast specifics, which convoys and fleets sort
		// out at resolution time), or support a hold in an adjacent
		// province.
		if !mp.Adjacent(o.Unit.Branch, o.At, At(o.AuxDest.Province)) {
			return &ValidationError{Ref: o.Ref(), Reason: ReasonNotAdjacent.String()}
		}
	}
	if o.AuxDest.Province == "" && !mp.Adjacent(o.Unit.Branch, o.At, At(o.AuxAt.Province)) {
		return &ValidationError{Ref: o.Ref(), Reason: ReasonNotAdjacent.String()}
	}
	_ = supported
	return nil
}

func validateConvoy(mp Map, byProvince map[Province]Unit, o Order) *ValidationError {
	if o.Unit.Branch != Fleet {
		return &ValidationError{Ref: o.Ref(), Reason: ReasonWrongBranch.String()}
	}
	if mp.Kind(o.At.Province) != Sea {
		return &ValidationError{Ref: o.Ref(), Reason: "only a fleet at sea may convoy"}
	}
	army, ok := byProvince[o.AuxAt.Province]
	if !ok || army.Branch != Army {
		return &ValidationError{Ref: o.Ref(), Reason: ReasonAuxOrderMissing.String()}
	}
	return nil
}
