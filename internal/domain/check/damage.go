package check

// ModifierSum adds up every damage modifier, base damage included
func (d *DamageData) ModifierSum() int {
	sum := 0
	for _, m := range d.Modifiers {
		sum += m.Value
	}
	return sum
}

// Resolve fills in the totals from the check's high roll.
// With hrZero the high roll contributes nothing.
func (d *DamageData) Resolve(hr int, hrZero bool) {
	modifierTotal := d.ModifierSum()
	if hrZero {
		hr = 0
	}
	total := modifierTotal + hr
	d.ModifierTotal = &modifierTotal
	d.Total = &total
}

// TotalOrZero is the resolved total, or zero before resolution
func (d *DamageData) TotalOrZero() int {
	if d == nil || d.Total == nil {
		return 0
	}
	return *d.Total
}

func (d *DamageData) clone() *DamageData {
	if d == nil {
		return nil
	}
	out := &DamageData{
		Type:      d.Type,
		Modifiers: append([]BonusDamage(nil), d.Modifiers...),
	}
	if d.Modifiers != nil && out.Modifiers == nil {
		out.Modifiers = []BonusDamage{}
	}
	if d.ModifierTotal != nil {
		v := *d.ModifierTotal
		out.ModifierTotal = &v
	}
	if d.Total != nil {
		v := *d.Total
		out.Total = &v
	}
	return out
}

func cloneTargets(targets []TargetData) []TargetData {
	if targets == nil {
		return nil
	}
	out := make([]TargetData, len(targets))
	copy(out, targets)
	return out
}
