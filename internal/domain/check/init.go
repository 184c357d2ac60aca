package check

// InitDifficulty sets the difficulty when it is positive. Zero or negative
// means no difficulty, so the field stays unset.
func InitDifficulty(difficulty int) Callback {
	return func(c *Check) {
		if difficulty > 0 {
			Configure(c).SetDifficulty(difficulty)
		}
	}
}

// InitHrZero sets hrZero only when it is true; absence is how "not hrZero" is stored.
func InitHrZero(hrZero bool) Callback {
	return func(c *Check) {
		if hrZero {
			Configure(c).SetHrZero(true)
		}
	}
}

// InitDamage seeds the damage and appends any bonuses in order
func InitDamage(damage *DamageData) Callback {
	return func(c *Check) {
		if damage == nil || len(damage.Modifiers) == 0 {
			return
		}
		configurer := Configure(c).SetDamage(damage.Type, damage.Modifiers[0].Value)
		for _, bonus := range damage.Modifiers[1:] {
			configurer.AddDamageBonus(bonus.Label, bonus.Value)
		}
	}
}

// InitTargets stores the targets and the defense they are checked against
func InitTargets(defense Defense, targets []TargetData) Callback {
	return func(c *Check) {
		if len(targets) == 0 {
			return
		}
		Configure(c).SetTargetedDefense(defense).SetTargets(targets)
	}
}
