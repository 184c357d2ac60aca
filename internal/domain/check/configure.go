package check

import (
	"github.com/KirkDiggler/projectfu-discord/internal/domain/affinity"
)

// Configurer writes a check's side data. Every method returns the configurer
// so calls chain; every write is last-write-wins.
type Configurer struct {
	data *AdditionalData
}

// Configure binds a configurer to the check's side data
func Configure(c *Check) *Configurer {
	return &Configurer{data: &c.AdditionalData}
}

// SetDamage replaces the damage with a single base damage modifier and no totals
func (c *Configurer) SetDamage(damageType affinity.DamageType, baseDamage int) *Configurer {
	c.data.Damage = &DamageData{
		Type:      damageType,
		Modifiers: []BonusDamage{{Label: BaseDamageLabel, Value: baseDamage}},
	}
	return c
}

// ModifyDamage replaces the damage with fn's result. fn receives nil when no
// damage is set and may return nil to clear it.
func (c *Configurer) ModifyDamage(fn func(damage *DamageData) *DamageData) *Configurer {
	c.data.Damage = fn(c.data.Damage)
	return c
}

// AddDamageBonus appends a modifier to the damage. Without damage set it does nothing.
func (c *Configurer) AddDamageBonus(label string, value int) *Configurer {
	if c.data.Damage != nil {
		c.data.Damage.Modifiers = append(c.data.Damage.Modifiers, BonusDamage{Label: label, Value: value})
	}
	return c
}

func (c *Configurer) SetHrZero(hrZero bool) *Configurer {
	c.data.HrZero = &hrZero
	return c
}

func (c *Configurer) ModifyHrZero(fn func(hrZero *bool) *bool) *Configurer {
	c.data.HrZero = fn(c.data.HrZero)
	return c
}

func (c *Configurer) SetTargetedDefense(defense Defense) *Configurer {
	c.data.TargetedDefense = &defense
	return c
}

func (c *Configurer) ModifyTargetedDefense(fn func(defense *Defense) *Defense) *Configurer {
	c.data.TargetedDefense = fn(c.data.TargetedDefense)
	return c
}

func (c *Configurer) SetDifficulty(difficulty int) *Configurer {
	c.data.Difficulty = &difficulty
	return c
}

func (c *Configurer) ModifyDifficulty(fn func(difficulty *int) *int) *Configurer {
	c.data.Difficulty = fn(c.data.Difficulty)
	return c
}

// SetTargets stores a copy of targets; later changes to the caller's slice do not leak in
func (c *Configurer) SetTargets(targets []TargetData) *Configurer {
	stored := make([]TargetData, len(targets))
	copy(stored, targets)
	c.data.Targets = stored
	return c
}

// ModifyTargets replaces the targets with fn's result. fn receives nil when no
// targets are set.
func (c *Configurer) ModifyTargets(fn func(targets []TargetData) []TargetData) *Configurer {
	c.data.Targets = fn(c.data.Targets)
	return c
}
