package check_test

import (
	"testing"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/affinity"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_SetDamage(t *testing.T) {
	c := &check.Check{}

	check.Configure(c).SetDamage(affinity.DamageFire, 10)

	damage := check.Inspect(c).GetDamage()
	require.NotNil(t, damage)
	assert.Equal(t, &check.DamageData{
		Type:      affinity.DamageFire,
		Modifiers: []check.BonusDamage{{Label: "FU.BaseDamage", Value: 10}},
	}, damage)
	assert.Nil(t, damage.Total)
	assert.Nil(t, damage.ModifierTotal)
}

func TestConfigure_AddDamageBonus(t *testing.T) {
	t.Run("appends after SetDamage in order", func(t *testing.T) {
		c := &check.Check{}

		check.Configure(c).
			SetDamage(affinity.DamagePhysical, 5).
			AddDamageBonus("FU.Weapon", 3).
			AddDamageBonus("FU.Skill", 2)

		damage := check.Inspect(c).GetDamage()
		require.NotNil(t, damage)
		assert.Equal(t, []check.BonusDamage{
			{Label: "FU.BaseDamage", Value: 5},
			{Label: "FU.Weapon", Value: 3},
			{Label: "FU.Skill", Value: 2},
		}, damage.Modifiers)
	})

	t.Run("no-op without damage", func(t *testing.T) {
		c := &check.Check{}

		assert.NotPanics(t, func() {
			check.Configure(c).AddDamageBonus("FU.Weapon", 3)
		})
		assert.Nil(t, check.Inspect(c).GetDamage())
	})
}

func TestConfigure_ModifyDamage(t *testing.T) {
	t.Run("receives nil when unset", func(t *testing.T) {
		c := &check.Check{}
		var seen *check.DamageData
		called := false

		check.Configure(c).ModifyDamage(func(d *check.DamageData) *check.DamageData {
			called = true
			seen = d
			return &check.DamageData{Type: affinity.DamageIce, Modifiers: []check.BonusDamage{{Label: "x", Value: 1}}}
		})

		assert.True(t, called)
		assert.Nil(t, seen)
		assert.Equal(t, affinity.DamageIce, check.Inspect(c).GetDamage().Type)
	})

	t.Run("return value replaces prior state", func(t *testing.T) {
		c := &check.Check{}

		check.Configure(c).
			SetDamage(affinity.DamageFire, 10).
			AddDamageBonus("FU.Bonus", 4).
			ModifyDamage(func(d *check.DamageData) *check.DamageData {
				return &check.DamageData{Type: d.Type, Modifiers: []check.BonusDamage{{Label: "FU.Override", Value: 1}}}
			})

		damage := check.Inspect(c).GetDamage()
		assert.Equal(t, []check.BonusDamage{{Label: "FU.Override", Value: 1}}, damage.Modifiers)
	})

	t.Run("returning nil clears damage", func(t *testing.T) {
		c := &check.Check{}

		check.Configure(c).
			SetDamage(affinity.DamageFire, 10).
			ModifyDamage(func(*check.DamageData) *check.DamageData { return nil })

		assert.Nil(t, check.Inspect(c).GetDamage())
	})
}

func TestConfigure_Scalars(t *testing.T) {
	c := &check.Check{}

	check.Configure(c).
		SetHrZero(false).
		SetDifficulty(10).
		SetTargetedDefense(check.DefenseMagic)

	inspector := check.Inspect(c)
	require.NotNil(t, inspector.GetHrZero())
	assert.False(t, *inspector.GetHrZero())
	assert.Equal(t, 10, *inspector.GetDifficulty())
	assert.Equal(t, check.DefenseMagic, *inspector.GetTargetedDefense())

	check.Configure(c).
		ModifyHrZero(func(v *bool) *bool {
			flipped := !*v
			return &flipped
		}).
		ModifyDifficulty(func(v *int) *int {
			next := *v + 3
			return &next
		}).
		ModifyTargetedDefense(func(*check.Defense) *check.Defense { return nil })

	inspector = check.Inspect(c)
	assert.True(t, *inspector.GetHrZero())
	assert.Equal(t, 13, *inspector.GetDifficulty())
	assert.Nil(t, inspector.GetTargetedDefense())
}

func TestConfigure_ModifyReceivesNilWhenAbsent(t *testing.T) {
	c := &check.Check{}

	check.Configure(c).
		ModifyHrZero(func(v *bool) *bool {
			assert.Nil(t, v)
			return v
		}).
		ModifyDifficulty(func(v *int) *int {
			assert.Nil(t, v)
			return v
		}).
		ModifyTargetedDefense(func(v *check.Defense) *check.Defense {
			assert.Nil(t, v)
			return v
		}).
		ModifyTargets(func(v []check.TargetData) []check.TargetData {
			assert.Nil(t, v)
			return v
		})

	inspector := check.Inspect(c)
	assert.Nil(t, inspector.GetHrZero())
	assert.Nil(t, inspector.GetDifficulty())
	assert.Nil(t, inspector.GetTargetedDefense())
	assert.Nil(t, inspector.GetTargets())
}

func TestConfigure_SetTargetsCopiesInput(t *testing.T) {
	c := &check.Check{}
	targets := []check.TargetData{
		{Name: "Goblin", UUID: "actor-1", Link: "@UUID[actor-1]", Difficulty: 8},
		{Name: "Wolf", UUID: "actor-2", Link: "@UUID[actor-2]", Difficulty: 10},
	}

	check.Configure(c).SetTargets(targets)
	targets[0].Name = "Changed"
	targets[1].Difficulty = 99

	stored := check.Inspect(c).GetTargets()
	require.Len(t, stored, 2)
	assert.Equal(t, "Goblin", stored[0].Name)
	assert.Equal(t, 10, stored[1].Difficulty)
}

func TestConfigure_ModifyTargets(t *testing.T) {
	c := &check.Check{}

	check.Configure(c).
		SetTargets([]check.TargetData{{Name: "Goblin", UUID: "actor-1"}}).
		ModifyTargets(func(targets []check.TargetData) []check.TargetData {
			return append(targets, check.TargetData{Name: "Wolf", UUID: "actor-2"})
		})

	stored := check.Inspect(c).GetTargets()
	require.Len(t, stored, 2)
	assert.Equal(t, "Wolf", stored[1].Name)
}

func TestConfigure_LastWriteWins(t *testing.T) {
	c := &check.Check{}

	check.Configure(c).SetDifficulty(8).SetDifficulty(12)
	assert.Equal(t, 12, *check.Inspect(c).GetDifficulty())

	check.Configure(c).
		SetDamage(affinity.DamageAir, 5).
		ModifyDamage(func(*check.DamageData) *check.DamageData {
			return &check.DamageData{Type: affinity.DamageBolt, Modifiers: []check.BonusDamage{}}
		}).
		AddDamageBonus("FU.Late", 2)

	damage := check.Inspect(c).GetDamage()
	assert.Equal(t, affinity.DamageBolt, damage.Type)
	assert.Equal(t, []check.BonusDamage{{Label: "FU.Late", Value: 2}}, damage.Modifiers)
}
