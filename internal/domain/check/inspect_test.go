package check_test

import (
	"encoding/json"
	"testing"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/affinity"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect_GetDamageReturnsCopy(t *testing.T) {
	c := &check.Check{}
	check.Configure(c).SetDamage(affinity.DamageDark, 12).AddDamageBonus("FU.Bonus", 2)
	c.AdditionalData.Damage.Resolve(7, false)

	first := check.Inspect(c).GetDamage()
	require.NotNil(t, first)
	first.Type = affinity.DamageLight
	first.Modifiers[0].Value = 999
	first.Modifiers = append(first.Modifiers, check.BonusDamage{Label: "FU.Injected", Value: 1})
	*first.Total = -1

	second := check.Inspect(c).GetDamage()
	assert.Equal(t, affinity.DamageDark, second.Type)
	assert.Equal(t, []check.BonusDamage{
		{Label: "FU.BaseDamage", Value: 12},
		{Label: "FU.Bonus", Value: 2},
	}, second.Modifiers)
	assert.Equal(t, 21, *second.Total)
}

func TestInspect_GetTargetsReturnsCopy(t *testing.T) {
	c := &check.Check{}
	check.Configure(c).SetTargets([]check.TargetData{{Name: "Goblin", UUID: "actor-1", Difficulty: 8}})

	first := check.Inspect(c).GetTargets()
	first[0].Name = "Mutated"
	_ = append(first, check.TargetData{Name: "Extra"})

	second := check.Inspect(c).GetTargets()
	require.Len(t, second, 1)
	assert.Equal(t, "Goblin", second[0].Name)
}

func TestInspect_ScalarsAreNotAliased(t *testing.T) {
	c := &check.Check{}
	check.Configure(c).SetDifficulty(10).SetHrZero(true)

	difficulty := check.Inspect(c).GetDifficulty()
	*difficulty = 1
	hrZero := check.Inspect(c).GetHrZero()
	*hrZero = false

	assert.Equal(t, 10, *check.Inspect(c).GetDifficulty())
	assert.True(t, *check.Inspect(c).GetHrZero())
}

func TestInspect_EmptyTargetsDistinctFromAbsent(t *testing.T) {
	c := &check.Check{}
	assert.Nil(t, check.Inspect(c).GetTargets())

	check.Configure(c).SetTargets(nil)
	targets := check.Inspect(c).GetTargets()
	assert.NotNil(t, targets)
	assert.Empty(t, targets)
}

func TestInspect_NilSource(t *testing.T) {
	inspector := check.Inspect(nil)

	assert.False(t, inspector.Check())
	assert.Nil(t, inspector.GetDamage())
	assert.Nil(t, inspector.GetHrZero())
	assert.Nil(t, inspector.GetTargetedDefense())
	assert.Nil(t, inspector.GetDifficulty())
	assert.Nil(t, inspector.GetTargets())
}

func TestAdditionalData_JSONRoundTrip(t *testing.T) {
	c := &check.Check{ID: "check-1", Type: check.TypeAccuracy}
	check.Configure(c).
		SetDamage(affinity.DamagePhysical, 10).
		SetDifficulty(9).
		SetTargets([]check.TargetData{})

	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var decoded check.Check
	require.NoError(t, json.Unmarshal(raw, &decoded))

	inspector := check.Inspect(&decoded)
	assert.Equal(t, 9, *inspector.GetDifficulty())
	assert.Nil(t, inspector.GetHrZero())
	assert.Nil(t, inspector.GetDamage().Total)
	assert.NotNil(t, inspector.GetTargets())
}
