package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/actor"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/affinity"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/classfeature"
)

func TestParseSeed(t *testing.T) {
	data, err := os.ReadFile("testdata/party.yaml")
	require.NoError(t, err)

	actors, err := ParseSeed(data)
	require.NoError(t, err)
	require.Len(t, actors, 2)

	hero := actors[0]
	assert.Equal(t, "hero", hero.ID)
	assert.Equal(t, actor.TypeCharacter, hero.Type)
	assert.Equal(t, 10, hero.Attributes.Insight.Current)
	assert.Equal(t, actor.Resource{Value: 45, Max: 45}, hero.Resources.HP)
	require.Len(t, hero.ClassFeatures(), 1)
	assert.JSONEq(t, `{"domains":"fire, passion","merge":"Fire damage dealt ignores resistance","dismiss":"Flame burst"}`,
		string(hero.Items[0].Data))

	registry := classfeature.NewRegistry()
	require.NoError(t, classfeature.RegisterClassFeatures(registry))
	decoded, err := registry.Decode(hero.Items[0].FeatureType, hero.Items[0].Data)
	require.NoError(t, err)
	assert.Equal(t, "fire, passion", decoded.(*classfeature.Arcanum).Domains)

	chimera := actors[1]
	assert.True(t, chimera.IsNPC())
	require.NotNil(t, chimera.Rank)
	assert.Equal(t, 3, chimera.Rank.ReplacedSoldiers())
	assert.Equal(t, affinity.Absorption, chimera.Affinity(affinity.DamageFire))
	assert.Equal(t, affinity.Vulnerability, chimera.Affinity(affinity.DamageIce))
	assert.Equal(t, affinity.None, chimera.Affinity(affinity.DamageBolt))
}

func TestParseSeed_Errors(t *testing.T) {
	_, err := ParseSeed([]byte("actors: [{type: npc}]"))
	assert.ErrorContains(t, err, "name is required")

	_, err = ParseSeed([]byte("actors: {"))
	assert.Error(t, err)
}
