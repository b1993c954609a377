package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/laststand/internal/game/inventory"
)

func TestParseTier(t *testing.T) {
	for _, name := range []string{"light", "medium", "heavy", "fatal"} {
		tier, err := inventory.ParseTier(name)
		require.NoError(t, err)
		assert.Equal(t, inventory.Tier(name), tier)
	}
	_, err := inventory.ParseTier("grievous")
	assert.Error(t, err)
}

func TestParts_UnmarshalRejectsUnknownTier(t *testing.T) {
	var p inventory.Parts
	err := yaml.Unmarshal([]byte("light: [hand]\nmortal: [soul]\n"), &p)
	assert.Error(t, err)
}

func TestParts_Validate(t *testing.T) {
	var p inventory.Parts
	require.NoError(t, yaml.Unmarshal([]byte("light: [hand]\nmedium: []\n"), &p))

	assert.True(t, p.Has(inventory.TierLight))
	assert.False(t, p.Has(inventory.TierMedium))
	assert.Equal(t, []string{"hand"}, p.Phrases(inventory.TierLight))
	assert.Nil(t, p.Phrases(inventory.TierFatal))

	assert.NoError(t, p.Validate(inventory.TierLight))
	assert.Error(t, p.Validate(inventory.TierLight, inventory.TierMedium))
}

func TestVerbSet_ValidateForbidsFatalTier(t *testing.T) {
	v := &inventory.VerbSet{
		ID: "pierce",
		Verbs: inventory.Parts{
			inventory.TierLight:  {"graze[s]"},
			inventory.TierMedium: {"wound[s]"},
			inventory.TierHeavy:  {"tear[s] into"},
		},
	}
	require.NoError(t, v.Validate())

	v.Verbs[inventory.TierFatal] = []string{"slay[s]"}
	assert.Error(t, v.Validate())
}

func TestVerbSet_ValidateRequiresAllTiers(t *testing.T) {
	v := &inventory.VerbSet{
		ID:    "blunt",
		Verbs: inventory.Parts{inventory.TierLight: {"slap[s]"}},
	}
	assert.Error(t, v.Validate())
}
