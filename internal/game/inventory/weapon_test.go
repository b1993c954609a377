package inventory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/laststand/internal/game/dice"
	mockdice "github.com/cory-johannsen/laststand/internal/game/dice/mock"
	"github.com/cory-johannsen/laststand/internal/game/inventory"
)

func slashVerbs() inventory.Parts {
	return inventory.Parts{
		inventory.TierLight:  {"graze[s]"},
		inventory.TierMedium: {"cut[s] into"},
		inventory.TierHeavy:  {"skewer[s]"},
	}
}

func newTestWeapon(t *testing.T, damage string, critRange, critMult int) *inventory.Weapon {
	t.Helper()
	w, err := inventory.NewWeapon(&inventory.WeaponDef{
		ID:             "test_blade",
		Name:           "test blade",
		Damage:         damage,
		Verbs:          "slash",
		CritRange:      critRange,
		CritMultiplier: critMult,
	}, slashVerbs())
	require.NoError(t, err)
	return w
}

func TestWeaponDef_Validate_RejectsEmpty(t *testing.T) {
	w := &inventory.WeaponDef{}
	assert.Error(t, w.Validate())
}

func TestWeaponDef_Validate_AcceptsMinimal(t *testing.T) {
	w := &inventory.WeaponDef{
		ID:             "dagger",
		Name:           "dagger",
		Damage:         "1d4",
		Verbs:          "pierce",
		CritMultiplier: 2,
	}
	assert.NoError(t, w.Validate())
}

func TestWeaponDef_Validate_RejectsBadDamageAndCrit(t *testing.T) {
	w := &inventory.WeaponDef{
		ID:             "broken",
		Name:           "broken",
		Damage:         "d8",
		Verbs:          "slash",
		CritRange:      20,
		CritMultiplier: 0,
	}
	err := w.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crit_range")
	assert.Contains(t, err.Error(), "crit_multiplier")
}

func TestLoadWeapons_LoadsYAML(t *testing.T) {
	dir := t.TempDir()
	content := `id: warhammer
name: warhammer
damage: 1d8
verbs: bludgeon
crit_range: 0
crit_multiplier: 3
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "warhammer.yaml"), []byte(content), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0644))

	weapons, err := inventory.LoadWeapons(dir)
	require.NoError(t, err)
	require.Len(t, weapons, 1)
	w := weapons[0]
	assert.Equal(t, "warhammer", w.ID)
	assert.Equal(t, "1d8", w.Damage)
	assert.Equal(t, "bludgeon", w.Verbs)
	assert.Equal(t, 3, w.CritMultiplier)
}

func TestLoadWeapons_InvalidFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("id: bad\nname: bad\ndamage: lots\n"), 0644))
	_, err := inventory.LoadWeapons(dir)
	assert.Error(t, err)
}

func TestLoadWeapons_MissingDirFails(t *testing.T) {
	_, err := inventory.LoadWeapons(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestNewWeapon_Accessors(t *testing.T) {
	w := newTestWeapon(t, "2d6", 1, 2)
	assert.Equal(t, "test blade", w.Name())
	assert.Equal(t, "a test blade", w.Indefinite())
	assert.Equal(t, 2, w.Damage().Count)
	assert.Equal(t, 6, w.Damage().Sides)
	assert.Equal(t, 1, w.CritRange())
	assert.Equal(t, 2, w.CritMultiplier())
	assert.True(t, w.Verbs().Has(inventory.TierHeavy))
}

func TestWeapon_IsCritical_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		critRange := rapid.IntRange(0, 1).Draw(t, "critRange")
		roll := rapid.IntRange(1, 20).Draw(t, "roll")
		w, err := inventory.NewWeapon(&inventory.WeaponDef{
			ID: "w", Name: "w", Damage: "1d8", Verbs: "slash", CritRange: critRange, CritMultiplier: 2,
		}, slashVerbs())
		if err != nil {
			t.Fatal(err)
		}
		want := roll >= 20-critRange
		if got := w.IsCritical(roll); got != want {
			t.Fatalf("IsCritical(%d) with range %d = %v, want %v", roll, critRange, got, want)
		}
	})
}

func TestWeapon_RollDamage_NormalHitRollsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mockdice.NewMockSource(ctrl)
	src.EXPECT().Intn(8).Return(4).Times(1)

	w := newTestWeapon(t, "1d8", 1, 2)
	dmg, err := w.RollDamage(12, 3, dice.NewLoggedRoller(src, zap.NewNop()))
	require.NoError(t, err)
	assert.Equal(t, 5+3, dmg)
}

func TestWeapon_RollDamage_CriticalRollsMultiplierTimes(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mockdice.NewMockSource(ctrl)
	gomock.InOrder(
		src.EXPECT().Intn(8).Return(0),
		src.EXPECT().Intn(8).Return(7),
		src.EXPECT().Intn(8).Return(2),
	)

	w := newTestWeapon(t, "1d8", 0, 3)
	dmg, err := w.RollDamage(20, 2, dice.NewLoggedRoller(src, zap.NewNop()))
	require.NoError(t, err)
	// (1+2) + (8+2) + (3+2)
	assert.Equal(t, 18, dmg)
}
