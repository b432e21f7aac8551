package armory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/brawl-tournament/internal/config"
	dnderr "github.com/KirkDiggler/brawl-tournament/internal/errors"
	"github.com/KirkDiggler/brawl-tournament/internal/services/armory"
)

func TestNewService_DefaultPresets(t *testing.T) {
	svc, err := armory.NewService(config.DefaultPresets())
	require.NoError(t, err)

	pepper := svc.Weapon("pepper")
	require.NotNil(t, pepper)
	assert.Equal(t, "pepper spray", pepper.Name)
	assert.Equal(t, 3, pepper.MinDamage)
	assert.Equal(t, 6, pepper.MaxDamage)
	assert.Equal(t, 0.8, pepper.HitChance)

	knuckles := svc.Weapon("knuckles")
	require.NotNil(t, knuckles)
	assert.Equal(t, "knuckle duster", knuckles.Name)

	candidates := svc.Candidates()
	require.Len(t, candidates, 2)
	assert.Same(t, pepper, candidates[0])
	assert.Same(t, knuckles, candidates[1])

	assert.Len(t, svc.List(), 2)
}

func TestWeapon_UnknownKeyFallsBackToDefault(t *testing.T) {
	svc, err := armory.NewService(config.DefaultPresets())
	require.NoError(t, err)

	assert.Same(t, svc.Default(), svc.Weapon("chainsaw"))
	assert.Equal(t, "pepper", svc.Weapon("").Key)
}

func TestLookup_UnknownKeyIsNotFound(t *testing.T) {
	svc, err := armory.NewService(config.DefaultPresets())
	require.NoError(t, err)

	_, err = svc.Lookup("chainsaw")
	assert.True(t, dnderr.IsNotFound(err))

	w, err := svc.Lookup("knuckles")
	require.NoError(t, err)
	assert.Equal(t, "knuckles", w.Key)
}

func TestCandidates_ReturnsCopy(t *testing.T) {
	svc, err := armory.NewService(config.DefaultPresets())
	require.NoError(t, err)

	c := svc.Candidates()
	c[0] = nil
	assert.NotNil(t, svc.Candidates()[0])
}

func TestNewService_RejectsBadStats(t *testing.T) {
	testCases := []struct {
		name   string
		weapon config.WeaponDef
	}{
		{
			name:   "negative min",
			weapon: config.WeaponDef{Key: "bad", Name: "bad", Min: -1, Max: 3, Accuracy: 0.5},
		},
		{
			name:   "max below min",
			weapon: config.WeaponDef{Key: "bad", Name: "bad", Min: 5, Max: 3, Accuracy: 0.5},
		},
		{
			name:   "accuracy above one",
			weapon: config.WeaponDef{Key: "bad", Name: "bad", Min: 1, Max: 3, Accuracy: 1.5},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			presets := &config.Presets{
				Weapons: []config.WeaponDef{
					{Key: "ok", Name: "ok", Min: 1, Max: 2, Accuracy: 1},
					tc.weapon,
				},
			}

			_, err := armory.NewService(presets)
			assert.True(t, dnderr.IsValidation(err))
		})
	}
}

func TestNewService_NilPresets(t *testing.T) {
	_, err := armory.NewService(nil)
	assert.True(t, dnderr.IsInvalidArgument(err))
}
