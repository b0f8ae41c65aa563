package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupBaseProfileTable(t *testing.T) {
	cases := []struct {
		housing HousingType
		rooms   RoomConfig
		want    BaseProfile
	}{
		{HousingFlat, Rooms1BHK, BaseProfile{1.5, 4.0, 3.5, 2.0, 1.8}},
		{HousingFlat, Rooms2BHK, BaseProfile{2.2, 6.0, 4.5, 2.5, 2.0}},
		{HousingFlat, Rooms3BHK, BaseProfile{3.0, 8.0, 6.0, 3.0, 2.2}},
		{HousingTenement, Rooms1BHK, BaseProfile{1.8, 5.0, 3.0, 1.5, 1.6}},
		{HousingTenement, Rooms2BHK, BaseProfile{2.5, 7.0, 4.0, 2.0, 1.8}},
		{HousingTenement, Rooms3BHK, BaseProfile{3.5, 9.0, 5.5, 2.5, 2.0}},
	}

	for _, tc := range cases {
		t.Run(string(tc.housing)+"/"+string(tc.rooms), func(t *testing.T) {
			got, ok := LookupBaseProfile(tc.housing, tc.rooms)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLookupBaseProfileUnknown(t *testing.T) {
	cases := []struct {
		housing HousingType
		rooms   RoomConfig
	}{
		{"villa", Rooms1BHK},
		{HousingFlat, "4BHK"},
		{"", ""},
		{"Flat", Rooms2BHK}, // keys are case sensitive
	}

	for _, tc := range cases {
		_, ok := LookupBaseProfile(tc.housing, tc.rooms)
		assert.False(t, ok, "%s/%s should not resolve", tc.housing, tc.rooms)
	}
}

func TestProfilesCoversAllCombinations(t *testing.T) {
	entries := Profiles()
	require.Len(t, entries, 6)

	seen := map[string]bool{}
	for _, e := range entries {
		seen[string(e.HousingType)+"/"+string(e.RoomConfig)] = true

		want, ok := LookupBaseProfile(e.HousingType, e.RoomConfig)
		require.True(t, ok)
		assert.Equal(t, want, e.Profile)
	}
	assert.Len(t, seen, 6)
}
