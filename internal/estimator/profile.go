package estimator

// HousingType is the dwelling category the base profiles are keyed by.
type HousingType string

const (
	HousingFlat     HousingType = "flat"
	HousingTenement HousingType = "tenement"
)

// RoomConfig is a coarse dwelling size, BHK style.
type RoomConfig string

const (
	Rooms1BHK RoomConfig = "1BHK"
	Rooms2BHK RoomConfig = "2BHK"
	Rooms3BHK RoomConfig = "3BHK"
)

// BaseProfile is the per-category base consumption in kWh/day for one
// (housing, rooms) pair. FanAC is the unadjusted value before the weather
// multiplier is applied.
type BaseProfile struct {
	Lighting     float64 `json:"lighting"`
	FanAC        float64 `json:"fan_ac"`
	Appliances   float64 `json:"appliances"`
	WaterHeater  float64 `json:"water_heater"`
	Refrigerator float64 `json:"refrigerator"`
}

type profileKey struct {
	housing HousingType
	rooms   RoomConfig
}

// Reference data, never mutated at runtime. Values follow average Indian
// residential consumption patterns per appliance group.
var baseProfiles = map[profileKey]BaseProfile{
	{HousingFlat, Rooms1BHK}:     {Lighting: 1.5, FanAC: 4.0, Appliances: 3.5, WaterHeater: 2.0, Refrigerator: 1.8},
	{HousingFlat, Rooms2BHK}:     {Lighting: 2.2, FanAC: 6.0, Appliances: 4.5, WaterHeater: 2.5, Refrigerator: 2.0},
	{HousingFlat, Rooms3BHK}:     {Lighting: 3.0, FanAC: 8.0, Appliances: 6.0, WaterHeater: 3.0, Refrigerator: 2.2},
	{HousingTenement, Rooms1BHK}: {Lighting: 1.8, FanAC: 5.0, Appliances: 3.0, WaterHeater: 1.5, Refrigerator: 1.6},
	{HousingTenement, Rooms2BHK}: {Lighting: 2.5, FanAC: 7.0, Appliances: 4.0, WaterHeater: 2.0, Refrigerator: 1.8},
	{HousingTenement, Rooms3BHK}: {Lighting: 3.5, FanAC: 9.0, Appliances: 5.5, WaterHeater: 2.5, Refrigerator: 2.0},
}

// LookupBaseProfile returns the base profile for a housing configuration.
// ok is false when either key is outside the supported set; callers must not
// substitute a default profile in that case.
func LookupBaseProfile(housing HousingType, rooms RoomConfig) (BaseProfile, bool) {
	p, ok := baseProfiles[profileKey{housing, rooms}]
	return p, ok
}

// ProfileEntry pairs a housing configuration with its base profile, for
// display and debugging.
type ProfileEntry struct {
	HousingType HousingType `json:"housing_type"`
	RoomConfig  RoomConfig  `json:"room_config"`
	Profile     BaseProfile `json:"profile"`
}

var profileOrder = []profileKey{
	{HousingFlat, Rooms1BHK},
	{HousingFlat, Rooms2BHK},
	{HousingFlat, Rooms3BHK},
	{HousingTenement, Rooms1BHK},
	{HousingTenement, Rooms2BHK},
	{HousingTenement, Rooms3BHK},
}

// Profiles returns a copy of the full base profile table in a stable order.
func Profiles() []ProfileEntry {
	entries := make([]ProfileEntry, 0, len(profileOrder))
	for _, k := range profileOrder {
		entries = append(entries, ProfileEntry{
			HousingType: k.housing,
			RoomConfig:  k.rooms,
			Profile:     baseProfiles[k],
		})
	}
	return entries
}
