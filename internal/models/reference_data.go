package models

import (
	"fmt"
	"sort"
)

// Recognized zones.
const (
	ZoneSurabayaPusat   = "Surabaya Pusat"
	ZoneSurabayaTimur   = "Surabaya Timur"
	ZoneSurabayaBarat   = "Surabaya Barat"
	ZoneSurabayaUtara   = "Surabaya Utara"
	ZoneSurabayaSelatan = "Surabaya Selatan"
)

// ZoneReference holds the static reference values for one zone.
type ZoneReference struct {
	ValuePerArea float64 `json:"njop_per_m2" yaml:"njop_per_m2"`
	District     string  `json:"kecamatan" yaml:"kecamatan"`
	Address      string  `json:"alamat" yaml:"alamat"`
}

// IndicatorSlot is one key of a one-hot block. The key is set to 1 when the
// resolved zone is listed in Zones.
type IndicatorSlot struct {
	Key   string   `json:"key" yaml:"key"`
	Zones []string `json:"zones" yaml:"zones"`
}

// ReferenceData is the zone lookup table used by the input adapter.
//
// Lookups never fail: an unrecognized zone resolves to DefaultZone.
type ReferenceData struct {
	DefaultZone      string                   `json:"default_zone" yaml:"default_zone"`
	Zones            map[string]ZoneReference `json:"zones" yaml:"zones"`
	HighDensityZones []string                 `json:"high_density_zones" yaml:"high_density_zones"`
	AddressSlots     []IndicatorSlot          `json:"address_slots" yaml:"address_slots"`
	DistrictSlots    []IndicatorSlot          `json:"district_slots" yaml:"district_slots"`
}

// DefaultReferenceData returns the built-in Surabaya table.
//
// Two entries fire more than one indicator: Surabaya Pusat is listed in the
// Jl. Ahmad Yani address slot as well as its own, and Surabaya Barat is listed
// in both the Sambikerep and Lakarsantri district slots. The prediction models
// were fit on vectors with this shape.
func DefaultReferenceData() ReferenceData {
	return ReferenceData{
		DefaultZone: ZoneSurabayaTimur,
		Zones: map[string]ZoneReference{
			ZoneSurabayaPusat:   {ValuePerArea: 15000000, District: "Genteng", Address: "Jl. Tunjungan"},
			ZoneSurabayaTimur:   {ValuePerArea: 8500000, District: "Gubeng", Address: "Jl. Kertajaya"},
			ZoneSurabayaBarat:   {ValuePerArea: 7000000, District: "Lakarsantri", Address: "Jl. Mayjen Sungkono"},
			ZoneSurabayaUtara:   {ValuePerArea: 5500000, District: "Kenjeran", Address: "Jl. Kenjeran"},
			ZoneSurabayaSelatan: {ValuePerArea: 10000000, District: "Wonokromo", Address: "Jl. Ahmad Yani"},
		},
		HighDensityZones: []string{ZoneSurabayaPusat, ZoneSurabayaTimur},
		AddressSlots: []IndicatorSlot{
			{Key: "alamat_jl_tunjungan", Zones: []string{ZoneSurabayaPusat}},
			{Key: "alamat_jl_kertajaya", Zones: []string{ZoneSurabayaTimur}},
			{Key: "alamat_jl_mayjen_sungkono", Zones: []string{ZoneSurabayaBarat}},
			{Key: "alamat_jl_kenjeran", Zones: []string{ZoneSurabayaUtara}},
			{Key: "alamat_jl_ahmad_yani", Zones: []string{ZoneSurabayaSelatan, ZoneSurabayaPusat}},
		},
		DistrictSlots: []IndicatorSlot{
			{Key: "kecamatan_genteng", Zones: []string{ZoneSurabayaPusat}},
			{Key: "kecamatan_gubeng", Zones: []string{ZoneSurabayaTimur}},
			{Key: "kecamatan_sambikerep", Zones: []string{ZoneSurabayaBarat}},
			{Key: "kecamatan_lakarsantri", Zones: []string{ZoneSurabayaBarat}},
			{Key: "kecamatan_kenjeran", Zones: []string{ZoneSurabayaUtara}},
			{Key: "kecamatan_wonokromo", Zones: []string{ZoneSurabayaSelatan}},
		},
	}
}

// Validate checks that the table is complete and self-consistent.
func (r ReferenceData) Validate() error {
	if len(r.Zones) == 0 {
		return fmt.Errorf("reference data has no zones")
	}
	if _, ok := r.Zones[r.DefaultZone]; !ok {
		return fmt.Errorf("default zone %q is not a known zone", r.DefaultZone)
	}
	for name, zone := range r.Zones {
		if zone.ValuePerArea <= 0 {
			return fmt.Errorf("zone %q: value per area must be positive", name)
		}
		if zone.District == "" {
			return fmt.Errorf("zone %q: district is required", name)
		}
		if zone.Address == "" {
			return fmt.Errorf("zone %q: address is required", name)
		}
	}
	for _, z := range r.HighDensityZones {
		if _, ok := r.Zones[z]; !ok {
			return fmt.Errorf("high density zone %q is not a known zone", z)
		}
	}
	if err := validateSlots("address", r.AddressSlots, r.Zones); err != nil {
		return err
	}
	return validateSlots("district", r.DistrictSlots, r.Zones)
}

func validateSlots(kind string, slots []IndicatorSlot, zones map[string]ZoneReference) error {
	if len(slots) == 0 {
		return fmt.Errorf("%s indicator slots are required", kind)
	}
	seen := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		if slot.Key == "" {
			return fmt.Errorf("%s indicator slot without key", kind)
		}
		if _, dup := seen[slot.Key]; dup {
			return fmt.Errorf("%s indicator key %q is duplicated", kind, slot.Key)
		}
		seen[slot.Key] = struct{}{}
		for _, z := range slot.Zones {
			if _, ok := zones[z]; !ok {
				return fmt.Errorf("%s indicator %q names unknown zone %q", kind, slot.Key, z)
			}
		}
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate a table held elsewhere.
func (r ReferenceData) Clone() ReferenceData {
	out := ReferenceData{
		DefaultZone:      r.DefaultZone,
		Zones:            make(map[string]ZoneReference, len(r.Zones)),
		HighDensityZones: append([]string(nil), r.HighDensityZones...),
		AddressSlots:     cloneSlots(r.AddressSlots),
		DistrictSlots:    cloneSlots(r.DistrictSlots),
	}
	for k, v := range r.Zones {
		out.Zones[k] = v
	}
	return out
}

func cloneSlots(in []IndicatorSlot) []IndicatorSlot {
	out := make([]IndicatorSlot, len(in))
	for i, s := range in {
		out[i] = IndicatorSlot{Key: s.Key, Zones: append([]string(nil), s.Zones...)}
	}
	return out
}

// ResolveZone returns zone if it is recognized, the default zone otherwise.
func (r ReferenceData) ResolveZone(zone string) string {
	if _, ok := r.Zones[zone]; ok {
		return zone
	}
	return r.DefaultZone
}

func (r ReferenceData) ValuePerArea(zone string) float64 {
	return r.Zones[r.ResolveZone(zone)].ValuePerArea
}

func (r ReferenceData) District(zone string) string {
	return r.Zones[r.ResolveZone(zone)].District
}

func (r ReferenceData) Address(zone string) string {
	return r.Zones[r.ResolveZone(zone)].Address
}

// IsHighDensity reports whether the resolved zone is a very-high-density zone.
func (r ReferenceData) IsHighDensity(zone string) bool {
	resolved := r.ResolveZone(zone)
	for _, z := range r.HighDensityZones {
		if z == resolved {
			return true
		}
	}
	return false
}

// ZoneNames returns the recognized zones sorted by name.
func (r ReferenceData) ZoneNames() []string {
	names := make([]string, 0, len(r.Zones))
	for name := range r.Zones {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fires reports whether the slot is hot for the given resolved zone.
func (s IndicatorSlot) Fires(resolvedZone string) bool {
	for _, z := range s.Zones {
		if z == resolvedZone {
			return true
		}
	}
	return false
}
