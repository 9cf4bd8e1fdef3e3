package translation

import (
	osm "github.com/omniscale/go-osm"
)

// TagAssignment is a single key=value written by a code table entry.
type TagAssignment struct {
	Key   string
	Value string
}

// CodeTable maps one coded attribute value to an ordered list of tag
// assignments. Codes without an entry resolve to the fallback assignments;
// a nil fallback makes unknown codes a no-op.
type CodeTable struct {
	codes    map[string][]TagAssignment
	fallback []TagAssignment
}

func (t *CodeTable) apply(code string, tags osm.Tags) {
	assignments, ok := t.codes[code]
	if !ok {
		assignments = t.fallback
	}
	for _, a := range assignments {
		tags[a.Key] = a.Value
	}
}

func undergroundTable() CodeTable {
	return CodeTable{
		codes: map[string][]TagAssignment{
			"02": {
				{"location", "underground"},
				{"building:levels", "0"},
				// keyed separately from the status fixmes so an
				// underground building under construction or in ruins
				// keeps both notes
				{"fixme:location", "Check location, if not verifiable remove geometry"},
			},
		},
	}
}

// buildingTypeTable covers edifc_ty. It is the first writer of the building
// tag and always writes it, unknown typology codes fall back to building=yes.
func buildingTypeTable() CodeTable {
	return CodeTable{
		codes: map[string][]TagAssignment{
			"04": {{"building", "house"}},
			"07": {
				{"building", "tower"},
				{"man_made", "tower"},
				{"tower:type", "bell_tower"},
			},
			"10": {{"building", "castle"}},
			"11": {{"building", "church"}},
			"14": {{"building", "hangar"}},
			"16": {{"building", "temple"}},
			"19": {{"building", "sports_hall"}},
			"21": {{"building", "stadium"}},
			"22": {{"building", "cathedral"}},
			"23": {
				{"building", "roof"},
				{"layer", "1"},
			},
			"24": {
				{"building", "yes"},
				{"defensive_works", "bastion"},
			},
			"25": {
				{"building", "yes"},
				{"historic", "citywalls"},
			},
		},
		fallback: []TagAssignment{{"building", "yes"}},
	}
}

// useTable covers edifc_uso. Use codes that declare a more specific building
// value overwrite the one written by buildingTypeTable; codes without an
// entry leave the tags untouched.
func useTable() CodeTable {
	return CodeTable{
		codes: map[string][]TagAssignment{
			// administrative
			"02":   {{"building", "office"}},
			"0201": {{"amenity", "townhall"}},
			"0203": {
				{"office", "government"},
				{"admin_level", "4"},
			},
			// social and health services
			"030101": {{"amenity", "social_facility"}},
			"030102": {
				{"amenity", "hospital"},
				{"healthcare", "hospital"},
			},
			"030103": {
				{"amenity", "clinic"},
				{"healthcare", "clinic"},
			},
			"030104": {
				{"amenity", "hospital"},
				{"healthcare", "hospital"},
				{"fixme:classify", "if it doesn't allows hospitalization it should be tagged as amenity=clinic"},
			},
			// education
			"030301": {{"amenity", "school"}},
			"030302": {{"amenity", "university"}},
			// public services
			"0304": {{"amenity", "post_office"}},
			"0306": {{"amenity", "police"}},
			"0307": {{"amenity", "fire_station"}},
			// worship
			"05": {{"amenity", "place_of_worship"}},
			// transport
			"060101": {{"aeroway", "aerodrome"}},
			"060102": {{"aeroway", "heliport"}},
			"060201": {
				{"amenity", "bus_station"},
				{"public_transport", "station"},
			},
			"060202": {
				{"amenity", "parking"},
				{"parking", "multi-storey"},
			},
			"060301": {{"railway", "station"}},
			"060404": {{"aerialway", "station"}},
			// commerce
			"0701": {{"amenity", "bank"}},
			"0702": {{"shop", "department_store"}},
			"0703": {{"shop", "supermarket"}},
			"0704": {{"shop", "supermarket"}},
			// industry and utilities
			"0801": {{"building", "industrial"}},
			"0802": {
				{"building", "service"},
				{"utility", "power"},
			},
			"080201": {
				{"building", "service"},
				{"utility", "power"},
			},
			"080202": {
				{"building", "service"},
				{"utility", "power"},
			},
			"080203": {
				{"building", "service"},
				{"utility", "power"},
			},
			"080206": {
				{"building", "service"},
				{"utility", "power"},
			},
			"0804": {{"man_made", "wastewater_plant"}},
			"0806": {
				{"building", "service"},
				{"utility", "telecom"},
			},
			// residential
			"0901": {{"building", "house"}},
			"0902": {{"building", "farm_auxiliary"}},
			"0903": {{"building", "farm_auxiliary"}},
			"0904": {{"building", "farm_auxiliary"}},
			// public and cultural
			"1001":   {{"building", "public"}},
			"100101": {{"amenity", "library"}},
			"100102": {{"amenity", "cinema"}},
			"100103": {{"amenity", "theatre"}},
			"100104": {{"tourism", "museum"}},
			// leisure
			"1002": {{"building", "sports_centre"}},
			"100201": {
				{"leisure", "swimming_pool"},
				{"indoor", "yes"},
			},
			"100202": {{"leisure", "sports_hall"}},
			// detention
			"11": {{"amenity", "prison"}},
			// accommodation
			"1201": {{"building", "hotel"}},
			"1202": {{"building", "hotel"}},
			"1203": {{"tourism", "camp_site"}},
			"1204": {{"tourism", "alpine_hut"}},
		},
	}
}

// checkGeomTable flags geometries that may be clipped at the regional border,
// an artifact of the per-region source layers the dataset is assembled from.
func checkGeomTable() CodeTable {
	return CodeTable{
		codes: map[string][]TagAssignment{
			"01": {
				{"fixme:geometry", "check if the building is cut on regional border"},
			},
		},
	}
}
