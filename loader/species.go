// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package loader

// speciesNameToCode maps the species labels used in the hunts CSV to
// canonical species codes.
var speciesNameToCode = map[string]string{
	"Elk":                          "ELK",
	"Deer":                         "DER",
	"Mule deer":                    "DER",
	"White-tailed deer":            "DER",
	"Pronghorn":                    "ANT",
	"Antelope":                     "ANT",
	"Oryx":                         "ORX",
	"Ibex":                         "IBX",
	"Barbary sheep":                "BBY",
	"Bighorn sheep":                "BHS",
	"Rocky Mountain bighorn sheep": "BHS",
	"Desert bighorn sheep":         "BHS",
}

// resolveSpecies returns the species id for a CSV label. A label that is
// already a known species code is used as is.
func resolveSpecies(label string, speciesIDs map[string]int64) (int64, bool) {
	code := label
	if _, ok := speciesIDs[label]; !ok {
		code = speciesNameToCode[label]
	}
	id, ok := speciesIDs[code]
	return id, ok
}
