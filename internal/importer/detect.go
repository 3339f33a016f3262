package importer

import (
	"path/filepath"
	"strings"
)

// detectPatterns is ordered so that entities whose normalized name contains
// another entity's name match first: sub clients before clients, ghost
// assets before assets, alert definitions before alerts. Needles are
// deliberately broad, with singular fallbacks, because vendor export naming
// is inconsistent ("health.csv", "Ghost-Asset Export.xlsx").
var detectPatterns = []struct {
	needle string
	entity *Entity
}{
	{"users", userEntity},
	{"user", userEntity},
	{"outlets", outletEntity},
	{"outlet", outletEntity},
	{"ghostassets", ghostAssetEntity},
	{"ghostasset", ghostAssetEntity},
	{"smartdevices", smartDeviceEntity},
	{"smartdevice", smartDeviceEntity},
	{"assets", assetEntity},
	{"asset", assetEntity},
	{"movements", movementEntity},
	{"movement", movementEntity},
	{"healthevents", healthEventEntity},
	{"health", healthEventEntity},
	{"doorevents", doorEventEntity},
	{"door", doorEventEntity},
	{"alertsdefinition", alertsDefinitionEntity},
	{"alertdefinition", alertsDefinitionEntity},
	{"subclients", subClientEntity},
	{"subclient", subClientEntity},
	{"alerts", alertEntity},
	{"alert", alertEntity},
	{"clients", clientEntity},
	{"client", clientEntity},
}

func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DetectEntity maps a vendor export filename to its entity. Matching is done
// on the lowercased basename with every non-alphanumeric stripped, so
// "Smart_Devices 11.16.25.xlsx" and "smartdevices.csv" both resolve to
// SmartDevice. Returns false when no pattern matches.
func DetectEntity(filename string) (*Entity, bool) {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	normalized := normalizeName(base)
	for _, p := range detectPatterns {
		if strings.Contains(normalized, p.needle) {
			return p.entity, true
		}
	}
	return nil, false
}
