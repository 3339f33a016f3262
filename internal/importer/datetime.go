package importer

import (
	"strings"
	"time"
	_ "time/tzdata"
)

// Vendor exports render timestamps in the portal user's locale and append a
// bare timezone abbreviation ("31/12/2023 23:59:59 BRST"). Abbreviations are
// ambiguous, so known ones are pinned to an IANA zone and anything else falls
// back to America/Sao_Paulo, where the bulk of the fleet operates.
var zoneAbbrevs = map[string]string{
	"BRST":  "America/Sao_Paulo",
	"BRT":   "America/Sao_Paulo",
	"ESAST": "Africa/Johannesburg",
	"SAST":  "Africa/Johannesburg",
	"EST":   "America/New_York",
	"EDT":   "America/New_York",
	"PST":   "America/Los_Angeles",
	"PDT":   "America/Los_Angeles",
	"UTC":   "UTC",
	"GMT":   "UTC",
}

const defaultZone = "America/Sao_Paulo"

// timeLayouts is ordered: day-first is the dominant locale in the fleet, so
// it wins over month-first for ambiguous dates like 05/04/2023. Layouts with
// an embedded offset carry their own zone and skip localization.
var timeLayouts = []struct {
	layout string
	zoned  bool
}{
	{"02/01/2006 15:04:05.999999", false},
	{"02/01/2006 15:04:05-07:00", true},
	{"02/01/2006 15:04:05-0700", true},
	{"01/02/2006 15:04:05.999999", false},
	{"01/02/2006 15:04:05-07:00", true},
	{"01/02/2006 15:04:05-0700", true},
	{"2006-01-02 15:04:05.999999", false},
	{"2006-01-02 15:04:05-07:00", true},
	{"2006-01-02 15:04:05-0700", true},
	{"02/01/2006", false},
	{"01/02/2006", false},
	{"2006-01-02", false},
}

func lookupZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

func isUpperAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return len(s) > 0
}

// ParseTimestamp converts a vendor-rendered timestamp to UTC. A trailing
// all-uppercase token of 3 to 5 letters is treated as a timezone
// abbreviation and stripped before the layouts are tried. Naive values are
// localized in the detected zone; values with an embedded offset keep it.
// Unparseable input yields nil, never an error: a bad cell drops a value,
// not a row.
func ParseTimestamp(value string) *time.Time {
	s := strings.TrimSpace(value)
	if s == "" {
		return nil
	}

	loc := lookupZone(defaultZone)
	if parts := strings.Fields(s); len(parts) > 1 {
		last := parts[len(parts)-1]
		if len(last) >= 3 && len(last) <= 5 && isUpperAlpha(last) {
			if name, ok := zoneAbbrevs[last]; ok {
				loc = lookupZone(name)
			}
			s = strings.TrimSpace(strings.Join(parts[:len(parts)-1], " "))
		}
	}

	for _, l := range timeLayouts {
		var t time.Time
		var err error
		if l.zoned {
			t, err = time.Parse(l.layout, s)
		} else {
			t, err = time.ParseInLocation(l.layout, s, loc)
		}
		if err == nil {
			u := t.UTC()
			return &u
		}
	}
	return nil
}
