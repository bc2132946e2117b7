package quakeml

import "strings"

// The catalog document spells enumerated codes as long resource
// identifiers ("...MarsEventType#LOW_FREQUENCY"). The tables below map
// them to the short internal codes used throughout the data model. A
// translator scans its table in order and returns the short code of the
// first entry whose code string is a substring of the input; an input
// matching no entry translates to the empty string rather than failing,
// so novel codes never abort ingestion.

type codeEntry struct {
	code  string
	short string
}

var qualityCodes = []codeEntry{
	{"MarsLocationQualityType#D", "D"},
	{"MarsLocationQualityType#C", "C"},
	{"MarsLocationQualityType#B", "B"},
	{"MarsLocationQualityType#A", "A"},
}

var eventTypeCodes = []codeEntry{
	{"MarsEventType#BROADBAND", "BB"},
	{"MarsEventType#WIDEBAND", "WB"},
	{"MarsEventType#LOW_FREQUENCY", "LF"},
	{"MarsEventType#VERY_HIGH_FREQUENCY", "VF"},
	{"MarsEventType#HIGH_FREQUENCY", "HF"},
	{"MarsEventType#2.4_HZ", "24"},
	{"MarsEventType#SUPER_HIGH_FREQUENCY", "SF"},
	// Deep learning event types
	{"MarsEventType#DL-HIGH_FREQUENCY", "DL-HF"},
	{"MarsEventType#DL-VERY_HIGH_FREQUENCY", "DL-VF"},
	{"MarsEventType#DL-LOW_FREQUENCY", "DL-LF"},
	{"MarsEventType#DL-BROADBAND", "DL-BB"},
	{"MarsEventType#DL-WIDEBAND", "DL-WB"},
	{"MarsEventType#DL-2.4_HZ", "DL-24"},
	{"MarsEventType#DL-SUPER_HIGH_FREQUENCY", "DL-SF"},
}

var interpretationCodes = []codeEntry{
	{"MarsEventTypeInterpretation#SWARM", "swarm"},
	{"MarsEventTypeInterpretation#IMPACT", "impact"},
	{"MarsEventTypeInterpretation#TECTONIC", "tectonic"},
	{"MarsEventTypeInterpretation#UNKNOWN", "unknown"},
}

func translate(table []codeEntry, input string) string {
	for _, entry := range table {
		if strings.Contains(input, entry.code) {
			return entry.short
		}
	}
	return ""
}

// translateQuality maps a location quality resource identifier to its
// grade (A through D).
func translateQuality(input string) string { return translate(qualityCodes, input) }

// translateEventType maps a Mars event type resource identifier to its
// short code (BB, WB, LF, VF, HF, 24, SF and their DL- variants).
func translateEventType(input string) string { return translate(eventTypeCodes, input) }

// translateInterpretation maps an event type interpretation resource
// identifier to its label (swarm, impact, tectonic, unknown).
func translateInterpretation(input string) string { return translate(interpretationCodes, input) }
