package letter

// ScenarioPreset is a named letter scenario: a default tone, a subject
// template and a hint for the description field. Presets are static and
// never mutated at runtime.
type ScenarioPreset struct {
	Key      string
	Title    string
	Tone     Tone
	Subject  string
	BodyHint string
}

// The preset table covers the citizen-service letters the tool is most
// often used for. Keys are stable; drafts and history reference them.
var presets = []ScenarioPreset{
	{
		Key:      "ansoegning",
		Title:    "Ansøgning til kommunen",
		Tone:     ToneFormal,
		Subject:  "Ansøgning om støtte",
		BodyHint: "Beskriv hvad du søger om, og hvorfor du har brug for det.",
	},
	{
		Key:      "klage",
		Title:    "Klage over afgørelse",
		Tone:     ToneFormal,
		Subject:  "Klage over afgørelse",
		BodyHint: "Beskriv afgørelsen, sagsnummeret og hvorfor du er uenig.",
	},
	{
		Key:      "tidsaendring",
		Title:    "Flytning af aftale",
		Tone:     ToneNeutral,
		Subject:  "Anmodning om ny tid",
		BodyHint: "Skriv hvilken aftale det gælder, og hvornår du kan i stedet.",
	},
	{
		Key:      "opsigelse",
		Title:    "Opsigelse af abonnement",
		Tone:     ToneNeutral,
		Subject:  "Opsigelse af abonnement",
		BodyHint: "Skriv hvad du opsiger, kundenummer og ønsket slutdato.",
	},
	{
		Key:      "skole_fravaer",
		Title:    "Besked om fravær (skole)",
		Tone:     ToneFriendly,
		Subject:  "Fravær",
		BodyHint: "Skriv barnets navn, klasse og hvornår og hvorfor barnet er fraværende.",
	},
}

// Presets returns the scenario presets in display order. The returned slice
// is a copy; callers may not mutate the table through it.
func Presets() []ScenarioPreset {
	out := make([]ScenarioPreset, len(presets))
	copy(out, presets)
	return out
}

// PresetByKey looks up a preset. The second result is false for unknown
// keys, including ScenarioCustom which deliberately has no preset.
func PresetByKey(key string) (ScenarioPreset, bool) {
	for _, p := range presets {
		if p.Key == key {
			return p, true
		}
	}
	return ScenarioPreset{}, false
}
