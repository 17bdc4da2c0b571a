package letter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestDraftEmpty(t *testing.T) {
	assert.True(t, NewDraft().Empty(), "a fresh draft has no content")
	assert.True(t, Draft{Subject: "   "}.Empty(), "whitespace is not content")
	assert.False(t, Draft{Body: "noget"}.Empty())
	assert.False(t, Draft{Output: "Emne: x"}.Empty(), "generated output counts as content")
}

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, LanguageUkrainian, d.Language)
	assert.Equal(t, ToneFormal, d.Tone)
	assert.Equal(t, ScenarioCustom, d.Scenario)
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	d := Draft{
		Language:  LanguageEnglish,
		Tone:      ToneFriendly,
		Scenario:  "skole_fravaer",
		Subject:   "Fravær",
		Recipient: "skolen",
		Body:      "My child is sick today.",
		Output:    "Emne: Fravær\n\nKære skolen,\n…",
	}

	got := Restore(Snapshot(d))
	if diff := cmp.Diff(d, got); diff != "" {
		t.Errorf("draft changed through snapshot round trip (-want +got):\n%s", diff)
	}
}

func TestPresetLookup(t *testing.T) {
	for _, p := range Presets() {
		t.Run(p.Key, func(t *testing.T) {
			got, ok := PresetByKey(p.Key)
			assert.True(t, ok)
			assert.Equal(t, p.Title, got.Title)
			assert.True(t, got.Tone.Valid())
			assert.NotEmpty(t, got.Subject)
			assert.NotEmpty(t, got.BodyHint)
		})
	}

	_, ok := PresetByKey(ScenarioCustom)
	assert.False(t, ok, "custom has no preset")
	_, ok = PresetByKey("nope")
	assert.False(t, ok)
}

func TestPresetsReturnsACopy(t *testing.T) {
	Presets()[0].Title = "ændret"
	assert.NotEqual(t, "ændret", Presets()[0].Title)
}
