package letter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCanonicalInputUntouched(t *testing.T) {
	raw := "Emne: Ansøgning om støtte\n\n" +
		"Kære Borgerservice,\n\n" +
		"Jeg skriver for at ansøge om støtte.\n\n" +
		"Med venlig hilsen\n[Dit navn]"

	got := Normalize(raw, "Ansøgning om støtte", Profile{})
	assert.Equal(t, raw, got)
}

func TestNormalizeStripsTranscriptAndScaffoldLines(t *testing.T) {
	raw := "Assistant: Her er brevet:\n" +
		"User: skriv brevet\n" +
		"Subject: Ansøgning\n" +
		"Recipient: Borgerservice\n" +
		"  body: noget input\n" +
		"Emne: Ansøgning om støtte\n\n" +
		"Kære Borgerservice,\n\n" +
		"Jeg skriver for at ansøge om støtte.\n\n" +
		"Med venlig hilsen\n[Dit navn]"

	got := Normalize(raw, "", Profile{})
	assert.NotContains(t, got, "Assistant:")
	assert.NotContains(t, got, "Subject:")
	assert.NotContains(t, got, "Recipient:")
	assert.NotContains(t, got, "body:")
	assert.True(t, strings.HasPrefix(got, "Emne: Ansøgning om støtte"))
}

func TestNormalizeAddsMissingSubject(t *testing.T) {
	raw := "Kære Borgerservice,\n\nTak for jeres svar i sidste uge.\n\nMed venlig hilsen\n[Dit navn]"

	got := Normalize(raw, "Opfølgning", Profile{})
	assert.True(t, strings.HasPrefix(got, "Emne: Opfølgning\n\n"), got)

	// No subject anywhere: the fallback placeholder is used.
	got = Normalize(raw, "   ", Profile{})
	assert.True(t, strings.HasPrefix(got, "Emne: "+NoSubjectFallback), got)
}

func TestNormalizeAddsMissingValediction(t *testing.T) {
	raw := "Emne: Fravær\n\nKære skolen,\n\nMit barn er sygt i dag."

	got := Normalize(raw, "Fravær", Profile{})
	assert.Equal(t, raw+"\n\n"+Valediction+"\n"+NamePlaceholder, got)
}

func TestNormalizeKeepsExistingValediction(t *testing.T) {
	raw := "Emne: Fravær\n\nKære skolen,\n\nMit barn er sygt.\n\nDe bedste hilsner\n[Dit navn]"

	got := Normalize(raw, "Fravær", Profile{})
	assert.Equal(t, 1, strings.Count(got, "hilsn"), "no second closing may be added: %s", got)
}

func TestNormalizeMergesProfileSignature(t *testing.T) {
	raw := "Emne: Ansøgning\n\nKære Borgerservice,\n\nJeg søger om støtte.\n\nMed venlig hilsen\n[Dit navn]"
	profile := Profile{
		Name:    "Olena Petrenko",
		Phone:   "12 34 56 78",
		Email:   "olena@example.dk",
		Address: "Nørregade 1, 8000 Aarhus C",
	}

	got := Normalize(raw, "Ansøgning", profile)
	assert.True(t, strings.HasSuffix(got,
		Valediction+"\nOlena Petrenko\n12 34 56 78\nolena@example.dk\nNørregade 1, 8000 Aarhus C"), got)
	assert.NotContains(t, got, NamePlaceholder)
}

func TestNormalizeSignatureSkipsBlankProfileFields(t *testing.T) {
	raw := "Emne: X\n\nKære Y,\n\nTekst her.\n\nMed venlig hilsen\n[Dit navn]"
	got := Normalize(raw, "X", Profile{Name: "Olena", Email: "olena@example.dk"})
	assert.True(t, strings.HasSuffix(got, Valediction+"\nOlena\nolena@example.dk"), got)
}

func TestNormalizeIdempotent(t *testing.T) {
	raws := []string{
		"Assistant: svar\nKære kommunen,\n\nJeg opsiger mit abonnement.",
		"Emne: Klage\n\nKære udvalg,\n\nJeg klager over afgørelsen.\n\nMed venlig hilsen\n[Dit navn]",
		"bare en enkelt linje",
	}
	profiles := []Profile{
		{},
		{Name: "Olena Petrenko", Phone: "12 34 56 78"},
	}

	for _, raw := range raws {
		for _, p := range profiles {
			once := Normalize(raw, "Emnelinje", p)
			twice := Normalize(once, "Emnelinje", p)
			assert.Equal(t, once, twice)
		}
	}
}

func TestNormalizeWithExtraLabels(t *testing.T) {
	raw := "Brev: her kommer det\nEmne: Test\n\nKære kommune,\n\nTekst.\n\nMed venlig hilsen\n[Dit navn]"

	got := NormalizeWith(raw, "Test", Profile{}, NormalizeOptions{ExtraLabels: []string{"brev:"}})
	assert.NotContains(t, got, "Brev:")

	// Without the extra label the line survives.
	got = Normalize(raw, "Test", Profile{})
	assert.Contains(t, got, "Brev:")
}
