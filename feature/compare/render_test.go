package compare

import (
	"testing"

	"template-verifier/core/diff"

	"github.com/stretchr/testify/assert"
)

func TestRender_Failed(t *testing.T) {
	v := sampleVerdict()
	v.Findings = append(v.Findings,
		Finding{
			Type:    FindingStructuralMismatch,
			Tier:    "paid",
			Kind:    "imagestream",
			Name:    "ruby.json",
			Message: "Upstream imagestream is different with Online Paid imagestream ruby.json",
			Failure: true,
			Changes: []diff.Entry{{Path: "$.tags[1]", Op: diff.OpChanged, Old: "2.5", New: "2.6"}},
		},
		Finding{
			Type:    FindingExtraOnlineEntry,
			Tier:    "paid",
			Kind:    "imagestream",
			Name:    "extra.json",
			Message: "Library Paid directory is missing imagestream extra.json",
		},
	)

	out := Render(v)
	assert.Contains(t, out, "Differences found")
	assert.Contains(t, out, "Free templates")
	assert.Contains(t, out, "Paid imagestreams")
	assert.Contains(t, out, "Online Free directory is missing template b.json")
	assert.Contains(t, out, `$.tags[1]: changed "2.5" -> "2.6"`)
	assert.Contains(t, out, "Library Paid directory is missing imagestream extra.json")
	assert.Contains(t, out, "1 missing online")
	assert.Contains(t, out, "2 failing")
}

func TestRender_Clean(t *testing.T) {
	v := &Verdict{RunID: "run-7", Summary: Summary{Tasks: 4, Compared: 12, Identical: 12}}

	out := Render(v)
	assert.Contains(t, out, "No differences found")
	assert.Contains(t, out, "run-7")
	assert.Contains(t, out, "12 identical")
	assert.NotContains(t, out, "failing")
}
