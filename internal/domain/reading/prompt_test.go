package reading

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func promptFor(t *testing.T, req Request) string {
	t.Helper()
	sub, err := parseRequest(req, fixedNow())
	require.NoError(t, err)
	p, err := calculate(sub, fixedNow())
	require.NoError(t, err)
	return buildUserPrompt(sub, p)
}

func TestBuildUserPromptSunOnly(t *testing.T) {
	prompt := promptFor(t, baseRequest())

	require.Contains(t, prompt, "- Name: John Smith")
	require.Contains(t, prompt, "- Age: 34")
	require.Contains(t, prompt, "- Life Path Number: 5 (")
	require.Contains(t, prompt, "- Personal Year: 22 (")
	require.Contains(t, prompt, "Birth time and location not provided")
	require.Contains(t, prompt, "- Animal: Horse")
	require.NotContains(t, prompt, "Moon Sign:")
	require.NotContains(t, prompt, "Currently on their mind")
	require.NotContains(t, prompt, "(6) Weaves in")
}

func TestBuildUserPromptWithContext(t *testing.T) {
	req := baseRequest()
	req.WhatsOnYourMind = "Should I change jobs?"
	req.Gender = "male"
	req.BirthTime = "14:30"

	prompt := promptFor(t, req)
	require.Contains(t, prompt, `- Currently on their mind: "Should I change jobs?"`)
	require.Contains(t, prompt, "- Gender: male")
	require.Contains(t, prompt, "(6) Weaves in")
	require.Contains(t, prompt, "- Moon Sign: Aries")
	require.Contains(t, prompt, "Birth location not provided")
	require.Contains(t, prompt, "Birth timezone unknown")
}

func TestBuildUserPromptFlagsApproximateChineseYear(t *testing.T) {
	req := baseRequest()
	req.DateOfBirth = "1910-05-05"
	req.LifeStage = "retired"

	prompt := promptFor(t, req)
	require.Contains(t, prompt, "outside the Lunar New Year table")
}

func TestSystemPromptOverride(t *testing.T) {
	svc := newTestService(nil)
	require.Equal(t, DefaultSystemPrompt, svc.systemPrompt())

	svc.cfg.SystemPrompt = "  custom voice "
	require.Equal(t, "custom voice", svc.systemPrompt())
}
