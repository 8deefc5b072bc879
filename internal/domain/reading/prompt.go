package reading

import (
	"fmt"
	"strings"

	"github.com/yanqian/cosmic-blueprint/internal/domain/lifestage"
)

// DefaultSystemPrompt sets the voice of every reading.
const DefaultSystemPrompt = `You are a master astrologer and numerologist who synthesizes multiple cosmic systems into unified, practical wisdom. You write with warmth and intelligence: never vague, never preachy. You acknowledge that these are interpretive frameworks, not deterministic predictions. You adapt your advice to the person's actual life context.

Your writing style:
- Warm but intelligent, like a wise friend who reads a lot
- Specific and insightful, not generic or vague
- Acknowledges complexity without being confusing
- Uses vivid metaphors sparingly and effectively
- Conversational but substantive
- Never uses excessive exclamation marks or emojis
- Never says "the stars say" or similar woo-woo language
- Treats these systems as lenses for self-understanding, not fortune-telling

You always structure your response as valid JSON.`

func (s *service) systemPrompt() string {
	if p := strings.TrimSpace(s.cfg.SystemPrompt); p != "" {
		return p
	}
	return DefaultSystemPrompt
}

func buildUserPrompt(sub subject, p Profile) string {
	var b strings.Builder

	b.WriteString("Based on the following cosmic profile data, generate a unified reading. ")
	b.WriteString("Your response MUST be valid JSON with exactly these fields:\n\n{\n")
	b.WriteString(`  "cosmicSnapshot": "A compelling 2-3 sentence executive summary that captures the essence of this person's cosmic profile. This should feel like the most insightful paragraph in the reading, the one they'd share with a friend.",` + "\n\n")
	b.WriteString(`  "unifiedReading": "An 800-1200 word unified narrative that: (1) Finds connecting threads across numerology, Western astrology, and Chinese astrology. (2) Identifies reinforcing patterns where multiple systems agree. (3) Calls out interesting tensions where systems suggest opposing tendencies, framed as complexity, not contradiction. (4) Adapts language and focus based on their life stage. (5) Uses a warm, intelligent tone.`)
	if sub.mind != "" {
		b.WriteString(" (6) Weaves in the personal context they shared naturally; don't just append it, integrate it.")
	}
	b.WriteString(` Use paragraph breaks for readability. Do NOT use markdown headers within the reading; it should flow as prose.",` + "\n\n")
	fmt.Fprintf(&b, `  "currentSeason": "A 150-200 word section about what's active for them right now, based on their Personal Year number (%d, %s) and current cosmic transits relevant to their sun sign. This should feel timely and actionable.",`+"\n\n",
		p.Numerology.PersonalYear.Number, p.Numerology.PersonalYear.Interpretation.Title)
	b.WriteString(`  "cosmicToolkit": ["item1", "item2", "item3", "item4", "item5"]` + "\n}\n\n")
	b.WriteString(`The cosmicToolkit should be 3-5 specific, practical takeaways based on their complete profile. Each should be 1-2 sentences, not just "be more patient" but something specific to their profile combination. Think actionable micro-advice.` + "\n\n")

	b.WriteString(strings.Join(profileSections(sub, p), "\n\n"))
	return b.String()
}

func profileSections(sub subject, p Profile) []string {
	person := []string{
		"## Person Profile",
		"- Name: " + sub.name,
		fmt.Sprintf("- Age: %d", p.Age),
		"- Life Stage: " + lifestage.Label(sub.stage),
	}
	if sub.gender != "" {
		person = append(person, "- Gender: "+sub.gender)
	}
	if sub.mind != "" {
		person = append(person, fmt.Sprintf("- Currently on their mind: %q", sub.mind))
	}

	n := p.Numerology
	numbers := []string{
		"## Numerology",
		fmt.Sprintf("- Life Path Number: %d (%s)", n.LifePath.Number, n.LifePath.Interpretation.Title),
		fmt.Sprintf("- Expression Number: %d (%s)", n.Expression.Number, n.Expression.Interpretation.Title),
		fmt.Sprintf("- Soul Urge Number: %d (%s)", n.SoulUrge.Number, n.SoulUrge.Interpretation.Title),
		fmt.Sprintf("- Personality Number: %d (%s)", n.Personality.Number, n.Personality.Interpretation.Title),
		fmt.Sprintf("- Personal Year: %d (%s)", n.PersonalYear.Number, n.PersonalYear.Interpretation.Title),
	}

	w := p.WesternAstro
	sun := w.SunSign
	western := []string{
		"## Western Astrology",
		fmt.Sprintf("- Sun Sign: %s (%s, %s, ruled by %s, Decan %d)", sun.Sign, sun.Element, sun.Modality, sun.RulingPlanet, sun.Decan),
	}
	if w.MoonSign != nil {
		western = append(western, "- Moon Sign: "+*w.MoonSign)
	}
	if w.RisingSign != nil {
		western = append(western, "- Rising Sign: "+*w.RisingSign)
	}
	switch {
	case w.MoonSign == nil && !sub.hasCoordinates():
		western = append(western, "- Note: Birth time and location not provided, so moon sign, rising sign, and house placements are unavailable.")
	case w.MoonSign == nil:
		western = append(western, "- Note: Birth time not provided, so moon sign, rising sign, and house placements are unavailable.")
	case w.RisingSign == nil:
		western = append(western, "- Note: Birth location not provided, so rising sign and house placements are unavailable.")
	}
	if w.Precision.UTCOffsetAssumed {
		western = append(western, "- Note: Birth timezone unknown; moon and rising placements assume UTC and may be off by a sign.")
	}

	c := p.ChineseZodiac
	chineseLines := []string{
		"## Chinese Astrology",
		fmt.Sprintf("- Animal: %s %s", c.Animal, c.Emoji),
		"- Element: " + c.Element,
		"- Polarity: " + c.YinYang,
		"- Best compatibility: " + strings.Join(c.Compatibility.BestWith, ", "),
		"- Challenging matches: " + strings.Join(c.Compatibility.Challenging, ", "),
	}
	if c.Approximate {
		chineseLines = append(chineseLines, "- Note: Birth year is outside the Lunar New Year table; the animal assumes the calendar year.")
	}

	ls := p.LifeStageContext
	stage := []string{
		"## Life Stage Context",
		"- Stage: " + ls.Stage,
		"- Focus Areas: " + strings.Join(ls.FocusAreas, ", "),
		"- Tone Guidance: " + ls.ToneGuidance,
		"- Emphasize: " + strings.Join(ls.TopicsToEmphasize, ", "),
	}
	if len(ls.TopicsToDeemphasize) > 0 {
		stage = append(stage, "- De-emphasize: "+strings.Join(ls.TopicsToDeemphasize, ", "))
	}

	return []string{
		strings.Join(person, "\n"),
		strings.Join(numbers, "\n"),
		strings.Join(western, "\n"),
		strings.Join(chineseLines, "\n"),
		strings.Join(stage, "\n"),
	}
}
