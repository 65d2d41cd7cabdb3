package composer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var madLibTokens = []string{
	FallbackActivity,
	FallbackLocation,
	FallbackExcuse,
	FallbackHobby,
	FallbackFood,
	FallbackContact,
}

func TestDefaultMadLibBookCoversEveryCombination(t *testing.T) {
	t.Parallel()

	book := DefaultMadLibBook()
	for _, tone := range Tones() {
		for _, holiday := range Holidays() {
			bodies := book.BodiesFor(tone, holiday)
			require.NotEmpty(t, bodies, "%s/%s", tone, holiday)

			for _, body := range bodies {
				for _, token := range madLibTokens {
					require.Contains(t, body, token, "%s/%s body %q", tone, holiday, body)
				}
			}
		}
	}
}

func TestMadLibKeepsTokensForBlankFields(t *testing.T) {
	t.Parallel()

	c := New(WithRand(NewSeededRand(3)))

	msg, err := c.Generate(Request{Family: FamilyMadLib, Tone: ToneAdventurous, Holiday: HolidayNewYear})
	require.NoError(t, err)
	require.Equal(t, LayoutMadLib, msg.Layout)
	require.Equal(t, msg.Body, msg.Text)
	require.Contains(t, DefaultMadLibBook().BodiesFor(ToneAdventurous, HolidayNewYear), msg.Body)
	for _, token := range madLibTokens {
		require.Contains(t, msg.Text, token)
	}
}

func TestMadLibSubstitutesFilledFields(t *testing.T) {
	t.Parallel()

	fields := FieldSet{
		Activity: "surfing",
		Location: "Lisbon",
		Excuse:   "my cat booked the tickets",
		Hobby:    "knitting",
		Food:     "pastel de nata",
		Contact:  "Ben",
	}

	c := New(WithRand(NewSeededRand(11)))
	for _, tone := range Tones() {
		for _, holiday := range Holidays() {
			msg, err := c.Generate(Request{Fields: fields, Family: FamilyMadLib, Tone: tone, Holiday: holiday})
			require.NoError(t, err)

			require.NotContains(t, msg.Text, "[")
			for _, value := range []string{"surfing", "Lisbon", "my cat booked the tickets", "knitting", "pastel de nata", "Ben"} {
				require.Contains(t, msg.Text, value)
			}
		}
	}
}

func TestMadLibPartialFields(t *testing.T) {
	t.Parallel()

	c := New(WithRand(&sequenceRand{}))
	msg, err := c.Generate(Request{
		Fields:  FieldSet{Activity: "hiking", Food: "  "},
		Family:  FamilyMadLib,
		Tone:    ToneMinimal,
		Holiday: HolidayNone,
	})
	require.NoError(t, err)

	require.Equal(t, "Away: hiking, [location]. Reason: [excuse]. Also [hobby], [food]. Urgent: [contact].", msg.Text)
}

func TestMadLibIgnoresClassicFields(t *testing.T) {
	t.Parallel()

	c := New(WithRand(&sequenceRand{}))
	msg, err := c.Generate(Request{
		Fields: FieldSet{Name: "Ava", ReturnDate: "2024-07-01"},
		Family: FamilyMadLib,
	})
	require.NoError(t, err)
	require.NotContains(t, msg.Text, "Ava")
	require.Empty(t, msg.Intro)
	require.Empty(t, msg.Closing)
}

func TestFillMadLibDoesNotRecurse(t *testing.T) {
	t.Parallel()

	out := fillMadLib("[activity] then [location]", FieldSet{Activity: "[location]", Location: "Oslo"})
	require.Equal(t, "[location] then Oslo", out)
	require.Equal(t, 1, strings.Count(out, "Oslo"))
}
