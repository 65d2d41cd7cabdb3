package composer

import (
	"slices"
	"strings"
)

// MadLibBook holds whole-sentence bodies per tone and holiday. Bodies carry
// bracketed tokens such as [activity] that are replaced by field values.
type MadLibBook map[Tone]map[Holiday][]string

var defaultMadLibs = MadLibBook{
	ToneFun: {
		HolidayNone: {
			"🎉 I'm off [activity] in [location]! My excuse? [excuse]. Between bouts of [hobby] and way too much [food], I won't be checking email. For anything urgent, ask [contact].",
			"🌈 Plot twist: I'm currently [activity] somewhere near [location], fueled entirely by [food]. Officially it's because [excuse], unofficially it's for the [hobby]. Urgent things go to [contact].",
		},
		HolidayChristmas: {
			"🎄 I'm [activity] in [location] with the elves, who agree that [excuse] is a perfectly good reason to skip work. Expect me back full of [food] and new [hobby] skills. Until then, [contact] has the sleigh keys.",
			"🎅 Santa drafted me for [activity] in [location]. Reason on the official form: [excuse]. I'll be back once the [food] runs out and the [hobby] is done. Please bother [contact] instead.",
		},
		HolidayNewYear: {
			"🎆 New year, new me: I'm [activity] in [location] because [excuse]. Resolutions include more [hobby] and less [food] (we'll see). Reach [contact] for anything urgent.",
			"🥳 Counting down in [location] while [activity]. My excuse for missing your email: [excuse]. Fueled by [food], powered by [hobby]. Urgent? Try [contact].",
		},
	},
	ToneProfessional: {
		HolidayNone: {
			"Thank you for your message. I am currently away for [activity] in [location] ([excuse]). Outside of [hobby] and the occasional [food], I will not be reviewing email. For urgent matters, please contact [contact].",
			"I am out of the office for [activity] in [location] due to [excuse]. Between [hobby] and [food], your message will be answered on my return. Please reach [contact] for anything time-sensitive.",
		},
		HolidayChristmas: {
			"Season's greetings. I am away over Christmas for [activity] in [location] ([excuse]), with time set aside for [hobby] and [food]. I will reply after the break. Urgent requests can go to [contact].",
			"Thank you for your email. I am out of office for the Christmas holidays, [activity] in [location] because of [excuse]. I will be enjoying [hobby] and [food] until my return. In the meantime, please contact [contact].",
		},
		HolidayNewYear: {
			"Happy New Year. I am away for [activity] in [location] ([excuse]) and starting the year with [hobby] and [food]. I will respond on my return. For urgent matters, please contact [contact].",
			"Thank you for your message. I am out of office over the New Year for [activity] in [location] due to [excuse]. After some [hobby] and [food], I will reply promptly. Please reach [contact] if this cannot wait.",
		},
	},
	ToneMinimal: {
		HolidayNone: {
			"Away: [activity], [location]. Reason: [excuse]. Also [hobby], [food]. Urgent: [contact].",
			"Out for [activity] in [location] ([excuse]). [hobby]. [food]. Contact: [contact].",
		},
		HolidayChristmas: {
			"Christmas leave: [activity], [location]. Reason: [excuse]. [hobby], [food]. Urgent: [contact].",
			"Away for Christmas. [activity] in [location] ([excuse]). [hobby]. [food]. Contact: [contact].",
		},
		HolidayNewYear: {
			"New Year leave: [activity], [location]. Reason: [excuse]. [hobby], [food]. Urgent: [contact].",
			"Away for New Year. [activity] in [location] ([excuse]). [hobby]. [food]. Contact: [contact].",
		},
	},
	ToneAdventurous: {
		HolidayNone: {
			"🗺️ I've set out [activity] across [location], armed only with [food] and a talent for [hobby]. The official reason: [excuse]. If the signal holds, [contact] can reach me; otherwise they're in charge.",
			"🚀 Mission log: [activity] in [location]. Cause for launch: [excuse]. Supplies: [food]. Morale kept up by [hobby]. Mission control is [contact].",
		},
		HolidayChristmas: {
			"🏔️ I'm [activity] through a snowy [location] this Christmas because [excuse]. Rations: [food]. Campfire entertainment: [hobby]. Base camp is [contact].",
			"🦌 Trekking [location] with the reindeer, [activity] as I go. Why? [excuse]. Packed [food] and gear for [hobby]. Signal flares to [contact].",
		},
		HolidayNewYear: {
			"🎆 Starting the year [activity] at the edge of [location]. Reason: [excuse]. First resolution: more [hobby], more [food]. Until I'm back, [contact] holds the map.",
			"🧭 Charting a new year in [location], [activity] from dawn to dusk because [excuse]. Fuel: [food]. Downtime: [hobby]. Radio [contact] for anything urgent.",
		},
	},
}

// DefaultMadLibBook returns a copy of the built-in mad-lib bodies.
func DefaultMadLibBook() MadLibBook {
	book := make(MadLibBook, len(defaultMadLibs))
	for tone, holidays := range defaultMadLibs {
		book[tone] = cloneLists(holidays)
	}
	return book
}

// BodiesFor returns a copy of the bodies for the tone and holiday pair.
func (b MadLibBook) BodiesFor(tone Tone, holiday Holiday) []string {
	return slices.Clone(b[tone][holiday])
}

// fillMadLib replaces the token of every non-blank mad-lib field with its value.
// Blank fields keep their bracketed token.
func fillMadLib(body string, fields FieldSet) string {
	var pairs []string
	for _, field := range familyFields[FamilyMadLib] {
		value := fields.Get(field)
		if value == "" {
			continue
		}
		pairs = append(pairs, field.madLibToken(), value)
	}
	if len(pairs) == 0 {
		return body
	}
	return strings.NewReplacer(pairs...).Replace(body)
}
