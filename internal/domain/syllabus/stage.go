// Package syllabus assigns lessons to stages of a fixed pedagogical sequence
// and derives a suggested study order from them. Stage values are transient
// sort keys; they are never stored on a lesson.
package syllabus

// Stage is one step of the pedagogical sequence, with the lowercase keyword
// phrases that pull a lesson into it.
type Stage struct {
	Name     string
	Keywords []string
}

// Stages is the fixed sequence, earliest material first. Matching walks this
// table in order, so keyword sets are tuned for first-match-wins: broad
// catch-alls ("scale") sit in the earliest stage they plausibly belong to.
var Stages = []Stage{
	{
		Name: "Fundamentals",
		Keywords: []string{
			"staff", "clef", "notation", "note value", "note names",
			"pitch", "rhythm", "meter", "time signature", "accidental",
			"enharmonic", "tempo", "dynamics",
		},
	},
	{
		Name: "Intervals",
		Keywords: []string{
			"interval", "semitone", "half step", "whole step",
			"unison", "octave", "perfect fifth", "major third",
		},
	},
	{
		Name: "The Major Scale",
		Keywords: []string{
			"major scale", "scale degree", "tetrachord", "do re mi",
			"scale",
		},
	},
	{
		Name: "Keys & the Circle of Fifths",
		Keywords: []string{
			"key signature", "circle of fifths", "sharps", "flats",
			"relative minor", "relative key", "key of",
		},
	},
	{
		Name: "Diatonic Triads",
		Keywords: []string{
			"triad", "roman numeral", "chord quality", "harmonizing",
			"diatonic chord",
		},
	},
	{
		Name: "Seventh Chords",
		Keywords: []string{
			"seventh", "7th", "ninth", "extension", "extended chord",
		},
	},
	{
		Name: "Cadences",
		Keywords: []string{
			"cadence", "authentic", "plagal", "deceptive", "half close",
			"resolution", "voice leading",
		},
	},
	{
		Name: "Modes",
		Keywords: []string{
			"mode", "dorian", "phrygian", "lydian", "mixolydian",
			"aeolian", "locrian", "ionian",
		},
	},
	{
		Name: "Secondary Dominants",
		Keywords: []string{
			"secondary dominant", "applied dominant", "applied chord",
			"tonicization", "v/v", "v7/",
		},
	},
	{
		Name: "Borrowed Chords",
		Keywords: []string{
			"borrowed", "mixture", "modal interchange", "picardy",
			"neapolitan", "parallel minor",
		},
	},
	{
		Name: "Progressions & Form",
		Keywords: []string{
			"progression", "chord changes", "form", "phrase", "period",
			"binary", "ternary", "rondo", "sonata", "twelve-bar",
			"12-bar", "blues", "verse", "chorus",
		},
	},
	{
		Name: "Ear Training",
		Keywords: []string{
			"ear training", "aural", "dictation", "transcription",
			"sight singing", "sight-singing", "solfege", "by ear",
			"listening",
		},
	},
}

// StageName returns the display name for a stage index, clamping out-of-range
// values to the nearest stage.
func StageName(i int) string {
	if i < 0 {
		i = 0
	}
	if i >= len(Stages) {
		i = len(Stages) - 1
	}
	return Stages[i].Name
}
