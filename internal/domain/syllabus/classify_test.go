package syllabus_test

import (
	"strings"
	"testing"

	"github.com/mfeldt/etude-mcp/internal/domain/lesson"
	"github.com/mfeldt/etude-mcp/internal/domain/syllabus"
	"github.com/stretchr/testify/require"
)

func TestStageIndex_TypicalCurriculum(t *testing.T) {
	cases := []struct {
		title string
		tags  []string
		want  string
	}{
		{"Reading the Staff", nil, "Fundamentals"},
		{"Time Signatures Explained", nil, "Fundamentals"},
		{"Intervals in Depth", nil, "Intervals"},
		{"Building the Major Scale", nil, "The Major Scale"},
		{"Minor Pentatonic Scale", nil, "The Major Scale"},
		{"Key Signatures", nil, "Keys & the Circle of Fifths"},
		{"The Circle of Fifths", nil, "Keys & the Circle of Fifths"},
		{"Diatonic Triads", nil, "Diatonic Triads"},
		{"Roman Numeral Analysis", nil, "Diatonic Triads"},
		{"Seventh Chords", nil, "Seventh Chords"},
		{"Authentic and Plagal Cadences", nil, "Cadences"},
		{"The Dorian Mode", nil, "Modes"},
		{"Secondary Dominants", nil, "Secondary Dominants"},
		{"Borrowed Chords", nil, "Borrowed Chords"},
		{"Common Chord Progressions", nil, "Progressions & Form"},
		{"Melodic Dictation", nil, "Ear Training"},
		{"Untitled", []string{"ear training"}, "Ear Training"},
	}

	for _, tc := range cases {
		got := syllabus.StageIndex(lesson.Lesson{Title: tc.title, Tags: tc.tags})
		require.Equal(t, tc.want, syllabus.StageName(got), "title %q", tc.title)
	}
}

func TestStageIndex_FirstMatchWins(t *testing.T) {
	// "interval" belongs to an earlier stage than "cadence".
	l := lesson.Lesson{Title: "Cadences and Intervals"}
	require.Equal(t, "Intervals", syllabus.StageName(syllabus.StageIndex(l)))

	// Tag content competes with the title on equal footing.
	l = lesson.Lesson{Title: "Practice session", Tags: []string{"cadence", "staff"}}
	require.Equal(t, "Fundamentals", syllabus.StageName(syllabus.StageIndex(l)))
}

func TestStageIndex_MatchingIsCaseInsensitive(t *testing.T) {
	a := syllabus.StageIndex(lesson.Lesson{Title: "SEVENTH CHORDS"})
	b := syllabus.StageIndex(lesson.Lesson{Title: "seventh chords"})
	require.Equal(t, a, b)
	require.Equal(t, "Seventh Chords", syllabus.StageName(a))
}

func TestStageIndex_IntroductoryFallback(t *testing.T) {
	require.Equal(t, 0, syllabus.StageIndex(lesson.Lesson{Title: "Introduction to the Course"}))
	require.Equal(t, 0, syllabus.StageIndex(lesson.Lesson{Title: "Course Overview"}))
}

func TestStageIndex_UnmatchedLandsInTheMiddle(t *testing.T) {
	got := syllabus.StageIndex(lesson.Lesson{Title: "Xylophone upkeep"})
	require.Equal(t, len(syllabus.Stages)/2, got)
}

func TestStageIndex_Deterministic(t *testing.T) {
	l := lesson.Lesson{Title: "Borrowed Chords", Tags: []string{"harmony"}}
	first := syllabus.StageIndex(l)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, syllabus.StageIndex(l))
	}
}

func TestStages_KeywordsAreLowercase(t *testing.T) {
	// Matching lowercases the haystack only, so the table must hold
	// lowercase phrases.
	for _, s := range syllabus.Stages {
		require.NotEmpty(t, s.Name)
		require.NotEmpty(t, s.Keywords)
		for _, kw := range s.Keywords {
			require.Equal(t, strings.ToLower(kw), kw, "stage %q", s.Name)
		}
	}
}
