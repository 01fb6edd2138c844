package lesson_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mfeldt/etude-mcp/internal/domain/lesson"
	"github.com/stretchr/testify/require"
)

func TestParse_OneRecordPerNonBlankLine(t *testing.T) {
	text := "Intervals | https://example.com/intervals | basics\n\n   \nTriads\n"

	got := lesson.Parse(text)
	require.Len(t, got, 2)
	for _, l := range got {
		require.NotEmpty(t, l.ID)
		require.NotEmpty(t, l.Title)
		require.NotEmpty(t, l.URL)
		require.False(t, l.Done)
		require.Empty(t, l.Notes)
	}
}

func TestParse_SecondFieldWithoutLinkBecomesTag(t *testing.T) {
	got := lesson.Parse("A | notAUrl | tag1")
	require.Len(t, got, 1)
	require.Equal(t, "A", got[0].Title)
	require.Equal(t, lesson.DefaultURL, got[0].URL)
	require.Equal(t, []string{"notAUrl", "tag1"}, got[0].Tags)
}

func TestParse_LinkAndTagList(t *testing.T) {
	got := lesson.Parse("A | https://x | t1,t2")
	require.Len(t, got, 1)
	require.Equal(t, "https://x", got[0].URL)
	require.Equal(t, []string{"t1", "t2"}, got[0].Tags)
}

func TestParse_LinkPrefixIsCaseInsensitive(t *testing.T) {
	got := lesson.Parse("A | HTTPS://Example.COM/x\nB | HTTP://plain")
	require.Len(t, got, 2)
	require.Equal(t, "HTTPS://Example.COM/x", got[0].URL)
	require.Equal(t, "HTTP://plain", got[1].URL)
}

func TestParse_BlankTitleGetsPositionalName(t *testing.T) {
	got := lesson.Parse("First\n | https://example.com/second\n\n| https://example.com/third")
	require.Len(t, got, 3)
	require.Equal(t, "First", got[0].Title)
	require.Equal(t, "Lesson 2", got[1].Title)
	require.Equal(t, "Lesson 3", got[2].Title)
}

func TestParse_ExtraPipesStayInTagField(t *testing.T) {
	got := lesson.Parse("A | https://x | t1, left|right ,t2")
	require.Len(t, got, 1)
	require.Equal(t, []string{"t1", "left|right", "t2"}, got[0].Tags)
}

func TestParse_TagSeparators(t *testing.T) {
	got := lesson.Parse("A | https://x | one; two,three ; ,  ;")
	require.Len(t, got, 1)
	require.Equal(t, []string{"one", "two", "three"}, got[0].Tags)
}

func TestParse_EmptyInput(t *testing.T) {
	require.Empty(t, lesson.Parse(""))
	require.Empty(t, lesson.Parse("  \n\t\n"))
}

func TestParse_IDsAreUnique(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&sb, "Lesson about thing %d\n", i)
	}

	got := lesson.Parse(sb.String())
	require.Len(t, got, 50)
	seen := make(map[string]bool, len(got))
	for _, l := range got {
		require.False(t, seen[l.ID])
		seen[l.ID] = true
	}
}

func TestNew_AppliesDefaults(t *testing.T) {
	l := lesson.New("  Cadences  ", "ftp://nope", []string{" v ", ""})
	require.Equal(t, "Cadences", l.Title)
	require.Equal(t, lesson.DefaultURL, l.URL)
	require.Equal(t, []string{"v"}, l.Tags)
	require.NotEmpty(t, l.ID)
}
