package structure

import (
	"strings"
	"testing"
)

func TestParseTypicalResume(t *testing.T) {
	content := strings.Join([]string{
		"Jane Doe",
		"Senior Software Engineer",
		"jane@example.com",
		"",
		"EXPERIENCE",
		"Acme Corp (2019-2024)",
		"Led a team of 5 engineers",
		"",
		"EDUCATION",
		"BSc Computer Science",
	}, "\n")

	blocks := Parse(content)
	if len(blocks) != 5 {
		t.Fatalf("expected 5 blocks, got %d: %+v", len(blocks), blocks)
	}

	if blocks[0].Kind != KindHeader || blocks[0].Content != "Jane Doe" {
		t.Fatalf("block 0 = %+v", blocks[0])
	}
	if blocks[1].Kind != KindHeader || blocks[1].Content != "Senior Software Engineer" {
		t.Fatalf("block 1 = %+v", blocks[1])
	}
	if blocks[2].Kind != KindText || blocks[2].Content != "jane@example.com" {
		t.Fatalf("block 2 = %+v", blocks[2])
	}
	if blocks[3].Kind != KindSection || blocks[3].Content != "EXPERIENCE" {
		t.Fatalf("block 3 = %+v", blocks[3])
	}
	if len(blocks[3].Children) != 2 {
		t.Fatalf("EXPERIENCE children = %+v", blocks[3].Children)
	}
	if blocks[3].Children[0].Content != "Acme Corp (2019-2024)" || blocks[3].Children[0].Kind != KindText {
		t.Fatalf("EXPERIENCE child 0 = %+v", blocks[3].Children[0])
	}
	if blocks[4].Kind != KindSection || blocks[4].Content != "EDUCATION" {
		t.Fatalf("block 4 = %+v", blocks[4])
	}
	if len(blocks[4].Children) != 1 || blocks[4].Children[0].Content != "BSc Computer Science" {
		t.Fatalf("EDUCATION children = %+v", blocks[4].Children)
	}
}

func TestParseBlankLinesDoNotCountTowardHeaderWindow(t *testing.T) {
	content := "\n\n\nJane Doe\nSenior Engineer\n"
	blocks := Parse(content)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	for _, b := range blocks {
		if b.Kind != KindHeader {
			t.Fatalf("expected header, got %+v", b)
		}
	}
}

func TestParseEmailLineIsNotHeader(t *testing.T) {
	blocks := Parse("Jane Doe\njane@example.com\nhttps://example.com/jane")
	if blocks[0].Kind != KindHeader {
		t.Fatalf("block 0 = %+v", blocks[0])
	}
	if blocks[1].Kind != KindText {
		t.Fatalf("contact line with @ must be text, got %+v", blocks[1])
	}
	if blocks[2].Kind != KindText {
		t.Fatalf("line with http must be text, got %+v", blocks[2])
	}
}

func TestParseFourthLineNeverHeader(t *testing.T) {
	blocks := Parse("one\ntwo\nthree\nfour")
	if blocks[3].Kind == KindHeader {
		t.Fatalf("fourth non-blank line classified as header: %+v", blocks[3])
	}
}

func TestParseLongEarlyLineNotHeader(t *testing.T) {
	long := strings.Repeat("x", 100)
	blocks := Parse(long + "\nJane Doe")
	if blocks[0].Kind == KindHeader {
		t.Fatalf("100-char line classified as header: %+v", blocks[0])
	}
	if blocks[1].Kind != KindHeader {
		t.Fatalf("second line should still be header: %+v", blocks[1])
	}
}

func TestParseHeaderWinsOverSectionKeyword(t *testing.T) {
	// An early short line containing a section keyword is still the header.
	blocks := Parse("Profile\nJane Doe")
	if blocks[0].Kind != KindHeader {
		t.Fatalf("early keyword line should be header, got %+v", blocks[0])
	}
}

func TestParseSectionTitleBoundaries(t *testing.T) {
	exactly50 := "EXPERIENCE " + strings.Repeat("x", 39)
	if len(exactly50) != 50 {
		t.Fatalf("fixture length = %d", len(exactly50))
	}
	if isSectionTitle(exactly50) {
		t.Fatal("50-char line must not be a section title")
	}
	if !isSectionTitle(exactly50[:49]) {
		t.Fatal("49-char keyword line must be a section title")
	}
	if isSectionTitle("NONSECTION HEADING") {
		t.Fatal("line without keywords must not be a section title")
	}
	if !isSectionTitle("Core Competencies") {
		t.Fatal("keyword match must be case-insensitive")
	}
}

func TestParseLooseTextBeforeFirstSection(t *testing.T) {
	content := strings.Join([]string{
		"a", "b", "c",
		"This free-floating line precedes any section",
		"SKILLS",
		"Go",
	}, "\n")
	blocks := Parse(content)
	if blocks[3].Kind != KindText {
		t.Fatalf("loose line should be top-level text, got %+v", blocks[3])
	}
	if blocks[4].Kind != KindSection || len(blocks[4].Children) != 1 {
		t.Fatalf("SKILLS section = %+v", blocks[4])
	}
}

func TestParseLosslessOrdering(t *testing.T) {
	content := "Jane Doe\n\nEXPERIENCE\nAcme\n\nEDUCATION\nMIT\nextra"
	blocks := Parse(content)

	var got []string
	for _, b := range blocks {
		got = append(got, b.Content)
		for _, c := range b.Children {
			got = append(got, c.Content)
		}
	}
	want := []string{"Jane Doe", "EXPERIENCE", "Acme", "EDUCATION", "MIT", "extra"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestParseEmptyContent(t *testing.T) {
	if blocks := Parse(""); len(blocks) != 0 {
		t.Fatalf("expected no blocks, got %+v", blocks)
	}
	if blocks := Parse("\n  \n\t\n"); len(blocks) != 0 {
		t.Fatalf("expected no blocks for whitespace, got %+v", blocks)
	}
}
