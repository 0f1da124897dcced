// Package structure classifies plain resume text into a block sequence that
// the renderer consumes.
package structure

import "strings"

// Kind discriminates the block variants produced by Parse.
type Kind int

const (
	KindHeader Kind = iota
	KindSection
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindSection:
		return "section"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Block is one classified unit of resume content. Children is populated only
// for KindSection and holds KindText blocks in source order.
type Block struct {
	Kind     Kind
	Content  string
	Children []Block
}

var sectionKeywords = []string{
	"experience", "work experience", "employment", "career",
	"education", "academic", "qualifications",
	"skills", "technical skills", "core competencies",
	"projects", "achievements", "accomplishments",
	"certifications", "licenses",
	"summary", "objective", "profile",
}

// Parse runs a single greedy pass over the content. Blank lines are dropped
// before classification, so the header window counts non-blank lines only.
// A line matching both the header and section heuristics is a header.
func Parse(content string) []Block {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	var blocks []Block
	var current *Block

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case isLikelyHeader(trimmed, i):
			blocks = append(blocks, Block{Kind: KindHeader, Content: trimmed})
		case isSectionTitle(trimmed):
			if current != nil {
				blocks = append(blocks, *current)
			}
			current = &Block{Kind: KindSection, Content: trimmed}
		default:
			child := Block{Kind: KindText, Content: trimmed}
			if current != nil {
				current.Children = append(current.Children, child)
			} else {
				blocks = append(blocks, child)
			}
		}
	}

	if current != nil {
		blocks = append(blocks, *current)
	}

	return blocks
}

// isLikelyHeader treats short early lines without contact markers as the
// name/title header.
func isLikelyHeader(line string, index int) bool {
	return index < 3 && len(line) < 100 && !strings.Contains(line, "@") && !strings.Contains(line, "http")
}

// isSectionTitle matches short lines containing a known section keyword.
func isSectionTitle(line string) bool {
	if len(line) >= 50 {
		return false
	}
	lower := strings.ToLower(line)
	for _, keyword := range sectionKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
