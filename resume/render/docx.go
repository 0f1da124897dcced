// Package render produces DOCX payloads from resume text. Two paths exist:
// FromResumeText renders uploaded plain text via the block classifier, and
// FromMarkup renders the optimizer's markup-flavored output with a theme.
package render

import (
	"strings"

	"resume-optimizer/internal/shared/util"
	"resume-optimizer/resume/structure"
)

// MimeDOCX is the Content-Type for generated documents.
const MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

const (
	headerSize  = 32
	sectionSize = 24
	bodySize    = 22
)

// FromResumeText classifies content into blocks and renders them: headers
// centered bold 16pt, section titles upper-cased bold 12pt with a bottom
// border, body text 11pt.
func FromResumeText(content string) ([]byte, error) {
	var paragraphs []paragraph

	for _, block := range structure.Parse(content) {
		switch block.Kind {
		case structure.KindHeader:
			paragraphs = append(paragraphs, paragraph{
				Runs:         []run{{Text: block.Content, Bold: true, Size: headerSize}},
				Centered:     true,
				SpacingAfter: 200,
			})
		case structure.KindSection:
			paragraphs = append(paragraphs, paragraph{
				Runs:          []run{{Text: strings.ToUpper(block.Content), Bold: true, Size: sectionSize}},
				SpacingBefore: 300,
				SpacingAfter:  100,
				BottomBorder:  true,
			})
			for _, child := range block.Children {
				paragraphs = append(paragraphs, bodyParagraphPlain(child.Content))
			}
		case structure.KindText:
			paragraphs = append(paragraphs, bodyParagraphPlain(block.Content))
		}
	}

	return packDocx(paragraphs)
}

func bodyParagraphPlain(text string) paragraph {
	return paragraph{
		Runs:         []run{{Text: text, Size: bodySize}},
		SpacingAfter: 100,
	}
}

// SuggestedFileName derives the download name from the originally uploaded
// filename, e.g. "jane_doe.pdf" becomes "optimized_jane_doe.docx".
func SuggestedFileName(original string) string {
	return "optimized_" + util.FileStem(original) + ".docx"
}
