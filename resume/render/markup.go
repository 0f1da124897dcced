package render

import "strings"

const (
	markupHeadingSize    = 28
	markupSubheadingSize = 24
)

// FromMarkup renders the optimizer's markup-flavored text. Line rules apply
// in priority order: "## " heading, "### " sub-heading, "**text**" emphasized
// standalone text, "- " bullet item, blank line paragraph break, anything
// else a plain paragraph. Malformed lines never fail, they render as plain
// text under a later rule.
func FromMarkup(content string, theme Theme) ([]byte, error) {
	var paragraphs []paragraph

	for _, rawLine := range strings.Split(content, "\n") {
		line := strings.TrimRight(rawLine, "\r")
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "## ") && !strings.HasPrefix(trimmed, "###"):
			paragraphs = append(paragraphs, paragraph{
				Runs:          []run{{Text: strings.TrimPrefix(trimmed, "## "), Bold: true, Size: markupHeadingSize, Color: theme.Primary}},
				SpacingBefore: 300,
				SpacingAfter:  120,
			})
		case strings.HasPrefix(trimmed, "### "):
			paragraphs = append(paragraphs, paragraph{
				Runs:          []run{{Text: strings.TrimPrefix(trimmed, "### "), Bold: true, Size: markupSubheadingSize, Color: theme.Primary}},
				SpacingBefore: 200,
				SpacingAfter:  100,
			})
		case isEmphasized(trimmed):
			paragraphs = append(paragraphs, paragraph{
				Runs:         []run{{Text: strings.TrimSuffix(strings.TrimPrefix(trimmed, "**"), "**"), Bold: true, Size: bodySize, Color: theme.Secondary}},
				SpacingAfter: 100,
			})
		case strings.HasPrefix(trimmed, "- "):
			paragraphs = append(paragraphs, paragraph{
				Runs: []run{
					{Text: "• ", Size: bodySize, Color: theme.Accent},
					{Text: strings.TrimPrefix(trimmed, "- "), Size: bodySize, Color: theme.Secondary},
				},
				SpacingAfter: 80,
			})
		case trimmed == "":
			paragraphs = append(paragraphs, paragraph{SpacingAfter: 120})
		default:
			paragraphs = append(paragraphs, paragraph{
				Runs:         []run{{Text: trimmed, Size: bodySize, Color: theme.Secondary}},
				SpacingAfter: 100,
			})
		}
	}

	return packDocx(paragraphs)
}

// isEmphasized matches standalone "**text**" lines. The markers must wrap
// actual content, so the bare "**" or "****" line is not emphasized.
func isEmphasized(line string) bool {
	return strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") && len(line) > 4
}
