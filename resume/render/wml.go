package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

const wmlNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// run is one formatted text span inside a paragraph. Size is in half-points,
// matching WML's w:sz unit. Color is a hex RGB string without the hash.
type run struct {
	Text  string
	Bold  bool
	Size  int
	Color string
}

// paragraph is the unit the document body is assembled from.
type paragraph struct {
	Runs          []run
	Centered      bool
	SpacingBefore int
	SpacingAfter  int
	BottomBorder  bool
}

// packDocx wraps the paragraph sequence into a minimal OOXML package:
// content types, package relationships, and word/document.xml.
func packDocx(paragraphs []paragraph) ([]byte, error) {
	var output bytes.Buffer
	writer := zip.NewWriter(&output)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", documentXML(paragraphs)},
	}

	for _, part := range parts {
		dst, err := writer.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("create package part %s: %w", part.name, err)
		}
		if _, err := dst.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("write package part %s: %w", part.name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize package: %w", err)
	}

	return output.Bytes(), nil
}

func documentXML(paragraphs []paragraph) string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<w:document xmlns:w="` + wmlNamespace + `"><w:body>`)
	for _, p := range paragraphs {
		writeParagraph(&b, p)
	}
	b.WriteString(`<w:sectPr/></w:body></w:document>`)
	return b.String()
}

func writeParagraph(b *strings.Builder, p paragraph) {
	b.WriteString(`<w:p>`)

	if p.Centered || p.SpacingBefore > 0 || p.SpacingAfter > 0 || p.BottomBorder {
		b.WriteString(`<w:pPr>`)
		if p.BottomBorder {
			b.WriteString(`<w:pBdr><w:bottom w:val="single" w:sz="6" w:space="1" w:color="000000"/></w:pBdr>`)
		}
		if p.SpacingBefore > 0 || p.SpacingAfter > 0 {
			b.WriteString(`<w:spacing`)
			if p.SpacingBefore > 0 {
				fmt.Fprintf(b, ` w:before="%d"`, p.SpacingBefore)
			}
			if p.SpacingAfter > 0 {
				fmt.Fprintf(b, ` w:after="%d"`, p.SpacingAfter)
			}
			b.WriteString(`/>`)
		}
		if p.Centered {
			b.WriteString(`<w:jc w:val="center"/>`)
		}
		b.WriteString(`</w:pPr>`)
	}

	for _, r := range p.Runs {
		writeRun(b, r)
	}

	b.WriteString(`</w:p>`)
}

func writeRun(b *strings.Builder, r run) {
	b.WriteString(`<w:r>`)
	if r.Bold || r.Size > 0 || r.Color != "" {
		b.WriteString(`<w:rPr>`)
		if r.Bold {
			b.WriteString(`<w:b/>`)
		}
		if r.Color != "" {
			fmt.Fprintf(b, `<w:color w:val="%s"/>`, r.Color)
		}
		if r.Size > 0 {
			fmt.Fprintf(b, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, r.Size, r.Size)
		}
		b.WriteString(`</w:rPr>`)
	}
	b.WriteString(`<w:t xml:space="preserve">`)
	b.WriteString(escapeXMLText(r.Text))
	b.WriteString(`</w:t></w:r>`)
}

func escapeXMLText(text string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(text)); err != nil {
		return text
	}
	return buf.String()
}

const contentTypesXML = xml.Header +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`</Types>`

const packageRelsXML = xml.Header +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const documentRelsXML = xml.Header +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`
