package extract

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MimePDF  = "application/pdf"
	MimeDOC  = "application/msword"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeTXT  = "text/plain"
)

// ErrUnsupportedType marks a declared media type outside the allowed set.
var ErrUnsupportedType = errors.New("unsupported file type")

// ErrLegacyDoc marks a legacy binary DOC that the DOCX routine could not read.
// The message is user-facing guidance, not a generic decode failure.
var ErrLegacyDoc = errors.New("unable to process legacy DOC file, please convert to DOCX format")

// AllowedMediaType reports whether the declared media type is in the allowed set.
func AllowedMediaType(mimeType string) bool {
	switch normalizeMimeType(mimeType) {
	case MimePDF, MimeDOC, MimeDOCX, MimeTXT:
		return true
	}
	return false
}

// FileTypeLabel maps a declared media type to the stored file-type label.
func FileTypeLabel(mimeType string) string {
	switch normalizeMimeType(mimeType) {
	case MimePDF:
		return "PDF"
	case MimeDOCX:
		return "DOCX"
	case MimeDOC:
		return "DOC"
	case MimeTXT:
		return "TXT"
	default:
		return "Unknown"
	}
}

// ExtractText pulls plain text out of an uploaded payload based on its declared
// media type. Libraries used: github.com/ledongthuc/pdf (PDF) and
// github.com/nguyenthenguyen/docx (DOCX and the legacy-DOC attempt).
func ExtractText(ctx context.Context, data []byte, mimeType string, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch normalizeMimeType(mimeType) {
	case MimePDF:
		text, err := extractPDF(data)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from %s: %w", fileName, err)
		}
		return text, nil
	case MimeDOCX:
		text, err := extractDOCX(data)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from %s: %w", fileName, err)
		}
		return text, nil
	case MimeDOC:
		// Legacy binary DOC: attempt the DOCX routine verbatim; when it fails,
		// surface the explicit convert-to-DOCX guidance instead of a decode error.
		text, err := extractDOCX(data)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from %s: %w", fileName, ErrLegacyDoc)
		}
		return text, nil
	case MimeTXT:
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mimeType)
	}
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	return stripDocxXML(doc.Editable().GetContent()), nil
}

// stripDocxXML drops WML markup, keeping character data and turning paragraph
// and line-break boundaries into newlines.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func normalizeMimeType(mimeType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
}
