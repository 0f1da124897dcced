package main

import (
	"archive/zip"
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"resume-optimizer/resume/render"
)

func main() {
	inPath := flag.String("in", "", "input text file; a built-in sample is used when empty")
	outPath := flag.String("out", "./out/sample_resume.docx", "output path for generated DOCX")
	themeName := flag.String("theme", render.DefaultThemeName, "color theme: classic, modern, or professional")
	markup := flag.Bool("markup", true, "treat input as optimizer markup instead of plain resume text")
	flag.Parse()

	content := sampleMarkup
	if *inPath != "" {
		raw, err := os.ReadFile(*inPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read input: %v\n", err)
			os.Exit(1)
		}
		content = string(raw)
	}

	var docxBytes []byte
	var err error
	if *markup {
		docxBytes, err = render.FromMarkup(content, render.ThemeByName(*themeName))
	} else {
		docxBytes, err = render.FromResumeText(content)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}

	if err := writeOutput(*outPath, docxBytes); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	if err := validateRenderedDocx(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "render validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: wrote %s\n", *outPath)
}

const sampleMarkup = `## Jordan Lee
Senior Backend Engineer | Austin, TX | jordan.lee@example.com

### Summary
Backend engineer with 8+ years of experience building resilient APIs and data services.

### Experience
**Acme Logistics, Senior Backend Engineer (2021-Present)**
- Designed a routing service that reduced shipment latency by 18%
- Implemented distributed tracing to cut incident triage time by 35%

### Skills
- Go, PostgreSQL, Redis
- AWS, Docker, Kubernetes
`

func writeOutput(outPath string, docxBytes []byte) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, docxBytes, 0o644)
}

func validateRenderedDocx(path string) error {
	docxBytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	reader, err := zip.NewReader(bytes.NewReader(docxBytes), int64(len(docxBytes)))
	if err != nil {
		return err
	}

	for _, file := range reader.File {
		if normalizeZipName(file.Name) != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return err
		}
		defer rc.Close()

		content, err := io.ReadAll(rc)
		if err != nil {
			return err
		}
		if !strings.Contains(string(content), "<w:body>") {
			return fmt.Errorf("document.xml has no body")
		}
		return nil
	}

	return fmt.Errorf("document.xml not found in docx")
}

func normalizeZipName(name string) string {
	return strings.ReplaceAll(name, "\\", "/")
}
