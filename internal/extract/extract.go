// Package extract turns stored resume/transcript uploads into plain text.
// Extraction problems produce a human-readable diagnostic string in place of
// the text rather than an error: downstream plan generation proceeds with
// whatever text is available.
package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"careerpath-backend/internal/shared/storage/object"
	"careerpath-backend/internal/shared/telemetry"
)

// Extracted text shorter than this reads like a scan or a corrupted file.
const minUsableChars = 50

var whitespaceRuns = regexp.MustCompile(`\s+`)

// TextFromStored extracts plain text from a stored file. The returned string
// is either the cleaned text or a diagnostic substitute; it is never empty.
func TextFromStored(ctx context.Context, store object.ObjectStore, storageKey string) string {
	body, err := store.Open(ctx, storageKey)
	if err != nil {
		return unableDiagnostic(storageKey, err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return unableDiagnostic(storageKey, err)
	}

	return TextFromBytes(data, storageKey)
}

// TextFromBytes extracts plain text from an in-memory payload, using the file
// name extension to pick the decoder.
func TextFromBytes(data []byte, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))

	var (
		text string
		err  error
	)
	switch ext {
	case ".pdf":
		text, err = extractPDF(data)
	case ".txt":
		text = string(data)
	case ".docx":
		text, err = extractDOCX(data)
	default:
		return fmt.Sprintf("File uploaded: %s (%.1fKB). For better results, please ensure your resume is in PDF or text format. This appears to be a %s file which may not extract text properly.",
			fileName, float64(len(data))/1024.0, ext)
	}
	if err != nil {
		return unableDiagnostic(fileName, err)
	}

	cleaned := strings.TrimSpace(whitespaceRuns.ReplaceAllString(text, " "))
	if len(cleaned) < minUsableChars {
		return fmt.Sprintf("File processed but extracted text seems too short (%d characters). The file may be an image-based PDF or corrupted. Please try uploading a text-based PDF or provide manual text input.", len(cleaned))
	}

	telemetry.Info("extract.success", map[string]any{"file": fileName, "chars": len(cleaned)})
	return cleaned
}

func unableDiagnostic(fileName string, err error) string {
	telemetry.Warn("extract.failed", map[string]any{"file": fileName, "error": err.Error()})
	return fmt.Sprintf("Unable to extract text from %s. Error: %v. Please try uploading a different format or provide manual text input.", fileName, err)
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
		return "", fmt.Errorf("empty docx data")
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("document.xml file not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}

	return stripDocxXML(string(raw)), nil
}

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
