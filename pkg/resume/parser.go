package resume

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/careeragentpro/backend/pkg/nlp"
)

// ErrUnsupportedFormat is returned for uploads that are not pdf, docx
// or plain text.
var ErrUnsupportedFormat = errors.New("resume: unsupported file format, only pdf, docx and txt are allowed")

var reXMLTag = regexp.MustCompile(`<[^>]+>`)

// ExtractFileText pulls plain text out of an uploaded resume file,
// chosen by extension.
func ExtractFileText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractTextFromPDF(data)
	case ".docx":
		return extractTextFromDocx(data)
	case ".txt":
		return nlp.CollapseWhitespace(string(data)), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

func extractTextFromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return nlp.CollapseWhitespace(buf.String()), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	// GetContent returns the raw document.xml body; paragraph closes
	// become newlines before the remaining tags are dropped.
	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	content = reXMLTag.ReplaceAllString(content, " ")
	return nlp.CollapseWhitespace(content), nil
}
