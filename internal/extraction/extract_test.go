package extraction

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		filename    string
		expected    Kind
	}{
		{"pdf content type", "application/pdf", "resume", KindPDF},
		{"docx content type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "cv", KindDOCX},
		{"msword content type", "application/msword", "cv.doc", KindDOCX},
		{"html with charset", "text/html; charset=utf-8", "cv", KindHTML},
		{"plain text", "text/plain", "cv", KindText},
		{"json", "application/json", "cv", KindText},
		{"generic content type falls back to extension", "application/octet-stream", "CV.PDF", KindPDF},
		{"missing content type uses extension", "", "resume.docx", KindDOCX},
		{"htm extension", "", "resume.htm", KindHTML},
		{"markdown extension", "", "resume.md", KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := DetectKind(tt.contentType, tt.filename)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kind)
		})
	}
}

func TestDetectKind_Unsupported(t *testing.T) {
	_, err := DetectKind("image/png", "photo.png")
	require.Error(t, err)

	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "photo.png", unsupported.Filename)
}

func TestAllowedFile(t *testing.T) {
	assert.True(t, AllowedFile("resume.pdf"))
	assert.True(t, AllowedFile("resume.DOCX"))
	assert.True(t, AllowedFile("resume.doc"))
	assert.True(t, AllowedFile("my.resume.txt"))
	assert.False(t, AllowedFile("resume"))
	assert.False(t, AllowedFile("resume.exe"))
	assert.False(t, AllowedFile(""))
}

func TestExtract_Text(t *testing.T) {
	text, err := Extract(KindText, []byte("Jane Doe\njane@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\njane@example.com", text)
}

func TestExtract_TextInvalidUTF8(t *testing.T) {
	_, err := Extract(KindText, []byte{0xff, 0xfe, 0x00})
	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, KindText, extractionErr.Kind)
}

func TestExtract_UnknownKind(t *testing.T) {
	_, err := Extract(Kind("rtf"), []byte("x"))
	var extractionErr *ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
}

func TestExtract_HTML(t *testing.T) {
	page := `<html><head><title>ignored</title><style>p{}</style></head>
<body>
<h1>Jane Doe</h1>
<p>jane@example.com<br>(555) 123-4567</p>
<script>var x = 1;</script>
<ul><li>Experience</li><li>Education</li></ul>
</body></html>`

	text, err := Extract(KindHTML, []byte(page))
	require.NoError(t, err)

	lines := strings.Split(text, "\n")
	assert.Equal(t, []string{"Jane Doe", "jane@example.com", "(555) 123-4567", "Experience", "Education"}, lines)
}

func TestExtract_DOCX(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:p><w:pPr><w:pStyle w:val="Title"/></w:pPr><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>R&amp;D Engineer</w:t><w:tab/><w:t>jane@example.com</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Skills</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	text, err := Extract(KindDOCX, buildDocx(t, body))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Jane Doe", strings.TrimSpace(lines[0]))
	assert.Equal(t, "R&D Engineer\tjane@example.com", lines[1])
	assert.Equal(t, "Skills", lines[2])
}

func TestExtract_DOCXMalformed(t *testing.T) {
	_, err := Extract(KindDOCX, []byte("not a zip archive"))

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, KindDOCX, extractionErr.Kind)
	assert.Contains(t, err.Error(), "extraction failed")
}

func TestExtract_PDFMalformed(t *testing.T) {
	_, err := Extract(KindPDF, []byte("%PDF-1.4 truncated"))

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, KindPDF, extractionErr.Kind)
}

func TestWordXMLToText(t *testing.T) {
	xml := `<w:p><w:r><w:t>a &lt; b</w:t><w:br/><w:t>c</w:t></w:r></w:p><w:p/>`
	assert.Equal(t, "a < b\nc", wordXMLToText(xml))
}

func TestPreview(t *testing.T) {
	short := "short text"
	assert.Equal(t, short, Preview(short))

	exact := strings.Repeat("a", PreviewLength)
	assert.Equal(t, exact, Preview(exact))

	long := strings.Repeat("é", PreviewLength+10)
	preview := Preview(long)
	assert.True(t, strings.HasSuffix(preview, "..."))
	assert.Equal(t, strings.Repeat("é", PreviewLength)+"...", preview)
}

// buildDocx assembles the minimal zip layout the docx reader expects.
func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"[Content_Types].xml":          `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
		"word/document.xml":            documentXML,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return buf.Bytes()
}
