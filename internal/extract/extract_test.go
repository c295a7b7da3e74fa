package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"
)

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTextFromBytesPlainText(t *testing.T) {
	out, err := TextFromBytes(context.Background(), []byte("  Dana Smith\nEngineer  "), "text/plain", "resume.txt")
	if err != nil {
		t.Fatalf("TextFromBytes: %v", err)
	}
	if out != "Dana Smith\nEngineer" {
		t.Fatalf("unexpected text %q", out)
	}
}

func TestTextFromBytesDOCX(t *testing.T) {
	doc := `<?xml version="1.0"?><w:document><w:body><w:p><w:r><w:t>Dana Smith</w:t></w:r></w:p><w:p><w:r><w:t>Engineer</w:t></w:r></w:p></w:body></w:document>`
	data := buildDOCX(t, doc)

	tests := []struct {
		name     string
		mimeType string
		fileName string
	}{
		{name: "declared docx", mimeType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", fileName: "resume.docx"},
		{name: "labeled zip", mimeType: "application/zip", fileName: "resume.docx"},
		{name: "labeled octet-stream", mimeType: "application/octet-stream", fileName: "upload.bin"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			out, err := TextFromBytes(context.Background(), data, tt.mimeType, tt.fileName)
			if err != nil {
				t.Fatalf("TextFromBytes: %v", err)
			}
			if out != "Dana Smith\nEngineer" {
				t.Fatalf("unexpected text %q", out)
			}
		})
	}
}

func TestTextFromBytesUnsupported(t *testing.T) {
	_, err := TextFromBytes(context.Background(), []byte{0x89, 0x50, 0x4e, 0x47}, "image/png", "photo.png")
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestTextFromBytesBinaryLabeledText(t *testing.T) {
	_, err := TextFromBytes(context.Background(), []byte{0xff, 0xfe, 0x00, 0x01}, "text/plain", "resume.txt")
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported for binary data, got %v", err)
	}
}

func TestStripDocxXMLBreaksParagraphs(t *testing.T) {
	raw := `<w:body><w:p><w:r><w:t>line one</w:t></w:r></w:p><w:p><w:r><w:t>line two</w:t></w:r><w:br/></w:p></w:body>`
	out := stripDocxXML(raw)
	if out != "line one\nline two" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestNormalizeMimeTypeSniffsPDF(t *testing.T) {
	data := []byte("%PDF-1.7 fake")
	if got := normalizeMimeType("application/octet-stream", "resume.bin", data); got != mimePDF {
		t.Fatalf("expected pdf sniffed from magic bytes, got %q", got)
	}
	if got := normalizeMimeType("application/pdf; charset=binary", "resume.pdf", nil); got != mimePDF {
		t.Fatalf("expected parameters stripped, got %q", got)
	}
}
