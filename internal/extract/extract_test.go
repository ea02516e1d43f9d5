package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestTextPlain(t *testing.T) {
	got, err := Text(context.Background(), []byte("hello resume"), "text/plain", "resume.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello resume" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestTextPlainByExtension(t *testing.T) {
	got, err := Text(context.Background(), []byte("hello"), "application/octet-stream", "resume.txt")
	if err != nil {
		t.Fatalf("expected txt extension to map to text/plain, got error: %v", err)
	}
	if got != "hello" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestTextDocxFromZipMime(t *testing.T) {
	data := buildDocx(t, `<w:document><w:body><w:p><w:r><w:t>Hello resume</w:t></w:r></w:p></w:body></w:document>`)

	got, err := Text(context.Background(), data, "application/zip", "resume.docx")
	if err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
	if !strings.Contains(got, "Hello resume") {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestTextRealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = Text(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestTextEmptyPayload(t *testing.T) {
	_, err := Text(context.Background(), nil, "text/plain", "resume.txt")
	if !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestTextCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Text(ctx, []byte("hello"), "text/plain", "resume.txt"); err == nil {
		t.Fatal("expected context error")
	}
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create docx entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write docx entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close docx: %v", err)
	}
	return buf.Bytes()
}
