package services

import (
	"errors"
	"testing"
)

func TestParseFrontMatter_NoDelimiter(t *testing.T) {
	content := "Just markdown.\n"
	fm, body, err := ParseFrontMatter([]byte(content))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if body != content {
		t.Errorf("body = %q, want whole content", body)
	}
	if v, ok, _ := fm.Lookup("title"); ok {
		t.Errorf("title = %q, want absent", v)
	}
}

func TestParseFrontMatter_SingleDelimiter(t *testing.T) {
	// One delimiter never closes a block; the file has no front matter.
	fm, body, err := ParseFrontMatter([]byte("---\ntitle: x\n"))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if _, ok, _ := fm.Lookup("title"); ok {
		t.Error("title should be absent without a closing delimiter")
	}
	if body != "---\ntitle: x\n" {
		t.Errorf("body = %q, want whole content", body)
	}
}

func TestParseFrontMatter_Basic(t *testing.T) {
	fm, body, err := ParseFrontMatter([]byte("---\ntitle: hello\nid: h-2\n---\nthe body\n"))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if v, ok, _ := fm.Lookup("title"); !ok || v != "hello" {
		t.Errorf("title = %q (present=%v), want %q", v, ok, "hello")
	}
	if v, ok, _ := fm.Lookup("id"); !ok || v != "h-2" {
		t.Errorf("id = %q (present=%v), want %q", v, ok, "h-2")
	}
	if body != "the body\n" {
		t.Errorf("body = %q, want %q", body, "the body\n")
	}
}

func TestParseFrontMatter_DelimiterAfterText(t *testing.T) {
	// The block is whatever lies between the first and second delimiter.
	fm, _, err := ParseFrontMatter([]byte("intro\n---\ntitle: late\n---\nrest\n"))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if v, ok, _ := fm.Lookup("title"); !ok || v != "late" {
		t.Errorf("title = %q (present=%v), want %q", v, ok, "late")
	}
}

func TestParseFrontMatter_Malformed(t *testing.T) {
	_, _, err := ParseFrontMatter([]byte("---\n- not\n- a\nmapping: x\n---\nbody\n"))
	if !errors.Is(err, ErrFrontMatter) {
		t.Fatalf("error = %v, want ErrFrontMatter", err)
	}
}

func TestLookup_ScalarFlattening(t *testing.T) {
	fm, _, err := ParseFrontMatter([]byte("---\nid: 123\n---\nbody\n"))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if v, ok, _ := fm.Lookup("id"); !ok || v != "123" {
		t.Errorf("id = %q (present=%v), want %q", v, ok, "123")
	}
}

func TestLookup_UnsupportedKey(t *testing.T) {
	fm, _, err := ParseFrontMatter([]byte("---\ntitle: x\n---\n"))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if _, _, err := fm.Lookup("format"); !errors.Is(err, ErrUnsupportedKey) {
		t.Fatalf("Lookup(format) error = %v, want ErrUnsupportedKey", err)
	}
}
