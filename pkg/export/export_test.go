package export

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/nikogura/brand-weaver/pkg/profile"
	"github.com/nikogura/brand-weaver/pkg/site"
	"github.com/tidwall/gjson"
)

func testBundle() (bundle site.Bundle) {
	bundle = site.Bundle{
		site.IndexFile:   "<!DOCTYPE html><html></html>",
		site.StylesFile:  ":root{}",
		site.SitemapFile: "<urlset></urlset>",
		site.RobotsFile:  "User-agent: *\n",
	}
	return bundle
}

func readZip(t *testing.T, raw []byte) (files map[string]string) {
	t.Helper()

	reader, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		t.Fatalf("Failed to open archive: %v", err)
	}

	files = make(map[string]string)
	for _, f := range reader.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("Failed to open %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			t.Fatalf("Failed to read %s: %v", f.Name, err)
		}
		files[f.Name] = string(content)
	}

	return files
}

func TestWriteBundle(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "site")
	bundle := testBundle()

	err := WriteBundle(bundle, dir)
	if err != nil {
		t.Fatalf("Failed to write bundle: %v", err)
	}

	for name, content := range bundle {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("Failed to read %s: %v", name, err)
		}
		if string(data) != content {
			t.Errorf("Expected content '%s', got '%s'", content, string(data))
		}
	}

	err = CleanupBundle(dir, bundle)
	if err != nil {
		t.Fatalf("Failed to cleanup: %v", err)
	}

	for name := range bundle {
		_, err = os.Stat(filepath.Join(dir, name))
		if !os.IsNotExist(err) {
			t.Errorf("File %s was not deleted", name)
		}
	}

	err = CleanupBundle(dir, bundle)
	if err != nil {
		t.Errorf("Expected cleanup of missing files to succeed, got %v", err)
	}
}

func TestWriteBundleRejectsTraversal(t *testing.T) {
	for _, name := range []string{"../escape.html", "/abs.html", "a//b", ""} {
		err := WriteBundle(site.Bundle{name: "x"}, t.TempDir())
		if err == nil {
			t.Errorf("Expected error for file name %q", name)
		}
	}
}

func TestWriteZip(t *testing.T) {
	var buf bytes.Buffer

	err := WriteZip(&buf, testBundle())
	if err != nil {
		t.Fatalf("Failed to write archive: %v", err)
	}

	files := readZip(t, buf.Bytes())

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	expected := testBundle().Names()
	if len(names) != len(expected) {
		t.Fatalf("Expected %d files, got %v", len(expected), names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Expected file %s, got %s", expected[i], names[i])
		}
	}

	if files[site.IndexFile] != testBundle()[site.IndexFile] {
		t.Error("Expected index.html content to round-trip")
	}
}

func TestWriteZipDeterministic(t *testing.T) {
	var first, second bytes.Buffer

	if err := WriteZip(&first, testBundle()); err != nil {
		t.Fatalf("Failed to write archive: %v", err)
	}
	if err := WriteZip(&second, testBundle()); err != nil {
		t.Fatalf("Failed to write archive: %v", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("Expected identical archives for identical bundles")
	}
}

func TestWriteDataZip(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	data := profile.Sample("jane-doe", now)

	var buf bytes.Buffer
	err := WriteDataZip(&buf, data, testBundle(), now)
	if err != nil {
		t.Fatalf("Failed to write archive: %v", err)
	}

	files := readZip(t, buf.Bytes())

	payload, ok := files[DataFile]
	if !ok {
		t.Fatalf("Expected %s in archive", DataFile)
	}
	if gjson.Get(payload, "profile.fullName").String() != "Jane Doe" {
		t.Errorf("Expected profile name in data file, got %s", gjson.Get(payload, "profile.fullName").String())
	}

	for _, name := range testBundle().Names() {
		if _, ok := files[SiteDir+"/"+name]; !ok {
			t.Errorf("Expected %s/%s in archive", SiteDir, name)
		}
	}
}

func TestWriteDataZipWithoutBundle(t *testing.T) {
	var buf bytes.Buffer
	err := WriteDataZip(&buf, profile.Data{Profile: profile.Profile{FullName: "Jane"}}, nil, time.Now())
	if err != nil {
		t.Fatalf("Failed to write archive: %v", err)
	}

	files := readZip(t, buf.Bytes())
	if len(files) != 1 {
		t.Errorf("Expected only the data file, got %d files", len(files))
	}
}

func TestMarshalData(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	out, err := MarshalData(profile.Data{Profile: profile.Profile{FirstName: "Jane", LastName: "Doe"}}, now)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	if got := gjson.GetBytes(out, "exportedAt").String(); got != "2025-06-01T10:00:00Z" {
		t.Errorf("Expected exportedAt stamp, got %q", got)
	}
	if got := gjson.GetBytes(out, "profile.fullName").String(); got != "Jane Doe" {
		t.Errorf("Expected derived full name, got %q", got)
	}
	if !gjson.GetBytes(out, "experience").IsArray() {
		t.Error("Expected empty lists to encode as arrays")
	}
	if !bytes.Contains(out, []byte("\n  \"profile\"")) {
		t.Error("Expected indented output")
	}
}
