// Package export writes generated bundles to disk and packages bundles and
// profile data as ZIP archives.
package export

import (
	"encoding/json"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/nikogura/brand-weaver/pkg/profile"
	"github.com/nikogura/brand-weaver/pkg/site"
	"github.com/pkg/errors"
	"github.com/tidwall/sjson"
)

const (
	// DataFile is the profile JSON name inside data archives.
	DataFile = "profile-data.json"
	// SiteDir is the folder holding bundle files inside data archives.
	SiteDir = "site"
)

// WriteBundle writes every bundle file under dir.
func WriteBundle(bundle site.Bundle, dir string) (err error) {
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", dir)
		return err
	}

	for _, name := range bundle.Names() {
		var target string
		target, err = safeJoin(dir, name)
		if err != nil {
			return err
		}

		err = os.MkdirAll(filepath.Dir(target), 0750)
		if err != nil {
			err = errors.Wrapf(err, "failed to create directory for %s", name)
			return err
		}

		err = os.WriteFile(target, []byte(bundle[name]), 0600)
		if err != nil {
			err = errors.Wrapf(err, "failed to write bundle file: %s", target)
			return err
		}
	}

	return err
}

// CleanupBundle removes the bundle files previously written under dir.
func CleanupBundle(dir string, bundle site.Bundle) (err error) {
	for _, name := range bundle.Names() {
		var target string
		target, err = safeJoin(dir, name)
		if err != nil {
			return err
		}

		err = os.Remove(target)
		if err != nil && !os.IsNotExist(err) {
			err = errors.Wrapf(err, "failed to remove bundle file: %s", target)
			return err
		}
		err = nil
	}
	return err
}

// WriteZip writes the bundle as a ZIP archive with files at the root.
func WriteZip(w io.Writer, bundle site.Bundle) (err error) {
	zw := zip.NewWriter(w)

	err = addBundle(zw, "", bundle)
	if err != nil {
		_ = zw.Close()
		return err
	}

	err = zw.Close()
	if err != nil {
		err = errors.Wrap(err, "failed to finish archive")
		return err
	}

	return err
}

// WriteDataZip writes the profile JSON and, when bundle is non-empty, the
// bundle files under site/.
func WriteDataZip(w io.Writer, data profile.Data, bundle site.Bundle, now time.Time) (err error) {
	var payload []byte
	payload, err = MarshalData(data, now)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)

	err = addFile(zw, DataFile, payload)
	if err == nil {
		err = addBundle(zw, SiteDir, bundle)
	}
	if err != nil {
		_ = zw.Close()
		return err
	}

	err = zw.Close()
	if err != nil {
		err = errors.Wrap(err, "failed to finish archive")
		return err
	}

	return err
}

// MarshalData renders data as indented JSON stamped with exportedAt.
func MarshalData(data profile.Data, now time.Time) (out []byte, err error) {
	data.Normalize()

	out, err = json.Marshal(data)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal profile data")
		return out, err
	}

	out, err = sjson.SetBytes(out, "exportedAt", now.UTC().Format(time.RFC3339))
	if err != nil {
		err = errors.Wrap(err, "failed to stamp export time")
		return out, err
	}

	var indented strings.Builder
	encoder := json.NewEncoder(&indented)
	encoder.SetIndent("", "  ")
	err = encoder.Encode(json.RawMessage(out))
	if err != nil {
		err = errors.Wrap(err, "failed to indent profile data")
		return out, err
	}

	out = []byte(indented.String())
	return out, err
}

func addBundle(zw *zip.Writer, prefix string, bundle site.Bundle) (err error) {
	for _, name := range bundle.Names() {
		if !validName(name) {
			err = errors.Errorf("invalid bundle file name: %q", name)
			return err
		}

		err = addFile(zw, path.Join(prefix, name), []byte(bundle[name]))
		if err != nil {
			return err
		}
	}
	return err
}

func addFile(zw *zip.Writer, name string, content []byte) (err error) {
	var fw io.Writer
	fw, err = zw.CreateHeader(&zip.FileHeader{
		Name:   name,
		Method: zip.Deflate,
	})
	if err != nil {
		err = errors.Wrapf(err, "failed to add %s to archive", name)
		return err
	}

	_, err = fw.Write(content)
	if err != nil {
		err = errors.Wrapf(err, "failed to write %s to archive", name)
		return err
	}

	return err
}

func validName(name string) (ok bool) {
	if name == "" || strings.HasPrefix(name, "/") || strings.Contains(name, "\\") {
		return ok
	}
	for _, part := range strings.Split(name, "/") {
		if part == "" || part == "." || part == ".." {
			return ok
		}
	}
	ok = true
	return ok
}

func safeJoin(dir, name string) (target string, err error) {
	if !validName(name) {
		err = errors.Errorf("invalid bundle file name: %q", name)
		return target, err
	}
	target = filepath.Join(dir, filepath.FromSlash(name))
	return target, err
}
