// Package archive persists silhouette templates on disk.
//
// A template is either a plain folder or a single uncompressed tar archive
// with the fixed ".rcsmt" extension. Both contain three required entries —
// the edge-mask image, the edge-orientation image, and the metadata
// document — plus up to three optional entries (3D model, collision mesh,
// grasp list) carried over when present.
//
// All writes are staged in a scratch location next to the destination and
// moved into place only on full success, so a failed operation never
// leaves a partial destination behind. Existing destinations are never
// overwritten.
package archive

import (
	"archive/tar"
	"bytes"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roboception/rcsilhouette-template-from-primitive/pkg/errors"
	"github.com/roboception/rcsilhouette-template-from-primitive/pkg/raster"
	"github.com/roboception/rcsilhouette-template-from-primitive/pkg/template"
)

// Extension is the fixed template archive extension.
const Extension = ".rcsmt"

// Required archive entries.
const (
	// EntryImage is the grayscale edge-mask raster.
	EntryImage = "template.png"

	// EntryGradients is the grayscale edge-orientation raster.
	EntryGradients = "gradients.png"

	// EntryMeta is the template metadata document.
	EntryMeta = "meta.yaml"
)

// RequiredEntries lists the entries every template must contain, in
// archive order.
var RequiredEntries = []string{EntryImage, EntryGradients, EntryMeta}

// OptionalEntries lists entries bundled when present in a source folder.
var OptionalEntries = []string{"model.glb", "collision_model.ply", "grasps.json"}

// WriteTemplate persists a rendered canvas pair and its metadata document
// to dest, either as a plain folder or as a ".rcsmt" archive. The two
// rasters are written as lossless grayscale PNGs.
//
// Fails with DESTINATION_EXISTS if dest is already present; in that case
// dest is left untouched.
func WriteTemplate(dest string, cv *raster.Canvas, meta *template.Metadata, asFolder bool) error {
	if pathExists(dest) {
		return errors.New(errors.ErrCodeDestinationExists, "the target '%s' exists already, please delete or rename", dest)
	}

	stage, err := os.MkdirTemp(filepath.Dir(dest), ".rcsmt-stage-*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create staging directory")
	}
	defer os.RemoveAll(stage)

	if err := writePNG(filepath.Join(stage, EntryImage), cv.Edges); err != nil {
		return err
	}
	if err := writePNG(filepath.Join(stage, EntryGradients), cv.Orientations); err != nil {
		return err
	}

	metaData, err := yaml.Marshal(meta)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", EntryMeta)
	}
	if err := os.WriteFile(filepath.Join(stage, EntryMeta), metaData, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", EntryMeta)
	}

	if asFolder {
		if err := os.Rename(stage, dest); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "move staged folder to '%s'", dest)
		}
		// MkdirTemp creates the stage 0700; open it up like a regular folder.
		return os.Chmod(dest, 0o755)
	}

	return packDir(stage, dest, false)
}

// Pack bundles an existing template folder into a new ".rcsmt" archive.
//
// The three required entries must all be present; otherwise the call fails
// with MISSING_REQUIRED_ENTRY and no output file is produced. Optional
// entries are included when present.
func Pack(dir, out string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return errors.New(errors.ErrCodeSourceMissing, "source folder '%s' does not exist, please check the path", dir)
	}
	if pathExists(out) {
		return errors.New(errors.ErrCodeDestinationExists, "the target template '%s' exists already, please remove or rename", out)
	}
	return packDir(dir, out, true)
}

// Unpack extracts every entry of a ".rcsmt" archive into a newly created
// destination folder.
//
// Fails with SOURCE_MISSING when the archive does not exist and with
// DESTINATION_EXISTS when the destination is already present. Extraction
// is staged and moved into place atomically.
func Unpack(src, dest string) error {
	f, err := os.Open(src)
	if err != nil {
		return errors.New(errors.ErrCodeSourceMissing, "template '%s' does not exist, please check the path", src)
	}
	defer f.Close()

	if pathExists(dest) {
		return errors.New(errors.ErrCodeDestinationExists, "output folder '%s' exists already, please rename or remove", dest)
	}

	stage, err := os.MkdirTemp(filepath.Dir(dest), ".rcsmt-unpack-*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create staging directory")
	}
	defer os.RemoveAll(stage)

	tr := tar.NewReader(f)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "read archive '%s'", src)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		name := filepath.Clean(hdr.Name)
		if filepath.IsAbs(name) || strings.HasPrefix(name, "..") || strings.Contains(name, string(filepath.Separator)) {
			return errors.New(errors.ErrCodeInvalidInput, "archive entry %q has an unsafe path", hdr.Name)
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "read archive entry %q", hdr.Name)
		}
		if err := os.WriteFile(filepath.Join(stage, name), data, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "extract %q", hdr.Name)
		}
	}

	if err := os.Rename(stage, dest); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "move extracted folder to '%s'", dest)
	}
	return os.Chmod(dest, 0o755)
}

// packDir writes the tar archive for dir's entries to out via a scratch
// file. When withOptional is set, optional entries present in dir are
// bundled after the required ones.
func packDir(dir, out string, withOptional bool) error {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)

	for _, name := range RequiredEntries {
		path := filepath.Join(dir, name)
		if !pathExists(path) {
			return errors.New(errors.ErrCodeMissingRequiredEntry, "required file '%s' missing from template folder", path)
		}
		if err := addEntry(tw, path, name); err != nil {
			return err
		}
	}
	if withOptional {
		for _, name := range OptionalEntries {
			path := filepath.Join(dir, name)
			if !pathExists(path) {
				continue
			}
			if err := addEntry(tw, path, name); err != nil {
				return err
			}
		}
	}

	if err := tw.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "finalize archive")
	}

	tmp, err := os.CreateTemp(filepath.Dir(out), ".rcsmt-pack-*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create scratch archive")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return errors.Wrap(errors.ErrCodeInternal, err, "write scratch archive")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "close scratch archive")
	}
	if err := os.Rename(tmpName, out); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "move archive to '%s'", out)
	}
	return nil
}

// addEntry appends one file to the archive under the given entry name.
// Headers carry a fixed mode and epoch mod time so identical content
// yields identical archives.
func addEntry(tw *tar.Writer, path, name string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "read '%s'", path)
	}
	hdr := &tar.Header{
		Name:    name,
		Mode:    0o644,
		Size:    int64(len(data)),
		ModTime: time.Unix(0, 0),
		Format:  tar.FormatUSTAR,
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write header for %q", name)
	}
	if _, err := tw.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write entry %q", name)
	}
	return nil
}

// writePNG encodes a grayscale raster to path.
func writePNG(path string, img *image.Gray) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create '%s'", path)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeInternal, err, "encode '%s'", path)
	}
	return f.Close()
}

// pathExists reports whether path exists, whatever its type.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
