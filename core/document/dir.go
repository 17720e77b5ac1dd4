package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtensions are the document suffixes matched when none are configured.
var DefaultExtensions = []string{".json"}

// Entry is one document file directly under a directory.
type Entry struct {
	// Name is the file name, used to match entries across directories.
	Name string `json:"name"`
	// Path is the full path of the file.
	Path string `json:"path"`
}

// Dir is a flat catalog of documents under a single directory.
type Dir struct {
	root       string
	extensions []string
}

// OpenDir returns a catalog of root. The directory is not touched until one of
// the methods is called, so a missing directory is reported by Exists.
func OpenDir(root string, extensions ...string) *Dir {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return &Dir{root: root, extensions: normalized}
}

// Root returns the directory path.
func (d *Dir) Root() string {
	return d.root
}

// Exists reports whether the root is an existing directory.
func (d *Dir) Exists() (bool, error) {
	info, err := os.Stat(d.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", d.root, err)
	}
	return info.IsDir(), nil
}

// Entries lists matching documents directly under the root, sorted by name.
// Subdirectories are not descended into.
func (d *Dir) Entries() ([]Entry, error) {
	items, err := os.ReadDir(d.root)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", d.root, err)
	}

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		if item.IsDir() || !d.matches(item.Name()) {
			continue
		}
		entries = append(entries, Entry{
			Name: item.Name(),
			Path: filepath.Join(d.root, item.Name()),
		})
	}
	return entries, nil
}

// Names lists the document names directly under the root, sorted.
func (d *Dir) Names() ([]string, error) {
	entries, err := d.Entries()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names, nil
}

// Load reads and decodes the named document.
func (d *Dir) Load(name string) (any, error) {
	if name == "" || filepath.Base(name) != name {
		return nil, fmt.Errorf("invalid document name %q", name)
	}
	data, err := os.ReadFile(filepath.Join(d.root, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return Parse(name, data)
}

func (d *Dir) matches(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range d.extensions {
		if ext == want {
			return true
		}
	}
	return false
}
