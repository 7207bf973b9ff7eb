package levels

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.lvl *.tengo
var LevelsFS embed.FS

var (
	ErrNotFound  = errors.New("levels: level not found")
	ErrMalformed = errors.New("levels: malformed level")
)

const (
	extRecords = ".lvl"
	extScript  = ".tengo"
)

// Source resolves level names to obstacle layouts. Files under Dir take
// precedence over FS so levels can be edited without rebuilding.
type Source struct {
	Dir string
	FS  fs.FS
}

// Default reads levels/ on disk first, then the embedded set.
func Default() Source {
	return Source{Dir: "levels", FS: LevelsFS}
}

// Load resolves name to name, name.lvl or name.tengo and decodes it.
func (s Source) Load(name string) (*Layout, error) {
	file, data, err := s.read(name)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(path.Ext(file), extScript) {
		return RunScript(file, data)
	}
	return Parse(file, bytes.NewReader(data))
}

// Names lists every loadable level name without extension, sorted.
func (s Source) Names() []string {
	seen := map[string]struct{}{}
	add := func(file string) {
		if isLevelFile(file) {
			seen[strings.TrimSuffix(file, filepath.Ext(file))] = struct{}{}
		}
	}

	if s.Dir != "" {
		if entries, err := os.ReadDir(s.Dir); err == nil {
			for _, e := range entries {
				if !e.IsDir() {
					add(e.Name())
				}
			}
		}
	}
	if s.FS != nil {
		if entries, err := fs.ReadDir(s.FS, "."); err == nil {
			for _, e := range entries {
				if !e.IsDir() {
					add(e.Name())
				}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (s Source) read(name string) (string, []byte, error) {
	clean := cleanLevelName(name)
	if clean == "" {
		return "", nil, fmt.Errorf("%w: empty name", ErrNotFound)
	}
	candidates := []string{clean, clean + extRecords, clean + extScript}

	if s.Dir != "" {
		for _, c := range candidates {
			data, err := os.ReadFile(filepath.Join(s.Dir, filepath.FromSlash(c)))
			if err == nil {
				return c, data, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return "", nil, fmt.Errorf("levels: read %s: %w", c, err)
			}
		}
	}
	if s.FS != nil {
		for _, c := range candidates {
			data, err := fs.ReadFile(s.FS, c)
			if err == nil {
				return c, data, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return "", nil, fmt.Errorf("levels: read %s: %w", c, err)
			}
		}
	}
	return "", nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

func cleanLevelName(name string) string {
	s := filepath.ToSlash(strings.TrimSpace(name))
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	return s
}

func isLevelFile(p string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	return ext == extRecords || ext == extScript
}
