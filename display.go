package eda

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"
)

// Display shows finished figures. Show blocks until the figure has been
// rendered.
type Display interface {
	Show(fig *Figure) error
}

// FileDisplay shows figures by writing them to sequentially numbered
// files "NNN-<title>.<format>" in Dir.
type FileDisplay struct {
	Dir    string
	Format string // png, svg, pdf, ...; empty means png

	mu      sync.Mutex
	written []string
}

func NewFileDisplay(dir, format string) *FileDisplay {
	return &FileDisplay{Dir: dir, Format: format}
}

func (d *FileDisplay) Show(fig *Figure) (err error) {
	format := d.Format
	if format == "" {
		format = "png"
	}
	w, err := fig.WriterTo(format)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	name := fmt.Sprintf("%03d-%s.%s", len(d.written)+1, slug(fig.Title), format)
	path := filepath.Join(d.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if _, err = w.WriteTo(f); err != nil {
		return err
	}
	d.written = append(d.written, path)
	return nil
}

// Written returns the paths of all files written so far.
func (d *FileDisplay) Written() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.written...)
}

// DiscardDisplay drops all figures.
type DiscardDisplay struct{}

func (DiscardDisplay) Show(*Figure) error { return nil }

func slug(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return '-'
	}, s)
	s = strings.Join(strings.FieldsFunc(s, func(r rune) bool { return r == '-' }), "-")
	if s == "" {
		return "figure"
	}
	return s
}
