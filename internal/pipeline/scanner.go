package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/cardgen/internal/deck"
)

// ErrMissingBase is returned when an ace template cannot be found.
var ErrMissingBase = errors.New("missing base image")

// Base is the ace template for one suit.
type Base struct {
	Suit deck.Suit
	// Path is the absolute path to card_ace_<suit>.png.
	Path string
	// Size is the file size in bytes.
	Size int64
}

// LocateBases returns the four ace templates in suit order. Every missing
// file is named in the error.
func LocateBases(assetsDir string) ([]Base, error) {
	info, err := os.Stat(assetsDir)
	if err != nil {
		return nil, fmt.Errorf("assets dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets dir %s is not a directory", assetsDir)
	}

	var bases []Base
	var missing []string
	for _, s := range deck.Suits() {
		name := deck.BaseFileName(s)
		path := filepath.Join(assetsDir, name)
		fi, err := os.Stat(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			missing = append(missing, name)
			continue
		case err != nil:
			return nil, fmt.Errorf("stat %s: %w", name, err)
		case fi.IsDir():
			missing = append(missing, name)
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", name, err)
		}
		bases = append(bases, Base{Suit: s, Path: abs, Size: fi.Size()})
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w in %s: %s", ErrMissingBase, assetsDir, strings.Join(missing, ", "))
	}
	return bases, nil
}
