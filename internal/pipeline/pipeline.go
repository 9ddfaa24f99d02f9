package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/AnyUserName/cardgen/internal/deck"
	"github.com/AnyUserName/cardgen/internal/encoder"
	"github.com/AnyUserName/cardgen/internal/glyph"
	"github.com/AnyUserName/cardgen/internal/manifest"
	"github.com/AnyUserName/cardgen/internal/profile"
	"golang.org/x/image/font"
	"golang.org/x/sync/errgroup"
)

// Config holds all parameters for a build run.
type Config struct {
	AssetsDir string // holds card_ace_<suit>.png
	OutputDir string // receives card_<rank>_<suit>.png; may equal AssetsDir
	FontPath  string // empty selects the embedded font
	Profile   profile.Profile
	Workers   int
	Verbose   bool
}

// Pipeline renders a deck from its ace templates.
type Pipeline struct {
	cfg      Config
	registry *encoder.Registry
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = cfg.AssetsDir
	}
	if cfg.Profile.FontSize <= 0 {
		cfg.Profile = profile.Get(cfg.Profile.Name)
	}
	return &Pipeline{
		cfg:      cfg,
		registry: encoder.NewRegistry(cfg.Profile.DPI),
	}
}

// Run renders all 48 non-ace cards and returns a manifest covering the full
// 52-card deck. The first failure cancels outstanding work and is returned;
// cards already written stay on disk.
func (p *Pipeline) Run(ctx context.Context) (*manifest.Manifest, error) {
	p.logf("%s", p.registry.String())

	// Step 1: Locate and decode templates.
	bases, err := LocateBases(p.cfg.AssetsDir)
	if err != nil {
		return nil, err
	}
	templates := make(map[deck.Suit]*template, len(bases))
	for _, b := range bases {
		t, err := loadTemplate(b)
		if err != nil {
			return nil, err
		}
		templates[b.Suit] = t
		p.logf("base: %s (%dx%d)", filepath.Base(b.Path), t.img.Bounds().Dx(), t.img.Bounds().Dy())
	}

	// Step 2: Font.
	fnt, err := glyph.Load(p.cfg.FontPath)
	if err != nil {
		return nil, err
	}
	p.logf("font: %s @ %gpt, %d dpi", fnt.Name, p.cfg.Profile.FontSize, p.cfg.Profile.DPI)

	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	copyTo, err := p.baseCopyTarget()
	if err != nil {
		return nil, err
	}

	// Step 3: Render in parallel. Faces are not safe for concurrent use, so
	// each worker borrows one from the pool.
	pool := newFacePool(fnt, p.cfg.Profile, p.cfg.Workers)
	defer pool.Close()

	enc := p.registry.Get("png")
	cards := deck.Rendered()
	results := make([]manifest.Card, len(cards))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)
	for i, c := range cards {
		if gctx.Err() != nil {
			break
		}
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			face, err := pool.Get()
			if err != nil {
				return err
			}
			defer pool.Put(face)

			entry, err := renderCard(c, templates[c.Suit], face, p.cfg, enc)
			if err != nil {
				return err
			}
			results[i] = entry
			p.logf("done: %s", c.FileName())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 4: Collect into manifest, copying aces when writing elsewhere.
	m := manifest.New(p.cfg.Profile.Name)
	m.Font = fnt.Name
	m.FontSize = p.cfg.Profile.FontSize
	m.DPI = p.cfg.Profile.DPI
	m.BuildInfo.Workers = p.cfg.Workers

	for _, b := range bases {
		entry, err := baseEntry(templates[b.Suit], copyTo)
		if err != nil {
			return nil, err
		}
		m.Cards[deck.Card{Suit: b.Suit, Rank: deck.Ace}.Key()] = entry
	}
	for i, c := range cards {
		m.Cards[c.Key()] = results[i]
	}
	m.ComputeStats()
	return m, nil
}

// baseCopyTarget returns the output directory when the aces must be copied
// into it, or "" when it is the assets directory itself.
func (p *Pipeline) baseCopyTarget() (string, error) {
	in, err := os.Stat(p.cfg.AssetsDir)
	if err != nil {
		return "", fmt.Errorf("assets dir: %w", err)
	}
	out, err := os.Stat(p.cfg.OutputDir)
	if err != nil {
		return "", fmt.Errorf("output dir: %w", err)
	}
	if os.SameFile(in, out) {
		return "", nil
	}
	return p.cfg.OutputDir, nil
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[cardgen] "+format+"\n", args...)
	}
}

// facePool keeps idle faces for reuse across cards.
type facePool struct {
	font  *glyph.Font
	prof  profile.Profile
	faces chan font.Face
}

func newFacePool(f *glyph.Font, prof profile.Profile, size int) *facePool {
	return &facePool{font: f, prof: prof, faces: make(chan font.Face, size)}
}

// Get returns an idle face or creates one.
func (fp *facePool) Get() (font.Face, error) {
	select {
	case face := <-fp.faces:
		return face, nil
	default:
		return fp.font.Face(fp.prof.FontSize, fp.prof.DPI)
	}
}

// Put returns a face to the pool, closing it if the pool is full.
func (fp *facePool) Put(face font.Face) {
	select {
	case fp.faces <- face:
	default:
		face.Close()
	}
}

// Close releases idle faces. Call it once all workers have returned.
func (fp *facePool) Close() {
	for {
		select {
		case face := <-fp.faces:
			face.Close()
		default:
			return
		}
	}
}
