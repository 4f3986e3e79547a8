package publish

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vango-dev/headless/internal/errors"
	"github.com/vango-dev/headless/internal/gallery"
	"github.com/vango-dev/headless/internal/stories"
	"github.com/vango-dev/headless/pkg/render"
)

// IndexFile is the name of the static index page.
const IndexFile = "index.html"

// BuildOptions configures Build.
type BuildOptions struct {
	// OutputDir receives the pages. It is created if missing.
	OutputDir string

	// Pretty indents the rendered HTML.
	Pretty bool

	Logger *slog.Logger
}

// BuildResult describes a finished static build.
type BuildResult struct {
	OutputDir string
	Files     []string
}

// Build writes a static gallery: index.html and one page per story. Pages
// are rendered without the live client.
func Build(ctx context.Context, reg *stories.Registry, opts BuildOptions) (*BuildResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, errors.New("E401").WithDetail(opts.OutputDir).Wrap(err)
	}

	r := render.NewRenderer(render.RendererConfig{Pretty: opts.Pretty})
	res := &BuildResult{OutputDir: opts.OutputDir}

	if err := writeFile(opts.OutputDir, IndexFile, func(f *os.File) error {
		return gallery.WriteIndex(f, r, reg, gallery.StaticLink)
	}); err != nil {
		return nil, err
	}
	res.Files = append(res.Files, IndexFile)

	for _, st := range reg.All() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := gallery.StaticLink(st)
		if err := writeFile(opts.OutputDir, name, func(f *os.File) error {
			return gallery.WriteStory(f, r, st, false)
		}); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, name)
		logger.Debug("wrote story page", "story", st.ID, "file", name)
	}

	logger.Info("static build complete", "dir", opts.OutputDir, "files", len(res.Files))
	return res, nil
}

func writeFile(dir, name string, write func(*os.File) error) error {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return errors.New("E401").WithDetail(path).Wrap(err)
	}
	if err := write(f); err != nil {
		f.Close()
		return errors.New("E302").WithDetail(fmt.Sprintf("render %s", name)).Wrap(err)
	}
	if err := f.Close(); err != nil {
		return errors.New("E401").WithDetail(path).Wrap(err)
	}
	return nil
}
