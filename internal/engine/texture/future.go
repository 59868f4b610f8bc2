package texture

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
)

// Future is the pending result of decoding one texture. Its result is
// written once by the loading goroutine and read only after Done closes.
type Future struct {
	name string
	done chan struct{}
	img  *Image
	err  error
}

// Name returns the texture name the future resolves.
func (f *Future) Name() string {
	return f.name
}

// Done is closed when the result is available.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Ready reports whether the result is available without blocking.
func (f *Future) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the texture is decoded or ctx is done.
func (f *Future) Wait(ctx context.Context) (*Image, error) {
	select {
	case <-f.done:
		return f.img, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func newFuture(name string) *Future {
	return &Future{name: name, done: make(chan struct{})}
}

func (f *Future) resolve(img *Image, err error) {
	f.img, f.err = img, err
	close(f.done)
}

// Options control how loaded images are prepared for upload.
type Options struct {
	// MaxSize caps the larger side of a texture; 0 keeps the original size.
	MaxSize int
}

// Load decodes the image file at path on a new goroutine.
func Load(ctx context.Context, name, path string, opts Options) *Future {
	f := newFuture(name)
	go func() {
		f.resolve(loadFile(ctx, name, path, opts))
	}()
	return f
}

func loadFile(ctx context.Context, name, path string, opts Options) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", name, err)
	}
	defer file.Close()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rgba, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("texture %q: decode %s: %w", name, path, err)
	}
	rgba = Fit(rgba, opts.MaxSize)
	FlipVertical(rgba)

	return &Image{Name: name, RGBA: rgba}, nil
}

// Generated wraps an image produced in memory in an already resolved
// future, so procedural and file textures share one upload path.
func Generated(name string, img *Image) *Future {
	f := newFuture(name)
	img.Name = name
	f.resolve(img, nil)
	return f
}

// Join blocks until every future has resolved. Individual decode failures
// stay on their futures; Join only fails when ctx ends first.
func Join(ctx context.Context, futures ...*Future) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, f := range futures {
		g.Go(func() error {
			select {
			case <-f.done:
				return nil
			case <-ctx.Done():
				return fmt.Errorf("waiting for texture %q: %w", f.name, ctx.Err())
			}
		})
	}
	return g.Wait()
}
