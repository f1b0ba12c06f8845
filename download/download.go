// Package download saves the content of a video handle to the filesystem.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/vidkit/vidkit/filesystem"
	"github.com/vidkit/vidkit/key"
	"github.com/vidkit/vidkit/log"
	"github.com/vidkit/vidkit/video"
	"github.com/vidkit/vidkit/where"
)

// PartialExtension marks a file that is still being written.
const PartialExtension = ".part"

// ErrExists is returned when the target file exists and overwriting is disabled.
var ErrExists = errors.New("file already exists")

// ProgressFunc receives the number of bytes written so far and the expected total,
// which is -1 when unknown.
type ProgressFunc func(written, total int64)

// Options controls how Save writes a video.
type Options struct {
	// Dir is the directory the video is saved to. Defaults to where.Downloads().
	Dir string

	// Stream copies the content as it arrives instead of buffering it in memory first.
	Stream bool

	Overwrite bool
	Progress  ProgressFunc
}

// DefaultOptions returns options populated from the configuration.
func DefaultOptions() Options {
	return Options{
		Dir:       viper.GetString(key.DownloadDirectory),
		Stream:    viper.GetBool(key.DownloadStream),
		Overwrite: viper.GetBool(key.DownloadOverwrite),
	}
}

// Target returns the path Save would write h to.
func Target(h *video.Handle, opts Options) string {
	dir := opts.Dir
	if dir == "" {
		dir = where.Downloads()
	}
	return filepath.Join(dir, h.FullName())
}

// Save writes the content of h to Target(h, opts) and returns that path.
// Content goes to a sibling .part file first, which is renamed once complete.
func Save(ctx context.Context, h *video.Handle, opts Options) (string, error) {
	fs := filesystem.API()
	target := Target(h, opts)

	if exists, err := fs.Exists(target); err != nil {
		return "", err
	} else if exists && !opts.Overwrite {
		return "", fmt.Errorf("%w: %s", ErrExists, target)
	}

	if err := fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return "", err
	}

	partial := target + PartialExtension
	file, err := fs.Create(partial)
	if err != nil {
		return "", err
	}

	if opts.Stream {
		err = copyStream(ctx, h, file, opts.Progress)
	} else {
		err = copyBuffered(ctx, h, file, opts.Progress)
	}

	if closeErr := file.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		_ = fs.Remove(partial)
		return "", err
	}

	if err := fs.Rename(partial, target); err != nil {
		_ = fs.Remove(partial)
		return "", err
	}

	log.Infof("saved %s to %s", h.Title(), target)
	return target, nil
}

func copyBuffered(ctx context.Context, h *video.Handle, dst io.Writer, progress ProgressFunc) error {
	data, err := h.BytesContext(ctx)
	if err != nil {
		return err
	}

	total := int64(len(data))
	if progress != nil {
		progress(0, total)
	}

	if _, err := dst.Write(data); err != nil {
		return err
	}

	if progress != nil {
		progress(total, total)
	}
	return nil
}

func copyStream(ctx context.Context, h *video.Handle, dst io.Writer, progress ProgressFunc) error {
	stream, err := h.StreamContext(ctx)
	if err != nil {
		return err
	}
	defer stream.Close()

	var total int64 = -1
	if sized, ok := stream.(interface{ Size() int64 }); ok {
		total = sized.Size()
	}

	if progress != nil {
		progress(0, total)
		dst = &progressWriter{w: dst, total: total, report: progress}
	}

	_, err = io.Copy(dst, stream)
	return err
}

type progressWriter struct {
	w       io.Writer
	written int64
	total   int64
	report  ProgressFunc
}

func (p *progressWriter) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	p.written += int64(n)
	p.report(p.written, p.total)
	return n, err
}
