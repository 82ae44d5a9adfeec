// Package export saves framebuffer snapshots as timestamped TGA files.
package export

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"framelab/framebuf"
	"framelab/parallel"
	"framelab/tga"
)

// nameLayout renders as "Feb 13 2013 16:06:10".
const nameLayout = "Jan 2 2006 15:04:05"

// Exporter writes snapshots into a folder.
type Exporter struct {
	Dir    string
	Now    func() time.Time
	Logger *slog.Logger
}

// New returns an exporter writing into dir with the wall clock.
func New(dir string) *Exporter {
	return &Exporter{
		Dir:    dir,
		Now:    time.Now,
		Logger: slog.Default().With("dir", dir),
	}
}

// FileName returns the snapshot name for the given time and optional tag,
// such as "Image Feb 13 2013 16_06_10 r_g_b.tga".
func FileName(t time.Time, tag string) string {
	var sb strings.Builder
	sb.WriteString("Image ")
	sb.WriteString(strings.ReplaceAll(t.Format(nameLayout), ":", "_"))
	if tag != "" {
		sb.WriteByte(' ')
		sb.WriteString(tag)
	}
	sb.WriteString(".tga")
	return sb.String()
}

// Save writes img under a new timestamped name and returns its path. The
// file appears atomically under its final name.
func (e *Exporter) Save(img *framebuf.Image, tag string) (string, error) {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	name := filepath.Join(e.Dir, FileName(now(), tag))
	if err := tga.Save(name, img); err != nil {
		return "", err
	}
	e.logger().Info("image saved", "file", name)
	return name, nil
}

// Screenshot saves the top-left width x height area of img.
func (e *Exporter) Screenshot(img *framebuf.Image, width, height int, tag string) (string, error) {
	return e.Save(img.Area(0, 0, width, height), tag)
}

// Swaps saves the 64 channel remappings of img, running the writes on pool.
// It returns the number of written files.
func (e *Exporter) Swaps(img *framebuf.Image, pool *parallel.Pool) (int, error) {
	var (
		written atomic.Int64
		mu      sync.Mutex
		errs    []error
		wg      sync.WaitGroup
	)

	err := img.ChannelSwaps(func(tag string, variant *framebuf.Image) error {
		wg.Add(1)
		pool.Do(func() {
			defer wg.Done()
			if _, err := e.Save(variant, tag); err != nil {
				e.logger().Error("could not save channel swap", "tag", tag, "error", err)
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return
			}
			written.Add(1)
		})
		return nil
	})
	wg.Wait()

	if err != nil {
		errs = append(errs, err)
	}
	return int(written.Load()), errors.Join(errs...)
}

func (e *Exporter) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}
