package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vulh1209/localtranscript-manual/internal/images"
	"github.com/vulh1209/localtranscript-manual/internal/logging"
	"github.com/vulh1209/localtranscript-manual/internal/render"
)

func main() {
	dir := flag.String("dir", ".", "directory to write the screenshot mockups into")
	force := flag.Bool("force", false, "overwrite screenshots that already exist")
	debug := flag.Bool("debug", false, "log rendering details to stderr")
	flag.Parse()

	var logger logging.Logger = logging.NoopLogger{}
	if *debug {
		logger = logging.NewFileLogger(os.Stderr)
	}

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	for _, ref := range images.Refs() {
		written, err := writeMockup(filepath.Join(*dir, ref.Path), ref.Name, *force, logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		if written {
			fmt.Println("Mockup written:", ref.Path)
		}
	}
}

// writeMockup renders the mockup for name into path. It reports false when
// the file exists and force is not set.
func writeMockup(path, name string, force bool, logger logging.Logger) (bool, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			logger.Infof("mockshots", "%s exists, skipping", path)
			return false, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return false, err
		}
	}

	canvas, err := render.Mockup(name, logger)
	if err != nil {
		return false, err
	}

	f, err := os.Create(path)
	if err != nil {
		return false, err
	}
	if err := canvas.EncodePNG(f); err != nil {
		f.Close()
		return false, fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, err
	}
	logger.Infof("mockshots", "rendered %s as %s", name, path)
	return true, nil
}
