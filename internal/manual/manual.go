package manual

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vulh1209/localtranscript-manual/internal/assets"
	"github.com/vulh1209/localtranscript-manual/internal/images"
	"github.com/vulh1209/localtranscript-manual/internal/logging"
	"github.com/vulh1209/localtranscript-manual/internal/render"
)

// Images holds the base64 payload for each screenshot slot. An empty field
// renders as an empty data URI.
type Images struct {
	Dropdown     string
	Recording    string
	Transcribing string
	General      string
	History      string
}

// ImagesFromMap picks the slot values out of a name-keyed map as returned by
// images.EncodeAll. Missing keys stay empty.
func ImagesFromMap(encoded map[string]string) Images {
	return Images{
		Dropdown:     encoded[images.Dropdown],
		Recording:    encoded[images.Recording],
		Transcribing: encoded[images.Transcribing],
		General:      encoded[images.General],
		History:      encoded[images.History],
	}
}

// repoQR is derived from a constant, so it is computed once per process.
// An encoder failure leaves the block empty rather than failing the build.
var repoQR = sync.OnceValue(func() string {
	svg, err := render.QRCodeSVG(assets.RepositoryURL)
	if err != nil {
		return ""
	}
	return svg
})

// Build returns the complete manual document for the given screenshots.
func Build(imgs Images) string {
	r := strings.NewReplacer(
		"{img_dropdown}", imgs.Dropdown,
		"{img_recording}", imgs.Recording,
		"{img_transcribing}", imgs.Transcribing,
		"{img_general}", imgs.General,
		"{img_history}", imgs.History,
		"{repo_qr}", repoQR(),
	)
	return r.Replace(assets.ManualHTML)
}

// Generator reads the screenshots from Dir and writes the manual next to them.
type Generator struct {
	Dir    string
	Stdout io.Writer
	Logger logging.Logger
}

// Run encodes the five screenshots, builds the document, overwrites the
// manual file and prints the confirmation line. Any I/O error other than a
// missing screenshot aborts the run.
func (g *Generator) Run() error {
	logger := logging.OrNoop(g.Logger)
	dir := g.Dir
	if dir == "" {
		dir = "."
	}
	out := g.Stdout
	if out == nil {
		out = os.Stdout
	}

	encoded, err := images.EncodeAll(dir, images.Refs(), logger)
	if err != nil {
		return err
	}
	doc := Build(ImagesFromMap(encoded))

	path := filepath.Join(dir, assets.ManualFilename)
	if err := writeDocument(path, doc); err != nil {
		logger.Errorf("manual", "%v", err)
		return err
	}
	logger.Infof("manual", "wrote %s (%d bytes)", path, len(doc))

	_, err = fmt.Fprintf(out, "File created: %s\n", assets.ManualFilename)
	return err
}

func writeDocument(path, doc string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if _, err := io.WriteString(f, doc); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
