package images

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vulh1209/localtranscript-manual/internal/logging"
)

// Logical names of the screenshots embedded in the manual.
const (
	Dropdown     = "dropdown"
	Recording    = "recording"
	Transcribing = "transcribing"
	General      = "general"
	History      = "history"
)

// Ref pairs a screenshot file with the slot it fills in the manual.
type Ref struct {
	Path string
	Name string
}

// Refs returns the five screenshots in the order they appear in the manual.
func Refs() []Ref {
	return []Ref{
		{Path: "dropdown-menu.png", Name: Dropdown},
		{Path: "start-recording.png", Name: Recording},
		{Path: "start-transcribing.png", Name: Transcribing},
		{Path: "general-setting.png", Name: General},
		{Path: "history-setting.png", Name: History},
	}
}

// Encode returns the base64 text of the file at path.
// A missing file is not an error: it yields "" so the slot renders empty.
func Encode(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("open image %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read image %s: %w", path, err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// EncodeAll encodes every ref relative to dir, keyed by ref name.
// It stops at the first unexpected I/O error.
func EncodeAll(dir string, refs []Ref, logger logging.Logger) (map[string]string, error) {
	logger = logging.OrNoop(logger)
	out := make(map[string]string, len(refs))
	for _, ref := range refs {
		encoded, err := Encode(filepath.Join(dir, ref.Path))
		if err != nil {
			logger.Errorf("images", "%s: %v", ref.Name, err)
			return nil, err
		}
		if encoded == "" {
			logger.Infof("images", "%s not found, %s slot left empty", ref.Path, ref.Name)
		} else {
			logger.Infof("images", "encoded %s (%d base64 chars)", ref.Path, len(encoded))
		}
		out[ref.Name] = encoded
	}
	return out, nil
}
