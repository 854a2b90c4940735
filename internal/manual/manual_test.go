package manual

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/vulh1209/localtranscript-manual/internal/assets"
	"github.com/vulh1209/localtranscript-manual/internal/images"
)

const dataPrefix = "data:image/png;base64,"

func writePNG(t *testing.T, path string, shade uint8) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: shade, G: uint8(x * 40), B: uint8(y * 60), A: 0xFF})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func runGenerator(t *testing.T, dir string) (string, string) {
	t.Helper()
	var stdout bytes.Buffer
	g := &Generator{Dir: dir, Stdout: &stdout}
	if err := g.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, assets.ManualFilename))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	return string(data), stdout.String()
}

// imgSources parses doc as HTML and returns the src of every <img>.
func imgSources(t *testing.T, doc string) []string {
	t.Helper()
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	var srcs []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "img" {
			for _, a := range n.Attr {
				if a.Key == "src" {
					srcs = append(srcs, a.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return srcs
}

func TestRunAllImagesPresent(t *testing.T) {
	dir := t.TempDir()
	want := map[string][]byte{}
	for i, ref := range images.Refs() {
		want[ref.Name] = writePNG(t, filepath.Join(dir, ref.Path), uint8(i*50))
	}

	doc, stdout := runGenerator(t, dir)
	if stdout != "File created: LocalTranscript_Manual.html\n" {
		t.Fatalf("unexpected stdout %q", stdout)
	}
	if doc == "" {
		t.Fatalf("output is empty")
	}

	srcs := imgSources(t, doc)
	if len(srcs) != 5 {
		t.Fatalf("expected 5 images, got %d", len(srcs))
	}
	for i, ref := range images.Refs() {
		payload, ok := strings.CutPrefix(srcs[i], dataPrefix)
		if !ok || payload == "" {
			t.Fatalf("%s: src %.40q lacks a payload", ref.Name, srcs[i])
		}
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			t.Fatalf("%s: decode: %v", ref.Name, err)
		}
		if !bytes.Equal(decoded, want[ref.Name]) {
			t.Errorf("%s: embedded bytes differ from source file", ref.Name)
		}
	}
}

func TestRunNoImages(t *testing.T) {
	dir := t.TempDir()
	doc, stdout := runGenerator(t, dir)
	if !strings.Contains(stdout, "File created: LocalTranscript_Manual.html") {
		t.Fatalf("unexpected stdout %q", stdout)
	}
	if n := strings.Count(doc, dataPrefix+`"`); n != 5 {
		t.Fatalf("expected 5 empty data URIs, got %d", n)
	}
	for _, src := range imgSources(t, doc) {
		if src != dataPrefix {
			t.Errorf("expected empty payload, got %.40q", src)
		}
	}
}

func TestRunPartialImagesKeepsFiveSlots(t *testing.T) {
	refs := images.Refs()
	for present := 0; present <= len(refs); present++ {
		dir := t.TempDir()
		for _, ref := range refs[:present] {
			writePNG(t, filepath.Join(dir, ref.Path), 0x80)
		}
		doc, _ := runGenerator(t, dir)
		srcs := imgSources(t, doc)
		if len(srcs) != 5 {
			t.Fatalf("%d present: got %d images", present, len(srcs))
		}
		filled := 0
		for _, src := range srcs {
			if src != dataPrefix {
				filled++
			}
		}
		if filled != present {
			t.Errorf("%d present: %d slots filled", present, filled)
		}
	}
}

func TestRunOverwritesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, assets.ManualFilename)
	stale := strings.Repeat("stale content ", 100000)
	if err := os.WriteFile(out, []byte(stale), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, _ := runGenerator(t, dir)
	if strings.Contains(doc, "stale content") {
		t.Fatalf("old content survived")
	}
	if doc != Build(Images{}) {
		t.Fatalf("output does not match a fresh build")
	}
}

func TestRunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "general-setting.png"), 0x10)

	first, _ := runGenerator(t, dir)
	second, _ := runGenerator(t, dir)
	if first != second {
		t.Fatalf("output changed between runs")
	}
}

func TestRunFailsOnUnreadableImage(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "history-setting.png"), 0o755); err != nil {
		t.Fatal(err)
	}
	var stdout bytes.Buffer
	g := &Generator{Dir: dir, Stdout: &stdout}
	if err := g.Run(); err == nil {
		t.Fatalf("expected error")
	}
	if stdout.Len() != 0 {
		t.Fatalf("confirmation printed on failure: %q", stdout.String())
	}
	if _, err := os.Stat(filepath.Join(dir, assets.ManualFilename)); !os.IsNotExist(err) {
		t.Fatalf("output should not be written, stat err=%v", err)
	}
}

func TestRunFailsWhenOutputIsDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, assets.ManualFilename), 0o755); err != nil {
		t.Fatal(err)
	}
	g := &Generator{Dir: dir, Stdout: &bytes.Buffer{}}
	err := g.Run()
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), assets.ManualFilename) {
		t.Fatalf("error should name the output, got %v", err)
	}
}

func TestBuildSectionsAndQRCode(t *testing.T) {
	doc := Build(Images{Dropdown: "AAAA"})
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>LocalTranscript (VoiceType) Manual</title>",
		"<h2>Features</h2>",
		"<h2>Installation</h2>",
		"git clone https://github.com/vulh1209/local-transcript.git",
		"<h2>Usage</h2>",
		"<h3>Visual Feedback</h3>",
		"<h3>Hotkeys</h3>",
		"<code>Option + L</code>",
		"<h3>Settings</h3>",
		"<h3>Transcription History</h3>",
		"<h2>Troubleshooting</h2>",
		`src="data:image/png;base64,AAAA"`,
		"<svg ",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
	if strings.Contains(doc, "{img_") || strings.Contains(doc, "{repo_qr}") {
		t.Fatalf("unreplaced placeholder in document")
	}
	if strings.Count(doc, dataPrefix) != 5 {
		t.Fatalf("expected exactly 5 data URIs")
	}
}

func TestImagesFromMap(t *testing.T) {
	got := ImagesFromMap(map[string]string{images.General: "g", images.History: "h", "other": "x"})
	want := Images{General: "g", History: "h"}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}
