package render

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/vulh1209/localtranscript-manual/internal/images"
	"github.com/vulh1209/localtranscript-manual/internal/logging"
	"github.com/vulh1209/localtranscript-manual/internal/render/layout"
)

type mockup struct {
	width  int
	height int
	bg     color.Color
	draw   func(c *Canvas)
}

var mockups = map[string]mockup{
	images.Dropdown:     {width: 300, height: 300, bg: Background, draw: drawDropdown},
	images.Recording:    {width: 220, height: 60, bg: color.Transparent, draw: indicator(RecordingRed, "Recording", true)},
	images.Transcribing: {width: 220, height: 60, bg: color.Transparent, draw: indicator(TranscribingBlue, "Transcribing...", false)},
	images.General:      {width: 500, height: 550, bg: Background, draw: drawGeneralSettings},
	images.History:      {width: 500, height: 550, bg: Background, draw: drawHistorySettings},
}

// MockupNames returns the slot names a mockup exists for, sorted.
func MockupNames() []string {
	names := make([]string, 0, len(mockups))
	for name := range mockups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mockup draws the placeholder screenshot for the named manual slot.
func Mockup(name string, logger logging.Logger) (*Canvas, error) {
	m, ok := mockups[name]
	if !ok {
		return nil, fmt.Errorf("no mockup for %q", name)
	}
	c := NewCanvas(m.width, m.height, m.bg)
	c.Logger = logging.OrNoop(logger)
	m.draw(c)
	return c, nil
}

var (
	bodyText      = TextStyle{Color: Foreground}
	secondaryText = TextStyle{Color: Secondary, Size: 11}
	headerText    = TextStyle{Color: Secondary, Size: 11, Bold: true}
)

func drawDropdown(c *Canvas) {
	panel := layout.Inset(c.Bounds(), 6)
	c.FillRoundRect(panel, 10, Panel)
	inner := layout.Inset(panel, 8)

	rows := layout.Stack(inner, 26, 9, 26, 9, 20, 22, 26, 9, 26, 9, 26, 26)
	menuItem(c, rows[0], "Ready", Ready, false)
	separator(c, rows[1])
	menuItem(c, rows[2], "Start Recording", RecordingRed, true)
	c.DrawText("Option+Space", layout.Inset(rows[2], 8), TextStyle{Color: Panel, Size: 11, Align: TextAlignRight})
	separator(c, rows[3])
	c.DrawText("Last Transcription", indent(rows[4], 10), secondaryText)
	c.DrawText("Remind me to send the report", indent(rows[5], 10), TextStyle{Color: Foreground, Size: 12})
	menuItem(c, rows[6], "Copy to Clipboard", nil, false)
	separator(c, rows[7])
	menuItem(c, rows[8], "Load Model", nil, false)
	separator(c, rows[9])
	menuItem(c, rows[10], "Settings...", nil, false)
	menuItem(c, rows[11], "Quit LocalTranscript", nil, false)
}

// menuItem draws one dropdown row. A non-nil dot draws a status dot before
// the label; highlighted rows get the accent selection background.
func menuItem(c *Canvas, row image.Rectangle, label string, dot color.Color, highlighted bool) {
	style := bodyText
	if highlighted {
		c.FillRoundRect(row, 5, Accent)
		style.Color = Panel
	}
	textRect := indent(row, 10)
	if dot != nil {
		c.FillCircle(image.Pt(row.Min.X+15, row.Min.Y+row.Dy()/2), 5, dot)
		textRect = indent(row, 28)
	}
	c.DrawText(label, textRect, style)
}

func separator(c *Canvas, row image.Rectangle) {
	mid := row.Min.Y + row.Dy()/2
	c.HLine(row.Min.X+4, row.Max.X-4, mid, Separator)
}

func indent(rect image.Rectangle, px int) image.Rectangle {
	_, right := layout.SplitVertical(rect, px)
	return right
}

func indicator(dot color.Color, label string, waveform bool) func(c *Canvas) {
	return func(c *Canvas) {
		capsule := layout.Inset(c.Bounds(), 4)
		c.FillRoundRect(capsule, capsule.Dy()/2, Capsule)

		mid := capsule.Min.Y + capsule.Dy()/2
		c.FillCircle(image.Pt(capsule.Min.X+26, mid), 8, dot)
		c.DrawText(label, indent(capsule, 44), TextStyle{Color: CapsuleText, Size: 15, Bold: true})

		if !waveform {
			return
		}
		// Level meter on the right edge of the capsule.
		x := capsule.Max.X - 58
		for _, h := range []int{8, 16, 24, 14, 20, 10} {
			c.FillRoundRect(image.Rect(x, mid-h/2, x+4, mid+h/2), 2, dot)
			x += 7
		}
	}
}

func drawTabBar(c *Canvas, rect image.Rectangle, selected int) {
	c.HLine(rect.Min.X, rect.Max.X, rect.Max.Y-1, Separator)
	tabs := []string{"General", "History"}
	bar := layout.Center(rect, 180, 44)
	left, right := layout.SplitVertical(bar, bar.Dx()/2)
	for i, tab := range []image.Rectangle{left, right} {
		style := TextStyle{Color: Secondary, Align: TextAlignCenter}
		if i == selected {
			c.FillRoundRect(layout.Inset(tab, 2), 6, Separator)
			style.Color = Foreground
			style.Bold = true
		}
		c.DrawText(tabs[i], tab, style)
	}
}

type formRow struct {
	label   string
	value   string
	toggle  *bool
	choices []string
	caption bool
}

type formSection struct {
	title string
	rows  []formRow
}

func boolPtr(v bool) *bool { return &v }

var generalForm = []formSection{
	{title: "GENERAL", rows: []formRow{
		{label: "Start at Login", toggle: boolPtr(true)},
	}},
	{title: "HOTKEY", rows: []formRow{
		{label: "Recording Shortcut:", value: "Option + Space"},
		{label: "Mode", choices: []string{"Hold to Talk", "Toggle"}},
		{label: "Hold hotkey to record, release to transcribe", caption: true},
	}},
	{title: "LANGUAGE", rows: []formRow{
		{label: "Language Mode", value: "Auto"},
		{label: "Auto-detect or force specific language. Cycle with hotkey.", caption: true},
	}},
	{title: "TRANSLATION", rows: []formRow{
		{label: "Translate to English", toggle: boolPtr(false)},
	}},
	{title: "MODEL", rows: []formRow{
		{label: "Model Size", value: "Base (Recommended)  ~75MB"},
	}},
}

func drawGeneralSettings(c *Canvas) {
	tabBar, content := layout.SplitHorizontal(c.Bounds(), 60)
	drawTabBar(c, tabBar, 0)

	area := layout.Inset(content, 20)
	for _, section := range generalForm {
		header, rest := layout.SplitHorizontal(area, 22)
		c.DrawText(section.title, indent(header, 6), headerText)

		group, rest := layout.SplitHorizontal(rest, 32*len(section.rows))
		c.FillRoundRect(group, 8, Panel)
		for i, row := range layout.Stack(group, repeat(32, len(section.rows))...) {
			if i > 0 {
				c.HLine(row.Min.X+12, row.Max.X, row.Min.Y, Background)
			}
			drawFormRow(c, row, section.rows[i])
		}
		_, area = layout.SplitHorizontal(rest, 12)
	}
}

func drawFormRow(c *Canvas, row image.Rectangle, fr formRow) {
	labelRect, valueRect := layout.SplitVertical(indent(row, 12), row.Dx()/2)
	if fr.caption {
		c.DrawText(fr.label, indent(row, 12), secondaryText)
		return
	}
	c.DrawText(fr.label, labelRect, bodyText)

	valueRect = shrinkRight(valueRect, 12)
	switch {
	case fr.toggle != nil:
		drawToggle(c, valueRect, *fr.toggle)
	case len(fr.choices) > 0:
		drawSegmented(c, valueRect, fr.choices, 0)
	default:
		c.DrawText(fr.value, valueRect, TextStyle{Color: Secondary, Align: TextAlignRight})
	}
}

func shrinkRight(rect image.Rectangle, px int) image.Rectangle {
	left, _ := layout.SplitVertical(rect, rect.Dx()-px)
	return left
}

func drawToggle(c *Canvas, rect image.Rectangle, on bool) {
	mid := rect.Min.Y + rect.Dy()/2
	track := image.Rect(rect.Max.X-36, mid-10, rect.Max.X, mid+10)
	knob := image.Pt(track.Min.X+10, mid)
	trackColor := color.Color(Separator)
	if on {
		trackColor = Accent
		knob.X = track.Max.X - 10
	}
	c.FillRoundRect(track, 10, trackColor)
	c.FillCircle(knob, 8, Panel)
}

func drawSegmented(c *Canvas, rect image.Rectangle, choices []string, selected int) {
	const segmentWidth = 90
	width := segmentWidth * len(choices)
	mid := rect.Min.Y + rect.Dy()/2
	control := image.Rect(rect.Max.X-width, mid-11, rect.Max.X, mid+11)
	c.FillRoundRect(control, 6, Background)
	for i, choice := range choices {
		seg := image.Rect(control.Min.X+i*segmentWidth, control.Min.Y, control.Min.X+(i+1)*segmentWidth, control.Max.Y)
		style := TextStyle{Color: Foreground, Size: 12, Align: TextAlignCenter}
		if i == selected {
			c.FillRoundRect(layout.Inset(seg, 2), 5, Panel)
			style.Bold = true
		}
		c.DrawText(choice, seg, style)
	}
}

type historyEntry struct {
	text       string
	when       string
	language   string
	duration   string
	translated bool
}

var sampleHistory = []historyEntry{
	{text: "Remind me to send the quarterly report before Friday.", when: "2 min ago", language: "Auto", duration: "3.4s"},
	{text: "Hello team, the build is green again.", when: "15 min ago", language: "Vietnamese", duration: "2.8s", translated: true},
	{text: "Schedule the design review for next Tuesday.", when: "1 hr ago", language: "English", duration: "4.0s"},
	{text: "Add milk and coffee beans to the shopping list.", when: "Yesterday", language: "Auto", duration: "2.5s"},
}

func drawHistorySettings(c *Canvas) {
	tabBar, content := layout.SplitHorizontal(c.Bounds(), 60)
	drawTabBar(c, tabBar, 1)

	area := layout.Inset(content, 20)
	toolbar, list := layout.SplitHorizontal(area, 32)
	c.DrawText(fmt.Sprintf("%d transcriptions", len(sampleHistory)), toolbar, TextStyle{Color: Secondary})
	c.DrawText("Clear All", toolbar, TextStyle{Color: RecordingRed, Bold: true, Align: TextAlignRight})

	group, _ := layout.SplitHorizontal(list, 64*len(sampleHistory))
	c.FillRoundRect(group, 8, Panel)
	for i, row := range layout.Stack(group, repeat(64, len(sampleHistory))...) {
		if i > 0 {
			c.HLine(row.Min.X+12, row.Max.X, row.Min.Y, Background)
		}
		drawHistoryRow(c, row, sampleHistory[i])
	}
}

func drawHistoryRow(c *Canvas, row image.Rectangle, entry historyEntry) {
	body := layout.Inset(row, 10)
	text, copyButton := layout.SplitVertical(body, body.Dx()-60)
	lines := layout.Stack(text, 24, 20)
	c.DrawText(entry.text, lines[0], bodyText)

	meta := entry.when + " - " + entry.language + " - " + entry.duration
	width := c.DrawText(meta, lines[1], secondaryText)
	if entry.translated {
		badge := image.Rect(lines[1].Min.X+width+8, lines[1].Min.Y+2, lines[1].Min.X+width+36, lines[1].Max.Y-2)
		c.FillRoundRect(badge, 8, TranscribingBlue)
		c.DrawText("EN", badge, TextStyle{Color: Panel, Size: 10, Bold: true, Align: TextAlignCenter})
	}

	button := layout.Center(copyButton, 52, 24)
	c.FillRoundRect(button, 6, Background)
	c.DrawText("Copy", button, TextStyle{Color: Accent, Size: 12, Align: TextAlignCenter})
}

func repeat(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}
