package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/brandmark/pkg/export"
	"github.com/matzehuels/brandmark/pkg/icon"
	"github.com/matzehuels/brandmark/pkg/preset"
	"github.com/matzehuels/brandmark/pkg/render"
	"github.com/matzehuels/brandmark/pkg/studio"
)

// Editor styles
var (
	editorLabelStyle   = lipgloss.NewStyle().Foreground(colorGray).Width(18)
	editorFocusStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Width(18)
	editorPaneStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
	editorSelected     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	editorUnselected   = lipgloss.NewStyle().Foreground(colorDim)
	editorSliderFilled = lipgloss.NewStyle().Foreground(colorCyan)
)

const sliderWidth = 20

// numInputs is the number of fields edited through a text input.
const numInputs = int(fieldBackground) + 1

// =============================================================================
// Fields
// =============================================================================

// editorField is one row of the editor form, in display order.
type editorField int

const (
	fieldMainText editorField = iota
	fieldLogoText
	fieldPrimary
	fieldAuxiliary
	fieldBackground
	fieldContrast
	fieldStrokeWidth
	fieldShadow
	fieldRadius
	fieldLayout
	fieldPreset
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Main text", "Logo text",
	"Primary color", "Auxiliary color", "Background color",
	"Contrast", "Stroke width", "Shadow intensity", "Border radius",
	"Layout", "Preset",
}

// textInput reports whether the field is edited through a text input.
func (f editorField) textInput() bool { return f <= fieldBackground }

func (f editorField) color() (studio.ColorField, bool) {
	switch f {
	case fieldPrimary:
		return studio.PrimaryColor, true
	case fieldAuxiliary:
		return studio.AuxiliaryColor, true
	case fieldBackground:
		return studio.BackgroundColor, true
	}
	return 0, false
}

func (f editorField) level() (studio.LevelField, bool) {
	if f >= fieldContrast && f <= fieldRadius {
		return studio.LevelFields()[f-fieldContrast], true
	}
	return 0, false
}

// =============================================================================
// Key bindings
// =============================================================================

type editorKeys struct {
	Next, Prev       key.Binding
	Dec, Inc         key.Binding
	DecMore, IncMore key.Binding
	Swatch           key.Binding
	Apply            key.Binding
	Export, Copy     key.Binding
	Quit             key.Binding
}

func newEditorKeys() editorKeys {
	return editorKeys{
		Next:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "prev")),
		Dec:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "adjust")),
		Inc:     key.NewBinding(key.WithKeys("right")),
		DecMore: key.NewBinding(key.WithKeys("shift+left")),
		IncMore: key.NewBinding(key.WithKeys("shift+right")),
		Swatch:  key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "swatch")),
		Apply:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply preset")),
		Export:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "export")),
		Copy:    key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy svg")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k editorKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Dec, k.Swatch, k.Apply, k.Export, k.Copy, k.Quit}
}

func (k editorKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// =============================================================================
// EditorModel - Interactive icon editor
// =============================================================================

// EditorModel is the bubbletea model for the interactive editor. Every edit
// goes through the controller, which clamps values and re-renders.
type EditorModel struct {
	ctl    *studio.Controller
	inputs [numInputs]textinput.Model
	focus  editorField
	cursor int // preset list position

	palette    []string
	exportDir  string
	exportOpts []export.Option
	copy       func(string) error

	keys   editorKeys
	help   help.Model
	status string
	failed bool

	// Exported lists the files written during the session.
	Exported []string
}

// NewEditorModel creates an editor over ctl. Exports are written to dir.
func NewEditorModel(ctl *studio.Controller, dir string, opts ...export.Option) EditorModel {
	m := EditorModel{
		ctl:        ctl,
		palette:    swatchPalette(ctl),
		exportDir:  dir,
		exportOpts: opts,
		copy:       clipboard.WriteAll,
		keys:       newEditorKeys(),
		help:       help.New(),
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 64
		m.inputs[i] = ti
	}
	if p, ok := ctl.ActivePreset(); ok {
		m.cursor = max(0, slices.IndexFunc(ctl.Catalog().All(), func(q preset.Preset) bool { return q.ID == p.ID }))
	}
	m.syncInputs()
	m.inputs[fieldMainText].Focus()
	return m
}

// Controller returns the controller the editor drives.
func (m EditorModel) Controller() *studio.Controller { return m.ctl }

func (m EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.focus.textInput() {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1), nil
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1), nil
	case key.Matches(msg, m.keys.Export):
		m.exportIcon()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.copySVG()
		return m, nil
	}

	if m.focus.textInput() {
		if f, ok := m.focus.color(); ok && key.Matches(msg, m.keys.Swatch) {
			m.cycleSwatch(f, msg.String() == "pgdown")
			return m, nil
		}
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.commitInput()
		return m, cmd
	}

	step := 0
	switch {
	case key.Matches(msg, m.keys.Dec):
		step = -1
	case key.Matches(msg, m.keys.Inc):
		step = 1
	case key.Matches(msg, m.keys.DecMore):
		step = -5
	case key.Matches(msg, m.keys.IncMore):
		step = 5
	}

	switch {
	case m.focus == fieldLayout && step != 0:
		m.dispatch(studio.SetLayout{Layout: cycleLayout(m.ctl.Config().Layout, step)})
	case m.focus == fieldPreset && step != 0:
		n := m.ctl.Catalog().Len()
		if n > 0 {
			m.cursor = ((m.cursor+sign(step))%n + n) % n
		}
	case m.focus == fieldPreset && key.Matches(msg, m.keys.Apply):
		if all := m.ctl.Catalog().All(); m.cursor >= 0 && m.cursor < len(all) {
			m.dispatch(studio.ApplyPreset{ID: all[m.cursor].ID})
			m.setStatus(false, "Applied %s", all[m.cursor].Name)
		}
	default:
		if f, ok := m.focus.level(); ok && step != 0 {
			m.dispatch(studio.SetLevel{Field: f, Value: f.Value(m.ctl.Config()) + step})
		}
	}
	return m, nil
}

func (m EditorModel) moveFocus(delta int) EditorModel {
	if m.focus.textInput() {
		m.inputs[m.focus].Blur()
	}
	m.focus = editorField((int(m.focus) + delta + int(fieldCount)) % int(fieldCount))
	if m.focus.textInput() {
		m.inputs[m.focus].Focus()
	}
	return m
}

// commitInput forwards the focused input's text to the controller when it
// differs from the stored value.
func (m *EditorModel) commitInput() {
	v := m.inputs[m.focus].Value()
	cfg := m.ctl.Config()
	switch m.focus {
	case fieldMainText:
		if v != cfg.MainText {
			m.dispatch(studio.SetText{Field: studio.MainText, Value: v})
		}
	case fieldLogoText:
		if v != cfg.LogoText {
			m.dispatch(studio.SetText{Field: studio.LogoText, Value: v})
		}
	default:
		if f, ok := m.focus.color(); ok && v != studio.ColorValue(cfg, f) {
			m.dispatch(studio.SetColor{Field: f, Value: v, Source: studio.FromText})
		}
	}
}

func (m *EditorModel) cycleSwatch(f studio.ColorField, forward bool) {
	if len(m.palette) == 0 {
		return
	}
	cur := strings.ToLower(studio.ColorValue(m.ctl.Config(), f))
	i := slices.Index(m.palette, cur)
	switch {
	case i < 0:
		i = 0
	case forward:
		i = (i + 1) % len(m.palette)
	default:
		i = (i - 1 + len(m.palette)) % len(m.palette)
	}
	m.dispatch(studio.SetColor{Field: f, Value: m.palette[i], Source: studio.FromSwatch})
}

func (m *EditorModel) dispatch(a studio.Action) {
	m.ctl.Dispatch(a)
	m.syncInputs()
}

// syncInputs copies the controller's text and color values into inputs
// that show something else, such as after a preset changed the colors.
func (m *EditorModel) syncInputs() {
	cfg := m.ctl.Config()
	values := [numInputs]string{
		cfg.MainText,
		cfg.LogoText,
		cfg.PrimaryColor,
		cfg.AuxiliaryColor,
		cfg.BackgroundColor,
	}
	for i, v := range values {
		if m.inputs[i].Value() != v {
			m.inputs[i].SetValue(v)
			m.inputs[i].CursorEnd()
		}
	}
}

func (m *EditorModel) exportIcon() {
	path, err := export.FromController(m.ctl, m.exportOpts...).WriteTo(m.exportDir)
	if err != nil {
		m.setStatus(true, "Export failed: %v", err)
		return
	}
	m.Exported = append(m.Exported, path)
	m.setStatus(false, "Exported %s", path)
}

func (m *EditorModel) copySVG() {
	if err := m.copy(m.ctl.SVG()); err != nil {
		m.setStatus(true, "Copy failed: %v", err)
		return
	}
	m.setStatus(false, "Copied SVG to clipboard")
}

func (m *EditorModel) setStatus(failed bool, format string, args ...any) {
	m.failed = failed
	m.status = fmt.Sprintf(format, args...)
}

// =============================================================================
// View
// =============================================================================

func (m EditorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Brandmark Editor"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		editorPaneStyle.Render(m.formView()),
		" ",
		editorPaneStyle.Render(m.previewView()),
	))
	b.WriteString("\n")

	if m.status != "" {
		mark, style := iconSuccess, styleIconSuccess
		if m.failed {
			mark, style = iconError, styleIconError
		}
		b.WriteString(style.Render(mark) + " " + m.status + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m EditorModel) formView() string {
	cfg := m.ctl.Config()
	var b strings.Builder
	for f := editorField(0); f < fieldCount; f++ {
		label := editorLabelStyle
		cursor := "  "
		if f == m.focus {
			label = editorFocusStyle
			cursor = "▸ "
		}
		b.WriteString(cursor + label.Render(fieldLabels[f]))

		switch {
		case f.textInput():
			if c, ok := f.color(); ok {
				b.WriteString(swatch(studio.ColorValue(cfg, c)) + " ")
			}
			b.WriteString(m.inputs[f].View())
		case f == fieldLayout:
			b.WriteString(layoutChoices(cfg.Layout))
		case f == fieldPreset:
			b.WriteString(m.presetChoices())
		default:
			lf, _ := f.level()
			b.WriteString(slider(lf.Value(cfg), lf.Range()))
		}
		if f < fieldCount-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// previewView approximates the icon with terminal colors and lists the info
// shown next to the graphical preview.
func (m EditorModel) previewView() string {
	cfg := m.ctl.Config()

	tag := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color(terminalColorOr(cfg.BackgroundColor, "#000000"))).
		Background(lipgloss.Color(terminalColorOr(cfg.PrimaryColor, "#ff9000"))).
		Render(cfg.LogoText)
	main := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(terminalColorOr(cfg.AuxiliaryColor, "#ffffff"))).
		Render(cfg.MainText)

	border := lipgloss.NormalBorder()
	if cfg.BorderRadius > 0 {
		border = lipgloss.RoundedBorder()
	}
	card := lipgloss.NewStyle().
		Border(border).
		BorderForeground(colorDim).
		Background(lipgloss.Color(terminalColorOr(cfg.BackgroundColor, "#000000"))).
		Padding(1, 2).
		Render(main + "  " + tag)

	style := m.ctl.StyleName()
	if m.ctl.Modified() {
		style += StyleDim.Render(" (modified)")
	}
	svg := m.ctl.SVG()
	art := export.FromController(m.ctl, m.exportOpts...)

	var b strings.Builder
	b.WriteString(card + "\n\n")
	fmt.Fprintf(&b, "%s %s\n", StyleDim.Render("Style:"), style)
	fmt.Fprintf(&b, "%s %q + %q\n", StyleDim.Render("Text: "), cfg.MainText, cfg.LogoText)
	fmt.Fprintf(&b, "%s %s\n", StyleDim.Render("Layout:"), cfg.LayoutLabel())
	fmt.Fprintf(&b, "%s %s\n", StyleDim.Render("File: "), art.Filename)
	fmt.Fprintf(&b, "%s %s", StyleDim.Render("SVG:  "),
		StyleDim.Render(fmt.Sprintf("%d bytes · %s · v%d", len(svg), render.Digest(svg)[:12], m.ctl.State().Version)))
	return b.String()
}

func (m EditorModel) presetChoices() string {
	active, _ := m.ctl.ActivePreset()
	all := m.ctl.Catalog().All()
	parts := make([]string, 0, len(all))
	for i, p := range all {
		name := p.Name
		if p.ID == active.ID {
			name = iconActive + " " + name
		}
		if i == m.cursor && m.focus == fieldPreset {
			parts = append(parts, editorSelected.Render("["+name+"]"))
			continue
		}
		parts = append(parts, editorUnselected.Render(" "+name+" "))
	}
	return strings.Join(parts, " ")
}

func layoutChoices(current icon.Layout) string {
	parts := make([]string, 0, len(icon.Layouts()))
	for _, l := range icon.Layouts() {
		if l == current {
			parts = append(parts, editorSelected.Render("("+l.String()+")"))
			continue
		}
		parts = append(parts, editorUnselected.Render(" "+l.String()+" "))
	}
	return strings.Join(parts, " ")
}

// slider draws v within r as a fixed-width bar followed by the value.
func slider(v int, r icon.Range) string {
	filled := 0
	if span := r.Max - r.Min; span > 0 {
		filled = (v - r.Min) * sliderWidth / span
	}
	bar := editorSliderFilled.Render(strings.Repeat("━", filled)) +
		StyleDim.Render(strings.Repeat("─", sliderWidth-filled))
	return bar + " " + StyleNumber.Render(fmt.Sprintf("%d", v))
}

// =============================================================================
// Helpers
// =============================================================================

func cycleLayout(l icon.Layout, step int) icon.Layout {
	all := icon.Layouts()
	i := slices.Index(all, l)
	if i < 0 {
		return all[0]
	}
	n := len(all)
	return all[((i+sign(step))%n+n)%n]
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// swatchPalette lists the distinct catalog colors followed by a few
// neutrals, all in lowercase #rrggbb form.
func swatchPalette(ctl *studio.Controller) []string {
	var out []string
	add := func(v string) {
		if hex, ok := terminalColor(v); ok && !slices.Contains(out, hex) {
			out = append(out, hex)
		}
	}
	for _, p := range ctl.Catalog().All() {
		add(p.PrimaryColor)
		add(p.AuxiliaryColor)
		add(p.BackgroundColor)
	}
	for _, v := range []string{"#111827", "#6b7280", "#10b981", "#f59e0b", "#8b5cf6"} {
		add(v)
	}
	return out
}

func terminalColorOr(v, fallback string) string {
	if hex, ok := terminalColor(v); ok {
		return hex
	}
	return fallback
}

