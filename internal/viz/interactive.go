package viz

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"go.uber.org/zap"

	"github.com/san-kum/molcalc/internal/calc"
	"github.com/san-kum/molcalc/internal/config"
	"github.com/san-kum/molcalc/internal/export"
)

const (
	canvasCols = 40
	canvasRows = 22
	frameRate  = 15
	curvePts   = 30
)

type field int

const (
	fieldConcentration field = iota
	fieldConcentrationUnit
	fieldMolarMass
	fieldVolume
	fieldVolumeUnit
	fieldCount
)

var fieldNames = [fieldCount]string{"concentration", "conc. unit", "molar mass", "volume", "volume unit"}

// minimum values the input form allows
var fieldMin = [fieldCount]float64{0, 0, 0.1, 0, 0}

var fieldStep = [fieldCount]float64{0.1, 0, 1, 10, 0}

type TickMsg time.Time

type Model struct {
	eval     *calc.Evaluator
	logger   *zap.Logger
	input    calc.Input
	result   *calc.Result
	cursor   field
	editing  bool
	editBuf  string
	presets  []string
	preset   int
	themeIdx int
	pal      palette
	canvas   *Canvas
	started  time.Time
	now      time.Time
	status   string
	outDir   string
}

// NewModel builds the calculator from cfg and runs the first evaluation.
func NewModel(cfg *config.Config, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	idx := themeIndex(cfg.Theme)
	now := time.Now()
	m := Model{
		eval:     calc.NewSeeded(logger, seed),
		logger:   logger.Named("tui"),
		input:    cfg.Input,
		presets:  config.ListPresets(),
		preset:   -1,
		themeIdx: idx,
		pal:      newPalette(Themes[idx]),
		canvas:   NewCanvas(canvasCols, canvasRows),
		started:  now,
		now:      now,
		outDir:   ".",
	}
	m.recompute()
	return m
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.editKey(msg), nil
		}
		return m.navKey(msg)
	case TickMsg:
		m.now = time.Time(msg)
		return m, tick()
	}
	return m, nil
}

func (m Model) navKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < fieldCount-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "H":
		m.adjust(-10)
	case "L":
		m.adjust(10)
	case "enter", " ":
		if m.isUnit(m.cursor) {
			m.adjust(1)
			break
		}
		m.editing, m.editBuf = true, strconv.FormatFloat(m.value(m.cursor), 'f', -1, 64)
	case "p":
		m.nextPreset()
	case "t":
		m.themeIdx = (m.themeIdx + 1) % len(Themes)
		m.pal = newPalette(Themes[m.themeIdx])
		m.status = "theme: " + Themes[m.themeIdx].Name
	case "w":
		m.writeSVG()
	}
	return m, nil
}

func (m Model) editKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "enter":
		v, err := strconv.ParseFloat(m.editBuf, 64)
		if err != nil {
			m.status = "not a number: " + m.editBuf
			break
		}
		m.set(m.cursor, v)
	case "esc":
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
		return m
	default:
		if s := msg.String(); len(s) == 1 && (s[0] >= '0' && s[0] <= '9' || s[0] == '.' || s[0] == 'e') {
			m.editBuf += s
		}
		return m
	}
	m.editing, m.editBuf = false, ""
	return m
}

func (m *Model) isUnit(f field) bool {
	return f == fieldConcentrationUnit || f == fieldVolumeUnit
}

func (m *Model) value(f field) float64 {
	switch f {
	case fieldConcentration:
		return m.input.Concentration
	case fieldMolarMass:
		return m.input.MolarMass
	case fieldVolume:
		return m.input.Volume
	}
	return 0
}

// set applies v to a numeric field if the resulting input is valid.
func (m *Model) set(f field, v float64) {
	next := m.input
	switch f {
	case fieldConcentration:
		next.Concentration = v
	case fieldMolarMass:
		next.MolarMass = v
	case fieldVolume:
		next.Volume = v
	default:
		return
	}
	if v < fieldMin[f] {
		m.status = fmt.Sprintf("%s must be at least %g", fieldNames[f], fieldMin[f])
		return
	}
	if err := calc.Validate(next); err != nil {
		m.status = err.Error()
		return
	}
	m.input = next
	m.preset = -1
	m.recompute()
}

func (m *Model) adjust(steps int) {
	switch m.cursor {
	case fieldConcentrationUnit:
		m.input.ConcentrationUnit = m.input.ConcentrationUnit.Next()
	case fieldVolumeUnit:
		m.input.VolumeUnit = m.input.VolumeUnit.Next()
	default:
		v := m.value(m.cursor) + float64(steps)*fieldStep[m.cursor]
		v = math.Max(fieldMin[m.cursor], math.Round(v*1000)/1000)
		m.set(m.cursor, v)
		return
	}
	m.preset = -1
	m.recompute()
}

func (m *Model) nextPreset() {
	if len(m.presets) == 0 {
		return
	}
	m.preset = (m.preset + 1) % len(m.presets)
	p := config.GetPreset(m.presets[m.preset])
	if p == nil {
		return
	}
	m.input = p.Input
	m.status = "preset: " + p.Name + " (" + p.Description + ")"
	m.recompute()
}

func (m *Model) recompute() {
	res, err := m.eval.Evaluate(m.input)
	if err != nil {
		m.status = err.Error()
		m.logger.Error("evaluation failed", zap.Error(err))
		return
	}
	m.result = res
}

func (m *Model) writeSVG() {
	if m.result == nil {
		return
	}
	out, err := export.SceneToSVG(m.result.Scene, export.Options{Standalone: true, Indent: 2})
	if err != nil {
		m.status = err.Error()
		return
	}
	path := filepath.Join(m.outDir, "molcalc-"+m.result.ID.String()[:8]+".svg")
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		m.status = err.Error()
		m.logger.Error("write svg", zap.String("path", path), zap.Error(err))
		return
	}
	m.status = "wrote " + path
	m.logger.Info("wrote svg", zap.String("path", path))
}

func (m Model) View() string {
	if m.result == nil {
		return m.status
	}
	m.canvas.Clear()
	DrawScene(m.canvas, m.result.Scene, m.now.Sub(m.started))
	beaker := m.pal.beaker.Render(m.canvas.String())

	p := m.pal
	var s strings.Builder
	s.WriteString(p.title.Render("MOLCALC") + "\n")
	s.WriteString(p.subtle.Render("molarity → mass") + "\n")
	s.WriteString(p.separator(34) + "\n\n")

	for f := field(0); f < fieldCount; f++ {
		val := m.fieldString(f)
		if m.editing && f == m.cursor {
			val = m.editBuf + "_"
		}
		if f == m.cursor {
			s.WriteString(p.selected.Render("▸ "+fmt.Sprintf("%-14s", fieldNames[f])) + p.selected.Render(val) + "\n")
		} else {
			s.WriteString("  " + p.label.Render(fieldNames[f]) + p.value.Render(val) + "\n")
		}
	}

	res := m.result
	s.WriteString("\n" + p.label.Render("required") + p.mass.Render(res.Breakdown.Label) + "\n")
	s.WriteString(p.label.Render("moles") + p.value.Render(fmt.Sprintf("%.6g mol", res.Moles)) + "\n")
	s.WriteString(p.label.Render("grams") + p.value.Render(fmt.Sprintf("%.6g g", res.Grams)) + "\n")

	if curve := m.curve(); curve != "" {
		s.WriteString("\n" + p.subtle.Render(curve) + "\n")
	}
	if m.status != "" {
		s.WriteString("\n" + p.warning.Render(m.status) + "\n")
	}
	s.WriteString("\n" + p.keyHints("j/k", "select", "h/l", "adjust", "enter", "edit") + "\n")
	s.WriteString(p.keyHints("p", "preset", "t", "theme", "w", "svg", "q", "quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, beaker, p.panel.Render(s.String()))
}

func (m Model) fieldString(f field) string {
	switch f {
	case fieldConcentration:
		return strconv.FormatFloat(m.input.Concentration, 'f', -1, 64)
	case fieldConcentrationUnit:
		return m.input.ConcentrationUnit.String()
	case fieldMolarMass:
		return strconv.FormatFloat(m.input.MolarMass, 'f', -1, 64) + " g/mol"
	case fieldVolume:
		return strconv.FormatFloat(m.input.Volume, 'f', -1, 64)
	case fieldVolumeUnit:
		return m.input.VolumeUnit.String()
	}
	return ""
}

// curve plots required grams from zero to twice the current volume.
func (m Model) curve() string {
	if m.input.Volume <= 0 {
		return ""
	}
	data := calc.Sweep(m.input, 0, 2*m.input.Volume, curvePts)
	if data[len(data)-1] == 0 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(5),
		asciigraph.Width(curvePts),
		asciigraph.Caption(fmt.Sprintf("grams, 0 to %g %s", 2*m.input.Volume, m.input.VolumeUnit)),
	)
}

// RunInteractive starts the full-screen calculator.
func RunInteractive(cfg *config.Config, logger *zap.Logger) error {
	_, err := tea.NewProgram(NewModel(cfg, logger), tea.WithAltScreen()).Run()
	return err
}
