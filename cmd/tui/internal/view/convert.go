package view

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gst2tally/internal/convert"
	"github.com/MrJamesThe3rd/gst2tally/internal/export"
)

type convertState int

const (
	defaultPickerHeight = 15
	defaultFormWidth    = 60
	minPickerHeight     = 5
	minFormWidth        = 20

	// rows taken by the screen title, help line, padding and prompt
	pickerChrome = 6

	// columns used by padding
	formChrome = 4
)

const (
	convertStatePick convertState = iota
	convertStateForm
	convertStateConverting
	convertStateResult
)

// convertFields is shared with the form, which writes through its pointers.
type convertFields struct {
	company string
	outDir  string
}

type ConvertModel struct {
	CommonModel
	svc *convert.Service

	state      convertState
	filePicker filepicker.Model
	path       string
	fields     *convertFields
	form       *huh.Form
	spinner    spinner.Model

	summary Summary
	err     error
}

func NewConvertModel(svc *convert.Service, outDir string) ConvertModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".json"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(defaultPickerHeight)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ConvertModel{
		svc:        svc,
		filePicker: fp,
		fields:     &convertFields{outDir: outDir},
		spinner:    s,
	}
}

func (m ConvertModel) Title() string { return "Convert GSTR-2B" }

func (m ConvertModel) ShortHelp() string {
	switch m.state {
	case convertStateConverting:
		return "Converting..."
	case convertStateResult:
		return "Esc: convert another"
	}

	return "Esc: back | Enter: select"
}

func (m ConvertModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ConvertModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		return m.resize(size), nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m.handleEsc()
	}

	switch m.state {
	case convertStatePick:
		return m.updatePick(msg)
	case convertStateForm:
		return m.updateForm(msg)
	case convertStateConverting:
		return m.updateConverting(msg)
	}

	return m, nil
}

func (m ConvertModel) resize(size tea.WindowSizeMsg) ConvertModel {
	m.SetSize(size)
	m.filePicker.SetHeight(m.pickerHeight())

	if m.form != nil {
		m.form = m.form.WithWidth(m.formWidth())
	}

	return m
}

func (m ConvertModel) pickerHeight() int {
	if m.Height == 0 {
		return defaultPickerHeight
	}

	return max(m.Height-pickerChrome, minPickerHeight)
}

func (m ConvertModel) formWidth() int {
	if m.Width == 0 {
		return defaultFormWidth
	}

	return max(min(m.Width-formChrome, defaultFormWidth), minFormWidth)
}

func (m ConvertModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case convertStateForm:
		m.state = convertStatePick
		return m, nil
	case convertStateResult:
		m.state = convertStatePick
		m.err = nil
		m.summary = Summary{}

		return m, m.filePicker.Init()
	case convertStateConverting:
		return m, nil
	}

	return m, Back
}

func (m ConvertModel) updatePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.path = path
		m.form = m.buildForm()
		m.state = convertStateForm

		return m, m.form.Init()
	}

	return m, cmd
}

func (m ConvertModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = convertStateConverting
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.convertCmd(m.path, *m.fields))
}

func (m ConvertModel) updateConverting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(convertResultMsg); ok {
		m.state = convertStateResult
		m.err = result.err
		m.summary = result.summary

		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m ConvertModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("company").
				Title("Tally Company Name").
				Description("Leave empty to use the default company").
				Value(&m.fields.company),
			huh.NewInput().
				Key("out").
				Title("Output Directory").
				Description("Directory will be created if it doesn't exist").
				Placeholder(".").
				Value(&m.fields.outDir),
		),
	).WithWidth(m.formWidth()).WithShowHelp(false)
}

func (m ConvertModel) View() string {
	switch m.state {
	case convertStatePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select GSTR-2B JSON file:\n\n%s", m.filePicker.View()),
		)
	case convertStateForm:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	case convertStateConverting:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Converting %s...", m.spinner.View(), m.path),
		)
	case convertStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ConvertModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(1)

	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)) +
				"\n\n(Esc to go back)",
		)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render("Conversion Complete!")

	return style.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			m.summary.String(),
			"",
			"(Esc to convert another)",
		),
	)
}

// PickerHeight is the number of file rows the picker shows.
func (m ConvertModel) PickerHeight() int {
	return m.filePicker.Height
}

// Summary describes a finished conversion.
type Summary struct {
	Company  string
	Invoices int
	Ledgers  int
	Vouchers int
	Total    decimal.Decimal
	Files    []string
	Warnings []string
}

func Summarize(res *convert.Result, w *export.DirWriter) Summary {
	s := Summary{
		Company:  res.Company,
		Invoices: len(res.Invoices),
		Ledgers:  res.Ledgers.Len(),
		Vouchers: len(res.Vouchers),
		Total:    decimal.Zero,
	}

	for _, inv := range res.Invoices {
		s.Total = s.Total.Add(inv.TotalValue)
	}

	for _, name := range []string{convert.FileInvoices, convert.FileMasters, convert.FileVouchers, convert.FileSheet} {
		s.Files = append(s.Files, w.Path(name))
	}

	for _, name := range res.Unplanned {
		s.Warnings = append(s.Warnings, fmt.Sprintf("ledger %q is used by vouchers but missing from masters", name))
	}

	return s
}

func (s Summary) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Company:  %s\n", s.Company)
	fmt.Fprintf(&sb, "Invoices: %d (total %s)\n", s.Invoices, FormatAmount(s.Total))
	fmt.Fprintf(&sb, "Ledgers:  %d\n", s.Ledgers)
	fmt.Fprintf(&sb, "Vouchers: %d\n", s.Vouchers)

	sb.WriteString("\nFiles:\n")

	for _, f := range s.Files {
		fmt.Fprintf(&sb, "  %s\n", f)
	}

	if len(s.Warnings) > 0 {
		warn := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

		sb.WriteString("\nWarnings:\n")

		for _, w := range s.Warnings {
			sb.WriteString("  " + warn.Render(w) + "\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

type convertResultMsg struct {
	summary Summary
	err     error
}

func (m ConvertModel) convertCmd(path string, fields convertFields) tea.Cmd {
	svc := m.svc

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return convertResultMsg{err: err}
		}
		defer f.Close()

		res, err := svc.Convert(f, fields.company)
		if err != nil {
			return convertResultMsg{err: err}
		}

		outDir := fields.outDir
		if outDir == "" {
			outDir = "."
		}

		w, err := export.NewDirWriter(outDir)
		if err != nil {
			return convertResultMsg{err: err}
		}

		if err := svc.Save(res, w); err != nil {
			return convertResultMsg{err: err}
		}

		return convertResultMsg{summary: Summarize(res, w)}
	}
}
