package view_test

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/gst2tally/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/gst2tally/internal/convert"
	"github.com/MrJamesThe3rd/gst2tally/internal/export"
)

const filing = `{"data": {"rtnprd": "092024", "docdata": {"b2b": [{"trdnm": "Acme", "inv": [
  {"inum": "A-1", "dt": "05-09-2024", "val": 1180, "txval": 1000, "igst": 180},
  {"inum": "A-2", "dt": "06-09-2024", "val": 1120, "txval": 1000, "igst": 60, "cgst": 30, "sgst": 30}
]}]}}}`

func TestSummarize(t *testing.T) {
	svc := convert.NewService("Default Company")

	res, err := svc.Convert(strings.NewReader(filing), "")
	require.NoError(t, err)

	dir := t.TempDir()
	w, err := export.NewDirWriter(dir)
	require.NoError(t, err)

	s := view.Summarize(res, w)
	assert.Equal(t, "Default Company", s.Company)
	assert.Equal(t, 2, s.Invoices)
	assert.Equal(t, 2, s.Vouchers)
	assert.Equal(t, res.Ledgers.Len(), s.Ledgers)
	assert.Equal(t, "2300", s.Total.String())
	assert.Equal(t, filepath.Join(dir, convert.FileMasters), s.Files[1])
	require.Len(t, s.Warnings, 2)

	out := s.String()
	assert.Contains(t, out, "Invoices: 2 (total 2,300.00)")
	assert.Contains(t, out, filepath.Join(dir, convert.FileVouchers))
	assert.Contains(t, out, "Warnings:")
}

func TestConvertModel_EscFromPickerGoesBack(t *testing.T) {
	m := view.NewConvertModel(convert.NewService("Default Company"), ".")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, view.BackMsg{}, cmd())
}

func TestConvertModel_WindowSize(t *testing.T) {
	type testCase struct {
		name       string
		size       tea.WindowSizeMsg
		wantHeight int
	}

	tests := []testCase{
		{name: "Tall", size: tea.WindowSizeMsg{Width: 120, Height: 40}, wantHeight: 34},
		{name: "Short", size: tea.WindowSizeMsg{Width: 30, Height: 8}, wantHeight: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := view.NewConvertModel(convert.NewService("Default Company"), ".")
			assert.Equal(t, 15, m.PickerHeight())

			updated, cmd := m.Update(tt.size)
			assert.Nil(t, cmd)

			got := updated.(view.ConvertModel)
			assert.Equal(t, tt.size.Width, got.Width)
			assert.Equal(t, tt.size.Height, got.Height)
			assert.Equal(t, tt.wantHeight, got.PickerHeight())
		})
	}
}
