package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestFormatFromName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"words.xlsx", FormatXLSX, false},
		{"WORDS.CSV", FormatCSV, false},
		{"notes.txt", "", true},
		{"noext", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := FormatFromName(tc.name)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadCSV(t *testing.T) {
	t.Parallel()

	input := "\ufeffFront,Back\n" +
		" Haus , chasa \n" +
		"\"Baum, alt\",planta veglia,ignored\n" +
		"Katze\n" +
		",\n"

	rows, err := Read(strings.NewReader(input), FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, []Row{
		{Front: "Haus", Back: "chasa"},
		{Front: "Baum, alt", Back: "planta veglia"},
		{Front: "Katze", Back: ""},
		{Front: "", Back: ""},
	}, rows)
	assert.False(t, rows[0].Blank())
	assert.True(t, rows[2].Blank())
}

func TestReadCSVWithoutHeader(t *testing.T) {
	t.Parallel()

	rows, err := ReadCSV(strings.NewReader("eins,in\nzwei,duos\n"))
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "eins", rows[0].Front)
}

func TestReadXLSX(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"front", "back"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Hund", "chaun"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{" Vogel ", "utschè"}))
	require.NoError(t, f.SetCellValue(sheet, "A4", "Fisch"))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	rows, err := Read(bytes.NewReader(buf.Bytes()), FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, []Row{
		{Front: "Hund", Back: "chaun"},
		{Front: "Vogel", Back: "utschè"},
		{Front: "Fisch", Back: ""},
	}, rows)
}

func TestReadXLSXRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := ReadXLSX(strings.NewReader("definitely not a zip archive"))
	assert.Error(t, err)
}

func TestReadUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := Read(strings.NewReader(""), Format("ods"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
