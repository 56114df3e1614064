package export

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

var ErrNoData = errors.New("no data to export")

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	bandSize     = 5 // data rows per alternating fill band
	headerRowNum = 5
)

// Meta describes the document around the table.
type Meta struct {
	Label    string // filename stem, e.g. "dat-san"
	Title    string
	Subtitle string
	Now      time.Time
	Location *time.Location
	Money    Money
}

func (m Meta) now() time.Time {
	now := m.Now
	if now.IsZero() {
		now = time.Now()
	}
	if m.Location != nil {
		now = now.In(m.Location)
	}
	return now
}

// Workbook is a fully serialized xlsx document.
type Workbook struct {
	ID       uuid.UUID
	Filename string
	data     []byte
}

func (w *Workbook) Bytes() []byte { return w.data }

// Filename builds "<label>_<dd-MM-yyyy>.xlsx".
func Filename(label string, now time.Time) string {
	if label == "" {
		label = "export"
	}
	return fmt.Sprintf("%s_%s.xlsx", label, now.Format("02-01-2006"))
}

type column struct {
	header string
	width  float64
}

type sheet struct {
	name    string
	title   string
	columns []column
	rows    [][]any
	footer  []any // nil means no footer row
}

type styles struct {
	title, subtitle, header, cell, band, footer, empty int
}

func newStyles(f *excelize.File) (styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "#9E9E9E", Style: 1},
		{Type: "top", Color: "#9E9E9E", Style: 1},
		{Type: "right", Color: "#9E9E9E", Style: 1},
		{Type: "bottom", Color: "#9E9E9E", Style: 1},
	}
	defs := []*excelize.Style{
		{
			Font:      &excelize.Font{Bold: true, Size: 16, Color: "#1F4E78"},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		},
		{
			Font:      &excelize.Font{Italic: true, Size: 11, Color: "#595959"},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		},
		{
			Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#2E75B6"}},
			Border:    border,
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		},
		{
			Border:    border,
			Alignment: &excelize.Alignment{Vertical: "center"},
		},
		{
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
			Border:    border,
			Alignment: &excelize.Alignment{Vertical: "center"},
		},
		{
			Font:   &excelize.Font{Bold: true},
			Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#FFF2CC"}},
			Border: border,
		},
		{
			Font:      &excelize.Font{Italic: true, Color: "#7F7F7F"},
			Border:    border,
			Alignment: &excelize.Alignment{Horizontal: "center"},
		},
	}

	ids := make([]int, len(defs))
	for i, d := range defs {
		id, err := f.NewStyle(d)
		if err != nil {
			return styles{}, fmt.Errorf("create style %d: %w", i, err)
		}
		ids[i] = id
	}
	return styles{
		title: ids[0], subtitle: ids[1], header: ids[2], cell: ids[3],
		band: ids[4], footer: ids[5], empty: ids[6],
	}, nil
}

// build assembles every sheet in memory and serializes the file. Nothing is
// returned unless serialization succeeded.
func build(meta Meta, sheets []sheet) (wb *Workbook, err error) {
	defer func() {
		if r := recover(); r != nil {
			wb = nil
			err = fmt.Errorf("export: workbook assembly panicked: %v", r)
		}
	}()

	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	now := meta.now()
	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.name); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", s.name, err)
		}
		if err := writeSheet(f, st, meta, now, s); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", s.name, err)
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}

	return &Workbook{
		ID:       uuid.New(),
		Filename: Filename(meta.Label, now),
		data:     buf.Bytes(),
	}, nil
}

func writeSheet(f *excelize.File, st styles, meta Meta, now time.Time, s sheet) error {
	name := s.name
	lastCol, err := excelize.ColumnNumberToName(len(s.columns))
	if err != nil {
		return err
	}

	// Title block: three merged rows and a blank spacer.
	title := s.title
	if title == "" {
		title = meta.Title
	}
	block := []struct {
		text  string
		style int
	}{
		{title, st.title},
		{meta.Subtitle, st.subtitle},
		{"Ngày xuất: " + now.Format("02/01/2006 15:04"), st.subtitle},
	}
	for i, b := range block {
		row := i + 1
		first, last := fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row)
		if err := f.MergeCell(name, first, last); err != nil {
			return err
		}
		if err := f.SetCellValue(name, first, b.text); err != nil {
			return err
		}
		if err := f.SetCellStyle(name, first, last, b.style); err != nil {
			return err
		}
	}
	if err := f.SetRowHeight(name, 1, 28); err != nil {
		return err
	}

	headers := make([]any, len(s.columns))
	for i, c := range s.columns {
		headers[i] = c.header
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(name, col, col, c.width); err != nil {
			return err
		}
	}
	if err := writeRow(f, name, headerRowNum, lastCol, headers, st.header); err != nil {
		return err
	}

	row := headerRowNum + 1
	if len(s.rows) == 0 {
		first, last := fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row)
		if err := f.MergeCell(name, first, last); err != nil {
			return err
		}
		if err := f.SetCellValue(name, first, "Không có dữ liệu"); err != nil {
			return err
		}
		if err := f.SetCellStyle(name, first, last, st.empty); err != nil {
			return err
		}
		row++
	}
	for i, values := range s.rows {
		style := st.cell
		if (i/bandSize)%2 == 1 {
			style = st.band
		}
		if err := writeRow(f, name, row, lastCol, values, style); err != nil {
			return err
		}
		row++
	}

	if s.footer != nil {
		if err := writeRow(f, name, row, lastCol, s.footer, st.footer); err != nil {
			return err
		}
	}

	return f.SetPanes(name, &excelize.Panes{
		Freeze:      true,
		YSplit:      headerRowNum,
		TopLeftCell: fmt.Sprintf("A%d", headerRowNum+1),
		ActivePane:  "bottomLeft",
	})
}

func writeRow(f *excelize.File, sheet string, row int, lastCol string, values []any, style int) error {
	first := fmt.Sprintf("A%d", row)
	if err := f.SetSheetRow(sheet, first, &values); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, first, fmt.Sprintf("%s%d", lastCol, row), style)
}
