package cmd

import (
	"encoding/csv"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/c9s/streamta/pkg/config"
	"github.com/c9s/streamta/pkg/style"
)

// rowWriter receives one row per bar.
type rowWriter interface {
	Append(row []string) error
	Flush() error
}

func newRowWriter(format config.OutputFormat, w io.Writer, header []string) (rowWriter, error) {
	switch format {
	case config.OutputCSV, config.OutputTSV:
		cw := csv.NewWriter(w)
		if format == config.OutputTSV {
			cw.Comma = '\t'
		}
		if err := cw.Write(header); err != nil {
			return nil, err
		}
		return &csvRowWriter{w: cw}, nil
	}

	return &tableRowWriter{t: style.NewTable(w, header)}, nil
}

type csvRowWriter struct {
	w *csv.Writer
}

func (c *csvRowWriter) Append(row []string) error {
	return c.w.Write(row)
}

func (c *csvRowWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}

// tableRowWriter buffers the rows, go-pretty renders the whole table at once.
type tableRowWriter struct {
	t table.Writer
}

func (o *tableRowWriter) Append(row []string) error {
	cells := style.Cells(row)
	r := make(table.Row, len(cells))
	for i, c := range cells {
		r[i] = c
	}
	o.t.AppendRow(r)
	return nil
}

func (o *tableRowWriter) Flush() error {
	o.t.Render()
	return nil
}
