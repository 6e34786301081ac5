// Package xlsx renders spreadsheet sheets as markdown tables.
package xlsx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/bububa/textchunk/components/document"
)

// Parser renders each sheet as a markdown heading followed by a pipe table,
// so markdown-aware splitting keeps sheets together.
type Parser struct {
	password string
}

var _ document.Parser = (*Parser)(nil)

type Option func(*Parser)

func WithPassword(password string) Option {
	return func(p *Parser) {
		p.password = password
	}
}

func NewParser(opts ...Option) *Parser {
	ret := new(Parser)
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (p *Parser) Parse(ctx context.Context, reader *bytes.Reader, writer io.Writer) error {
	openOpts := make([]excelize.Options, 0, 1)
	if p.password != "" {
		openOpts = append(openOpts, excelize.Options{Password: p.password})
	}
	doc, err := excelize.OpenReader(reader, openOpts...)
	if err != nil {
		return err
	}
	defer doc.Close()
	for sheetIdx, sheet := range doc.GetSheetList() {
		rows, err := doc.Rows(sheet)
		if err != nil {
			return err
		}
		if sheetIdx > 0 {
			if _, err := writer.Write([]byte{'\n'}); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(writer, "# %s\n\n", sheet); err != nil {
			return err
		}
		for rowIdx := 0; rows.Next(); rowIdx++ {
			row, err := rows.Columns()
			if err != nil {
				return err
			}
			cells := make([]string, len(row))
			for colIdx, cell := range row {
				cells[colIdx] = strings.TrimSpace(strings.ReplaceAll(cell, "|", "\\|"))
			}
			if _, err := fmt.Fprintf(writer, "| %s |\n", strings.Join(cells, " | ")); err != nil {
				return err
			}
			if rowIdx == 0 {
				seps := make([]string, len(row))
				for colIdx := range seps {
					seps[colIdx] = "---"
				}
				if _, err := fmt.Fprintf(writer, "| %s |\n", strings.Join(seps, " | ")); err != nil {
					return err
				}
			}
		}
		if err := rows.Close(); err != nil {
			return err
		}
	}
	return nil
}
