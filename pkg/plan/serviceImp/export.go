package serviceImp

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/yuin/goldmark"

	"vyaas/entities"
	"vyaas/pkg/plan/service"
)

const exportBase = "vyaas-farming-plan"

// Render writes saved plans in the requested format.
func Render(ps []entities.SavedPlan, f service.Format) (service.Export, error) {
	switch f {
	case service.FormatText:
		return service.Export{
			Filename:    exportBase + ".txt",
			ContentType: "text/plain; charset=utf-8",
			Body:        []byte(Text(ps)),
		}, nil
	case service.FormatMarkdown:
		return service.Export{
			Filename:    exportBase + ".md",
			ContentType: "text/markdown; charset=utf-8",
			Body:        []byte(Markdown(ps)),
		}, nil
	case service.FormatHTML:
		var buf bytes.Buffer
		buf.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>Vyaas Farming Plan</title></head><body>\n")
		if err := goldmark.Convert([]byte(Markdown(ps)), &buf); err != nil {
			return service.Export{}, fmt.Errorf("render html: %w", err)
		}
		buf.WriteString("</body></html>\n")
		return service.Export{
			Filename:    exportBase + ".html",
			ContentType: "text/html; charset=utf-8",
			Body:        buf.Bytes(),
		}, nil
	case service.FormatXLSX:
		b, err := workbook(ps)
		if err != nil {
			return service.Export{}, err
		}
		return service.Export{
			Filename:    exportBase + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Body:        b,
		}, nil
	}
	return service.Export{}, service.ErrUnknownFormat
}

// Text is one block per crop:
//
//	Mustard Cultivation Plan:
//	1. Soil Preparation (Week 1-2): ...
func Text(ps []entities.SavedPlan) string {
	blocks := make([]string, 0, len(ps))
	for _, p := range ps {
		var b strings.Builder
		fmt.Fprintf(&b, "%s Cultivation Plan:", p.CropName)
		for _, st := range p.Steps {
			fmt.Fprintf(&b, "\n%d. %s (%s): %s", st.Step, st.Title, st.Timeline, st.Description)
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

func Markdown(ps []entities.SavedPlan) string {
	var b strings.Builder
	b.WriteString("# Vyaas Farming Plan\n")
	for _, p := range ps {
		fmt.Fprintf(&b, "\n## %s Cultivation Plan\n\n", p.CropName)
		for _, st := range p.Steps {
			fmt.Fprintf(&b, "%d. **%s** (%s): %s\n", st.Step, st.Title, st.Timeline, st.Description)
		}
	}
	return b.String()
}

func workbook(ps []entities.SavedPlan) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Plans"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	header := []any{"Crop", "Step", "Title", "Timeline", "Description"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	row := 2
	for _, p := range ps {
		for _, st := range p.Steps {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			vals := []any{p.CropName, st.Step, st.Title, st.Timeline, st.Description}
			if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
				return nil, err
			}
			row++
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
