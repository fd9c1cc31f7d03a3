package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"vyaas/entities"
)

const (
	cropsSheet = "Crops"
	rulesSheet = "Rules"
)

var defaultSoils = []string{"Loam", "Clay"}

// loadXLSX reads a workbook with a "Crops" sheet (header row first) and an
// optional "Rules" sheet whose first column lists recognized soils.
// List cells are separated by ';'.
func loadXLSX(path string) (*Catalog, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	rows, err := x.GetRows(cropsSheet)
	if err != nil {
		return nil, fmt.Errorf("read %s sheet: %w", cropsSheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s sheet is empty", cropsSheet)
	}

	norm := func(s string) string {
		s = strings.TrimSpace(strings.TrimPrefix(s, "\uFEFF"))
		s = strings.ToLower(s)
		return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
	}
	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[norm(h)] = i
	}
	col := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}
	cID, cName, cImg := col("id"), col("name"), col("image")
	cYLo, cYHi := col("yield_lo"), col("yield_hi")
	cPLo, cPHi := col("profit_lo"), col("profit_hi")
	cDLo, cDHi := col("days_lo", "growth_lo"), col("days_hi", "growth_hi")
	cSoils, cReasons := col("soils", "suitable_for"), col("reasons")
	if cID == -1 || cName == -1 || cYLo == -1 || cYHi == -1 || cPLo == -1 || cPHi == -1 || cDLo == -1 || cDHi == -1 {
		return nil, fmt.Errorf("%s sheet missing required columns, found %v", cropsSheet, rows[0])
	}

	c := &Catalog{}
	for n, rec := range rows[1:] {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		if get(cID) == "" {
			continue
		}
		num := func(idx int) (int, error) {
			v, err := strconv.Atoi(get(idx))
			if err != nil {
				return 0, fmt.Errorf("row %d: column %d: %w", n+2, idx+1, err)
			}
			return v, nil
		}
		var vals [6]int
		for i, idx := range []int{cYLo, cYHi, cPLo, cPHi, cDLo, cDHi} {
			v, err := num(idx)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		c.Crops = append(c.Crops, entities.CropCatalogEntry{
			ID:             get(cID),
			Name:           get(cName),
			Image:          get(cImg),
			Yield:          entities.Range{Lo: vals[0], Hi: vals[1]},
			Profit:         entities.Range{Lo: vals[2], Hi: vals[3]},
			GrowthDuration: entities.Range{Lo: vals[4], Hi: vals[5]},
			SuitableFor:    splitList(get(cSoils)),
			Reasons:        splitList(get(cReasons)),
		})
	}

	if rules, err := x.GetRows(rulesSheet); err == nil {
		for _, r := range rules {
			if len(r) > 0 && strings.TrimSpace(r[0]) != "" && !strings.EqualFold(strings.TrimSpace(r[0]), "soil") {
				c.RecognizedSoils = append(c.RecognizedSoils, strings.TrimSpace(r[0]))
			}
		}
	}
	if len(c.RecognizedSoils) == 0 {
		c.RecognizedSoils = append([]string(nil), defaultSoils...)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// WriteXLSX writes the catalog in the layout loadXLSX reads.
func WriteXLSX(c *Catalog, path string) error {
	x := excelize.NewFile()
	defer x.Close()
	if err := x.SetSheetName("Sheet1", cropsSheet); err != nil {
		return err
	}
	header := []any{"id", "name", "image", "yield_lo", "yield_hi", "profit_lo", "profit_hi", "days_lo", "days_hi", "soils", "reasons"}
	if err := x.SetSheetRow(cropsSheet, "A1", &header); err != nil {
		return err
	}
	for i, e := range c.Crops {
		row := []any{e.ID, e.Name, e.Image, e.Yield.Lo, e.Yield.Hi, e.Profit.Lo, e.Profit.Hi,
			e.GrowthDuration.Lo, e.GrowthDuration.Hi, strings.Join(e.SuitableFor, ";"), strings.Join(e.Reasons, ";")}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := x.SetSheetRow(cropsSheet, cell, &row); err != nil {
			return err
		}
	}
	if _, err := x.NewSheet(rulesSheet); err != nil {
		return err
	}
	if err := x.SetCellValue(rulesSheet, "A1", "soil"); err != nil {
		return err
	}
	for i, s := range c.RecognizedSoils {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := x.SetCellValue(rulesSheet, cell, s); err != nil {
			return err
		}
	}
	return x.SaveAs(path)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ";") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
