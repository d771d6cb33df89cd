package cafe

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"
)

const DefaultSheet = "Sheet1"

// coffee_price is the only optional column.
var requiredColumns = []string{
	"name", "map_url", "img_url", "location", "seats",
	"has_toilet", "has_wifi", "has_sockets", "can_take_calls",
}

// ReadWorkbook parses cafes from an .xlsx sheet. The first row is a header
// naming the columns (any order, case-insensitive); coffee_price is optional.
// Rows without a name are skipped.
func ReadWorkbook(r io.Reader, sheet string) ([]Cafe, error) {
	if sheet == "" {
		sheet = DefaultSheet
	}

	xl, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer xl.Close()

	rows, err := xl.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %s must have a header and at least one row", sheet)
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("sheet %s: missing column %q", sheet, col)
		}
	}

	cell := func(row []string, col string) (string, bool) {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return "", false
		}
		return row[i], true
	}
	value := func(row []string, col string) string {
		v, _ := cell(row, col)
		return v
	}

	var cafes []Cafe
	for n, row := range rows[1:] {
		name := strings.TrimSpace(value(row, "name"))
		if name == "" {
			log.Printf("cafe import: sheet=%s row=%d skipped: empty name", sheet, n+2)
			continue
		}

		cafe := Cafe{
			Name:         name,
			MapURL:       value(row, "map_url"),
			ImgURL:       value(row, "img_url"),
			Location:     value(row, "location"),
			Seats:        value(row, "seats"),
			HasToilet:    value(row, "has_toilet"),
			HasWifi:      value(row, "has_wifi"),
			HasSockets:   value(row, "has_sockets"),
			CanTakeCalls: value(row, "can_take_calls"),
		}
		if price, ok := cell(row, "coffee_price"); ok && price != "" {
			cafe.CoffeePrice = &price
		}
		cafes = append(cafes, cafe)
	}

	return cafes, nil
}
