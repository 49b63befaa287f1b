package manifest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/xyproto/unzip"
)

// Load reads a manifest into items. The format is chosen by extension:
//   - .csv           plain CSV
//   - .csv.xz / .xz  XZ-compressed CSV (liquidators often ship these)
//   - .zip           archive containing a single CSV
func Load(path string) ([]Item, error) {
	switch {
	case strings.HasSuffix(path, ".xz"):
		return loadXZ(path)
	case strings.HasSuffix(path, ".zip"):
		return loadZip(path)
	default:
		return loadCSV(path)
	}
}

func loadCSV(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %q: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f)
}

func loadXZ(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %q: %w", path, err)
	}
	defer f.Close()

	xr, err := xz.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("manifest: xz %q: %w", path, err)
	}
	return ReadCSV(xr)
}

// loadZip extracts the archive to a temp dir and loads the first CSV found.
func loadZip(path string) ([]Item, error) {
	dir, err := os.MkdirTemp("", "lotbid-manifest-")
	if err != nil {
		return nil, fmt.Errorf("manifest: temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	if err := unzip.Extract(path, dir); err != nil {
		return nil, fmt.Errorf("manifest: unzip %q: %w", path, err)
	}

	var csvPath string
	err = filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if csvPath == "" && !d.IsDir() && strings.HasSuffix(strings.ToLower(p), ".csv") {
			csvPath = p
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("manifest: scan archive %q: %w", path, err)
	}
	if csvPath == "" {
		return nil, fmt.Errorf("manifest: archive %q contains no CSV", path)
	}
	return loadCSV(csvPath)
}

// ReadCSV parses manifest rows from r. The first row must be a header;
// column order is free and unknown columns are ignored. Recognized headers
// (case-insensitive): id/sku/item_id, price_mu/price, price_sigma/sigma,
// sell_probability/sell_prob, daily_hazard/hazard, quantity/qty,
// minutes_per_unit/minutes.
func ReadCSV(r io.Reader) ([]Item, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("manifest: read header: %w", err)
	}

	cols := mapHeader(header)
	if _, ok := cols["price_mu"]; !ok {
		return nil, fmt.Errorf("manifest: header has no price_mu column: %v", header)
	}

	var items []Item
	row := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("manifest: row %d: %w", row+1, err)
		}
		row++
		if len(rec) == 0 {
			continue
		}

		it, err := parseRow(rec, cols, row)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return Normalize(items), nil
}

func parseRow(rec []string, cols map[string]int, row int) (Item, error) {
	field := func(name string) (string, bool) {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return "", false
		}
		s := strings.TrimSpace(rec[i])
		return s, s != ""
	}

	it := NewItem("", 0)
	if s, ok := field("id"); ok {
		it.ID = s
	} else {
		it.ID = fmt.Sprintf("row-%d", row)
	}

	s, ok := field("price_mu")
	if !ok {
		return Item{}, fmt.Errorf("manifest: row %d: empty price_mu", row)
	}
	mu, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Item{}, fmt.Errorf("manifest: row %d: bad price_mu %q: %w", row, s, err)
	}
	it.PriceMu = mu

	if s, ok := field("price_sigma"); ok {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Item{}, fmt.Errorf("manifest: row %d: bad price_sigma %q: %w", row, s, err)
		}
		it.PriceSigma = v
	}
	if s, ok := field("sell_probability"); ok {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Item{}, fmt.Errorf("manifest: row %d: bad sell_probability %q: %w", row, s, err)
		}
		it.SellProbability = v
	}
	if s, ok := field("daily_hazard"); ok {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Item{}, fmt.Errorf("manifest: row %d: bad daily_hazard %q: %w", row, s, err)
		}
		it.DailyHazard = v
	}
	if s, ok := field("quantity"); ok {
		v, err := strconv.Atoi(s)
		if err != nil {
			return Item{}, fmt.Errorf("manifest: row %d: bad quantity %q: %w", row, s, err)
		}
		it.Quantity = v
	}
	if s, ok := field("minutes_per_unit"); ok {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Item{}, fmt.Errorf("manifest: row %d: bad minutes_per_unit %q: %w", row, s, err)
		}
		it.MinutesPerUnit = v
	}

	return it, nil
}

var headerAliases = map[string]string{
	"id":               "id",
	"sku":              "id",
	"item_id":          "id",
	"price_mu":         "price_mu",
	"price":            "price_mu",
	"mu":               "price_mu",
	"price_sigma":      "price_sigma",
	"sigma":            "price_sigma",
	"sell_probability": "sell_probability",
	"sell_prob":        "sell_probability",
	"daily_hazard":     "daily_hazard",
	"hazard":           "daily_hazard",
	"quantity":         "quantity",
	"qty":              "quantity",
	"minutes_per_unit": "minutes_per_unit",
	"minutes":          "minutes_per_unit",
}

func mapHeader(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if canon, ok := headerAliases[key]; ok {
			if _, dup := cols[canon]; !dup {
				cols[canon] = i
			}
		}
	}
	return cols
}
