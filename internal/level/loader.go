package level

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// fileFormat is the on-disk JSON layout.
type fileFormat struct {
	Name  string     `json:"name"`
	Tiles [][]uint32 `json:"tiles"`
}

// Load reads a grid from a .json file or a text file with one digit per cell
// ('.' and ' ' mean empty).
func Load(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", path, err)
	}

	var g *Grid
	if strings.EqualFold(filepath.Ext(path), ".json") {
		g, err = ParseJSON(data)
	} else {
		g, err = ParseText(string(data))
	}
	if err != nil {
		return nil, fmt.Errorf("level: parse %s: %w", path, err)
	}
	return g, nil
}

// ParseJSON decodes {"tiles": [[...], ...]}.
func ParseJSON(data []byte) (*Grid, error) {
	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return FromRows(f.Tiles)
}

// ParseText decodes a digit-per-cell map. Blank lines and lines starting
// with '#' are skipped.
func ParseText(s string) (*Grid, error) {
	var rows [][]uint32
	sc := bufio.NewScanner(strings.NewReader(s))
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, "#") {
			continue
		}
		row := make([]uint32, 0, len(text))
		for col, ch := range text {
			switch {
			case ch == '.' || ch == ' ':
				row = append(row, 0)
			case ch >= '0' && ch <= '9':
				row = append(row, uint32(ch-'0'))
			default:
				return nil, fmt.Errorf("line %d col %d: unexpected %q", line, col+1, ch)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return FromRows(rows)
}

// Default is a 10×10 walled test map using tiles 1 to 5.
const Default = `
1111111111
1........1
1.22..33.1
1.2....3.1
1........1
1........1
1.5....4.1
1.55..44.1
1........1
1234554321
`

// DefaultGrid parses Default.
func DefaultGrid() *Grid {
	g, err := ParseText(Default)
	if err != nil {
		panic(err)
	}
	return g
}
