package bookshelf

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/placeview/pkg/errors"
)

const (
	terminalMarker = "terminal"
	fixedMarker    = "FIXED"
	objectPrefix   = 'o'

	maxLineSize = 1 << 20
)

// ShapeRecord is one object of the node file.
type ShapeRecord struct {
	ID         string  `json:"id"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	IsTerminal bool    `json:"is_terminal"`
	Class      Class   `json:"class"`
	Line       int     `json:"line"`
}

// PlacementRecord is one object of the placement file.
type PlacementRecord struct {
	ID      string  `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	IsFixed bool    `json:"is_fixed"`
	Class   Class   `json:"class"`
	Line    int     `json:"line"`
}

// ParseNodes reads shape records from a node file. source names the input in
// error messages. Lines without an object field are skipped.
func ParseNodes(r io.Reader, source string, detail bool) ([]ShapeRecord, error) {
	var recs []ShapeRecord
	err := scanLines(r, func(n int, line string) error {
		rec, ok, err := parseShape(line)
		if err != nil {
			return annotate(err, source, n)
		}
		if ok {
			rec.Line = n
			rec.Class = Classify(rec.IsTerminal, detail)
			recs = append(recs, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// ParsePlacements reads placement records from a placement file. Only lines
// starting with the object marker are considered.
func ParsePlacements(r io.Reader, source string, detail bool) ([]PlacementRecord, error) {
	var recs []PlacementRecord
	err := scanLines(r, func(n int, line string) error {
		rec, ok, err := parsePlacement(line)
		if err != nil {
			return annotate(err, source, n)
		}
		if ok {
			rec.Line = n
			rec.Class = Classify(rec.IsFixed, detail)
			recs = append(recs, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func parseShape(line string) (ShapeRecord, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || trimmed[0] == '#' {
		return ShapeRecord{}, false, nil
	}

	fields := strings.Fields(trimmed)
	start := -1
	for i, f := range fields {
		if isObjectField(f) {
			start = i
			break
		}
	}
	if start < 0 {
		return ShapeRecord{}, false, nil
	}

	rec := ShapeRecord{ID: fields[start]}
	var nums []float64
	for _, f := range fields[start+1:] {
		if strings.HasPrefix(f, terminalMarker) {
			rec.IsTerminal = true
			break
		}
		v, ok := parseNumber(f)
		if !ok {
			return ShapeRecord{}, false, &errors.RecordError{Field: f}
		}
		nums = append(nums, v)
	}
	if len(nums) < 2 {
		return ShapeRecord{}, false, &errors.RecordError{}
	}
	rec.Width, rec.Height = nums[len(nums)-2], nums[len(nums)-1]
	return rec, true, nil
}

func parsePlacement(line string) (PlacementRecord, bool, error) {
	if line == "" || line[0] != objectPrefix {
		return PlacementRecord{}, false, nil
	}

	fields := strings.Fields(line)
	if len(fields) < 3 {
		return PlacementRecord{}, false, &errors.RecordError{}
	}

	rec := PlacementRecord{ID: fields[0]}
	var ok bool
	if rec.X, ok = parseNumber(fields[1]); !ok {
		return PlacementRecord{}, false, &errors.RecordError{Field: fields[1]}
	}
	if rec.Y, ok = parseNumber(fields[2]); !ok {
		return PlacementRecord{}, false, &errors.RecordError{Field: fields[2]}
	}
	for _, f := range fields[3:] {
		if strings.Contains(f, fixedMarker) {
			rec.IsFixed = true
			break
		}
	}
	return rec, true, nil
}

// parseNumber parses a finite decimal number. NaN and infinities are rejected.
func parseNumber(f string) (float64, bool) {
	v, err := strconv.ParseFloat(f, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// isObjectField reports whether f is an object field: "o" and digits only.
func isObjectField(f string) bool {
	if f == "" || f[0] != objectPrefix {
		return false
	}
	for i := 1; i < len(f); i++ {
		if f[i] < '0' || f[i] > '9' {
			return false
		}
	}
	return true
}

func scanLines(r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	n := 0
	for sc.Scan() {
		n++
		if err := fn(n, sc.Text()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "read line %d", n+1)
	}
	return nil
}

func annotate(err error, source string, line int) error {
	if re, ok := err.(*errors.RecordError); ok {
		re.File = source
		re.Line = line
	}
	return errors.Wrap(errors.ErrCodeMalformedRecord, err, "malformed record")
}
