package levels

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/milk9111/geodash/obj"
)

// Record type tags.
const (
	TagBlock = 1
	TagSpike = 2
	TagOrb   = 3
)

// Parse reads one obstacle record per line:
//
//	1,x,y,width,height         block
//	2,x,y,width,height,flip    spike
//	3,x,y,diameter             orb
//
// Fields may be separated by commas, semicolons, pipes or whitespace.
// Blank lines and lines starting with '#' are skipped, unknown tags are
// ignored, and any malformed record fails the whole level.
func Parse(name string, r io.Reader) (*Layout, error) {
	lay := &Layout{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := lay.addRecord(splitFields(text)); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: read: %w", name, err)
	}
	return lay, nil
}

func splitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '|' || unicode.IsSpace(r)
	})
}

func (l *Layout) addRecord(fields []string) error {
	if len(fields) == 0 {
		return fmt.Errorf("%w: empty record", ErrMalformed)
	}
	tag, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return fmt.Errorf("%w: type tag %q", ErrMalformed, fields[0])
	}

	switch tag {
	case TagBlock:
		v, err := numbers(fields, 4)
		if err != nil {
			return err
		}
		l.Blocks = append(l.Blocks, obj.NewBlock(v[0], v[1], v[2], v[3]))
	case TagSpike:
		if len(fields) != 6 {
			return fmt.Errorf("%w: spike wants 6 fields, got %d", ErrMalformed, len(fields))
		}
		v, err := numbers(fields[:5], 4)
		if err != nil {
			return err
		}
		flip, err := strconv.ParseBool(fields[5])
		if err != nil {
			return fmt.Errorf("%w: spike flip %q", ErrMalformed, fields[5])
		}
		l.Spikes = append(l.Spikes, obj.NewSpike(v[0], v[1], v[2], v[3], flip))
	case TagOrb:
		v, err := numbers(fields, 3)
		if err != nil {
			return err
		}
		l.Orbs = append(l.Orbs, obj.NewOrb(v[0], v[1], v[2]))
	}
	return nil
}

// numbers parses the n values following the tag.
func numbers(fields []string, n int) ([]float64, error) {
	if len(fields) != n+1 {
		return nil, fmt.Errorf("%w: want %d fields, got %d", ErrMalformed, n+1, len(fields))
	}
	out := make([]float64, n)
	for i, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: field %d %q", ErrMalformed, i+2, f)
		}
		out[i] = v
	}
	return out, nil
}
