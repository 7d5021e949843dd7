package bookshelf

import (
	"bufio"
	"io"
	"strconv"
)

// WriteNodes writes shape records in node file format, one tab-indented
// record per line.
func WriteNodes(w io.Writer, recs []ShapeRecord) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		bw.WriteString("\t" + r.ID + "\t" + formatNum(r.Width) + "\t" + formatNum(r.Height))
		if r.IsTerminal {
			bw.WriteString("\t" + terminalMarker)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WritePlacements writes placement records in solution format:
//
//	o<n>	<x>	<y>	:	N[	/FIXED]
func WritePlacements(w io.Writer, recs []PlacementRecord) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		bw.WriteString(r.ID + "\t" + formatNum(r.X) + "\t" + formatNum(r.Y) + "\t:\tN")
		if r.IsFixed {
			bw.WriteString("\t/" + fixedMarker)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
