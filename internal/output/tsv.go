package output

import (
	"bufio"
	"io"
	"strings"
)

var tsvEscaper = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

func WriteTSV(w io.Writer, t Tabular) error {
	bw := bufio.NewWriter(w)
	writeLine := func(fields []string) {
		for i, f := range fields {
			if i > 0 {
				bw.WriteByte('\t')
			}
			bw.WriteString(tsvEscaper.Replace(f))
		}
		bw.WriteByte('\n')
	}
	writeLine(t.Headers)
	for _, row := range t.Rows {
		writeLine(row)
	}
	return bw.Flush()
}
