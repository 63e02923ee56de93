package utils

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/floodrelief/relief-api/schema"
)

const utf8BOM = "\ufeff"

var candidateCSVHeader = []string{"ชื่อ", "เบอร์โทร", "ที่อยู่", "จำนวนคน", "ความต้องการ", "หมายเหตุ", "ความเร่งด่วน"}

// WriteCandidatesCSV writes candidates as a spreadsheet friendly CSV: a
// UTF-8 byte order mark, a thai header row and every cell quoted. Rows are
// separated by a single newline.
func WriteCandidatesCSV(w io.Writer, candidates []schema.HelpRequestCandidate) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(utf8BOM); err != nil {
		return err
	}

	if err := writeQuotedRow(bw, candidateCSVHeader, false); err != nil {
		return err
	}

	for _, c := range candidates {
		row := []string{
			c.Name,
			c.Phone,
			c.Location.Address,
			strconv.Itoa(c.PeopleCount),
			strings.Join(c.Needs, ", "),
			c.Note,
			string(c.Priority),
		}
		if err := writeQuotedRow(bw, row, true); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeQuotedRow(w *bufio.Writer, cells []string, leadingNewline bool) error {
	if leadingNewline {
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}

	for i, cell := range cells {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(`"` + strings.ReplaceAll(cell, `"`, `""`) + `"`); err != nil {
			return err
		}
	}
	return nil
}
