package index

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// csvCodec encodes entries as headerless `path,timestamp` records
type csvCodec struct{}

func (csvCodec) Marshal(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, e := range entries {
		if err := w.Write([]string{e.Path, formatTimestamp(e.LastAccess)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (csvCodec) Unmarshal(data []byte) ([]Entry, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = 2

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(records))
	for n, rec := range records {
		ts, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("record %d: invalid timestamp %q", n+1, rec[1])
		}
		entries = append(entries, Entry{Path: rec[0], LastAccess: ts})
	}
	return entries, nil
}

// formatTimestamp uses the shortest representation that parses back to v
func formatTimestamp(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
