package github

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/custodia-labs/ytstats/internal/core/domain"
)

// tupleLen is the number of positions in a stored record:
// [views, likes, comments, timestamp, videoId].
const tupleLen = 5

var jsonNull = []byte("null")

// DecodeRecords parses a file of positional tuples into records.
// A payload that is not an array of arrays fails with domain.ErrParse.
// Tuples that are short, carry a non-numeric count or lack a video id
// are dropped; the number dropped is returned alongside the records.
func DecodeRecords(data []byte) ([]domain.Record, int, error) {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return nil, 0, fmt.Errorf("%w: payload is null", domain.ErrParse)
	}

	var rows [][]json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", domain.ErrParse, err)
	}

	records := make([]domain.Record, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		rec, ok := decodeTuple(row)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped, nil
}

func decodeTuple(row []json.RawMessage) (domain.Record, bool) {
	if len(row) < tupleLen {
		return domain.Record{}, false
	}

	var counts [3]int64
	for i := range counts {
		n, ok := decodeCount(row[i])
		if !ok {
			return domain.Record{}, false
		}
		counts[i] = n
	}

	videoID, ok := decodeString(row[4])
	if !ok || videoID == "" {
		return domain.Record{}, false
	}

	// Timestamps are echoed back verbatim, so a non-string value keeps
	// its JSON text.
	ts, ok := decodeString(row[3])
	if !ok {
		ts = string(bytes.TrimSpace(row[3]))
	}

	return domain.Record{
		Views:     counts[0],
		Likes:     counts[1],
		Comments:  counts[2],
		Timestamp: ts,
		VideoID:   videoID,
	}, true
}

// decodeCount accepts a JSON number, a numeric string or null (zero).
// Fractions are truncated.
func decodeCount(raw json.RawMessage) (int64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, false
	}
	if bytes.Equal(raw, jsonNull) {
		return 0, true
	}

	text := string(raw)
	if raw[0] == '"' {
		s, ok := decodeString(raw)
		if !ok {
			return 0, false
		}
		text = s
	}

	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int64(f), true
}

func decodeString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
