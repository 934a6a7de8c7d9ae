package logger

import (
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/tarmac-project/weblog/level"
)

// Entry is a single recorded message.
type Entry struct {
	Time    time.Time   `json:"date"`
	Level   level.Level `json:"type"`
	Message string      `json:"msg"`
}

// Format renders the entry as "<timestamp> - <LEVEL> - <message>".
func (e Entry) Format(layout string, loc *time.Location) string {
	var b strings.Builder
	b.WriteString(e.Time.In(loc).Format(layout))
	b.WriteString(" - ")
	b.WriteString(e.Level.String())
	b.WriteString(" - ")
	b.WriteString(e.Message)
	return b.String()
}

// Encode serializes entries as a JSON array in order. No entries encode as "[]".
func Encode(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	return json.Marshal(entries)
}

// Decode parses a JSON array produced by Encode.
func Decode(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
