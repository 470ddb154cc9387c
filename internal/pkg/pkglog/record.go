package pkglog

import (
	"encoding/json"
	"time"
)

// TimestampFormat is ISO-8601 in UTC with millisecond precision.
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// Record is one structured log line.
type Record struct {
	Timestamp      time.Time
	Level          Level
	Module         string
	CorrelationID  string
	HasCorrelation bool
	Message        string
}

// wireRecord fixes the key order of the serialized line.
type wireRecord struct {
	Timestamp     string  `json:"timestamp"`
	Level         string  `json:"level"`
	Module        string  `json:"module"`
	CorrelationID *string `json:"correlationId"`
	Message       string  `json:"message"`
}

// NewRecord builds a record. An empty cid means no correlation id.
func NewRecord(level Level, module string, ts time.Time, cid string, msg string) Record {
	return Record{
		Timestamp:      ts,
		Level:          level,
		Module:         module,
		CorrelationID:  cid,
		HasCorrelation: cid != "",
		Message:        msg,
	}
}

// MarshalJSON implements json.Marshaler.
func (r Record) MarshalJSON() ([]byte, error) {
	w := wireRecord{
		Timestamp: r.Timestamp.UTC().Format(TimestampFormat),
		Level:     r.Level.String(),
		Module:    r.Module,
		Message:   r.Message,
	}
	if r.HasCorrelation {
		cid := r.CorrelationID
		w.CorrelationID = &cid
	}
	return json.Marshal(w)
}

// FormatRecord serializes r as a single newline-terminated JSON line.
func FormatRecord(r Record) ([]byte, error) {
	b, err := r.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
