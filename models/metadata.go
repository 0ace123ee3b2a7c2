package models

import (
	"errors"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Metadata is the now-playing record for a single track. Length and
// Position are in microseconds, as MPRIS reports them. A record is
// either built freshly from the bus or decoded verbatim from the cache
// slot; it is never partially filled.
type Metadata struct {
	Title     string    `msgpack:"title"`
	Artist    string    `msgpack:"artist"`
	Length    int64     `msgpack:"length"`
	Position  int64     `msgpack:"position"`
	Timestamp time.Time `msgpack:"timestamp"`
}

// -- ENCODERS & DECODERS

func (m *Metadata) Encode() ([]byte, error) {
	if m == nil {
		return nil, errors.New("metadata is null")
	}
	marshaledMeta, marshalErr := msgpack.Marshal(m)
	if marshalErr != nil {
		return nil, marshalErr
	}
	return marshaledMeta, nil
}

func DecodeMetadata(data []byte) (*Metadata, error) {
	if data == nil {
		return nil, errors.New("data given is null")
	}
	var metadataObj Metadata
	unmarshalErr := msgpack.Unmarshal(data, &metadataObj)
	if unmarshalErr != nil {
		return nil, unmarshalErr
	}
	return &metadataObj, nil
}
