package ndjson

import (
	"bufio"
	"log"
	"strings"

	"github.com/nonemaw/databend"
	"github.com/nonemaw/databend/errors"
	"github.com/tidwall/gjson"
)

// Source is a stateful NDJSON reader producing columnar DataBlocks. It owns
// its scanner and cumulative row counter, so a single Source must not be
// driven by more than one concurrent caller. Sources built from clones of one
// SourceBuilder over independent readers are fully independent.
type Source struct {
	id                 string
	builder            *SourceBuilder
	scanner            *bufio.Scanner
	rows               uint64
	identCaseSensitive bool
	names              []string
	lookupNames        []string
	typeNames          []string
	colTypes           []databend.ColumnType
}

var _ databend.Source = (*Source)(nil)

// ID returns a unique identifier for this Source instance, used to attribute
// log output when several sources feed one ingestion.
func (s *Source) ID() string {
	return s.id
}

// Rows returns the cumulative number of rows this Source has emitted across
// all Read calls so far
func (s *Source) Rows() uint64 {
	return s.rows
}

// Read produces the next DataBlock, or (nil, nil) once the input or the
// configured row budget is exhausted. Every block holds between 1 and the
// configured block size rows; a zero-row outcome is reported as exhaustion,
// never as an empty block. Any failure aborts the whole call: rows decoded
// before the failure are discarded, not returned.
func (s *Source) Read() (*databend.DataBlock, error) {
	if s.limitReached() {
		return nil, nil
	}

	// fresh deserializers per call, so each block's columns finalize
	// independently with no state carried across blocks
	packs := make([]databend.TypeDeserializer, len(s.colTypes))
	for i, colType := range s.colTypes {
		packs[i] = colType.CreateDeserializer(s.builder.blockSize)
	}

	rows := 0
	for {
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return nil, errors.ReadError{Row: s.rows, Err: err}
			}
			break
		}
		line := s.scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !gjson.Valid(line) {
			log.Printf("source %s: unable to parse line: %s", s.id, errors.MaybeTruncated(line, errors.MaxValueBytes))
			return nil, errors.MalformedRecordError{Row: s.rows}
		}
		obj := normalizeRow(gjson.Parse(line), s.identCaseSensitive)
		for i, key := range s.lookupNames {
			// a missing key yields the zero gjson.Result, which
			// deserializers treat as JSON null
			value := obj[key]
			if err := packs[i].DeJSON(value, s.builder.format); err != nil {
				return nil, errors.CoercionFailed(s.rows, s.names[i], s.typeNames[i], value.Raw, err)
			}
		}
		rows++
		s.rows++

		// total budget and batch shaping are independent guards
		if s.limitReached() {
			break
		}
		if rows >= s.builder.blockSize {
			break
		}
	}

	if rows == 0 {
		return nil, nil
	}

	columns := make([]databend.Column, len(packs))
	for i, pack := range packs {
		columns[i] = pack.FinishToColumn()
	}
	return databend.CreateDataBlock(s.builder.schema, columns)
}

func (s *Source) limitReached() bool {
	return s.builder.sizeLimit > 0 && s.rows >= s.builder.sizeLimit
}
