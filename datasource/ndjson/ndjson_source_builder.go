package ndjson

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	uuid "github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/nonemaw/databend"
)

// DefaultBlockSize is the maximum number of rows per DataBlock unless
// overridden via SourceBuilder.BlockSize.
const DefaultBlockSize = 10000

// SourceBuilder configures NDJSON Sources. A builder is assembled once per
// schema/format pair and is cheap to Clone, so that independent Sources over
// different readers (one per input file or connection) can share one
// configuration. Builders are not mutated by the Sources they produce.
type SourceBuilder struct {
	schema        databend.Schema
	blockSize     int
	sizeLimit     uint64
	maxBufferSize int
	format        *databend.FormatSettings
}

// CreateSourceBuilder returns a new SourceBuilder with the default block size
// and no total row budget.
func CreateSourceBuilder(schema databend.Schema, format *databend.FormatSettings) *SourceBuilder {
	return &SourceBuilder{
		schema:        schema,
		blockSize:     DefaultBlockSize,
		sizeLimit:     0,
		maxBufferSize: bufio.MaxScanTokenSize,
		format:        format,
	}
}

// BlockSize sets the maximum number of rows per emitted DataBlock. Must be
// positive; violations are reported by Build.
func (b *SourceBuilder) BlockSize(blockSize int) *SourceBuilder {
	b.blockSize = blockSize
	return b
}

// SizeLimit caps the cumulative number of rows a built Source will ever emit
// across its lifetime. 0 (the default) means unbounded.
func (b *SourceBuilder) SizeLimit(sizeLimit uint64) *SourceBuilder {
	b.sizeLimit = sizeLimit
	return b
}

// MaxBufferSize sets the maximum size in bytes of the buffer used to read
// lines from the input
func (b *SourceBuilder) MaxBufferSize(maxBufferSize int) *SourceBuilder {
	b.maxBufferSize = maxBufferSize
	return b
}

// Clone returns a copy of this SourceBuilder, suitable for building further
// Sources with the same schema and format over other readers
func (b *SourceBuilder) Clone() *SourceBuilder {
	clone := *b
	return &clone
}

// Build constructs a Source bound to the given reader. The builder's
// configuration is copied into the Source, which captures the case-sensitivity
// flag and per-field lookup keys once for fast per-row access. All
// configuration violations are reported together.
func (b *SourceBuilder) Build(r io.Reader) (*Source, error) {
	var errs *multierror.Error
	if b.schema == nil || b.schema.NumColumns() == 0 {
		errs = multierror.Append(errs, fmt.Errorf("schema must contain at least one column"))
	}
	if b.format == nil {
		errs = multierror.Append(errs, fmt.Errorf("format settings are required"))
	}
	if b.blockSize <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("block size must be positive, got %d", b.blockSize))
	}
	if b.maxBufferSize <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("max buffer size must be positive, got %d", b.maxBufferSize))
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), b.maxBufferSize)
	names := b.schema.ColumnNames()
	colTypes := b.schema.ColumnTypes()
	identCaseSensitive := b.format.IdentCaseSensitive
	lookupNames := make([]string, len(names))
	typeNames := make([]string, len(names))
	for i, name := range names {
		if identCaseSensitive {
			lookupNames[i] = name
		} else {
			lookupNames[i] = strings.ToLower(name)
		}
		typeNames[i] = colTypes[i].Name()
	}
	return &Source{
		id:                 id.String(),
		builder:            b.Clone(),
		scanner:            scanner,
		identCaseSensitive: identCaseSensitive,
		names:              names,
		lookupNames:        lookupNames,
		typeNames:          typeNames,
		colTypes:           colTypes,
	}, nil
}
