package importer

import (
	"io"

	"github.com/jgrattan/fieldhand/internal/importer/ledger"
)

// Format identifies a supported import file format.
type Format string

const (
	FormatLedger Format = "ledger"
)

type Importer interface {
	Parse(r io.Reader) ([]ledger.Entry, error)
}
