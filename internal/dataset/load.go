package dataset

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load reads a comma-separated file with a header row into a DataFrame.
//
// The file is parsed as plain UTF-8 first. If that fails, or the file
// carries a byte-order mark, it is re-decoded through a BOM-aware
// decoder (the utf-8-sig fallback) and parsed again.
func Load(path string) (dataframe.DataFrame, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open raw file: %w", err)
	}

	if utf8.Valid(raw) && !bytes.HasPrefix(raw, utf8BOM) {
		df := readCSV(raw)
		if df.Error() == nil {
			return df, nil
		}
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("decode raw file %s: %w", path, err)
	}

	df := readCSV(decoded)
	if err := df.Error(); err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parse raw file %s: %w", path, err)
	}
	return df, nil
}

func readCSV(data []byte) dataframe.DataFrame {
	return dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
}
