package csvsource

import (
	"encoding/csv"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/types"
)

// ReadBarsFromCSV reads all the .csv files in a given directory or a single file into a slice of Bars.
// Wraps a default CSVBarReader with Binance decoder for convenience.
// For finer grained memory management use the base bar reader.
func ReadBarsFromCSV[T any](ar num.Arithmetic[T], path string, interval time.Duration) ([]*types.Bar[T], error) {
	return ReadBarsFromCSVWithDecoder(ar, path, interval, NewBinanceCSVBarReader[T])
}

// ReadBarsFromCSVWithDecoder permits using a custom CSVBarReader.
func ReadBarsFromCSVWithDecoder[T any](ar num.Arithmetic[T], path string, interval time.Duration, maker MakeCSVBarReader[T]) ([]*types.Bar[T], error) {
	files, err := CSVFiles(path)
	if err != nil {
		return nil, err
	}

	var bars []*types.Bar[T]
	for _, f := range files {
		newBars, err := readFile(ar, f, interval, maker)
		if err != nil {
			return nil, err
		}
		bars = append(bars, newBars...)
	}

	return bars, nil
}

func readFile[T any](ar num.Arithmetic[T], path string, interval time.Duration, maker MakeCSVBarReader[T]) ([]*types.Bar[T], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	//nolint:errcheck // Read ops only so safe to ignore err return
	defer file.Close()

	return maker(ar, csv.NewReader(file)).ReadAll(interval)
}

// CSVFiles returns path itself when it is a file, or the .csv files under
// the directory sorted by name so that bars stay in chronological order.
func CSVFiles(path string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".csv" {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
