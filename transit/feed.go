// Package transit: the feed directory loader.
//
// Loading is strict: the first malformed record aborts with the file
// and line, per the abort-on-first-bad-record policy. Line numbers
// count from 1 including the header row.
package transit

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/paulmach/orb"

	"github.com/transitlab/reseau/core"
)

// Load reads stops.txt and links.txt from dir and builds the Feed.
// Stops become vertices, links become edges; every core precondition
// violation (duplicate stop, link to an unknown stop, duplicate link)
// surfaces as the wrapped core sentinel with file and line context.
func Load(dir string) (*Feed, error) {
	feed := &Feed{
		Network: core.NewNetwork(),
		Stops:   make(map[int64]Stop),
	}
	if err := feed.loadStops(filepath.Join(dir, stopsFile)); err != nil {
		return nil, err
	}
	if err := feed.loadLinks(filepath.Join(dir, linksFile)); err != nil {
		return nil, err
	}

	return feed, nil
}

// stopsHeader and linksHeader are the exact expected header rows.
var (
	stopsHeader = []string{"stop_id", "stop_name", "stop_lon", "stop_lat"}
	linksHeader = []string{"from_stop_id", "to_stop_id", "cost", "mode"}
)

func (f *Feed) loadStops(path string) error {
	records, err := readFeedFile(path, stopsHeader)
	if err != nil {
		return err
	}

	for i, rec := range records {
		line := i + 2 // header is line 1

		id, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s line %d: stop_id %q", ErrBadRecord, stopsFile, line, rec[0])
		}
		lon, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return fmt.Errorf("%w: %s line %d: stop_lon %q", ErrBadRecord, stopsFile, line, rec[2])
		}
		lat, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return fmt.Errorf("%w: %s line %d: stop_lat %q", ErrBadRecord, stopsFile, line, rec[3])
		}

		if err = f.Network.AddVertex(id); err != nil {
			return fmt.Errorf("transit: %s line %d: add stop %d: %w", stopsFile, line, id, err)
		}
		f.Stops[id] = Stop{
			ID:       id,
			Name:     rec[1],
			Location: orb.Point{lon, lat},
		}
	}

	return nil
}

func (f *Feed) loadLinks(path string) error {
	records, err := readFeedFile(path, linksHeader)
	if err != nil {
		return err
	}

	for i, rec := range records {
		line := i + 2

		from, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s line %d: from_stop_id %q", ErrBadRecord, linksFile, line, rec[0])
		}
		to, err := strconv.ParseInt(rec[1], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s line %d: to_stop_id %q", ErrBadRecord, linksFile, line, rec[1])
		}
		cost, err := strconv.ParseInt(rec[2], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s line %d: cost %q", ErrBadRecord, linksFile, line, rec[2])
		}
		mode, err := strconv.Atoi(rec[3])
		if err != nil {
			return fmt.Errorf("%w: %s line %d: mode %q", ErrBadRecord, linksFile, line, rec[3])
		}

		if err = f.Network.AddEdge(from, to, cost, mode); err != nil {
			return fmt.Errorf("transit: %s line %d: add link %d→%d: %w", linksFile, line, from, to, err)
		}
	}

	return nil
}

// readFeedFile opens a CSV feed file, verifies its header and returns
// the data records. The csv reader enforces the field count, so every
// downstream record has exactly len(header) fields.
func readFeedFile(path string, header []string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("transit: open %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	rd := csv.NewReader(file)
	rd.FieldsPerRecord = len(header)

	got, err := rd.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s is empty", ErrBadHeader, filepath.Base(path))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadHeader, filepath.Base(path), err)
	}
	for i := range header {
		if got[i] != header[i] {
			return nil, fmt.Errorf("%w: %s: column %d is %q, want %q",
				ErrBadHeader, filepath.Base(path), i+1, got[i], header[i])
		}
	}

	records, err := rd.ReadAll()
	if err != nil {
		// csv.ParseError carries the offending line number.
		return nil, fmt.Errorf("%w: %s: %v", ErrBadRecord, filepath.Base(path), err)
	}

	return records, nil
}
