package transit_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/transitlab/reseau/core"
	"github.com/transitlab/reseau/transit"
)

// writeFeed materializes a feed directory with the given file bodies.
func writeFeed(t *testing.T, stops, links string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stops.txt"), []byte(stops), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "links.txt"), []byte(links), 0o644))

	return dir
}

const validStops = `stop_id,stop_name,stop_lon,stop_lat
1,Gare du Palais,-71.2140,46.8172
2,Place D'Youville,-71.2186,46.8119
3,Colline Parlementaire,-71.2199,46.8089
`

const validLinks = `from_stop_id,to_stop_id,cost,mode
1,2,5,0
2,3,5,1
1,3,20,3
`

func TestLoad_RoundTrip(t *testing.T) {
	dir := writeFeed(t, validStops, validLinks)

	feed, err := transit.Load(dir)
	require.NoError(t, err)
	require.Equal(t, 3, feed.Network.VertexCount())
	require.Equal(t, 3, feed.Network.EdgeCount())
	require.Len(t, feed.Stops, 3)

	// Stop attributes survive the trip.
	stop := feed.Stops[1]
	require.Equal(t, "Gare du Palais", stop.Name)
	require.InDelta(t, -71.2140, stop.Location[0], 1e-9)
	require.InDelta(t, 46.8172, stop.Location[1], 1e-9)

	// Link costs and modes land on the edges.
	cost, err := feed.Network.EdgeCost(1, 3)
	require.NoError(t, err)
	require.Equal(t, int64(20), cost)
	mode, err := feed.Network.EdgeKind(2, 3)
	require.NoError(t, err)
	require.Equal(t, transit.ModeMetro, mode)
}

func TestLoad_NegativeCostIsLegalInput(t *testing.T) {
	dir := writeFeed(t, validStops, "from_stop_id,to_stop_id,cost,mode\n1,2,-7,0\n")

	feed, err := transit.Load(dir)
	require.NoError(t, err)
	cost, err := feed.Network.EdgeCost(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(-7), cost)
}

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stops.txt"), []byte(validStops), 0o644))
	// links.txt never written.

	feed, err := transit.Load(dir)
	require.Nil(t, feed)
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoad_AbortsOnFirstBadRecord walks the malformed-feed matrix: the
// loader must fail with the right sentinel and mention the offending
// file and line.
func TestLoad_AbortsOnFirstBadRecord(t *testing.T) {
	cases := []struct {
		name     string
		stops    string
		links    string
		sentinel error
		context  string
	}{
		{
			name:     "unparseable stop id",
			stops:    "stop_id,stop_name,stop_lon,stop_lat\nabc,Broken,-71.0,46.0\n",
			links:    validLinks,
			sentinel: transit.ErrBadRecord,
			context:  "stops.txt line 2",
		},
		{
			name:     "unparseable longitude",
			stops:    "stop_id,stop_name,stop_lon,stop_lat\n1,Fine,-71.0,46.0\n2,Broken,east,46.0\n",
			links:    validLinks,
			sentinel: transit.ErrBadRecord,
			context:  "stops.txt line 3",
		},
		{
			name:     "wrong field count",
			stops:    "stop_id,stop_name,stop_lon,stop_lat\n1,MissingFields\n",
			links:    validLinks,
			sentinel: transit.ErrBadRecord,
			context:  "stops.txt",
		},
		{
			name:     "bad header",
			stops:    "id,name,lon,lat\n1,Fine,-71.0,46.0\n",
			links:    validLinks,
			sentinel: transit.ErrBadHeader,
			context:  "stops.txt",
		},
		{
			name:     "duplicate stop",
			stops:    "stop_id,stop_name,stop_lon,stop_lat\n1,First,-71.0,46.0\n1,Again,-71.1,46.1\n",
			links:    validLinks,
			sentinel: core.ErrDuplicateVertex,
			context:  "stops.txt line 3",
		},
		{
			name:     "link to unknown stop",
			stops:    validStops,
			links:    "from_stop_id,to_stop_id,cost,mode\n1,99,4,0\n",
			sentinel: core.ErrVertexNotFound,
			context:  "links.txt line 2",
		},
		{
			name:     "duplicate link",
			stops:    validStops,
			links:    "from_stop_id,to_stop_id,cost,mode\n1,2,4,0\n1,2,6,0\n",
			sentinel: core.ErrDuplicateEdge,
			context:  "links.txt line 3",
		},
		{
			name:     "unparseable mode",
			stops:    validStops,
			links:    "from_stop_id,to_stop_id,cost,mode\n1,2,4,express\n",
			sentinel: transit.ErrBadRecord,
			context:  "links.txt line 2",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeFeed(t, tc.stops, tc.links)

			feed, err := transit.Load(dir)
			require.Nil(t, feed)
			require.ErrorIs(t, err, tc.sentinel)
			require.ErrorContains(t, err, tc.context)
		})
	}
}
