// Package transit: Feed, Stop, transport modes and loader errors.
package transit

import (
	"errors"

	"github.com/paulmach/orb"

	"github.com/transitlab/reseau/core"
)

// Transport modes carried in the links file and stored as the edge
// Kind tag. The values are the feed's wire values.
const (
	ModeBus   = 0
	ModeMetro = 1
	ModeTrain = 2
	ModeWalk  = 3
)

// Feed file names inside a feed directory.
const (
	stopsFile = "stops.txt"
	linksFile = "links.txt"
)

// Sentinel errors for feed loading.
var (
	// ErrBadRecord indicates a structurally malformed CSV record:
	// wrong field count or an unparseable number.
	ErrBadRecord = errors.New("transit: malformed record")

	// ErrBadHeader indicates a feed file whose header row does not
	// match the expected columns.
	ErrBadHeader = errors.New("transit: unexpected header")
)

// Stop is one transit stop: the vertex id used by the network plus the
// attributes the core does not own.
type Stop struct {
	// ID is the vertex id of this stop in the Feed's Network.
	ID int64

	// Name is the human-readable stop name.
	Name string

	// Location is the stop position as (longitude, latitude).
	Location orb.Point
}

// Feed is a fully loaded transit feed: the routable network and the
// stop attributes keyed by vertex id.
type Feed struct {
	Network *core.Network
	Stops   map[int64]Stop
}
