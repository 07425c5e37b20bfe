// Package transit loads a transit feed directory into a core.Network
// and keeps everything the core deliberately does not own: stop names,
// stop coordinates and a spatial index over them.
//
// # Feed format
//
// A feed directory holds two CSV files with headers:
//
//	stops.txt   stop_id,stop_name,stop_lon,stop_lat
//	links.txt   from_stop_id,to_stop_id,cost,mode
//
// Load builds the Network through the ordinary core mutators, so the
// feed obeys exactly the same rules as hand-built networks: ids must
// be non-negative, links must reference loaded stops, and an ordered
// stop pair carries at most one link. Loading aborts on the first
// malformed record and reports
// the file and line; structural problems (field counts, unparseable
// numbers, bad headers) wrap ErrBadRecord, semantic ones (duplicate
// stops, links to unknown stops) wrap the corresponding core sentinel.
//
// # Stop index
//
// StopIndex answers "which stops are near this point" questions over
// an R-tree of stop locations:
//
//	idx := transit.NewStopIndex(feed.Stops)
//	near := idx.Nearest(orb.Point{-71.22, 46.81}, 3)
//	inside := idx.Within(orb.Point{-71.3, 46.7}, orb.Point{-71.1, 46.9})
//
// Nearest ranks candidates by great-circle distance, so results stay
// correct away from the equator where raw lon/lat deltas skew.
//
// The loaded Feed is plain data: queries go through shortest, using
// Feed.Network and the stop ids as vertices.
package transit
