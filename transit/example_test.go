package transit_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/transitlab/reseau/transit"
)

// ExampleStopIndex_Nearest finds the closest stops to a rider standing
// between two of them.
func ExampleStopIndex_Nearest() {
	stops := map[int64]transit.Stop{
		10: {ID: 10, Name: "Gare du Palais", Location: orb.Point{-71.2140, 46.8172}},
		11: {ID: 11, Name: "Place D'Youville", Location: orb.Point{-71.2186, 46.8119}},
		12: {ID: 12, Name: "Colline Parlementaire", Location: orb.Point{-71.2199, 46.8089}},
	}
	idx := transit.NewStopIndex(stops)

	for _, s := range idx.Nearest(orb.Point{-71.2190, 46.8100}, 2) {
		fmt.Println(s.Name)
	}

	// Output:
	// Colline Parlementaire
	// Place D'Youville
}
