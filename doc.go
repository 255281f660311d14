// Package geopattern discovers repeated patterns in symbolic music scores.
//
// Every note onset of a score becomes a point (offset, pitch, part). Patterns
// that recur under translation in time and pitch are found with the SIATECHF
// algorithm and reported back as notation positions, grouped by shape.
//
// # Quick Start
//
//	d, err := geopattern.Discover(score, 1.5)
//	if err != nil {
//	    return err
//	}
//	for _, g := range d.Groups() {
//	    for _, occ := range g.Occurrences() {
//	        fmt.Println(occ.Positions())
//	    }
//	}
//
// The threshold is a minimum compression ratio: the number of notes a group
// covers divided by the number of points needed to describe it. 0 returns
// every repeated shape, including single notes; useful values are usually
// between 1 and 3.
//
// # Materializing Occurrences
//
// Groups only hold notation positions. Resolve them against the score to get
// the notes back:
//
//	patterns, err := d.Patterns()
//
// # Searching
//
// Search finds every exact occurrence of a short excerpt, in any
// transposition:
//
//	occs, err := geopattern.Search(score, excerpt)
//
// # Resource Limits
//
// Discovery is quadratic in the number of notes. Discover rejects scores
// with more than 10 000 onsets unless WithMaxPoints raises the limit, and
// WithMemoryLimit bounds the estimated size of the difference index. Both
// failures match ErrResourceExhausted.
//
// # Observability
//
//	logger := geopattern.NewJSONLogger(slog.LevelDebug)
//	metrics := &geopattern.BasicMetricsCollector{}
//	d, err := geopattern.Discover(score, 1.5,
//	    geopattern.WithLogger(logger),
//	    geopattern.WithMetricsCollector(metrics),
//	)
//
// # Thread Safety
//
// Discover and Search are safe for concurrent use. Results are immutable.
package geopattern
