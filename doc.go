// Package astrokit provides astronomical computation primitives meant to be
// called row-by-row or in bulk from an embedding query or data-processing
// engine: coordinate-frame conversions, two-body orbital propagation,
// parametric physical body models, and a hierarchical 3-D sector addressing
// scheme for astronomical catalogs.
//
// Every operation is a pure, stateless computation over plain numeric values
// and small fixed-shape records. There is no shared mutable state, no I/O in
// the core paths, and no caching: the same inputs always produce the same
// outputs, and all functions are safe for concurrent use.
//
// Structural contract violations (negative sector levels, unknown unit names,
// unsupported frame pairs) surface as typed errors naming the offending value
// and the accepted set. Mathematically undefined closed-form results (the
// magnitude of a non-positive flux, the distance modulus of a non-positive
// distance) come back as NaN so that one bad row never aborts a batch.
package astrokit
