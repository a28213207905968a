// Package registry provides the Data Registry: the single owner of all
// experiment setups and sample points of a collection session.
//
// Every sample point is registered with every setup. Adding a setup registers
// it on all existing points, adding a point registers all existing setups on
// it, and deleting a setup unregisters it everywhere before it is dropped. As
// a result each point's registered setups always equal the registry's setup
// list, in the same order, and every (point, setup) pair has exactly one set
// of scan flags.
//
// Setups and points are addressed by index, matching the rows a GUI shows,
// and additionally carry a stable identifier (see package itemid) that does
// not change when other rows are deleted.
//
// A Registry is not safe for concurrent use. It is meant to be driven from a
// single event loop.
package registry
