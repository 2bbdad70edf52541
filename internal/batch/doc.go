// Package batch drives stack assembly over an ordered DataMap.
//
// A DataMap is an ordered list of (recipe, directory) entries. The iterator
// is pull-based and single-threaded: each Next performs exactly one
// assembly and no tensor is retained after being yielded, so the memory
// footprint stays bounded by one in-flight stack. Validate is the
// batch-level pre-flight, catching a bad entry before any assembly work.
package batch
