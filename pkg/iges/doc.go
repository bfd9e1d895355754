// Package iges implements the entity graph manager for an IGES model: a
// type-indexed container of entities linked by parent/child reference
// edges, a two-phase load (parse then associate), a rescale pass, and a
// topological write-out ordering.
//
// The package has no knowledge of a character-level IGES file grammar.
// It consumes and produces structured Directory Entry / Parameter Data
// records through the RecordSource / RecordSink interfaces; tokenizing an
// actual 80-column IGES file is a client concern.
package iges
