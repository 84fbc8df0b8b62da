// Package seqio reads input sequences and writes aligned output.
//
// It is the collaborator around package msa: a source turns FASTA text into
// ordered (identifier, sequence) records, and a sink renders aligned records
// either as FASTA or as a plain block with one padded row per sequence.
// FASTA parsing and formatting are delegated to biogo.
package seqio
