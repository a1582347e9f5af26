// Package lvsparse is a small toolkit for sparse integer matrices stored as
// a dictionary of keys: only non-zero cells are kept, so memory and time
// scale with the number of non-zeros instead of rows×cols.
//
// What's inside
//
//	sparse/         Matrix type, text parser/serializer, Add/Sub/Mul, statistics
//	workspace/      sample-file selection, loading with logging, timestamped results
//	config/         YAML configuration with environment overrides
//	cmd/sparsecalc/ cobra CLI with subcommands and an interactive menu
//	examples/       runnable scenario programs
//
// File format:
//
//	rows=3
//	cols=3
//	(0, 1, 5)
//	(2, 2, -7)
//
// Quick start:
//
//	go install github.com/katalvlaran/lvsparse/cmd/sparsecalc@latest
//	sparsecalc mul matrix1.txt matrix2.txt --print
package lvsparse
