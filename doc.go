// Package cossim (module github.com/gotrigram/cossim) matches two columns
// of free text against each other by character-trigram cosine similarity,
// at scale, keeping only the top-N matches per left-hand row.
//
// 🚀 What is this?
//
//	A small, thread-safe library that brings together:
//
//	  • vocab      — the fixed 17 576-entry lowercase-trigram vocabulary
//	  • csr        — a generic compressed-sparse-row matrix engine
//	  • vectorizer — strings → trigram-frequency CSR rows
//	  • cossim     — the sparse-dot-top-N kernel, its parallel driver,
//	                 and the AwesomeCossim entry point
//
// ✨ Why this shape?
//
//   - Pluggable host tables — cossim.Table is a one-method interface; bring
//     your own dataframe or use the bundled cossim.ColumnTable.
//   - Exact or approximate parallelism — WithParallelizeLeft toggles
//     between the exact left-partitioned strategy and the faster,
//     approximate right-partitioned one.
//   - Pure Go — no cgo.
//
// Under the hood:
//
//	vocab/      — process-wide trigram → column-index mapping
//	csr/        — Matrix[T], generic over the nonzero value type
//	vectorizer/ — tokenization and CSR construction
//	cossim/     — kernel, driver, reducer, assembler, AwesomeCossim
//
// The module ships no example program.
//
//	go get github.com/gotrigram/cossim
package cossim
