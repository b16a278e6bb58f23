// Package fuzzy scores how similar two strings are.
//
// Similarity implements the Ratcliff/Obershelp longest-common-block ratio:
// 1.0 means identical, 0.0 means nothing in common.
//
//	fuzzy.Similarity("hello", "hello") // 1.0
//	fuzzy.Similarity("hello", "hallo") // 0.8
//	fuzzy.Similarity("hello", "world") // 0.2
package fuzzy
