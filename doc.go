// Package semicore is the computational core of a semigroup and monoid
// library: word graphs and the algorithms that operate on them, the
// structure-theory constructions built on top, and the external interfaces
// those constructions depend on.
//
// Everything is organized under subpackages by concern:
//
//	uf/           — disjoint-set union-find
//	forest/       — rooted forests with parent+label edges
//	wordgraph/    — dense word graphs, views, and graph algorithms
//	wgsources/    — word graphs with reverse-adjacency sources, node merging
//	gabow/        — strongly connected components
//	hopcroftkarp/ — join (coarsest common refinement) and meet of word graphs
//	paths/        — path enumeration and counting
//	suffixtree/   — generalized suffix tree over words
//	element/      — the Multiplicative capability interface
//	pbr/          — the PBR (partitioned binary relation) element type
//	presentation/ — inverse monoid presentations
//	stephen/      — the Stephen's-procedure automaton interface
//	cirpons/      — fused word graph over a presentation's Stephen automata
//	cutting/      — R-class and D-class enumeration
//
// This module has no user-facing CLI or service surface; it is a library
// consumed by a higher layer that drives presentations through it.
package semicore
