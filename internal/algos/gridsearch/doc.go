// Package gridsearch implements the frontier-based grid searches: BFS, DFS,
// Dijkstra, greedy best-first and A*. All five explore 4-connected grid
// adjacency with unit edge cost and share the same state-machine shape:
// every Advance pops one live frontier entry, closes it, and relaxes its
// neighbors into the frontier.
//
// Priority frontiers break ties by Position order (row, then column), which
// keeps runs reproducible.
package gridsearch
