package algorithms

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/dijkstra"
)

// Registered algorithm names.
const (
	Dijkstra = "dijkstra"
	BFS      = "bfs"
	DFS      = "dfs"
)

// ErrUnknownAlgorithm is returned by Lookup and Search for unregistered names.
var ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")

// SearchFunc runs one search on g, honoring ctx for cancellation.
type SearchFunc func(ctx context.Context, g core.Grid) (*core.Result, error)

var registry = map[string]SearchFunc{
	Dijkstra: func(ctx context.Context, g core.Grid) (*core.Result, error) {
		return dijkstra.Dijkstra(g, dijkstra.WithContext(ctx))
	},
	BFS: func(ctx context.Context, g core.Grid) (*core.Result, error) {
		return bfs.BFS(g, bfs.WithContext(ctx))
	},
	DFS: func(ctx context.Context, g core.Grid) (*core.Result, error) {
		return dfs.DFS(g, dfs.WithContext(ctx))
	},
}

// Lookup returns the SearchFunc registered under name.
func Lookup(name string) (SearchFunc, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return fn, nil
}

// Search looks up name and runs it on g.
func Search(ctx context.Context, name string, g core.Grid) (*core.Result, error) {
	fn, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	return fn(ctx, g)
}

// Names returns the registered algorithm names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
