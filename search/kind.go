package search

import (
	"fmt"
	"strings"

	"github.com/milk9111/pathviz/grid"
)

// Kind selects one of the built-in searches.
type Kind int

const (
	DijkstraKind Kind = iota
	AStarKind
	BFSKind
	DFSKind
)

// DefaultKind is the search selected at startup.
const DefaultKind = AStarKind

var kinds = []Kind{DijkstraKind, AStarKind, BFSKind, DFSKind}

// Kinds returns every Kind in display order.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

func (k Kind) String() string {
	switch k {
	case DijkstraKind:
		return "Dijkstra"
	case AStarKind:
		return "A*"
	case BFSKind:
		return "BFS"
	case DFSKind:
		return "DFS"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Next returns the following Kind, wrapping around.
func (k Kind) Next() Kind {
	for i, v := range kinds {
		if v == k {
			return kinds[(i+1)%len(kinds)]
		}
	}
	return kinds[0]
}

// ParseKind accepts a display name or a short alias (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dijkstra":
		return DijkstraKind, nil
	case "a*", "astar", "a-star":
		return AStarKind, nil
	case "bfs":
		return BFSKind, nil
	case "dfs":
		return DFSKind, nil
	default:
		return DefaultKind, fmt.Errorf("search: unknown algorithm %q", s)
	}
}

// New builds a fresh search of the given kind.
func New(kind Kind, start, end grid.Point) Algorithm {
	switch kind {
	case DijkstraKind:
		return NewDijkstra(start, end)
	case BFSKind:
		return NewBFS(start, end)
	case DFSKind:
		return NewDFS(start, end)
	default:
		return NewAStar(start, end)
	}
}
