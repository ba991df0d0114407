package analytics

import (
	"sort"

	"github.com/alexanderramin/pulse/internal/domain"
)

// blockerGraph is an adjacency list over task ids. An edge points from a
// task to each task it waits on (its predecessors). Edges referencing ids
// outside the snapshot are dropped at build time.
type blockerGraph struct {
	tasks map[string]*domain.Task
	// adj maps a task to its blockers (predecessors).
	adj map[string][]string
	// dependents maps a task to the tasks waiting on it.
	dependents map[string][]string
}

func buildBlockerGraph(tasks []domain.Task) *blockerGraph {
	g := &blockerGraph{
		tasks:      make(map[string]*domain.Task, len(tasks)),
		adj:        make(map[string][]string),
		dependents: make(map[string][]string),
	}
	for i := range tasks {
		g.tasks[tasks[i].ID] = &tasks[i]
	}
	for i := range tasks {
		t := &tasks[i]
		for _, blocker := range t.BlockingTaskIDs {
			if _, ok := g.tasks[blocker]; !ok {
				continue
			}
			g.adj[t.ID] = append(g.adj[t.ID], blocker)
			g.dependents[blocker] = append(g.dependents[blocker], t.ID)
		}
	}
	// Deterministic traversal order.
	for id := range g.adj {
		sort.Strings(g.adj[id])
	}
	for id := range g.dependents {
		sort.Strings(g.dependents[id])
	}
	return g
}

// hasDependents reports whether any task in the snapshot waits on id.
func (g *blockerGraph) hasDependents(id string) bool {
	return len(g.dependents[id]) > 0
}

// longestChainFrom returns the longest simple path of task ids starting at
// start and following blocker edges. Traversal is iterative with an
// explicit stack; a revisited node terminates that branch, so cyclic
// dependencies can never loop the walk.
func (g *blockerGraph) longestChainFrom(start string) []string {
	if _, ok := g.tasks[start]; !ok {
		return nil
	}

	type frame struct {
		id   string
		next int // index into adj[id] of the next blocker to try
	}

	stack := []frame{{id: start}}
	onPath := map[string]bool{start: true}
	path := []string{start}
	best := []string{start}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		blockers := g.adj[top.id]

		advanced := false
		for top.next < len(blockers) {
			next := blockers[top.next]
			top.next++
			if onPath[next] {
				// Cycle boundary: terminate this branch.
				continue
			}
			stack = append(stack, frame{id: next})
			onPath[next] = true
			path = append(path, next)
			if len(path) > len(best) {
				best = append([]string(nil), path...)
			}
			advanced = true
			break
		}
		if advanced {
			continue
		}

		// Exhausted this node's blockers: backtrack.
		stack = stack[:len(stack)-1]
		onPath[top.id] = false
		path = path[:len(path)-1]
	}

	return best
}
