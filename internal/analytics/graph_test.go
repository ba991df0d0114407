package analytics

import (
	"testing"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/stretchr/testify/assert"
)

func blockedTask(id string, blockers ...string) domain.Task {
	return domain.Task{ID: id, Status: domain.TaskBlocked, BlockingTaskIDs: blockers}
}

func TestBuildBlockerGraph_DropsUnknownEdges(t *testing.T) {
	tasks := []domain.Task{
		blockedTask("A", "B", "ghost"),
		blockedTask("B"),
	}
	g := buildBlockerGraph(tasks)
	assert.Equal(t, []string{"B"}, g.adj["A"])
	assert.True(t, g.hasDependents("B"))
	assert.False(t, g.hasDependents("ghost"))
}

func TestLongestChainFrom_LinearChain(t *testing.T) {
	tasks := []domain.Task{
		blockedTask("A"),
		blockedTask("B", "A"),
		blockedTask("C", "B"),
	}
	g := buildBlockerGraph(tasks)
	assert.Equal(t, []string{"C", "B", "A"}, g.longestChainFrom("C"))
}

func TestLongestChainFrom_PicksLongestBranch(t *testing.T) {
	tasks := []domain.Task{
		blockedTask("A"),
		blockedTask("B", "A"),
		blockedTask("short"),
		blockedTask("C", "short", "B"),
	}
	g := buildBlockerGraph(tasks)
	assert.Equal(t, []string{"C", "B", "A"}, g.longestChainFrom("C"))
}

func TestLongestChainFrom_CycleTerminates(t *testing.T) {
	tasks := []domain.Task{
		blockedTask("A", "B"),
		blockedTask("B", "A"),
	}
	g := buildBlockerGraph(tasks)
	chain := g.longestChainFrom("A")
	assert.Equal(t, []string{"A", "B"}, chain)
}

func TestLongestChainFrom_SelfCycle(t *testing.T) {
	tasks := []domain.Task{blockedTask("A", "A")}
	g := buildBlockerGraph(tasks)
	assert.Equal(t, []string{"A"}, g.longestChainFrom("A"))
}

func TestLongestChainFrom_UnknownStart(t *testing.T) {
	g := buildBlockerGraph(nil)
	assert.Nil(t, g.longestChainFrom("missing"))
}
