package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
)

const (
	DefaultStalenessDays     = 7
	DefaultDecisionDelayDays = 7

	stalledHighThreshold = 5
	clusterHighThreshold = 3
	chainHighThreshold   = 3
)

// detectionOrder fixes the tie-break between bottlenecks of equal impact
// and count: earlier rule sorts first.
var detectionOrder = map[domain.BottleneckType]int{
	domain.BottleneckStalledTasks:      0,
	domain.BottleneckOverdueCluster:    1,
	domain.BottleneckBlockedChain:      2,
	domain.BottleneckMissingAssignment: 3,
	domain.BottleneckDecisionDelay:     4,
}

type BottleneckInput struct {
	Tasks []domain.Task
	Now   time.Time

	// Thresholds in days; zero selects the defaults.
	StalenessDays     int
	DecisionDelayDays int
}

// DetectBottlenecks scans the task set with five independent rules and
// returns the findings ranked by impact, then count, then rule order.
// Rules that match nothing emit no entry.
func DetectBottlenecks(input BottleneckInput) []contract.Bottleneck {
	staleness := input.StalenessDays
	if staleness <= 0 {
		staleness = DefaultStalenessDays
	}
	decisionDelay := input.DecisionDelayDays
	if decisionDelay <= 0 {
		decisionDelay = DefaultDecisionDelayDays
	}

	graph := buildBlockerGraph(input.Tasks)

	var found []contract.Bottleneck
	found = append(found, detectStalled(input.Tasks, input.Now, staleness)...)
	found = append(found, detectOverdueClusters(input.Tasks, input.Now)...)
	found = append(found, detectBlockedChains(input.Tasks, graph)...)
	found = append(found, detectMissingAssignment(input.Tasks)...)
	found = append(found, detectDecisionDelay(input.Tasks, graph, input.Now, decisionDelay)...)

	sort.SliceStable(found, func(i, j int) bool {
		if ri, rj := domain.ImpactRank(found[i].Impact), domain.ImpactRank(found[j].Impact); ri != rj {
			return ri > rj
		}
		if found[i].Count != found[j].Count {
			return found[i].Count > found[j].Count
		}
		return detectionOrder[found[i].Type] < detectionOrder[found[j].Type]
	})
	return found
}

func detectStalled(tasks []domain.Task, now time.Time, stalenessDays int) []contract.Bottleneck {
	cutoff := now.AddDate(0, 0, -stalenessDays)
	var affected []string
	for i := range tasks {
		t := &tasks[i]
		if t.Status == domain.TaskInProgress && !t.UpdatedAt.IsZero() && t.UpdatedAt.Before(cutoff) {
			affected = append(affected, t.ID)
		}
	}
	if len(affected) == 0 {
		return nil
	}
	impact := domain.ImpactMedium
	if len(affected) >= stalledHighThreshold {
		impact = domain.ImpactHigh
	}
	return []contract.Bottleneck{{
		Type:            domain.BottleneckStalledTasks,
		Impact:          impact,
		Count:           len(affected),
		Suggestion:      fmt.Sprintf("Review tasks with no activity in %d+ days", stalenessDays),
		AffectedTaskIDs: affected,
	}}
}

// detectOverdueClusters groups overdue open tasks by initiative; tasks
// without an initiative form their own cluster.
func detectOverdueClusters(tasks []domain.Task, now time.Time) []contract.Bottleneck {
	clusters := make(map[string][]string)
	for i := range tasks {
		t := &tasks[i]
		if !t.IsOverdue(now) {
			continue
		}
		key := ""
		if t.InitiativeID != nil {
			key = *t.InitiativeID
		}
		clusters[key] = append(clusters[key], t.ID)
	}

	keys := make([]string, 0, len(clusters))
	for k := range clusters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var found []contract.Bottleneck
	for _, key := range keys {
		ids := clusters[key]
		impact := domain.ImpactMedium
		if len(ids) >= clusterHighThreshold {
			impact = domain.ImpactHigh
		}
		suggestion := "Triage overdue tasks and reset realistic due dates"
		if key != "" {
			suggestion = fmt.Sprintf("Triage overdue tasks in initiative %s and reset realistic due dates", key)
		}
		found = append(found, contract.Bottleneck{
			Type:            domain.BottleneckOverdueCluster,
			Impact:          impact,
			Count:           len(ids),
			Suggestion:      suggestion,
			AffectedTaskIDs: ids,
		})
	}
	return found
}

// detectBlockedChains resolves blocker edges transitively and emits one
// bottleneck per maximal chain of length >= 2. A chain head is a blocked
// task nothing else waits on. Components with no such head are fully
// cyclic; each elects its smallest uncovered id as head, so every
// deadlocked cycle surfaces even alongside ordinary chains.
func detectBlockedChains(tasks []domain.Task, graph *blockerGraph) []contract.Bottleneck {
	var heads []string
	var cyclicCandidates []string
	for i := range tasks {
		t := &tasks[i]
		if t.Status != domain.TaskBlocked || len(graph.adj[t.ID]) == 0 {
			continue
		}
		if graph.hasDependents(t.ID) {
			cyclicCandidates = append(cyclicCandidates, t.ID)
			continue
		}
		heads = append(heads, t.ID)
	}
	sort.Strings(heads)
	sort.Strings(cyclicCandidates)

	seen := make(map[string]bool)
	var found []contract.Bottleneck
	emit := func(head string) {
		chain := graph.longestChainFrom(head)
		for _, id := range chain {
			seen[id] = true
		}
		if len(chain) < 2 {
			return
		}
		impact := domain.ImpactMedium
		if len(chain) >= chainHighThreshold {
			impact = domain.ImpactHigh
		}
		found = append(found, contract.Bottleneck{
			Type:            domain.BottleneckBlockedChain,
			Impact:          impact,
			Count:           len(chain),
			Suggestion:      "Unblock the chain's root task to release the downstream work",
			AffectedTaskIDs: chain,
		})
	}

	for _, head := range heads {
		if seen[head] {
			continue
		}
		emit(head)
	}
	// Candidates still uncovered sit in components with no true head.
	for _, id := range cyclicCandidates {
		if seen[id] {
			continue
		}
		emit(id)
	}
	return found
}

func detectMissingAssignment(tasks []domain.Task) []contract.Bottleneck {
	var affected []string
	for i := range tasks {
		t := &tasks[i]
		if t.AssigneeID == nil && t.Status != domain.TaskDone {
			affected = append(affected, t.ID)
		}
	}
	if len(affected) == 0 {
		return nil
	}
	return []contract.Bottleneck{{
		Type:            domain.BottleneckMissingAssignment,
		Impact:          domain.ImpactMedium,
		Count:           len(affected),
		Suggestion:      "Assign an owner to every open task",
		AffectedTaskIDs: affected,
	}}
}

func detectDecisionDelay(tasks []domain.Task, graph *blockerGraph, now time.Time, delayDays int) []contract.Bottleneck {
	cutoff := now.AddDate(0, 0, -delayDays)
	var affected []string
	blocksOthers := false
	for i := range tasks {
		t := &tasks[i]
		if t.Type != domain.TypeDecision || t.Status == domain.TaskDone {
			continue
		}
		if t.CreatedAt.IsZero() || !t.CreatedAt.Before(cutoff) {
			continue
		}
		affected = append(affected, t.ID)
		if graph.hasDependents(t.ID) {
			blocksOthers = true
		}
	}
	if len(affected) == 0 {
		return nil
	}
	impact := domain.ImpactMedium
	if blocksOthers {
		impact = domain.ImpactHigh
	}
	return []contract.Bottleneck{{
		Type:            domain.BottleneckDecisionDelay,
		Impact:          impact,
		Count:           len(affected),
		Suggestion:      fmt.Sprintf("Escalate decisions pending for %d+ days", delayDays),
		AffectedTaskIDs: affected,
	}}
}
