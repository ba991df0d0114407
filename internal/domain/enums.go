package domain

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskBlocked    TaskStatus = "blocked"
	TaskDone       TaskStatus = "done"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

type ImpactLevel string

const (
	ImpactLow    ImpactLevel = "low"
	ImpactMedium ImpactLevel = "medium"
	ImpactHigh   ImpactLevel = "high"
)

type BottleneckType string

const (
	BottleneckStalledTasks      BottleneckType = "stalled_tasks"
	BottleneckOverdueCluster    BottleneckType = "overdue_cluster"
	BottleneckBlockedChain      BottleneckType = "blocked_chain"
	BottleneckMissingAssignment BottleneckType = "missing_assignment"
	BottleneckDecisionDelay     BottleneckType = "decision_delay"
)

type WorkloadStatus string

const (
	WorkloadAvailable  WorkloadStatus = "available"
	WorkloadAtCapacity WorkloadStatus = "at_capacity"
	WorkloadOverloaded WorkloadStatus = "overloaded"
)

type TaskType string

const (
	TypeTask     TaskType = "task"
	TypeDecision TaskType = "decision"
	TypeReview   TaskType = "review"
	TypeResearch TaskType = "research"
)

// ValidTaskTypes is the canonical set of accepted task type strings.
var ValidTaskTypes = map[string]bool{
	"task": true, "decision": true, "review": true, "research": true,
}

// impactRank orders impact levels for sorting, higher is worse.
var impactRank = map[ImpactLevel]int{
	ImpactLow:    0,
	ImpactMedium: 1,
	ImpactHigh:   2,
}

// ImpactRank returns a sortable rank for an impact level.
func ImpactRank(i ImpactLevel) int {
	return impactRank[i]
}
