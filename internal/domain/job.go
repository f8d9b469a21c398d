package domain

import "github.com/google/uuid"

type RevaluationJobStatus string

const (
	JobPending    RevaluationJobStatus = "pending"
	JobProcessing RevaluationJobStatus = "processing"
	JobCompleted  RevaluationJobStatus = "completed"
	JobFailed     RevaluationJobStatus = "failed"
)

type RevaluationScopeKind string

const (
	ScopeListing   RevaluationScopeKind = "listing"
	ScopeComponent RevaluationScopeKind = "component"
	ScopeAll       RevaluationScopeKind = "all"
)

type RevaluationReason string

const (
	ReasonRuleChanged      RevaluationReason = "rule_changed"
	ReasonProfileChanged   RevaluationReason = "profile_changed"
	ReasonBenchmarkUpdated RevaluationReason = "benchmark_updated"
	ReasonPriceChanged     RevaluationReason = "price_changed"
	ReasonManual           RevaluationReason = "manual"
)

// RevaluationScope identifies what a queued recompute covers. ScopeID is
// nil only for ScopeAll.
type RevaluationScope struct {
	Kind RevaluationScopeKind
	ID   *uuid.UUID
}
