package publish

import "github.com/pautahq/pauta/internal/domain"

// CanTransition reports whether a status change is allowed.
//
// The pre-publication stages (idea, draft, review, approved) form no enforced
// order: direct edits may move between any of them, schedule out of them, or
// pull a scheduled item back. The scheduled -> publishing -> published chain
// is driven by the publication worker, with failed reachable from either end
// of the chain and retryable back into it. Published is terminal.
func CanTransition(from, to domain.ItemStatus) bool {
	if from == to {
		return true
	}
	if domain.WorkflowStatuses[from] {
		return domain.WorkflowStatuses[to] || to == domain.ItemScheduled
	}
	switch from {
	case domain.ItemScheduled:
		return to == domain.ItemPublishing || to == domain.ItemFailed || domain.WorkflowStatuses[to]
	case domain.ItemPublishing:
		return to == domain.ItemPublished || to == domain.ItemFailed
	case domain.ItemFailed:
		return to == domain.ItemScheduled || to == domain.ItemPublishing || domain.WorkflowStatuses[to]
	case domain.ItemPublished:
		return false
	}
	return false
}
