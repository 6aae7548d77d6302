package pricing

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPercentage   = errors.New("discount percentage must be between 0 and 100")
	ErrInvalidThreshold    = errors.New("progressive threshold must be positive")
	ErrAllocationExhausted = errors.New("group discount allocation exhausted")
	ErrRuleExpired         = errors.New("group discount deadline has passed")
)

// GroupDiscountRule is the "running club" rule: a base percentage for members
// plus an optional progressive tier unlocked by party size.
type GroupDiscountRule struct {
	ID                   uuid.UUID  `json:"id"`
	Code                 string     `json:"code"`
	BasePercent          float64    `json:"basePercent"`
	ProgressivePercent   *float64   `json:"progressivePercent,omitempty"`
	ProgressiveThreshold *int       `json:"progressiveThreshold,omitempty"`
	AllocationGranted    int        `json:"allocationGranted"`
	AllocationUsed       int        `json:"allocationUsed"`
	Deadline             *time.Time `json:"deadline,omitempty"`
}

func (r *GroupDiscountRule) Validate() error {
	if r.BasePercent < 0 || r.BasePercent > 100 {
		return ErrInvalidPercentage
	}
	if r.ProgressivePercent != nil {
		if *r.ProgressivePercent < 0 || *r.ProgressivePercent > 100 {
			return ErrInvalidPercentage
		}
		if r.ProgressiveThreshold == nil || *r.ProgressiveThreshold <= 0 {
			return ErrInvalidThreshold
		}
	}
	return nil
}

// CheckUsable verifies the rule can still discount n more seats at now.
func (r *GroupDiscountRule) CheckUsable(now time.Time, n int) error {
	if r.Deadline != nil && now.After(*r.Deadline) {
		return ErrRuleExpired
	}
	if r.AllocationUsed+n > r.AllocationGranted {
		return ErrAllocationExhausted
	}
	return nil
}

// EffectivePercent is the total percentage applied for a party of the given size.
// The tiers add up on the original amount; they are not compounded.
func (r *GroupDiscountRule) EffectivePercent(participantCount int) float64 {
	if r == nil {
		return 0
	}
	pct := r.BasePercent
	if r.ProgressivePercent != nil && r.ProgressiveThreshold != nil && participantCount >= *r.ProgressiveThreshold {
		pct += *r.ProgressivePercent
	}
	return pct
}
