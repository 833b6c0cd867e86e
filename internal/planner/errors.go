package planner

import "errors"

var (
	// ErrNoTimeProfiles indicates the catalog has no rows for the requested units.
	ErrNoTimeProfiles = errors.New("no time profiles found for selected units")
	// ErrPlanNotFound indicates the plan does not exist.
	ErrPlanNotFound = errors.New("study plan not found")
	// ErrPlanNotActive indicates an operation that requires an active plan.
	ErrPlanNotActive = errors.New("study plan is not active")
)
