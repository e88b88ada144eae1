package domain

import "errors"

// ============================================================================
// Simulation Parameter Errors
// ============================================================================

var (
	ErrInvalidDuration          = errors.New("simulation duration must be at least 1 month")
	ErrInvalidTotalSupply       = errors.New("total supply must be greater than zero")
	ErrInvalidCirculatingSupply = errors.New("initial circulating supply must be between 0 and total supply")
	ErrInvalidAllocationPct     = errors.New("allocation percentage must be between 0 and 1")
	ErrAllocationSumExceedsOne  = errors.New("allocation percentages cannot sum to more than 1")
	ErrInvalidBurnPct           = errors.New("transaction fee burn percentage must be between 0 and 1")
	ErrNegativeSchedule         = errors.New("cliff and vesting durations cannot be negative")
	ErrNegativeEmission         = errors.New("emission and transaction volume cannot be negative")
)

// ============================================================================
// Scenario Errors
// ============================================================================

// Not found errors
var (
	ErrScenarioNotFound = errors.New("scenario not found")
	ErrRunNotFound      = errors.New("simulation run not found")
)

// Conflict errors
var (
	ErrScenarioNameConflict = errors.New("scenario with this name already exists")
)

// Validation errors
var (
	ErrInvalidScenarioName = errors.New("scenario name is required")
)

// ============================================================================
// Risk Analysis Errors
// ============================================================================

var (
	ErrEmptySimulationData    = errors.New("simulation data is required")
	ErrAmbiguousAnalysisInput = errors.New("provide either simulation_data or run_id, not both")
	ErrAdvisorNotAvailable    = errors.New("risk advisor is not configured")
	ErrAdvisorRequestFailed   = errors.New("risk advisor request failed")
	ErrAdvisorEmptyResponse   = errors.New("risk advisor returned an empty response")
)

// ============================================================================
// Report Errors
// ============================================================================

var (
	ErrReportNotFound = errors.New("report not found")
)

// ============================================================================
// Environment Errors
// ============================================================================

var (
	ErrEnvironmentNotLoaded = errors.New("environment descriptor not loaded")
)
