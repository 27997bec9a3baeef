package models

// WarningCode categorizes warnings by subsystem.
// K1xxx = holdings/weights, K2xxx = return resolution, K3xxx = classification
// fallbacks, K4xxx = ticker classification.
type WarningCode string

const (
	WarnWeightsRenormalized  WarningCode = "K1001" // holding weights didn't sum to 1.0 and were renormalized
	WarnMissingClassReturn   WarningCode = "K1002" // holding's asset class had no resolved return; large-cap substituted
	WarnReturnOutOfRange     WarningCode = "K2001" // resolved return outside the -95%..+300% sanity band
	WarnEstimateTierUsed     WarningCode = "K2002" // asset-class return came from the scenario fallback estimate
	WarnKeywordFallback      WarningCode = "K3001" // scenario came from keyword matching, not the generative classifier
	WarnStaticAnalogFallback WarningCode = "K3002" // analog came from the static scenario table
	WarnLowConfidenceTicker  WarningCode = "K4001" // ticker classification degraded to the low-confidence default
)

// Warning represents a non-fatal issue encountered during scoring.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
