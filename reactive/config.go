package reactive

// =============================================================================
// Development Mode
// =============================================================================

// DevMode enables development-time checks and panics for invalid operations.
// When true, primitives do extra validation and produce more verbose errors.
// When false (production), the same checks are skipped for minimal overhead.
//
// Set this at application startup:
//
//	func main() {
//	    reactive.DevMode = os.Getenv("PHILJS_DEV") == "1"
//	    // ...
//	}
var DevMode = false

// =============================================================================
// Effect write enforcement
// =============================================================================

// StrictEffectMode controls how effect-time signal writes are handled.
// This helps catch bugs where effects modify signals during their synchronous
// body, which can cause unexpected cascading effect runs.
type StrictEffectMode int

const (
	// StrictEffectOff disables effect-time write detection.
	// No warnings or errors for signal writes during effects.
	StrictEffectOff StrictEffectMode = iota

	// StrictEffectWarn logs a warning when an effect writes to a signal
	// without the AllowWrites() option. This is the recommended mode for
	// development to catch bugs without breaking existing code.
	StrictEffectWarn

	// StrictEffectPanic panics when an effect writes to a signal without
	// the AllowWrites() option. Use this mode to strictly enforce the rule
	// during testing or in strict development environments.
	StrictEffectPanic
)

// EffectStrictMode controls global effect-time write detection.
// Set this in your application initialization based on build mode.
//
// Example:
//
//	func init() {
//	    if os.Getenv("PHILJS_DEV") == "1" {
//	        reactive.EffectStrictMode = reactive.StrictEffectWarn
//	    }
//	}
var EffectStrictMode = StrictEffectOff

// DebugConfig controls debugging features for development.
// These settings affect logging and error messages.
type DebugConfig struct {
	// IncludeSourceLocations includes file:line in debug messages.
	// Useful for tracing signal/effect creation locations.
	// Default: false (for performance).
	IncludeSourceLocations bool

	// LogRawKeys logs signal persist keys and internal identifiers.
	// Useful for debugging resumable state issues.
	// Default: false.
	LogRawKeys bool

	// LogEffectRuns logs each effect run with timing information.
	// Useful for debugging performance issues.
	// Default: false.
	LogEffectRuns bool
}

// DefaultDebugConfig returns a DebugConfig with all debugging disabled.
// Enable individual options as needed for development.
func DefaultDebugConfig() DebugConfig {
	return DebugConfig{
		IncludeSourceLocations: false,
		LogRawKeys:             false,
		LogEffectRuns:          false,
	}
}

// Debug is the global debug configuration.
// Modify this at application startup to enable debugging features.
var Debug = DefaultDebugConfig()
