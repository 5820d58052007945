package port

// Step is a single text transformation in a cleaning chain.
type Step interface {
	Name() string

	Apply(text string) (string, error)
}
