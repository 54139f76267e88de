package trace

import "strings"

// Classifier reports whether a decoded function belongs to the test
// harness rather than the contract under measurement. The execution
// engine's naming convention decides this, so it is injected rather than
// hardcoded into the report.
type Classifier interface {
	IsTest(name string) bool
	IsSetup(name string) bool
}

// DefaultClassifier implements the standard convention: test functions are
// prefixed "test" and the fixture function is "setUp" in any casing.
type DefaultClassifier struct{}

func (DefaultClassifier) IsTest(name string) bool {
	return strings.HasPrefix(name, "test")
}

func (DefaultClassifier) IsSetup(name string) bool {
	return strings.EqualFold(name, "setUp")
}
