package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultClassifierIsTest(t *testing.T) {
	c := DefaultClassifier{}

	assert.True(t, c.IsTest("testTransfer"))
	assert.True(t, c.IsTest("testFailTransfer"))
	assert.False(t, c.IsTest("transfer"))
	assert.False(t, c.IsTest("Test"))
}

func TestDefaultClassifierIsSetup(t *testing.T) {
	c := DefaultClassifier{}

	assert.True(t, c.IsSetup("setUp"))
	assert.True(t, c.IsSetup("setup"))
	assert.True(t, c.IsSetup("SETUP"))
	assert.False(t, c.IsSetup("setUpToken"))
}
