package main

import (
	"errors"
	"testing"
	"time"

	"myregistry/scenario"

	"github.com/stretchr/testify/assert"
)

func TestReport_ExitCodes(t *testing.T) {
	assert.Equal(t, exitPassed, report("basic_workflow", time.Second, nil))
	assert.Equal(t, exitFailed, report("basic_workflow", time.Second, errors.New("register: boom")))
	assert.Equal(t, exitUsage, report("nope", 0, &scenario.UnknownScenarioError{Name: "nope"}))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "http://flag", firstNonEmpty("http://flag", "http://env", defaultRegistry))
	assert.Equal(t, "http://env", firstNonEmpty("", "http://env", defaultRegistry))
	assert.Equal(t, defaultRegistry, firstNonEmpty("", "", defaultRegistry))
	assert.Equal(t, "", firstNonEmpty())
}
