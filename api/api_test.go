package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRegistrySpec(t *testing.T) {
	doc, err := LoadRegistrySpec()
	require.NoError(t, err)

	for _, path := range []string{"/register", "/deregister", "/heartbeat", "/services", "/journeys", "/healthz"} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
	assert.NotNil(t, doc.Paths.Find("/heartbeat").Post)
	assert.NotNil(t, doc.Paths.Find("/journeys").Get)
}
