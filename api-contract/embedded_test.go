package apicontract_test

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apicontract "github.com/vuxmai/product-updated-sink/api-contract"
)

func TestEmbeddedSpec(t *testing.T) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(apicontract.GetSpecBytes())
	require.NoError(t, err)
	require.NoError(t, doc.Validate(loader.Context))

	assert.NotNil(t, doc.Paths.Find("/integration/events/product-updated"))
	assert.NotNil(t, doc.Paths.Find("/healthz"))
}
