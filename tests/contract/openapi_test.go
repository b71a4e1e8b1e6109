//go:build contract

package contract

import (
	"sync"
	"testing"

	checks "github.com/orbit-sync/orbitspec/internal/contract"
	"github.com/orbit-sync/orbitspec/internal/specdoc"
	"github.com/stretchr/testify/require"
)

// specFile is the version-controlled Orbit API draft, relative to this package.
const specFile = "../../docs/openapi/backend-v1.yaml"

var (
	loadOnce sync.Once
	loadedOK *specdoc.Document
	loadErr  error
)

// spec loads the document once per test binary and hands every test the same
// read-only tree. A load failure is an infrastructure failure: it fails each
// test that needs the fixture, with the same cause.
func spec(t *testing.T) *specdoc.Document {
	t.Helper()
	loadOnce.Do(func() {
		loadedOK, loadErr = specdoc.Load(specFile)
	})
	require.NoError(t, loadErr, "contract fixture failed to load")
	return loadedOK
}

// requireCheck runs one named check from the battery and fails with its
// violations if any property does not hold.
func requireCheck(t *testing.T, id string) {
	t.Helper()
	c, ok := checks.Find(id)
	require.True(t, ok, "unknown check %q", id)
	result := checks.NewRunner(spec(t)).RunCheck(c)
	require.True(t, result.Passed, "violations: %+v", result.Violations)
}

func TestSpecLoads(t *testing.T) {
	info := spec(t).Info()
	require.Equal(t, "Orbit API v1", info.String("title"))
	require.Equal(t, "0.1.0-draft", info.String("version"))
}

func TestRequiredPathsPresent(t *testing.T) {
	requireCheck(t, "required-paths")
}

func TestProviderStatusEnum(t *testing.T) {
	enum := spec(t).At("components", "schemas", "Provider", "properties", "status").Strings("enum")
	require.Equal(t, []string{"active", "degraded", "error", "disabled"}, enum)
}

func TestExamplesPresentForCoreSchemas(t *testing.T) {
	requireCheck(t, "schema-examples")
}

func TestOperationExampleFields(t *testing.T) {
	requireCheck(t, "operation-example")
}

func TestAuthorizationResponsesPresent(t *testing.T) {
	requireCheck(t, "authorization-responses")
}

func TestPaginationHeadersPresent(t *testing.T) {
	requireCheck(t, "pagination-headers")
}

func TestSyncRunPostContract(t *testing.T) {
	requireCheck(t, "sync-run-post")
}

func TestSyncRunSummaryContract(t *testing.T) {
	requireCheck(t, "sync-run-summary")
}

func TestSyncSchemaProperties(t *testing.T) {
	requireCheck(t, "sync-schema")

	// The two status enums must agree exactly.
	doc := spec(t)
	providerEnum := doc.At("components", "schemas", "Provider", "properties", "status").Strings("enum")
	syncEnum := doc.At("components", "schemas", "Sync", "properties", "status").Strings("enum")
	require.Equal(t, providerEnum, syncEnum)
}
