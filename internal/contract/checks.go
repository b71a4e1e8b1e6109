package contract

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/orbit-sync/orbitspec/internal/models"
	"github.com/orbit-sync/orbitspec/internal/specdoc"
)

const (
	specTitle   = "Orbit API v1"
	specVersion = "0.1.0-draft"

	paginationHeader = "X-Next-Cursor"

	syncRunUpsertRef  = "#/components/schemas/SyncRunUpsertRequest"
	syncRunSummaryRef = "#/components/schemas/SyncRunAggregateSummary"
	syncRunRef        = "#/components/schemas/SyncRun"
	jsonContentType   = "application/json"
)

// The literal lists below are deliberate whitelists: the high-value paths
// and schemas whose shape must not regress, not a derivation of everything
// the document happens to declare.

var requiredPaths = []string{
	"/health",
	"/ready",
	"/providers",
	"/providers/{provider_id}",
	"/providers/{provider_id}/events",
	"/syncs",
	"/syncs/{sync_id}",
	"/sync-runs",
	"/sync-runs/summary",
	"/sync-runs/{run_id}",
	"/operations/{operation_id}",
	"/oauth/token",
	"/integrations/mcp/tools",
}

// publicPaths are served without bearer auth and are exempt from the
// 401/403 response requirement.
var publicPaths = map[string]struct{}{
	"/health":          {},
	"/ready":           {},
	"/meta":            {},
	"/oauth/token":     {},
	"/oauth/authorize": {},
	"/.well-known/oauth-authorization-server": {},
	"/.well-known/jwks.json":                  {},
	"/.well-known/mcp":                        {},
}

var coreSchemas = []string{
	"ProviderEvent",
	"ProviderEventCreate",
	"ProviderEventUpdate",
	"MergedSyncEvent",
	"Sync",
	"SyncRun",
	"Operation",
	"OperationAccepted",
	"SyncRunAccepted",
	"SyncRunUpsertRequest",
	"SyncRunAggregateSummary",
	"ConfigResponse",
	"LogsResponse",
}

var statusEnum = []string{"active", "degraded", "error", "disabled"}

var operationExampleFields = []string{
	"id",
	"kind",
	"status",
	"resource_type",
	"resource_id",
	"payload",
	"result",
	"error",
	"created_at",
	"started_at",
	"finished_at",
}

var operationStatuses = map[string]struct{}{
	"queued":    {},
	"running":   {},
	"succeeded": {},
	"failed":    {},
}

type pathMethod struct {
	path   string
	method string
}

var paginatedEndpoints = []pathMethod{
	{"/providers/{provider_id}/events", "get"},
	{"/operations", "get"},
	{"/syncs/{sync_id}/providers/{provider_id}/events", "get"},
	{"/sync-runs", "get"},
}

var authMethods = []string{"get", "post", "patch", "delete"}

var registry = []Check{
	{
		ID:          "metadata",
		Description: "info.title and info.version match the published draft",
		Run:         checkMetadata,
	},
	{
		ID:          "required-paths",
		Description: "every required path template is declared",
		Run:         checkRequiredPaths,
	},
	{
		ID:          "provider-status-enum",
		Description: "Provider.status enum carries the four states in order",
		Run:         checkProviderStatusEnum,
	},
	{
		ID:          "schema-examples",
		Description: "every core schema carries an example",
		Run:         checkSchemaExamples,
	},
	{
		ID:          "operation-example",
		Description: "the Operation example is complete and its status is valid",
		Run:         checkOperationExample,
	},
	{
		ID:          "authorization-responses",
		Description: "every secured operation declares 401 and 403 responses",
		Run:         checkAuthorizationResponses,
	},
	{
		ID:          "pagination-headers",
		Description: "paginated list endpoints declare the X-Next-Cursor header",
		Run:         checkPaginationHeaders,
	},
	{
		ID:          "sync-run-post",
		Description: "POST /sync-runs upserts via SyncRunUpsertRequest",
		Run:         checkSyncRunPost,
	},
	{
		ID:          "sync-run-summary",
		Description: "GET /sync-runs/summary takes the shared window parameters",
		Run:         checkSyncRunSummary,
	},
	{
		ID:          "sync-schema",
		Description: "Sync.status enum and Sync.runs items reference hold",
		Run:         checkSyncSchema,
	},
}

func violation(field, format string, args ...any) models.Violation {
	return models.Violation{Field: field, Message: fmt.Sprintf(format, args...)}
}

func checkMetadata(doc *specdoc.Document) []models.Violation {
	var out []models.Violation
	info := doc.Info()
	if got := info.String("title"); got != specTitle {
		out = append(out, violation("info.title", "expected %q, got %q", specTitle, got))
	}
	if got := info.String("version"); got != specVersion {
		out = append(out, violation("info.version", "expected %q, got %q", specVersion, got))
	}
	return out
}

func checkRequiredPaths(doc *specdoc.Document) []models.Violation {
	paths := doc.Paths()
	var missing []string
	for _, p := range requiredPaths {
		if !paths.Has(p) {
			missing = append(missing, p)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return []models.Violation{
		violation("paths", "missing path templates: %s", strings.Join(missing, ", ")),
	}
}

func checkProviderStatusEnum(doc *specdoc.Document) []models.Violation {
	return enumEquals(doc, "Provider", "status", statusEnum)
}

func checkSchemaExamples(doc *specdoc.Document) []models.Violation {
	var out []models.Violation
	schemas := doc.Schemas()
	for _, name := range coreSchemas {
		field := "components.schemas." + name
		schema := schemas.Map(name)
		if schema == nil {
			out = append(out, violation(field, "schema is not declared"))
			continue
		}
		if !schema.Has("example") {
			out = append(out, violation(field, "missing example"))
		}
	}
	return out
}

func checkOperationExample(doc *specdoc.Document) []models.Violation {
	field := "components.schemas.Operation.example"
	example := doc.Schema("Operation").Map("example")
	if example == nil {
		return []models.Violation{violation(field, "missing or not a mapping")}
	}

	var out []models.Violation
	for _, name := range operationExampleFields {
		if !example.Has(name) {
			out = append(out, violation(field, "missing field %q", name))
		}
	}
	if status := fmt.Sprint(example["status"]); !isOperationStatus(status) {
		out = append(out, violation(field+".status",
			"%q is not one of queued, running, succeeded, failed", status))
	}
	return out
}

func isOperationStatus(s string) bool {
	_, ok := operationStatuses[s]
	return ok
}

func checkAuthorizationResponses(doc *specdoc.Document) []models.Violation {
	var out []models.Violation
	paths := doc.Paths()
	for _, path := range paths.Keys() {
		if _, public := publicPaths[path]; public {
			continue
		}
		item := paths.Map(path)
		for _, method := range authMethods {
			op := item.Map(method)
			if op == nil {
				continue
			}
			responses := op.Map("responses")
			for _, code := range []string{"401", "403"} {
				if !responses.Has(code) {
					out = append(out, violation(
						fmt.Sprintf("paths.%s.%s.responses", path, method),
						"missing %s response", code))
				}
			}
		}
	}
	return out
}

func checkPaginationHeaders(doc *specdoc.Document) []models.Violation {
	var out []models.Violation
	paths := doc.Paths()
	for _, ep := range paginatedEndpoints {
		headers := paths.Map(ep.path).Map(ep.method).Map("responses").Map("200").Map("headers")
		if !headers.Has(paginationHeader) {
			out = append(out, violation(
				fmt.Sprintf("paths.%s.%s.responses.200.headers", ep.path, ep.method),
				"missing %s header", paginationHeader))
		}
	}
	return out
}

func checkSyncRunPost(doc *specdoc.Document) []models.Violation {
	post := doc.Paths().Map("/sync-runs").Map("post")
	if post == nil {
		return []models.Violation{violation("paths./sync-runs", "missing post operation")}
	}

	var out []models.Violation
	ref := post.Map("requestBody").Map("content").Map(jsonContentType).Map("schema").String("$ref")
	if ref != syncRunUpsertRef {
		out = append(out, violation("paths./sync-runs.post.requestBody",
			"expected request schema $ref %q, got %q", syncRunUpsertRef, ref))
	}
	responses := post.Map("responses")
	for _, code := range []string{"201", "200"} {
		if !responses.Has(code) {
			out = append(out, violation("paths./sync-runs.post.responses",
				"missing %s response", code))
		}
	}
	return out
}

func checkSyncRunSummary(doc *specdoc.Document) []models.Violation {
	get := doc.Paths().Map("/sync-runs/summary").Map("get")
	if get == nil {
		return []models.Violation{violation("paths./sync-runs/summary", "missing get operation")}
	}

	var out []models.Violation
	params := get.Slice("parameters")
	for _, name := range []string{"SyncIdParam", "FromParam", "ToParam"} {
		want := "#/components/parameters/" + name
		if !slices.ContainsFunc(params, func(p any) bool {
			return specdoc.AsMap(p).String("$ref") == want
		}) {
			out = append(out, violation("paths./sync-runs/summary.get.parameters",
				"missing parameter $ref %q", want))
		}
	}

	ref := get.Map("responses").Map("200").Map("content").Map(jsonContentType).Map("schema").String("$ref")
	if ref != syncRunSummaryRef {
		out = append(out, violation("paths./sync-runs/summary.get.responses.200",
			"expected response schema $ref %q, got %q", syncRunSummaryRef, ref))
	}
	return out
}

func checkSyncSchema(doc *specdoc.Document) []models.Violation {
	out := enumEquals(doc, "Sync", "status", statusEnum)
	itemsRef := doc.Schema("Sync").Map("properties").Map("runs").Map("items").String("$ref")
	if itemsRef != syncRunRef {
		out = append(out, violation("components.schemas.Sync.properties.runs.items",
			"expected $ref %q, got %q", syncRunRef, itemsRef))
	}
	return out
}

// enumEquals asserts that a schema property's enum matches want exactly,
// including order.
func enumEquals(doc *specdoc.Document, schema, property string, want []string) []models.Violation {
	field := fmt.Sprintf("components.schemas.%s.properties.%s.enum", schema, property)
	got := doc.Schema(schema).Map("properties").Map(property).Strings("enum")
	if !slices.Equal(got, want) {
		return []models.Violation{violation(field, "expected %v, got %v", want, got)}
	}
	return nil
}
