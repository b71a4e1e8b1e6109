// Package openapi wraps libopenapi for the commands that need a built
// OpenAPI v3 model: operation listing and the up-front "document is valid
// OpenAPI" gate. Contract checks do not use this package; they run over the
// raw YAML tree so that unresolved $ref literals stay observable.
package openapi

import (
	"fmt"
	"os"

	"github.com/orbit-sync/orbitspec/internal/models"
	"github.com/pb33f/libopenapi"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
)

// Parser handles parsing OpenAPI specification files
type Parser struct {
	document libopenapi.Document
}

// ParseFile parses an OpenAPI specification file and returns a Parser instance
func ParseFile(filePath string) (*Parser, error) {
	specBytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenAPI file: %w", err)
	}

	document, err := libopenapi.NewDocument(specBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
	}

	return &Parser{document: document}, nil
}

// Title returns the document's info.title, or "" when absent.
func (p *Parser) Title() (string, error) {
	model, errs := p.document.BuildV3Model()
	if errs != nil {
		return "", fmt.Errorf("failed to build v3 model: %v", errs)
	}
	if model.Model.Info == nil {
		return "", nil
	}
	return model.Model.Info.Title, nil
}

// GetServerURLs returns the server URLs from the OpenAPI spec
func (p *Parser) GetServerURLs() ([]string, error) {
	model, errs := p.document.BuildV3Model()
	if errs != nil {
		return nil, fmt.Errorf("failed to build v3 model: %v", errs)
	}

	servers := model.Model.Servers
	if len(servers) == 0 {
		return nil, nil
	}

	urls := make([]string, 0, len(servers))
	for _, server := range servers {
		if server != nil && server.URL != "" {
			urls = append(urls, server.URL)
		}
	}

	return urls, nil
}

// methodOrder fixes the listing order of operations within a path item.
var methodOrder = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}

// GetOperations extracts all operations from the OpenAPI spec, in document
// order for paths and methodOrder within each path.
func (p *Parser) GetOperations() ([]models.Operation, error) {
	model, errs := p.document.BuildV3Model()
	if errs != nil {
		return nil, fmt.Errorf("failed to build v3 model: %v", errs)
	}

	var operations []models.Operation
	paths := model.Model.Paths

	if paths == nil || paths.PathItems == nil {
		return operations, nil
	}

	for pair := paths.PathItems.First(); pair != nil; pair = pair.Next() {
		path := pair.Key()
		item := pair.Value()
		if item == nil {
			continue
		}

		for _, method := range methodOrder {
			op := operationByMethod(item, method)
			if op == nil {
				continue
			}

			operations = append(operations, models.Operation{
				Path:        path,
				Method:      method,
				OperationID: op.OperationId,
				Tags:        append([]string(nil), op.Tags...),
				Deprecated:  op.Deprecated != nil && *op.Deprecated,
			})
		}
	}

	return operations, nil
}

func operationByMethod(item *v3.PathItem, method string) *v3.Operation {
	switch method {
	case "GET":
		return item.Get
	case "POST":
		return item.Post
	case "PUT":
		return item.Put
	case "PATCH":
		return item.Patch
	case "DELETE":
		return item.Delete
	case "HEAD":
		return item.Head
	case "OPTIONS":
		return item.Options
	default:
		return nil
	}
}
