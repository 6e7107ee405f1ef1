package extractor

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pb33f/libopenapi"
	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"

	"github.com/goliatone/go-apicatalog/pkg/catalog"
	pkgopenapi "github.com/goliatone/go-apicatalog/pkg/openapi"
)

// successCodes is the fixed scan order for response examples. The first code
// present with application/json content wins; later codes are never merged in.
var successCodes = [...]string{"200", "201", "202", "204"}

// Extractor implements catalog.Extractor on top of the libopenapi v3 model.
// The ordered path and property maps of that model are what make repeat
// extractions byte-identical.
type Extractor struct {
	logger   *slog.Logger
	sanitize bool
}

// Ensure the implementation satisfies the public interface.
var _ catalog.Extractor = (*Extractor)(nil)

// New constructs an Extractor from pre-resolved options.
func New(options catalog.ExtractorOptions) catalog.Extractor {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		logger:   logger,
		sanitize: options.SanitizeText,
	}
}

// Extract walks every path of the contract and returns one record per
// (path, method) pair. Extraction is best-effort: document-model failures
// degrade the result instead of surfacing as errors.
func (e *Extractor) Extract(ctx context.Context, doc pkgopenapi.Document) catalog.Result {
	endpoints := make([]catalog.Endpoint, 0)

	if err := ctx.Err(); err != nil {
		return catalog.Result{Endpoints: endpoints, Outcome: catalog.OutcomeDegraded, Err: err}
	}

	raw := doc.Raw()
	if len(raw) == 0 {
		e.logger.Warn("contract is empty", "source", doc.Location())
		return catalog.Result{Endpoints: endpoints, Outcome: catalog.OutcomeEmpty}
	}

	contract, err := libopenapi.NewDocument(raw)
	if err != nil {
		e.logger.Warn("contract could not be read", "source", doc.Location(), "error", err)
		return catalog.Result{Endpoints: endpoints, Outcome: catalog.OutcomeDegraded, Err: err}
	}

	model, buildErrs := contract.BuildV3Model()
	if model == nil {
		err := errors.Join(buildErrs...)
		e.logger.Warn("contract model could not be built", "source", doc.Location(), "error", err)
		return catalog.Result{Endpoints: endpoints, Outcome: catalog.OutcomeDegraded, Err: err}
	}

	paths := model.Model.Paths
	if paths == nil || paths.PathItems == nil || paths.PathItems.Len() == 0 {
		e.logger.Warn("contract has no paths", "source", doc.Location())
		return catalog.Result{Endpoints: endpoints, Outcome: catalog.OutcomeEmpty}
	}

	for pair := paths.PathItems.First(); pair != nil; pair = pair.Next() {
		if ctx.Err() != nil {
			break
		}
		path := pair.Key()
		item := pair.Value()
		if item == nil {
			continue
		}

		e.collect(&endpoints, path, "GET", item.Get)
		e.collect(&endpoints, path, "POST", item.Post)
		e.collect(&endpoints, path, "PUT", item.Put)
		e.collect(&endpoints, path, "DELETE", item.Delete)
		e.collect(&endpoints, path, "PATCH", item.Patch)
	}

	e.logger.Info("contract extracted", "source", doc.Location(), "endpoints", len(endpoints))

	outcome := catalog.OutcomeComplete
	var resultErr error
	if len(buildErrs) > 0 {
		// The model built with errors; whatever was walked is still usable.
		outcome = catalog.OutcomeDegraded
		resultErr = errors.Join(buildErrs...)
		e.logger.Warn("contract model built with errors", "source", doc.Location(), "error", resultErr)
	}

	return catalog.Result{Endpoints: endpoints, Outcome: outcome, Err: resultErr}
}

// collect appends one record when the operation is defined for the method.
func (e *Extractor) collect(endpoints *[]catalog.Endpoint, path, method string, op *v3.Operation) {
	if op == nil {
		return
	}

	record := catalog.Endpoint{
		Method:      method,
		Path:        path,
		Summary:     e.text(op.Summary),
		Description: e.text(op.Description),
		Parameters:  e.parameters(op),
	}

	record.RequestBodyExample = requestExample(op.RequestBody)
	record.ResponseExample = responseExample(op.Responses)

	*endpoints = append(*endpoints, record)
	e.logger.Debug("endpoint extracted", "method", method, "path", path)
}

func (e *Extractor) parameters(op *v3.Operation) []catalog.Parameter {
	params := make([]catalog.Parameter, 0, len(op.Parameters))
	for _, param := range op.Parameters {
		if param == nil {
			continue
		}

		record := catalog.Parameter{
			Name:        param.Name,
			In:          param.In,
			Description: e.text(param.Description),
		}
		if param.Required != nil {
			record.Required = *param.Required
		}

		var schema *base.Schema
		if param.Schema != nil {
			schema = param.Schema.Schema()
		}
		if schema != nil {
			record.Type = firstType(schema.Type)
		} else {
			record.Type = "string"
		}

		// The parameter's own example wins over the one on its schema.
		if !nilNode(param.Example) {
			record.Example = plainValue(param.Example)
		} else if schema != nil && !nilNode(schema.Example) {
			record.Example = plainValue(schema.Example)
		}

		params = append(params, record)
	}
	return params
}

// requestExample synthesizes a body example from the application/json media
// type. Other media types are ignored.
func requestExample(body *v3.RequestBody) string {
	if body == nil || body.Content == nil {
		return ""
	}
	media := body.Content.GetOrZero("application/json")
	if media == nil || media.Schema == nil {
		return ""
	}
	schema := media.Schema.Schema()
	if schema == nil {
		return ""
	}
	return Example(schema)
}

// responseExample scans the success codes in order and synthesizes from the
// first response carrying application/json content with a schema.
func responseExample(responses *v3.Responses) string {
	if responses == nil || responses.Codes == nil {
		return ""
	}
	for _, code := range successCodes {
		response := responses.Codes.GetOrZero(code)
		if response == nil || response.Content == nil {
			continue
		}
		media := response.Content.GetOrZero("application/json")
		if media == nil || media.Schema == nil {
			continue
		}
		schema := media.Schema.Schema()
		if schema == nil {
			continue
		}
		return Example(schema)
	}
	return ""
}

func (e *Extractor) text(raw string) string {
	if !e.sanitize {
		return raw
	}
	return sanitizeText(raw)
}

// firstType returns the first declared schema type, empty when none.
func firstType(types []string) string {
	if len(types) == 0 {
		return ""
	}
	return types[0]
}
