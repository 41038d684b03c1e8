package api

import (
    _ "embed"

    "github.com/pm5/Disfactory/internal/domain"
)

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen --config=cfg.yaml openapi.yaml

// Spec is the OpenAPI document the handlers in api.gen.go are generated from.
//
//go:embed openapi.yaml
var Spec []byte

// RollupBody and SummaryBody embed the domain trees so the generated response
// types keep their ordered JSON encoding.
type RollupBody struct {
    domain.Breakdown
}

type SummaryBody struct {
    domain.Summary
}
