// Package servers holds the HTTP wire types and the echo routing glue for
// api/openapi.json. Handlers implement ServerInterface.
//
// Both files are regenerated from the document with go generate.
package servers

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=types.cfg.yaml ../../../api/openapi.json
//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=server.cfg.yaml ../../../api/openapi.json
