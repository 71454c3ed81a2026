package http

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoPathToSpec rewrites echo's :param segments into OpenAPI {param} form.
func echoPathToSpec(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, ":") {
			segments[i] = "{" + segment[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

func TestOpenAPIDocument(t *testing.T) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(filepath.Join("..", "..", "..", "..", "api", "openapi.yml"))
	require.NoError(t, err)
	require.NoError(t, doc.Validate(loader.Context))

	t.Run("describes every registered route", func(t *testing.T) {
		e := echo.New()
		NewServer(CommandHandlers{}, QueryHandlers{}).RegisterRoutes(e)

		for _, route := range e.Routes() {
			specPath := strings.TrimPrefix(echoPathToSpec(route.Path), "/api/v1")
			item := doc.Paths.Find(specPath)
			require.NotNilf(t, item, "route %s %s is missing from openapi.yml", route.Method, route.Path)
			assert.NotNilf(t, item.GetOperation(route.Method),
				"method %s for %s is missing from openapi.yml", route.Method, route.Path)
		}
	})

	t.Run("has no operations the server does not serve", func(t *testing.T) {
		e := echo.New()
		NewServer(CommandHandlers{}, QueryHandlers{}).RegisterRoutes(e)

		served := make(map[string]bool)
		for _, route := range e.Routes() {
			specPath := strings.TrimPrefix(echoPathToSpec(route.Path), "/api/v1")
			served[route.Method+" "+specPath] = true
		}

		for specPath, item := range doc.Paths.Map() {
			for method := range item.Operations() {
				assert.Truef(t, served[method+" "+specPath],
					"openapi.yml describes %s %s but no route serves it", method, specPath)
			}
		}
	})
}
