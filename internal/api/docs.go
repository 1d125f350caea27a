package api

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed openapi.json
var openAPIDocument []byte

const swaggerPage = `<!DOCTYPE html>
<html>
<head>
    <title>Volair API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@latest/swagger-ui.css">
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@latest/swagger-ui-bundle.js"></script>
    <script>
        window.onload = function() {
            window.ui = SwaggerUIBundle({
                url: "/api-docs/openapi.json",
                dom_id: '#swagger-ui'
            });
        };
    </script>
</body>
</html>`

// apiDocs serves the swagger UI page
func (s *Server) apiDocs(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerPage))
}

// openAPISpec serves the embedded OpenAPI document
func (s *Server) openAPISpec(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", openAPIDocument)
}
