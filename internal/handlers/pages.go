package handlers

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed signup.html
var signupPage []byte

// SignupPage serves the static signup form. The form posts to
// /api/auth/signup, keeps its submit control busy while a request is in
// flight, shows the returned error inline, and redirects to the invoice
// dashboard on success.
func SignupPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", signupPage)
}
