package response

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lawfirm-backend/internal/shared/flash"
)

// WantsJSON reports whether the client expects a JSON answer rather than a
// redirect. HTML form posts get redirect + flash, API clients get the envelope.
func WantsJSON(c *gin.Context) bool {
	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		return true
	}
	return strings.HasPrefix(c.ContentType(), "application/json")
}

// Page answers a page GET with its data and any flashed messages
func Page(c *gin.Context, data interface{}) {
	resp := Response{Success: true, Data: data}
	if msgs := flash.Get(c); !msgs.IsEmpty() {
		resp.Flash = &msgs
	}
	c.JSON(http.StatusOK, resp)
}

// Done answers a successful mutation: the JSON envelope with the message, or a
// 303 redirect to location with the message flashed.
func Done(c *gin.Context, status int, location, message string, data interface{}) {
	if WantsJSON(c) {
		SuccessMessage(c, status, message, data)
		return
	}
	flash.Put(c, flash.Messages{Success: message})
	c.Redirect(http.StatusSeeOther, location)
}

// Invalid answers a validation failure: 422 with field errors, or a redirect
// back to the form with the errors and the submitted input flashed.
func Invalid(c *gin.Context, fields map[string]string, old map[string]string) {
	if WantsJSON(c) {
		ValidationFailed(c, fields)
		return
	}
	flash.Put(c, flash.Messages{Errors: fields, Old: old})
	c.Redirect(http.StatusSeeOther, back(c))
}

// back is the referring page, or the request path when there is none
func back(c *gin.Context) string {
	return Back(c, c.Request.URL.Path)
}

// Back is the referring page, or fallback when the client sent none
func Back(c *gin.Context, fallback string) string {
	if ref := c.GetHeader("Referer"); ref != "" {
		return ref
	}
	return fallback
}

// OldInput collects the submitted form values for re-populating a form
func OldInput(c *gin.Context) map[string]string {
	if c.Request.PostForm == nil {
		_ = c.Request.ParseMultipartForm(32 << 20)
	}
	old := map[string]string{}
	for k, v := range c.Request.PostForm {
		if len(v) > 0 {
			old[k] = v[0]
		}
	}
	return old
}
