// Package flash carries one-shot messages across a redirect: set on the
// response that redirects, read and cleared on the next request.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CookieName = "flash"
	contextKey = "flash"

	// old input values longer than this are not carried (cookie size limit)
	maxOldValueLen = 500
	// encoded cookie value budget, under the 4096 byte browser limit with
	// room left for the name and attributes
	maxEncodedLen = 3800
)

// Messages is the request-scoped flash bag
type Messages struct {
	Success string            `json:"success,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Old     map[string]string `json:"old,omitempty"`
}

func (m Messages) IsEmpty() bool {
	return m.Success == "" && m.Error == "" && len(m.Errors) == 0 && len(m.Old) == 0
}

// Middleware loads the flash set by the previous response and clears the cookie
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(CookieName)
		if err == nil && raw != "" {
			if msgs, ok := decode(raw); ok {
				c.Set(contextKey, msgs)
			}
			expire(c)
		}
		c.Next()
	}
}

// Get returns the flash loaded for this request (zero value when none)
func Get(c *gin.Context) Messages {
	if v, ok := c.Get(contextKey); ok {
		if msgs, ok := v.(Messages); ok {
			return msgs
		}
	}
	return Messages{}
}

// Put stores msgs for the next request
func Put(c *gin.Context, msgs Messages) {
	if len(msgs.Old) > 0 {
		kept := make(map[string]string, len(msgs.Old))
		for k, v := range msgs.Old {
			if len(v) <= maxOldValueLen {
				kept[k] = v
			}
		}
		msgs.Old = kept
	}

	value, ok := encode(msgs)
	if ok && len(value) > maxEncodedLen {
		// old input goes first, the field errors only if still over
		msgs.Old = nil
		value, ok = encode(msgs)
		if ok && len(value) > maxEncodedLen {
			msgs.Errors = nil
			value, ok = encode(msgs)
		}
	}
	if !ok || len(value) > maxEncodedLen {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, 300, "/", "", false, true)
}

func encode(msgs Messages) (string, bool) {
	raw, err := json.Marshal(msgs)
	if err != nil {
		return "", false
	}
	return base64.RawURLEncoding.EncodeToString(raw), true
}

func expire(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

func decode(raw string) (Messages, bool) {
	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return Messages{}, false
	}
	var msgs Messages
	if err := json.Unmarshal(data, &msgs); err != nil {
		return Messages{}, false
	}
	return msgs, true
}
