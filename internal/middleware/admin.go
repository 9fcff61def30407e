package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionKeyAdmin marks a session as belonging to a logged-in administrator.
// Its lifecycle is independent of the training-flow session values.
const SessionKeyAdmin = "admin_logged_in"

// AdminRequired guards restricted routes: without the admin session flag the
// request is redirected to the login page and the handler never runs.
func AdminRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sess := sessions.Default(ctx)
		if logged, ok := sess.Get(SessionKeyAdmin).(bool); !ok || !logged {
			ctx.Redirect(http.StatusFound, "/admin/login")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
