package http

import (
	"net/http"
	"strings"

	"github.com/lensworks/crewdesk/pkg/domain/model/auth"
	"github.com/lensworks/crewdesk/pkg/domain/types"
	"github.com/lensworks/crewdesk/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
)

// publicPrefixes bypass the session gate entirely. The root path matches
// exactly; everything else matches by prefix.
var publicPrefixes = []string{
	"/login",
	"/signup",
	"/welcome",
	"/api/auth",
}

// RoleRoute binds a path prefix to the role allowed under it.
type RoleRoute struct {
	Prefix string
	Role   types.Role
}

// DefaultRoleRoutes is the built-in prefix→role table. A config file may
// replace it at startup.
func DefaultRoleRoutes() []RoleRoute {
	return []RoleRoute{
		{Prefix: "/api/employee", Role: types.RoleEmployee},
		{Prefix: "/dashboard/employee", Role: types.RoleEmployee},
		{Prefix: "/api/executive", Role: types.RoleExecutive},
		{Prefix: "/dashboard/executive", Role: types.RoleExecutive},
	}
}

func isPublicPath(path string) bool {
	if path == "/" {
		return true
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}

// authMiddleware validates the session cookie and enforces the role-route
// table. API paths answer with JSON error bodies; page paths redirect, to
// /login when unauthenticated and to the caller's own dashboard on a role
// mismatch.
func authMiddleware(authUC AuthUseCase, roleRoutes []RoleRoute) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if isPublicPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(auth.CookieName)
			if err != nil || cookie.Value == "" {
				denyUnauthenticated(w, r, goerr.New("missing session cookie"))
				return
			}

			sess, err := authUC.ValidateToken(r.Context(), cookie.Value)
			if err != nil {
				denyUnauthenticated(w, r, err)
				return
			}

			for _, route := range roleRoutes {
				if strings.HasPrefix(path, route.Prefix) && sess.Role != route.Role {
					if isAPIPath(path) {
						errutil.HandleHTTP(r.Context(), w,
							goerr.New("role mismatch",
								goerr.V("path", path),
								goerr.V("role", sess.Role)),
							http.StatusForbidden, "insufficient role")
					} else {
						http.Redirect(w, r, sess.Role.DashboardPath(), http.StatusSeeOther)
					}
					return
				}
			}

			ctx := auth.ContextWithSession(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func denyUnauthenticated(w http.ResponseWriter, r *http.Request, err error) {
	if isAPIPath(r.URL.Path) {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusUnauthorized, "authentication required")
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
