package controllers

import (
	"net/http"

	"github.com/averyhollis/stockroom-backend/api/responses"
	"github.com/averyhollis/stockroom-backend/internal/auth"
	pkgerrors "github.com/averyhollis/stockroom-backend/pkg/errors"
	"github.com/averyhollis/stockroom-backend/pkg/logger"
)

// AuthToken wires the login endpoint into the HTTP layer. Credentials arrive
// as form fields, matching the password-grant shape front ends post.
func AuthToken(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := r.ParseForm(); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid form body"))
			return
		}

		body := auth.LoginRequest{
			Username: r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, result)
	}
}
