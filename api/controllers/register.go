package controllers

import (
	"net/http"

	"github.com/averyhollis/stockroom-backend/api/responses"
	"github.com/averyhollis/stockroom-backend/api/validators"
	"github.com/averyhollis/stockroom-backend/internal/auth"
	pkgerrors "github.com/averyhollis/stockroom-backend/pkg/errors"
	"github.com/averyhollis/stockroom-backend/pkg/logger"
)

func Register(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.RegisterRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Register(r.Context(), body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "registered"})
	}
}
