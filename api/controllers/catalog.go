package controllers

import (
	"net/http"

	"github.com/averyhollis/stockroom-backend/api/responses"
	"github.com/averyhollis/stockroom-backend/internal/catalog"
	pkgerrors "github.com/averyhollis/stockroom-backend/pkg/errors"
	"github.com/averyhollis/stockroom-backend/pkg/logger"
)

func ListItemTypes(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := repo.ListItemTypes(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list item types"))
			return
		}
		responses.WriteSuccess(w, catalog.ItemTypeViews(rows))
	}
}

func ListLocations(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := repo.ListLocations(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list locations"))
			return
		}
		responses.WriteSuccess(w, catalog.LocationViews(rows))
	}
}

func ListBuildings(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := repo.ListBuildings(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list buildings"))
			return
		}
		responses.WriteSuccess(w, catalog.BuildingViews(rows))
	}
}
