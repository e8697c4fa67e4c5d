package controllers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/averyhollis/stockroom-backend/api/middleware"
	"github.com/averyhollis/stockroom-backend/api/responses"
	"github.com/averyhollis/stockroom-backend/api/validators"
	"github.com/averyhollis/stockroom-backend/internal/items"
	pkgerrors "github.com/averyhollis/stockroom-backend/pkg/errors"
	"github.com/averyhollis/stockroom-backend/pkg/logger"
	"github.com/averyhollis/stockroom-backend/pkg/pagination"
)

// maxIntakeBytes bounds the multipart intake body, image included.
const maxIntakeBytes = 16 << 20

// ItemIntake records a new item from a multipart form carrying the item
// fields plus the photographic evidence under the "file" part.
func ItemIntake(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := middleware.ActingUserFromContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, maxIntakeBytes)
		if err := r.ParseMultipartForm(maxIntakeBytes); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart body"))
			return
		}

		locID, err := strconv.ParseInt(strings.TrimSpace(r.PostFormValue("loc_id")), 10, 64)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "loc_id must be numeric"))
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "item image is required"))
			return
		}
		defer file.Close()

		image, err := io.ReadAll(file)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "read item image"))
			return
		}

		input := items.IntakeInput{
			ItemType:   strings.TrimSpace(r.PostFormValue("item_type")),
			LocationID: locID,
			Serial:     strings.TrimSpace(r.PostFormValue("serial")),
			Part:       strings.TrimSpace(r.PostFormValue("part")),
			Madlib:     r.PostFormValue("madlib"),
			Image:      image,
		}
		if input.ItemType == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "item_type is required"))
			return
		}

		view, err := svc.Intake(r.Context(), input, actor)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, view)
	}
}

// ItemSearch runs the filtered inventory query. All filters are optional
// equality predicates; skip and limit page the result.
func ItemSearch(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := items.Filter{}

		id, err := validators.ParseOptionalQueryInt64(r, "item_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter.ID = id

		locID, err := validators.ParseOptionalQueryInt64(r, "loc_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter.LocationID = locID

		filter.ItemType = validators.ParseOptionalQueryString(r, "item_type")
		filter.Serial = validators.ParseOptionalQueryString(r, "serial")
		filter.Part = validators.ParseOptionalQueryString(r, "part")

		skip, err := validators.ParseQueryInt(r, "skip", 0)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		views, err := svc.Search(r.Context(), filter, pagination.Page{Skip: skip, Limit: limit})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, views)
	}
}

// ItemImage serves the stored image bytes for one item.
func ItemImage(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := validators.ParsePathInt64(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		image, err := svc.Image(r.Context(), itemID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(image); err != nil && logg != nil {
			logg.Error(r.Context(), "write image response", err)
		}
	}
}

// ItemMove relocates an item and replaces its annotation.
func ItemMove(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := middleware.ActingUserFromContext(r.Context())

		itemID, err := validators.ParsePathInt64(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body items.MoveInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Move(r.Context(), itemID, body, actor); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "moved"})
	}
}

// ItemShip opens a shipment for an item bound to a destination address.
func ItemShip(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := middleware.ActingUserFromContext(r.Context())

		itemID, err := validators.ParsePathInt64(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		address := strings.TrimSpace(r.URL.Query().Get("address"))
		if address == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "address is required"))
			return
		}

		view, err := svc.Ship(r.Context(), itemID, address, actor)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, view)
	}
}
