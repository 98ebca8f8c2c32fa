package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/checkoutewb/backend/internal/utils"
	"github.com/checkoutewb/backend/models"
)

// Item photos arrive inline as multipart uploads, capped well above any
// reasonable phone camera output.
const maxUploadSize = 32 << 20

// listItems handles GET /items.
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.ListItems(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AuctionItemList{Items: items}, http.StatusOK) //nolint:errcheck
}

// getItem handles GET /item?item_name=.
func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.items.ItemByName(r.Context(), r.URL.Query().Get("item_name"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK) //nolint:errcheck
}

// createItem handles POST /item (admin, multipart).
//
// Form fields: name, description, starting_bid, repeated tags, optional
// image file part.
func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeBadRequest(w, "request body is not a valid multipart form")
		return
	}

	startingBid, err := decimal.NewFromString(r.PostFormValue("starting_bid"))
	if err != nil {
		writeBadRequest(w, "starting_bid is not a valid amount")
		return
	}

	upsert := models.ItemUpsert{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		StartingBid: startingBid,
		Tags:        r.MultipartForm.Value["tags"],
	}

	photo, err := formPhoto(r)
	if err != nil {
		writeBadRequest(w, "image part is malformed")
		return
	}

	item, err := h.items.CreateItem(r.Context(), upsert, photo)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated) //nolint:errcheck
}

// updateItem handles PUT /item (admin, multipart). Only submitted fields
// change; the name field identifies the lot and is immutable.
func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeBadRequest(w, "request body is not a valid multipart form")
		return
	}

	name := r.PostFormValue("name")
	patch := models.ItemPatch{}

	if values, ok := r.MultipartForm.Value["description"]; ok && len(values) > 0 {
		patch.Description = &values[0]
	}
	if values, ok := r.MultipartForm.Value["starting_bid"]; ok && len(values) > 0 {
		startingBid, err := decimal.NewFromString(values[0])
		if err != nil {
			writeBadRequest(w, "starting_bid is not a valid amount")
			return
		}
		patch.StartingBid = &startingBid
	}
	if values, ok := r.MultipartForm.Value["tags"]; ok {
		patch.Tags = values
	}

	photo, err := formPhoto(r)
	if err != nil {
		writeBadRequest(w, "image part is malformed")
		return
	}

	item, err := h.items.UpdateItem(r.Context(), name, patch, photo)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK) //nolint:errcheck
}

// deleteItem handles DELETE /item?item_name= (admin).
func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.items.DeleteItem(r.Context(), r.URL.Query().Get("item_name")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Detail{Detail: "item deleted"}, http.StatusOK) //nolint:errcheck
}

// formPhoto extracts the optional image part. Returns a nil reader when
// the part is absent.
func formPhoto(r *http.Request) (io.Reader, error) {
	file, _, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	return file, nil
}
