package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/inventory"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/handler/http/response"
)

type InventoryHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AdjustStock(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type inventoryHandlerImpl struct {
	inventoryService inventory.InventoryService
}

func NewInventoryHandler(inventoryService inventory.InventoryService) InventoryHandler {
	return &inventoryHandlerImpl{
		inventoryService: inventoryService,
	}
}

// Create implements InventoryHandler.
func (h *inventoryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req inventory.CreatePartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.inventoryService.CreatePart(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Part created", result)
}

// Get implements InventoryHandler.
func (h *inventoryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.inventoryService.GetPart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements InventoryHandler.
func (h *inventoryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req inventory.UpdatePartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.inventoryService.UpdatePart(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements InventoryHandler.
func (h *inventoryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.inventoryService.DeletePart(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Part deleted", nil)
}

// AdjustStock implements InventoryHandler.
func (h *inventoryHandlerImpl) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var req inventory.AdjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.inventoryService.AdjustStock(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements InventoryHandler.
func (h *inventoryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := inventory.Filter{
		Name:  queryStr(r, "name"),
		SKU:   queryStr(r, "sku"),
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}
	if low := r.URL.Query().Get("low_stock"); low != "" {
		threshold := queryInt(r, "low_stock")
		filter.LowStock = &threshold
	}

	result, err := h.inventoryService.ListParts(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Parts, response.NewMeta(result.Page, result.Limit, result.TotalCount))
}
