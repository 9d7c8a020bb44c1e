package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/gommon/log"

	"github.com/hfujita/order-ingestion-system/entity"
	"github.com/hfujita/order-ingestion-system/infra/db/model"
)

type OrderListData struct {
	Orders     []model.Order `json:"orders"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	YearMonth  string        `json:"year_month,omitempty"`
	VendorName string        `json:"vendor_name,omitempty"`
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	query := r.URL.Query()
	filter := entity.OrderSearchFilter{
		YearMonth:  query.Get("year_month"),
		VendorName: query.Get("vendor_name"),
	}

	page := 1
	if raw := query.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "page must be a positive integer")
			return
		}
		page = parsed
	}

	perPage := 0
	if raw := query.Get("per_page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "per_page must be a positive integer")
			return
		}
		perPage = parsed
	}

	orders, total, err := h.Usecase.SearchOrders(r.Context(), filter, page, perPage)
	if err != nil {
		log.Errorf("[ListOrders] Search failed: %v", err)
		writeError(w, http.StatusInternalServerError, "発注書一覧の取得に失敗しました。")
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data: OrderListData{
			Orders:     orders,
			Total:      total,
			Page:       page,
			YearMonth:  filter.YearMonth,
			VendorName: filter.VendorName,
		},
	})
}
