package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/labstack/gommon/log"

	"github.com/hfujita/order-ingestion-system/consts"
	usecase "github.com/hfujita/order-ingestion-system/usecase/order"
)

var yearMonthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// UploadOrders receives the multipart upload form (file + year_month),
// hands the file to the parsing service and ingests the resulting rows.
// Row-level defects come back in the response body; batch-scoped
// failures reject the whole upload with a generic localized message.
func (h *OrderHandler) UploadOrders(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := r.ParseMultipartForm(consts.MaxUploadSizeBytes); err != nil {
		writeError(w, http.StatusBadRequest, "ファイルのアップロードに失敗しました。")
		return
	}

	yearMonth := r.FormValue("year_month")
	if !yearMonthPattern.MatchString(yearMonth) {
		writeError(w, http.StatusBadRequest, "対象年月はYYYY-MM形式で指定してください。")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "ファイルを選択してください。")
		return
	}
	defer file.Close()

	if header.Size > consts.MaxUploadSizeBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "ファイルサイズは1MB以下にしてください。")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".csv" && ext != ".xlsx" {
		writeError(w, http.StatusBadRequest, "CSVまたはExcelファイルを選択してください。")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		log.Errorf("[UploadOrders] Failed to read upload %s: %v", header.Filename, err)
		writeError(w, http.StatusInternalServerError, "ファイルの読み込みに失敗しました。")
		return
	}

	operator := r.FormValue("operator")
	if operator == "" {
		operator = "system"
	}

	result, err := h.Usecase.UploadOrders(r.Context(), content, header.Filename, yearMonth, operator)
	if err != nil {
		var parseErr *usecase.ParseError
		var commitErr *usecase.CommitError
		switch {
		case errors.Is(err, usecase.ErrBatchInProgress):
			writeError(w, http.StatusConflict, "同じ対象年月のアップロードが処理中です。")
		case errors.As(err, &parseErr):
			log.Errorf("[UploadOrders] Parse failure for %s: %v", header.Filename, err)
			writeError(w, http.StatusUnprocessableEntity, "ファイルの解析中にエラーが発生しました。")
		case errors.As(err, &commitErr):
			log.Errorf("[UploadOrders] Commit failure for %s: %v", header.Filename, err)
			writeError(w, http.StatusInternalServerError, "データの保存中にエラーが発生しました。")
		default:
			log.Errorf("[UploadOrders] Unexpected failure for %s: %v", header.Filename, err)
			writeError(w, http.StatusInternalServerError, "予期しないエラーが発生しました。")
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status:  "success",
		Message: fmt.Sprintf("%d件のデータを取り込みました。", result.Committed),
		Data:    result,
	})
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(APIResponse{
		Status:  "error",
		Message: message,
	})
}
