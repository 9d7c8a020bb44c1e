package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hfujita/order-ingestion-system/consts"
	"github.com/hfujita/order-ingestion-system/entity"
)

func validRawRow() entity.RawRow {
	return entity.RawRow{
		consts.FieldVendorID:         "1001",
		consts.FieldVendorName:       "テスト業者1",
		consts.FieldBuildingName:     "テストビル",
		consts.FieldNumber:           "1",
		consts.FieldReceptionDetails: "水漏れ修理",
		consts.FieldPaymentAmount:    "50000",
		consts.FieldCompletionDate:   "2025-02-01",
		consts.FieldPaymentDate:      "2025-02-15",
		consts.FieldBillingDate:      "2025-02-10",
	}
}

func TestValidateRowAcceptsValidRow(t *testing.T) {
	u := &orderUsecase{}

	validated, err := u.validateRow("2025-02", validRawRow(), 1)
	require.NoError(t, err)

	assert.Equal(t, "2025-02", validated.YearMonth)
	assert.Equal(t, int64(1001), validated.VendorID)
	assert.Equal(t, "テスト業者1", validated.VendorName)
	assert.Equal(t, "テストビル", validated.BuildingName)
	assert.Equal(t, int64(1), validated.Number)
	assert.Equal(t, "水漏れ修理", validated.ReceptionDetails)
	assert.Equal(t, int64(50000), validated.PaymentAmount)
	assert.False(t, validated.EraseFlag)

	require.NotNil(t, validated.CompletionDate)
	assert.True(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC).Equal(*validated.CompletionDate))
	require.NotNil(t, validated.PaymentDate)
	require.NotNil(t, validated.BillingDate)
}

func TestValidateRowAcceptsNumericCellValues(t *testing.T) {
	u := &orderUsecase{}

	// Spreadsheet cells arrive as JSON numbers, not strings.
	row := validRawRow()
	row[consts.FieldVendorID] = float64(1001)
	row[consts.FieldNumber] = float64(3)
	row[consts.FieldPaymentAmount] = float64(0)

	validated, err := u.validateRow("2025-02", row, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), validated.VendorID)
	assert.Equal(t, int64(3), validated.Number)
	assert.Equal(t, int64(0), validated.PaymentAmount)
}

func TestValidateRowSentinelDatesBecomeAbsent(t *testing.T) {
	u := &orderUsecase{}

	row := validRawRow()
	row[consts.FieldCompletionDate] = "2999-12-31"
	row[consts.FieldPaymentDate] = "2999/12/31"
	row[consts.FieldBillingDate] = "2999-12-31"

	validated, err := u.validateRow("2025-02", row, 1)
	require.NoError(t, err)
	assert.Nil(t, validated.CompletionDate)
	assert.Nil(t, validated.PaymentDate)
	assert.Nil(t, validated.BillingDate)
}

func TestValidateRowRejectsVendorIDZero(t *testing.T) {
	u := &orderUsecase{}

	row := validRawRow()
	row[consts.FieldVendorID] = "0"

	_, err := u.validateRow("2025-02", row, 3)
	require.Error(t, err)
	assert.Equal(t, "3行目: 業者IDが不正です", err.Error())
}

func TestValidateRowRejectsNegativeVendorID(t *testing.T) {
	u := &orderUsecase{}

	row := validRawRow()
	row[consts.FieldVendorID] = "-5"

	_, err := u.validateRow("2025-02", row, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), consts.FieldVendorID)
}

func TestValidateRowAcceptsNegativePaymentAmount(t *testing.T) {
	u := &orderUsecase{}

	// Credits show up as negative amounts and are not rejected.
	row := validRawRow()
	row[consts.FieldPaymentAmount] = "-3000"

	validated, err := u.validateRow("2025-02", row, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(-3000), validated.PaymentAmount)
}

func TestValidateRowRejectsMissingOrBlankFields(t *testing.T) {
	cases := []struct {
		name  string
		label string
		value interface{}
	}{
		{"missing vendor name", consts.FieldVendorName, nil},
		{"blank vendor name", consts.FieldVendorName, "   "},
		{"blank building name", consts.FieldBuildingName, "　"},
		{"missing number", consts.FieldNumber, nil},
		{"non-numeric number", consts.FieldNumber, "abc"},
		{"blank reception details", consts.FieldReceptionDetails, ""},
		{"fractional payment amount", consts.FieldPaymentAmount, float64(100.5)},
		{"missing completion date", consts.FieldCompletionDate, nil},
		{"blank payment date", consts.FieldPaymentDate, ""},
		{"garbage billing date", consts.FieldBillingDate, "someday"},
	}

	u := &orderUsecase{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := validRawRow()
			if tc.value == nil {
				delete(row, tc.label)
			} else {
				row[tc.label] = tc.value
			}

			_, err := u.validateRow("2025-02", row, 2)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "2行目")
			assert.Contains(t, err.Error(), tc.label)
		})
	}
}

func TestValidateRowShortCircuitsAtFirstDefect(t *testing.T) {
	u := &orderUsecase{}

	row := validRawRow()
	row[consts.FieldVendorID] = "0"
	row[consts.FieldVendorName] = ""

	_, err := u.validateRow("2025-02", row, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), consts.FieldVendorID)
	assert.NotContains(t, err.Error(), consts.FieldVendorName)
}

func TestValidateRowCollectsAllDefectsWhenConfigured(t *testing.T) {
	u := &orderUsecase{collectAllDefects: true}

	row := validRawRow()
	row[consts.FieldVendorID] = "0"
	row[consts.FieldVendorName] = ""
	row[consts.FieldBillingDate] = "someday"

	_, err := u.validateRow("2025-02", row, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), consts.FieldVendorID)
	assert.Contains(t, err.Error(), consts.FieldVendorName)
	assert.Contains(t, err.Error(), consts.FieldBillingDate)
}
