package consts

// Field labels used as keys in the rows emitted by the parser service.
// They mirror the header row of the source order documents.
const (
	FieldVendorID         = "業者ID"
	FieldVendorName       = "業者名"
	FieldBuildingName     = "建物名"
	FieldNumber           = "番号"
	FieldReceptionDetails = "受付内容"
	FieldPaymentAmount    = "支払金額"
	FieldCompletionDate   = "完工日"
	FieldPaymentDate      = "支払日"
	FieldBillingDate      = "請求日"
)

// UndeterminedDate is the sentinel the source documents use for
// "date not yet decided". It is stored as NULL, never as a literal date.
const UndeterminedDate = "2999-12-31"

const (
	// Import log status codes
	StatusCommitted  = 1
	StatusRolledBack = 2

	// Default config
	DefaultPageSize    = 20
	MaxPageSize        = 100
	MaxUploadSizeBytes = 1 << 20 // parser service rejects files over 1MB
	ParserTimeoutInSec = 30
)
