package logging

// Standardized field names for structured logging. Using the same keys in
// every package keeps the output easy to filter.
const (
	FieldFile          = "file_path"
	FieldAccount       = "account"
	FieldAccountType   = "account_type"
	FieldSide          = "side"
	FieldAmount        = "amount"
	FieldCount         = "count"
	FieldSession       = "session_id"
	FieldOperation     = "operation"
	FieldTransactionID = "transaction_id"
	FieldDelimiter     = "delimiter"
	FieldInputFile     = "input_file"
	FieldOutputFile    = "output_file"
)
