package order

// Field names as they appear on the wire and in per-field results.
const (
	FieldLastName       = "lastName"
	FieldFirstName      = "firstName"
	FieldEmail          = "email"
	FieldPhone          = "phone"
	FieldPaymentMethod  = "paymentMethod"
	FieldAccountName    = "accountName"
	FieldAccountNumber  = "accountNumber"
	FieldApplicationID  = "applicationId"
	FieldApplicationFee = "applicationFee"
)

// fieldOrder fixes iteration order for deterministic reports.
var fieldOrder = []string{
	FieldLastName, FieldFirstName, FieldEmail, FieldPhone,
	FieldPaymentMethod, FieldAccountName, FieldAccountNumber,
	FieldApplicationID, FieldApplicationFee,
}

// RawOrderRecord is an untrusted submission. Every field is `any` because
// nothing about the input can be assumed: values may be missing,
// wrong-typed or adversarial. The field sanitizers own all type checking.
type RawOrderRecord struct {
	LastName       any `json:"lastName"`
	FirstName      any `json:"firstName"`
	Email          any `json:"email"`
	Phone          any `json:"phone"`
	PaymentMethod  any `json:"paymentMethod"`
	AccountName    any `json:"accountName"`
	AccountNumber  any `json:"accountNumber"`
	ApplicationID  any `json:"applicationId"`
	ApplicationFee any `json:"applicationFee"`
}

// SanitizedOrderRecord is the clean output the persistence and mail
// collaborators accept. Produced only when every field sanitizer succeeded;
// there is no partially-sanitized variant.
type SanitizedOrderRecord struct {
	LastName       string `json:"lastName"`
	FirstName      string `json:"firstName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	PaymentMethod  string `json:"paymentMethod"`
	AccountName    string `json:"accountName"`
	AccountNumber  string `json:"accountNumber"`
	ApplicationID  string `json:"applicationId"`
	ApplicationFee int64  `json:"applicationFee"`
}
