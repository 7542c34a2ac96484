package validation

// CheckRequest carries one raw field value. A missing or null value is absent.
type CheckRequest struct {
	Value *string `json:"value"`
}

type CheckResponse struct {
	Field Field `json:"field"`
	Valid bool  `json:"valid"`
}

type NationalIDResponse struct {
	BirthDate   string `json:"birthDate"` // YYYY-MM-DD
	Century     int    `json:"century"`
	Governorate int    `json:"governorate"`
	Sequence    string `json:"sequence"`
	CheckDigit  int    `json:"checkDigit"`
}
