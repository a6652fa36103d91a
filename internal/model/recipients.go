package model

// CreateRecipientDTO is the create-recipient form payload. The zipcode is
// kept as a string so an exactly-8-digits check can run before the value
// is converted for the wire (Brazilian CEPs may start with zero).
type CreateRecipientDTO struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	State        string `json:"state"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Address      string `json:"address"`
	Zipcode      string `json:"zipcode"`
}

// RecipientBasicInfo is a row of GET /recipients/lite, the lightweight
// listing used by the order-creation recipient selector.
type RecipientBasicInfo struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type RecipientsPage struct {
	Data       []RecipientBasicInfo `json:"data"`
	Total      int                  `json:"total"`
	TotalPages int                  `json:"totalPages"`
	PageIndex  int                  `json:"pageIndex"`
	Limit      int                  `json:"limit"`
}
