package transfer

type PhoneAuth struct {
	Number   string `json:"number"`
	Password string `json:"password"`
}

type PhoneNumberCreation struct {
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

type PhoneNumberUpdate struct {
	ID     string `json:"id"`
	Active *bool  `json:"active"`
}
