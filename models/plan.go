package models

// Plan is one service tier offered on the success screen.
type Plan struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	OldPrice string `json:"oldPrice,omitempty"`
	Desc     string `json:"desc"`
	Popular  bool   `json:"popular"`

	// Prebuilt wa.me link carrying the traveler's first name and the
	// plan title in the message.
	WhatsAppLink string `json:"whatsappLink"`
}
