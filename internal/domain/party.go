package domain

// Buyer is a registered bidder. Interests holds the lot numbers the buyer
// has noted interest in; the store owning the buyer guards it.
type Buyer struct {
	Name         string
	Address      string
	BankAccount  string
	BankAuthCode string
	Interests    map[int]struct{}
}

// NewBuyer creates a buyer with an empty interest set.
func NewBuyer(name, address, bankAccount, bankAuthCode string) *Buyer {
	return &Buyer{
		Name:         name,
		Address:      address,
		BankAccount:  bankAccount,
		BankAuthCode: bankAuthCode,
		Interests:    make(map[int]struct{}),
	}
}

// InterestedIn reports whether the buyer has noted interest in lot.
func (b *Buyer) InterestedIn(lot int) bool {
	_, ok := b.Interests[lot]
	return ok
}

// Seller is a registered consignor of lots.
type Seller struct {
	Name        string
	Address     string
	BankAccount string
}
