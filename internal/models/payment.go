package models

import "strings"

// depositAddresses holds the static deposit address per crypto currency shown
// on the payment screen. Address provisioning is owned by the payment side and
// out of scope here; these are display data.
var depositAddresses = map[string]string{
	"BTC":  "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
	"ETH":  "0x8e215d06ea7ec1fdb4fc5fd21768f4b34ee92ef4",
	"USDT": "TYDzsYUEpvnYmQk4zGP9sWWcTEd2MiAtW6",
	"BNB":  "bnb1grpf0955h0ykzq3ar5nmum7y6gdfl6lxfn46h2",
	"SOL":  "HN7cABqLq46Es1jh92dQQisAq662SmxELLLsHHe4YWrH",
}

// PaymentInstructions is the display data for the crypto payment step.
// swagger:model PaymentInstructions
type PaymentInstructions struct {
	Address   string `json:"address"`
	QRPayload string `json:"qr_payload"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
}

// DepositInstructions returns payment instructions for a crypto source
// currency. Network-suffixed currencies (USDT-TRC20) share the base address.
func DepositInstructions(currency, amount string) *PaymentInstructions {
	base := currency
	if i := strings.Index(base, "-"); i > 0 {
		base = base[:i]
	}
	addr := depositAddresses[base]
	return &PaymentInstructions{
		Address:   addr,
		QRPayload: addr,
		Amount:    amount,
		Currency:  currency,
	}
}
