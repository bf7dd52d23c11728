package models

// Direction of an exchange: crypto sold for fiat, or fiat sold for crypto.
type Direction string

const (
	DirectionCryptoToFiat Direction = "crypto-to-fiat"
	DirectionFiatToCrypto Direction = "fiat-to-crypto"
)

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == DirectionCryptoToFiat || d == DirectionFiatToCrypto
}

// Currencies offered on the exchange form.
var (
	CryptoCurrencies = []string{"BTC", "ETH", "USDT", "BNB", "SOL"}
	FiatCurrencies   = []string{"RUB", "USD", "EUR", "KZT"}
)

// RailCategory groups payment rails by the recipient details they require.
type RailCategory string

const (
	RailSBP    RailCategory = "sbp"    // phone-addressed fiat transfers
	RailCard   RailCategory = "card"   // card-addressed fiat transfers
	RailIBAN   RailCategory = "iban"   // account-addressed bank transfers
	RailTag    RailCategory = "tag"    // crypto networks with a memo/tag
	RailWallet RailCategory = "wallet" // plain crypto wallets
)

// railCategories maps a destination rail to its category.
var railCategories = map[string]RailCategory{
	"RUB-SBP":     RailSBP,
	"KZT-KASPI":   RailSBP,
	"RUB":         RailCard,
	"RUB-CARD":    RailCard,
	"RUB-SBER":    RailCard,
	"RUB-TINKOFF": RailCard,
	"USD":         RailCard,
	"USD-CARD":    RailCard,
	"EUR":         RailCard,
	"EUR-CARD":    RailCard,
	"KZT":         RailCard,
	"KZT-HALYK":   RailCard,
	"EUR-SEPA":    RailIBAN,
	"EUR-WISE":    RailIBAN,
	"USD-WISE":    RailIBAN,
	"XRP":         RailTag,
	"TON":         RailTag,
	"USDT-TON":    RailTag,
	"BTC":         RailWallet,
	"ETH":         RailWallet,
	"USDT":        RailWallet,
	"USDT-TRC20":  RailWallet,
	"BNB":         RailWallet,
	"SOL":         RailWallet,
}

// requiredRecipientFields is the lookup from rail category to the recipient
// fields that must be filled before an exchange request can be submitted.
var requiredRecipientFields = map[RailCategory][]string{
	RailSBP:    {"phone", "name"},
	RailCard:   {"card_number", "name"},
	RailIBAN:   {"iban", "name"},
	RailTag:    {"wallet_address", "tag"},
	RailWallet: {"wallet_address"},
}

// RequiredFieldsForRail returns the recipient fields required for the given
// destination rail. Unknown rails fall back to a single wallet address field.
func RequiredFieldsForRail(rail string) []string {
	cat, ok := railCategories[rail]
	if !ok {
		cat = RailWallet
	}
	return requiredRecipientFields[cat]
}
