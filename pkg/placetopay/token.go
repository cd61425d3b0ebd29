package placetopay

import (
	"encoding/json"
	"time"
)

// InvalidDate is returned by Token.Expiration when validUntil cannot be
// parsed.
const InvalidDate = "Invalid date"

// Token is a tokenized card instrument.
type Token struct {
	Token         string  `json:"token,omitempty"`
	SubToken      string  `json:"subtoken,omitempty"`
	Franchise     string  `json:"franchise,omitempty"`
	FranchiseName string  `json:"franchiseName,omitempty"`
	IssuerName    string  `json:"issuerName,omitempty"`
	LastDigits    string  `json:"lastDigits,omitempty"`
	ValidUntil    string  `json:"validUntil,omitempty"`
	CVV           string  `json:"cvv,omitempty"`
	Installments  int     `json:"installments,omitempty"`
	Status        *Status `json:"status,omitempty"`
}

// Expiration derives the mm/yy display expiration from the ISO validUntil
// date. A malformed date yields the InvalidDate sentinel rather than an
// error.
func (t *Token) Expiration() string {
	d, err := time.Parse("2006-01-02", t.ValidUntil)
	if err != nil {
		return InvalidDate
	}
	return d.Format("01/06")
}

// UnmarshalJSON tolerates the installment count arriving as a string or a
// number; instrument data collapsed from name-value pairs is loosely typed.
func (t *Token) UnmarshalJSON(b []byte) error {
	var aux struct {
		Token         string     `json:"token"`
		SubToken      string     `json:"subtoken"`
		Franchise     string     `json:"franchise"`
		FranchiseName string     `json:"franchiseName"`
		IssuerName    string     `json:"issuerName"`
		LastDigits    string     `json:"lastDigits"`
		ValidUntil    string     `json:"validUntil"`
		CVV           string     `json:"cvv"`
		Installments  flexString `json:"installments"`
		Status        *Status    `json:"status"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*t = Token{
		Token:         aux.Token,
		SubToken:      aux.SubToken,
		Franchise:     aux.Franchise,
		FranchiseName: aux.FranchiseName,
		IssuerName:    aux.IssuerName,
		LastDigits:    aux.LastDigits,
		ValidUntil:    aux.ValidUntil,
		CVV:           aux.CVV,
		Status:        aux.Status,
	}
	t.Installments = parseInstallments(string(aux.Installments))
	return nil
}

func parseInstallments(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}

// Account is a bank-account instrument used for account-type subscriptions.
type Account struct {
	Status        *Status `json:"status,omitempty"`
	BankCode      string  `json:"bankCode,omitempty"`
	BankName      string  `json:"bankName,omitempty"`
	AccountType   string  `json:"accountType,omitempty"`
	AccountNumber string  `json:"accountNumber,omitempty"`
}

// LastDigits returns the trailing four digits of the account number for
// display.
func (a *Account) LastDigits() string {
	if len(a.AccountNumber) <= 4 {
		return a.AccountNumber
	}
	return a.AccountNumber[len(a.AccountNumber)-4:]
}

// Instrument is the payment-method descriptor attached to a collect
// request: a token or account reference plus its secrets.
type Instrument struct {
	Token    *Token   `json:"token,omitempty"`
	Account  *Account `json:"account,omitempty"`
	Pin      string   `json:"pin,omitempty"`
	Password string   `json:"password,omitempty"`
}
