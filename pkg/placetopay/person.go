package placetopay

import "strings"

// Address is a physical address attached to a payer, buyer, or shipping
// target.
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// Person identifies a payer, buyer, or shipping recipient.
type Person struct {
	Document     string   `json:"document,omitempty"`
	DocumentType string   `json:"documentType,omitempty"`
	Name         string   `json:"name,omitempty"`
	Surname      string   `json:"surname,omitempty"`
	Company      string   `json:"company,omitempty"`
	Email        string   `json:"email,omitempty"`
	Mobile       string   `json:"mobile,omitempty"`
	Address      *Address `json:"address,omitempty"`
}

// FullName joins name and surname, skipping whichever is empty.
func (p *Person) FullName() string {
	return strings.TrimSpace(p.Name + " " + p.Surname)
}

// IsBusiness reports whether the person identifies as a company.
func (p *Person) IsBusiness() bool {
	return p.Company != ""
}
