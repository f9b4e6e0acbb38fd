package models

// Certificate is an earned credential.
type Certificate struct {
	Base
	Title         string `gorm:"not null" json:"title"`
	Issuer        string `json:"issuer"`
	Date          string `json:"date"`
	Image         string `json:"image"`
	CredentialURL string `json:"credentialUrl"`
}

// TableName returns the database table for certificates.
func (Certificate) TableName() string { return "certificates" }
