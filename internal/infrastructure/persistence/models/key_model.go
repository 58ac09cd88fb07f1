package models

import (
	"time"

	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
)

// KeyModel is the GORM database model for RSA keys. Numbers are stored as base-10
// text since they routinely exceed any native column type.
type KeyModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	P1              string    `gorm:"type:text;not null"`
	P2              string    `gorm:"type:text;not null"`
	N               string    `gorm:"type:text;not null"`
	M               string    `gorm:"type:text;not null"`
	E               string    `gorm:"type:text;not null"`
	D               string    `gorm:"type:text;not null"`
	PrimeMode       string    `gorm:"type:varchar(10);index"`
	ModulusBits     int       `gorm:"type:integer"`
	Regenerations   int       `gorm:"type:integer"`
	DateTimeCreated time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (KeyModel) TableName() string {
	return "rsa_keys"
}

// ToDomain converts GORM model to domain entity
func (m *KeyModel) ToDomain() *rsa.KeyRecord {
	return &rsa.KeyRecord{
		ID:              m.ID,
		P1:              m.P1,
		P2:              m.P2,
		N:               m.N,
		M:               m.M,
		E:               m.E,
		D:               m.D,
		PrimeMode:       m.PrimeMode,
		ModulusBits:     m.ModulusBits,
		Regenerations:   m.Regenerations,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *KeyModel) FromDomain(k *rsa.KeyRecord) {
	m.ID = k.ID
	m.P1 = k.P1
	m.P2 = k.P2
	m.N = k.N
	m.M = k.M
	m.E = k.E
	m.D = k.D
	m.PrimeMode = k.PrimeMode
	m.ModulusBits = k.ModulusBits
	m.Regenerations = k.Regenerations
	m.DateTimeCreated = k.DateTimeCreated
}
