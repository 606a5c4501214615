package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer represents a customer record in the database.
type Customer struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Cpf        string    `gorm:"uniqueIndex;not null;size:32"`
	Name       string    `gorm:"not null;size:255"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Statements []Statement `gorm:"foreignKey:CustomerID"`
}

// TableName specifies the table name for the Customer model.
func (Customer) TableName() string {
	return "customers"
}

// Statement represents a persisted credit or debit entry. The auto-increment id
// preserves insertion order.
type Statement struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Description string          `gorm:"size:255"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	Type        string          `gorm:"type:varchar(6);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName specifies the table name for the Statement model.
func (Statement) TableName() string {
	return "statements"
}

// Models lists every model handled by AutoMigrate.
func Models() []any {
	return []any{&Customer{}, &Statement{}}
}
