package repository

import (
	"context"

	"github.com/amirasaad/finledger/pkg/domain"
	"github.com/amirasaad/finledger/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type customerRepository struct {
	db *gorm.DB
	// forUpdate locks the customer row on reads; set inside transactions.
	forUpdate bool
}

// NewCustomerRepository creates a gorm-backed customer repository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// FindByCpf implements repository.CustomerRepository.
func (r *customerRepository) FindByCpf(ctx context.Context, cpf string) (*domain.Customer, error) {
	q := r.db.WithContext(ctx)
	if r.forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var m Customer
	err := q.Preload("Statements", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	}).Where("cpf = ?", cpf).First(&m).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapModelToDomain(&m), nil
}

// Exists implements repository.CustomerRepository.
func (r *customerRepository) Exists(ctx context.Context, cpf string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&Customer{}).Where("cpf = ?", cpf).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// Add implements repository.CustomerRepository. The unique index on cpf makes the
// duplicate check atomic with the insert.
func (r *customerRepository) Add(ctx context.Context, customer *domain.Customer) error {
	m := mapDomainToModel(customer)
	return WrapError(func() error {
		return r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error
	})
}

// UpdateName implements repository.CustomerRepository.
func (r *customerRepository) UpdateName(ctx context.Context, cpf, name string) error {
	res := r.db.WithContext(ctx).Model(&Customer{}).Where("cpf = ?", cpf).Update("name", name)
	if res.Error != nil {
		return MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// AppendStatement implements repository.CustomerRepository.
func (r *customerRepository) AppendStatement(ctx context.Context, cpf string, st domain.Statement) error {
	var owner Customer
	err := r.db.WithContext(ctx).Model(&Customer{}).Select("id").Where("cpf = ?", cpf).Take(&owner).Error
	if err != nil {
		return MapGormErrorToDomain(err)
	}
	m := mapStatementToModel(owner.ID, st)
	return r.db.WithContext(ctx).Create(&m).Error
}

func mapDomainToModel(c *domain.Customer) Customer {
	return Customer{
		ID:   c.ID,
		Cpf:  c.Cpf,
		Name: c.Name,
	}
}

func mapStatementToModel(customerID uuid.UUID, st domain.Statement) Statement {
	return Statement{
		CustomerID:  customerID,
		Description: st.Description,
		Amount:      st.Amount,
		Type:        string(st.Type),
		CreatedAt:   st.CreatedAt,
	}
}

func mapModelToDomain(m *Customer) *domain.Customer {
	statements := make([]domain.Statement, 0, len(m.Statements))
	for _, s := range m.Statements {
		statements = append(statements, domain.Statement{
			Description: s.Description,
			Amount:      s.Amount,
			CreatedAt:   s.CreatedAt,
			Type:        domain.StatementType(s.Type),
		})
	}
	return &domain.Customer{
		ID:         m.ID,
		Cpf:        m.Cpf,
		Name:       m.Name,
		Statements: statements,
	}
}
