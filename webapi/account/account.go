package account

import (
	"errors"
	"time"

	"github.com/amirasaad/finledger/pkg/domain"
	accountsvc "github.com/amirasaad/finledger/pkg/service/account"
	"github.com/amirasaad/finledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// CpfHeader names the request header that identifies the customer.
const CpfHeader = "cpf"

// Routes registers HTTP routes for ledger operations using the Fiber web framework.
// Every route except account creation resolves the customer from the cpf header
// first and answers 400 "Customer not found" when nobody is registered under it.
//
// Routes:
//   - POST   /account         : Register a customer.
//   - GET    /account         : Show the customer.
//   - PUT    /account         : Rename the customer.
//   - GET    /statement/      : List the full statement history.
//   - GET    /statement/date  : List the statements of one calendar day.
//   - POST   /deposit         : Append a credit statement.
//   - POST   /withdraw        : Append a debit statement if funds allow.
//   - GET    /balance         : Show the current balance.
func Routes(app *fiber.App, accountSvc *accountsvc.Service) {
	app.Post("/account", CreateAccount(accountSvc))
	app.Get("/account", withCustomer(accountSvc, GetAccount(accountSvc)))
	app.Put("/account", withCustomer(accountSvc, UpdateAccount(accountSvc)))
	app.Get("/statement", withCustomer(accountSvc, GetStatements(accountSvc)))
	app.Get("/statement/date", withCustomer(accountSvc, GetStatementsByDate(accountSvc)))
	app.Post("/deposit", withCustomer(accountSvc, Deposit(accountSvc)))
	app.Post("/withdraw", withCustomer(accountSvc, Withdraw(accountSvc)))
	app.Get("/balance", withCustomer(accountSvc, GetBalance(accountSvc)))
}

// CustomerHandler handles a request on behalf of an already resolved customer.
type CustomerHandler func(c *fiber.Ctx, customer *domain.Customer) error

func withCustomer(accountSvc *accountsvc.Service, next CustomerHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customer, err := accountSvc.GetAccount(c.UserContext(), c.Get(CpfHeader))
		if err != nil {
			if !errors.Is(err, domain.ErrCustomerNotFound) {
				log.Errorf("Failed to resolve customer: %v", err)
			}
			return common.DomainErrorJSON(c, err)
		}
		return next(c, customer)
	}
}

// CreateAccount returns a Fiber handler that registers a customer.
// @Summary Create an account
// @Description Registers a customer under a cpf with an empty statement history.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Customer"
// @Success 201 "Account created"
// @Failure 400 {object} common.ErrorResponse "Customer already exists or invalid request"
// @Failure 500 {object} common.ErrorResponse "Internal server error"
// @Router /account [post]
func CreateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		if _, err := accountSvc.CreateAccount(c.UserContext(), input.Cpf, input.Name); err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).Send(nil)
	}
}

// GetAccount returns a Fiber handler that shows the resolved customer.
// @Summary Get the account
// @Description Returns the customer registered under the cpf header, statements included.
// @Tags accounts
// @Produce json
// @Param cpf header string true "Customer cpf"
// @Success 200 {object} domain.Customer
// @Failure 400 {object} common.ErrorResponse "Customer not found"
// @Router /account [get]
func GetAccount(_ *accountsvc.Service) CustomerHandler {
	return func(c *fiber.Ctx, customer *domain.Customer) error {
		return c.JSON(customer)
	}
}

// UpdateAccount returns a Fiber handler that renames the resolved customer.
// @Summary Update the account
// @Description Changes the customer's name; the statement history is untouched.
// @Tags accounts
// @Accept json
// @Param cpf header string true "Customer cpf"
// @Param request body UpdateAccountRequest true "New name"
// @Success 201 "Account updated"
// @Failure 400 {object} common.ErrorResponse "Customer not found or invalid request"
// @Router /account [put]
func UpdateAccount(accountSvc *accountsvc.Service) CustomerHandler {
	return func(c *fiber.Ctx, customer *domain.Customer) error {
		input, err := common.BindAndValidate[UpdateAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		if err := accountSvc.UpdateAccount(c.UserContext(), customer, input.Name); err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).Send(nil)
	}
}

// GetStatements returns a Fiber handler listing the whole statement history.
// @Summary List statements
// @Tags statements
// @Produce json
// @Param cpf header string true "Customer cpf"
// @Success 200 {object} StatementsResponse
// @Failure 400 {object} common.ErrorResponse "Customer not found"
// @Router /statement/ [get]
func GetStatements(accountSvc *accountsvc.Service) CustomerHandler {
	return func(c *fiber.Ctx, customer *domain.Customer) error {
		return c.JSON(StatementsResponse{Statements: accountSvc.GetStatements(customer)})
	}
}

// GetStatementsByDate returns a Fiber handler listing the statements created on
// the calendar day given by the date query parameter.
// @Summary List statements of a day
// @Description Filters the history to one calendar day, ignoring time of day. No match yields an empty array.
// @Tags statements
// @Produce json
// @Param cpf header string true "Customer cpf"
// @Param date query string true "Day as YYYY-MM-DD"
// @Success 200 {array} domain.Statement
// @Failure 400 {object} common.ErrorResponse "Customer not found or invalid date"
// @Router /statement/date [get]
func GetStatementsByDate(accountSvc *accountsvc.Service) CustomerHandler {
	return func(c *fiber.Ctx, customer *domain.Customer) error {
		date, err := domain.ParseDate(c.Query("date"), time.Local)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(accountSvc.GetStatementsByDate(customer, date))
	}
}

// Deposit returns a Fiber handler that appends a credit statement.
// @Summary Deposit funds
// @Tags transactions
// @Accept json
// @Param cpf header string true "Customer cpf"
// @Param request body DepositRequest true "Deposit details"
// @Success 201 "Deposit recorded"
// @Failure 400 {object} common.ErrorResponse "Customer not found or invalid amount"
// @Router /deposit [post]
func Deposit(accountSvc *accountsvc.Service) CustomerHandler {
	return func(c *fiber.Ctx, customer *domain.Customer) error {
		input, err := common.BindAndValidate[DepositRequest](c)
		if input == nil {
			return err // error response already written
		}
		if err := accountSvc.Deposit(c.UserContext(), customer, input.Description, *input.Amount); err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).Send(nil)
	}
}

// Withdraw returns a Fiber handler that appends a debit statement when the
// balance covers the amount.
// @Summary Withdraw funds
// @Tags transactions
// @Accept json
// @Param cpf header string true "Customer cpf"
// @Param request body WithdrawRequest true "Withdrawal details"
// @Success 200 "Withdrawal recorded"
// @Failure 400 {object} common.ErrorResponse "Customer not found or insufficient funds"
// @Router /withdraw [post]
func Withdraw(accountSvc *accountsvc.Service) CustomerHandler {
	return func(c *fiber.Ctx, customer *domain.Customer) error {
		input, err := common.BindAndValidate[WithdrawRequest](c)
		if input == nil {
			return err // error response already written
		}
		if err := accountSvc.Withdraw(c.UserContext(), customer, *input.Amount); err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.Status(fiber.StatusOK).Send(nil)
	}
}

// GetBalance returns a Fiber handler that reports the current balance.
// @Summary Get the balance
// @Tags transactions
// @Produce json
// @Param cpf header string true "Customer cpf"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} common.ErrorResponse "Customer not found"
// @Router /balance [get]
func GetBalance(accountSvc *accountsvc.Service) CustomerHandler {
	return func(c *fiber.Ctx, customer *domain.Customer) error {
		return c.JSON(BalanceResponse{Balance: accountSvc.Balance(customer)})
	}
}
