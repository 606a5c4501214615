package common

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirasaad/finledger/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{domain.ErrCustomerNotFound, fiber.StatusBadRequest, "Customer not found"},
		{fmt.Errorf("lookup: %w", domain.ErrCustomerNotFound), fiber.StatusBadRequest, "Customer not found"},
		{domain.ErrDuplicateAccount, fiber.StatusBadRequest, "Customer already exists"},
		{domain.ErrInsufficientFunds, fiber.StatusBadRequest, "Insufficient funds"},
		{domain.ErrInvalidAmount, fiber.StatusBadRequest, "Invalid amount, expected a non-negative value with at most 8 decimal places"},
		{domain.ErrInvalidDate, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD"},
		{fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed, "Method Not Allowed"},
		{fmt.Errorf("connection refused"), fiber.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, ErrorToStatusCode(tc.err), tc.err.Error())
		assert.Equal(t, tc.message, ErrorMessage(tc.err), tc.err.Error())
	}
}

type sample struct {
	Cpf  string `json:"cpf" validate:"required"`
	Name string `json:"name" validate:"max=3"`
}

func TestBindAndValidate(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		input, err := BindAndValidate[sample](c)
		if input == nil {
			return err
		}
		return c.JSON(input)
	})

	cases := []struct {
		body    string
		status  int
		message string
	}{
		{`{"cpf":"1","name":"Al"}`, fiber.StatusOK, ""},
		{`{"name":"Al"}`, fiber.StatusBadRequest, "cpf is required"},
		{`{"cpf":"1","name":"Alice"}`, fiber.StatusBadRequest, "name is max"},
		{`not json`, fiber.StatusBadRequest, "Invalid request body"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(tc.body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, tc.status, resp.StatusCode, tc.body)
		if tc.message != "" {
			var body ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.message, body.Error)
		}
		resp.Body.Close() //nolint: errcheck
	}
}
