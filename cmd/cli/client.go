package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// client talks to a running ledger server.
type client struct {
	baseURL string
}

// apiError is a non-2xx answer from the server.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

type customer struct {
	ID         string      `json:"id"`
	Cpf        string      `json:"cpf"`
	Name       string      `json:"name"`
	Statements []statement `json:"statements"`
}

type statement struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   string          `json:"created_at"`
	Type        string          `json:"type"`
}

func (c *client) do(method, path, cpf string, body any) ([]byte, error) {
	agent := fiber.AcquireAgent()
	req := agent.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(strings.TrimRight(c.baseURL, "/") + path)
	if cpf != "" {
		req.Header.Set("cpf", cpf)
	}
	if body != nil {
		agent.JSON(body)
	}
	if err := agent.Parse(); err != nil {
		fiber.ReleaseAgent(agent)
		return nil, err
	}

	status, resp, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if status >= fiber.StatusBadRequest {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(resp, &e) != nil || e.Error == "" {
			e.Error = fiber.NewError(status).Message
		}
		return nil, &apiError{Status: status, Message: e.Error}
	}
	return resp, nil
}

func (c *client) createAccount(cpf, name string) error {
	_, err := c.do(fiber.MethodPost, "/account", "", map[string]string{"cpf": cpf, "name": name})
	return err
}

func (c *client) getAccount(cpf string) (*customer, error) {
	resp, err := c.do(fiber.MethodGet, "/account", cpf, nil)
	if err != nil {
		return nil, err
	}
	var out customer
	if err := json.Unmarshal(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) updateAccount(cpf, name string) error {
	_, err := c.do(fiber.MethodPut, "/account", cpf, map[string]string{"name": name})
	return err
}

func (c *client) deposit(cpf, description string, amount decimal.Decimal) error {
	_, err := c.do(fiber.MethodPost, "/deposit", cpf, map[string]any{
		"description": description,
		"amount":      json.Number(amount.String()),
	})
	return err
}

func (c *client) withdraw(cpf string, amount decimal.Decimal) error {
	_, err := c.do(fiber.MethodPost, "/withdraw", cpf, map[string]any{
		"amount": json.Number(amount.String()),
	})
	return err
}

func (c *client) statements(cpf, date string) ([]statement, error) {
	if date != "" {
		resp, err := c.do(fiber.MethodGet, "/statement/date?date="+url.QueryEscape(date), cpf, nil)
		if err != nil {
			return nil, err
		}
		var out []statement
		return out, json.Unmarshal(resp, &out)
	}
	resp, err := c.do(fiber.MethodGet, "/statement/", cpf, nil)
	if err != nil {
		return nil, err
	}
	var out struct {
		Statements []statement `json:"statements"`
	}
	return out.Statements, json.Unmarshal(resp, &out)
}

func (c *client) balance(cpf string) (decimal.Decimal, error) {
	resp, err := c.do(fiber.MethodGet, "/balance", cpf, nil)
	if err != nil {
		return decimal.Zero, err
	}
	var out struct {
		Balance decimal.Decimal `json:"balance"`
	}
	return out.Balance, json.Unmarshal(resp, &out)
}
