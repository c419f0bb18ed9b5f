package faucet

import (
	"net/http"
)

type Config struct {
	Network    string
	BaseURL    string
	HTTPClient *http.Client
}

// FundResult describes the funded account. Balance and Amount are in XRP.
type FundResult struct {
	Address string  `json:"address"`
	Secret  string  `json:"secret,omitempty"`
	Amount  float64 `json:"amount"`
	Balance float64 `json:"balance"`
}

type fundRequest struct {
	Destination string `json:"destination,omitempty"`
}

type fundResponse struct {
	Account struct {
		XAddress       string   `json:"xAddress"`
		ClassicAddress string   `json:"classicAddress"`
		Address        string   `json:"address"`
		Secret         string   `json:"secret"`
		Balance        *float64 `json:"balance"`
	} `json:"account"`
	Amount  float64  `json:"amount"`
	Balance *float64 `json:"balance"`
}
