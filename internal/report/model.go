package report

import (
	"crm-be/internal/client"
	"crm-be/internal/user"
)

const (
	topClientsLimit = 10
	topSellersLimit = 3
)

// TopClient is a client ranked by the total of its completed orders.
type TopClient struct {
	Total  float64        `json:"total"`
	Client *client.Client `json:"client"`
}

// TopSeller is a seller ranked by the total of its completed orders.
type TopSeller struct {
	Total  float64    `json:"total"`
	Seller *user.User `json:"seller"`
}
