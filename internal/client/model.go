package client

import "time"

type Client struct {
	ID        string
	FirstName string
	LastName  string
	Company   string
	Email     string
	Phone     string
	SellerID  string
	CreatedAt time.Time
}

func (c *Client) OwnerID() string { return c.SellerID }

type ClientInput struct {
	FirstName string
	LastName  string
	Company   string
	Email     string
	Phone     string
}
