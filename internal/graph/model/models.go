// Package model holds the GraphQL types. Field json tags match the schema.
package model

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

type Token struct {
	Token string `json:"token"`
}

type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Stock     int32   `json:"stock"`
	Price     float64 `json:"price"`
	CreatedAt string  `json:"createdAt"`
}

type Client struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Company   *string `json:"company"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Seller    string  `json:"seller"`
	CreatedAt string  `json:"createdAt"`
}

type OrderItem struct {
	ID       string `json:"id"`
	Quantity int32  `json:"quantity"`
}

type Order struct {
	ID        string       `json:"id"`
	Items     []*OrderItem `json:"items"`
	Total     float64      `json:"total"`
	Client    string       `json:"client"`
	Seller    string       `json:"seller"`
	Status    OrderStatus  `json:"status"`
	CreatedAt string       `json:"createdAt"`
}

type TopClient struct {
	Total  float64 `json:"total"`
	Client *Client `json:"client"`
}

type TopSeller struct {
	Total  float64 `json:"total"`
	Seller *User   `json:"seller"`
}

type UserInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type AuthInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ProductInput struct {
	Name  string  `json:"name"`
	Stock int32   `json:"stock"`
	Price float64 `json:"price"`
}

type ClientInput struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Company   *string `json:"company"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
}

type OrderItemInput struct {
	ID       string `json:"id"`
	Quantity int32  `json:"quantity"`
}

type OrderInput struct {
	Client string            `json:"client"`
	Items  []*OrderItemInput `json:"items"`
	Total  float64           `json:"total"`
	Status *OrderStatus      `json:"status"`
}

type OrderUpdateInput struct {
	Client *string           `json:"client"`
	Items  []*OrderItemInput `json:"items"`
	Total  *float64          `json:"total"`
	Status *OrderStatus      `json:"status"`
}
