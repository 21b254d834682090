package graph

import (
	"time"

	"crm-be/internal/client"
	"crm-be/internal/graph/model"
	"crm-be/internal/order"
	"crm-be/internal/product"
	"crm-be/internal/report"
	"crm-be/internal/user"
	"crm-be/internal/utils"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func toUserModel(u *user.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: formatTime(u.CreatedAt),
	}
}

func toProductModel(p *product.Product) *model.Product {
	return &model.Product{
		ID:        p.ID,
		Name:      p.Name,
		Stock:     int32(p.Stock),
		Price:     p.Price,
		CreatedAt: formatTime(p.CreatedAt),
	}
}

func toProductModels(products []*product.Product) []*model.Product {
	out := make([]*model.Product, 0, len(products))
	for _, p := range products {
		out = append(out, toProductModel(p))
	}
	return out
}

func toProductInput(in model.ProductInput) product.ProductInput {
	return product.ProductInput{Name: in.Name, Stock: int(in.Stock), Price: in.Price}
}

func toClientModel(c *client.Client) *model.Client {
	if c == nil {
		return nil
	}
	m := &model.Client{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Seller:    c.SellerID,
		CreatedAt: formatTime(c.CreatedAt),
	}
	if c.Company != "" {
		m.Company = utils.StrPtr(c.Company)
	}
	if c.Phone != "" {
		m.Phone = utils.StrPtr(c.Phone)
	}
	return m
}

func toClientModels(clients []*client.Client) []*model.Client {
	out := make([]*model.Client, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientModel(c))
	}
	return out
}

func toClientInput(in model.ClientInput) client.ClientInput {
	return client.ClientInput{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Company:   utils.PtrString(in.Company),
		Email:     in.Email,
		Phone:     utils.PtrString(in.Phone),
	}
}

func toOrderModel(o *order.Order) *model.Order {
	items := make([]*model.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, &model.OrderItem{ID: it.ProductID, Quantity: int32(it.Quantity)})
	}
	return &model.Order{
		ID:        o.ID,
		Items:     items,
		Total:     o.Total,
		Client:    o.ClientID,
		Seller:    o.SellerID,
		Status:    model.OrderStatus(o.Status),
		CreatedAt: formatTime(o.CreatedAt),
	}
}

func toOrderModels(orders []*order.Order) []*model.Order {
	out := make([]*model.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderModel(o))
	}
	return out
}

// toLineItems keeps nil as nil so a revision without items leaves them alone.
func toLineItems(in []*model.OrderItemInput) []order.LineItem {
	if in == nil {
		return nil
	}
	items := make([]order.LineItem, 0, len(in))
	for _, it := range in {
		if it == nil {
			continue
		}
		items = append(items, order.LineItem{ProductID: it.ID, Quantity: int(it.Quantity)})
	}
	return items
}

func toOrderStatus(s *model.OrderStatus) *order.Status {
	if s == nil {
		return nil
	}
	st := order.Status(*s)
	return &st
}

func toTopClientModels(rows []*report.TopClient) []*model.TopClient {
	out := make([]*model.TopClient, 0, len(rows))
	for _, r := range rows {
		out = append(out, &model.TopClient{Total: r.Total, Client: toClientModel(r.Client)})
	}
	return out
}

func toTopSellerModels(rows []*report.TopSeller) []*model.TopSeller {
	out := make([]*model.TopSeller, 0, len(rows))
	for _, r := range rows {
		out = append(out, &model.TopSeller{Total: r.Total, Seller: toUserModel(r.Seller)})
	}
	return out
}
