package domain

// CartItem is one selected product with a client-local quantity.
type CartItem struct {
	ProductID   int64
	StoreID     int64
	Name        string
	Price       float64
	Quantity    int
	MaxQuantity int
}

// Cart is the client-local aggregation of selected products. Totals are
// computed, never stored. Methods return a new Cart; the old value is
// untouched.
type Cart struct {
	Items []CartItem
}

// Add merges item into the cart. If the product is already present its
// quantity grows instead of duplicating the entry; quantity is capped at
// the item's MaxQuantity when one is set.
func (c Cart) Add(item CartItem) Cart {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	out := Cart{Items: make([]CartItem, len(c.Items))}
	copy(out.Items, c.Items)

	for i := range out.Items {
		if out.Items[i].ProductID == item.ProductID {
			out.Items[i].Quantity = capQuantity(out.Items[i].Quantity+item.Quantity, out.Items[i].MaxQuantity)
			return out
		}
	}
	item.Quantity = capQuantity(item.Quantity, item.MaxQuantity)
	out.Items = append(out.Items, item)
	return out
}

// Remove drops the product from the cart entirely.
func (c Cart) Remove(productID int64) Cart {
	out := Cart{}
	for _, it := range c.Items {
		if it.ProductID != productID {
			out.Items = append(out.Items, it)
		}
	}
	return out
}

// SetQuantity replaces the quantity for a product; zero or below removes it.
func (c Cart) SetQuantity(productID int64, qty int) Cart {
	if qty <= 0 {
		return c.Remove(productID)
	}
	out := Cart{Items: make([]CartItem, len(c.Items))}
	copy(out.Items, c.Items)
	for i := range out.Items {
		if out.Items[i].ProductID == productID {
			out.Items[i].Quantity = capQuantity(qty, out.Items[i].MaxQuantity)
		}
	}
	return out
}

// TotalPrice is the sum of price * quantity across items.
func (c Cart) TotalPrice() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// TotalItems is the sum of quantities across items.
func (c Cart) TotalItems() int {
	var n int
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func capQuantity(qty, max int) int {
	if max > 0 && qty > max {
		return max
	}
	return qty
}
