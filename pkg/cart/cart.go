package cart

// Item is one medicine line in a cart.
type Item struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Quantity             int     `json:"quantity"`
	Price                float64 `json:"price"`
	Image                string  `json:"image,omitempty"`
	Category             string  `json:"category,omitempty"`
	PrescriptionRequired bool    `json:"prescriptionRequired,omitempty"`
}

// Cart holds the selected items for one reservation. The whole cart is
// associated with a single PNR and passenger name.
type Cart struct {
	Items         []Item `json:"items"`
	PNRNumber     string `json:"pnrNumber"`
	PassengerName string `json:"passengerName"`
}

// AddItem appends the item, or bumps the quantity when the id is already in
// the cart.
func (c *Cart) AddItem(item Item) {
	for i := range c.Items {
		if c.Items[i].ID == item.ID {
			c.Items[i].Quantity++
			return
		}
	}

	c.Items = append(c.Items, item)
}

func (c *Cart) RemoveItem(id string) {
	items := []Item{}
	for _, item := range c.Items {
		if item.ID != id {
			items = append(items, item)
		}
	}

	c.Items = items
}

func (c *Cart) UpdateQuantity(id string, quantity int) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = []Item{}
}

func (c *Cart) SetPNR(pnrNumber string, passengerName string) {
	c.PNRNumber = pnrNumber
	c.PassengerName = passengerName
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}

	return total
}

func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}

	return total
}
