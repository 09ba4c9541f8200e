package main

type Cart struct {
	ID      string  `json:"id"`
	Dishes  []Dish  `json:"dishes"`
	Address *string `json:"address,omitempty"`
	Zipcode *int32  `json:"zipcode,omitempty"`
	City    *string `json:"city,omitempty"`
	Phone   *int32  `json:"phone,omitempty"`
}

// CartDetails are the delivery fields of a Cart. Like DishFields they are
// applied wholesale; the dish list is never touched.
type CartDetails struct {
	Address *string
	Zipcode *int32
	City    *string
	Phone   *int32
}

// NewCart returns an empty cart with blank address fields and zeroed numbers.
func NewCart(cartID string) Cart {
	blank := ""
	var zero int32

	return Cart{
		ID:      cartID,
		Dishes:  []Dish{},
		Address: &blank,
		Zipcode: &zero,
		City:    cloneString(&blank),
		Phone:   cloneInt32(&zero),
	}
}

// AddDish appends a snapshot of dish. The same dish may be added any number
// of times.
func (c *Cart) AddDish(dish Dish) {
	c.Dishes = append(c.Dishes, dish.Clone())
}

// RemoveDish drops every entry whose id is dishID and reports how many went.
func (c *Cart) RemoveDish(dishID string) int {
	kept := make([]Dish, 0, len(c.Dishes))
	for _, dish := range c.Dishes {
		if dish.ID != dishID {
			kept = append(kept, dish)
		}
	}
	removed := len(c.Dishes) - len(kept)
	c.Dishes = kept

	return removed
}

func (c *Cart) SetDetails(details CartDetails) {
	c.Address = cloneString(details.Address)
	c.Zipcode = cloneInt32(details.Zipcode)
	c.City = cloneString(details.City)
	c.Phone = cloneInt32(details.Phone)
}
