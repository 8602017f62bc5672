package services

import "go-laundry-management/models"

// Draft accumulates line items for an order before submission. A draft
// carries the currently selected category and service; adding an item
// clears the selection, matching how the order form behaves.
type Draft struct {
	category  string
	service   string
	unitPrice int64
	items     []models.LineItem
}

func NewDraft() *Draft {
	return &Draft{category: models.CategoryIntakeByWeight}
}

// SetCategory switches which price table later lookups use and resets the
// current selection.
func (d *Draft) SetCategory(category string) error {
	if _, err := CatalogEntries(category); err != nil {
		return err
	}
	d.category = category
	d.service = ""
	d.unitPrice = 0
	return nil
}

// SelectService looks the service up in the current category's price table.
func (d *Draft) SelectService(name string) error {
	price, err := PriceFor(d.category, name)
	if err != nil {
		return err
	}
	d.service = name
	d.unitPrice = price
	return nil
}

// AddItem appends a line item for the selected service and clears the
// selection. Quantity is kilograms for intake services, pieces otherwise.
func (d *Draft) AddItem(quantity int64) error {
	if d.service == "" || quantity < 1 {
		return ErrInvalidItem
	}
	d.items = append(d.items, models.LineItem{
		Category:   d.category,
		Service:    d.service,
		Quantity:   quantity,
		Unit_price: d.unitPrice,
		Total:      quantity * d.unitPrice,
	})
	d.service = ""
	d.unitPrice = 0
	return nil
}

// RemoveItem deletes the line item at index, keeping the remaining items in
// add order.
func (d *Draft) RemoveItem(index int) error {
	if index < 0 || index >= len(d.items) {
		return ErrIndexOutOfRange
	}
	d.items = append(d.items[:index], d.items[index+1:]...)
	return nil
}

func (d *Draft) Items() []models.LineItem {
	return d.items
}

// Total is recomputed from the items on every call so it can never go stale.
func (d *Draft) Total() int64 {
	var total int64
	for _, item := range d.items {
		total += item.Total
	}
	return total
}
