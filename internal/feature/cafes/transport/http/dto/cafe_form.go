// Package dto defines the form shape submitted to the café handlers.
package dto

import "cafe_backend/internal/feature/cafes/domain/entity"

// CafeForm is the café registration/edit form. The checkbox fields
// carry no binding tag: an unticked box is simply absent from the
// submission and binds to false.
type CafeForm struct {
	Name         string `form:"name" binding:"required"`
	MapURL       string `form:"map_url" binding:"required,url"`
	ImgURL       string `form:"img_url" binding:"required,url"`
	Location     string `form:"location" binding:"required"`
	HasSockets   bool   `form:"has_sockets"`
	HasToilet    bool   `form:"has_toilet"`
	HasWifi      bool   `form:"has_wifi"`
	CanTakeCalls bool   `form:"can_take_calls"`
	Seats        string `form:"seats" binding:"required"`
	CoffeePrice  string `form:"coffee_price" binding:"required"`
}

// ToEntity maps the submitted fields onto a café record.
func (f *CafeForm) ToEntity() entity.Cafe {
	return entity.Cafe{
		Name:         f.Name,
		MapURL:       f.MapURL,
		ImgURL:       f.ImgURL,
		Location:     f.Location,
		HasSockets:   f.HasSockets,
		HasToilet:    f.HasToilet,
		HasWifi:      f.HasWifi,
		CanTakeCalls: f.CanTakeCalls,
		Seats:        f.Seats,
		CoffeePrice:  f.CoffeePrice,
	}
}

// FromEntity pre-populates the form with a café's current values for
// the edit page.
func FromEntity(c *entity.Cafe) CafeForm {
	return CafeForm{
		Name:         c.Name,
		MapURL:       c.MapURL,
		ImgURL:       c.ImgURL,
		Location:     c.Location,
		HasSockets:   c.HasSockets,
		HasToilet:    c.HasToilet,
		HasWifi:      c.HasWifi,
		CanTakeCalls: c.CanTakeCalls,
		Seats:        c.Seats,
		CoffeePrice:  c.CoffeePrice,
	}
}
