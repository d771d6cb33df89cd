package cafe

import "github.com/gin-gonic/gin"

// AddCafeRequest carries the raw query values of POST /add.
type AddCafeRequest struct {
	Name         string
	MapURL       string
	ImgURL       string
	Location     string
	Seats        string
	HasToilet    string
	HasWifi      string
	HasSockets   string
	CanTakeCalls string
	CoffeePrice  *string
}

func addCafeRequestFromQuery(c *gin.Context) AddCafeRequest {
	req := AddCafeRequest{
		Name:         c.Query("name"),
		MapURL:       c.Query("map_url"),
		ImgURL:       c.Query("img_url"),
		Location:     c.Query("location"),
		Seats:        c.Query("seats"),
		HasToilet:    c.Query("has_toilet"),
		HasWifi:      c.Query("has_wifi"),
		HasSockets:   c.Query("has_sockets"),
		CanTakeCalls: c.Query("can_take_calls"),
	}
	if price, ok := c.GetQuery("coffee_price"); ok {
		req.CoffeePrice = &price
	}
	return req
}

func (r AddCafeRequest) toCafe() *Cafe {
	return &Cafe{
		Name:         r.Name,
		MapURL:       r.MapURL,
		ImgURL:       r.ImgURL,
		Location:     r.Location,
		Seats:        r.Seats,
		HasToilet:    r.HasToilet,
		HasWifi:      r.HasWifi,
		HasSockets:   r.HasSockets,
		CanTakeCalls: r.CanTakeCalls,
		CoffeePrice:  r.CoffeePrice,
	}
}

// ToJSON lists every column by hand so the wire format does not follow
// struct changes implicitly.
func ToJSON(c *Cafe) gin.H {
	var price any
	if c.CoffeePrice != nil {
		price = *c.CoffeePrice
	}
	return gin.H{
		"id":             c.ID,
		"name":           c.Name,
		"map_url":        c.MapURL,
		"img_url":        c.ImgURL,
		"location":       c.Location,
		"seats":          c.Seats,
		"has_toilet":     c.HasToilet,
		"has_wifi":       c.HasWifi,
		"has_sockets":    c.HasSockets,
		"can_take_calls": c.CanTakeCalls,
		"coffee_price":   price,
	}
}

func listJSON(cafes []Cafe) []gin.H {
	out := make([]gin.H, 0, len(cafes))
	for i := range cafes {
		out = append(out, ToJSON(&cafes[i]))
	}
	return out
}
