package cafe

func strPtr(p string) *string { return &p }

// SampleCafes is the data set `cafes seed` inserts when no workbook is given.
func SampleCafes() []Cafe {
	return []Cafe{
		{
			Name:         "Science Gallery London",
			MapURL:       "https://g.page/scigallerylon",
			ImgURL:       "https://atlondonbridge.com/wp-content/uploads/2019/02/Pano_9758_9761-Edit-190918_LTS_Science_Gallery-Medium-Crop-1024x576.jpg",
			Location:     "London Bridge",
			Seats:        "50+",
			HasToilet:    "1",
			HasWifi:      "0",
			HasSockets:   "1",
			CanTakeCalls: "1",
			CoffeePrice:  strPtr("£2.40"),
		},
		{
			Name:         "Social - Copeland Road",
			MapURL:       "https://g.page/CopelandSocial",
			ImgURL:       "https://images.squarespace-cdn.com/content/v1/5734f3ff4d088e2c5b08fe13/1555848382269-9F13FE1WQDNUUDQOAOXF/ke17ZwdGBToddI8pDm48kAx9qLOWRFTXZzVRzVb4dDJ7gQa3H78H3Y0txjaiv_0fDoOvxcdMmMKkDsyUqMSsMWxHk725yiiHCCLfrh8O1z5QPOohDIaIeljMHgDF5CVlOqpeNLcJ80NK65_fV7S1UVFeKeadsWn1Kr2UiyJwSP2fhiSU3PoVrjUgHaEKnGnqa2dcDTSUd05L1nLRyWuEBw/IMG_5091.JPG",
			Location:     "Peckham",
			Seats:        "20-30",
			HasToilet:    "1",
			HasWifi:      "0",
			HasSockets:   "1",
			CanTakeCalls: "0",
			CoffeePrice:  strPtr("£2.75"),
		},
		{
			Name:         "One Tree Cafe",
			MapURL:       "https://goo.gl/maps/4fyBQUwjq3iJZFsF9",
			ImgURL:       "https://lh3.googleusercontent.com/p/AF1QipOM7u6dQWVrk6LduyaGNGcWTEWqiZXpM4q7nBjx=s1360-w1360-h1020",
			Location:     "Peckham",
			Seats:        "20-30",
			HasToilet:    "1",
			HasWifi:      "1",
			HasSockets:   "0",
			CanTakeCalls: "1",
			CoffeePrice:  strPtr("£2.80"),
		},
		{
			Name:         "Bermondsey Street Coffee",
			MapURL:       "https://g.page/bermondseystreetcoffee",
			ImgURL:       "https://lh3.googleusercontent.com/p/AF1QipPj8WKYsHdRzr3kk9ZPKszjRB-2-0oxm6THlTK-=s1360-w1360-h1020",
			Location:     "Bermondsey",
			Seats:        "10-20",
			HasToilet:    "1",
			HasWifi:      "1",
			HasSockets:   "1",
			CanTakeCalls: "1",
			CoffeePrice:  strPtr("£2.30"),
		},
	}
}
