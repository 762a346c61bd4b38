package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/elite-arena/apiserver/types"
)

// products is the in-memory shop catalog. Replace with DB queries when the
// shop outgrows a static list.
var products = []types.Product{
	{
		ID:            "1",
		Name:          "Elite Dragon T-Shirt",
		Price:         "$29.99",
		OriginalPrice: "$39.99",
		Category:      "Apparel",
		Rating:        4.8,
		Reviews:       142,
		Image:         "https://m.media-amazon.com/images/I/B1pppR4gVKL._CLa%7C2140%2C2000%7C91vjU1klRiL.png%7C0%2C0%2C2140%2C2000%2B0.0%2C0.0%2C2140.0%2C2000.0_AC_SL1500_.png",
		OnSale:        true,
		Featured:      true,
		Description:   "Premium cotton T-shirt with an esports dragon print.",
	},
	{
		ID:            "4",
		Name:          "Elite Gaming Headset",
		Price:         "$149.99",
		OriginalPrice: "$199.99",
		Category:      "Hardware",
		Rating:        4.9,
		Reviews:       234,
		Image:         "https://m.media-amazon.com/images/I/61Sst7zTNCL.jpg",
		OnSale:        true,
		Featured:      true,
		Description:   "Surround sound gaming headset with noise-cancelling mic.",
	},
	{
		ID:            "27",
		Name:          "Gaming Laptop RTX 4060",
		Price:         "$1299.99",
		OriginalPrice: "$1499.99",
		Category:      "PC Portables",
		Rating:        4.8,
		Reviews:       156,
		Image:         "https://dlcdnwebimgs.asus.com/gain/92154016-46AB-4593-BE2B-588F86E55B4B/w717/h525",
		OnSale:        true,
		Featured:      true,
		Description:   "Portable powerhouse with RTX 4060 graphics for esports.",
	},
}

// ProductRouter registers catalog routes on the given router.
func ProductRouter(r chi.Router) {
	r.Get("/", listProducts)
	r.Get("/{productID}", getProduct)
}

func listProducts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, products)
}

func getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")
	for _, product := range products {
		if product.ID == id {
			writeJSON(w, http.StatusOK, product)
			return
		}
	}
	writeError(w, http.StatusNotFound, "product not found")
}
