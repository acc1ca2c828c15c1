package main

import (
	"log"

	"github.com/davecgh/go-spew/spew"

	"pctech-store/internal/auth"
	"pctech-store/internal/catalog"
	"pctech-store/internal/checkout"
	"pctech-store/internal/config"
	"pctech-store/internal/models"
	"pctech-store/internal/query"
	"pctech-store/internal/store"
	"pctech-store/internal/views"
)

// Recorre una sesión completa de la tienda: semilla, login simulado,
// búsqueda, carrito y enlace de pedido. No hay servidor ni persistencia;
// el estado vive y muere con el proceso.
func main() {
	cfg := config.LoadConfig()

	seed, err := catalog.Seed()
	if err != nil {
		log.Fatal("❌ Failed to load seed catalog:", err)
	}

	st := store.New(seed)
	log.Println("🚀 Storefront ready with", len(st.Snapshot().Products), "products")

	// Login simulado desde el header
	state := st.Dispatch(store.SetUser{User: auth.DemoUser()})
	log.Println("👤 Signed in as", state.User.Name, "- admin:", auth.CanAccessAdmin(state.User))

	// Búsqueda libre con el rango de precios por defecto del slider
	st.Dispatch(store.ToggleSearch{})
	state = st.Dispatch(store.SetSearchQuery{Query: "gaming"})

	results := views.ResultsFor(state, query.Params{
		Price: &query.PriceRange{Min: 0, Max: cfg.PriceMax},
		Sort:  query.SortPriceAsc,
	})
	log.Printf("🔍 %s → %d results", views.PageTitle("", state.Search.SearchQuery), len(results))
	for _, p := range results {
		log.Printf("   %s - %d%s (rating %.1f)", p.Name, p.Price, cfg.Currency, p.Rating)
	}

	// Llenar el carrito: dos unidades del primero, una del segundo
	if len(results) >= 2 {
		st.Dispatch(store.AddToCart{Product: results[0]})
		st.Dispatch(store.AddToCart{Product: results[0]})
		state = st.Dispatch(store.AddToCart{Product: results[1]})
	}
	log.Printf("🛒 Cart: %d items, total %d%s",
		views.CartItemCount(state.Cart), views.CartTotal(state.Cart), cfg.Currency)

	// Alta de producto desde el panel de admin
	created := catalog.Normalize(newArrival())
	state = st.Dispatch(store.AddProduct{Product: created})
	log.Println("🆕 Catalog now has", len(state.Products), "products")

	// Pedido por WhatsApp
	messenger := checkout.Messenger{Phone: cfg.WhatsAppPhone, Currency: cfg.Currency}
	log.Println("📱 Order link:", messenger.CartOrderURL(state.Cart))

	spew.Dump(state.Cart)
}

// newArrival es el producto que el demo crea desde el panel de admin
func newArrival() models.Product {
	return models.Product{
		ID:          catalog.NewID(),
		Name:        "Stream Box Mini",
		Description: "PC compact pour le streaming et la bureautique",
		Price:       749,
		Category:    "Bureau",
		Specifications: []models.Spec{
			{Name: "Processeur", Value: "AMD Ryzen 5 8600G"},
			{Name: "RAM", Value: "16GB DDR5"},
			{Name: "Stockage", Value: "512GB NVMe SSD"},
		},
		Images:  []string{"https://images.pexels.com/photos/777001/pexels-photo-777001.jpeg"},
		Rating:  4.5,
		Reviews: 12,
		InStock: true,
		New:     true,
	}
}
