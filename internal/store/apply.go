package store

import "pctech-store/internal/models"

// Apply calcula el siguiente snapshot a partir del actual y un intent.
// Es una función total y pura: nunca muta el estado de entrada (los
// slices se clonan antes de cambiar) y nunca falla — las referencias a
// productos desconocidos se absorben como no-ops para que una vista
// con datos viejos no pueda tumbar la sesión.
func Apply(state models.AppState, intent Intent) models.AppState {
	switch in := intent.(type) {
	case SetUser:
		state.User = in.User

	case AddToCart:
		state.Cart = addToCart(state.Cart, in.Product)

	case RemoveFromCart:
		state.Cart = removeLine(state.Cart, in.ProductID)

	case SetCartQuantity:
		if in.Quantity <= 0 {
			state.Cart = removeLine(state.Cart, in.ProductID)
		} else {
			state.Cart = setQuantity(state.Cart, in.ProductID, in.Quantity)
		}

	case ClearCart:
		state.Cart = []models.CartLine{}

	case ToggleSearch:
		state.Search.IsSearchOpen = !state.Search.IsSearchOpen

	case SetSearchQuery:
		state.Search.SearchQuery = in.Query

	case AddProduct:
		// Id duplicado: se rechaza y el catálogo queda intacto
		if findProduct(state.Products, in.Product.ID) >= 0 {
			return state
		}
		products := make([]models.Product, 0, len(state.Products)+1)
		products = append(products, state.Products...)
		state.Products = append(products, in.Product)

	case UpdateProduct:
		i := findProduct(state.Products, in.Product.ID)
		if i < 0 {
			return state
		}
		products := append([]models.Product(nil), state.Products...)
		products[i] = in.Product
		state.Products = products

	case DeleteProduct:
		i := findProduct(state.Products, in.ProductID)
		if i < 0 {
			return state
		}
		products := make([]models.Product, 0, len(state.Products)-1)
		products = append(products, state.Products[:i]...)
		state.Products = append(products, state.Products[i+1:]...)
	}

	return state
}

func findProduct(products []models.Product, id string) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func findLine(cart []models.CartLine, id string) int {
	for i, line := range cart {
		if line.ID == id {
			return i
		}
	}
	return -1
}

// addToCart conserva el orden de primera inserción de cada línea
func addToCart(cart []models.CartLine, product models.Product) []models.CartLine {
	if i := findLine(cart, product.ID); i >= 0 {
		next := append([]models.CartLine(nil), cart...)
		next[i].Quantity++
		return next
	}
	next := make([]models.CartLine, 0, len(cart)+1)
	next = append(next, cart...)
	return append(next, models.CartLine{Product: product, Quantity: 1})
}

func removeLine(cart []models.CartLine, id string) []models.CartLine {
	i := findLine(cart, id)
	if i < 0 {
		return cart
	}
	next := make([]models.CartLine, 0, len(cart)-1)
	next = append(next, cart[:i]...)
	return append(next, cart[i+1:]...)
}

func setQuantity(cart []models.CartLine, id string, quantity int) []models.CartLine {
	i := findLine(cart, id)
	if i < 0 {
		return cart
	}
	next := append([]models.CartLine(nil), cart...)
	next[i].Quantity = quantity
	return next
}
