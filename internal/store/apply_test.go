package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pctech-store/internal/models"
	"pctech-store/internal/store"
)

func product(id, name string, price int) models.Product {
	return models.Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Category: "Gaming",
		Images:   []string{"img.jpg"},
		InStock:  true,
	}
}

func seedState() models.AppState {
	return models.AppState{
		Products: []models.Product{
			product("a", "Alpha", 100),
			product("b", "Beta", 200),
		},
		Cart: []models.CartLine{},
	}
}

func TestAddToCartAccumulatesQuantity(t *testing.T) {
	a := product("a", "Alpha", 100)
	b := product("b", "Beta", 200)

	state := seedState()
	state = store.Apply(state, store.AddToCart{Product: a})
	state = store.Apply(state, store.AddToCart{Product: a})
	state = store.Apply(state, store.AddToCart{Product: b})

	// Una sola línea por producto, en orden de primera inserción
	require.Len(t, state.Cart, 2)
	assert.Equal(t, "a", state.Cart[0].ID)
	assert.Equal(t, 2, state.Cart[0].Quantity)
	assert.Equal(t, "b", state.Cart[1].ID)
	assert.Equal(t, 1, state.Cart[1].Quantity)
}

func TestAddToCartKeepsOneLinePerProduct(t *testing.T) {
	a := product("a", "Alpha", 100)

	state := seedState()
	for i := 0; i < 7; i++ {
		state = store.Apply(state, store.AddToCart{Product: a})
	}

	require.Len(t, state.Cart, 1)
	assert.Equal(t, 7, state.Cart[0].Quantity)
}

func TestSetCartQuantitySetsExactValue(t *testing.T) {
	state := seedState()
	state = store.Apply(state, store.AddToCart{Product: product("a", "Alpha", 100)})

	state = store.Apply(state, store.SetCartQuantity{ProductID: "a", Quantity: 5})
	require.Len(t, state.Cart, 1)
	assert.Equal(t, 5, state.Cart[0].Quantity)

	// Fija, no incrementa
	state = store.Apply(state, store.SetCartQuantity{ProductID: "a", Quantity: 3})
	assert.Equal(t, 3, state.Cart[0].Quantity)
}

func TestSetCartQuantityZeroOrNegativeRemovesLine(t *testing.T) {
	for _, quantity := range []int{0, -1, -99} {
		state := seedState()
		state = store.Apply(state, store.AddToCart{Product: product("a", "Alpha", 100)})
		state = store.Apply(state, store.SetCartQuantity{ProductID: "a", Quantity: quantity})
		assert.Empty(t, state.Cart, "quantity=%d debería eliminar la línea", quantity)
	}
}

func TestSetCartQuantityUnknownIDIsNoOp(t *testing.T) {
	state := seedState()
	state = store.Apply(state, store.AddToCart{Product: product("a", "Alpha", 100)})

	next := store.Apply(state, store.SetCartQuantity{ProductID: "ghost", Quantity: 4})
	assert.Equal(t, state, next)
}

func TestRemoveFromCartIsIdempotent(t *testing.T) {
	state := seedState()
	state = store.Apply(state, store.AddToCart{Product: product("a", "Alpha", 100)})
	state = store.Apply(state, store.AddToCart{Product: product("b", "Beta", 200)})

	once := store.Apply(state, store.RemoveFromCart{ProductID: "a"})
	twice := store.Apply(once, store.RemoveFromCart{ProductID: "a"})

	assert.Equal(t, once, twice)
	require.Len(t, twice.Cart, 1)
	assert.Equal(t, "b", twice.Cart[0].ID)
}

func TestClearCart(t *testing.T) {
	state := seedState()
	state = store.Apply(state, store.AddToCart{Product: product("a", "Alpha", 100)})
	state = store.Apply(state, store.ClearCart{})
	assert.Empty(t, state.Cart)

	// Idempotente sobre carrito vacío
	state = store.Apply(state, store.ClearCart{})
	assert.Empty(t, state.Cart)
}

func TestSetUserReplacesSessionWholesale(t *testing.T) {
	admin := &models.User{ID: "u1", Name: "Admin User", Email: "admin@pctech.com", IsAdmin: true}

	state := store.Apply(seedState(), store.SetUser{User: admin})
	require.NotNil(t, state.User)
	assert.True(t, state.User.IsAdmin)

	// Cerrar sesión retira los permisos al instante
	state = store.Apply(state, store.SetUser{User: nil})
	assert.Nil(t, state.User)
}

func TestToggleSearchAndSetQuery(t *testing.T) {
	state := seedState()

	state = store.Apply(state, store.ToggleSearch{})
	assert.True(t, state.Search.IsSearchOpen)
	state = store.Apply(state, store.ToggleSearch{})
	assert.False(t, state.Search.IsSearchOpen)

	state = store.Apply(state, store.SetSearchQuery{Query: "rtx"})
	assert.Equal(t, "rtx", state.Search.SearchQuery)
	state = store.Apply(state, store.SetSearchQuery{Query: ""})
	assert.Equal(t, "", state.Search.SearchQuery)
}

func TestAddProductAppends(t *testing.T) {
	state := store.Apply(seedState(), store.AddProduct{Product: product("c", "Gamma", 300)})

	require.Len(t, state.Products, 3)
	assert.Equal(t, "c", state.Products[2].ID)
}

func TestAddProductRejectsDuplicateID(t *testing.T) {
	state := seedState()
	next := store.Apply(state, store.AddProduct{Product: product("a", "Impostor", 1)})

	// El catálogo conserva el producto original
	assert.Equal(t, state, next)
	assert.Equal(t, "Alpha", next.Products[0].Name)
}

func TestUpdateProductReplacesInPlace(t *testing.T) {
	updated := product("a", "Alpha v2", 150)
	state := store.Apply(seedState(), store.UpdateProduct{Product: updated})

	require.Len(t, state.Products, 2)
	assert.Equal(t, "Alpha v2", state.Products[0].Name)
	assert.Equal(t, 150, state.Products[0].Price)
	assert.Equal(t, "b", state.Products[1].ID)
}

func TestUpdateProductUnknownIDIsNoOp(t *testing.T) {
	state := seedState()
	next := store.Apply(state, store.UpdateProduct{Product: product("ghost", "Ghost", 1)})
	assert.Equal(t, state, next)
}

func TestDeleteProductKeepsStaleCartLine(t *testing.T) {
	state := seedState()
	state = store.Apply(state, store.AddToCart{Product: state.Products[0]})
	state = store.Apply(state, store.DeleteProduct{ProductID: "a"})

	require.Len(t, state.Products, 1)
	assert.Equal(t, "b", state.Products[0].ID)

	// La línea de carrito con la referencia obsoleta persiste a propósito
	require.Len(t, state.Cart, 1)
	assert.Equal(t, "a", state.Cart[0].ID)
}

func TestDeleteProductUnknownIDIsNoOp(t *testing.T) {
	state := seedState()
	next := store.Apply(state, store.DeleteProduct{ProductID: "ghost"})
	assert.Equal(t, state, next)
}

func TestApplyNeverMutatesInput(t *testing.T) {
	state := seedState()
	state = store.Apply(state, store.AddToCart{Product: state.Products[0]})

	frozenProducts := append([]models.Product(nil), state.Products...)
	frozenCart := append([]models.CartLine(nil), state.Cart...)

	store.Apply(state, store.AddToCart{Product: state.Products[1]})
	store.Apply(state, store.SetCartQuantity{ProductID: "a", Quantity: 9})
	store.Apply(state, store.RemoveFromCart{ProductID: "a"})
	store.Apply(state, store.UpdateProduct{Product: product("a", "Mutado", 1)})
	store.Apply(state, store.DeleteProduct{ProductID: "a"})

	assert.Equal(t, frozenProducts, state.Products)
	assert.Equal(t, frozenCart, state.Cart)
}
