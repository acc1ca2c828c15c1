package store

import "pctech-store/internal/models"

// Intent es una petición discreta de cambio de estado.
// El conjunto es cerrado: solo los tipos de este archivo lo implementan,
// y Apply hace un switch exhaustivo sobre ellos.
type Intent interface {
	isIntent()
}

// SetUser reemplaza la sesión completa. nil cierra la sesión
// y retira los permisos de admin al instante.
type SetUser struct {
	User *models.User
}

// AddToCart agrega una unidad del producto al carrito. Si ya existe
// una línea para ese id, incrementa su cantidad; si no, inserta una
// línea nueva al final con cantidad 1.
type AddToCart struct {
	Product models.Product
}

// RemoveFromCart elimina la línea del producto indicado. Es idempotente:
// sin línea que borrar, no hace nada.
type RemoveFromCart struct {
	ProductID string
}

// SetCartQuantity fija la cantidad exacta de una línea. Con cantidad
// <= 0 la línea se elimina. Un id desconocido es un no-op.
type SetCartQuantity struct {
	ProductID string
	Quantity  int
}

// ClearCart vacía el carrito.
type ClearCart struct{}

// ToggleSearch abre o cierra la barra de búsqueda.
type ToggleSearch struct{}

// SetSearchQuery reemplaza el texto de búsqueda. Cadena vacía
// significa "sin filtro".
type SetSearchQuery struct {
	Query string
}

// AddProduct agrega un producto al final del catálogo. Si el id ya
// existe se rechaza como no-op: el catálogo conserva el producto
// original (es responsabilidad del caller generar ids únicos).
type AddProduct struct {
	Product models.Product
}

// UpdateProduct reemplaza el producto con el mismo id, conservando su
// posición en el catálogo. Un id inexistente es un no-op.
type UpdateProduct struct {
	Product models.Product
}

// DeleteProduct elimina el producto del catálogo. No toca las líneas
// de carrito que lo referencien: la referencia obsoleta persiste
// a propósito.
type DeleteProduct struct {
	ProductID string
}

func (SetUser) isIntent()         {}
func (AddToCart) isIntent()       {}
func (RemoveFromCart) isIntent()  {}
func (SetCartQuantity) isIntent() {}
func (ClearCart) isIntent()       {}
func (ToggleSearch) isIntent()    {}
func (SetSearchQuery) isIntent()  {}
func (AddProduct) isIntent()      {}
func (UpdateProduct) isIntent()   {}
func (DeleteProduct) isIntent()   {}
