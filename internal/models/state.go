package models

// CartLine es la entrada de un producto en el carrito.
// Quantity siempre es >= 1: una línea que llega a 0 se elimina.
type CartLine struct {
	Product  `yaml:",inline"`
	Quantity int `json:"quantity" yaml:"quantity"`
}

// User representa una sesión autenticada (simulada).
// Un puntero nil significa visitante anónimo.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Avatar  string `json:"avatar,omitempty"`
	IsAdmin bool   `json:"isAdmin"`
}

// SearchUI son los flags transitorios de la barra de búsqueda.
// Es estado de vista, pero vive junto al dominio porque el motor
// de consultas consume SearchQuery.
type SearchUI struct {
	IsSearchOpen bool   `json:"isSearchOpen"`
	SearchQuery  string `json:"searchQuery"`
}

// AppState es el snapshot completo de la aplicación en un instante.
// Cada versión es inmutable: los intents producen un snapshot nuevo
// en lugar de mutar el anterior.
type AppState struct {
	Products []Product  `json:"products"`
	Cart     []CartLine `json:"cart"`
	User     *User      `json:"user"`
	Search   SearchUI   `json:"search"`
}
