package store

import (
	"sync"

	"pctech-store/internal/models"
)

// Store mantiene el único snapshot vivo de la aplicación y le aplica
// los intents en el orden en que se despachan. No hay instancia global:
// cada New crea un store independiente, lo que permite levantar tantos
// como hagan falta en tests.
type Store struct {
	mu    sync.RWMutex
	state models.AppState
}

// New crea un store con el catálogo semilla, carrito vacío y sesión
// anónima. La semilla se copia para que el caller no pueda mutar el
// catálogo por fuera.
func New(seed []models.Product) *Store {
	return &Store{
		state: models.AppState{
			Products: append([]models.Product(nil), seed...),
			Cart:     []models.CartLine{},
		},
	}
}

// Dispatch aplica un intent y devuelve el snapshot resultante.
// Los intents se aplican completos y en secuencia: nunca se observa
// un estado a medias.
func (s *Store) Dispatch(intent Intent) models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Apply(s.state, intent)
	return s.state
}

// Snapshot devuelve el estado actual. Cada versión es inmutable, así
// que el valor devuelto puede leerse sin más sincronización.
func (s *Store) Snapshot() models.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
