package auth

import (
	"sync"

	"github.com/jhoicas/collectfast-api/internal/application/session"
)

// Store almacén en memoria del principal autenticado y su token fabricado.
// Es el colaborador de autenticación que lee el resolver de sesión
// (equivalente al auth-store del prototipo web).
type Store struct {
	mu        sync.RWMutex
	principal *session.Principal
	token     string
}

// NewStore construye el almacén vacío (nadie autenticado).
func NewStore() *Store {
	return &Store{}
}

// Principal devuelve el principal actual, o nil si no hay nadie autenticado.
func (s *Store) Principal() *session.Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal
}

// Token devuelve el token de acceso vigente, o vacío.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetSession registra principal y token tras un sign-in.
func (s *Store) SetSession(p *session.Principal, token string) {
	s.mu.Lock()
	s.principal = p
	s.token = token
	s.mu.Unlock()
}

// Clear borra la sesión (sign-out).
func (s *Store) Clear() {
	s.mu.Lock()
	s.principal = nil
	s.token = ""
	s.mu.Unlock()
}
