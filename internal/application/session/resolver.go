// Package session contiene el resolver de sesión/tenancy: decide qué usuario
// está autenticado y qué empresa está activa, y publica ese estado al resto
// de la aplicación como lectura.
package session

import (
	"sync"

	"github.com/jhoicas/collectfast-api/internal/domain"
	"github.com/jhoicas/collectfast-api/internal/domain/entity"
	"github.com/jhoicas/collectfast-api/internal/domain/repository"
	"github.com/jhoicas/collectfast-api/pkg/logger"
)

// Claves del almacén durable (equivalentes a las de localStorage del prototipo).
const (
	StorageKeyCurrentCompany = "collectfast_current_company_id"
	StorageKeyIsAccountant   = "collectfast_is_accountant"
	StorageKeyUserEmail      = "collectfast_user_email"
)

// Principal identidad reportada por el colaborador de autenticación.
type Principal struct {
	Email string
}

// PrincipalReader puerto del colaborador de autenticación. El resolver solo
// lo lee; devuelve nil cuando no hay nadie autenticado.
type PrincipalReader interface {
	Principal() *Principal
}

// Snapshot copia consistente del estado de sesión para suscriptores.
type Snapshot struct {
	User             *entity.User
	CurrentCompanyID string
	IsLoading        bool
}

// Resolver es el dueño único del estado de sesión: usuario activo, empresa
// seleccionada y flag de carga. Toda mutación pasa por Initialize o
// SwitchCompany; los fallos degradan a "sin selección" y quedan en el log.
//
// El prototipo original corre en un solo hilo de UI; aquí los handlers HTTP
// leen concurrentemente, así que el estado se protege con RWMutex.
type Resolver struct {
	users     repository.UserDirectory
	companies repository.CompanyDirectory
	settings  repository.SettingsStore
	auth      PrincipalReader
	log       *logger.Logger

	mu               sync.RWMutex
	user             *entity.User
	currentCompanyID string
	loading          bool

	listenerMu   sync.Mutex
	listeners    map[int]func(Snapshot)
	nextListener int
}

// NewResolver construye el resolver. El estado arranca en "cargando" hasta
// la primera llamada a Initialize.
func NewResolver(
	users repository.UserDirectory,
	companies repository.CompanyDirectory,
	settings repository.SettingsStore,
	auth PrincipalReader,
	log *logger.Logger,
) *Resolver {
	return &Resolver{
		users:     users,
		companies: companies,
		settings:  settings,
		auth:      auth,
		log:       log,
		loading:   true,
		listeners: make(map[int]func(Snapshot)),
	}
}

// Initialize resuelve usuario y empresa activa. Se invoca al arrancar y cada
// vez que cambia la señal de autenticación; es idempotente: con el mismo
// principal y el mismo almacén produce la misma selección.
//
// Resolución del usuario:
//  1. email del principal autenticado, por coincidencia exacta
//  2. si el flag durable de contador está en "true", el primer contador
//  3. el usuario por defecto del prototipo
//
// Selección de empresa: id recordado válido > empresa por defecto del
// usuario > primera accesible > ninguna. La selección resultante se persiste
// para la próxima ejecución.
func (r *Resolver) Initialize() {
	r.mu.Lock()
	r.loading = true

	var current *entity.User
	if p := r.auth.Principal(); p != nil && p.Email != "" {
		current = r.users.GetByEmail(p.Email)
	}
	if current == nil {
		if flag, ok := r.settings.Get(StorageKeyIsAccountant); ok && flag == "true" {
			// Flag de contador activo: solo vale un usuario contador.
			current = r.users.FirstAccountant()
		} else {
			current = r.users.DefaultUser()
		}
	}

	if current == nil {
		// Estado terminal sin sesión; la UI debe manejarlo.
		r.user = nil
		r.currentCompanyID = ""
		r.loading = false
		r.mu.Unlock()
		r.log.Warn().Msg("sesión sin usuario resoluble")
		r.notify()
		return
	}

	r.user = current

	selected := ""
	if saved, ok := r.settings.Get(StorageKeyCurrentCompany); ok && current.HasCompany(saved) {
		selected = saved
	}
	if selected == "" {
		selected = current.DefaultCompanyID
	}
	if selected == "" && len(current.CompanyIDs) > 0 {
		selected = current.CompanyIDs[0]
	}

	r.currentCompanyID = selected
	if selected != "" {
		// La selección recién derivada pasa a ser la recordada.
		if err := r.settings.Set(StorageKeyCurrentCompany, selected); err != nil {
			r.log.Warn().Err(err).Msg("persistir empresa seleccionada")
		}
	}
	r.loading = false
	r.mu.Unlock()

	r.log.Info().
		Str("user_id", current.ID).
		Str("company_id", selected).
		Msg("sesión inicializada")
	r.notify()
}

// SwitchCompany cambia la empresa activa. Valida que haya sesión, que la
// empresa esté en la lista accesible del usuario y que exista en el
// directorio; en caso contrario no muta nada, deja un warning y devuelve el
// sentinel correspondiente.
func (r *Resolver) SwitchCompany(companyID string) error {
	r.mu.Lock()
	if r.user == nil {
		r.mu.Unlock()
		r.log.Warn().Str("company_id", companyID).Msg("switch de empresa sin sesión")
		return domain.ErrNoSession
	}
	if !r.user.HasCompany(companyID) {
		userID := r.user.ID
		r.mu.Unlock()
		r.log.Warn().
			Str("user_id", userID).
			Str("company_id", companyID).
			Msg("el usuario no tiene acceso a la empresa")
		return domain.ErrCompanyNotAccessible
	}
	if r.companies.GetByID(companyID) == nil {
		r.mu.Unlock()
		r.log.Warn().Str("company_id", companyID).Msg("empresa inexistente")
		return domain.ErrCompanyNotFound
	}

	r.currentCompanyID = companyID
	if err := r.settings.Set(StorageKeyCurrentCompany, companyID); err != nil {
		r.log.Warn().Err(err).Msg("persistir empresa seleccionada")
	}
	r.mu.Unlock()
	r.notify()
	return nil
}

// User devuelve el usuario activo, o nil sin sesión.
func (r *Resolver) User() *entity.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.user
}

// CurrentCompany resuelve la empresa activa contra el directorio, o nil.
func (r *Resolver) CurrentCompany() *entity.Company {
	r.mu.RLock()
	id := r.currentCompanyID
	r.mu.RUnlock()
	if id == "" {
		return nil
	}
	return r.companies.GetByID(id)
}

// Companies devuelve las empresas visibles para el usuario activo, en el
// orden de su lista de acceso. IDs que no resuelven en el directorio se
// omiten. Sin filtrado adicional por rol en esta capa.
func (r *Resolver) Companies() []*entity.Company {
	r.mu.RLock()
	user := r.user
	r.mu.RUnlock()
	if user == nil {
		return nil
	}
	list := make([]*entity.Company, 0, len(user.CompanyIDs))
	for _, id := range user.CompanyIDs {
		if c := r.companies.GetByID(id); c != nil {
			list = append(list, c)
		}
	}
	return list
}

// IsAccountant indica si el usuario activo es contador multi-empresa.
func (r *Resolver) IsAccountant() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.user != nil && r.user.IsAccountant
}

// CanManageUsers true solo para roles admin y founder.
func (r *Resolver) CanManageUsers() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.user != nil && r.user.CanManage()
}

// CanEditSettings true solo para roles admin y founder.
func (r *Resolver) CanEditSettings() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.user != nil && r.user.CanManage()
}

// IsLoading indica si el resolver aún no completó la inicialización.
func (r *Resolver) IsLoading() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loading
}

// Snapshot devuelve una copia consistente del estado actual.
func (r *Resolver) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Snapshot{
		User:             r.user,
		CurrentCompanyID: r.currentCompanyID,
		IsLoading:        r.loading,
	}
}

// Subscribe registra un suscriptor que recibe cada cambio de estado.
// Devuelve la función para desuscribirse.
func (r *Resolver) Subscribe(fn func(Snapshot)) func() {
	r.listenerMu.Lock()
	id := r.nextListener
	r.nextListener++
	r.listeners[id] = fn
	r.listenerMu.Unlock()
	return func() {
		r.listenerMu.Lock()
		delete(r.listeners, id)
		r.listenerMu.Unlock()
	}
}

func (r *Resolver) notify() {
	snap := r.Snapshot()
	r.listenerMu.Lock()
	fns := make([]func(Snapshot), 0, len(r.listeners))
	for _, fn := range r.listeners {
		fns = append(fns, fn)
	}
	r.listenerMu.Unlock()
	for _, fn := range fns {
		fn(snap)
	}
}
