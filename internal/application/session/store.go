// Package session mantiene la identidad autenticada y su token, los persiste en el
// dispositivo y los restaura al arrancar.
//
// Máquina de estados:
//
//	Loading ──Restore──▶ Ready(sin identidad) ──Login──▶ Ready(identidad)
//	        └─Restore──▶ Ready(identidad)     ◀─Logout──┘
//
// Hay un único Store por proceso; se crea al arrancar y se inyecta en quien lo necesite.
// Logout vacía su contenido, nunca lo destruye.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/jhoicas/bulkbuy/internal/application/ports"
	"github.com/jhoicas/bulkbuy/internal/domain"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
	"github.com/jhoicas/bulkbuy/pkg/logger"
)

// Claves en el almacenamiento local.
const (
	KeyUser  = "user"
	KeyToken = "token"
)

// Status fase de la sesión.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
)

func (s Status) String() string {
	if s == StatusReady {
		return "ready"
	}
	return "loading"
}

// Session copia inmutable del estado. User y Token están ambos o ninguno.
type Session struct {
	User   *entity.User
	Token  string
	Status Status
}

// Authenticated indica si hay identidad.
func (s Session) Authenticated() bool {
	return s.User != nil && s.Token != ""
}

// Store dueño de la sesión del proceso.
type Store struct {
	kv  ports.KeyValueStore
	log *logger.Logger

	mu     sync.RWMutex
	user   *entity.User
	token  string
	status Status
	ready  chan struct{}
}

// NewStore construye el store en estado Loading.
func NewStore(kv ports.KeyValueStore, log *logger.Logger) *Store {
	return &Store{
		kv:    kv,
		log:   log.Component("session"),
		ready: make(chan struct{}),
	}
}

// Restore lee la identidad persistida y pasa a Ready. Nunca bloquea el arranque:
// un payload corrupto o un par incompleto se borra y se sigue sin identidad.
// Llamarlo de nuevo una vez en Ready no hace nada.
func (s *Store) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == StatusReady {
		return nil
	}
	defer s.markReady()

	user, token, err := s.readPersisted(ctx)
	if err != nil && !errors.Is(err, domain.ErrCorruptSession) {
		// fallo de lectura: se sigue sin identidad pero el archivo queda intacto
		s.log.Warn().Err(err).Msg("no se pudo leer la sesión persistida")
		return nil
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("sesión persistida descartada")
		if delErr := s.kv.Delete(ctx, KeyUser, KeyToken); delErr != nil {
			s.log.Error().Err(delErr).Msg("no se pudo limpiar la sesión persistida")
		}
		return nil
	}
	if user == nil {
		return nil
	}
	s.user, s.token = user, token
	s.log.Debug().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("sesión restaurada")
	return nil
}

// readPersisted devuelve (nil, "", nil) si no hay sesión, ErrCorruptSession si lo que hay
// no sirve y el error de lectura tal cual si el almacenamiento falla.
func (s *Store) readPersisted(ctx context.Context) (*entity.User, string, error) {
	rawUser, hasUser, err := s.kv.Get(ctx, KeyUser)
	if err != nil {
		return nil, "", fmt.Errorf("session: leer %s: %w", KeyUser, err)
	}
	token, hasToken, err := s.kv.Get(ctx, KeyToken)
	if err != nil {
		return nil, "", fmt.Errorf("session: leer %s: %w", KeyToken, err)
	}
	switch {
	case !hasUser && !hasToken:
		return nil, "", nil
	case !hasUser || !hasToken || rawUser == "" || token == "":
		return nil, "", fmt.Errorf("%w: par user/token incompleto", domain.ErrCorruptSession)
	}
	var user entity.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrCorruptSession, err)
	}
	if user.ID == "" || !user.Role.Valid() {
		return nil, "", fmt.Errorf("%w: identidad sin id o rol", domain.ErrCorruptSession)
	}
	return &user, token, nil
}

func (s *Store) markReady() {
	s.status = StatusReady
	close(s.ready)
}

// WaitReady bloquea hasta que Restore haya terminado.
func (s *Store) WaitReady(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Login fija la identidad y la persiste. Primero se escriben ambas claves en el
// almacenamiento y luego se cambia el estado en memoria, todo bajo el lock:
// quien lea la sesión ve el antes o el después, nunca un estado intermedio.
func (s *Store) Login(ctx context.Context, user entity.User, token string) error {
	if user.ID == "" || !user.Role.Valid() || token == "" {
		return fmt.Errorf("session: login: %w: se requieren usuario con rol y token", domain.ErrValidation)
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: serializar usuario: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusReady {
		return errors.New("session: login antes de restaurar la sesión")
	}
	if err := s.kv.Set(ctx, map[string]string{KeyUser: string(raw), KeyToken: token}); err != nil {
		return fmt.Errorf("session: persistir: %w", err)
	}
	s.user, s.token = &user, token
	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("sesión iniciada")
	return nil
}

// Logout borra identidad y almacenamiento. La memoria se limpia aunque falle el borrado.
// Antes de Restore no hay sesión que cerrar y devuelve error sin tocar el almacenamiento.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusReady {
		return errors.New("session: logout antes de restaurar la sesión")
	}
	s.user, s.token = nil, ""
	if err := s.kv.Delete(ctx, KeyUser, KeyToken); err != nil {
		return fmt.Errorf("session: borrar persistencia: %w", err)
	}
	s.log.Info().Msg("sesión cerrada")
	return nil
}

// Snapshot copia del estado actual.
func (s *Store) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := Session{Token: s.token, Status: s.status}
	if s.user != nil {
		u := *s.user
		out.User = &u
	}
	return out
}

// CurrentUser identidad actual o ErrNotAuthenticated.
func (s *Store) CurrentUser() (entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return entity.User{}, domain.ErrNotAuthenticated
	}
	return *s.user, nil
}

// Token token actual ("" sin sesión).
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// AuthHeader cabecera Authorization con el token actual.
// Sin sesión el token va vacío; no debe usarse mientras el estado sea Loading.
func (s *Store) AuthHeader() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+s.Token())
	return h
}
