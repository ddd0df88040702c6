package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/bulkbuy/internal/application/auth"
	"github.com/jhoicas/bulkbuy/internal/application/bulkorder"
	"github.com/jhoicas/bulkbuy/internal/application/catalog"
	"github.com/jhoicas/bulkbuy/internal/application/discovery"
	"github.com/jhoicas/bulkbuy/internal/application/ordering"
	"github.com/jhoicas/bulkbuy/internal/application/ports"
	"github.com/jhoicas/bulkbuy/internal/application/session"
	"github.com/jhoicas/bulkbuy/internal/domain"
	"github.com/jhoicas/bulkbuy/internal/infrastructure/pdf"
	"github.com/jhoicas/bulkbuy/internal/infrastructure/remote"
	"github.com/jhoicas/bulkbuy/internal/infrastructure/storage"
	"github.com/jhoicas/bulkbuy/pkg/config"
	"github.com/jhoicas/bulkbuy/pkg/logger"
)

// environment dependencias del proceso. kv y httpClient son opcionales (tests);
// el resto se construye una sola vez en init.
type environment struct {
	cfg        *config.Config
	log        *logger.Logger
	kv         ports.KeyValueStore
	httpClient *http.Client
	in         io.Reader
	out        io.Writer

	session    *session.Store
	auth       *auth.AuthUseCase
	catalog    *catalog.Manager
	bulk       *bulkorder.Manager
	orders     *ordering.Service
	discovery  *discovery.Service
	statements ports.OrderStatementRenderer
	printer    *message.Printer
	reader     *bufio.Reader
}

// init restaura la sesión (Ready) y arma los componentes.
func (e *environment) init(ctx context.Context) error {
	if e.session != nil {
		return nil
	}
	kv := e.kv
	if kv == nil {
		kv = storage.NewFileStore(e.cfg.Session.Path)
	}
	hc := e.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: e.cfg.API.Timeout}
	}

	e.session = session.NewStore(kv, e.log)
	if err := e.session.Restore(ctx); err != nil {
		return fmt.Errorf("restaurar sesión: %w", err)
	}
	api := remote.NewClient(e.cfg.API.BaseURL(), e.session, hc, e.log)

	e.auth = auth.NewAuthUseCase(api, e.session)
	e.catalog = catalog.NewManager(api, e.log)
	e.bulk = bulkorder.NewManager(api, e.log)
	e.orders = ordering.NewService(api, e.log)
	e.discovery = discovery.NewService(api, api, e.log)
	backend := strings.TrimRight(e.cfg.API.BackendURL, "/")
	e.statements = pdf.NewMarotoPDFGenerator(func(id string) string {
		return backend + "/supplier/" + id + "/products"
	})
	e.printer = message.NewPrinter(language.English)
	e.reader = bufio.NewReader(e.in)
	return nil
}

// promptConfirmer pide confirmación por la entrada estándar; assumeYes la omite.
type promptConfirmer struct {
	env       *environment
	assumeYes bool
}

func (p promptConfirmer) Confirm(_ context.Context, prompt string) (bool, error) {
	if p.assumeYes {
		return true, nil
	}
	fmt.Fprintf(p.env.out, "%s [y/N]: ", prompt)
	line, err := p.env.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// cliError mensaje para el usuario con la causa original accesible vía errors.Is/As.
type cliError struct {
	msg string
	err error
}

func (e *cliError) Error() string { return e.msg }
func (e *cliError) Unwrap() error { return e.err }

// userFacing traduce err al texto a mostrar (detalle del servicio, validación o genérico).
func userFacing(err error, fallback string) error {
	if err == nil {
		return nil
	}
	return &cliError{msg: domain.UserMessage(err, fallback), err: err}
}
