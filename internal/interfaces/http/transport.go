package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// NewTransport adapta app.Test a http.RoundTripper: un *http.Client con este transporte
// habla con la app Fiber en el mismo proceso, sin abrir sockets.
func NewTransport(app *fiber.App) http.RoundTripper {
	return fiberTransport{app: app}
}

type fiberTransport struct {
	app *fiber.App
}

func (t fiberTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	resp, err := t.app.Test(req, -1)
	if err != nil {
		return nil, err
	}
	resp.Request = req
	return resp, nil
}
