// Package routeguard decide, para cada navegación del panel, si se permite
// o se redirige según haya sesión o no. Sin I/O.
package routeguard

import (
	"path"
	"strings"
)

const (
	RootPath     = "/"
	LoginPath    = "/login"
	RegisterPath = "/register"
)

// Decision es el resultado del guard. Si Allow es false, Redirect tiene destino.
type Decision struct {
	Allow    bool
	Redirect string
}

func allow() Decision { return Decision{Allow: true} }

func redirect(target string) Decision { return Decision{Redirect: target} }

// Decide es total sobre (authenticated, path).
// La raíz queda siempre abierta, con o sin sesión.
func Decide(authenticated bool, target string) Decision {
	p := Normalize(target)

	switch {
	case IsAuthPage(p) && authenticated:
		return redirect(RootPath)
	case IsAuthPage(p):
		return allow()
	case p == RootPath:
		return allow()
	case authenticated:
		return allow()
	default:
		return redirect(LoginPath)
	}
}

// IsAuthPage indica /login o /register.
func IsAuthPage(p string) bool {
	p = Normalize(p)
	return p == LoginPath || p == RegisterPath
}

// Normalize limpia el path: sin query, sin barra final, vacío => "/".
func Normalize(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.TrimSpace(p)
	if p == "" {
		return RootPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
