package main

import (
	"context"
	"errors"
	"fmt"

	"eldercare-panel/internal/domain/devices"
	"eldercare-panel/internal/domain/events"
	"eldercare-panel/internal/domain/persons"
	"eldercare-panel/internal/domain/session"
	"eldercare-panel/internal/domain/validation"
	"eldercare-panel/internal/platform/dateutil"
	"eldercare-panel/internal/ports/auth"
)

func (c *cli) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login", c.stderr)
	email := fs.String("email", "", "email del operador")
	password := fs.String("password", "", "contraseña (o PANEL_PASSWORD)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	out, err := c.app.Session.Login(ctx, *email, envOr(*password, "PANEL_PASSWORD"))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "logged in (%s token stored)\n", out.TokenType)
	return nil
}

func (c *cli) logout(ctx context.Context) error {
	if err := c.app.Session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, "logged out")
	return nil
}

func (c *cli) status(ctx context.Context) error {
	out := map[string]any{"authenticated": c.app.Session.IsAuthenticated(ctx)}

	claims, err := c.app.Session.Claims(ctx)
	switch {
	case errors.Is(err, session.ErrNotAuthenticated):
	case err != nil:
		// token opaco: hay sesión pero no se puede mostrar quién
		out["claims_error"] = err.Error()
	default:
		out["email"] = claims.Email
		out["user_id"] = claims.UserID
		if claims.ExpiresAt != nil {
			out["expires_at"] = claims.ExpiresAt.In(dateutil.Argentina).Format("02/01/2006 15:04")
		}
	}
	return c.printJSON(out)
}

func (c *cli) refresh(ctx context.Context) error {
	out, err := c.app.Session.Refresh(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "token refreshed (%s)\n", out.TokenType)
	return nil
}

func (c *cli) register(ctx context.Context, args []string) error {
	fs := newFlagSet("register", c.stderr)
	var in auth.RegisterInput
	fs.StringVar(&in.Email, "email", "", "email")
	fs.StringVar(&in.Password, "password", "", "contraseña (o PANEL_PASSWORD)")
	fs.StringVar(&in.FirstName, "first-name", "", "nombre")
	fs.StringVar(&in.LastName, "last-name", "", "apellido")
	fs.StringVar(&in.Phone, "phone", "", "teléfono")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	in.Password = envOr(in.Password, "PANEL_PASSWORD")

	u, err := c.app.Session.Register(ctx, in)
	if err != nil {
		return err
	}
	return c.printJSON(u)
}

func (c *cli) persons(ctx context.Context, args []string) error {
	sub, rest, err := subcommand(args)
	if err != nil {
		return err
	}
	svc := c.app.Persons

	fs := newFlagSet("persons "+sub, c.stderr)
	id := fs.String("id", "", "id del adulto mayor")
	user := fs.String("user", "", "id del usuario (by-user)")
	var f persons.Form
	fs.StringVar(&f.FirstName, "first-name", "", "nombre")
	fs.StringVar(&f.LastName, "last-name", "", "apellido")
	age := fs.String("age", "", "edad")
	fs.StringVar(&f.Address, "address", "", "dirección")
	if err := fs.Parse(rest); err != nil {
		return errUsage
	}
	f.Age = validation.Text(*age)

	switch sub {
	case "list":
		items, err := svc.List(ctx)
		if err != nil {
			return err
		}
		return c.printJSON(items)
	case "get":
		p, err := svc.Get(ctx, *id)
		if err != nil {
			return err
		}
		return c.printJSON(p)
	case "by-user":
		items, err := svc.ListByUser(ctx, *user)
		if err != nil {
			return err
		}
		return c.printJSON(items)
	case "create":
		p, err := svc.Create(ctx, f)
		if err != nil {
			return err
		}
		return c.printJSON(p)
	case "update":
		p, err := svc.Update(ctx, *id, f)
		if err != nil {
			return err
		}
		return c.printJSON(p)
	case "delete":
		if err := svc.Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Fprintln(c.stdout, "deleted")
		return nil
	}
	return unknownSub("persons", sub)
}

func (c *cli) events(ctx context.Context, args []string) error {
	sub, rest, err := subcommand(args)
	if err != nil {
		return err
	}
	svc := c.app.Events

	fs := newFlagSet("events "+sub, c.stderr)
	id := fs.String("id", "", "id del evento")
	var f events.Form
	fs.StringVar(&f.Title, "title", "", "título")
	kind := fs.String("type", "", "tipo de evento")
	fs.StringVar(&f.StartDateTime, "start", "", "inicio (YYYY-MM-DDTHH:MM)")
	fs.StringVar(&f.EndDateTime, "end", "", "fin (YYYY-MM-DDTHH:MM)")
	fs.StringVar(&f.Location, "location", "", "ubicación")
	fs.StringVar(&f.Description, "description", "", "descripción")
	fs.StringVar(&f.ElderlyPersonID, "person", "", "id del adulto mayor")
	if err := fs.Parse(rest); err != nil {
		return errUsage
	}
	f.EventType = events.EventType(*kind)

	switch sub {
	case "list":
		items, err := svc.List(ctx)
		if err != nil {
			return err
		}
		views := make([]events.View, 0, len(items))
		for _, e := range items {
			views = append(views, events.NewView(e, svc.Location()))
		}
		return c.printJSON(views)
	case "get":
		e, err := svc.Get(ctx, *id)
		if err != nil {
			return err
		}
		return c.printJSON(events.NewView(e, svc.Location()))
	case "create":
		e, err := svc.Create(ctx, f)
		if err != nil {
			return err
		}
		return c.printJSON(e)
	case "update":
		e, err := svc.Update(ctx, *id, f)
		if err != nil {
			return err
		}
		return c.printJSON(e)
	case "delete":
		if err := svc.Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Fprintln(c.stdout, "deleted")
		return nil
	}
	return unknownSub("events", sub)
}

func (c *cli) devices(ctx context.Context, args []string) error {
	sub, rest, err := subcommand(args)
	if err != nil {
		return err
	}
	svc := c.app.Devices

	fs := newFlagSet("devices "+sub, c.stderr)
	id := fs.String("id", "", "id del dispositivo")
	person := fs.String("person", "", "id del adulto mayor")
	if err := fs.Parse(rest); err != nil {
		return errUsage
	}

	var (
		out any
		d   devices.Device
	)
	switch sub {
	case "list":
		out, err = svc.List(ctx)
	case "get":
		d, err = svc.Get(ctx, *id)
		out = d
	case "by-person":
		out, err = svc.ListByElderlyPerson(ctx, *person)
	case "activate":
		d, err = svc.Activate(ctx, *id)
		out = d
	case "deactivate":
		d, err = svc.Deactivate(ctx, *id)
		out = d
	case "delete":
		if err := svc.Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Fprintln(c.stdout, "deleted")
		return nil
	default:
		return unknownSub("devices", sub)
	}
	if err != nil {
		return err
	}
	return c.printJSON(out)
}

func (c *cli) alerts(ctx context.Context, args []string) error {
	sub, rest, err := subcommand(args)
	if err != nil {
		return err
	}
	svc := c.app.Alerts

	fs := newFlagSet("alerts "+sub, c.stderr)
	id := fs.String("id", "", "id de la alerta")
	person := fs.String("person", "", "id del adulto mayor")
	if err := fs.Parse(rest); err != nil {
		return errUsage
	}

	var out any
	switch sub {
	case "list":
		out, err = svc.List(ctx)
	case "get":
		out, err = svc.Get(ctx, *id)
	case "critical":
		out, err = svc.GetCriticalAlertsByElderlyPerson(ctx, *person)
	default:
		return unknownSub("alerts", sub)
	}
	if err != nil {
		return err
	}
	return c.printJSON(out)
}

func subcommand(args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: missing subcommand", errUsage)
	}
	return args[0], args[1:], nil
}

func unknownSub(cmd, sub string) error {
	return fmt.Errorf("%w: unknown %s subcommand %q", errUsage, cmd, sub)
}
