// Command backoffice is a terminal front-end for the ERP back-office
// API: session management plus product, customer, order and user
// administration, with affordances gated by the capability table the
// same way the browser UI gates buttons. The server remains the
// enforcement boundary for every call.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/erplite/backoffice-client/internal/core/ports"
	"github.com/erplite/backoffice-client/internal/core/service"
	"github.com/erplite/backoffice-client/internal/infrastructure/api"
	"github.com/erplite/backoffice-client/internal/infrastructure/config"
	"github.com/erplite/backoffice-client/internal/infrastructure/store"
	"github.com/erplite/backoffice-client/pkg/logger"
)

type app struct {
	auth      *service.SessionAuthority
	authAPI   ports.AuthAPI
	products  *service.ProductService
	customers *service.CustomerService
	orders    *service.OrderService
	users     *service.UserService
	out       io.Writer
}

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "backoffice:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Console: cfg.Env == "development",
	})

	tokenStore, closeStore, err := buildTokenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	// The base client pulls the bearer token from the authority, which
	// itself is built on top of the client's auth surface. The closure
	// breaks the cycle.
	var authority *service.SessionAuthority
	client := api.New(api.Options{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.RequestTimeout,
		Token: func() string {
			if authority == nil {
				return ""
			}
			return authority.Token()
		},
		Logger: log,
	})

	authAPI := api.NewAuthClient(client)
	authority = service.NewSessionAuthority(authAPI, tokenStore, log)

	a := &app{
		auth:      authority,
		authAPI:   authAPI,
		products:  service.NewProductService(api.NewProductClient(client), authority, log),
		customers: service.NewCustomerService(api.NewCustomerClient(client), authority, log),
		orders:    service.NewOrderService(api.NewOrderClient(client), authority, log),
		users:     service.NewUserService(api.NewUserClient(client), authority, log),
		out:       os.Stdout,
	}

	if len(args) == 0 {
		a.usage()
		return fmt.Errorf("missing command")
	}
	command, rest := args[0], args[1:]

	// Resume a persisted session for everything except the commands that
	// create one (or need none). A failed restore just leaves the client
	// logged out; authenticated commands then fail with a clear error.
	switch command {
	case "login", "register", "help":
	default:
		if err := a.auth.Restore(ctx); err != nil {
			log.Debug().Err(err).Msg("no session restored")
		}
	}

	switch command {
	case "login":
		return a.cmdLogin(ctx, rest)
	case "logout":
		return a.cmdLogout(ctx)
	case "whoami":
		return a.cmdWhoami()
	case "register":
		return a.cmdRegister(ctx, rest)
	case "products":
		return a.cmdProducts(ctx, rest)
	case "customers":
		return a.cmdCustomers(ctx, rest)
	case "orders":
		return a.cmdOrders(ctx, rest)
	case "users":
		return a.cmdUsers(ctx, rest)
	case "help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func buildTokenStore(ctx context.Context, cfg *config.Config) (ports.TokenStore, func(), error) {
	if cfg.SessionStore == "redis" {
		s, err := store.NewRedisTokenStore(ctx, store.RedisConfig{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
			TTL:  cfg.Redis.TTL,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("session store: %w", err)
		}
		return s, func() { _ = s.Close() }, nil
	}

	path := cfg.SessionFile
	if path == "" {
		p, err := store.DefaultSessionPath()
		if err != nil {
			return nil, nil, err
		}
		path = p
	}
	s, err := store.NewFileTokenStore(path)
	if err != nil {
		return nil, nil, fmt.Errorf("session store: %w", err)
	}
	return s, func() {}, nil
}

func (a *app) usage() {
	fmt.Fprint(a.out, `usage: backoffice <command> [flags]

session:
  login      --username <name>        authenticate and persist the session
  logout                              end the session (local cleanup always runs)
  whoami                              show the current user and capabilities
  register   --username --email ...   create an account

resources:
  products   list | get | create | update | stock
  customers  list | get | create | update
  orders     list | get | create | status | cancel
  users      list | create | update

Run "backoffice <command> <subcommand> --help" for flags.
`)
}
