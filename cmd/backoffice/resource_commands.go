package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/erplite/backoffice-client/internal/core/domain"
	"github.com/erplite/backoffice-client/internal/core/ports"
)

func (a *app) cmdProducts(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("products needs a subcommand: list, get, create, update, stock")
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		fs := newFlagSet("products list")
		limit := fs.Int("limit", 50, "page size")
		offset := fs.Int("offset", 0, "page offset")
		ok, err := parse(fs, rest)
		if !ok {
			return err
		}
		list, err := a.products.List(ctx, ports.Page{Limit: *limit, Offset: *offset})
		if err != nil {
			return err
		}
		w := a.table("ID\tSKU\tNAME\tPRICE\tSTOCK\tACTIVE")
		for _, p := range list.Results {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%v\n", p.ID, p.SKU, p.Name, p.Price, p.StockQty, p.IsActive)
		}
		return w.Flush()

	case "get":
		id, err := positionalID(rest)
		if err != nil {
			return err
		}
		p, err := a.products.Get(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "#%d %s — %s\nprice: %s  stock: %d  active: %v\n%s\n",
			p.ID, p.SKU, p.Name, p.Price, p.StockQty, p.IsActive, p.Description)
		return nil

	case "create", "update":
		fs := newFlagSet("products " + sub)
		sku := fs.String("sku", "", "stock keeping unit")
		name := fs.String("name", "", "product name")
		description := fs.String("description", "", "product description")
		price := fs.String("price", "", "unit price, decimal string")
		stock := fs.Int("stock", 0, "stock quantity")
		inactive := fs.Bool("inactive", false, "mark the product inactive")
		ok, err := parse(fs, rest)
		if !ok {
			return err
		}
		input := ports.ProductInput{
			SKU:         *sku,
			Name:        *name,
			Description: *description,
			Price:       *price,
			StockQty:    *stock,
			IsActive:    !*inactive,
		}
		var p *domain.Product
		if sub == "create" {
			p, err = a.products.Create(ctx, input)
		} else {
			var id int
			id, err = positionalID(fs.Args())
			if err != nil {
				return err
			}
			p, err = a.products.Update(ctx, id, input)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "product #%d saved\n", p.ID)
		return nil

	case "stock":
		if len(rest) < 2 {
			return fmt.Errorf("usage: products stock <id> <qty>")
		}
		id, err := strconv.Atoi(rest[0])
		if err != nil {
			return fmt.Errorf("invalid product id %q", rest[0])
		}
		qty, err := strconv.Atoi(rest[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", rest[1])
		}
		if err := a.products.UpdateStock(ctx, id, qty); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "stock of product #%d set to %d\n", id, qty)
		return nil

	default:
		return fmt.Errorf("unknown products subcommand %q", sub)
	}
}

func (a *app) cmdCustomers(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("customers needs a subcommand: list, get, create, update")
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		fs := newFlagSet("customers list")
		limit := fs.Int("limit", 50, "page size")
		offset := fs.Int("offset", 0, "page offset")
		ok, err := parse(fs, rest)
		if !ok {
			return err
		}
		list, err := a.customers.List(ctx, ports.Page{Limit: *limit, Offset: *offset})
		if err != nil {
			return err
		}
		w := a.table("ID\tNAME\tCPF/CNPJ\tEMAIL\tACTIVE")
		for _, c := range list.Results {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%v\n", c.ID, c.Name, c.CpfCnpj, c.Email, c.IsActive)
		}
		return w.Flush()

	case "get":
		id, err := positionalID(rest)
		if err != nil {
			return err
		}
		c, err := a.customers.Get(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "#%d %s\ncpf/cnpj: %s\nemail: %s\nphone: %s\naddress: %s\nactive: %v\n",
			c.ID, c.Name, c.CpfCnpj, c.Email, c.Phone, c.Address, c.IsActive)
		return nil

	case "create", "update":
		fs := newFlagSet("customers " + sub)
		name := fs.String("name", "", "customer name")
		cpfCnpj := fs.String("cpf-cnpj", "", "tax identifier")
		email := fs.String("email", "", "contact email")
		phone := fs.String("phone", "", "contact phone")
		address := fs.String("address", "", "postal address")
		inactive := fs.Bool("inactive", false, "mark the customer inactive")
		ok, err := parse(fs, rest)
		if !ok {
			return err
		}
		input := ports.CustomerInput{
			Name:     *name,
			CpfCnpj:  *cpfCnpj,
			Email:    *email,
			Phone:    *phone,
			Address:  *address,
			IsActive: !*inactive,
		}
		var c *domain.Customer
		if sub == "create" {
			c, err = a.customers.Create(ctx, input)
		} else {
			var id int
			id, err = positionalID(fs.Args())
			if err != nil {
				return err
			}
			c, err = a.customers.Update(ctx, id, input)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "customer #%d saved\n", c.ID)
		return nil

	default:
		return fmt.Errorf("unknown customers subcommand %q", sub)
	}
}

func (a *app) cmdOrders(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("orders needs a subcommand: list, get, create, status, cancel")
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		fs := newFlagSet("orders list")
		limit := fs.Int("limit", 50, "page size")
		offset := fs.Int("offset", 0, "page offset")
		ok, err := parse(fs, rest)
		if !ok {
			return err
		}
		list, err := a.orders.List(ctx, ports.Page{Limit: *limit, Offset: *offset})
		if err != nil {
			return err
		}
		w := a.table("ID\tNUMBER\tCUSTOMER\tTOTAL\tSTATUS")
		for _, o := range list.Results {
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", o.ID, o.Number, o.CustomerID, o.Total, o.Status)
		}
		return w.Flush()

	case "get":
		id, err := positionalID(rest)
		if err != nil {
			return err
		}
		o, err := a.orders.Get(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "order #%s (id %d)\ncustomer: %d  status: %s  total: %s\n",
			o.Number, o.ID, o.CustomerID, o.Status, o.Total)
		if o.Observations != "" {
			fmt.Fprintf(a.out, "observations: %s\n", o.Observations)
		}
		if len(o.Items) > 0 {
			w := a.table("PRODUCT\tQTY\tUNIT\tSUBTOTAL")
			for _, item := range o.Items {
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", item.ProductID, item.Qty, item.UnitPrice, item.Subtotal)
			}
			return w.Flush()
		}
		return nil

	case "create":
		fs := newFlagSet("orders create")
		customer := fs.Int("customer", 0, "customer id")
		items := fs.StringArray("item", nil, "order line as <product-id>:<qty>, repeatable")
		note := fs.String("note", "", "order observations")
		ok, err := parse(fs, rest)
		if !ok {
			return err
		}
		if *customer == 0 {
			return fmt.Errorf("--customer is required")
		}
		lines, err := parseOrderItems(*items)
		if err != nil {
			return err
		}
		o, err := a.orders.Create(ctx, ports.CreateOrderInput{
			CustomerID:   *customer,
			Observations: *note,
			Items:        lines,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "order #%s created (id %d, total %s)\n", o.Number, o.ID, o.Total)
		return nil

	case "status":
		fs := newFlagSet("orders status")
		to := fs.String("to", "", "target status")
		from := fs.String("from", "", "current status, enables the local transition check")
		note := fs.String("note", "", "status change note")
		ok, err := parse(fs, rest)
		if !ok {
			return err
		}
		id, err := positionalID(fs.Args())
		if err != nil {
			return err
		}
		if *to == "" {
			return fmt.Errorf("--to is required")
		}
		if err := a.orders.UpdateStatus(ctx, id, domain.OrderStatus(strings.ToUpper(*from)), domain.OrderStatus(strings.ToUpper(*to)), *note); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "order #%d moved to %s\n", id, strings.ToUpper(*to))
		return nil

	case "cancel":
		fs := newFlagSet("orders cancel")
		note := fs.String("note", "", "cancellation note")
		ok, err := parse(fs, rest)
		if !ok {
			return err
		}
		id, err := positionalID(fs.Args())
		if err != nil {
			return err
		}
		if err := a.orders.Cancel(ctx, id, *note); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "order #%d cancelled\n", id)
		return nil

	default:
		return fmt.Errorf("unknown orders subcommand %q", sub)
	}
}

func (a *app) cmdUsers(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("users needs a subcommand: list, create, update")
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		users, err := a.users.List(ctx)
		if err != nil {
			return err
		}
		w := a.table("ID\tUSERNAME\tEMAIL\tPROFILES\tACTIVE")
		for _, u := range users {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%v\n", u.ID, u.Username, u.Email, joinRoles(u.Profiles), u.IsActive)
		}
		return w.Flush()

	case "create":
		fs := newFlagSet("users create")
		username := fs.String("username", "", "account username")
		email := fs.String("email", "", "account email")
		profile := fs.String("profile", string(domain.RoleViewer), "profile: admin, manager, operator or viewer")
		ok, err := parse(fs, rest)
		if !ok {
			return err
		}
		if *username == "" {
			return fmt.Errorf("--username is required")
		}
		role, err := domain.ParseRole(*profile)
		if err != nil {
			return err
		}
		password, err := promptPassword("password for new account: ")
		if err != nil {
			return err
		}
		u, err := a.users.Create(ctx, ports.ManagedUserInput{
			Username: *username,
			Email:    *email,
			Password: password,
			Profile:  &role,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "user #%d created\n", u.ID)
		return nil

	case "update":
		fs := newFlagSet("users update")
		profile := fs.String("profile", "", "new profile, empty keeps the current one")
		active := fs.Bool("active", false, "activate the account")
		inactive := fs.Bool("inactive", false, "deactivate the account")
		ok, err := parse(fs, rest)
		if !ok {
			return err
		}
		id, err := positionalID(fs.Args())
		if err != nil {
			return err
		}

		var input ports.ManagedUserInput
		if *profile != "" {
			role, err := domain.ParseRole(*profile)
			if err != nil {
				return err
			}
			input.Profile = &role
		}
		switch {
		case *active && *inactive:
			return fmt.Errorf("--active and --inactive are mutually exclusive")
		case *active:
			v := true
			input.IsActive = &v
		case *inactive:
			v := false
			input.IsActive = &v
		}
		if input.Profile == nil && input.IsActive == nil {
			return fmt.Errorf("nothing to update")
		}

		u, err := a.users.Update(ctx, id, input)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "user #%d updated\n", u.ID)
		return nil

	default:
		return fmt.Errorf("unknown users subcommand %q", sub)
	}
}

func (a *app) table(header string) *tabwriter.Writer {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, header)
	return w
}

func positionalID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing id argument")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

func parseOrderItems(raw []string) ([]ports.OrderItemInput, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("at least one --item is required")
	}
	items := make([]ports.OrderItemInput, 0, len(raw))
	for _, entry := range raw {
		productRaw, qtyRaw, found := strings.Cut(entry, ":")
		if !found {
			return nil, fmt.Errorf("invalid item %q, expected <product-id>:<qty>", entry)
		}
		productID, err := strconv.Atoi(productRaw)
		if err != nil {
			return nil, fmt.Errorf("invalid product id in item %q", entry)
		}
		qty, err := strconv.Atoi(qtyRaw)
		if err != nil || qty < 1 {
			return nil, fmt.Errorf("invalid quantity in item %q", entry)
		}
		items = append(items, ports.OrderItemInput{ProductID: productID, Qty: qty})
	}
	return items, nil
}
