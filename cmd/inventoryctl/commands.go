package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abgdnv/inventory/internal/dashboard"
	pb "github.com/abgdnv/inventory/pkg/api/gen/go/inventory/v1"
	"github.com/abgdnv/inventory/pkg/messaging/events"
	pnats "github.com/abgdnv/inventory/pkg/nats"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/spf13/cobra"
)

func newDashboardCmd(c *cli) *cobra.Command {
	var term string
	var pageSize int32
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show product count, total stock value, average price and the product table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}
			products, err := dashboard.FetchAll(cmd.Context(), client, "", pageSize)
			if err != nil {
				return err
			}
			return dashboard.RenderDashboard(cmd.OutOrStdout(), products, term)
		},
	}
	cmd.Flags().StringVar(&term, "q", "", "only show table rows whose name or description contains this")
	cmd.Flags().Int32Var(&pageSize, "page-size", dashboard.DefaultPageSize, "products fetched per request")
	return cmd
}

func newListCmd(c *cli) *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Browse the product gallery, optionally searching by name or description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}
			products, err := dashboard.FetchAll(cmd.Context(), client, query, dashboard.DefaultPageSize)
			if err != nil {
				return err
			}
			return dashboard.RenderGallery(cmd.OutOrStdout(), products)
		},
	}
	cmd.Flags().StringVar(&query, "q", "", "search term")
	return cmd
}

func newGetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := c.client()
			if err != nil {
				return err
			}
			resp, err := client.GetProduct(cmd.Context(), &pb.GetProductRequest{Id: id})
			if err != nil {
				return fmt.Errorf("failed to get product %d: %w", id, err)
			}
			return dashboard.RenderTable(cmd.OutOrStdout(), []*pb.Product{resp.Product})
		},
	}
}

func newAddCmd(c *cli) *cobra.Command {
	var (
		description string
		price       float64
		quantity    int32
	)
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a product to the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			switch {
			case name == "":
				return errors.New("product name is required")
			case price <= 0:
				return errors.New("price must be greater than 0")
			case quantity < 0:
				return errors.New("quantity cannot be negative")
			}
			client, err := c.client()
			if err != nil {
				return err
			}
			resp, err := client.CreateProduct(cmd.Context(), &pb.CreateProductRequest{
				Name:        name,
				Description: description,
				Price:       price,
				Quantity:    quantity,
			})
			if err != nil {
				return fmt.Errorf("failed to add product %q: %w", name, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %s (ID: %d)\n", resp.Product.Name, resp.Product.Id)
			return err
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "short description")
	cmd.Flags().Float64Var(&price, "price", 0, "unit price, must be greater than 0")
	cmd.Flags().Int32Var(&quantity, "quantity", 0, "units in stock")
	return cmd
}

// newUpdateCmd sends only the flags given on the command line, the other fields keep their values.
func newUpdateCmd(c *cli) *cobra.Command {
	var (
		name, description string
		price             float64
		quantity          int32
	)
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change the name, description, price or stock of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			req := &pb.UpdateProductRequest{Id: id}
			flags := cmd.Flags()
			if flags.Changed("name") {
				req.Name = &name
			}
			if flags.Changed("description") {
				req.Description = &description
			}
			if flags.Changed("price") {
				req.Price = &price
			}
			if flags.Changed("quantity") {
				req.Quantity = &quantity
			}
			if req.Name == nil && req.Description == nil && req.Price == nil && req.Quantity == nil {
				return errors.New("nothing to update: set at least one of --name, --description, --price, --quantity")
			}
			client, err := c.client()
			if err != nil {
				return err
			}
			resp, err := client.UpdateProduct(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to update product %d: %w", id, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (ID: %d)\n", resp.Product.Name, resp.Product.Id)
			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().Float64Var(&price, "price", 0, "new unit price")
	cmd.Flags().Int32Var(&quantity, "quantity", 0, "new stock level")
	return cmd
}

func newDeleteCmd(c *cli) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Remove a product permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := c.client()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !yes {
				resp, err := client.GetProduct(cmd.Context(), &pb.GetProductRequest{Id: id})
				if err != nil {
					return fmt.Errorf("failed to get product %d: %w", id, err)
				}
				confirmed, err := confirm(cmd.InOrStdin(), out,
					fmt.Sprintf("Delete %s (ID: %d)? This cannot be undone. [y/N]: ", resp.Product.Name, id))
				if err != nil {
					return err
				}
				if !confirmed {
					_, err = fmt.Fprintln(out, "Aborted.")
					return err
				}
			}
			resp, err := client.DeleteProduct(cmd.Context(), &pb.DeleteProductRequest{Id: id})
			if err != nil {
				return fmt.Errorf("failed to delete product %d: %w", id, err)
			}
			_, err = fmt.Fprintf(out, "Deleted %s (ID: %d)\n", resp.Product.Name, resp.Product.Id)
			return err
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking for confirmation")
	return cmd
}

// confirm asks question on out and reports whether the answer read from in is yes.
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	if _, err := fmt.Fprint(out, question); err != nil {
		return false, err
	}
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func newSellCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "sell ID QUANTITY",
		Short: "Sell units of a product, lowering its stock",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			quantity, err := strconv.ParseInt(args[1], 10, 32)
			if err != nil || quantity <= 0 {
				return fmt.Errorf("invalid quantity %q: must be a positive integer", args[1])
			}
			client, err := c.client()
			if err != nil {
				return err
			}
			resp, err := client.SellProduct(cmd.Context(), &pb.SellProductRequest{Id: id, Quantity: int32(quantity)})
			if err != nil {
				return fmt.Errorf("failed to sell product %d: %w", id, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Sold %d of %s, %d left\n", quantity, resp.Product.Name, resp.Product.Quantity)
			return err
		},
	}
}

func newWatchCmd(c *cli) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow product events until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.cfg.NATS.Url == "" {
				return fmt.Errorf("NATS URL is not configured")
			}
			nc, err := pnats.NewClient(c.cfg.NATS.Url, c.cfg.NATS.Timeout)
			if err != nil {
				return err
			}
			defer nc.Close()
			js, err := pnats.NewJetStreamContext(nc)
			if err != nil {
				return err
			}
			sub := c.cfg.Subscriber
			sub.DeliverAll = sub.DeliverAll || all
			err = pnats.Watch(cmd.Context(), js, sub, c.logger, printEvents(cmd.OutOrStdout()))
			if cmd.Context().Err() != nil {
				return nil
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "replay every stored event before following new ones")
	return cmd
}

// printEvents renders every product event it receives. Undecodable messages are reported to the watch loop.
func printEvents(out io.Writer) pnats.MessageHandler {
	return func(_ context.Context, msg jetstream.Msg) error {
		event, err := events.DecodeProductEvent(msg.Data())
		if err != nil {
			return fmt.Errorf("undecodable event on %s: %w", msg.Subject(), err)
		}
		return dashboard.RenderEvent(out, event)
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid product id %q", arg)
	}
	return id, nil
}
