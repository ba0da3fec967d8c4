// Package dashboard computes the inventory overview shown by inventoryctl and renders it as text.
package dashboard

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	pb "github.com/abgdnv/inventory/pkg/api/gen/go/inventory/v1"
	"github.com/abgdnv/inventory/pkg/messaging/events"
)

const (
	// DefaultPageSize is the number of products requested per ListProducts call.
	DefaultPageSize int32 = 100
	// MaxPageSize is the largest page the server returns. Larger requests are cut to it.
	MaxPageSize int32 = 1000
)

// Summary holds the three catalog aggregates.
type Summary struct {
	Count        int
	TotalValue   float64
	AveragePrice float64
}

// Summarize computes the product count, the stock value (sum of price times quantity) and the mean price.
// The mean of an empty catalog is zero.
func Summarize(products []*pb.Product) Summary {
	var s Summary
	var priceSum float64
	for _, p := range products {
		s.Count++
		s.TotalValue += p.Price * float64(p.Quantity)
		priceSum += p.Price
	}
	if s.Count > 0 {
		s.AveragePrice = priceSum / float64(s.Count)
	}
	return s
}

// Filter keeps the products whose name or description contains term, ignoring case.
// An empty term keeps everything.
func Filter(products []*pb.Product, term string) []*pb.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return products
	}
	var out []*pb.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) || strings.Contains(strings.ToLower(p.Description), term) {
			out = append(out, p)
		}
	}
	return out
}

// FetchAll pages through ListProducts until a short page comes back.
// pageSize is clamped to MaxPageSize so that a full server page is never mistaken for the last one.
func FetchAll(ctx context.Context, client pb.ProductServiceClient, query string, pageSize int32) ([]*pb.Product, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pageSize = min(pageSize, MaxPageSize)
	var all []*pb.Product
	for skip := int32(0); ; skip += pageSize {
		resp, err := client.ListProducts(ctx, &pb.ListProductsRequest{Skip: skip, Limit: pageSize, Query: query})
		if err != nil {
			return nil, fmt.Errorf("failed to list products at offset %d: %w", skip, err)
		}
		all = append(all, resp.Products...)
		if int32(len(resp.Products)) < pageSize {
			return all, nil
		}
	}
}

// RenderDashboard writes the aggregates of the whole catalog followed by a table of the
// products matching term.
func RenderDashboard(w io.Writer, products []*pb.Product, term string) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "No products available to generate analytics.")
		return err
	}
	s := Summarize(products)
	if _, err := fmt.Fprintf(w, "Total Products:    %d\nTotal Stock Value: %.2f\nAvg. Price:        %.2f\n\n",
		s.Count, s.TotalValue, s.AveragePrice); err != nil {
		return err
	}
	return RenderTable(w, Filter(products, term))
}

// RenderTable writes one aligned row per product.
func RenderTable(w io.Writer, products []*pb.Product) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tQUANTITY\tDESCRIPTION")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%d\t%s\n", p.Id, p.Name, p.Price, p.Quantity, p.Description)
	}
	return tw.Flush()
}

// RenderGallery writes the gallery view: one card per product, out-of-stock items flagged.
func RenderGallery(w io.Writer, products []*pb.Product) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "No products found in the gallery.")
		return err
	}
	for _, p := range products {
		stock := fmt.Sprintf("Stock: %d", p.Quantity)
		if p.Quantity == 0 {
			stock = "Out of Stock"
		}
		if _, err := fmt.Fprintf(w, "[%d] %s\n    %.2f | %s\n", p.Id, p.Name, p.Price, stock); err != nil {
			return err
		}
		if p.Description != "" {
			if _, err := fmt.Fprintf(w, "    %s\n", p.Description); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderEvent writes a product event as a single line.
func RenderEvent(w io.Writer, e events.ProductEvent) error {
	line := fmt.Sprintf("%s %-7s [%d] %s price=%.2f stock=%d",
		e.OccurredAt.Format(time.RFC3339), e.Kind, e.Product.ID, e.Product.Name, e.Product.Price, e.Product.Quantity)
	if e.Kind == events.ProductSold {
		line += fmt.Sprintf(" sold=%d", e.Quantity)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
