// Package grpc provides the gRPC surface of the inventory.
package grpc

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"slices"
	"strings"

	perrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/abgdnv/inventory/internal/repository"
	pb "github.com/abgdnv/inventory/pkg/api/gen/go/inventory/v1"
	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// ProductRepository is the part of the repository used over gRPC.
type ProductRepository interface {
	GetProduct(ctx context.Context, id int64) (repository.ProductDto, bool, error)
	GetProducts(ctx context.Context, skip, limit int32) ([]repository.ProductDto, error)
	SearchProducts(ctx context.Context, query string, skip, limit int32) ([]repository.ProductDto, error)
	CreateProduct(ctx context.Context, product repository.ProductCreateDto) (repository.ProductDto, error)
	UpdateProduct(ctx context.Context, id int64, update repository.ProductUpdateDto) (repository.ProductDto, bool, error)
	DeleteProduct(ctx context.Context, id int64) (repository.ProductDto, bool, error)
	SellProduct(ctx context.Context, id int64, quantity int32) (repository.ProductDto, bool, error)
}

type Server struct {
	pb.UnimplementedProductServiceServer
	repo     ProductRepository
	validate *validator.Validate
}

func NewServer(repo ProductRepository) *Server {
	return &Server{repo: repo, validate: repository.NewValidator()}
}

func (s *Server) GetProduct(ctx context.Context, req *pb.GetProductRequest) (*pb.GetProductResponse, error) {
	product, found, err := s.repo.GetProduct(ctx, req.Id)
	if err != nil {
		return nil, toStatus(ctx, "GetProduct", err)
	}
	if !found {
		return nil, status.Errorf(codes.NotFound, "product %d not found", req.Id)
	}
	return &pb.GetProductResponse{Product: toProto(product)}, nil
}

// ListProducts pages through products. A zero limit means the default page size.
func (s *Server) ListProducts(ctx context.Context, req *pb.ListProductsRequest) (*pb.ListProductsResponse, error) {
	if req.Skip < 0 || req.Limit < 0 {
		return nil, status.Error(codes.InvalidArgument, "skip and limit must not be negative")
	}
	limit := req.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	var (
		list []repository.ProductDto
		err  error
	)
	if req.Query == "" {
		list, err = s.repo.GetProducts(ctx, req.Skip, limit)
	} else {
		list, err = s.repo.SearchProducts(ctx, req.Query, req.Skip, limit)
	}
	if err != nil {
		return nil, toStatus(ctx, "ListProducts", err)
	}
	products := make([]*pb.Product, 0, len(list))
	for _, p := range list {
		products = append(products, toProto(p))
	}
	return &pb.ListProductsResponse{Products: products}, nil
}

func (s *Server) CreateProduct(ctx context.Context, req *pb.CreateProductRequest) (*pb.CreateProductResponse, error) {
	dto := repository.ProductCreateDto{
		Name:        &req.Name,
		Description: &req.Description,
		Price:       &req.Price,
		Quantity:    &req.Quantity,
	}
	if err := s.validateRequest(dto); err != nil {
		return nil, err
	}
	created, err := s.repo.CreateProduct(ctx, dto)
	if err != nil {
		return nil, toStatus(ctx, "CreateProduct", err)
	}
	slog.InfoContext(ctx, "product created over grpc", "id", created.ID, "name", created.Name)
	return &pb.CreateProductResponse{Product: toProto(created)}, nil
}

// UpdateProduct overwrites the fields set in the request and keeps the rest.
func (s *Server) UpdateProduct(ctx context.Context, req *pb.UpdateProductRequest) (*pb.UpdateProductResponse, error) {
	dto := repository.ProductUpdateDto{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
	}
	if err := s.validateRequest(dto); err != nil {
		return nil, err
	}
	updated, found, err := s.repo.UpdateProduct(ctx, req.Id, dto)
	if err != nil {
		return nil, toStatus(ctx, "UpdateProduct", err)
	}
	if !found {
		return nil, status.Errorf(codes.NotFound, "product %d not found", req.Id)
	}
	return &pb.UpdateProductResponse{Product: toProto(updated)}, nil
}

func (s *Server) DeleteProduct(ctx context.Context, req *pb.DeleteProductRequest) (*pb.DeleteProductResponse, error) {
	deleted, found, err := s.repo.DeleteProduct(ctx, req.Id)
	if err != nil {
		return nil, toStatus(ctx, "DeleteProduct", err)
	}
	if !found {
		return nil, status.Errorf(codes.NotFound, "product %d not found", req.Id)
	}
	slog.InfoContext(ctx, "product deleted over grpc", "id", req.Id)
	return &pb.DeleteProductResponse{Product: toProto(deleted)}, nil
}

func (s *Server) SellProduct(ctx context.Context, req *pb.SellProductRequest) (*pb.SellProductResponse, error) {
	if req.Quantity <= 0 {
		return nil, status.Error(codes.InvalidArgument, perrors.ErrInvalidQuantity.Error())
	}
	product, found, err := s.repo.SellProduct(ctx, req.Id, req.Quantity)
	if err != nil {
		return nil, toStatus(ctx, "SellProduct", err)
	}
	if !found {
		return nil, status.Errorf(codes.NotFound, "product %d not found", req.Id)
	}
	slog.InfoContext(ctx, "product sold over grpc", "id", req.Id, "quantity", req.Quantity, "left", product.Quantity)
	return &pb.SellProductResponse{Product: toProto(product)}, nil
}

// validateRequest applies the DTO rules and reports every broken field in one InvalidArgument status.
func (s *Server) validateRequest(dto any) error {
	err := s.validate.Struct(dto)
	if err == nil {
		return nil
	}
	fields, ok := repository.FieldErrors(err)
	if !ok {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	violations := make([]string, 0, len(fields))
	for _, field := range slices.Sorted(maps.Keys(fields)) {
		violations = append(violations, field+" "+fields[field])
	}
	return status.Error(codes.InvalidArgument, "invalid product: "+strings.Join(violations, ", "))
}

func toStatus(ctx context.Context, method string, err error) error {
	switch {
	case errors.Is(err, perrors.ErrDuplicateName):
		return status.Error(codes.AlreadyExists, "product with this name already exists")
	case errors.Is(err, perrors.ErrInsufficientStock):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, perrors.ErrInvalidQuantity):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, perrors.ErrStoreUnavailable):
		slog.ErrorContext(ctx, "store unavailable", "method", method, "error", err)
		return status.Error(codes.Unavailable, "store unavailable")
	default:
		slog.ErrorContext(ctx, "repository call failed", "method", method, "error", err)
		return status.Error(codes.Internal, "internal server error")
	}
}

func toProto(p repository.ProductDto) *pb.Product {
	return &pb.Product{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
	}
}
