package grpc

import (
	"context"
	"errors"

	"storefront_service/internal/domain"
	"storefront_service/internal/usecase"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type CatalogHandler struct {
	productUseCase usecase.ProductUseCase
	log            *logrus.Logger
}

func NewCatalogHandler(puc usecase.ProductUseCase, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		productUseCase: puc,
		log:            logger,
	}
}

func productFields(p *domain.Product) map[string]interface{} {
	return map[string]interface{}{
		"id":          p.ID,
		"title":       p.Title,
		"price":       p.Price,
		"description": p.Description,
		"category":    p.Category,
		"image":       p.Image,
	}
}

func (h *CatalogHandler) GetProduct(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	id := req.GetValue()
	h.log.Debugf("gRPC Handler: Received GetProduct request: ID=%d", id)
	if id <= 0 {
		return nil, status.Error(codes.InvalidArgument, "Invalid product ID")
	}

	product, err := h.productUseCase.GetByID(ctx, id)
	if err != nil {
		return nil, mapDomainErrorToGrpcStatus(h.log, err)
	}

	out, err := structpb.NewStruct(productFields(product))
	if err != nil {
		h.log.Errorf("gRPC Handler: Failed to encode product %d: %v", id, err)
		return nil, status.Error(codes.Internal, "failed to encode product")
	}
	return out, nil
}

func (h *CatalogHandler) ListProducts(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	products, err := h.productUseCase.List(ctx)
	if err != nil {
		return nil, mapDomainErrorToGrpcStatus(h.log, err)
	}

	items := make([]interface{}, 0, len(products))
	for i := range products {
		items = append(items, productFields(&products[i]))
	}
	out, err := structpb.NewList(items)
	if err != nil {
		h.log.Errorf("gRPC Handler: Failed to encode product list: %v", err)
		return nil, status.Error(codes.Internal, "failed to encode products")
	}
	return out, nil
}

func mapDomainErrorToGrpcStatus(log *logrus.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		log.Errorf("gRPC Handler: internal error: %v", err)
		return status.Error(codes.Internal, "internal error")
	}
}
