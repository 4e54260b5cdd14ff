// Package http exposes the package registration and tracking API over echo.
// All responses share one JSON envelope; the session cookie middleware scopes
// package reads and writes to the calling browser session.
package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// RegisterParcelHandler accepts a package for asynchronous processing.
// Implemented by commands.RegisterParcelCommandHandler.
type RegisterParcelHandler interface {
	Handle(ctx context.Context, cmd commands.RegisterParcelCommand) error
}

// AssignCompanyHandler arbitrates shipping company claims.
// Implemented by commands.AssignCompanyCommandHandler.
type AssignCompanyHandler interface {
	Handle(ctx context.Context, cmd commands.AssignCompanyCommand) (commands.AssignCompanyResult, error)
}

// GetParcelHandler serves single-package lookups.
type GetParcelHandler interface {
	Handle(ctx context.Context, query queries.GetParcelQuery) (queries.GetParcelQueryResponse, error)
}

// ListParcelsHandler serves paginated package listings.
type ListParcelsHandler interface {
	Handle(ctx context.Context, query queries.ListParcelsQuery) (queries.ListParcelsQueryResponse, error)
}

// GetParcelTypesHandler serves the package type reference list.
type GetParcelTypesHandler interface {
	Handle(ctx context.Context, query queries.GetParcelTypesQuery) ([]queries.GetParcelTypesQueryResponse, error)
}

// GetParcelTypeHandler serves single package type lookups.
type GetParcelTypeHandler interface {
	Handle(ctx context.Context, query queries.GetParcelTypeQuery) (queries.GetParcelTypesQueryResponse, error)
}

// Server wires HTTP routes to application use cases.
type Server struct {
	registerHandler RegisterParcelHandler
	assignHandler   AssignCompanyHandler

	getParcelHandler  GetParcelHandler
	listHandler       ListParcelsHandler
	getTypesHandler   GetParcelTypesHandler
	getTypeHandler    GetParcelTypeHandler
	sessionMiddleware *SessionMiddleware
}

// NewServer creates the HTTP server with the required command and query
// handlers and the session middleware guarding the package routes.
func NewServer(
	registerHandler RegisterParcelHandler,
	assignHandler AssignCompanyHandler,
	getParcelHandler GetParcelHandler,
	listHandler ListParcelsHandler,
	getTypesHandler GetParcelTypesHandler,
	getTypeHandler GetParcelTypeHandler,
	sessionMiddleware *SessionMiddleware,
) *Server {
	return &Server{
		registerHandler:   registerHandler,
		assignHandler:     assignHandler,
		getParcelHandler:  getParcelHandler,
		listHandler:       listHandler,
		getTypesHandler:   getTypesHandler,
		getTypeHandler:    getTypeHandler,
		sessionMiddleware: sessionMiddleware,
	}
}

// RegisterRoutes mounts the API on the given echo instance. Package routes
// run behind the session middleware; the type reference and health routes do
// not need a session.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/package-types", s.GetPackageTypes)
	api.GET("/package-types/:id", s.GetPackageType)

	packages := api.Group("/packages", s.sessionMiddleware.Resolve)
	packages.POST("", s.RegisterPackage)
	packages.GET("", s.ListPackages)
	packages.GET("/:id", s.GetPackage)
	packages.POST("/:id/assign-company", s.AssignCompany)
}

// envelope is the uniform response body for every endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respondError(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, envelope{Success: false, Message: message})
}

// registerPackageRequest is the POST /packages payload.
type registerPackageRequest struct {
	Name          string  `json:"name"`
	Weight        float64 `json:"weight"`
	PriceUSD      float64 `json:"price_usd"`
	PackageTypeID string  `json:"package_type_id"`
}

// assignCompanyRequest is the POST /packages/:id/assign-company payload.
type assignCompanyRequest struct {
	CompanyID string `json:"company_id"`
}

// packageResponse is the read model serialized for package endpoints.
type packageResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Weight          float64 `json:"weight"`
	PriceUSD        float64 `json:"price_usd"`
	PackageTypeID   string  `json:"package_type_id"`
	PackageTypeName string  `json:"package_type_name"`
	ShippingCost    string  `json:"shipping_cost"`
	CompanyID       *string `json:"shipping_company_id"`
}

// packagePageResponse is one page of the package listing.
type packagePageResponse struct {
	Items []packageResponse `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Size  int               `json:"size"`
}

// packageTypeResponse is the serialized package type reference entry.
type packageTypeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, envelope{Success: true, Message: "ok"})
}

// RegisterPackage handles POST /api/v1/packages. The package is accepted for
// asynchronous processing; it becomes visible in the listing once the
// pipeline stores it.
func (s *Server) RegisterPackage(ctx echo.Context) error {
	sessionID, ok := currentSessionID(ctx)
	if !ok {
		return respondError(ctx, http.StatusInternalServerError, "session is not resolved")
	}

	var req registerPackageRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid request body")
	}

	typeID, err := kernel.UUIDFromString(req.PackageTypeID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid package_type_id")
	}

	cmd, err := commands.NewRegisterParcelCommand(req.Name, req.Weight, req.PriceUSD, typeID, sessionID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid package data: "+err.Error())
	}

	if err = s.registerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrParcelTypeNotFound) {
			return respondError(ctx, http.StatusNotFound, "package type not found")
		}
		return respondError(ctx, http.StatusInternalServerError, "failed to register package")
	}

	return ctx.JSON(http.StatusAccepted, envelope{
		Success: true,
		Message: "package accepted for processing",
	})
}

// ListPackages handles GET /api/v1/packages with page, size, type_id and
// has_calculated_cost query parameters.
func (s *Server) ListPackages(ctx echo.Context) error {
	sessionID, ok := currentSessionID(ctx)
	if !ok {
		return respondError(ctx, http.StatusInternalServerError, "session is not resolved")
	}

	page := 1
	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, "invalid page")
		}
		page = parsed
	}

	size := 20
	if raw := ctx.QueryParam("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, "invalid size")
		}
		size = parsed
	}

	var typeID *kernel.UUID
	if raw := ctx.QueryParam("type_id"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, "invalid type_id")
		}
		typeID = &parsed
	}

	var costed *bool
	if raw := ctx.QueryParam("has_calculated_cost"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, "invalid has_calculated_cost")
		}
		costed = &parsed
	}

	query, err := queries.NewListParcelsQuery(sessionID, page, size, typeID, costed)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid listing parameters: "+err.Error())
	}

	result, err := s.listHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "failed to list packages")
	}

	items := make([]packageResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = packageResponse{
			ID:              item.ID.String(),
			Name:            item.Name,
			Weight:          item.Weight,
			PriceUSD:        item.PriceUSD,
			PackageTypeID:   item.TypeID.String(),
			PackageTypeName: item.TypeName,
			ShippingCost:    item.ShippingCost,
			CompanyID:       uuidString(item.CompanyID),
		}
	}

	return ctx.JSON(http.StatusOK, envelope{
		Success: true,
		Data: packagePageResponse{
			Items: items,
			Total: result.Total,
			Page:  result.Page,
			Size:  result.Size,
		},
	})
}

// GetPackage handles GET /api/v1/packages/:id. A package registered by a
// different session is reported as not found.
func (s *Server) GetPackage(ctx echo.Context) error {
	sessionID, ok := currentSessionID(ctx)
	if !ok {
		return respondError(ctx, http.StatusInternalServerError, "session is not resolved")
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid package id")
	}

	query, err := queries.NewGetParcelQuery(parcelID, sessionID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid package id")
	}

	result, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return respondError(ctx, http.StatusNotFound, "package not found")
		}
		return respondError(ctx, http.StatusInternalServerError, "failed to retrieve package")
	}

	return ctx.JSON(http.StatusOK, envelope{
		Success: true,
		Data: packageResponse{
			ID:              result.ID.String(),
			Name:            result.Name,
			Weight:          result.Weight,
			PriceUSD:        result.PriceUSD,
			PackageTypeID:   result.TypeID.String(),
			PackageTypeName: result.TypeName,
			ShippingCost:    result.ShippingCost,
			CompanyID:       uuidString(result.CompanyID),
		},
	})
}

// AssignCompany handles POST /api/v1/packages/:id/assign-company. Exactly one
// claiming company is granted the package; later claims get 409 with the
// holder's identifier.
func (s *Server) AssignCompany(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid package id")
	}

	var req assignCompanyRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid request body")
	}

	companyID, err := kernel.UUIDFromString(req.CompanyID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid company_id")
	}

	cmd, err := commands.NewAssignCompanyCommand(parcelID, companyID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid assignment data: "+err.Error())
	}

	result, err := s.assignHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "failed to assign company")
	}

	switch result.Outcome {
	case commands.AssignmentGranted:
		return ctx.JSON(http.StatusOK, envelope{
			Success: true,
			Message: "package assigned",
			Data:    map[string]string{"shipping_company_id": companyID.String()},
		})

	case commands.AssignmentConflict:
		return ctx.JSON(http.StatusConflict, envelope{
			Success: false,
			Message: "package already assigned",
			Data:    map[string]string{"shipping_company_id": result.CurrentCompanyID.String()},
		})

	case commands.AssignmentNotFound:
		return respondError(ctx, http.StatusNotFound, "package not found")

	default:
		return respondError(ctx, http.StatusInternalServerError, "unexpected assignment outcome")
	}
}

// GetPackageTypes handles GET /api/v1/package-types.
func (s *Server) GetPackageTypes(ctx echo.Context) error {
	result, err := s.getTypesHandler.Handle(ctx.Request().Context(), queries.NewGetParcelTypesQuery())
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "failed to retrieve package types")
	}

	types := make([]packageTypeResponse, len(result))
	for i, t := range result {
		types[i] = packageTypeResponse{
			ID:          t.ID.String(),
			Name:        t.Name,
			Description: t.Description,
		}
	}

	return ctx.JSON(http.StatusOK, envelope{Success: true, Data: types})
}

// GetPackageType handles GET /api/v1/package-types/:id.
func (s *Server) GetPackageType(ctx echo.Context) error {
	typeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid package type id")
	}

	query, err := queries.NewGetParcelTypeQuery(typeID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid package type id")
	}

	result, err := s.getTypeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return respondError(ctx, http.StatusNotFound, "package type not found")
		}
		return respondError(ctx, http.StatusInternalServerError, "failed to retrieve package type")
	}

	return ctx.JSON(http.StatusOK, envelope{
		Success: true,
		Data: packageTypeResponse{
			ID:          result.ID.String(),
			Name:        result.Name,
			Description: result.Description,
		},
	})
}

func uuidString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
