// Package http exposes the shipping operations over a JSON REST API.
// It translates HTTP requests into commands and queries and maps the error
// taxonomy onto status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler commands.CreateShipmentCommandHandler
	addPackageHandler     commands.AddPackageCommandHandler
	removePackageHandler  commands.RemovePackageCommandHandler
	shipShipmentHandler   commands.ShipShipmentCommandHandler
	packPackageHandler    commands.PackPackageCommandHandler
	addItemLineHandler    commands.AddItemLineCommandHandler
	removeItemLineHandler commands.RemoveItemLineCommandHandler

	// Query handlers
	listShipmentsHandler queries.ListShipmentsQueryHandler
	getShipmentHandler   queries.GetShipmentQueryHandler
	getPackageHandler    queries.GetPackageQueryHandler
	listItemsHandler     queries.ListItemsQueryHandler
	getItemStockHandler  queries.GetItemStockQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	addPackageHandler commands.AddPackageCommandHandler,
	removePackageHandler commands.RemovePackageCommandHandler,
	shipShipmentHandler commands.ShipShipmentCommandHandler,
	packPackageHandler commands.PackPackageCommandHandler,
	addItemLineHandler commands.AddItemLineCommandHandler,
	removeItemLineHandler commands.RemoveItemLineCommandHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	getPackageHandler queries.GetPackageQueryHandler,
	listItemsHandler queries.ListItemsQueryHandler,
	getItemStockHandler queries.GetItemStockQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler: createShipmentHandler,
		addPackageHandler:     addPackageHandler,
		removePackageHandler:  removePackageHandler,
		shipShipmentHandler:   shipShipmentHandler,
		packPackageHandler:    packPackageHandler,
		addItemLineHandler:    addItemLineHandler,
		removeItemLineHandler: removeItemLineHandler,
		listShipmentsHandler:  listShipmentsHandler,
		getShipmentHandler:    getShipmentHandler,
		getPackageHandler:     getPackageHandler,
		listItemsHandler:      listItemsHandler,
		getItemStockHandler:   getItemStockHandler,
	}
}

// RegisterRoutes binds all API endpoints onto the echo group.
func (s *Server) RegisterRoutes(g *echo.Group) {
	g.POST("/shipments", s.CreateShipment)
	g.GET("/shipments", s.ListShipments)
	g.GET("/shipments/:id", s.GetShipment)
	g.POST("/shipments/:id/ship", s.ShipShipment)
	g.POST("/shipments/:id/packages", s.AddPackage)
	g.DELETE("/shipments/:id/packages/:packageId", s.RemovePackage)
	g.POST("/packages/:id/pack", s.PackPackage)
	g.GET("/packages/:id", s.GetPackage)
	g.POST("/packages/:id/lines", s.AddItemLine)
	g.DELETE("/packages/:id/lines/:itemId", s.RemoveItemLine)
	g.GET("/items", s.ListItems)
	g.GET("/items/:id/stock", s.GetItemStock)
}

// CreateShipment handles POST /shipments - creates an empty open shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	userID, err := actingUser(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(userID)
	if err != nil {
		return badRequest(ctx, err)
	}

	sh, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]any{
		"id":     sh.ID(),
		"status": sh.Status().String(),
	})
}

// ListShipments handles GET /shipments.
func (s *Server) ListShipments(ctx echo.Context) error {
	shipments, err := s.listShipmentsHandler.Handle(
		ctx.Request().Context(), queries.NewListShipmentsQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipments)
}

// GetShipment handles GET /shipments/:id.
func (s *Server) GetShipment(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	sh, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, sh)
}

// ShipShipment handles POST /shipments/:id/ship - transitions the shipment to
// shipped and stamps its business number onto every linked package.
func (s *Server) ShipShipment(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewShipShipmentCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	number, err := s.shipShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"id":              id,
		"status":          "shipped",
		"shipment_number": number,
	})
}

// AddPackage handles POST /shipments/:id/packages - creates a package and
// links it to the shipment with the next line number.
func (s *Server) AddPackage(ctx echo.Context) error {
	shipmentID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	userID, err := actingUser(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAddPackageCommand(shipmentID, userID)
	if err != nil {
		return badRequest(ctx, err)
	}

	pkg, err := s.addPackageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]any{
		"id":          pkg.ID(),
		"shipment_id": shipmentID,
		"status":      pkg.Status().String(),
	})
}

// RemovePackage handles DELETE /shipments/:id/packages/:packageId - unlinks
// the package from the shipment and deletes it with its lines.
func (s *Server) RemovePackage(ctx echo.Context) error {
	shipmentID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	packageID, err := pathID(ctx, "packageId")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRemovePackageCommand(shipmentID, packageID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.removePackageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PackPackage handles POST /packages/:id/pack.
func (s *Server) PackPackage(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewPackPackageCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.packPackageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"id":     id,
		"status": "packed",
	})
}

// GetPackage handles GET /packages/:id.
func (s *Server) GetPackage(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetPackageQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	pkg, err := s.getPackageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pkg)
}

// addItemLineRequest is the JSON body of POST /packages/:id/lines.
type addItemLineRequest struct {
	ItemID   uint64 `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// AddItemLine handles POST /packages/:id/lines - adds or increments an item
// line, subject to the edit lock and the stock reservation check.
func (s *Server) AddItemLine(ctx echo.Context) error {
	packageID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req addItemLineRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewAddItemLineCommand(packageID, req.ItemID, req.Quantity)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.addItemLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveItemLine handles DELETE /packages/:id/lines/:itemId - removes the
// line carrying the item entirely.
func (s *Server) RemoveItemLine(ctx echo.Context) error {
	packageID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	itemID, err := pathID(ctx, "itemId")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRemoveItemLineCommand(packageID, itemID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.removeItemLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListItems handles GET /items.
func (s *Server) ListItems(ctx echo.Context) error {
	items, err := s.listItemsHandler.Handle(
		ctx.Request().Context(), queries.NewListItemsQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, items)
}

// GetItemStock handles GET /items/:id/stock - the reservation-aware stock
// position of one item.
func (s *Server) GetItemStock(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetItemStockQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	stock, err := s.getItemStockHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stock)
}

// pathID parses a positive integer path parameter.
func pathID(ctx echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errs.NewValueIsInvalidError(name)
	}
	return id, nil
}

// actingUser extracts the acting user id from the X-User-ID header supplied
// by the authenticating proxy.
func actingUser(ctx echo.Context) (uint64, error) {
	raw := ctx.Request().Header.Get("X-User-ID")
	if raw == "" {
		return 0, errs.NewValueIsRequiredError("X-User-ID")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errs.NewValueIsInvalidError("X-User-ID")
	}
	return id, nil
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// writeError maps application errors onto HTTP status codes: missing objects
// to 404, state and constraint conflicts (including reservation failures) to
// 409, validation failures to 400, everything else to 500.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrConstraintViolation),
		errors.Is(err, commands.ErrReservationExceeded):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
