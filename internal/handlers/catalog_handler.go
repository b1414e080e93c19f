package handlers

import (
	"belanja/internal/models"
	"belanja/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles the catalog entities around products: brands,
// billboards, collections, and store records. Reads are public for the
// storefront; writes live under the admin group.
type CatalogHandler struct {
	service  *services.CatalogService
	validate *validator.Validate
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the storefront catalog reads.
func (h *CatalogHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/brands", h.HandleGetBrands)
	router.Get("/billboards", h.HandleGetActiveBillboards)
	router.Get("/collections", h.HandleGetCollections)
	router.Get("/collections/:id", h.HandleGetCollectionByID)
}

// RegisterAdminRoutes registers the admin catalog CRUD routes.
func (h *CatalogHandler) RegisterAdminRoutes(router fiber.Router) {
	brands := router.Group("/brands")
	brands.Post("/", h.HandleCreateBrand)
	brands.Put("/:id", h.HandleUpdateBrand)
	brands.Delete("/:id", h.HandleDeleteBrand)

	billboards := router.Group("/billboards")
	billboards.Get("/", h.HandleGetAllBillboards)
	billboards.Post("/", h.HandleCreateBillboard)
	billboards.Put("/:id", h.HandleUpdateBillboard)
	billboards.Delete("/:id", h.HandleDeleteBillboard)

	collections := router.Group("/collections")
	collections.Post("/", h.HandleCreateCollection)
	collections.Put("/:id", h.HandleUpdateCollection)
	collections.Delete("/:id", h.HandleDeleteCollection)

	stores := router.Group("/stores")
	stores.Get("/", h.HandleGetStores)
	stores.Post("/", h.HandleCreateStore)
	stores.Put("/:id", h.HandleUpdateStore)
	stores.Delete("/:id", h.HandleDeleteStore)
}

// --- Brands ---

func (h *CatalogHandler) HandleGetBrands(c *fiber.Ctx) error {
	brands, err := h.service.GetBrands()
	if err != nil {
		return errorResponse(c, err, "Could not retrieve brands")
	}
	return c.JSON(brands)
}

func (h *CatalogHandler) HandleCreateBrand(c *fiber.Ctx) error {
	var brand models.Brand
	if err := c.BodyParser(&brand); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(brand); err != nil {
		return validationErrorResponse(c, err)
	}
	if err := h.service.CreateBrand(c.Context(), &brand); err != nil {
		return errorResponse(c, err, "Could not create brand")
	}
	return c.Status(fiber.StatusCreated).JSON(brand)
}

func (h *CatalogHandler) HandleUpdateBrand(c *fiber.Ctx) error {
	var brand models.Brand
	if err := c.BodyParser(&brand); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	brand.ID = c.Params("id")
	if err := h.validate.Struct(brand); err != nil {
		return validationErrorResponse(c, err)
	}
	if err := h.service.UpdateBrand(c.Context(), &brand); err != nil {
		return errorResponse(c, err, "Could not update brand")
	}
	return c.JSON(brand)
}

func (h *CatalogHandler) HandleDeleteBrand(c *fiber.Ctx) error {
	if err := h.service.DeleteBrand(c.Context(), c.Params("id")); err != nil {
		return errorResponse(c, err, "Could not delete brand")
	}
	return c.JSON(fiber.Map{"message": "Brand deleted successfully"})
}

// --- Billboards ---

// HandleGetActiveBillboards lists active billboards for the storefront.
func (h *CatalogHandler) HandleGetActiveBillboards(c *fiber.Ctx) error {
	billboards, err := h.service.GetBillboards(true)
	if err != nil {
		return errorResponse(c, err, "Could not retrieve billboards")
	}
	return c.JSON(billboards)
}

// HandleGetAllBillboards lists every billboard for the admin UI.
func (h *CatalogHandler) HandleGetAllBillboards(c *fiber.Ctx) error {
	billboards, err := h.service.GetBillboards(false)
	if err != nil {
		return errorResponse(c, err, "Could not retrieve billboards")
	}
	return c.JSON(billboards)
}

func (h *CatalogHandler) HandleCreateBillboard(c *fiber.Ctx) error {
	var billboard models.Billboard
	if err := c.BodyParser(&billboard); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(billboard); err != nil {
		return validationErrorResponse(c, err)
	}
	if err := h.service.CreateBillboard(&billboard); err != nil {
		return errorResponse(c, err, "Could not create billboard")
	}
	return c.Status(fiber.StatusCreated).JSON(billboard)
}

func (h *CatalogHandler) HandleUpdateBillboard(c *fiber.Ctx) error {
	var billboard models.Billboard
	if err := c.BodyParser(&billboard); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	billboard.ID = c.Params("id")
	if err := h.validate.Struct(billboard); err != nil {
		return validationErrorResponse(c, err)
	}
	if err := h.service.UpdateBillboard(&billboard); err != nil {
		return errorResponse(c, err, "Could not update billboard")
	}
	return c.JSON(billboard)
}

func (h *CatalogHandler) HandleDeleteBillboard(c *fiber.Ctx) error {
	if err := h.service.DeleteBillboard(c.Params("id")); err != nil {
		return errorResponse(c, err, "Could not delete billboard")
	}
	return c.JSON(fiber.Map{"message": "Billboard deleted successfully"})
}

// --- Collections ---

func (h *CatalogHandler) HandleGetCollections(c *fiber.Ctx) error {
	collections, err := h.service.GetCollections()
	if err != nil {
		return errorResponse(c, err, "Could not retrieve collections")
	}
	return c.JSON(collections)
}

func (h *CatalogHandler) HandleGetCollectionByID(c *fiber.Ctx) error {
	collection, err := h.service.GetCollectionByID(c.Params("id"))
	if err != nil {
		return errorResponse(c, err, "Could not retrieve collection")
	}
	return c.JSON(collection)
}

func (h *CatalogHandler) HandleCreateCollection(c *fiber.Ctx) error {
	var collection models.Collection
	if err := c.BodyParser(&collection); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(collection); err != nil {
		return validationErrorResponse(c, err)
	}
	if err := h.service.CreateCollection(c.Context(), &collection); err != nil {
		return errorResponse(c, err, "Could not create collection")
	}
	return c.Status(fiber.StatusCreated).JSON(collection)
}

func (h *CatalogHandler) HandleUpdateCollection(c *fiber.Ctx) error {
	var collection models.Collection
	if err := c.BodyParser(&collection); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	collection.ID = c.Params("id")
	if err := h.validate.Struct(collection); err != nil {
		return validationErrorResponse(c, err)
	}
	if err := h.service.UpdateCollection(c.Context(), &collection); err != nil {
		return errorResponse(c, err, "Could not update collection")
	}
	return c.JSON(collection)
}

func (h *CatalogHandler) HandleDeleteCollection(c *fiber.Ctx) error {
	if err := h.service.DeleteCollection(c.Context(), c.Params("id")); err != nil {
		return errorResponse(c, err, "Could not delete collection")
	}
	return c.JSON(fiber.Map{"message": "Collection deleted successfully"})
}

// --- Stores ---

func (h *CatalogHandler) HandleGetStores(c *fiber.Ctx) error {
	stores, err := h.service.GetStores()
	if err != nil {
		return errorResponse(c, err, "Could not retrieve stores")
	}
	return c.JSON(stores)
}

func (h *CatalogHandler) HandleCreateStore(c *fiber.Ctx) error {
	var store models.Store
	if err := c.BodyParser(&store); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(store); err != nil {
		return validationErrorResponse(c, err)
	}
	if err := h.service.CreateStore(&store); err != nil {
		return errorResponse(c, err, "Could not create store")
	}
	return c.Status(fiber.StatusCreated).JSON(store)
}

func (h *CatalogHandler) HandleUpdateStore(c *fiber.Ctx) error {
	var store models.Store
	if err := c.BodyParser(&store); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	store.ID = c.Params("id")
	if err := h.validate.Struct(store); err != nil {
		return validationErrorResponse(c, err)
	}
	if err := h.service.UpdateStore(&store); err != nil {
		return errorResponse(c, err, "Could not update store")
	}
	return c.JSON(store)
}

func (h *CatalogHandler) HandleDeleteStore(c *fiber.Ctx) error {
	if err := h.service.DeleteStore(c.Params("id")); err != nil {
		return errorResponse(c, err, "Could not delete store")
	}
	return c.JSON(fiber.Map{"message": "Store deleted successfully"})
}
