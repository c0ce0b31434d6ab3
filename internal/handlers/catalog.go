package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/charmworks-backend/internal/services"
	"github.com/yungbote/charmworks-backend/internal/types"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (ch *CategoryHandler) List(c *gin.Context) {
	categories, err := ch.categoryService.GetAll(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "CATEGORY_LIST_FAILED", err)
		return
	}
	RespondOK(c, gin.H{"categories": categories})
}

func (ch *CategoryHandler) Create(c *gin.Context) {
	var category types.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("invalid request body"))
		return
	}
	created, err := ch.categoryService.Create(c.Request.Context(), &category)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "CATEGORY_CREATE_FAILED", err)
		return
	}
	RespondOK(c, created)
}

func (ch *CategoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid category id"))
		return
	}
	var category types.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("invalid request body"))
		return
	}
	category.ID = id
	if err := ch.categoryService.Update(c.Request.Context(), &category); err != nil {
		RespondError(c, http.StatusBadRequest, "CATEGORY_UPDATE_FAILED", err)
		return
	}
	RespondOK(c, category)
}

func (ch *CategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid category id"))
		return
	}
	if err := ch.categoryService.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, http.StatusBadRequest, "CATEGORY_DELETE_FAILED", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (ph *ProductHandler) List(c *gin.Context) {
	var categoryID *uuid.UUID
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid category id"))
			return
		}
		categoryID = &id
	}
	products, err := ph.productService.GetActive(c.Request.Context(), categoryID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "PRODUCT_LIST_FAILED", err)
		return
	}
	RespondOK(c, gin.H{"products": products})
}

func (ph *ProductHandler) Detail(c *gin.Context) {
	detail, err := ph.productService.GetDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		RespondError(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", fmt.Errorf("product not found"))
		return
	}
	RespondOK(c, detail)
}

func (ph *ProductHandler) Create(c *gin.Context) {
	var product types.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("invalid request body"))
		return
	}
	created, err := ph.productService.Create(c.Request.Context(), &product)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "PRODUCT_CREATE_FAILED", err)
		return
	}
	RespondOK(c, created)
}

func (ph *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid product id"))
		return
	}
	var product types.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("invalid request body"))
		return
	}
	product.ID = id
	if err := ph.productService.Update(c.Request.Context(), &product); err != nil {
		RespondError(c, http.StatusBadRequest, "PRODUCT_UPDATE_FAILED", err)
		return
	}
	RespondOK(c, product)
}

func (ph *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid product id"))
		return
	}
	if err := ph.productService.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, http.StatusBadRequest, "PRODUCT_DELETE_FAILED", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

func (ph *ProductHandler) CreateTemplate(c *gin.Context) {
	var template types.Template
	if err := c.ShouldBindJSON(&template); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("invalid request body"))
		return
	}
	created, err := ph.productService.CreateTemplate(c.Request.Context(), &template)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "TEMPLATE_CREATE_FAILED", err)
		return
	}
	RespondOK(c, created)
}

func (ph *ProductHandler) UpdateTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid template id"))
		return
	}
	var template types.Template
	if err := c.ShouldBindJSON(&template); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("invalid request body"))
		return
	}
	template.ID = id
	if err := ph.productService.UpdateTemplate(c.Request.Context(), &template); err != nil {
		RespondError(c, http.StatusBadRequest, "TEMPLATE_UPDATE_FAILED", err)
		return
	}
	RespondOK(c, template)
}

func (ph *ProductHandler) DeleteTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid template id"))
		return
	}
	if err := ph.productService.DeleteTemplate(c.Request.Context(), id); err != nil {
		RespondError(c, http.StatusBadRequest, "TEMPLATE_DELETE_FAILED", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

func (ph *ProductHandler) CreateAccessory(c *gin.Context) {
	var accessory types.Accessory
	if err := c.ShouldBindJSON(&accessory); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("invalid request body"))
		return
	}
	created, err := ph.productService.CreateAccessory(c.Request.Context(), &accessory)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "ACCESSORY_CREATE_FAILED", err)
		return
	}
	RespondOK(c, created)
}

func (ph *ProductHandler) UpdateAccessory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid accessory id"))
		return
	}
	var accessory types.Accessory
	if err := c.ShouldBindJSON(&accessory); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("invalid request body"))
		return
	}
	accessory.ID = id
	if err := ph.productService.UpdateAccessory(c.Request.Context(), &accessory); err != nil {
		RespondError(c, http.StatusBadRequest, "ACCESSORY_UPDATE_FAILED", err)
		return
	}
	RespondOK(c, accessory)
}

func (ph *ProductHandler) DeleteAccessory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid accessory id"))
		return
	}
	if err := ph.productService.DeleteAccessory(c.Request.Context(), id); err != nil {
		RespondError(c, http.StatusBadRequest, "ACCESSORY_DELETE_FAILED", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
