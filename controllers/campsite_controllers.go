package controllers

import (
	"errors"
	"strconv"

	"pineus/config"
	"pineus/constants"
	"pineus/dto"
	apperrors "pineus/errors"
	"pineus/models"
	"pineus/response"
	"pineus/services"
	"pineus/validator"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// GetAllCampsites trả về danh sách chỗ cắm trại, có lọc theo tên, giá,
// sức chứa và trạng thái. Danh sách được cache trong Redis.
func GetAllCampsites(c *gin.Context) {
	filters := dto.SearchFilters{
		Name: c.DefaultQuery("name", ""),
	}

	if raw := c.Query("priceMin"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filters.PriceMin = &v
		}
	}
	if raw := c.Query("priceMax"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filters.PriceMax = &v
		}
	}
	if raw := c.Query("capacity"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filters.Capacity = &v
		}
	}
	if raw := c.Query("status"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filters.Status = &v
		}
	}

	campsites, err := services.GetAllCampsites(filters)
	if err != nil {
		response.ServerError(c)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	total := len(campsites)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	results := make([]dto.CampsiteResponse, 0, end-start)
	for _, campsite := range campsites[start:end] {
		results = append(results, toCampsiteResponse(campsite))
	}

	response.SuccessWithPagination(c, results, page, limit, total)
}

// GetCampsiteDetail trả về chi tiết một chỗ cắm trại
func GetCampsiteDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	campsite, err := services.GetCampsiteByID(uint(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrCampsiteNotFound) {
			response.NotFound(c)
		} else {
			response.ServerError(c)
		}
		return
	}

	response.Success(c, toCampsiteResponse(campsite))
}

// CreateCampsite tạo chỗ cắm trại mới (chỉ admin)
func CreateCampsite(c *gin.Context) {
	var req dto.CreateCampsiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	campsite := models.Campsite{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Price:       req.Price,
		Capacity:    req.Capacity,
		Avatar:      req.Avatar,
		Img:         req.Img,
		Amenities:   pq.StringArray(req.Amenities),
		Status:      constants.CampsiteStatusAvailable,
	}

	if err := validator.ValidateCampsite(&campsite); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&campsite).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateCampsiteCache()

	response.Success(c, toCampsiteResponse(campsite))
}

// UpdateCampsite cập nhật thông tin chỗ cắm trại (chỉ admin)
func UpdateCampsite(c *gin.Context) {
	var req dto.UpdateCampsiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	campsite, err := services.GetCampsiteByID(req.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCampsiteNotFound) {
			response.NotFound(c)
		} else {
			response.ServerError(c)
		}
		return
	}

	if req.Name != "" {
		campsite.Name = req.Name
	}
	if req.Description != "" {
		campsite.Description = req.Description
	}
	if req.Address != "" {
		campsite.Address = req.Address
	}
	if req.Price > 0 {
		campsite.Price = req.Price
	}
	if req.Capacity > 0 {
		campsite.Capacity = req.Capacity
	}
	if req.Avatar != "" {
		campsite.Avatar = req.Avatar
	}
	if len(req.Img) > 0 {
		campsite.Img = req.Img
	}
	if len(req.Amenities) > 0 {
		campsite.Amenities = pq.StringArray(req.Amenities)
	}

	if err := config.DB.Save(&campsite).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateCampsiteCache()

	response.Success(c, toCampsiteResponse(campsite))
}

// ChangeCampsiteStatus đổi trạng thái chỗ cắm trại (chỉ admin)
func ChangeCampsiteStatus(c *gin.Context) {
	var req dto.ChangeCampsiteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	campsite, err := services.GetCampsiteByID(req.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCampsiteNotFound) {
			response.NotFound(c)
		} else {
			response.ServerError(c)
		}
		return
	}

	campsite.Status = req.Status
	if err := campsite.ValidateStatus(); err != nil {
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	if err := config.DB.Model(&campsite).Update("status", req.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateCampsiteCache()

	response.Success(c, toCampsiteResponse(campsite))
}

func toCampsiteResponse(campsite models.Campsite) dto.CampsiteResponse {
	return dto.CampsiteResponse{
		ID:          campsite.ID,
		Name:        campsite.Name,
		Description: campsite.Description,
		Address:     campsite.Address,
		Price:       campsite.Price,
		Capacity:    campsite.Capacity,
		Avatar:      campsite.Avatar,
		Img:         campsite.Img,
		Amenities:   []string(campsite.Amenities),
		Status:      campsite.Status,
		CreatedAt:   campsite.CreatedAt,
		UpdatedAt:   campsite.UpdatedAt,
	}
}
