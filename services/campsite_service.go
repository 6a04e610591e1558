package services

import (
	"errors"
	"strings"
	"time"

	"pineus/config"
	"pineus/dto"
	apperrors "pineus/errors"
	"pineus/models"
	"pineus/utils"

	"gorm.io/gorm"
)

const campsiteCacheKey = "campsites:all"

// GetAllCampsites lấy toàn bộ chỗ cắm trại từ cache, lọc lại theo filters.
// Cache miss thì đọc DB và ghi lại cache, lỗi Redis không chặn request.
func GetAllCampsites(filters dto.SearchFilters) ([]models.Campsite, error) {
	var campsites []models.Campsite

	rdb := config.RedisClient
	if rdb != nil {
		if err := GetFromRedis(config.Ctx, rdb, campsiteCacheKey, &campsites); err == nil && len(campsites) > 0 {
			return applyCampsiteFilters(campsites, filters), nil
		}
	}

	if err := config.DB.Order("id ASC").Find(&campsites).Error; err != nil {
		return nil, err
	}

	if rdb != nil {
		if err := SetToRedis(config.Ctx, rdb, campsiteCacheKey, campsites, 10*time.Minute); err != nil {
			utils.LogError("Lỗi khi lưu danh sách campsite vào Redis: %v", err)
		}
	}

	return applyCampsiteFilters(campsites, filters), nil
}

func applyCampsiteFilters(campsites []models.Campsite, filters dto.SearchFilters) []models.Campsite {
	filtered := make([]models.Campsite, 0, len(campsites))
	for _, cs := range campsites {
		if filters.Name != "" &&
			!strings.Contains(strings.ToLower(cs.Name), strings.ToLower(filters.Name)) {
			continue
		}
		if filters.PriceMin != nil && cs.Price < *filters.PriceMin {
			continue
		}
		if filters.PriceMax != nil && cs.Price > *filters.PriceMax {
			continue
		}
		if filters.Capacity != nil && cs.Capacity < *filters.Capacity {
			continue
		}
		if filters.Status != nil && cs.Status != *filters.Status {
			continue
		}
		filtered = append(filtered, cs)
	}
	return filtered
}

// GetCampsiteByID lấy một chỗ cắm trại theo id
func GetCampsiteByID(id uint) (models.Campsite, error) {
	var campsite models.Campsite
	result := config.DB.First(&campsite, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return campsite, apperrors.ErrCampsiteNotFound
	}

	if result.Error != nil {
		return campsite, result.Error
	}

	return campsite, nil
}

// InvalidateCampsiteCache xóa cache danh sách sau khi tạo/sửa chỗ cắm trại
func InvalidateCampsiteCache() {
	rdb := config.RedisClient
	if rdb == nil {
		return
	}
	if err := rdb.Del(config.Ctx, campsiteCacheKey).Err(); err != nil {
		utils.LogError("Lỗi khi xóa cache campsite: %v", err)
	}
}
