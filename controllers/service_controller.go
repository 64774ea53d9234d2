package controllers

import (
	"log"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"decor/config"
	"decor/constants"
	"decor/dto"
	"decor/models"
	"decor/response"
	"decor/services"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

func convertToServiceResponse(service models.DecorService) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:               service.ID,
		Name:             service.Name,
		Style:            service.Style,
		ShortDescription: service.ShortDescription,
		Province:         service.Province,
		District:         service.District,
		Price:            service.Price,
		Images:           service.Images,
		Status:           service.Status,
		Star:             service.Star,
		Provider: dto.UserInfo{
			ID:     service.Provider.ID,
			Name:   service.Provider.Name,
			Avatar: service.Provider.Avatar,
		},
	}
}

// GetServices trả về danh sách dịch vụ đang mở, có cache và bộ lọc
func GetServices(c *gin.Context) {
	cacheKey := "services:all"

	var allServices []models.DecorService

	if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &allServices); err != nil || len(allServices) == 0 {
		if err := config.DB.Preload("Provider").
			Where("status = ?", constants.ServiceStatusAvailable).
			Find(&allServices).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, allServices, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách dịch vụ vào Redis: %v", err)
		}
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	nameFilter := c.Query("name")
	styleFilter := c.Query("style")
	provinceFilter := c.Query("province")
	maxPriceStr := c.Query("maxPrice")
	minStarStr := c.Query("minStar")

	page := 0
	limit := 10
	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	filteredServices := make([]models.DecorService, 0)
	for _, service := range allServices {
		if nameFilter != "" {
			decodedName, _ := url.QueryUnescape(nameFilter)
			if !strings.Contains(strings.ToLower(service.Name), strings.ToLower(decodedName)) {
				continue
			}
		}
		if styleFilter != "" && !strings.EqualFold(service.Style, styleFilter) {
			continue
		}
		if provinceFilter != "" && !strings.EqualFold(service.Province, provinceFilter) {
			continue
		}
		if maxPriceStr != "" {
			maxPrice, err := strconv.Atoi(maxPriceStr)
			if err == nil && service.Price > maxPrice {
				continue
			}
		}
		if minStarStr != "" {
			minStar, err := strconv.ParseFloat(minStarStr, 64)
			if err == nil && service.Star < minStar {
				continue
			}
		}
		filteredServices = append(filteredServices, service)
	}

	totalFiltered := len(filteredServices)

	sort.Slice(filteredServices, func(i, j int) bool {
		return filteredServices[i].Star > filteredServices[j].Star
	})

	start := page * limit
	end := start + limit
	if start >= totalFiltered {
		filteredServices = []models.DecorService{}
	} else if end > totalFiltered {
		filteredServices = filteredServices[start:]
	} else {
		filteredServices = filteredServices[start:end]
	}

	serviceResponses := make([]dto.ServiceResponse, 0, len(filteredServices))
	for _, service := range filteredServices {
		serviceResponses = append(serviceResponses, convertToServiceResponse(service))
	}

	response.SuccessWithPagination(c, serviceResponses, page, limit, totalFiltered)
}

// GetServiceDetail trả về chi tiết một dịch vụ kèm đánh giá
func GetServiceDetail(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var service models.DecorService
	if err := config.DB.Preload("Provider").
		Preload("Reviews").
		Preload("Reviews.User").
		First(&service, serviceID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, service)
}

// CreateService đăng dịch vụ mới (Provider)
func CreateService(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var request dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	service := models.DecorService{
		Name:             request.Name,
		Style:            request.Style,
		ShortDescription: request.ShortDescription,
		Description:      request.Description,
		Province:         request.Province,
		District:         request.District,
		Price:            request.Price,
		Images:           pq.StringArray(request.Images),
		Status:           constants.ServiceStatusAvailable,
		ProviderID:       currentUserID,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, "services:all"); err != nil {
		log.Printf("Lỗi khi xóa cache dịch vụ: %v", err)
	}

	response.Success(c, convertToServiceResponse(service))
}

// SuggestServices gợi ý dịch vụ theo câu tìm kiếm tự nhiên,
// ví dụ "phòng khách hiện đại 5 sao Đà Nẵng"
func SuggestServices(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Thiếu câu tìm kiếm")
		return
	}

	var allServices []models.DecorService
	if err := config.DB.Preload("Provider").
		Where("status = ?", constants.ServiceStatusAvailable).
		Find(&allServices).Error; err != nil {
		response.ServerError(c)
		return
	}

	scored := services.FilterAndScoreServices(query, allServices)

	suggestions := make([]dto.ServiceResponse, 0, len(scored))
	for _, scoredService := range scored {
		suggestions = append(suggestions, convertToServiceResponse(scoredService.Service))
	}

	response.Success(c, suggestions)
}

// ToggleFavoriteService thêm/bỏ một dịch vụ khỏi danh sách yêu thích
func ToggleFavoriteService(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	serviceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var service models.DecorService
	if err := config.DB.First(&service, serviceID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, currentUserID).Error; err != nil {
		response.NotFound(c)
		return
	}

	favorites := make(pq.Int64Array, 0, len(user.FavoriteServiceIDs)+1)
	removed := false
	for _, id := range user.FavoriteServiceIDs {
		if id == int64(serviceID) {
			removed = true
			continue
		}
		favorites = append(favorites, id)
	}
	if !removed {
		favorites = append(favorites, int64(serviceID))
	}

	if err := config.DB.Model(&user).Update("favorite_service_ids", favorites).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"favorites": favorites, "added": !removed})
}

// GetFavoriteServices trả về danh sách dịch vụ yêu thích của user
func GetFavoriteServices(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var user models.User
	if err := config.DB.First(&user, currentUserID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if len(user.FavoriteServiceIDs) == 0 {
		response.Success(c, []dto.ServiceResponse{})
		return
	}

	var favoriteServices []models.DecorService
	if err := config.DB.Preload("Provider").
		Where("id = ANY(?)", user.FavoriteServiceIDs).
		Find(&favoriteServices).Error; err != nil {
		response.ServerError(c)
		return
	}

	serviceResponses := make([]dto.ServiceResponse, 0, len(favoriteServices))
	for _, service := range favoriteServices {
		serviceResponses = append(serviceResponses, convertToServiceResponse(service))
	}

	response.Success(c, serviceResponses)
}
