package controllers

import (
	"strings"

	"decor/config"
	"decor/dto"
	"decor/models"
	"decor/response"
	"decor/services"
	"decor/validator"

	"github.com/gin-gonic/gin"
)

// GetUserIDFromToken lấy userID và role từ token
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	return services.GetUserIDFromToken(tokenString)
}

// RegisterUser đăng ký tài khoản mới
func RegisterUser(c *gin.Context) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user := models.User{
		Name:        request.Name,
		Email:       strings.ToLower(request.Email),
		Password:    request.Password,
		PhoneNumber: request.PhoneNumber,
		Role:        request.Role,
	}

	if err := validator.ValidateUser(&user); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := services.CreateUser(user)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, dto.UserInfo{
		ID:     created.ID,
		Name:   created.Name,
		Avatar: created.Avatar,
	})
}

// Login đăng nhập bằng email và mật khẩu
func Login(c *gin.Context) {
	var input dto.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Email = strings.ToLower(input.Email)

	user, err := services.GetUserByEmail(input.Email)
	if err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	if err := services.CheckPassword(user.Password, input.Password); err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3, true)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	refreshToken, err := services.GenerateToken(userInfo, 60*24*30, false)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: dto.UserInfo{
			ID:     user.ID,
			Name:   user.Name,
			Avatar: user.Avatar,
		},
	})
}

// Logout xóa cookie phiên đăng nhập
func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

// GetProfile trả về hồ sơ của user đang đăng nhập
func GetProfile(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var user models.User
	if err := config.DB.First(&user, currentUserID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, dto.ProfileResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Avatar:      user.Avatar,
		Address:     user.Address,
		Role:        user.Role,
		Amount:      user.Amount,
		Favorites:   user.FavoriteServiceIDs,
	})
}
