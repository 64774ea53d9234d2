package dto

// UserInfo là thông tin công khai của user
type UserInfo struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// RegisterRequest là DTO cho request đăng ký
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Role        int    `json:"role"`
}

// LoginRequest là DTO cho request đăng nhập
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse là DTO trả về sau khi đăng nhập thành công
type LoginResponse struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	User         UserInfo `json:"user"`
}

// ProfileResponse là DTO cho trang hồ sơ
type ProfileResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	Avatar      string  `json:"avatar"`
	Address     string  `json:"address"`
	Role        int     `json:"role"`
	Amount      int64   `json:"amount"`
	Favorites   []int64 `json:"favorites"`
}
