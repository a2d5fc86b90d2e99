package controllers

import (
	"github.com/Hsharma41126/new-restorant/configs"
	"github.com/Hsharma41126/new-restorant/entity"
	"github.com/Hsharma41126/new-restorant/pkg/resp"
	"github.com/Hsharma41126/new-restorant/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthController is the thin interface to the auth collaborator: it only
// issues tokens for seeded users so the rest of the API can be exercised.
type AuthController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var user entity.User
	if err := ac.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role, ac.Cfg.JWTSecret, ac.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "role": user.Role})
}
