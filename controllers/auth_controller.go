package controllers

import (
	"io"
	"net/http"

	"github.com/ankit-0705/Macrology/pkg/logger"
	"github.com/ankit-0705/Macrology/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
	log  *logger.Logger
}

func NewAuthController(auth *services.AuthService, log *logger.Logger) *AuthController {
	return &AuthController{auth: auth, log: log}
}

// Register handles the multipart registration form (name, email, password,
// pnum, optional image) and answers with a fresh bearer token.
func (ctl *AuthController) Register(c *gin.Context) {
	in := services.RegisterInput{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
		Pnum:     c.PostForm("pnum"),
	}

	if fh, err := c.FormFile("image"); err == nil {
		f, err := fh.Open()
		if err != nil {
			respondError(c, ctl.log, err)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			respondError(c, ctl.log, err)
			return
		}
		in.ImageData = data
		in.ImageMime = fh.Header.Get("Content-Type")
	}

	token, err := ctl.auth.Register(c.Request.Context(), in)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User successfully added to the database.",
		"token":   token,
	})
}

type loginInput struct {
	EmailOrPhone string `json:"emailOrPhone" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := ctl.auth.Login(c.Request.Context(), in.EmailOrPhone, in.Password)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jwtToken": token})
}
