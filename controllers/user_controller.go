package controllers

import (
	"io"
	"net/http"
	"strings"

	"github.com/ankit-0705/Macrology/middlewares"
	"github.com/ankit-0705/Macrology/pkg/logger"
	"github.com/ankit-0705/Macrology/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
	log   *logger.Logger
}

func NewUserController(users *services.UserService, log *logger.Logger) *UserController {
	return &UserController{users: users, log: log}
}

// GetUser returns the authenticated user's record, password hash excluded
// via the model's JSON tags.
func (ctl *UserController) GetUser(c *gin.Context) {
	user, err := ctl.users.GetByID(c.Request.Context(), middlewares.GetUserID(c))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Pnum  string `json:"pnum"`
}

// UpdateUser applies a partial profile update. The client sends either a
// JSON body or, when changing the picture, the same multipart form as
// registration.
func (ctl *UserController) UpdateUser(c *gin.Context) {
	var in services.ProfileUpdate

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		in.Name = c.PostForm("name")
		in.Email = c.PostForm("email")
		in.Pnum = c.PostForm("pnum")
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
	} else {
		var body updateUserInput
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		in.Name = body.Name
		in.Email = body.Email
		in.Pnum = body.Pnum
	}

	user, err := ctl.users.UpdateProfile(c.Request.Context(), middlewares.GetUserID(c), in)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User information updated successfully.",
		"user":    user,
	})
}
